package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clubhub/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// Session is the server-side record behind a refresh token. It carries the
// identity and role resolved at login and is dropped on logout.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, session Session, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (Session, error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore handles storage and retrieval of refresh-token sessions in Redis.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a session in Redis keyed by token ID, with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, session Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken retrieves the session behind a refresh token.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (Session, error) {
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return Session{}, fmt.Errorf("refresh token not found")
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return session, nil
}

// DeleteRefreshToken removes a refresh token session from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
