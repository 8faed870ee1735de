package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubhub/internal/auth"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when trying to register an existing user.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrWrongPassword is returned when the current password check fails.
	ErrWrongPassword = errors.New("current password is incorrect")
)

// RegisterInput carries the membership signup form.
type RegisterInput struct {
	Email         string
	Password      string
	FullName      string
	StudentNumber string
	YearLevel     string
}

// AuthService bridges the credential store and profile lookup: signup,
// login with role resolution, token refresh, and password changes.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register creates the user identity and its roster record atomically. New
// signups are plain members pending admin approval.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:            uuid.New(),
		Email:         in.Email,
		PasswordHash:  string(hashedPassword),
		FullName:      in.FullName,
		StudentNumber: in.StudentNumber,
		YearLevel:     in.YearLevel,
		Role:          model.RoleMember,
		Status:        model.StatusPending,
	}
	member := &model.Member{
		FullName:      in.FullName,
		StudentNumber: in.StudentNumber,
		YearLevel:     in.YearLevel,
		Email:         in.Email,
		Status:        model.StatusPending,
	}

	if err := s.userRepo.CreateWithMember(ctx, user, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns access and refresh tokens. The
// role embedded in both tokens comes from the profile read here; a profile
// with no stored role resolves to member.
func (s *authService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error) {
	user, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err = s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	session := auth.Session{UserID: user.ID.String(), Email: user.Email, Role: user.Role}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, session, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	session, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	if session.UserID != claims.UserID || session.Email != claims.Email {
		return "", ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err = s.jwtService.GenerateAccessToken(userID, claims.Email, session.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// ChangePassword re-verifies the current password before storing a new hash.
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
