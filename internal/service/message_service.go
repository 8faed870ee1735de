package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// MessageInput carries the public contact form.
type MessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// MessageService handles the contact-message inbox.
type MessageService interface {
	Create(ctx context.Context, in MessageInput) (*model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService creates a new message service.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

func (s *messageService) Create(ctx context.Context, in MessageInput) (*model.Message, error) {
	message := &model.Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Body,
		Status:  model.MessageStatusUnread,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	return s.repo.List(ctx)
}

func (s *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
