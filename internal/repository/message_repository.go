package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
)

// MessageRepository defines contact-message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	List(ctx context.Context) ([]model.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// List lists all messages, newest first.
func (r *messageRepository) List(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Message{}, "id = ?", id).Error
}
