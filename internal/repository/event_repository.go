package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List lists all events, soonest first.
func (r *eventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Event{}, "id = ?", id).Error
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).Count(&n).Error
	return n, err
}
