package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// EventInput carries the admin event form.
type EventInput struct {
	Title       string
	Date        string
	Time        string
	Venue       string
	Description string
	ImageURL    string
}

// EventService handles event content management.
type EventService interface {
	Create(ctx context.Context, in EventInput) (*model.Event, error)
	Update(ctx context.Context, id uuid.UUID, in EventInput) (*model.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new event service.
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(ctx context.Context, in EventInput) (*model.Event, error) {
	event := &model.Event{
		Title:       in.Title,
		Date:        in.Date,
		Time:        in.Time,
		Venue:       in.Venue,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, in EventInput) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	event.Title = in.Title
	event.Date = in.Date
	event.Time = in.Time
	event.Venue = in.Venue
	event.Description = in.Description
	event.ImageURL = in.ImageURL
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.eventRepo.Delete(ctx, id)
}
