package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// RegistrationService records a user's intent to attend an event at most
// once. The unique (event, user) index makes the at-most-once guarantee
// hold even when two submissions race; IsRegistered stays advisory.
type RegistrationService interface {
	Register(ctx context.Context, eventID, userID uuid.UUID) (*model.EventRegistration, error)
	IsRegistered(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventRegistration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EventRegistration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type registrationService struct {
	regRepo   repository.RegistrationRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
) RegistrationService {
	return &registrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// Register inserts a confirmed registration, copying the event title/date
// and user email/name so admin lists need no joins later.
func (s *registrationService) Register(ctx context.Context, eventID, userID uuid.UUID) (*model.EventRegistration, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	reg := &model.EventRegistration{
		EventID:    eventID,
		UserID:     userID,
		EventTitle: event.Title,
		EventDate:  event.Date,
		UserEmail:  user.Email,
		UserName:   user.FullName,
		Status:     model.RegistrationStatusConfirmed,
	}
	if err := s.regRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

// IsRegistered is the advisory check behind the register button.
func (s *registrationService) IsRegistered(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	return s.regRepo.Exists(ctx, eventID, userID)
}

func (s *registrationService) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventRegistration, error) {
	return s.regRepo.ListByEvent(ctx, eventID)
}

func (s *registrationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EventRegistration, error) {
	return s.regRepo.ListByUser(ctx, userID)
}

func (s *registrationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.regRepo.Delete(ctx, id)
}
