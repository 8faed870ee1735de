package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
)

// RegistrationRepository defines event-registration persistence operations.
// Uniqueness per (event, user) is enforced by the store-level index, not by
// the advisory Exists check.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.EventRegistration) error
	Exists(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventRegistration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EventRegistration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *model.EventRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

// Exists reports whether a registration exists for the (event, user) pair.
func (r *registrationRepository) Exists(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.EventRegistration{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByEvent lists registrations for an event, newest first.
func (r *registrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventRegistration, error) {
	var regs []model.EventRegistration
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("registered_at DESC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// ListByUser lists a user's registrations, newest first.
func (r *registrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EventRegistration, error) {
	var regs []model.EventRegistration
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("registered_at DESC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// Delete removes a registration permanently, freeing the (event, user)
// slot so the user can register again.
func (r *registrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.EventRegistration{}, "id = ?", id).Error
}
