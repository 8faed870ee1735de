package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
)

// OfficerRepository defines officer-roster persistence operations.
type OfficerRepository interface {
	Create(ctx context.Context, officer *model.Officer) error
	Update(ctx context.Context, officer *model.Officer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Officer, error)
	List(ctx context.Context) ([]model.Officer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type officerRepository struct {
	db *gorm.DB
}

// NewOfficerRepository creates a new officer repository.
func NewOfficerRepository(db *gorm.DB) OfficerRepository {
	return &officerRepository{db: db}
}

func (r *officerRepository) Create(ctx context.Context, officer *model.Officer) error {
	return r.db.WithContext(ctx).Create(officer).Error
}

func (r *officerRepository) Update(ctx context.Context, officer *model.Officer) error {
	return r.db.WithContext(ctx).Save(officer).Error
}

func (r *officerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Officer, error) {
	var officer model.Officer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&officer).Error; err != nil {
		return nil, err
	}
	return &officer, nil
}

// List lists officers in display order.
func (r *officerRepository) List(ctx context.Context) ([]model.Officer, error) {
	var officers []model.Officer
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&officers).Error; err != nil {
		return nil, err
	}
	return officers, nil
}

func (r *officerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Officer{}, "id = ?", id).Error
}

func (r *officerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Officer{}).Count(&n).Error
	return n, err
}
