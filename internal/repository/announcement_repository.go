package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
)

// AnnouncementRepository defines announcement persistence operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	Update(ctx context.Context, announcement *model.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Announcement, error)
	List(ctx context.Context) ([]model.Announcement, error)
	ListByStatus(ctx context.Context, status string) ([]model.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) Update(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Announcement, error) {
	var announcement model.Announcement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&announcement).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

// List lists all announcements, newest first.
func (r *announcementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// ListByStatus lists announcements with the given status, newest first.
func (r *announcementRepository) ListByStatus(ctx context.Context, status string) ([]model.Announcement, error) {
	var announcements []model.Announcement
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Announcement{}, "id = ?", id).Error
}

func (r *announcementRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Announcement{}).Count(&n).Error
	return n, err
}
