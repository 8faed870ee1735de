package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
)

// MemberRepository defines membership-roster persistence operations.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List lists all roster records, newest first.
func (r *memberRepository) List(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateStatus sets a member's status, used by admin approval.
func (r *memberRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Member{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Member{}, "id = ?", id).Error
}

func (r *memberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Member{}).Count(&n).Error
	return n, err
}
