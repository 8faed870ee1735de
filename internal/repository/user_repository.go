package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
)

// UserRepository defines user-profile persistence operations. Role
// defaulting is centralized here: records read back with an empty role
// resolve to member.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	CreateWithMember(ctx context.Context, user *model.User, member *model.Member) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// CreateWithMember creates the user profile and its membership roster record
// in a single transaction, so a failed profile write never leaves an
// orphaned identity.
func (r *userRepository) CreateWithMember(ctx context.Context, user *model.User, member *model.Member) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		member.UserID = user.ID
		return tx.Create(member).Error
	})
}

// Update updates an existing user.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	applyDefaults(&user)
	return &user, nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	applyDefaults(&user)
	return &user, nil
}

// List lists all users, newest first.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		applyDefaults(&users[i])
	}
	return users, nil
}

// Delete soft-deletes a user.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}

func applyDefaults(u *model.User) {
	if u.Role == "" {
		u.Role = model.RoleMember
	}
	if u.Status == "" {
		u.Status = model.StatusPending
	}
}
