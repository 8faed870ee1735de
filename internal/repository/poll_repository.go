package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
)

// PollRepository defines poll persistence operations. The vote workflow runs
// inside WithTransaction with the poll row locked, so tallies and the
// per-user vote marker move together.
type PollRepository interface {
	Create(ctx context.Context, poll *model.Poll) error
	Update(ctx context.Context, poll *model.Poll) error
	ReplaceOptions(ctx context.Context, pollID uuid.UUID, options []model.PollOption) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Poll, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Poll, error)
	List(ctx context.Context) ([]model.Poll, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	CreateVote(ctx context.Context, vote *model.PollVote) error
	FindVote(ctx context.Context, pollID, userID uuid.UUID) (*model.PollVote, error)
	ListVoterIDs(ctx context.Context, pollID uuid.UUID) ([]uuid.UUID, error)
	IncrementOptionVotes(ctx context.Context, pollID uuid.UUID, optionIdx int) error
	IncrementTotalVotes(ctx context.Context, pollID uuid.UUID) error

	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PollRepository) error) error
}

type pollRepository struct {
	db *gorm.DB
}

// NewPollRepository creates a new poll repository.
func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

// Create creates a poll together with its options.
func (r *pollRepository) Create(ctx context.Context, poll *model.Poll) error {
	return r.db.WithContext(ctx).Create(poll).Error
}

// Update saves poll fields. Options are managed via ReplaceOptions.
func (r *pollRepository) Update(ctx context.Context, poll *model.Poll) error {
	return r.db.WithContext(ctx).Omit("Options").Save(poll).Error
}

// ReplaceOptions swaps a poll's options wholesale and resets its total,
// matching the admin edit semantics (counters restart from zero).
func (r *pollRepository) ReplaceOptions(ctx context.Context, pollID uuid.UUID, options []model.PollOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ?", pollID).Delete(&model.PollOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("poll_id = ?", pollID).Delete(&model.PollVote{}).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].PollID = pollID
			options[i].Idx = i
		}
		if len(options) > 0 {
			if err := tx.Create(&options).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Poll{}).Where("id = ?", pollID).
			Update("total_votes", 0).Error
	})
}

// FindByID finds a poll by ID with its options, ordered by option index.
func (r *pollRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Poll, error) {
	var poll model.Poll
	if err := r.db.WithContext(ctx).Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("idx ASC")
	}).Where("id = ?", id).First(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// FindByIDForUpdate finds a poll by ID with a row-level lock for update.
func (r *pollRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Poll, error) {
	var poll model.Poll
	if err := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", id).First(&poll).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("poll_id = ?", id).
		Order("idx ASC").Find(&poll.Options).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// List lists all polls, newest first, with options.
func (r *pollRepository) List(ctx context.Context) ([]model.Poll, error) {
	var polls []model.Poll
	if err := r.db.WithContext(ctx).Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("idx ASC")
	}).Order("created_at DESC").Find(&polls).Error; err != nil {
		return nil, err
	}
	return polls, nil
}

// Delete soft-deletes a poll.
func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Poll{}, "id = ?", id).Error
}

// Count returns the number of polls.
func (r *pollRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Poll{}).Count(&n).Error
	return n, err
}

// CreateVote inserts the per-user vote marker. A duplicate vote surfaces as
// gorm.ErrDuplicatedKey via the unique (poll_id, user_id) index.
func (r *pollRepository) CreateVote(ctx context.Context, vote *model.PollVote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

// FindVote returns the vote marker for a user on a poll, if any.
func (r *pollRepository) FindVote(ctx context.Context, pollID, userID uuid.UUID) (*model.PollVote, error) {
	var vote model.PollVote
	if err := r.db.WithContext(ctx).
		Where("poll_id = ? AND user_id = ?", pollID, userID).
		First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// ListVoterIDs returns the IDs of all users who voted on a poll.
func (r *pollRepository) ListVoterIDs(ctx context.Context, pollID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.PollVote{}).
		Where("poll_id = ?", pollID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// IncrementOptionVotes adds one vote to an option in place.
func (r *pollRepository) IncrementOptionVotes(ctx context.Context, pollID uuid.UUID, optionIdx int) error {
	return r.db.WithContext(ctx).Model(&model.PollOption{}).
		Where("poll_id = ? AND idx = ?", pollID, optionIdx).
		Update("votes", gorm.Expr("votes + 1")).Error
}

// IncrementTotalVotes adds one to a poll's running total in place.
func (r *pollRepository) IncrementTotalVotes(ctx context.Context, pollID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Poll{}).
		Where("id = ?", pollID).
		Update("total_votes", gorm.Expr("total_votes + 1")).Error
}

// WithTransaction executes a function within a database transaction.
func (r *pollRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PollRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &pollRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
