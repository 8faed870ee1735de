package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clubhub/internal/cache"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

const (
	pollListCacheKey = "polls:list"
	pollListCacheTTL = 30 * time.Second
)

// PollView is a poll together with the IDs of users who voted on it, the
// shape the voting page reads for its advisory has-voted gate.
type PollView struct {
	model.Poll
	VotedUsers []string `json:"voted_users"`
}

// OptionResult is one option's tally with its share of the total.
type OptionResult struct {
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage string `json:"percentage"`
}

// PollResults is the live tally presentation for a poll.
type PollResults struct {
	PollID     uuid.UUID      `json:"poll_id"`
	Question   string         `json:"question"`
	TotalVotes int            `json:"total_votes"`
	Options    []OptionResult `json:"options"`
}

// PollInput carries the admin create/edit form.
type PollInput struct {
	Question string
	PollType string
	Options  []string
	EndDate  string
	Active   bool
}

// PollService handles poll management and the voting workflow.
type PollService interface {
	Create(ctx context.Context, in PollInput) (*model.Poll, error)
	Update(ctx context.Context, id uuid.UUID, in PollInput) (*model.Poll, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]PollView, error)
	Get(ctx context.Context, id uuid.UUID) (*PollView, error)
	Vote(ctx context.Context, pollID uuid.UUID, optionIdx int, userID uuid.UUID) error
	HasVoted(ctx context.Context, pollID, userID uuid.UUID) (bool, error)
	Results(ctx context.Context, pollID uuid.UUID) (*PollResults, error)
}

type pollService struct {
	pollRepo repository.PollRepository
	cache    *cache.Client
}

// NewPollService creates a new poll service.
func NewPollService(pollRepo repository.PollRepository, cache *cache.Client) PollService {
	return &pollService{
		pollRepo: pollRepo,
		cache:    cache,
	}
}

// Create creates a poll with its options in the given order.
func (s *pollService) Create(ctx context.Context, in PollInput) (*model.Poll, error) {
	if len(in.Options) < 2 {
		return nil, apperrors.ErrInvalidOption
	}
	pollType := in.PollType
	if pollType == "" {
		pollType = model.PollTypeSingle
	}

	poll := &model.Poll{
		ID:       uuid.New(),
		Question: in.Question,
		PollType: pollType,
		Active:   in.Active,
		EndDate:  in.EndDate,
	}
	for i, text := range in.Options {
		poll.Options = append(poll.Options, model.PollOption{PollID: poll.ID, Idx: i, Text: text})
	}

	if err := s.pollRepo.Create(ctx, poll); err != nil {
		return nil, fmt.Errorf("create poll: %w", err)
	}

	_ = s.cache.Delete(ctx, pollListCacheKey)
	return poll, nil
}

// Update edits a poll. Options are replaced wholesale, which resets all
// tallies and vote markers, matching the admin edit semantics. The field
// save and the option swap run in one transaction so a failed edit leaves
// the old tallies intact.
func (s *pollService) Update(ctx context.Context, id uuid.UUID, in PollInput) (*model.Poll, error) {
	if len(in.Options) < 2 {
		return nil, apperrors.ErrInvalidOption
	}

	err := s.pollRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.PollRepository) error {
		poll, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrPollNotFound
			}
			return fmt.Errorf("find poll: %w", err)
		}

		poll.Question = in.Question
		if in.PollType != "" {
			poll.PollType = in.PollType
		}
		poll.EndDate = in.EndDate
		poll.Active = in.Active
		if err := txRepo.Update(ctx, poll); err != nil {
			return fmt.Errorf("update poll: %w", err)
		}

		options := make([]model.PollOption, len(in.Options))
		for i, text := range in.Options {
			options[i] = model.PollOption{Text: text}
		}
		if err := txRepo.ReplaceOptions(ctx, id, options); err != nil {
			return fmt.Errorf("replace options: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, pollListCacheKey)
	return s.pollRepo.FindByID(ctx, id)
}

// SetActive toggles a poll open or closed. Closing takes effect for any
// vote that has not yet locked the poll row.
func (s *pollService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	poll, err := s.pollRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrPollNotFound
		}
		return fmt.Errorf("find poll: %w", err)
	}
	poll.Active = active
	if err := s.pollRepo.Update(ctx, poll); err != nil {
		return fmt.Errorf("update poll: %w", err)
	}
	_ = s.cache.Delete(ctx, pollListCacheKey)
	return nil
}

// Delete removes a poll.
func (s *pollService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.pollRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete poll: %w", err)
	}
	_ = s.cache.Delete(ctx, pollListCacheKey)
	return nil
}

// List returns all polls with voter IDs, newest first, served from the
// short-lived cache when fresh.
func (s *pollService) List(ctx context.Context) ([]PollView, error) {
	if data, _ := s.cache.Get(ctx, pollListCacheKey); data != nil {
		var cached []PollView
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	polls, err := s.pollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list polls: %w", err)
	}

	views := make([]PollView, 0, len(polls))
	for _, poll := range polls {
		voters, err := s.pollRepo.ListVoterIDs(ctx, poll.ID)
		if err != nil {
			return nil, fmt.Errorf("list voters: %w", err)
		}
		views = append(views, newPollView(poll, voters))
	}

	if payload, err := json.Marshal(views); err == nil {
		_ = s.cache.Set(ctx, pollListCacheKey, payload, pollListCacheTTL)
	}
	return views, nil
}

// Get returns one poll with voter IDs.
func (s *pollService) Get(ctx context.Context, id uuid.UUID) (*PollView, error) {
	poll, err := s.pollRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPollNotFound
		}
		return nil, fmt.Errorf("find poll: %w", err)
	}
	voters, err := s.pollRepo.ListVoterIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list voters: %w", err)
	}
	view := newPollView(*poll, voters)
	return &view, nil
}

// Vote casts a user's single vote on a poll. The whole read-modify-write
// runs in one transaction with the poll row locked: the closed check, the
// at-most-once marker insert, and both counter increments either all land
// or none do. Concurrent duplicate votes lose on the unique marker index.
func (s *pollService) Vote(ctx context.Context, pollID uuid.UUID, optionIdx int, userID uuid.UUID) error {
	err := s.pollRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.PollRepository) error {
		poll, err := txRepo.FindByIDForUpdate(ctx, pollID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrPollNotFound
			}
			return err
		}

		if !poll.Active {
			return apperrors.ErrPollClosed
		}
		if optionIdx < 0 || optionIdx >= len(poll.Options) {
			return apperrors.ErrInvalidOption
		}

		vote := &model.PollVote{
			PollID:    pollID,
			UserID:    userID,
			OptionIdx: optionIdx,
		}
		if err := txRepo.CreateVote(ctx, vote); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrAlreadyVoted
			}
			return err
		}

		if err := txRepo.IncrementOptionVotes(ctx, pollID, optionIdx); err != nil {
			return err
		}
		return txRepo.IncrementTotalVotes(ctx, pollID)
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, pollListCacheKey)
	return nil
}

// HasVoted is the advisory check the UI uses to hide the vote form. The
// vote transaction is what actually enforces at-most-once.
func (s *pollService) HasVoted(ctx context.Context, pollID, userID uuid.UUID) (bool, error) {
	_, err := s.pollRepo.FindVote(ctx, pollID, userID)
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find vote: %w", err)
	}
	return true, nil
}

// Results computes per-option percentages, one decimal place, zero when no
// votes have been cast.
func (s *pollService) Results(ctx context.Context, pollID uuid.UUID) (*PollResults, error) {
	poll, err := s.pollRepo.FindByID(ctx, pollID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPollNotFound
		}
		return nil, fmt.Errorf("find poll: %w", err)
	}

	results := &PollResults{
		PollID:     poll.ID,
		Question:   poll.Question,
		TotalVotes: poll.TotalVotes,
	}
	total := decimal.NewFromInt(int64(poll.TotalVotes))
	for _, opt := range poll.Options {
		pct := decimal.Zero
		if poll.TotalVotes > 0 {
			pct = decimal.NewFromInt(int64(opt.Votes) * 100).Div(total).Round(1)
		}
		results.Options = append(results.Options, OptionResult{
			Text:       opt.Text,
			Votes:      opt.Votes,
			Percentage: pct.String(),
		})
	}
	return results, nil
}

func newPollView(poll model.Poll, voters []uuid.UUID) PollView {
	view := PollView{Poll: poll, VotedUsers: make([]string, 0, len(voters))}
	for _, id := range voters {
		view.VotedUsers = append(view.VotedUsers, id.String())
	}
	return view
}
