package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// MockPollRepository is a mock implementation of PollRepository.
type MockPollRepository struct {
	mock.Mock
}

func (m *MockPollRepository) Create(ctx context.Context, poll *model.Poll) error {
	args := m.Called(ctx, poll)
	return args.Error(0)
}

func (m *MockPollRepository) Update(ctx context.Context, poll *model.Poll) error {
	args := m.Called(ctx, poll)
	return args.Error(0)
}

func (m *MockPollRepository) ReplaceOptions(ctx context.Context, pollID uuid.UUID, options []model.PollOption) error {
	args := m.Called(ctx, pollID, options)
	return args.Error(0)
}

func (m *MockPollRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Poll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poll), args.Error(1)
}

func (m *MockPollRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Poll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poll), args.Error(1)
}

func (m *MockPollRepository) List(ctx context.Context) ([]model.Poll, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Poll), args.Error(1)
}

func (m *MockPollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPollRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPollRepository) CreateVote(ctx context.Context, vote *model.PollVote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockPollRepository) FindVote(ctx context.Context, pollID, userID uuid.UUID) (*model.PollVote, error) {
	args := m.Called(ctx, pollID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PollVote), args.Error(1)
}

func (m *MockPollRepository) ListVoterIDs(ctx context.Context, pollID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, pollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockPollRepository) IncrementOptionVotes(ctx context.Context, pollID uuid.UUID, optionIdx int) error {
	args := m.Called(ctx, pollID, optionIdx)
	return args.Error(0)
}

func (m *MockPollRepository) IncrementTotalVotes(ctx context.Context, pollID uuid.UUID) error {
	args := m.Called(ctx, pollID)
	return args.Error(0)
}

// WithTransaction runs the callback against the mock itself, so vote tests
// exercise the same lock-check-insert-increment sequence the real
// transaction runs.
func (m *MockPollRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.PollRepository) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

func languagePoll(id uuid.UUID, active bool) *model.Poll {
	return &model.Poll{
		ID:       id,
		Question: "Which language should the next workshop cover?",
		PollType: model.PollTypeSingle,
		Active:   active,
		Options: []model.PollOption{
			{PollID: id, Idx: 0, Text: "Go"},
			{PollID: id, Idx: 1, Text: "Rust"},
		},
	}
}

func TestPollService_Vote(t *testing.T) {
	pollID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name          string
		optionIdx     int
		setupMock     func(*MockPollRepository)
		expectedError error
	}{
		{
			name:      "successful vote",
			optionIdx: 0,
			setupMock: func(m *MockPollRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, pollID).Return(languagePoll(pollID, true), nil)
				m.On("CreateVote", mock.Anything, mock.AnythingOfType("*model.PollVote")).Return(nil)
				m.On("IncrementOptionVotes", mock.Anything, pollID, 0).Return(nil)
				m.On("IncrementTotalVotes", mock.Anything, pollID).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "poll not found",
			optionIdx: 0,
			setupMock: func(m *MockPollRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, pollID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPollNotFound,
		},
		{
			name:      "closed poll rejects the vote",
			optionIdx: 0,
			setupMock: func(m *MockPollRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, pollID).Return(languagePoll(pollID, false), nil)
			},
			expectedError: apperrors.ErrPollClosed,
		},
		{
			name:      "option index out of range",
			optionIdx: 5,
			setupMock: func(m *MockPollRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, pollID).Return(languagePoll(pollID, true), nil)
			},
			expectedError: apperrors.ErrInvalidOption,
		},
		{
			name:      "second vote loses on the unique marker",
			optionIdx: 1,
			setupMock: func(m *MockPollRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, pollID).Return(languagePoll(pollID, true), nil)
				m.On("CreateVote", mock.Anything, mock.AnythingOfType("*model.PollVote")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrAlreadyVoted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPollRepository)
			tt.setupMock(mockRepo)

			service := NewPollService(mockRepo, nil)
			err := service.Vote(context.Background(), pollID, tt.optionIdx, userID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPollService_Create(t *testing.T) {
	t.Run("options keep their submitted order", func(t *testing.T) {
		mockRepo := new(MockPollRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Poll")).Return(nil)

		service := NewPollService(mockRepo, nil)
		poll, err := service.Create(context.Background(), PollInput{
			Question: "Which language should the next workshop cover?",
			Options:  []string{"Go", "Rust", "Python"},
			Active:   true,
		})

		assert.NoError(t, err)
		assert.Len(t, poll.Options, 3)
		for i, text := range []string{"Go", "Rust", "Python"} {
			assert.Equal(t, i, poll.Options[i].Idx)
			assert.Equal(t, text, poll.Options[i].Text)
		}
		assert.Equal(t, model.PollTypeSingle, poll.PollType)
		mockRepo.AssertExpectations(t)
	})

	t.Run("fewer than two options", func(t *testing.T) {
		mockRepo := new(MockPollRepository)

		service := NewPollService(mockRepo, nil)
		poll, err := service.Create(context.Background(), PollInput{
			Question: "Trick question?",
			Options:  []string{"Yes"},
		})

		assert.Equal(t, apperrors.ErrInvalidOption, err)
		assert.Nil(t, poll)
	})
}

func TestPollService_Update(t *testing.T) {
	pollID := uuid.New()

	t.Run("edits fields and swaps options in one transaction", func(t *testing.T) {
		mockRepo := new(MockPollRepository)
		mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindByID", mock.Anything, pollID).Return(languagePoll(pollID, true), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Poll")).Return(nil)
		mockRepo.On("ReplaceOptions", mock.Anything, pollID, mock.AnythingOfType("[]model.PollOption")).Return(nil)

		service := NewPollService(mockRepo, nil)
		poll, err := service.Update(context.Background(), pollID, PollInput{
			Question: "Which language next?",
			Options:  []string{"Go", "Zig"},
			Active:   true,
		})

		assert.NoError(t, err)
		assert.NotNil(t, poll)
		mockRepo.AssertExpectations(t)
	})

	t.Run("failed option swap leaves the old tallies untouched", func(t *testing.T) {
		voted := languagePoll(pollID, true)
		voted.TotalVotes = 3

		mockRepo := new(MockPollRepository)
		mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindByID", mock.Anything, pollID).Return(voted, nil)
		// the field save must not zero the running total; only the option
		// swap resets counters, and it does so atomically with the save
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Poll) bool {
			return p.TotalVotes == 3
		})).Return(nil)
		mockRepo.On("ReplaceOptions", mock.Anything, pollID, mock.Anything).Return(assert.AnError)

		service := NewPollService(mockRepo, nil)
		poll, err := service.Update(context.Background(), pollID, PollInput{
			Question: "Which language next?",
			Options:  []string{"Go", "Zig"},
		})

		assert.Error(t, err)
		assert.Nil(t, poll)
		mockRepo.AssertExpectations(t)
	})

	t.Run("fewer than two options", func(t *testing.T) {
		mockRepo := new(MockPollRepository)

		service := NewPollService(mockRepo, nil)
		poll, err := service.Update(context.Background(), pollID, PollInput{
			Question: "Trick question?",
			Options:  []string{"Yes"},
		})

		assert.Equal(t, apperrors.ErrInvalidOption, err)
		assert.Nil(t, poll)
	})
}

func TestPollService_HasVoted(t *testing.T) {
	pollID := uuid.New()
	userID := uuid.New()

	t.Run("no vote yet", func(t *testing.T) {
		mockRepo := new(MockPollRepository)
		mockRepo.On("FindVote", mock.Anything, pollID, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewPollService(mockRepo, nil)
		voted, err := service.HasVoted(context.Background(), pollID, userID)

		assert.NoError(t, err)
		assert.False(t, voted)
	})

	t.Run("already voted", func(t *testing.T) {
		mockRepo := new(MockPollRepository)
		mockRepo.On("FindVote", mock.Anything, pollID, userID).Return(&model.PollVote{
			PollID: pollID,
			UserID: userID,
		}, nil)

		service := NewPollService(mockRepo, nil)
		voted, err := service.HasVoted(context.Background(), pollID, userID)

		assert.NoError(t, err)
		assert.True(t, voted)
	})
}

func TestPollService_Results(t *testing.T) {
	pollID := uuid.New()

	t.Run("percentages round to one decimal place", func(t *testing.T) {
		poll := languagePoll(pollID, true)
		poll.TotalVotes = 3
		poll.Options[0].Votes = 2
		poll.Options[1].Votes = 1

		mockRepo := new(MockPollRepository)
		mockRepo.On("FindByID", mock.Anything, pollID).Return(poll, nil)

		service := NewPollService(mockRepo, nil)
		results, err := service.Results(context.Background(), pollID)

		assert.NoError(t, err)
		assert.Equal(t, 3, results.TotalVotes)
		assert.Equal(t, "66.7", results.Options[0].Percentage)
		assert.Equal(t, "33.3", results.Options[1].Percentage)
	})

	t.Run("no votes means zero percentages, not a division error", func(t *testing.T) {
		mockRepo := new(MockPollRepository)
		mockRepo.On("FindByID", mock.Anything, pollID).Return(languagePoll(pollID, true), nil)

		service := NewPollService(mockRepo, nil)
		results, err := service.Results(context.Background(), pollID)

		assert.NoError(t, err)
		assert.Equal(t, 0, results.TotalVotes)
		for _, opt := range results.Options {
			assert.Equal(t, "0", opt.Percentage)
		}
	})

	t.Run("poll not found", func(t *testing.T) {
		mockRepo := new(MockPollRepository)
		mockRepo.On("FindByID", mock.Anything, pollID).Return(nil, gorm.ErrRecordNotFound)

		service := NewPollService(mockRepo, nil)
		results, err := service.Results(context.Background(), pollID)

		assert.Equal(t, apperrors.ErrPollNotFound, err)
		assert.Nil(t, results)
	})
}

func TestPollService_List(t *testing.T) {
	pollID := uuid.New()
	voter := uuid.New()

	mockRepo := new(MockPollRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Poll{*languagePoll(pollID, true)}, nil)
	mockRepo.On("ListVoterIDs", mock.Anything, pollID).Return([]uuid.UUID{voter}, nil)

	service := NewPollService(mockRepo, nil)
	views, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, []string{voter.String()}, views[0].VotedUsers)
	mockRepo.AssertExpectations(t)
}
