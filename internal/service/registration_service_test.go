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
)

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRegistrationRepository is a mock implementation of RegistrationRepository.
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, reg *model.EventRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockRegistrationRepository) Exists(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventRegistration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EventRegistration), args.Error(1)
}

func (m *MockRegistrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EventRegistration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EventRegistration), args.Error(1)
}

func (m *MockRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRegistrationService_Register(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()

	hackathon := &model.Event{
		ID:    eventID,
		Title: "24h Hackathon",
		Date:  "2026-09-12",
		Venue: "Engineering Building",
	}
	attendee := &model.User{
		ID:       userID,
		Email:    "juan@students.example.edu",
		FullName: "Juan Dela Cruz",
	}

	tests := []struct {
		name          string
		setupMock     func(*MockRegistrationRepository, *MockEventRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(mReg *MockRegistrationRepository, mEvent *MockEventRepository, mUser *MockUserRepository) {
				mEvent.On("FindByID", mock.Anything, eventID).Return(hackathon, nil)
				mUser.On("FindByID", mock.Anything, userID).Return(attendee, nil)
				mReg.On("Create", mock.Anything, mock.AnythingOfType("*model.EventRegistration")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "event not found",
			setupMock: func(mReg *MockRegistrationRepository, mEvent *MockEventRepository, mUser *MockUserRepository) {
				mEvent.On("FindByID", mock.Anything, eventID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrEventNotFound,
		},
		{
			name: "user not found",
			setupMock: func(mReg *MockRegistrationRepository, mEvent *MockEventRepository, mUser *MockUserRepository) {
				mEvent.On("FindByID", mock.Anything, eventID).Return(hackathon, nil)
				mUser.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name: "second registration loses on the unique index",
			setupMock: func(mReg *MockRegistrationRepository, mEvent *MockEventRepository, mUser *MockUserRepository) {
				mEvent.On("FindByID", mock.Anything, eventID).Return(hackathon, nil)
				mUser.On("FindByID", mock.Anything, userID).Return(attendee, nil)
				mReg.On("Create", mock.Anything, mock.AnythingOfType("*model.EventRegistration")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRegRepo := new(MockRegistrationRepository)
			mockEventRepo := new(MockEventRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockRegRepo, mockEventRepo, mockUserRepo)

			service := NewRegistrationService(mockRegRepo, mockEventRepo, mockUserRepo)
			reg, err := service.Register(context.Background(), eventID, userID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, reg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, reg)
				// copied fields let admin lists render without joins
				assert.Equal(t, hackathon.Title, reg.EventTitle)
				assert.Equal(t, hackathon.Date, reg.EventDate)
				assert.Equal(t, attendee.Email, reg.UserEmail)
				assert.Equal(t, attendee.FullName, reg.UserName)
				assert.Equal(t, model.RegistrationStatusConfirmed, reg.Status)
			}

			mockRegRepo.AssertExpectations(t)
			mockEventRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

// A deleted registration must free the (event, user) slot: deletion is
// permanent, so registering again inserts a fresh row instead of colliding
// with a leftover index entry.
func TestRegistrationService_DeleteThenReRegister(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()
	regID := uuid.New()

	hackathon := &model.Event{ID: eventID, Title: "24h Hackathon", Date: "2026-09-12"}
	attendee := &model.User{ID: userID, Email: "juan@students.example.edu", FullName: "Juan Dela Cruz"}

	mockRegRepo := new(MockRegistrationRepository)
	mockEventRepo := new(MockEventRepository)
	mockUserRepo := new(MockUserRepository)

	mockRegRepo.On("Delete", mock.Anything, regID).Return(nil)
	mockRegRepo.On("Exists", mock.Anything, eventID, userID).Return(false, nil)
	mockEventRepo.On("FindByID", mock.Anything, eventID).Return(hackathon, nil)
	mockUserRepo.On("FindByID", mock.Anything, userID).Return(attendee, nil)
	mockRegRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.EventRegistration")).Return(nil)

	service := NewRegistrationService(mockRegRepo, mockEventRepo, mockUserRepo)

	assert.NoError(t, service.Delete(context.Background(), regID))

	registered, err := service.IsRegistered(context.Background(), eventID, userID)
	assert.NoError(t, err)
	assert.False(t, registered)

	reg, err := service.Register(context.Background(), eventID, userID)
	assert.NoError(t, err)
	assert.NotNil(t, reg)
	mockRegRepo.AssertExpectations(t)
}

func TestRegistrationService_IsRegistered(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()

	mockRegRepo := new(MockRegistrationRepository)
	mockRegRepo.On("Exists", mock.Anything, eventID, userID).Return(true, nil)

	service := NewRegistrationService(mockRegRepo, new(MockEventRepository), new(MockUserRepository))
	registered, err := service.IsRegistered(context.Background(), eventID, userID)

	assert.NoError(t, err)
	assert.True(t, registered)
	mockRegRepo.AssertExpectations(t)
}
