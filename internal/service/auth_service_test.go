package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubhub/internal/auth"
	"clubhub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CreateWithMember(ctx context.Context, user *model.User, member *model.Member) error {
	args := m.Called(ctx, user, member)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, session auth.Session, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, session, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (auth.Session, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(auth.Session), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	input := RegisterInput{
		Email:         "juan@students.example.edu",
		Password:      "password123",
		FullName:      "Juan Dela Cruz",
		StudentNumber: "2023-00123",
		YearLevel:     "3rd Year",
	}

	tests := []struct {
		name          string
		in            RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			in:   input,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, input.Email).Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithMember", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.Member")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "user already exists",
			in:   input,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, input.Email).Return(&model.User{Email: input.Email}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name: "concurrent signup loses on unique email index",
			in:   input,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, input.Email).Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithMember", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.Member")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			service := NewAuthService(mockRepo, jwtService, mockTokenStore)
			user, err := service.Register(context.Background(), tt.in)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.in.Email, user.Email)
				assert.Equal(t, tt.in.FullName, user.FullName)
				assert.NotEmpty(t, user.PasswordHash)
				// new signups are always plain members pending approval
				assert.Equal(t, model.RoleMember, user.Role)
				assert.Equal(t, model.StatusPending, user.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedRole  string
		expectedError error
	}{
		{
			name:     "successful admin login",
			email:    "admin@example.edu",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByEmail", mock.Anything, "admin@example.edu").Return(&model.User{
					ID:           uuid.New(),
					Email:        "admin@example.edu",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleAdmin,
					Status:       model.StatusActive,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.AnythingOfType("auth.Session"), mock.Anything).Return(nil)
			},
			expectedRole:  model.RoleAdmin,
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.edu",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "notfound@example.edu").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "juan@students.example.edu",
			password: "not-the-password",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByEmail", mock.Anything, "juan@students.example.edu").Return(&model.User{
					ID:           uuid.New(),
					Email:        "juan@students.example.edu",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleMember,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)

				// the role embedded in the token is what gates the back office
				claims, err := jwtService.ValidateToken(accessToken)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, claims.Role)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	userID := uuid.New()
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "juan@students.example.edu", model.RoleMember)
	assert.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(auth.Session{
			UserID: userID.String(),
			Email:  "juan@students.example.edu",
			Role:   model.RoleMember,
		}, nil)

		service := NewAuthService(mockRepo, jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("session revoked", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(auth.Session{}, assert.AnError)

		service := NewAuthService(mockRepo, jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.Equal(t, ErrInvalidRefreshToken, err)
		assert.Empty(t, accessToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)

		service := NewAuthService(mockRepo, jwtService, mockTokenStore)
		_, err := service.RefreshToken(context.Background(), "not-a-jwt")

		assert.Equal(t, ErrInvalidRefreshToken, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	userID := uuid.New()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("old-password"), 10)

	tests := []struct {
		name            string
		currentPassword string
		setupMock       func(*MockUserRepository)
		expectedError   error
	}{
		{
			name:            "successful change",
			currentPassword: "old-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{
					ID:           userID,
					PasswordHash: string(hashedPassword),
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:            "wrong current password",
			currentPassword: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{
					ID:           userID,
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrWrongPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, new(MockTokenStore))

			err := service.ChangePassword(context.Background(), userID, tt.currentPassword, "new-password")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
