package services

import (
	"context"
	"testing"

	"storefront-service/apperrors"
	"storefront-service/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- Mocks for Dependencies ---

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

// --- Tests ---

func TestLogin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokens := new(MockTokenIssuer)
	authService := NewAuthService(mockRepo, mockTokens)
	ctx := context.Background()

	password := "strongpassword123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	testUser := &models.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo.On("FindByEmail", ctx, testUser.Email).Return(testUser, nil).Once()
		mockTokens.On("GenerateToken", testUser.ID.String()).Return("signed-token", nil).Once()

		// Act
		token, err := authService.Login(ctx, testUser.Email, password)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		mockRepo.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("User Not Found", func(t *testing.T) {
		// Arrange
		mockRepo.On("FindByEmail", ctx, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound).Once()

		// Act
		_, err := authService.Login(ctx, "notfound@example.com", password)

		// Assert
		assert.Error(t, err)
		assert.Equal(t, "invalid email or password", err.Error())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Incorrect Password", func(t *testing.T) {
		// Arrange
		mockRepo.On("FindByEmail", ctx, testUser.Email).Return(testUser, nil).Once()

		// Act
		_, err := authService.Login(ctx, testUser.Email, "wrongpassword")

		// Assert
		assert.Error(t, err)
		assert.Equal(t, "invalid email or password", err.Error())
		mockRepo.AssertExpectations(t)
		mockTokens.AssertNotCalled(t, "GenerateToken")
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenIssuer))
		mockRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

		// Act
		user, err := authService.Register(ctx, "New User", "new@example.com", "strongpassword123")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		// The stored password must be a bcrypt hash, not the plaintext.
		assert.NotEqual(t, "strongpassword123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("strongpassword123")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenIssuer))
		existing := &models.User{ID: uuid.New(), Email: "taken@example.com"}
		mockRepo.On("FindByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

		// Act
		_, err := authService.Register(ctx, "Someone", "taken@example.com", "strongpassword123")

		// Assert
		var appErr *apperrors.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})
}
