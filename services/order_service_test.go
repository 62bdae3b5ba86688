package services

import (
	"context"
	"errors"
	"testing"

	"storefront-service/apperrors"
	"storefront-service/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	args := m.Called(ctx, order, items)
	if args.Error(0) == nil {
		// the database fills the generated id on success
		order.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDAndUserID(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, zap.NewNop())
		items := []OrderItemRequest{
			{ProductID: uuid.New(), Quantity: 2},
			{ProductID: uuid.New(), Quantity: 1},
		}
		mockRepo.On("CreateWithItems", ctx, mock.AnythingOfType("*models.Order"), mock.AnythingOfType("[]models.OrderItem")).Return(nil).Once()

		// Act
		order, err := svc.PlaceOrder(ctx, userID, items)

		// Assert
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, order.ID)
		assert.Equal(t, userID, order.UserID)
		mockRepo.AssertExpectations(t)

		passedItems := mockRepo.Calls[0].Arguments.Get(2).([]models.OrderItem)
		assert.Len(t, passedItems, 2)
		assert.Equal(t, items[0].ProductID, passedItems[0].ProductID)
		assert.Equal(t, 2, passedItems[0].Quantity)
	})

	t.Run("Empty Item List", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, zap.NewNop())

		// Act
		_, err := svc.PlaceOrder(ctx, userID, nil)

		// Assert: rejected before any storage interaction
		var appErr *apperrors.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateWithItems")
	})

	t.Run("Non-Positive Quantity", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, zap.NewNop())
		items := []OrderItemRequest{{ProductID: uuid.New(), Quantity: 0}}

		// Act
		_, err := svc.PlaceOrder(ctx, userID, items)

		// Assert
		var appErr *apperrors.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateWithItems")
	})

	t.Run("Duplicate Products Allowed", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, zap.NewNop())
		pid := uuid.New()
		items := []OrderItemRequest{
			{ProductID: pid, Quantity: 1},
			{ProductID: pid, Quantity: 3},
		}
		mockRepo.On("CreateWithItems", ctx, mock.AnythingOfType("*models.Order"), mock.AnythingOfType("[]models.OrderItem")).Return(nil).Once()

		// Act
		_, err := svc.PlaceOrder(ctx, userID, items)

		// Assert: no deduplication, both rows go through
		assert.NoError(t, err)
		passedItems := mockRepo.Calls[0].Arguments.Get(2).([]models.OrderItem)
		assert.Len(t, passedItems, 2)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, zap.NewNop())
		items := []OrderItemRequest{{ProductID: uuid.New(), Quantity: 1}}
		mockRepo.On("CreateWithItems", ctx, mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

		// Act
		_, err := svc.PlaceOrder(ctx, userID, items)

		// Assert: surfaced as a storage error, order not placed
		var appErr *apperrors.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetOrderDetails_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockOrderRepository)
	svc := NewOrderService(mockRepo, zap.NewNop())
	userID, orderID := uuid.New(), uuid.New()

	mockRepo.On("FindByIDAndUserID", ctx, orderID, userID).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := svc.GetOrderDetails(ctx, userID, orderID)

	var appErr *apperrors.Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
