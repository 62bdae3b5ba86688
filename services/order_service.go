package services

import (
	"context"
	"errors"

	"storefront-service/apperrors"
	"storefront-service/models"
	"storefront-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderItemRequest is one (product, quantity) pair from the placement payload.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// OrderService drives order placement and order reads.
type OrderService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, log *zap.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, log: log}
}

// PlaceOrder validates the line items and creates the order header plus all
// items in one transaction. Validation failures happen before any storage
// interaction; storage failures leave nothing behind. Duplicate product ids
// in one request are allowed and produce duplicate line-item rows.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, items []OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.Validation("At least one item is required")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, apperrors.Validation("Item quantity must be a positive integer")
		}
	}

	order := &models.Order{UserID: userID}
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, orderItems); err != nil {
		// Covers commit failure too: the transaction outcome is then
		// indeterminate and the caller must assume the order was not placed.
		s.log.Error("order placement failed",
			zap.String("user_id", userID.String()),
			zap.Int("item_count", len(items)),
			zap.Error(err))
		return nil, apperrors.Database("Failed to place order", err)
	}

	s.log.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("item_count", len(orderItems)))
	return order, nil
}

// GetOrderHistory returns the user's order headers, newest first.
func (s *OrderService) GetOrderHistory(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Database("Failed to fetch orders", err)
	}
	return orders, nil
}

// GetOrderDetails returns one order with its line items, only when it belongs
// to the requesting user.
func (s *OrderService) GetOrderDetails(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.FindByIDAndUserID(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Database("Failed to fetch order", err)
	}
	return order, nil
}
