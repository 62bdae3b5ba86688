package controllers

import (
	"context"
	"net/http"

	"storefront-service/apperrors"
	"storefront-service/middleware"
	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlaceOrderRequest carries the line items directly in the payload; the cart
// is not consulted.
type PlaceOrderRequest struct {
	Items []services.OrderItemRequest `json:"items" binding:"required"`
}

// OrderAPI is the order service surface the controller depends on.
type OrderAPI interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, items []services.OrderItemRequest) (*models.Order, error)
	GetOrderHistory(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	GetOrderDetails(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
}

type OrderController struct {
	service OrderAPI
}

func NewOrderController(service OrderAPI) *OrderController {
	return &OrderController{service: service}
}

// PlaceOrder creates an order with all its line items for the caller.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	order, err := oc.service.PlaceOrder(c.Request.Context(), userID, req.Items)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order placed successfully",
		"order_id": order.ID,
	})
}

// GetOrderHistory returns the caller's order headers.
func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := oc.service.GetOrderHistory(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderDetails returns one of the caller's orders with its line items.
func (oc *OrderController) GetOrderDetails(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := oc.service.GetOrderDetails(c.Request.Context(), userID, orderID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
