// Package handler contains the HTTP handlers of the delivery layer.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/response"
	"canteen/internal/domain/entity"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const servingDateLayout = "2006-01-02"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PurchaseSlotRequest represents the request body for buying a single meal slot
type PurchaseSlotRequest struct {
	Day            entity.DayOfWeek `json:"day" validate:"required"`
	Meal           entity.MealType  `json:"meal" validate:"required"`
	IdempotencyKey string           `json:"idempotency_key"`
}

// PurchaseSlot handles paying for one meal slot of the current week
func (h *OrderHandler) PurchaseSlot(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req PurchaseSlotRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.PurchaseSlot(c.Request().Context(), usecase.PurchaseSlotInput{
		AccountID:      accountID,
		Day:            req.Day,
		Meal:           req.Meal,
		IdempotencyKey: idempotencyKey(c, req.IdempotencyKey),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Meal slot purchased successfully")
}

// MarkCollected handles the kitchen handing out an order
func (h *OrderHandler) MarkCollected(c echo.Context) error {
	staffID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.MarkCollected(c.Request().Context(), staffID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order marked as collected")
}

// ConfirmConsumption handles the buyer confirming a collected order
func (h *OrderHandler) ConfirmConsumption(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.ConfirmConsumption(c.Request().Context(), accountID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Consumption confirmed")
}

// CancelOrder handles cancelling a paid, uncollected order for a refund
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	role, _ := middleware.GetRole(c)

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	result, err := h.orderUC.CancelOrder(c.Request().Context(), usecase.CancelOrderInput{
		ActorID:        actorID,
		ActorRole:      role,
		OrderID:        orderID,
		IdempotencyKey: idempotencyKey(c, ""),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Order cancelled successfully")
}

// GetAccountOrders handles retrieving the caller's order history
func (h *OrderHandler) GetAccountOrders(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	orders, err := h.orderUC.GetAccountOrders(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetServingQueue handles retrieving the kitchen's hand-out queue for a date
func (h *OrderHandler) GetServingQueue(c echo.Context) error {
	dateParam := c.QueryParam("date")
	if dateParam == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'date' is required")
	}

	servingDate, err := time.ParseInLocation(servingDateLayout, dateParam, time.UTC)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'date' must be YYYY-MM-DD")
	}

	orders, err := h.orderUC.GetServingQueue(c.Request().Context(), servingDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Serving queue retrieved successfully")
}

// idempotencyKey prefers the body-supplied key and falls back to the
// Idempotency-Key request header.
func idempotencyKey(c echo.Context, bodyKey string) string {
	if bodyKey != "" {
		return bodyKey
	}

	return c.Request().Header.Get("Idempotency-Key")
}
