package handler

import (
	"log/slog"
	"net/http"

	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/response"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for stock and procurement handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// SetStockRequest represents the request body for overwriting a stock level
type SetStockRequest struct {
	IngredientName string  `json:"ingredient_name" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"min=0"`
	Unit           string  `json:"unit" validate:"required"`
}

// WriteOffRequest represents the request body for a manual stock write-off
type WriteOffRequest struct {
	IngredientName string  `json:"ingredient_name" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"required,gt=0"`
	Unit           string  `json:"unit" validate:"required"`
	Reason         string  `json:"reason" validate:"required"`
}

// PurchaseRequestLine is one line of a procurement request
type PurchaseRequestLine struct {
	IngredientName string  `json:"ingredient_name" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"required,gt=0"`
	Unit           string  `json:"unit" validate:"required"`
}

// RequestPurchaseRequest represents the request body for filing procurement requests
type RequestPurchaseRequest struct {
	Lines []PurchaseRequestLine `json:"lines" validate:"required,min=1,dive"`
}

// DecideRequestRequest represents the request body for deciding a purchase request
type DecideRequestRequest struct {
	Approve bool `json:"approve"`
}

// ListStock handles retrieving every ingredient with its stock level
func (h *InventoryHandler) ListStock(c echo.Context) error {
	lines, err := h.inventoryUC.ListStock(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lines, "Stock retrieved successfully")
}

// SetStock handles overwriting the stock level of an ingredient
func (h *InventoryHandler) SetStock(c echo.Context) error {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req SetStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	stock, err := h.inventoryUC.SetStockQuantity(c.Request().Context(), actorID, req.IngredientName, req.Quantity, req.Unit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stock, "Stock updated successfully")
}

// WriteOff handles removing spoiled or wasted stock
func (h *InventoryHandler) WriteOff(c echo.Context) error {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req WriteOffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid write-off input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	writeOff, err := h.inventoryUC.WriteOff(c.Request().Context(), usecase.WriteOffInput{
		ActorID:        actorID,
		IngredientName: req.IngredientName,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Reason:         req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, writeOff, "Stock written off successfully")
}

// RequestPurchase handles filing procurement requests
func (h *InventoryHandler) RequestPurchase(c echo.Context) error {
	requesterID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req RequestPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid procurement input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	inputs := make([]usecase.PurchaseRequestInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		inputs = append(inputs, usecase.PurchaseRequestInput{
			RequesterID:    requesterID,
			IngredientName: line.IngredientName,
			Quantity:       line.Quantity,
			Unit:           line.Unit,
		})
	}

	requests, err := h.inventoryUC.RequestPurchase(c.Request().Context(), inputs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, requests, "Purchase requests filed successfully")
}

// DecideRequest handles approving or rejecting a pending purchase request
func (h *InventoryHandler) DecideRequest(c echo.Context) error {
	adminID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var req DecideRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	request, err := h.inventoryUC.DecideRequest(c.Request().Context(), adminID, requestID, req.Approve)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Purchase request decided successfully")
}

// ListPendingRequests handles retrieving the procurement approval queue
func (h *InventoryHandler) ListPendingRequests(c echo.Context) error {
	requests, err := h.inventoryUC.ListPendingRequests(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Pending requests retrieved successfully")
}

// ListAccountRequests handles retrieving the caller's procurement requests
func (h *InventoryHandler) ListAccountRequests(c echo.Context) error {
	requesterID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	requests, err := h.inventoryUC.ListAccountRequests(c.Request().Context(), requesterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Requests retrieved successfully")
}
