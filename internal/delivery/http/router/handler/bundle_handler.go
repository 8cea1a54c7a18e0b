package handler

import (
	"log/slog"
	"net/http"

	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/response"
	"canteen/internal/domain/entity"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BundleHandlerParams holds dependencies for BundleHandler, injected by Fx.
type BundleHandlerParams struct {
	fx.In

	BundleUC usecase.BundleUsecase
	Logger   *slog.Logger
}

// BundleHandler holds dependencies for meal bundle handlers
type BundleHandler struct {
	bundleUC usecase.BundleUsecase
	logger   *slog.Logger
}

// NewBundleHandler is the constructor for BundleHandler
func NewBundleHandler(params BundleHandlerParams) *BundleHandler {
	return &BundleHandler{
		bundleUC: params.BundleUC,
		logger:   params.Logger,
	}
}

// BundleQuoteRequest represents the request body for a bundle price quote
type BundleQuoteRequest struct {
	DaysCount int                    `json:"days_count" validate:"required,min=1"`
	Selection entity.BundleSelection `json:"selection" validate:"required"`
}

// PurchaseBundleRequest represents the request body for buying a meal bundle
type PurchaseBundleRequest struct {
	DaysCount      int                    `json:"days_count" validate:"required,min=1"`
	Selection      entity.BundleSelection `json:"selection" validate:"required"`
	IdempotencyKey string                 `json:"idempotency_key"`
}

// Quote handles recomputing the advisory price of a bundle selection
func (h *BundleHandler) Quote(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req BundleQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.bundleUC.Quote(c.Request().Context(), usecase.BundleQuoteInput{
		AccountID: accountID,
		DaysCount: req.DaysCount,
		Selection: req.Selection,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Bundle quote computed successfully")
}

// Purchase handles buying a meal bundle in one ledger transaction
func (h *BundleHandler) Purchase(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req PurchaseBundleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bundle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.bundleUC.Purchase(c.Request().Context(), usecase.PurchaseBundleInput{
		AccountID:      accountID,
		DaysCount:      req.DaysCount,
		Selection:      req.Selection,
		IdempotencyKey: idempotencyKey(c, req.IdempotencyKey),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Bundle purchased successfully")
}

// Cancel handles revoking an active bundle with per-order refunds
func (h *BundleHandler) Cancel(c echo.Context) error {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	subscriptionID, err := uuid.Parse(c.Param("bundleId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	result, err := h.bundleUC.Cancel(c.Request().Context(), usecase.CancelBundleInput{
		ActorID:        actorID,
		SubscriptionID: subscriptionID,
		IdempotencyKey: idempotencyKey(c, ""),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Bundle cancelled successfully")
}

// GetActiveBundle handles retrieving the caller's active bundle
func (h *BundleHandler) GetActiveBundle(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	subscription, err := h.bundleUC.GetActiveBundle(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription, "Active bundle retrieved successfully")
}
