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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account and ledger handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// TopupRequest represents the request body for a balance top-up
type TopupRequest struct {
	AccountID *uuid.UUID      `json:"account_id,omitempty"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
}

// ArchiveAccountRequest represents the request body for archiving an account
type ArchiveAccountRequest struct {
	Reason string `json:"reason"`
}

// listArchivedResponse pairs archived accounts with their audit records
type listArchivedResponse struct {
	Accounts []*entity.Account    `json:"accounts"`
	Logs     []*entity.ArchiveLog `json:"logs"`
}

// GetProfile handles retrieving the caller's own account
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Account retrieved successfully")
}

// GetAccount handles retrieving any account by ID
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Account retrieved successfully")
}

// Topup handles crediting an account balance
func (h *AccountHandler) Topup(c echo.Context) error {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	role, _ := middleware.GetRole(c)

	var req TopupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid top-up input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	// Without an explicit target the caller tops up their own account.
	targetID := actorID
	if req.AccountID != nil {
		targetID = *req.AccountID
	}

	account, err := h.accountUC.Topup(c.Request().Context(), usecase.TopupInput{
		ActorID:   actorID,
		ActorRole: role,
		AccountID: targetID,
		Amount:    req.Amount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Balance topped up successfully")
}

// Archive handles retiring an account with refunds and an audit record
func (h *AccountHandler) Archive(c echo.Context) error {
	adminID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	var req ArchiveAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid archive input")
	}

	result, err := h.accountUC.Archive(c.Request().Context(), usecase.ArchiveAccountInput{
		AdminID:   adminID,
		AccountID: accountID,
		Reason:    req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Account archived successfully")
}

// ListByRole handles retrieving active accounts holding a role
func (h *AccountHandler) ListByRole(c echo.Context) error {
	role := entity.Role(c.QueryParam("role"))
	if role != entity.RoleStudent && role != entity.RoleStaff && role != entity.RoleAdmin {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'role' must be student, staff or admin")
	}

	accounts, err := h.accountUC.ListByRole(c.Request().Context(), role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, accounts, "Accounts retrieved successfully")
}

// ListArchived handles retrieving archived accounts with their audit trail
func (h *AccountHandler) ListArchived(c echo.Context) error {
	accounts, logs, err := h.accountUC.ListArchived(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listArchivedResponse{
		Accounts: accounts,
		Logs:     logs,
	}, "Archived accounts retrieved successfully")
}
