package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/response"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for in-app notification handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// List handles retrieving the caller's recent notifications
func (h *NotificationHandler) List(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	limit := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'limit' must be a non-negative integer")
		}
		limit = parsed
	}

	notifications, err := h.notificationUC.List(c.Request().Context(), accountID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// UnreadCount handles retrieving the caller's unread notification count
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// MarkRead handles marking one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("notificationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), accountID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// Delete handles removing one notification of the caller
func (h *NotificationHandler) Delete(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("notificationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.Delete(c.Request().Context(), accountID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// MarkAllRead handles marking every notification of the caller as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	if err := h.notificationUC.MarkAllRead(c.Request().Context(), accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked as read")
}
