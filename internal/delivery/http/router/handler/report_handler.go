package handler

import (
	"log/slog"
	"net/http"
	"time"

	"canteen/internal/delivery/http/response"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for reporting handlers
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// Deficit handles projecting stock needs for one serving cycle
func (h *ReportHandler) Deficit(c echo.Context) error {
	lines, err := h.reportUC.DeficitReport(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lines, "Deficit report computed successfully")
}

// PlanVsFact handles comparing planned against actual ingredient usage
func (h *ReportHandler) PlanVsFact(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	lines, err := h.reportUC.PlanVsFact(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lines, "Plan vs fact report computed successfully")
}

// WriteOffs handles the costed write-off journal over a range
func (h *ReportHandler) WriteOffs(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	report, err := h.reportUC.WriteOffs(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Write-off report computed successfully")
}

// Spend handles totalling approved procurement over a range
func (h *ReportHandler) Spend(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	report, err := h.reportUC.ProcurementSpend(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Spend report computed successfully")
}

// Weekly handles the order and revenue summary of the current week
func (h *ReportHandler) Weekly(c echo.Context) error {
	summary, err := h.reportUC.WeeklySummary(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Weekly summary computed successfully")
}

// Dashboard handles the combined admin report
func (h *ReportHandler) Dashboard(c echo.Context) error {
	report, err := h.reportUC.Dashboard(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Dashboard computed successfully")
}

// parseRange reads the from/to query parameters as UTC dates.
func parseRange(c echo.Context) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(servingDateLayout, c.QueryParam("from"), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "query parameter 'from' must be YYYY-MM-DD")
	}

	to, err := time.ParseInLocation(servingDateLayout, c.QueryParam("to"), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "query parameter 'to' must be YYYY-MM-DD")
	}

	return from, to, nil
}
