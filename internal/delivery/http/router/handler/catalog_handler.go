package handler

import (
	"log/slog"
	"net/http"

	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/response"
	"canteen/internal/domain/entity"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for weekly menu handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// RecipeLineRequest is one ingredient requirement of a meal definition
type RecipeLineRequest struct {
	IngredientName string  `json:"name" validate:"required"`
	Quantity       float64 `json:"qty" validate:"required,gt=0"`
	Unit           string  `json:"unit" validate:"required"`
}

// UpsertMealRequest represents the request body for defining a meal slot
type UpsertMealRequest struct {
	Name   string              `json:"name" validate:"required"`
	Price  decimal.Decimal     `json:"price" validate:"required"`
	Recipe []RecipeLineRequest `json:"recipe" validate:"required,min=1,dive"`
}

// SetIngredientPriceRequest represents the request body for an ingredient price update
type SetIngredientPriceRequest struct {
	Price decimal.Decimal `json:"price" validate:"required"`
}

// GetWeeklyMenu handles retrieving the full school-week menu
func (h *CatalogHandler) GetWeeklyMenu(c echo.Context) error {
	meals, err := h.catalogUC.GetWeeklyMenu(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meals, "Weekly menu retrieved successfully")
}

// GetMeal handles retrieving the definition of one meal slot
func (h *CatalogHandler) GetMeal(c echo.Context) error {
	slot := entity.Slot{
		Day:  entity.DayOfWeek(c.Param("day")),
		Meal: entity.MealType(c.Param("meal")),
	}
	if !slot.Valid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown day or meal type")
	}

	meal, err := h.catalogUC.GetMeal(c.Request().Context(), slot)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meal, "Meal retrieved successfully")
}

// UpsertMeal handles creating or replacing the definition of a meal slot
func (h *CatalogHandler) UpsertMeal(c echo.Context) error {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req UpsertMealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	recipe := make([]entity.RecipeLine, 0, len(req.Recipe))
	for _, line := range req.Recipe {
		recipe = append(recipe, entity.RecipeLine{
			IngredientName: line.IngredientName,
			Quantity:       line.Quantity,
			Unit:           line.Unit,
		})
	}

	meal, err := h.catalogUC.UpsertMeal(c.Request().Context(), usecase.UpsertMealInput{
		ActorID: actorID,
		Day:     entity.DayOfWeek(c.Param("day")),
		Meal:    entity.MealType(c.Param("meal")),
		Name:    req.Name,
		Price:   req.Price,
		Recipe:  recipe,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meal, "Meal definition saved successfully")
}

// ListIngredients handles retrieving every known ingredient
func (h *CatalogHandler) ListIngredients(c echo.Context) error {
	ingredients, err := h.catalogUC.ListIngredients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients, "Ingredients retrieved successfully")
}

// SetIngredientPrice handles updating the live costing price of an ingredient
func (h *CatalogHandler) SetIngredientPrice(c echo.Context) error {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req SetIngredientPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ingredient, err := h.catalogUC.SetIngredientPrice(c.Request().Context(), actorID, c.Param("name"), req.Price)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredient, "Ingredient price updated successfully")
}
