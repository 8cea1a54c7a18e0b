package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager repository.TransactionManager
	notifier  service.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Notifier  service.Notifier
	Logger    *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// GetWeeklyMenu retrieves the full school-week menu.
func (s *catalogService) GetWeeklyMenu(ctx context.Context) ([]*entity.MealDefinition, error) {
	var meals []*entity.MealDefinition

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.CatalogRepo().ListMeals(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list meals")
		}
		meals = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return meals, nil
}

// GetMeal retrieves the meal defined for a single slot.
func (s *catalogService) GetMeal(ctx context.Context, slot entity.Slot) (*entity.MealDefinition, error) {
	if !slot.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown day or meal type")
	}

	var meal *entity.MealDefinition

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.CatalogRepo().FindMeal(ctx, slot)
		if err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrSlotNotFound
			}

			return errors.Wrap(err, "failed to find meal")
		}
		meal = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return meal, nil
}

// UpsertMeal replaces the definition of a slot. Ingredients named by the
// recipe are created lazily with a zero price; orders sold before the edit
// keep their frozen snapshot.
func (s *catalogService) UpsertMeal(ctx context.Context, input usecase.UpsertMealInput) (*entity.MealDefinition, error) {
	slot := entity.Slot{Day: input.Day, Meal: input.Meal}
	if !slot.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown day or meal type")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("meal name is required")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	for _, line := range input.Recipe {
		if strings.TrimSpace(line.IngredientName) == "" || line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("each recipe line needs an ingredient name and a positive quantity")
		}
	}

	var meal *entity.MealDefinition

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		for _, line := range input.Recipe {
			if _, err := txRepos.CatalogRepo().EnsureIngredient(ctx, line.IngredientName); err != nil {
				return errors.Wrap(err, "failed to ensure recipe ingredient")
			}
		}

		meal = &entity.MealDefinition{
			ID:        uuid.New(),
			Slot:      slot,
			Name:      input.Name,
			Price:     input.Price,
			Recipe:    input.Recipe,
			UpdatedAt: s.now(),
		}
		if err := txRepos.CatalogRepo().UpsertMeal(ctx, meal); err != nil {
			return errors.Wrap(err, "failed to upsert meal")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "menu updated",
		slog.String("day", string(input.Day)),
		slog.String("meal_type", string(input.Meal)),
		slog.String("name", input.Name))
	s.notifier.NotifyRole(ctx, entity.RoleStudent, service.Event{
		Severity: entity.SeverityInfo,
		Title:    "Menu updated",
		Message:  fmt.Sprintf("%s %s is now %s", input.Day, input.Meal, input.Name),
	})

	return meal, nil
}

// ListIngredients retrieves every known ingredient with its price.
func (s *catalogService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredients []*entity.Ingredient

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.CatalogRepo().ListIngredients(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list ingredients")
		}
		ingredients = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ingredients, nil
}

// SetIngredientPrice updates the live costing price of an ingredient. Frozen
// order snapshots are untouched; only future costing reflects the change.
func (s *catalogService) SetIngredientPrice(ctx context.Context, actorID uuid.UUID, ingredientName string, price decimal.Decimal) (*entity.Ingredient, error) {
	if price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	var ingredient *entity.Ingredient

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.CatalogRepo().FindIngredientByName(ctx, ingredientName)
		if err != nil {
			if errors.Is(err, repository.ErrIngredientNotFound) {
				return domainerrors.ErrIngredientNotFound
			}

			return errors.Wrap(err, "failed to find ingredient")
		}

		if err := txRepos.CatalogRepo().SetIngredientPrice(ctx, found.ID, price); err != nil {
			return errors.Wrap(err, "failed to set ingredient price")
		}
		found.PricePerUnit = price
		ingredient = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "ingredient price updated",
		slog.String("ingredient", ingredientName),
		slog.String("price", price.String()),
		slog.String("actor_id", actorID.String()))

	return ingredient, nil
}
