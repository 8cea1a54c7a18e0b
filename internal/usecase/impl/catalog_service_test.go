package impl

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	mockSvc "canteen/internal/mocks/service"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	service     *catalogService
	factory     *mockRepo.MockRepositoryFactory
	catalogRepo *mockRepo.MockCatalogRepository
	notifier    *mockSvc.MockNotifier
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		notifier:    mockSvc.NewMockNotifier(t),
	}
	service := NewCatalogService(CatalogServiceParams{
		TxManager: newTxManager(t, f.factory),
		Notifier:  f.notifier,
		Logger:    newDiscardLogger(),
	}).(*catalogService)
	service.now = fixedClock(wednesdayNoon)
	f.service = service

	return f
}

func TestCatalogService_UpsertMeal_EnsuresRecipeIngredients(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.catalogRepo.EXPECT().EnsureIngredient(ctx, "beetroot").
		Return(&entity.Ingredient{ID: uuid.New(), Name: "beetroot"}, nil)
	f.catalogRepo.EXPECT().EnsureIngredient(ctx, "bread").
		Return(&entity.Ingredient{ID: uuid.New(), Name: "bread"}, nil)
	f.catalogRepo.EXPECT().UpsertMeal(ctx, mock.MatchedBy(func(meal *entity.MealDefinition) bool {
		return meal.Slot.Day == entity.Monday &&
			meal.Slot.Meal == entity.Lunch &&
			meal.Name == "Borscht with bread" &&
			len(meal.Recipe) == 2
	})).Return(nil)
	f.notifier.EXPECT().NotifyRole(ctx, entity.RoleStudent, mock.AnythingOfType("service.Event")).Return()

	meal, err := f.service.UpsertMeal(ctx, usecase.UpsertMealInput{
		ActorID: uuid.New(),
		Day:     entity.Monday,
		Meal:    entity.Lunch,
		Name:    "Borscht with bread",
		Price:   decimal.NewFromInt(60),
		Recipe: []entity.RecipeLine{
			{IngredientName: "beetroot", Quantity: 0.2, Unit: "kg"},
			{IngredientName: "bread", Quantity: 1, Unit: "pcs"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Borscht with bread", meal.Name)
}

func TestCatalogService_UpsertMeal_RejectsNonPositiveRecipeLine(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.service.UpsertMeal(context.Background(), usecase.UpsertMealInput{
		ActorID: uuid.New(),
		Day:     entity.Monday,
		Meal:    entity.Lunch,
		Name:    "Borscht",
		Price:   decimal.NewFromInt(60),
		Recipe:  []entity.RecipeLine{{IngredientName: "beetroot", Quantity: 0, Unit: "kg"}},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_SetIngredientPrice_UpdatesLivePrice(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	ingredient := &entity.Ingredient{ID: uuid.New(), Name: "beetroot", PricePerUnit: decimal.NewFromInt(30)}

	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.catalogRepo.EXPECT().FindIngredientByName(ctx, "beetroot").Return(ingredient, nil)
	f.catalogRepo.EXPECT().SetIngredientPrice(ctx, ingredient.ID, decimalEq(decimal.NewFromInt(35))).Return(nil)

	updated, err := f.service.SetIngredientPrice(ctx, uuid.New(), "beetroot", decimal.NewFromInt(35))
	require.NoError(t, err)
	assert.True(t, updated.PricePerUnit.Equal(decimal.NewFromInt(35)))
}

func TestCatalogService_GetMeal_UndefinedSlot(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	slot := entity.Slot{Day: entity.Tuesday, Meal: entity.Breakfast}

	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.catalogRepo.EXPECT().FindMeal(ctx, slot).Return(nil, repository.ErrMealNotFound)

	_, err := f.service.GetMeal(ctx, slot)
	assert.ErrorIs(t, err, domainerrors.ErrSlotNotFound)
}
