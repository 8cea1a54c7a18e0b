package impl

import (
	"context"
	"testing"
	"time"

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

// wednesdayNoon is the anchor instant for calendar-sensitive tests.
var wednesdayNoon = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

type orderFixture struct {
	service     *orderService
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	catalogRepo *mockRepo.MockCatalogRepository
	stockRepo   *mockRepo.MockStockRepository
	orderRepo   *mockRepo.MockOrderRepository
	idemRepo    *mockRepo.MockIdempotencyRepository
	notifier    *mockSvc.MockNotifier
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		stockRepo:   mockRepo.NewMockStockRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		idemRepo:    mockRepo.NewMockIdempotencyRepository(t),
		notifier:    mockSvc.NewMockNotifier(t),
	}
	service := NewOrderService(OrderServiceParams{
		TxManager: newTxManager(t, f.factory),
		Notifier:  f.notifier,
		Logger:    newDiscardLogger(),
	}).(*orderService)
	service.now = fixedClock(wednesdayNoon)
	f.service = service

	return f
}

func testAccount(balance int64) *entity.Account {
	return &entity.Account{
		ID:      uuid.New(),
		Role:    entity.RoleStudent,
		Balance: decimal.NewFromInt(balance),
		State:   entity.AccountActive,
	}
}

func testMeal(slot entity.Slot, price int64) *entity.MealDefinition {
	return &entity.MealDefinition{
		ID:    uuid.New(),
		Slot:  slot,
		Name:  "Borscht with bread",
		Price: decimal.NewFromInt(price),
		Recipe: []entity.RecipeLine{
			{IngredientName: "beetroot", Quantity: 0.2, Unit: "kg"},
			{IngredientName: "bread", Quantity: 1, Unit: "pcs"},
		},
	}
}

func decimalEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}

func TestOrderService_PurchaseSlot_FreezesSnapshotAndDebits(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	account := testAccount(100)
	slot := entity.Slot{Day: entity.Wednesday, Meal: entity.Lunch}
	meal := testMeal(slot, 60)
	servingDate := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.catalogRepo.EXPECT().FindMeal(ctx, slot).Return(meal, nil)
	f.orderRepo.EXPECT().FindPaid(ctx, account.ID, entity.Lunch, servingDate).Return(nil, repository.ErrOrderNotFound)
	f.accountRepo.EXPECT().SetBalance(ctx, account.ID, decimalEq(decimal.NewFromInt(40))).Return(nil)
	f.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	order, err := f.service.PurchaseSlot(ctx, usecase.PurchaseSlotInput{
		AccountID: account.ID,
		Day:       entity.Wednesday,
		Meal:      entity.Lunch,
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderPaid, order.Status)
	assert.Equal(t, entity.SourceSingle, order.Source)
	assert.Equal(t, servingDate, order.ServingDate)
	assert.Equal(t, meal.Name, order.MealName)
	assert.True(t, order.MealPrice.Equal(meal.Price))
	assert.Equal(t, meal.Recipe, order.Recipe)
	assert.False(t, order.Collected)
	assert.False(t, order.BuyerConfirmed)
}

func TestOrderService_PurchaseSlot_InsufficientFunds(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	account := testAccount(50)
	slot := entity.Slot{Day: entity.Wednesday, Meal: entity.Lunch}
	meal := testMeal(slot, 60)
	servingDate := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.catalogRepo.EXPECT().FindMeal(ctx, slot).Return(meal, nil)
	f.orderRepo.EXPECT().FindPaid(ctx, account.ID, entity.Lunch, servingDate).Return(nil, repository.ErrOrderNotFound)

	order, err := f.service.PurchaseSlot(ctx, usecase.PurchaseSlotInput{
		AccountID: account.ID,
		Day:       entity.Wednesday,
		Meal:      entity.Lunch,
	})
	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_FUNDS", appErr.ErrorCode())
}

func TestOrderService_PurchaseSlot_AlreadyPaid(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	account := testAccount(100)
	slot := entity.Slot{Day: entity.Wednesday, Meal: entity.Lunch}
	meal := testMeal(slot, 60)
	servingDate := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.catalogRepo.EXPECT().FindMeal(ctx, slot).Return(meal, nil)
	f.orderRepo.EXPECT().FindPaid(ctx, account.ID, entity.Lunch, servingDate).
		Return(&entity.Order{ID: uuid.New(), Status: entity.OrderPaid}, nil)

	_, err := f.service.PurchaseSlot(ctx, usecase.PurchaseSlotInput{
		AccountID: account.ID,
		Day:       entity.Wednesday,
		Meal:      entity.Lunch,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPaid)
}

func TestOrderService_PurchaseSlot_PastDayRejected(t *testing.T) {
	f := newOrderFixture(t)

	// Monday already passed on a Wednesday.
	_, err := f.service.PurchaseSlot(context.Background(), usecase.PurchaseSlotInput{
		AccountID: uuid.New(),
		Day:       entity.Monday,
		Meal:      entity.Breakfast,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPastSlot)
}

func TestOrderService_PurchaseSlot_NoMealDefined(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	account := testAccount(100)
	slot := entity.Slot{Day: entity.Friday, Meal: entity.Breakfast}

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.catalogRepo.EXPECT().FindMeal(ctx, slot).Return(nil, repository.ErrMealNotFound)

	_, err := f.service.PurchaseSlot(ctx, usecase.PurchaseSlotInput{
		AccountID: account.ID,
		Day:       entity.Friday,
		Meal:      entity.Breakfast,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSlotNotFound)
}

func TestOrderService_PurchaseSlot_ArchivedAccount(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	account := testAccount(100)
	account.State = entity.AccountArchived

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)

	_, err := f.service.PurchaseSlot(ctx, usecase.PurchaseSlotInput{
		AccountID: account.ID,
		Day:       entity.Thursday,
		Meal:      entity.Lunch,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccountArchived)
}

func TestOrderService_PurchaseSlot_IdempotentReplay(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	existing := &entity.Order{
		ID:        uuid.New(),
		AccountID: accountID,
		Status:    entity.OrderPaid,
		MealPrice: decimal.NewFromInt(60),
	}

	f.factory.EXPECT().IdempotencyRepo().Return(f.idemRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)

	f.idemRepo.EXPECT().FindByKey(ctx, "retry-1").Return(&entity.IdempotencyRecord{
		Key:         "retry-1",
		Kind:        entity.IdemPurchaseSlot,
		AccountID:   accountID,
		ReferenceID: existing.ID,
	}, nil)
	f.orderRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	order, err := f.service.PurchaseSlot(ctx, usecase.PurchaseSlotInput{
		AccountID:      accountID,
		Day:            entity.Wednesday,
		Meal:           entity.Lunch,
		IdempotencyKey: "retry-1",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, order.ID)
}

func TestOrderService_MarkCollected_DeductsFrozenRecipe(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		Status:      entity.OrderPaid,
		ServingDate: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		MealName:    "Borscht with bread",
		Recipe: []entity.RecipeLine{
			{IngredientName: "beetroot", Quantity: 0.2, Unit: "kg"},
			{IngredientName: "bread", Quantity: 1, Unit: "pcs"},
		},
	}
	beetroot := &entity.Stock{ID: uuid.New(), Quantity: 1.0, Unit: "kg"}
	bread := &entity.Stock{ID: uuid.New(), Quantity: 5, Unit: "pcs"}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)

	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	f.stockRepo.EXPECT().LockByIngredientNames(ctx, []string{"beetroot", "bread"}).
		Return(map[string]*entity.Stock{"beetroot": beetroot, "bread": bread}, nil)
	f.stockRepo.EXPECT().SetQuantity(ctx, beetroot.ID, 0.8).Return(nil)
	f.stockRepo.EXPECT().SetQuantity(ctx, bread.ID, 4.0).Return(nil)
	f.orderRepo.EXPECT().MarkCollected(ctx, order.ID, wednesdayNoon).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	collected, err := f.service.MarkCollected(ctx, uuid.New(), order.ID)
	require.NoError(t, err)
	assert.True(t, collected.Collected)
	require.NotNil(t, collected.CollectedAt)
}

func TestOrderService_MarkCollected_ReportsEveryShortfall(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:          uuid.New(),
		Status:      entity.OrderPaid,
		ServingDate: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		Recipe: []entity.RecipeLine{
			{IngredientName: "beetroot", Quantity: 0.5, Unit: "kg"},
			{IngredientName: "bread", Quantity: 2, Unit: "pcs"},
			{IngredientName: "sour cream", Quantity: 0.05, Unit: "kg"},
		},
	}
	// beetroot short, sour cream never stocked, bread fine.
	beetroot := &entity.Stock{ID: uuid.New(), Quantity: 0.1, Unit: "kg"}
	bread := &entity.Stock{ID: uuid.New(), Quantity: 10, Unit: "pcs"}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)

	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	f.stockRepo.EXPECT().LockByIngredientNames(ctx, []string{"beetroot", "bread", "sour cream"}).
		Return(map[string]*entity.Stock{"beetroot": beetroot, "bread": bread}, nil)

	_, err := f.service.MarkCollected(ctx, uuid.New(), order.ID)
	require.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Len(t, stockErr.Shortfalls, 2)
	assert.Equal(t, "beetroot", stockErr.Shortfalls[0].IngredientName)
	assert.True(t, stockErr.Shortfalls[0].Known)
	assert.Equal(t, "sour cream", stockErr.Shortfalls[1].IngredientName)
	assert.False(t, stockErr.Shortfalls[1].Known)
}

func TestOrderService_MarkCollected_NotDueToday(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:          uuid.New(),
		Status:      entity.OrderPaid,
		ServingDate: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := f.service.MarkCollected(ctx, uuid.New(), order.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_MarkCollected_AlreadyCollected(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:          uuid.New(),
		Status:      entity.OrderPaid,
		Collected:   true,
		ServingDate: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := f.service.MarkCollected(ctx, uuid.New(), order.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_ConfirmConsumption_OwnershipEnforced(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Status:    entity.OrderPaid,
		Collected: true,
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := f.service.ConfirmConsumption(ctx, uuid.New(), order.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestOrderService_ConfirmConsumption_RequiresCollection(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	order := &entity.Order{
		ID:        uuid.New(),
		AccountID: accountID,
		Status:    entity.OrderPaid,
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := f.service.ConfirmConsumption(ctx, accountID, order.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_ConfirmConsumption_Succeeds(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	order := &entity.Order{
		ID:        uuid.New(),
		AccountID: accountID,
		Status:    entity.OrderPaid,
		Collected: true,
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	f.orderRepo.EXPECT().MarkConfirmed(ctx, order.ID, wednesdayNoon).Return(nil)
	f.notifier.EXPECT().NotifyRole(ctx, entity.RoleStaff, mock.AnythingOfType("service.Event")).Return()

	confirmed, err := f.service.ConfirmConsumption(ctx, accountID, order.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.BuyerConfirmed)
	assert.True(t, confirmed.FullyConsumed())
}

// The refund is the frozen price from the order snapshot, untouched by any
// later catalog repricing.
func TestOrderService_CancelOrder_RefundsFrozenPrice(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	owner := testAccount(10)
	order := &entity.Order{
		ID:        uuid.New(),
		AccountID: owner.ID,
		Status:    entity.OrderPaid,
		MealPrice: decimal.NewFromInt(60),
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)

	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, owner.ID).Return(owner, nil)
	f.accountRepo.EXPECT().SetBalance(ctx, owner.ID, decimalEq(decimal.NewFromInt(70))).Return(nil)
	f.orderRepo.EXPECT().Cancel(ctx, order.ID).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	result, err := f.service.CancelOrder(ctx, usecase.CancelOrderInput{
		ActorID:   owner.ID,
		ActorRole: entity.RoleStudent,
		OrderID:   order.ID,
	})
	require.NoError(t, err)
	assert.True(t, result.Refund.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, entity.OrderCancelled, result.Order.Status)
}

func TestOrderService_CancelOrder_CollectedOrderStaysCharged(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	owner := uuid.New()
	order := &entity.Order{
		ID:        uuid.New(),
		AccountID: owner,
		Status:    entity.OrderPaid,
		Collected: true,
		MealPrice: decimal.NewFromInt(60),
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := f.service.CancelOrder(ctx, usecase.CancelOrderInput{
		ActorID:   owner,
		ActorRole: entity.RoleStudent,
		OrderID:   order.ID,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_CancelOrder_StrangerForbidden(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Status:    entity.OrderPaid,
		MealPrice: decimal.NewFromInt(60),
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := f.service.CancelOrder(ctx, usecase.CancelOrderInput{
		ActorID:   uuid.New(),
		ActorRole: entity.RoleStudent,
		OrderID:   order.ID,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestOrderService_CancelOrder_AdminCancelsForeignOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	owner := testAccount(0)
	order := &entity.Order{
		ID:        uuid.New(),
		AccountID: owner.ID,
		Status:    entity.OrderPaid,
		MealPrice: decimal.NewFromInt(45),
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)

	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, owner.ID).Return(owner, nil)
	f.accountRepo.EXPECT().SetBalance(ctx, owner.ID, decimalEq(decimal.NewFromInt(45))).Return(nil)
	f.orderRepo.EXPECT().Cancel(ctx, order.ID).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	result, err := f.service.CancelOrder(ctx, usecase.CancelOrderInput{
		ActorID:   uuid.New(),
		ActorRole: entity.RoleAdmin,
		OrderID:   order.ID,
	})
	require.NoError(t, err)
	assert.True(t, result.Refund.Equal(decimal.NewFromInt(45)))
}
