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

type bundleFixture struct {
	service     *bundleService
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	catalogRepo *mockRepo.MockCatalogRepository
	orderRepo   *mockRepo.MockOrderRepository
	subRepo     *mockRepo.MockSubscriptionRepository
	notifier    *mockSvc.MockNotifier
}

func newBundleFixture(t *testing.T) *bundleFixture {
	t.Helper()

	f := &bundleFixture{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		subRepo:     mockRepo.NewMockSubscriptionRepository(t),
		notifier:    mockSvc.NewMockNotifier(t),
	}
	service := NewBundleService(BundleServiceParams{
		TxManager: newTxManager(t, f.factory),
		Notifier:  f.notifier,
		Logger:    newDiscardLogger(),
	}).(*bundleService)
	service.now = fixedClock(wednesdayNoon)
	f.service = service

	return f
}

// twoDayMenu defines lunch meals for every school day at a flat price.
func twoDayMenu(price int64) []*entity.MealDefinition {
	meals := make([]*entity.MealDefinition, 0, len(entity.SchoolDays))
	for _, day := range entity.SchoolDays {
		meals = append(meals, &entity.MealDefinition{
			ID:    uuid.New(),
			Slot:  entity.Slot{Day: day, Meal: entity.Lunch},
			Name:  "Lunch of the day",
			Price: decimal.NewFromInt(price),
			Recipe: []entity.RecipeLine{
				{IngredientName: "potato", Quantity: 0.3, Unit: "kg"},
			},
		})
	}

	return meals
}

func lunchSelection(days ...entity.DayOfWeek) entity.BundleSelection {
	selection := entity.BundleSelection{}
	for _, day := range days {
		selection[day] = entity.MealSelection{Lunch: true}
	}

	return selection
}

func TestBundleService_Quote_CountsOnlyUnpaidSlots(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	wednesday := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	thursday := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)

	f.catalogRepo.EXPECT().ListMeals(ctx).Return(twoDayMenu(50), nil)
	// Wednesday lunch was already bought individually.
	f.orderRepo.EXPECT().FindPaid(ctx, accountID, entity.Lunch, wednesday).
		Return(&entity.Order{ID: uuid.New(), MealName: "Lunch of the day"}, nil)
	f.orderRepo.EXPECT().FindPaid(ctx, accountID, entity.Lunch, thursday).
		Return(nil, repository.ErrOrderNotFound)

	quote, err := f.service.Quote(ctx, usecase.BundleQuoteInput{
		AccountID: accountID,
		DaysCount: 2,
		Selection: lunchSelection(entity.Wednesday, entity.Thursday),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, quote.MealCount)
	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(50)))
	assert.False(t, quote.Shifted)
	assert.Equal(t, wednesday, quote.StartDate)
	require.Len(t, quote.Skipped, 1)
	assert.Equal(t, entity.Wednesday, quote.Skipped[0].Day)
}

func TestBundleService_Quote_RejectsEmptySelection(t *testing.T) {
	f := newBundleFixture(t)

	_, err := f.service.Quote(context.Background(), usecase.BundleQuoteInput{
		AccountID: uuid.New(),
		DaysCount: 5,
		Selection: entity.BundleSelection{entity.Monday: {}},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

// The purchase re-walks the window, so a slot paid between quote and
// purchase is skipped and the charge shrinks accordingly.
func TestBundleService_Purchase_SkipsSlotPaidAfterQuote(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	account := testAccount(500)
	wednesday := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	thursday := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.subRepo.EXPECT().FindActiveByAccount(ctx, account.ID).Return(nil, repository.ErrSubscriptionNotFound)
	f.catalogRepo.EXPECT().ListMeals(ctx).Return(twoDayMenu(50), nil)
	f.orderRepo.EXPECT().FindPaid(ctx, account.ID, entity.Lunch, wednesday).
		Return(&entity.Order{ID: uuid.New(), MealName: "Lunch of the day"}, nil)
	f.orderRepo.EXPECT().FindPaid(ctx, account.ID, entity.Lunch, thursday).
		Return(nil, repository.ErrOrderNotFound)
	f.accountRepo.EXPECT().SetBalance(ctx, account.ID, decimalEq(decimal.NewFromInt(450))).Return(nil)
	f.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.subRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	result, err := f.service.Purchase(ctx, usecase.PurchaseBundleInput{
		AccountID: account.ID,
		DaysCount: 2,
		Selection: lunchSelection(entity.Wednesday, entity.Thursday),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.True(t, result.TotalCharged.Equal(decimal.NewFromInt(50)))
	require.Len(t, result.Skipped, 1)
	require.NotNil(t, result.Subscription)
	assert.Equal(t, 1, result.Subscription.MealCount)
	require.Len(t, result.Subscription.OrderIDs, 1)
	assert.Equal(t, thursday, result.Subscription.StartDate)
	assert.True(t, result.Subscription.Active)
}

func TestBundleService_Purchase_AllSlotsPaidIsNoOp(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	account := testAccount(500)
	wednesday := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.subRepo.EXPECT().FindActiveByAccount(ctx, account.ID).Return(nil, repository.ErrSubscriptionNotFound)
	f.catalogRepo.EXPECT().ListMeals(ctx).Return(twoDayMenu(50), nil)
	f.orderRepo.EXPECT().FindPaid(ctx, account.ID, entity.Lunch, wednesday).
		Return(&entity.Order{ID: uuid.New(), MealName: "Lunch of the day"}, nil)

	result, err := f.service.Purchase(ctx, usecase.PurchaseBundleInput{
		AccountID: account.ID,
		DaysCount: 1,
		Selection: lunchSelection(entity.Wednesday),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Nil(t, result.Subscription)
	assert.True(t, result.TotalCharged.IsZero())
}

func TestBundleService_Purchase_DuplicateBundleRejected(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	account := testAccount(500)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.subRepo.EXPECT().FindActiveByAccount(ctx, account.ID).
		Return(&entity.Subscription{ID: uuid.New(), Active: true}, nil)

	_, err := f.service.Purchase(ctx, usecase.PurchaseBundleInput{
		AccountID: account.ID,
		DaysCount: 2,
		Selection: lunchSelection(entity.Wednesday, entity.Thursday),
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateBundle)
}

func TestBundleService_Purchase_InsufficientFundsForAggregate(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	account := testAccount(70)
	wednesday := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	thursday := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.subRepo.EXPECT().FindActiveByAccount(ctx, account.ID).Return(nil, repository.ErrSubscriptionNotFound)
	f.catalogRepo.EXPECT().ListMeals(ctx).Return(twoDayMenu(50), nil)
	f.orderRepo.EXPECT().FindPaid(ctx, account.ID, entity.Lunch, wednesday).Return(nil, repository.ErrOrderNotFound)
	f.orderRepo.EXPECT().FindPaid(ctx, account.ID, entity.Lunch, thursday).Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.Purchase(ctx, usecase.PurchaseBundleInput{
		AccountID: account.ID,
		DaysCount: 2,
		Selection: lunchSelection(entity.Wednesday, entity.Thursday),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_FUNDS", appErr.ErrorCode())
}

// Cancellation refunds per order: the collected serving stays charged while
// the remaining paid orders come back at their frozen prices.
func TestBundleService_Cancel_RefundsOnlyCancellableOrders(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	owner := testAccount(0)
	collected := &entity.Order{ID: uuid.New(), AccountID: owner.ID, Status: entity.OrderPaid, Collected: true, MealPrice: decimal.NewFromInt(50)}
	open1 := &entity.Order{ID: uuid.New(), AccountID: owner.ID, Status: entity.OrderPaid, MealPrice: decimal.NewFromInt(50)}
	open2 := &entity.Order{ID: uuid.New(), AccountID: owner.ID, Status: entity.OrderPaid, MealPrice: decimal.NewFromInt(55)}
	sub := &entity.Subscription{
		ID:        uuid.New(),
		AccountID: owner.ID,
		Active:    true,
		OrderIDs:  []uuid.UUID{collected.ID, open1.ID, open2.ID},
	}

	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)
	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)

	f.subRepo.EXPECT().FindByID(ctx, sub.ID).Return(sub, nil)
	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, owner.ID).Return(owner, nil)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, collected.ID).Return(collected, nil)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, open1.ID).Return(open1, nil)
	f.orderRepo.EXPECT().FindByIDForUpdate(ctx, open2.ID).Return(open2, nil)
	f.orderRepo.EXPECT().Cancel(ctx, open1.ID).Return(nil)
	f.orderRepo.EXPECT().Cancel(ctx, open2.ID).Return(nil)
	f.accountRepo.EXPECT().SetBalance(ctx, owner.ID, decimalEq(decimal.NewFromInt(105))).Return(nil)
	f.subRepo.EXPECT().Deactivate(ctx, sub.ID).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	result, err := f.service.Cancel(ctx, usecase.CancelBundleInput{
		ActorID:        uuid.New(),
		SubscriptionID: sub.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.CancelledOrders)
	assert.True(t, result.RefundTotal.Equal(decimal.NewFromInt(105)))
	assert.False(t, result.Subscription.Active)
}

func TestBundleService_Cancel_InactiveBundleRejected(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	sub := &entity.Subscription{ID: uuid.New(), Active: false}

	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)
	f.subRepo.EXPECT().FindByID(ctx, sub.ID).Return(sub, nil)

	_, err := f.service.Cancel(ctx, usecase.CancelBundleInput{
		ActorID:        uuid.New(),
		SubscriptionID: sub.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveBundle)
}

func TestBundleService_Cancel_UnknownBundle(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	id := uuid.New()

	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)
	f.subRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSubscriptionNotFound)

	_, err := f.service.Cancel(ctx, usecase.CancelBundleInput{
		ActorID:        uuid.New(),
		SubscriptionID: id,
	})
	assert.ErrorIs(t, err, domainerrors.ErrBundleNotFound)
}

func TestBundleService_GetActiveBundle_NotFound(t *testing.T) {
	f := newBundleFixture(t)
	ctx := context.Background()

	accountID := uuid.New()

	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)
	f.subRepo.EXPECT().FindActiveByAccount(ctx, accountID).Return(nil, repository.ErrSubscriptionNotFound)

	_, err := f.service.GetActiveBundle(ctx, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrBundleNotFound)
}
