package impl

import (
	"context"
	"testing"
	"time"

	"canteen/internal/domain/entity"
	mockRepo "canteen/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	service      *reportService
	factory      *mockRepo.MockRepositoryFactory
	accountRepo  *mockRepo.MockAccountRepository
	catalogRepo  *mockRepo.MockCatalogRepository
	stockRepo    *mockRepo.MockStockRepository
	orderRepo    *mockRepo.MockOrderRepository
	procRepo     *mockRepo.MockProcurementRepository
	writeOffRepo *mockRepo.MockWriteOffRepository
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	f := &reportFixture{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		stockRepo:    mockRepo.NewMockStockRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		procRepo:     mockRepo.NewMockProcurementRepository(t),
		writeOffRepo: mockRepo.NewMockWriteOffRepository(t),
	}
	f.service = NewReportService(ReportServiceParams{
		TxManager: newTxManager(t, f.factory),
		Logger:    newDiscardLogger(),
	}).(*reportService)

	return f
}

func TestReportService_DeficitReport_CostsAndSortsShortfalls(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	beetroot := &entity.Ingredient{ID: uuid.New(), Name: "beetroot", PricePerUnit: decimal.NewFromInt(30)}
	bread := &entity.Ingredient{ID: uuid.New(), Name: "bread", PricePerUnit: decimal.NewFromInt(2)}
	meals := []*entity.MealDefinition{{
		ID:   uuid.New(),
		Slot: entity.Slot{Day: entity.Monday, Meal: entity.Lunch},
		Recipe: []entity.RecipeLine{
			{IngredientName: "beetroot", Quantity: 0.2, Unit: "kg"},
			{IngredientName: "bread", Quantity: 1, Unit: "pcs"},
		},
	}}

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)

	// 10 students, so one serving cycle needs 2kg beetroot and 10 bread.
	f.accountRepo.EXPECT().CountActiveByRole(ctx, entity.RoleStudent).Return(int64(10), nil)
	f.catalogRepo.EXPECT().ListMeals(ctx).Return(meals, nil)
	f.stockRepo.EXPECT().ListAll(ctx).Return([]*entity.Stock{
		{ID: uuid.New(), IngredientID: beetroot.ID, Quantity: 0.5, Unit: "kg"},
		{ID: uuid.New(), IngredientID: bread.ID, Quantity: 4, Unit: "pcs"},
	}, nil)
	f.catalogRepo.EXPECT().ListIngredients(ctx).Return([]*entity.Ingredient{beetroot, bread}, nil)

	lines, err := f.service.DeficitReport(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// Beetroot deficit 1.5kg at 30 = 45, bread deficit 6 at 2 = 12.
	assert.Equal(t, "beetroot", lines[0].IngredientName)
	assert.InDelta(t, 1.5, lines[0].Deficit, 1e-9)
	assert.True(t, lines[0].DeficitCost.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, "bread", lines[1].IngredientName)
	assert.True(t, lines[1].DeficitCost.Equal(decimal.NewFromInt(12)))
}

func TestReportService_DeficitReport_EmptyRosterProjectsOneServing(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	bread := &entity.Ingredient{ID: uuid.New(), Name: "bread", PricePerUnit: decimal.NewFromInt(2)}
	meals := []*entity.MealDefinition{{
		ID:     uuid.New(),
		Slot:   entity.Slot{Day: entity.Monday, Meal: entity.Lunch},
		Recipe: []entity.RecipeLine{{IngredientName: "bread", Quantity: 2, Unit: "pcs"}},
	}}

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)

	// No active students: the projection falls back to a single serving
	// instead of reporting nothing at all.
	f.accountRepo.EXPECT().CountActiveByRole(ctx, entity.RoleStudent).Return(int64(0), nil)
	f.catalogRepo.EXPECT().ListMeals(ctx).Return(meals, nil)
	f.stockRepo.EXPECT().ListAll(ctx).Return([]*entity.Stock{}, nil)
	f.catalogRepo.EXPECT().ListIngredients(ctx).Return([]*entity.Ingredient{bread}, nil)

	lines, err := f.service.DeficitReport(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.InDelta(t, 2, lines[0].Needed, 1e-9)
	assert.InDelta(t, 2, lines[0].Deficit, 1e-9)
	assert.True(t, lines[0].DeficitCost.Equal(decimal.NewFromInt(4)))
}

func TestReportService_DeficitReport_CoveredStockProducesNoLines(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	bread := &entity.Ingredient{ID: uuid.New(), Name: "bread", PricePerUnit: decimal.NewFromInt(2)}
	meals := []*entity.MealDefinition{{
		ID:     uuid.New(),
		Slot:   entity.Slot{Day: entity.Monday, Meal: entity.Lunch},
		Recipe: []entity.RecipeLine{{IngredientName: "bread", Quantity: 1, Unit: "pcs"}},
	}}

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)

	f.accountRepo.EXPECT().CountActiveByRole(ctx, entity.RoleStudent).Return(int64(5), nil)
	f.catalogRepo.EXPECT().ListMeals(ctx).Return(meals, nil)
	f.stockRepo.EXPECT().ListAll(ctx).Return([]*entity.Stock{
		{ID: uuid.New(), IngredientID: bread.ID, Quantity: 100, Unit: "pcs"},
	}, nil)
	f.catalogRepo.EXPECT().ListIngredients(ctx).Return([]*entity.Ingredient{bread}, nil)

	lines, err := f.service.DeficitReport(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReportService_PlanVsFact_SplitsByConsumption(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	potato := &entity.Ingredient{ID: uuid.New(), Name: "potato", PricePerUnit: decimal.NewFromInt(20)}
	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	consumed := &entity.Order{
		ID: uuid.New(), Status: entity.OrderPaid, Collected: true, BuyerConfirmed: true,
		Recipe: []entity.RecipeLine{{IngredientName: "potato", Quantity: 0.3, Unit: "kg"}},
	}
	unconsumed := &entity.Order{
		ID: uuid.New(), Status: entity.OrderPaid,
		Recipe: []entity.RecipeLine{{IngredientName: "potato", Quantity: 0.3, Unit: "kg"}},
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)

	f.orderRepo.EXPECT().ListPaidInRange(ctx, from, to).Return([]*entity.Order{consumed, unconsumed}, nil)
	f.catalogRepo.EXPECT().ListIngredients(ctx).Return([]*entity.Ingredient{potato}, nil)

	lines, err := f.service.PlanVsFact(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.InDelta(t, 0.6, lines[0].PlannedQty, 1e-9)
	assert.InDelta(t, 0.3, lines[0].ActualQty, 1e-9)
	// Deviation is fact minus plan, so under-consumption is negative.
	assert.InDelta(t, -0.3, lines[0].DeviationQty, 1e-9)
	assert.True(t, lines[0].DeviationCost.Equal(decimal.NewFromFloat(-6)))
}

func TestReportService_WeeklySummary_AggregatesRevenue(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	orders := []*entity.Order{
		{ID: uuid.New(), Status: entity.OrderPaid, MealPrice: decimal.NewFromInt(50), Collected: true, BuyerConfirmed: true},
		{ID: uuid.New(), Status: entity.OrderPaid, MealPrice: decimal.NewFromInt(60)},
		{ID: uuid.New(), Status: entity.OrderPaid, MealPrice: decimal.NewFromInt(45), Collected: true},
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.orderRepo.EXPECT().ListPaidInRange(ctx, monday, friday).Return(orders, nil)

	summary, err := f.service.WeeklySummary(ctx, wednesdayNoon)
	require.NoError(t, err)
	assert.Equal(t, monday, summary.WeekStart)
	assert.Equal(t, friday, summary.WeekEnd)
	assert.Equal(t, 3, summary.PaidOrders)
	assert.Equal(t, 1, summary.ConfirmedOrders)
	assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(155)))
}

func TestReportService_WriteOffs_TotalsAtCurrentPrices(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	milk := &entity.Ingredient{ID: uuid.New(), Name: "milk", PricePerUnit: decimal.NewFromInt(4)}
	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	f.factory.EXPECT().WriteOffRepo().Return(f.writeOffRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)

	f.writeOffRepo.EXPECT().ListInRange(ctx, from, to).Return([]*entity.WriteOff{
		{ID: uuid.New(), IngredientID: milk.ID, Quantity: 3, Unit: "l", Reason: "spoiled"},
		{ID: uuid.New(), IngredientID: milk.ID, Quantity: 2, Unit: "l", Reason: "dropped"},
	}, nil)
	f.catalogRepo.EXPECT().ListIngredients(ctx).Return([]*entity.Ingredient{milk}, nil)

	report, err := f.service.WriteOffs(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, report.Lines, 2)
	assert.Equal(t, "milk", report.Lines[0].IngredientName)
	assert.True(t, report.Total.Equal(decimal.NewFromInt(20)))
}

func TestReportService_ProcurementSpend_TotalsApproved(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	flour := &entity.Ingredient{ID: uuid.New(), Name: "flour", PricePerUnit: decimal.NewFromInt(3)}
	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	f.factory.EXPECT().ProcurementRepo().Return(f.procRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)

	f.procRepo.EXPECT().ListApprovedInRange(ctx, from, to).Return([]*entity.PurchaseRequest{
		{ID: uuid.New(), IngredientName: "flour", Quantity: 25, Unit: "kg", Status: entity.RequestApproved},
	}, nil)
	f.catalogRepo.EXPECT().ListIngredients(ctx).Return([]*entity.Ingredient{flour}, nil)

	report, err := f.service.ProcurementSpend(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, report.Lines, 1)
	assert.True(t, report.Total.Equal(decimal.NewFromInt(75)))
}
