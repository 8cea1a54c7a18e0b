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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryFixture struct {
	service     *inventoryService
	factory     *mockRepo.MockRepositoryFactory
	catalogRepo *mockRepo.MockCatalogRepository
	stockRepo   *mockRepo.MockStockRepository
	procRepo    *mockRepo.MockProcurementRepository
	writeOffRepo *mockRepo.MockWriteOffRepository
	notifier    *mockSvc.MockNotifier
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()

	f := &inventoryFixture{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		stockRepo:    mockRepo.NewMockStockRepository(t),
		procRepo:     mockRepo.NewMockProcurementRepository(t),
		writeOffRepo: mockRepo.NewMockWriteOffRepository(t),
		notifier:     mockSvc.NewMockNotifier(t),
	}
	service := NewInventoryService(InventoryServiceParams{
		TxManager: newTxManager(t, f.factory),
		Notifier:  f.notifier,
		Logger:    newDiscardLogger(),
	}).(*inventoryService)
	service.now = fixedClock(wednesdayNoon)
	f.service = service

	return f
}

func TestInventoryService_DecideRequest_ApprovalCreditsStockOnce(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	adminID := uuid.New()
	ingredient := &entity.Ingredient{ID: uuid.New(), Name: "flour"}
	request := &entity.PurchaseRequest{
		ID:             uuid.New(),
		RequesterID:    uuid.New(),
		IngredientName: "flour",
		Quantity:       25,
		Unit:           "kg",
		Status:         entity.RequestPending,
	}

	f.factory.EXPECT().ProcurementRepo().Return(f.procRepo)
	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)

	f.procRepo.EXPECT().FindByIDForUpdate(ctx, request.ID).Return(request, nil)
	f.catalogRepo.EXPECT().EnsureIngredient(ctx, "flour").Return(ingredient, nil)
	f.stockRepo.EXPECT().Credit(ctx, ingredient.ID, 25.0, "kg").Return(nil)
	f.procRepo.EXPECT().Decide(ctx, request.ID, entity.RequestApproved, adminID, wednesdayNoon).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	decided, err := f.service.DecideRequest(ctx, adminID, request.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, adminID, *decided.DecidedBy)
}

func TestInventoryService_DecideRequest_RejectionLeavesStockAlone(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	adminID := uuid.New()
	request := &entity.PurchaseRequest{
		ID:             uuid.New(),
		RequesterID:    uuid.New(),
		IngredientName: "flour",
		Quantity:       25,
		Unit:           "kg",
		Status:         entity.RequestPending,
	}

	f.factory.EXPECT().ProcurementRepo().Return(f.procRepo)

	f.procRepo.EXPECT().FindByIDForUpdate(ctx, request.ID).Return(request, nil)
	f.procRepo.EXPECT().Decide(ctx, request.ID, entity.RequestRejected, adminID, wednesdayNoon).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	decided, err := f.service.DecideRequest(ctx, adminID, request.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestRejected, decided.Status)
}

// A request leaves Pending exactly once; the second decision attempt fails
// whatever its direction.
func TestInventoryService_DecideRequest_SecondDecisionRejected(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	request := &entity.PurchaseRequest{
		ID:     uuid.New(),
		Status: entity.RequestApproved,
	}

	f.factory.EXPECT().ProcurementRepo().Return(f.procRepo)
	f.procRepo.EXPECT().FindByIDForUpdate(ctx, request.ID).Return(request, nil)

	_, err := f.service.DecideRequest(ctx, uuid.New(), request.ID, true)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestInventoryService_RequestPurchase_CreatesPendingLines(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	requesterID := uuid.New()

	f.factory.EXPECT().ProcurementRepo().Return(f.procRepo)
	f.procRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PurchaseRequest")).Return(nil).Times(2)
	f.notifier.EXPECT().NotifyRole(ctx, entity.RoleAdmin, mock.AnythingOfType("service.Event")).Return()

	requests, err := f.service.RequestPurchase(ctx, []usecase.PurchaseRequestInput{
		{RequesterID: requesterID, IngredientName: "flour", Quantity: 25, Unit: "kg"},
		{RequesterID: requesterID, IngredientName: "salt", Quantity: 2, Unit: "kg"},
	})
	require.NoError(t, err)
	require.Len(t, requests, 2)
	for _, req := range requests {
		assert.Equal(t, entity.RequestPending, req.Status)
	}
}

func TestInventoryService_RequestPurchase_RejectsInvalidLine(t *testing.T) {
	f := newInventoryFixture(t)

	_, err := f.service.RequestPurchase(context.Background(), []usecase.PurchaseRequestInput{
		{RequesterID: uuid.New(), IngredientName: "", Quantity: 1, Unit: "kg"},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestInventoryService_WriteOff_DeductsAndJournals(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	actorID := uuid.New()
	ingredient := &entity.Ingredient{ID: uuid.New(), Name: "milk"}
	stock := &entity.Stock{ID: uuid.New(), IngredientID: ingredient.ID, Quantity: 10, Unit: "l"}

	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)
	f.factory.EXPECT().WriteOffRepo().Return(f.writeOffRepo)

	f.catalogRepo.EXPECT().FindIngredientByName(ctx, "milk").Return(ingredient, nil)
	f.stockRepo.EXPECT().FindByIngredientIDForUpdate(ctx, ingredient.ID).Return(stock, nil)
	f.stockRepo.EXPECT().SetQuantity(ctx, stock.ID, 7.0).Return(nil)
	f.writeOffRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.WriteOff")).Return(nil)

	writeOff, err := f.service.WriteOff(ctx, usecase.WriteOffInput{
		ActorID:        actorID,
		IngredientName: "milk",
		Quantity:       3,
		Reason:         "spoiled",
	})
	require.NoError(t, err)
	assert.Equal(t, ingredient.ID, writeOff.IngredientID)
	assert.Equal(t, 3.0, writeOff.Quantity)
	assert.Equal(t, "spoiled", writeOff.Reason)
}

func TestInventoryService_WriteOff_CannotExceedStock(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	ingredient := &entity.Ingredient{ID: uuid.New(), Name: "milk"}
	stock := &entity.Stock{ID: uuid.New(), IngredientID: ingredient.ID, Quantity: 2, Unit: "l"}

	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)

	f.catalogRepo.EXPECT().FindIngredientByName(ctx, "milk").Return(ingredient, nil)
	f.stockRepo.EXPECT().FindByIngredientIDForUpdate(ctx, ingredient.ID).Return(stock, nil)

	_, err := f.service.WriteOff(ctx, usecase.WriteOffInput{
		ActorID:        uuid.New(),
		IngredientName: "milk",
		Quantity:       5,
		Reason:         "spoiled",
	})

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Len(t, stockErr.Shortfalls, 1)
	assert.Equal(t, 2.0, stockErr.Shortfalls[0].Available)
}

func TestInventoryService_WriteOff_RequiresReason(t *testing.T) {
	f := newInventoryFixture(t)

	_, err := f.service.WriteOff(context.Background(), usecase.WriteOffInput{
		ActorID:        uuid.New(),
		IngredientName: "milk",
		Quantity:       1,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestInventoryService_ListStock_JoinsIngredients(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	flour := &entity.Ingredient{ID: uuid.New(), Name: "flour"}
	salt := &entity.Ingredient{ID: uuid.New(), Name: "salt"}
	flourStock := &entity.Stock{ID: uuid.New(), IngredientID: flour.ID, Quantity: 12, Unit: "kg"}

	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.factory.EXPECT().StockRepo().Return(f.stockRepo)

	f.catalogRepo.EXPECT().ListIngredients(ctx).Return([]*entity.Ingredient{flour, salt}, nil)
	f.stockRepo.EXPECT().ListAll(ctx).Return([]*entity.Stock{flourStock}, nil)

	lines, err := f.service.ListStock(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "flour", lines[0].Ingredient.Name)
	require.NotNil(t, lines[0].Stock)
	assert.Equal(t, 12.0, lines[0].Stock.Quantity)
	assert.Nil(t, lines[1].Stock)
}

func TestInventoryService_SetStockQuantity_UnknownIngredient(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	f.factory.EXPECT().CatalogRepo().Return(f.catalogRepo)
	f.catalogRepo.EXPECT().FindIngredientByName(ctx, "plutonium").Return(nil, repository.ErrIngredientNotFound)

	_, err := f.service.SetStockQuantity(ctx, uuid.New(), "plutonium", 1, "kg")
	assert.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)
}
