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

type accountFixture struct {
	service        *accountService
	factory        *mockRepo.MockRepositoryFactory
	accountRepo    *mockRepo.MockAccountRepository
	orderRepo      *mockRepo.MockOrderRepository
	subRepo        *mockRepo.MockSubscriptionRepository
	archiveLogRepo *mockRepo.MockArchiveLogRepository
	notifier       *mockSvc.MockNotifier
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()

	f := &accountFixture{
		factory:        mockRepo.NewMockRepositoryFactory(t),
		accountRepo:    mockRepo.NewMockAccountRepository(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		subRepo:        mockRepo.NewMockSubscriptionRepository(t),
		archiveLogRepo: mockRepo.NewMockArchiveLogRepository(t),
		notifier:       mockSvc.NewMockNotifier(t),
	}
	service := NewAccountService(AccountServiceParams{
		TxManager: newTxManager(t, f.factory),
		Notifier:  f.notifier,
		Logger:    newDiscardLogger(),
	}).(*accountService)
	service.now = fixedClock(wednesdayNoon)
	f.service = service

	return f
}

func TestAccountService_Topup_CreditsBalance(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	account := testAccount(10)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.accountRepo.EXPECT().SetBalance(ctx, account.ID, decimalEq(decimal.NewFromInt(110))).Return(nil)
	f.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("service.Event")).Return()

	updated, err := f.service.Topup(ctx, usecase.TopupInput{
		ActorID:   account.ID,
		ActorRole: entity.RoleStudent,
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(110)))
}

func TestAccountService_Topup_StudentCannotTopUpOthers(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.service.Topup(context.Background(), usecase.TopupInput{
		ActorID:   uuid.New(),
		ActorRole: entity.RoleStudent,
		AccountID: uuid.New(),
		Amount:    decimal.NewFromInt(100),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestAccountService_Topup_RejectsNonPositiveAmount(t *testing.T) {
	f := newAccountFixture(t)

	id := uuid.New()
	_, err := f.service.Topup(context.Background(), usecase.TopupInput{
		ActorID:   id,
		ActorRole: entity.RoleStudent,
		AccountID: id,
		Amount:    decimal.Zero,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

// Archiving refunds every still-cancellable order in one aggregated credit,
// drops the active bundle, and leaves an audit record behind.
func TestAccountService_Archive_RefundsAndAudits(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	adminID := uuid.New()
	account := testAccount(20)
	account.Email = "pupil@school.example"
	account.FullName = "Test Pupil"
	open1 := &entity.Order{ID: uuid.New(), AccountID: account.ID, Status: entity.OrderPaid, MealPrice: decimal.NewFromInt(50)}
	open2 := &entity.Order{ID: uuid.New(), AccountID: account.ID, Status: entity.OrderPaid, MealPrice: decimal.NewFromInt(45)}
	sub := &entity.Subscription{ID: uuid.New(), AccountID: account.ID, Active: true}

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)
	f.factory.EXPECT().ArchiveLogRepo().Return(f.archiveLogRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.orderRepo.EXPECT().ListCancellableByAccount(ctx, account.ID).Return([]*entity.Order{open1, open2}, nil)
	f.orderRepo.EXPECT().Cancel(ctx, open1.ID).Return(nil)
	f.orderRepo.EXPECT().Cancel(ctx, open2.ID).Return(nil)
	f.subRepo.EXPECT().FindActiveByAccount(ctx, account.ID).Return(sub, nil)
	f.subRepo.EXPECT().Deactivate(ctx, sub.ID).Return(nil)
	f.accountRepo.EXPECT().SetBalance(ctx, account.ID, decimalEq(decimal.NewFromInt(115))).Return(nil)
	f.accountRepo.EXPECT().SetState(ctx, account.ID, entity.AccountArchived, adminID).Return(nil)
	f.archiveLogRepo.EXPECT().Create(ctx, mock.MatchedBy(func(log *entity.ArchiveLog) bool {
		return log.AccountID == account.ID &&
			log.ActorID == adminID &&
			log.RefundAmount.Equal(decimal.NewFromInt(95)) &&
			log.AccountEmail == "pupil@school.example"
	})).Return(nil)

	result, err := f.service.Archive(ctx, usecase.ArchiveAccountInput{
		AdminID:   adminID,
		AccountID: account.ID,
		Reason:    "left the school",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.CancelledOrders)
	assert.True(t, result.RefundTotal.Equal(decimal.NewFromInt(95)))
	assert.True(t, result.BundleRevoked)
	assert.Equal(t, entity.AccountArchived, result.Account.State)
}

func TestAccountService_Archive_AlreadyArchived(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	account := testAccount(0)
	account.State = entity.AccountArchived

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)

	_, err := f.service.Archive(ctx, usecase.ArchiveAccountInput{
		AdminID:   uuid.New(),
		AccountID: account.ID,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestAccountService_Archive_NothingToRefund(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	adminID := uuid.New()
	account := testAccount(5)

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo)
	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo)
	f.factory.EXPECT().ArchiveLogRepo().Return(f.archiveLogRepo)

	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.orderRepo.EXPECT().ListCancellableByAccount(ctx, account.ID).Return(nil, nil)
	f.subRepo.EXPECT().FindActiveByAccount(ctx, account.ID).Return(nil, repository.ErrSubscriptionNotFound)
	f.accountRepo.EXPECT().SetState(ctx, account.ID, entity.AccountArchived, adminID).Return(nil)
	f.archiveLogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ArchiveLog")).Return(nil)

	result, err := f.service.Archive(ctx, usecase.ArchiveAccountInput{
		AdminID:   adminID,
		AccountID: account.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.CancelledOrders)
	assert.True(t, result.RefundTotal.IsZero())
	assert.False(t, result.BundleRevoked)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	id := uuid.New()

	f.factory.EXPECT().AccountRepo().Return(f.accountRepo)
	f.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := f.service.GetAccount(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
