package impl

import (
	"context"
	"fmt"
	"log/slog"
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

type accountService struct {
	txManager repository.TransactionManager
	notifier  service.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Notifier  service.Notifier
	Logger    *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// GetAccount retrieves an account's profile and balance.
func (s *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	var account *entity.Account

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Topup credits an account balance. Non-admins may only top up themselves.
func (s *accountService) Topup(ctx context.Context, input usecase.TopupInput) (*entity.Account, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("top-up amount must be positive")
	}
	if input.ActorRole != entity.RoleAdmin && input.ActorID != input.AccountID {
		return nil, domainerrors.ErrForbidden.WithDetails("only admins may top up other accounts")
	}

	var account *entity.Account

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		locked, err := lockActiveAccount(ctx, txRepos, input.AccountID)
		if err != nil {
			return err
		}

		balance := locked.Balance.Add(input.Amount)
		if err := txRepos.AccountRepo().SetBalance(ctx, locked.ID, balance); err != nil {
			return errors.Wrap(err, "failed to credit account")
		}
		locked.Balance = balance
		account = locked

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, service.Event{
		AccountID: account.ID,
		Severity:  entity.SeveritySuccess,
		Title:     "Balance topped up",
		Message:   fmt.Sprintf("+%s, balance is now %s", input.Amount, account.Balance),
	})

	return account, nil
}

// Archive retires an account. Every still-cancellable order is refunded in
// the same transaction, any active bundle is deactivated, and an audit
// record pins who archived whom and how much was returned.
func (s *accountService) Archive(ctx context.Context, input usecase.ArchiveAccountInput) (*usecase.ArchiveAccountResult, error) {
	result := &usecase.ArchiveAccountResult{RefundTotal: decimal.Zero}

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		account, err := txRepos.AccountRepo().FindByIDForUpdate(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to lock account")
		}
		if !account.Active() {
			return domainerrors.ErrInvalidTransition.WithDetails("account is already archived")
		}

		orders, err := txRepos.OrderRepo().ListCancellableByAccount(ctx, input.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to lock cancellable orders")
		}
		refund := decimal.Zero
		for _, order := range orders {
			if err := txRepos.OrderRepo().Cancel(ctx, order.ID); err != nil {
				return errors.Wrap(err, "failed to cancel order")
			}
			refund = refund.Add(order.MealPrice)
		}

		sub, err := txRepos.SubscriptionRepo().FindActiveByAccount(ctx, input.AccountID)
		if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return errors.Wrap(err, "failed to check for active bundle")
		}
		if sub != nil {
			if err := txRepos.SubscriptionRepo().Deactivate(ctx, sub.ID); err != nil {
				return errors.Wrap(err, "failed to deactivate bundle")
			}
			result.BundleRevoked = true
		}

		if refund.IsPositive() {
			if err := txRepos.AccountRepo().SetBalance(ctx, account.ID, account.Balance.Add(refund)); err != nil {
				return errors.Wrap(err, "failed to refund account")
			}
		}
		if err := txRepos.AccountRepo().SetState(ctx, account.ID, entity.AccountArchived, input.AdminID); err != nil {
			return errors.Wrap(err, "failed to archive account")
		}

		archivedAt := s.now()
		log := &entity.ArchiveLog{
			ID:           uuid.New(),
			AccountID:    account.ID,
			AccountEmail: account.Email,
			AccountName:  account.FullName,
			ActorID:      input.AdminID,
			RefundAmount: refund,
			Reason:       input.Reason,
			CreatedAt:    archivedAt,
		}
		if err := txRepos.ArchiveLogRepo().Create(ctx, log); err != nil {
			return errors.Wrap(err, "failed to write archive log")
		}

		account.State = entity.AccountArchived
		account.ArchivedAt = &archivedAt
		account.ArchivedBy = &input.AdminID
		result.Account = account
		result.CancelledOrders = len(orders)
		result.RefundTotal = refund

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "account archived",
		slog.String("account_id", input.AccountID.String()),
		slog.String("admin_id", input.AdminID.String()),
		slog.Int("cancelled_orders", result.CancelledOrders),
		slog.String("refund", result.RefundTotal.String()))

	return result, nil
}

// ListByRole retrieves active accounts holding a role.
func (s *accountService) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	var accounts []*entity.Account

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.AccountRepo().ListByRole(ctx, role)
		if err != nil {
			return errors.Wrap(err, "failed to list accounts")
		}
		accounts = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// ListArchived retrieves archived accounts with their audit records.
func (s *accountService) ListArchived(ctx context.Context) ([]*entity.Account, []*entity.ArchiveLog, error) {
	var (
		accounts []*entity.Account
		logs     []*entity.ArchiveLog
	)

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		foundAccounts, err := txRepos.AccountRepo().ListArchived(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list archived accounts")
		}
		foundLogs, err := txRepos.ArchiveLogRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list archive log")
		}
		accounts = foundAccounts
		logs = foundLogs

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return accounts, logs, nil
}
