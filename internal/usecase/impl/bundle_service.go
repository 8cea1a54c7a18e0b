package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/schedule"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxBundleDays bounds how far ahead a bundle may reach.
const maxBundleDays = 30

type bundleService struct {
	txManager repository.TransactionManager
	notifier  service.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// BundleServiceParams holds dependencies for BundleService, injected by Fx.
type BundleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Notifier  service.Notifier
	Logger    *slog.Logger
}

// NewBundleService creates a new bundle service instance
func NewBundleService(params BundleServiceParams) usecase.BundleUsecase {
	return &bundleService{
		txManager: params.TxManager,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// bundleSlot is one slot a bundle walk decided to create an order for.
type bundleSlot struct {
	date time.Time
	slot entity.Slot
	meal *entity.MealDefinition
}

func validateBundleInput(daysCount int, selection entity.BundleSelection) error {
	if daysCount < 1 || daysCount > maxBundleDays {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("days count must be between 1 and %d", maxBundleDays))
	}
	for day := range selection {
		if !day.Valid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown day of week in selection")
		}
	}
	if selection.Empty() {
		return domainerrors.ErrValidationFailed.WithDetails("selection covers no meals")
	}

	return nil
}

// walkWindow expands the bundle window against the current catalog and the
// account's existing paid orders. Slots already paid are reported as skipped,
// never charged twice.
func (s *bundleService) walkWindow(
	ctx context.Context,
	txRepos repository.RepositoryFactory,
	accountID uuid.UUID,
	daysCount int,
	selection entity.BundleSelection,
) (start time.Time, shifted bool, create []bundleSlot, skipped []usecase.SkippedSlot, err error) {
	start, shifted = schedule.BundleStart(s.now(), selection)
	window := schedule.Window(start, daysCount)

	meals, err := txRepos.CatalogRepo().ListMeals(ctx)
	if err != nil {
		return start, shifted, nil, nil, errors.Wrap(err, "failed to list meals")
	}
	bySlot := make(map[entity.Slot]*entity.MealDefinition, len(meals))
	for _, meal := range meals {
		bySlot[meal.Slot] = meal
	}

	for _, day := range window {
		for _, mealType := range entity.MealTypes {
			slot := entity.Slot{Day: day.Day, Meal: mealType}
			if !selection.Includes(slot) {
				continue
			}
			meal, defined := bySlot[slot]
			if !defined {
				continue
			}

			existing, err := txRepos.OrderRepo().FindPaid(ctx, accountID, mealType, day.Date)
			if err != nil && !errors.Is(err, repository.ErrOrderNotFound) {
				return start, shifted, nil, nil, errors.Wrap(err, "failed to check for existing order")
			}
			if existing != nil {
				skipped = append(skipped, usecase.SkippedSlot{
					Date: day.Date,
					Day:  day.Day,
					Meal: mealType,
					Name: existing.MealName,
				})

				continue
			}

			create = append(create, bundleSlot{date: day.Date, slot: slot, meal: meal})
		}
	}

	return start, shifted, create, skipped, nil
}

// Quote recomputes the advisory price of a selection. Nothing is written;
// the purchase re-walks the window so a stale quote can never overcharge.
func (s *bundleService) Quote(ctx context.Context, input usecase.BundleQuoteInput) (*usecase.BundleQuote, error) {
	if err := validateBundleInput(input.DaysCount, input.Selection); err != nil {
		return nil, err
	}

	var quote *usecase.BundleQuote

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		start, shifted, create, skipped, err := s.walkWindow(ctx, txRepos, input.AccountID, input.DaysCount, input.Selection)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, slot := range create {
			total = total.Add(slot.meal.Price)
		}

		quote = &usecase.BundleQuote{
			DaysCount:  input.DaysCount,
			Selection:  input.Selection,
			StartDate:  start,
			Shifted:    shifted,
			MealCount:  len(create),
			TotalPrice: total,
			Skipped:    skipped,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return quote, nil
}

// Purchase creates one order per unpaid selected slot and debits the sum of
// their frozen prices in a single transaction. A window whose every slot is
// already paid is a no-op with Created == 0, not an error.
func (s *bundleService) Purchase(ctx context.Context, input usecase.PurchaseBundleInput) (*usecase.PurchaseBundleResult, error) {
	if err := validateBundleInput(input.DaysCount, input.Selection); err != nil {
		return nil, err
	}

	result := &usecase.PurchaseBundleResult{TotalCharged: decimal.Zero}

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if input.IdempotencyKey != "" {
			replay, found, err := findReplay(ctx, txRepos, input.IdempotencyKey, entity.IdemPurchaseBundle, input.AccountID)
			if err != nil {
				return err
			}
			if found {
				sub, err := txRepos.SubscriptionRepo().FindByID(ctx, replay.ReferenceID)
				if err != nil {
					return errors.Wrap(err, "failed to load replayed bundle")
				}
				result.Subscription = sub
				result.Created = sub.MealCount
				result.TotalCharged = sub.TotalPrice
				result.Replayed = true

				return nil
			}
		}

		account, err := lockActiveAccount(ctx, txRepos, input.AccountID)
		if err != nil {
			return err
		}

		active, err := txRepos.SubscriptionRepo().FindActiveByAccount(ctx, input.AccountID)
		if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return errors.Wrap(err, "failed to check for active bundle")
		}
		if active != nil {
			return domainerrors.ErrDuplicateBundle
		}

		_, _, create, skipped, err := s.walkWindow(ctx, txRepos, input.AccountID, input.DaysCount, input.Selection)
		if err != nil {
			return err
		}
		result.Skipped = skipped

		if len(create) == 0 {
			return nil
		}

		total := decimal.Zero
		for _, slot := range create {
			total = total.Add(slot.meal.Price)
		}
		if account.Balance.LessThan(total) {
			return domainerrors.ErrInsufficientFunds.WithDetails(
				fmt.Sprintf("balance %s, required %s", account.Balance, total))
		}
		if err := txRepos.AccountRepo().SetBalance(ctx, account.ID, account.Balance.Sub(total)); err != nil {
			return errors.Wrap(err, "failed to debit account")
		}

		now := s.now()
		orderIDs := make([]uuid.UUID, 0, len(create))
		for _, slot := range create {
			order := &entity.Order{
				ID:          uuid.New(),
				AccountID:   input.AccountID,
				Slot:        slot.slot,
				ServingDate: slot.date,
				Status:      entity.OrderPaid,
				MealName:    slot.meal.Name,
				MealPrice:   slot.meal.Price,
				Recipe:      slot.meal.Recipe,
				Source:      entity.SourceBundle,
				PaidAt:      now,
				CreatedAt:   now,
			}
			if err := txRepos.OrderRepo().Create(ctx, order); err != nil {
				return errors.Wrap(err, "failed to create bundle order")
			}
			orderIDs = append(orderIDs, order.ID)
		}

		sub := &entity.Subscription{
			ID:         uuid.New(),
			AccountID:  input.AccountID,
			DaysCount:  input.DaysCount,
			Selection:  input.Selection,
			TotalPrice: total,
			MealCount:  len(create),
			OrderIDs:   orderIDs,
			StartDate:  create[0].date,
			ExpiresAt:  create[len(create)-1].date,
			Active:     true,
			CreatedAt:  now,
		}
		if err := txRepos.SubscriptionRepo().Create(ctx, sub); err != nil {
			return errors.Wrap(err, "failed to create bundle")
		}

		result.Subscription = sub
		result.Created = len(create)
		result.TotalCharged = total

		if input.IdempotencyKey != "" {
			return recordReplay(ctx, txRepos, input.IdempotencyKey, entity.IdemPurchaseBundle, input.AccountID, sub.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Subscription != nil && !result.Replayed {
		s.notifier.Notify(ctx, service.Event{
			AccountID: input.AccountID,
			Severity:  entity.SeveritySuccess,
			Title:     "Meal bundle purchased",
			Message: fmt.Sprintf("%d meals from %s for %s",
				result.Created, result.Subscription.StartDate.Format(time.DateOnly), result.TotalCharged),
		})
	}

	return result, nil
}

// Cancel revokes an active bundle. Every member order still paid and
// uncollected is cancelled with its own frozen-price refund; consumed
// servings stay charged.
func (s *bundleService) Cancel(ctx context.Context, input usecase.CancelBundleInput) (*usecase.CancelBundleResult, error) {
	result := &usecase.CancelBundleResult{RefundTotal: decimal.Zero}

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if input.IdempotencyKey != "" {
			replay, found, err := findReplay(ctx, txRepos, input.IdempotencyKey, entity.IdemCancelBundle, input.ActorID)
			if err != nil {
				return err
			}
			if found {
				sub, err := txRepos.SubscriptionRepo().FindByID(ctx, replay.ReferenceID)
				if err != nil {
					return errors.Wrap(err, "failed to load replayed bundle")
				}
				result.Subscription = sub
				result.Replayed = true

				return nil
			}
		}

		sub, err := txRepos.SubscriptionRepo().FindByID(ctx, input.SubscriptionID)
		if err != nil {
			if errors.Is(err, repository.ErrSubscriptionNotFound) {
				return domainerrors.ErrBundleNotFound
			}

			return errors.Wrap(err, "failed to find bundle")
		}
		if !sub.Active {
			return domainerrors.ErrNoActiveBundle
		}

		owner, err := txRepos.AccountRepo().FindByIDForUpdate(ctx, sub.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to lock bundle owner")
		}

		refund := decimal.Zero
		cancelled := 0
		for _, orderID := range sub.OrderIDs {
			order, err := txRepos.OrderRepo().FindByIDForUpdate(ctx, orderID)
			if err != nil {
				if errors.Is(err, repository.ErrOrderNotFound) {
					continue
				}

				return errors.Wrap(err, "failed to lock bundle order")
			}
			if !order.Cancellable() {
				continue
			}
			if err := txRepos.OrderRepo().Cancel(ctx, order.ID); err != nil {
				return errors.Wrap(err, "failed to cancel bundle order")
			}
			refund = refund.Add(order.MealPrice)
			cancelled++
		}

		if refund.IsPositive() {
			if err := txRepos.AccountRepo().SetBalance(ctx, owner.ID, owner.Balance.Add(refund)); err != nil {
				return errors.Wrap(err, "failed to refund bundle owner")
			}
		}
		if err := txRepos.SubscriptionRepo().Deactivate(ctx, sub.ID); err != nil {
			return errors.Wrap(err, "failed to deactivate bundle")
		}

		sub.Active = false
		result.Subscription = sub
		result.CancelledOrders = cancelled
		result.RefundTotal = refund

		if input.IdempotencyKey != "" {
			return recordReplay(ctx, txRepos, input.IdempotencyKey, entity.IdemCancelBundle, input.ActorID, sub.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		s.logger.InfoContext(ctx, "bundle cancelled",
			slog.String("bundle_id", result.Subscription.ID.String()),
			slog.String("admin_id", input.ActorID.String()),
			slog.Int("cancelled_orders", result.CancelledOrders),
			slog.String("refund", result.RefundTotal.String()))
		s.notifier.Notify(ctx, service.Event{
			AccountID: result.Subscription.AccountID,
			Severity:  entity.SeverityWarning,
			Title:     "Meal bundle cancelled",
			Message:   fmt.Sprintf("%d meals refunded for %s", result.CancelledOrders, result.RefundTotal),
		})
	}

	return result, nil
}

// GetActiveBundle retrieves the active bundle of an account.
func (s *bundleService) GetActiveBundle(ctx context.Context, accountID uuid.UUID) (*entity.Subscription, error) {
	var sub *entity.Subscription

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.SubscriptionRepo().FindActiveByAccount(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrSubscriptionNotFound) {
				return domainerrors.ErrBundleNotFound
			}

			return errors.Wrap(err, "failed to find active bundle")
		}
		sub = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sub, nil
}
