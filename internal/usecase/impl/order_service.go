// Package impl provides the implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/schedule"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	notifier  service.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Notifier  service.Notifier
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// PurchaseSlot pays for a single meal slot. The catalog entry is copied onto
// the order and the balance debited inside one transaction, so a later menu
// edit can never change what was sold.
func (s *orderService) PurchaseSlot(ctx context.Context, input usecase.PurchaseSlotInput) (*entity.Order, error) {
	slot := entity.Slot{Day: input.Day, Meal: input.Meal}
	if !slot.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown day or meal type")
	}

	servingDate, err := schedule.ServingDate(s.now(), input.Day)
	if err != nil {
		return nil, err
	}

	var (
		order    *entity.Order
		replayed bool
	)

	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if input.IdempotencyKey != "" {
			replay, found, err := findReplay(ctx, txRepos, input.IdempotencyKey, entity.IdemPurchaseSlot, input.AccountID)
			if err != nil {
				return err
			}
			if found {
				existing, err := txRepos.OrderRepo().FindByID(ctx, replay.ReferenceID)
				if err != nil {
					return errors.Wrap(err, "failed to load replayed order")
				}
				order = existing
				replayed = true

				return nil
			}
		}

		account, err := lockActiveAccount(ctx, txRepos, input.AccountID)
		if err != nil {
			return err
		}

		meal, err := txRepos.CatalogRepo().FindMeal(ctx, slot)
		if err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrSlotNotFound
			}

			return errors.Wrap(err, "failed to find meal for slot")
		}

		existing, err := txRepos.OrderRepo().FindPaid(ctx, input.AccountID, input.Meal, servingDate)
		if err != nil && !errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(err, "failed to check for existing order")
		}
		if existing != nil {
			return domainerrors.ErrAlreadyPaid
		}

		if account.Balance.LessThan(meal.Price) {
			return domainerrors.ErrInsufficientFunds.WithDetails(
				fmt.Sprintf("balance %s, required %s", account.Balance, meal.Price))
		}

		if err := txRepos.AccountRepo().SetBalance(ctx, account.ID, account.Balance.Sub(meal.Price)); err != nil {
			return errors.Wrap(err, "failed to debit account")
		}

		now := s.now()
		order = &entity.Order{
			ID:          uuid.New(),
			AccountID:   input.AccountID,
			Slot:        slot,
			ServingDate: servingDate,
			Status:      entity.OrderPaid,
			MealName:    meal.Name,
			MealPrice:   meal.Price,
			Recipe:      meal.Recipe,
			Source:      entity.SourceSingle,
			PaidAt:      now,
			CreatedAt:   now,
		}
		if err := txRepos.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if input.IdempotencyKey != "" {
			return recordReplay(ctx, txRepos, input.IdempotencyKey, entity.IdemPurchaseSlot, input.AccountID, order.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayed {
		return order, nil
	}

	s.notifier.Notify(ctx, service.Event{
		AccountID: input.AccountID,
		Severity:  entity.SeveritySuccess,
		Title:     "Meal purchased",
		Message:   fmt.Sprintf("%s (%s) for %s", order.MealName, order.Slot.Meal, order.ServingDate.Format(time.DateOnly)),
		OrderID:   &order.ID,
	})

	return order, nil
}

// MarkCollected hands an order out. Stock for the frozen recipe is deducted
// all-or-nothing: any shortfall aborts the whole serving and every lacking
// ingredient is reported.
func (s *orderService) MarkCollected(ctx context.Context, staffID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	today := schedule.DateOnly(s.now())

	var order *entity.Order

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if found.Status != entity.OrderPaid || found.Collected {
			return domainerrors.ErrInvalidTransition.WithDetails("order is not paid and uncollected")
		}
		if !found.ServingDate.Equal(today) {
			return domainerrors.ErrInvalidTransition.WithDetails("order is not due today")
		}

		if err := deductRecipe(ctx, txRepos.StockRepo(), found.Recipe); err != nil {
			return err
		}

		collectedAt := s.now()
		if err := txRepos.OrderRepo().MarkCollected(ctx, orderID, collectedAt); err != nil {
			return errors.Wrap(err, "failed to mark order collected")
		}

		found.Collected = true
		found.CollectedAt = &collectedAt
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order collected",
		slog.String("order_id", orderID.String()),
		slog.String("staff_id", staffID.String()))
	s.notifier.Notify(ctx, service.Event{
		AccountID: order.AccountID,
		Severity:  entity.SeverityInfo,
		Title:     "Meal collected",
		Message:   fmt.Sprintf("%s was handed out, please confirm", order.MealName),
		OrderID:   &order.ID,
	})

	return order, nil
}

// ConfirmConsumption records the buyer's half of the serving handshake.
func (s *orderService) ConfirmConsumption(ctx context.Context, accountID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if found.AccountID != accountID {
			return domainerrors.ErrForbidden.WithDetails("order belongs to another account")
		}
		if found.Status != entity.OrderPaid || !found.Collected || found.BuyerConfirmed {
			return domainerrors.ErrInvalidTransition.WithDetails("order is not awaiting confirmation")
		}

		confirmedAt := s.now()
		if err := txRepos.OrderRepo().MarkConfirmed(ctx, orderID, confirmedAt); err != nil {
			return errors.Wrap(err, "failed to mark order confirmed")
		}

		found.BuyerConfirmed = true
		found.ConfirmedAt = &confirmedAt
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyRole(ctx, entity.RoleStaff, service.Event{
		AccountID: order.AccountID,
		Severity:  entity.SeveritySuccess,
		Title:     "Serving confirmed",
		Message:   fmt.Sprintf("%s confirmed by the buyer", order.MealName),
		OrderID:   &order.ID,
	})

	return order, nil
}

// CancelOrder refunds a paid, uncollected order at its frozen price.
func (s *orderService) CancelOrder(ctx context.Context, input usecase.CancelOrderInput) (*usecase.CancelOrderResult, error) {
	result := &usecase.CancelOrderResult{}

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if input.IdempotencyKey != "" {
			replay, found, err := findReplay(ctx, txRepos, input.IdempotencyKey, entity.IdemCancelOrder, input.ActorID)
			if err != nil {
				return err
			}
			if found {
				existing, err := txRepos.OrderRepo().FindByID(ctx, replay.ReferenceID)
				if err != nil {
					return errors.Wrap(err, "failed to load replayed order")
				}
				result.Order = existing
				result.Refund = existing.MealPrice
				result.Replayed = true

				return nil
			}
		}

		order, err := txRepos.OrderRepo().FindByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if input.ActorRole != entity.RoleAdmin && order.AccountID != input.ActorID {
			return domainerrors.ErrForbidden.WithDetails("order belongs to another account")
		}
		if !order.Cancellable() {
			if order.Collected {
				return domainerrors.ErrInvalidTransition.WithDetails("order was already collected")
			}

			return domainerrors.ErrInvalidTransition.WithDetails("order is already cancelled")
		}

		owner, err := txRepos.AccountRepo().FindByIDForUpdate(ctx, order.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to lock order owner")
		}

		if err := txRepos.AccountRepo().SetBalance(ctx, owner.ID, owner.Balance.Add(order.MealPrice)); err != nil {
			return errors.Wrap(err, "failed to refund account")
		}
		if err := txRepos.OrderRepo().Cancel(ctx, order.ID); err != nil {
			return errors.Wrap(err, "failed to cancel order")
		}

		order.Status = entity.OrderCancelled
		result.Order = order
		result.Refund = order.MealPrice

		if input.IdempotencyKey != "" {
			return recordReplay(ctx, txRepos, input.IdempotencyKey, entity.IdemCancelOrder, input.ActorID, order.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		if input.ActorRole == entity.RoleAdmin && input.ActorID != result.Order.AccountID {
			s.logger.InfoContext(ctx, "order cancelled by admin",
				slog.String("order_id", result.Order.ID.String()),
				slog.String("admin_id", input.ActorID.String()),
				slog.String("refund", result.Refund.String()))
		}
		s.notifier.Notify(ctx, service.Event{
			AccountID: result.Order.AccountID,
			Severity:  entity.SeverityWarning,
			Title:     "Order cancelled",
			Message:   fmt.Sprintf("%s refunded %s", result.Order.MealName, result.Refund),
			OrderID:   &result.Order.ID,
		})
	}

	return result, nil
}

// GetAccountOrders retrieves all orders of an account, newest first.
func (s *orderService) GetAccountOrders(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.OrderRepo().ListByAccount(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to list account orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// GetServingQueue retrieves the paid orders due on a serving date.
func (s *orderService) GetServingQueue(ctx context.Context, servingDate time.Time) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.OrderRepo().ListPaidByServingDate(ctx, schedule.DateOnly(servingDate))
		if err != nil {
			return errors.Wrap(err, "failed to list serving queue")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// deductRecipe locks the stock rows behind a frozen recipe and deducts every
// line, or deducts nothing and reports every shortfall at once.
func deductRecipe(ctx context.Context, stockRepo repository.StockRepository, recipe []entity.RecipeLine) error {
	if len(recipe) == 0 {
		return nil
	}

	required := make(map[string]entity.RecipeLine, len(recipe))
	names := make([]string, 0, len(recipe))
	for _, line := range recipe {
		agg, seen := required[line.IngredientName]
		if !seen {
			names = append(names, line.IngredientName)
			agg = entity.RecipeLine{IngredientName: line.IngredientName, Unit: line.Unit}
		}
		agg.Quantity += line.Quantity
		required[line.IngredientName] = agg
	}
	sort.Strings(names)

	stocks, err := stockRepo.LockByIngredientNames(ctx, names)
	if err != nil {
		return errors.Wrap(err, "failed to lock stock rows")
	}

	var shortfalls []domainerrors.StockShortfall
	for _, name := range names {
		need := required[name]
		stock, ok := stocks[name]
		if !ok {
			shortfalls = append(shortfalls, domainerrors.StockShortfall{
				IngredientName: name,
				Unit:           need.Unit,
				Required:       need.Quantity,
				Known:          false,
			})

			continue
		}
		if stock.Quantity < need.Quantity {
			shortfalls = append(shortfalls, domainerrors.StockShortfall{
				IngredientName: name,
				Unit:           need.Unit,
				Required:       need.Quantity,
				Available:      stock.Quantity,
				Known:          true,
			})
		}
	}
	if len(shortfalls) > 0 {
		return domainerrors.NewInsufficientStockError(shortfalls)
	}

	for _, name := range names {
		stock := stocks[name]
		if err := stockRepo.SetQuantity(ctx, stock.ID, stock.Quantity-required[name].Quantity); err != nil {
			return errors.Wrap(err, "failed to deduct stock")
		}
	}

	return nil
}

// lockActiveAccount locks an account row and rejects archived accounts.
func lockActiveAccount(ctx context.Context, txRepos repository.RepositoryFactory, id uuid.UUID) (*entity.Account, error) {
	account, err := txRepos.AccountRepo().FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to lock account")
	}
	if !account.Active() {
		return nil, domainerrors.ErrAccountArchived
	}

	return account, nil
}

// findReplay looks up an idempotency key and verifies it belongs to the same
// operation and actor.
func findReplay(ctx context.Context, txRepos repository.RepositoryFactory, key string, kind entity.IdempotencyKind, accountID uuid.UUID) (*entity.IdempotencyRecord, bool, error) {
	rec, err := txRepos.IdempotencyRepo().FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrIdempotencyKeyNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to look up idempotency key")
	}
	if rec.Kind != kind || rec.AccountID != accountID {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("idempotency key was used by a different operation")
	}

	return rec, true, nil
}

// recordReplay stores the idempotency key alongside the mutation it guards.
func recordReplay(ctx context.Context, txRepos repository.RepositoryFactory, key string, kind entity.IdempotencyKind, accountID, referenceID uuid.UUID) error {
	rec := &entity.IdempotencyRecord{
		Key:         key,
		Kind:        kind,
		AccountID:   accountID,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}
	if err := txRepos.IdempotencyRepo().Create(ctx, rec); err != nil {
		return errors.Wrap(err, "failed to record idempotency key")
	}

	return nil
}
