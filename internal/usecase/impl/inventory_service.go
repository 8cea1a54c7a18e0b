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
	"go.uber.org/fx"
)

type inventoryService struct {
	txManager repository.TransactionManager
	notifier  service.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Notifier  service.Notifier
	Logger    *slog.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager: params.TxManager,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// ListStock retrieves every ingredient joined with its stock row. Ingredients
// that were named by a recipe but never stocked appear with a nil stock.
func (s *inventoryService) ListStock(ctx context.Context) ([]usecase.StockLine, error) {
	var lines []usecase.StockLine

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		ingredients, err := txRepos.CatalogRepo().ListIngredients(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list ingredients")
		}
		stocks, err := txRepos.StockRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list stock")
		}

		byIngredient := make(map[uuid.UUID]*entity.Stock, len(stocks))
		for _, stock := range stocks {
			byIngredient[stock.IngredientID] = stock
		}

		lines = make([]usecase.StockLine, 0, len(ingredients))
		for _, ingredient := range ingredients {
			lines = append(lines, usecase.StockLine{
				Ingredient: *ingredient,
				Stock:      byIngredient[ingredient.ID],
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// SetStockQuantity overwrites the stock level of an ingredient, creating the
// row if the ingredient was never stocked.
func (s *inventoryService) SetStockQuantity(ctx context.Context, actorID uuid.UUID, ingredientName string, quantity float64, unit string) (*entity.Stock, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	var stock *entity.Stock

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		ingredient, err := txRepos.CatalogRepo().FindIngredientByName(ctx, ingredientName)
		if err != nil {
			if errors.Is(err, repository.ErrIngredientNotFound) {
				return domainerrors.ErrIngredientNotFound
			}

			return errors.Wrap(err, "failed to find ingredient")
		}

		existing, err := txRepos.StockRepo().FindByIngredientIDForUpdate(ctx, ingredient.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrStockNotFound) {
				return errors.Wrap(err, "failed to lock stock row")
			}
			if err := txRepos.StockRepo().Credit(ctx, ingredient.ID, quantity, unit); err != nil {
				return errors.Wrap(err, "failed to create stock row")
			}
			created, err := txRepos.StockRepo().FindByIngredientID(ctx, ingredient.ID)
			if err != nil {
				return errors.Wrap(err, "failed to reload stock row")
			}
			stock = created

			return nil
		}

		if err := txRepos.StockRepo().SetQuantity(ctx, existing.ID, quantity); err != nil {
			return errors.Wrap(err, "failed to set stock quantity")
		}
		existing.Quantity = quantity
		stock = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock quantity set",
		slog.String("ingredient", ingredientName),
		slog.Float64("quantity", quantity),
		slog.String("actor_id", actorID.String()))

	return stock, nil
}

// WriteOff removes spoiled or wasted stock. The decrement and the journal
// entry commit together, and stock can never be written off below zero.
func (s *inventoryService) WriteOff(ctx context.Context, input usecase.WriteOffInput) (*entity.WriteOff, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("write-off quantity must be positive")
	}
	if input.Reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("write-off reason is required")
	}

	var writeOff *entity.WriteOff

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		ingredient, err := txRepos.CatalogRepo().FindIngredientByName(ctx, input.IngredientName)
		if err != nil {
			if errors.Is(err, repository.ErrIngredientNotFound) {
				return domainerrors.ErrIngredientNotFound
			}

			return errors.Wrap(err, "failed to find ingredient")
		}

		stock, err := txRepos.StockRepo().FindByIngredientIDForUpdate(ctx, ingredient.ID)
		if err != nil {
			if errors.Is(err, repository.ErrStockNotFound) {
				return domainerrors.NewInsufficientStockError([]domainerrors.StockShortfall{{
					IngredientName: input.IngredientName,
					Unit:           input.Unit,
					Required:       input.Quantity,
					Known:          false,
				}})
			}

			return errors.Wrap(err, "failed to lock stock row")
		}
		if stock.Quantity < input.Quantity {
			return domainerrors.NewInsufficientStockError([]domainerrors.StockShortfall{{
				IngredientName: input.IngredientName,
				Unit:           stock.Unit,
				Required:       input.Quantity,
				Available:      stock.Quantity,
				Known:          true,
			}})
		}

		if err := txRepos.StockRepo().SetQuantity(ctx, stock.ID, stock.Quantity-input.Quantity); err != nil {
			return errors.Wrap(err, "failed to deduct stock")
		}

		writeOff = &entity.WriteOff{
			ID:           uuid.New(),
			IngredientID: ingredient.ID,
			Quantity:     input.Quantity,
			Unit:         stock.Unit,
			Reason:       input.Reason,
			ActorID:      input.ActorID,
			CreatedAt:    s.now(),
		}
		if err := txRepos.WriteOffRepo().Create(ctx, writeOff); err != nil {
			return errors.Wrap(err, "failed to journal write-off")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock written off",
		slog.String("ingredient", input.IngredientName),
		slog.Float64("quantity", input.Quantity),
		slog.String("reason", input.Reason))

	return writeOff, nil
}

// RequestPurchase files one pending procurement request per input line.
func (s *inventoryService) RequestPurchase(ctx context.Context, inputs []usecase.PurchaseRequestInput) ([]*entity.PurchaseRequest, error) {
	if len(inputs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one request line is required")
	}
	for _, input := range inputs {
		if input.IngredientName == "" || input.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("each line needs an ingredient name and a positive quantity")
		}
	}

	requests := make([]*entity.PurchaseRequest, 0, len(inputs))

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		for _, input := range inputs {
			req := &entity.PurchaseRequest{
				ID:             uuid.New(),
				RequesterID:    input.RequesterID,
				IngredientName: input.IngredientName,
				Quantity:       input.Quantity,
				Unit:           input.Unit,
				Status:         entity.RequestPending,
				CreatedAt:      s.now(),
			}
			if err := txRepos.ProcurementRepo().Create(ctx, req); err != nil {
				return errors.Wrap(err, "failed to create purchase request")
			}
			requests = append(requests, req)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyRole(ctx, entity.RoleAdmin, service.Event{
		Severity: entity.SeverityInfo,
		Title:    "Purchase requests filed",
		Message:  fmt.Sprintf("%d new requests await a decision", len(requests)),
	})

	return requests, nil
}

// DecideRequest approves or rejects a pending request. The status guard runs
// on a locked row, so a request leaves Pending exactly once and approval
// credits stock exactly once.
func (s *inventoryService) DecideRequest(ctx context.Context, adminID uuid.UUID, requestID uuid.UUID, approve bool) (*entity.PurchaseRequest, error) {
	var request *entity.PurchaseRequest

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.ProcurementRepo().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to lock purchase request")
		}
		if found.Status != entity.RequestPending {
			return domainerrors.ErrInvalidTransition.WithDetails("purchase request was already decided")
		}

		status := entity.RequestRejected
		if approve {
			status = entity.RequestApproved

			ingredient, err := txRepos.CatalogRepo().EnsureIngredient(ctx, found.IngredientName)
			if err != nil {
				return errors.Wrap(err, "failed to ensure ingredient")
			}
			if err := txRepos.StockRepo().Credit(ctx, ingredient.ID, found.Quantity, found.Unit); err != nil {
				return errors.Wrap(err, "failed to credit stock")
			}
		}

		decidedAt := s.now()
		if err := txRepos.ProcurementRepo().Decide(ctx, requestID, status, adminID, decidedAt); err != nil {
			return errors.Wrap(err, "failed to record decision")
		}

		found.Status = status
		found.DecidedBy = &adminID
		found.DecidedAt = &decidedAt
		request = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	severity := entity.SeverityWarning
	verdict := "rejected"
	if approve {
		severity = entity.SeveritySuccess
		verdict = "approved"
	}
	s.notifier.Notify(ctx, service.Event{
		AccountID: request.RequesterID,
		Severity:  severity,
		Title:     "Purchase request " + verdict,
		Message:   fmt.Sprintf("%g%s %s %s", request.Quantity, request.Unit, request.IngredientName, verdict),
		RequestID: &request.ID,
	})

	return request, nil
}

// ListPendingRequests retrieves requests awaiting a decision.
func (s *inventoryService) ListPendingRequests(ctx context.Context) ([]*entity.PurchaseRequest, error) {
	var requests []*entity.PurchaseRequest

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.ProcurementRepo().ListPending(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list pending requests")
		}
		requests = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return requests, nil
}

// ListAccountRequests retrieves the requests filed by an account.
func (s *inventoryService) ListAccountRequests(ctx context.Context, requesterID uuid.UUID) ([]*entity.PurchaseRequest, error) {
	var requests []*entity.PurchaseRequest

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.ProcurementRepo().ListByRequester(ctx, requesterID)
		if err != nil {
			return errors.Wrap(err, "failed to list account requests")
		}
		requests = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return requests, nil
}
