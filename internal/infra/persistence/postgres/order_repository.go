package postgres

import (
	"context"
	"encoding/json"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order with its frozen snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	// Update the entity with generated values
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindByIDForUpdate retrieves an order and locks its row for the remainder
// of the surrounding transaction.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for update")
	}

	return toOrderDomain(&orderM)
}

// FindPaid retrieves the active paid order for (account, meal type, serving
// date), if any.
func (repo *orderRepository) FindPaid(ctx context.Context, accountID uuid.UUID, meal entity.MealType, servingDate time.Time) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND meal_type = ? AND serving_date = ? AND status = ?",
			accountID, string(meal), servingDate, string(entity.OrderPaid)).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find paid order")
	}

	return toOrderDomain(&orderM)
}

// ListByAccount retrieves all orders of an account, newest first.
func (repo *orderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("serving_date DESC, meal_type ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by account")
	}

	return toOrderDomainList(orderModels)
}

// ListPaidByServingDate retrieves all paid orders for one serving date.
func (repo *orderRepository) ListPaidByServingDate(ctx context.Context, servingDate time.Time) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("serving_date = ? AND status = ?", servingDate, string(entity.OrderPaid)).
		Order("meal_type ASC, created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list paid orders by serving date")
	}

	return toOrderDomainList(orderModels)
}

// ListPaidInRange retrieves all paid orders with a serving date within
// [from, to] inclusive.
func (repo *orderRepository) ListPaidInRange(ctx context.Context, from, to time.Time) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("serving_date >= ? AND serving_date <= ? AND status = ?",
			from, to, string(entity.OrderPaid)).
		Order("serving_date ASC, meal_type ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list paid orders in range")
	}

	return toOrderDomainList(orderModels)
}

// ListCancellableByAccount retrieves the paid, uncollected orders of an
// account and locks them for the remainder of the surrounding transaction.
func (repo *orderRepository) ListCancellableByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ? AND status = ? AND collected = false",
			accountID, string(entity.OrderPaid)).
		Order("serving_date ASC, meal_type ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cancellable orders")
	}

	return toOrderDomainList(orderModels)
}

// MarkCollected flags the order as collected at the given time.
func (repo *orderRepository) MarkCollected(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"collected":    true,
			"collected_at": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark order collected")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// MarkConfirmed flags the order as buyer-confirmed at the given time.
func (repo *orderRepository) MarkConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"buyer_confirmed": true,
			"confirmed_at":    at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark order confirmed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Cancel transitions the order status to cancelled.
func (repo *orderRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(entity.OrderCancelled))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to cancel order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomainList(orderModels []*model.OrderModel) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var recipe []entity.RecipeLine
	if err := json.Unmarshal(data.Recipe, &recipe); err != nil {
		return nil, errors.Wrap(err, "failed to decode order recipe snapshot")
	}

	return &entity.Order{
		ID:        data.ID,
		AccountID: data.AccountID,
		Slot: entity.Slot{
			Day:  entity.DayOfWeek(data.Day),
			Meal: entity.MealType(data.MealType),
		},
		ServingDate:    data.ServingDate,
		Status:         entity.OrderStatus(data.Status),
		MealName:       data.MealName,
		MealPrice:      data.MealPrice,
		Recipe:         recipe,
		Source:         entity.PaymentSource(data.PaymentSource),
		Collected:      data.Collected,
		CollectedAt:    data.CollectedAt,
		BuyerConfirmed: data.BuyerConfirmed,
		ConfirmedAt:    data.ConfirmedAt,
		PaidAt:         data.PaidAt,
		CreatedAt:      data.CreatedAt,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	recipe, err := json.Marshal(data.Recipe)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order recipe snapshot")
	}

	return &model.OrderModel{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Day:            string(data.Slot.Day),
		MealType:       string(data.Slot.Meal),
		ServingDate:    data.ServingDate,
		Status:         string(data.Status),
		MealName:       data.MealName,
		MealPrice:      data.MealPrice,
		Recipe:         datatypes.JSON(recipe),
		PaymentSource:  string(data.Source),
		Collected:      data.Collected,
		CollectedAt:    data.CollectedAt,
		BuyerConfirmed: data.BuyerConfirmed,
		ConfirmedAt:    data.ConfirmedAt,
		PaidAt:         data.PaidAt,
		CreatedAt:      data.CreatedAt,
	}, nil
}
