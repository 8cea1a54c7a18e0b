package postgres

import (
	"context"
	"encoding/json"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription with its generated order IDs.
func (repo *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	subM, err := fromSubscriptionDomain(sub)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		return errors.Wrap(err, "failed to create subscription")
	}

	// Update the entity with generated values
	sub.CreatedAt = subM.CreatedAt

	return nil
}

// FindByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subM)
}

// FindActiveByAccount retrieves the active subscription of an account, if any.
func (repo *subscriptionRepository) FindActiveByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND active = true", accountID).
		Order("created_at DESC").
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active subscription")
	}

	return toSubscriptionDomain(&subM)
}

// Deactivate clears the active flag of a subscription.
func (repo *subscriptionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Update("active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) (*entity.Subscription, error) {
	if data == nil {
		return nil, nil
	}

	var selection entity.BundleSelection
	if err := json.Unmarshal(data.Selection, &selection); err != nil {
		return nil, errors.Wrap(err, "failed to decode bundle selection")
	}

	var orderIDs []uuid.UUID
	if err := json.Unmarshal(data.OrderIDs, &orderIDs); err != nil {
		return nil, errors.Wrap(err, "failed to decode bundle order IDs")
	}

	return &entity.Subscription{
		ID:         data.ID,
		AccountID:  data.AccountID,
		DaysCount:  data.DaysCount,
		Selection:  selection,
		TotalPrice: data.TotalPrice,
		MealCount:  data.MealCount,
		OrderIDs:   orderIDs,
		StartDate:  data.StartDate,
		ExpiresAt:  data.ExpiresAt,
		Active:     data.Active,
		CreatedAt:  data.CreatedAt,
	}, nil
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) (*model.SubscriptionModel, error) {
	if data == nil {
		return nil, nil
	}

	selection, err := json.Marshal(data.Selection)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode bundle selection")
	}

	orderIDs, err := json.Marshal(data.OrderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode bundle order IDs")
	}

	return &model.SubscriptionModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		DaysCount:  data.DaysCount,
		Selection:  datatypes.JSON(selection),
		TotalPrice: data.TotalPrice,
		MealCount:  data.MealCount,
		OrderIDs:   datatypes.JSON(orderIDs),
		StartDate:  data.StartDate,
		ExpiresAt:  data.ExpiresAt,
		Active:     data.Active,
		CreatedAt:  data.CreatedAt,
	}, nil
}
