package postgres

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// procurementRepository implements the repository.ProcurementRepository interface.
type procurementRepository struct {
	db *gorm.DB
}

// NewProcurementRepository is the constructor for procurementRepository.
func NewProcurementRepository(db *gorm.DB) repository.ProcurementRepository {
	return &procurementRepository{
		db: db,
	}
}

// Create persists a new purchase request.
func (repo *procurementRepository) Create(ctx context.Context, req *entity.PurchaseRequest) error {
	reqM := fromPurchaseRequestDomain(req)

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		return errors.Wrap(err, "failed to create purchase request")
	}

	// Update the entity with generated values
	req.CreatedAt = reqM.CreatedAt

	return nil
}

// FindByID retrieves a purchase request by its unique ID.
func (repo *procurementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRequest, error) {
	var reqM model.PurchaseRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase request by ID")
	}

	return toPurchaseRequestDomain(&reqM), nil
}

// FindByIDForUpdate retrieves a purchase request by ID with a row lock, so a
// decision can be applied exactly once.
func (repo *procurementRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PurchaseRequest, error) {
	var reqM model.PurchaseRequestModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase request for update")
	}

	return toPurchaseRequestDomain(&reqM), nil
}

// Decide records the outcome of a pending request.
func (repo *procurementRepository) Decide(ctx context.Context, id uuid.UUID, status entity.RequestStatus, decidedBy uuid.UUID, decidedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"decided_by": decidedBy,
			"decided_at": decidedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decide purchase request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// ListPending retrieves all requests awaiting a decision, oldest first.
func (repo *procurementRepository) ListPending(ctx context.Context) ([]*entity.PurchaseRequest, error) {
	var reqModels []*model.PurchaseRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.RequestPending)).
		Order("created_at ASC").
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending purchase requests")
	}

	return toPurchaseRequestDomainList(reqModels), nil
}

// ListByRequester retrieves all requests created by an account, newest first.
func (repo *procurementRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.PurchaseRequest, error) {
	var reqModels []*model.PurchaseRequestModel

	if err := repo.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchase requests by requester")
	}

	return toPurchaseRequestDomainList(reqModels), nil
}

// ListApprovedInRange retrieves approved requests decided within [from, to).
func (repo *procurementRepository) ListApprovedInRange(ctx context.Context, from, to time.Time) ([]*entity.PurchaseRequest, error) {
	var reqModels []*model.PurchaseRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND decided_at >= ? AND decided_at < ?",
			string(entity.RequestApproved), from, to).
		Order("decided_at ASC").
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list approved purchase requests")
	}

	return toPurchaseRequestDomainList(reqModels), nil
}

// --- Mapper Functions ---

func toPurchaseRequestDomainList(reqModels []*model.PurchaseRequestModel) []*entity.PurchaseRequest {
	reqs := make([]*entity.PurchaseRequest, 0, len(reqModels))
	for _, reqM := range reqModels {
		reqs = append(reqs, toPurchaseRequestDomain(reqM))
	}

	return reqs
}

// toPurchaseRequestDomain converts a GORM PurchaseRequestModel to a domain PurchaseRequest entity.
func toPurchaseRequestDomain(data *model.PurchaseRequestModel) *entity.PurchaseRequest {
	if data == nil {
		return nil
	}

	return &entity.PurchaseRequest{
		ID:             data.ID,
		RequesterID:    data.RequesterID,
		IngredientName: data.IngredientName,
		Quantity:       data.Quantity,
		Unit:           data.Unit,
		Status:         entity.RequestStatus(data.Status),
		DecidedBy:      data.DecidedBy,
		DecidedAt:      data.DecidedAt,
		CreatedAt:      data.CreatedAt,
	}
}

// fromPurchaseRequestDomain converts a domain PurchaseRequest entity to a GORM PurchaseRequestModel.
func fromPurchaseRequestDomain(data *entity.PurchaseRequest) *model.PurchaseRequestModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseRequestModel{
		ID:             data.ID,
		RequesterID:    data.RequesterID,
		IngredientName: data.IngredientName,
		Quantity:       data.Quantity,
		Unit:           data.Unit,
		Status:         string(data.Status),
		DecidedBy:      data.DecidedBy,
		DecidedAt:      data.DecidedAt,
		CreatedAt:      data.CreatedAt,
	}
}
