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

// stockRepository implements the repository.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// lockedStockRow is the scan target for the name-joined locking query.
type lockedStockRow struct {
	ID             uuid.UUID
	IngredientID   uuid.UUID
	Quantity       float64
	Unit           string
	UpdatedAt      time.Time
	IngredientName string
}

// LockByIngredientNames retrieves the stock rows for the given ingredient
// names and locks them for the remainder of the surrounding transaction.
// Rows are locked in ascending name order so concurrent fulfillments that
// touch overlapping ingredient sets cannot deadlock each other.
func (repo *stockRepository) LockByIngredientNames(ctx context.Context, names []string) (map[string]*entity.Stock, error) {
	if len(names) == 0 {
		return map[string]*entity.Stock{}, nil
	}

	var rows []lockedStockRow

	query := `
		SELECT s.id, s.ingredient_id, s.quantity, s.unit, s.updated_at,
		       i.name AS ingredient_name
		FROM stocks s
		JOIN ingredients i ON i.id = s.ingredient_id
		WHERE i.name IN ?
		ORDER BY i.name ASC
		FOR UPDATE OF s
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, names).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock stocks by ingredient names")
	}

	stocks := make(map[string]*entity.Stock, len(rows))
	for _, row := range rows {
		stocks[row.IngredientName] = &entity.Stock{
			ID:           row.ID,
			IngredientID: row.IngredientID,
			Quantity:     row.Quantity,
			Unit:         row.Unit,
			UpdatedAt:    row.UpdatedAt,
		}
	}

	return stocks, nil
}

// SetQuantity overwrites the quantity of a previously locked stock row.
func (repo *stockRepository) SetQuantity(ctx context.Context, id uuid.UUID, quantity float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set stock quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStockNotFound
	}

	return nil
}

// Credit increases stock for an ingredient, creating the row (with the given
// unit) if it does not exist yet.
func (repo *stockRepository) Credit(ctx context.Context, ingredientID uuid.UUID, qty float64, unit string) error {
	stockM := &model.StockModel{
		IngredientID: ingredientID,
		Quantity:     qty,
		Unit:         unit,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "ingredient_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("stocks.quantity + ?", qty),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(stockM).Error; err != nil {
		return errors.Wrap(err, "failed to credit stock")
	}

	return nil
}

// FindByIngredientID retrieves the stock row for one ingredient.
func (repo *stockRepository) FindByIngredientID(ctx context.Context, ingredientID uuid.UUID) (*entity.Stock, error) {
	var stockM model.StockModel

	if err := repo.db.WithContext(ctx).
		Where("ingredient_id = ?", ingredientID).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock by ingredient")
	}

	return toStockDomain(&stockM), nil
}

// FindByIngredientIDForUpdate retrieves the stock row for one ingredient and
// locks it for the remainder of the surrounding transaction.
func (repo *stockRepository) FindByIngredientIDForUpdate(ctx context.Context, ingredientID uuid.UUID) (*entity.Stock, error) {
	var stockM model.StockModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("ingredient_id = ?", ingredientID).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock for update")
	}

	return toStockDomain(&stockM), nil
}

// ListAll retrieves every stock row.
func (repo *stockRepository) ListAll(ctx context.Context) ([]*entity.Stock, error) {
	var stockModels []*model.StockModel

	if err := repo.db.WithContext(ctx).
		Find(&stockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stocks")
	}

	stocks := make([]*entity.Stock, 0, len(stockModels))
	for _, stockM := range stockModels {
		stocks = append(stocks, toStockDomain(stockM))
	}

	return stocks, nil
}

// --- Mapper Functions ---

// toStockDomain converts a GORM StockModel to a domain Stock entity.
func toStockDomain(data *model.StockModel) *entity.Stock {
	if data == nil {
		return nil
	}

	return &entity.Stock{
		ID:           data.ID,
		IngredientID: data.IngredientID,
		Quantity:     data.Quantity,
		Unit:         data.Unit,
		UpdatedAt:    data.UpdatedAt,
	}
}
