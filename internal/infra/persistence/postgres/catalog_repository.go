package postgres

import (
	"context"
	"encoding/json"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindMeal retrieves the meal definition for a slot, recipe included.
func (repo *catalogRepository) FindMeal(ctx context.Context, slot entity.Slot) (*entity.MealDefinition, error) {
	var mealM model.MealDefinitionModel

	if err := repo.db.WithContext(ctx).
		Where("day = ? AND meal_type = ?", string(slot.Day), string(slot.Meal)).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal definition")
	}

	return toMealDomain(&mealM)
}

// ListMeals retrieves every defined meal with its recipe.
func (repo *catalogRepository) ListMeals(ctx context.Context) ([]*entity.MealDefinition, error) {
	var mealModels []*model.MealDefinitionModel

	if err := repo.db.WithContext(ctx).
		Order("day ASC, meal_type ASC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meal definitions")
	}

	meals := make([]*entity.MealDefinition, 0, len(mealModels))
	for _, mealM := range mealModels {
		meal, err := toMealDomain(mealM)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}

	return meals, nil
}

// UpsertMeal creates or replaces the meal definition for its slot, recipe
// lines included.
func (repo *catalogRepository) UpsertMeal(ctx context.Context, meal *entity.MealDefinition) error {
	mealM, err := fromMealDomain(meal)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}, {Name: "meal_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "recipe", "updated_at"}),
		}).
		Create(mealM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert meal definition")
	}

	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// FindIngredientByName retrieves an ingredient by its unique name.
func (repo *catalogRepository) FindIngredientByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&ingredientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by name")
	}

	return toIngredientDomain(&ingredientM), nil
}

// EnsureIngredient returns the ingredient with the given name, creating it
// with a zero price if it does not exist yet.
func (repo *catalogRepository) EnsureIngredient(ctx context.Context, name string) (*entity.Ingredient, error) {
	ingredientM := &model.IngredientModel{Name: name}

	// DoNothing still requires a follow-up read because the insert returns
	// no row when the name already exists.
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(ingredientM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to ensure ingredient")
	}

	return repo.FindIngredientByName(ctx, name)
}

// ListIngredients retrieves all ingredients ordered by name.
func (repo *catalogRepository) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

// SetIngredientPrice updates the live costing price of an ingredient.
func (repo *catalogRepository) SetIngredientPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IngredientModel{}).
		Where("id = ?", id).
		Update("price_per_unit", price)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set ingredient price")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMealDomain converts a GORM MealDefinitionModel to a domain MealDefinition entity.
func toMealDomain(data *model.MealDefinitionModel) (*entity.MealDefinition, error) {
	if data == nil {
		return nil, nil
	}

	var recipe []entity.RecipeLine
	if err := json.Unmarshal(data.Recipe, &recipe); err != nil {
		return nil, errors.Wrap(err, "failed to decode meal recipe")
	}

	return &entity.MealDefinition{
		ID: data.ID,
		Slot: entity.Slot{
			Day:  entity.DayOfWeek(data.Day),
			Meal: entity.MealType(data.MealType),
		},
		Name:      data.Name,
		Price:     data.Price,
		Recipe:    recipe,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromMealDomain converts a domain MealDefinition entity to a GORM MealDefinitionModel.
func fromMealDomain(data *entity.MealDefinition) (*model.MealDefinitionModel, error) {
	if data == nil {
		return nil, nil
	}

	recipe, err := json.Marshal(data.Recipe)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode meal recipe")
	}

	return &model.MealDefinitionModel{
		ID:        data.ID,
		Day:       string(data.Slot.Day),
		MealType:  string(data.Slot.Meal),
		Name:      data.Name,
		Price:     data.Price,
		Recipe:    datatypes.JSON(recipe),
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// toIngredientDomain converts a GORM IngredientModel to a domain Ingredient entity.
func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	return &entity.Ingredient{
		ID:           data.ID,
		Name:         data.Name,
		PricePerUnit: data.PricePerUnit,
	}
}
