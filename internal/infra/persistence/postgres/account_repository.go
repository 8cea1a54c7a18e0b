package postgres

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByID retrieves an account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// FindByIDForUpdate retrieves an account and locks its row for the remainder
// of the surrounding transaction.
func (repo *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account for update")
	}

	return toAccountDomain(&accountM), nil
}

// SetBalance overwrites the account balance.
func (repo *accountRepository) SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("balance", balance)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set account balance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// SetState transitions the account lifecycle state.
func (repo *accountRepository) SetState(ctx context.Context, id uuid.UUID, state entity.AccountState, by uuid.UUID) error {
	updates := map[string]any{
		"state": string(state),
	}
	if state == entity.AccountArchived {
		updates["archived_at"] = gorm.Expr("NOW()")
		updates["archived_by"] = by
	} else {
		updates["archived_at"] = nil
		updates["archived_by"] = nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set account state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ListByRole retrieves all active accounts with the given role.
func (repo *accountRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("role = ? AND state = ?", string(role), string(entity.AccountActive)).
		Order("full_name ASC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by role")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// ListArchived retrieves all archived accounts.
func (repo *accountRepository) ListArchived(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("state = ?", string(entity.AccountArchived)).
		Order("archived_at DESC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list archived accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// CountActiveByRole counts active accounts with the given role.
func (repo *accountRepository) CountActiveByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("role = ? AND state = ?", string(role), string(entity.AccountActive)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active accounts by role")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:         data.ID,
		FullName:   data.FullName,
		Email:      data.Email,
		Role:       entity.Role(data.Role),
		ClassName:  data.ClassName,
		Balance:    data.Balance,
		Allergy:    data.Allergy,
		State:      entity.AccountState(data.State),
		ArchivedAt: data.ArchivedAt,
		ArchivedBy: data.ArchivedBy,
		CreatedAt:  data.CreatedAt,
	}
}
