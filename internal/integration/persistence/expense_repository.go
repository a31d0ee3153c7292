package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
	"github.com/controle-financeiro/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a single expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	return r.db.WithContext(ctx).Create(expenseModel).Error
}

// CreateWithChildren creates a parent expense and all of its generated
// children in one transaction. A nil parent inserts only the children.
func (r *expenseRepository) CreateWithChildren(ctx context.Context, parent *entity.Expense, children []*entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if parent != nil {
			if err := tx.Create(model.ExpenseFromEntity(parent)).Error; err != nil {
				return err
			}
		}
		for _, child := range children {
			if err := tx.Create(model.ExpenseFromEntity(child)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByIDWithRelations retrieves an expense with category, card and payer.
func (r *expenseRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithRelations, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Card").
		Preload("PaidBy").
		Where("id = ?", id).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntityWithRelations(), nil
}

// FindByFilter retrieves expenses matching the filter, ordered by due date.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.ExpenseWithRelations, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Preload("Category").
		Preload("Card").
		Preload("PaidBy")

	if filter.Month >= 1 && filter.Month <= 12 && filter.Year > 0 {
		from := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0).AddDate(0, 0, -1)
		query = query.Where("data_vencimento >= ? AND data_vencimento <= ?", from, to)
	} else if filter.Year > 0 {
		from := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(filter.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		query = query.Where("data_vencimento >= ? AND data_vencimento <= ?", from, to)
	}
	if filter.CategoryID != nil {
		query = query.Where("categoria_id = ?", *filter.CategoryID)
	}
	if filter.Kind != nil {
		query = query.Where("tipo_despesa = ?", string(*filter.Kind))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(descricao) LIKE LOWER(?) OR LOWER(origem) LIKE LOWER(?)", pattern, pattern)
	}

	var expenseModels []model.ExpenseModel
	if err := query.Order("data_vencimento").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.ExpenseWithRelations, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntityWithRelations()
	}
	return expenses, nil
}

// FindByCardAndWindow retrieves expenses on a card whose purchase date lies
// in the half-open invoice window (after, until].
func (r *expenseRepository) FindByCardAndWindow(ctx context.Context, cardID uuid.UUID, after, until time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	err := r.db.WithContext(ctx).
		Where("cartao_id = ? AND data_compra > ? AND data_compra <= ?", cardID, after, until).
		Order("data_compra").
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}

// FindByDueDateRange retrieves expenses due inside [from, to] with relations.
func (r *expenseRepository) FindByDueDateRange(ctx context.Context, from, to time.Time) ([]*entity.ExpenseWithRelations, error) {
	var expenseModels []model.ExpenseModel
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Card").
		Preload("PaidBy").
		Where("data_vencimento >= ? AND data_vencimento <= ?", from, to).
		Order("data_vencimento").
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]*entity.ExpenseWithRelations, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntityWithRelations()
	}
	return expenses, nil
}

// FindChildren retrieves the children of a parent expense.
func (r *expenseRepository) FindChildren(ctx context.Context, parentID uuid.UUID, status *entity.ExpenseStatus) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Where("despesa_pai_id = ?", parentID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var expenseModels []model.ExpenseModel
	if err := query.Order("data_vencimento").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}

// CountChildren counts the children of a parent expense.
func (r *expenseRepository) CountChildren(ctx context.Context, parentID uuid.UUID, status *entity.ExpenseStatus) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("despesa_pai_id = ?", parentID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update updates a single expense.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := r.updateTx(r.db.WithContext(ctx), expense)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// UpdateWithChildren updates a parent and a set of its children in one
// transaction.
func (r *expenseRepository) UpdateWithChildren(ctx context.Context, parent *entity.Expense, children []*entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := r.updateTx(tx, parent)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrExpenseNotFound
		}
		for _, child := range children {
			if result := r.updateTx(tx, child); result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

func (r *expenseRepository) updateTx(tx *gorm.DB, expense *entity.Expense) *gorm.DB {
	expenseModel := model.ExpenseFromEntity(expense)
	return tx.Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(expenseModel)
}

// Delete deletes a single expense.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// DeleteWithChildren deletes a parent and all of its children in one
// transaction, returning the number of records removed.
func (r *expenseRepository) DeleteWithChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		children := tx.Delete(&model.ExpenseModel{}, "despesa_pai_id = ?", parentID)
		if children.Error != nil {
			return children.Error
		}
		parent := tx.Delete(&model.ExpenseModel{}, "id = ?", parentID)
		if parent.Error != nil {
			return parent.Error
		}
		if parent.RowsAffected == 0 {
			return domainerror.ErrExpenseNotFound
		}
		removed = children.RowsAffected + parent.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// CountByCard counts expenses referencing a card.
func (r *expenseRepository) CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("cartao_id = ?", cardID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountByCategory counts expenses referencing a category.
func (r *expenseRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("categoria_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountPaidBy counts expenses paid by a user.
func (r *expenseRepository) CountPaidBy(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("pago_por_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// SumDividedPaid sums the divided value of all paid expenses.
func (r *expenseRepository) SumDividedPaid(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("status = ?", string(entity.ExpenseStatusPaid)).
		Select("COALESCE(SUM(valor_dividido), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumTotalPaidBy sums the total value of paid expenses paid by a user.
func (r *expenseRepository) SumTotalPaidBy(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("status = ? AND pago_por_id = ?", string(entity.ExpenseStatusPaid), userID).
		Select("COALESCE(SUM(valor_total), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
