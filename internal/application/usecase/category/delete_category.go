package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, expenseRepo adapter.ExpenseRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the category deletion. A category that expenses still
// reference cannot be removed.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := uc.categoryRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	count, err := uc.expenseRepo.CountByCategory(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count category expenses: %w", err)
	}
	if count > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("category has %d associated expenses", count),
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
