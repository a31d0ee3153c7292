package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion. Cascade
// removes the parent together with all of its children.
type DeleteExpenseInput struct {
	ID      uuid.UUID
	Cascade bool
}

// DeleteExpenseOutput reports how many records were removed.
type DeleteExpenseOutput struct {
	DeletedCount int64
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	summaryCache adapter.SummaryCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, summaryCache adapter.SummaryCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo:  expenseRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the expense deletion. A parent with pending children is
// refused unless cascade was requested; cascade removes parent and children
// in one transaction.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if input.Cascade && expense.IsParent() {
		deleted, err := uc.expenseRepo.DeleteWithChildren(ctx, expense.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to delete expense with children: %w", err)
		}
		uc.invalidateSummaries(ctx)
		return &DeleteExpenseOutput{DeletedCount: deleted}, nil
	}

	if expense.IsParent() {
		pending := entity.ExpenseStatusPending
		count, err := uc.expenseRepo.CountChildren(ctx, expense.ID, &pending)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending children: %w", err)
		}
		if count > 0 {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpensePendingChildren,
				fmt.Sprintf("expense has %d pending installments or recurrences", count),
				domainerror.ErrExpenseHasPendingChildren,
			)
		}
	}

	if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	uc.invalidateSummaries(ctx)
	return &DeleteExpenseOutput{DeletedCount: 1}, nil
}

func (uc *DeleteExpenseUseCase) invalidateSummaries(ctx context.Context) {
	if err := uc.summaryCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}
}
