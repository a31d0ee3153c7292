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

// GenerateChildrenInput represents the input for child generation on an
// existing parent expense.
type GenerateChildrenInput struct {
	ID    uuid.UUID
	Count int // Recurrences only; 0 means DefaultRecurrenceCount
}

// GenerateChildrenOutput reports how many children were created.
type GenerateChildrenOutput struct {
	GeneratedCount int
}

// GenerateChildrenUseCase materializes the installments or recurrences of a
// parent that was created without them. Generation happens at most once per
// parent: a parent that already has children is refused.
type GenerateChildrenUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	summaryCache adapter.SummaryCache
}

// NewGenerateChildrenUseCase creates a new GenerateChildrenUseCase instance.
func NewGenerateChildrenUseCase(expenseRepo adapter.ExpenseRepository, summaryCache adapter.SummaryCache) *GenerateChildrenUseCase {
	return &GenerateChildrenUseCase{
		expenseRepo:  expenseRepo,
		summaryCache: summaryCache,
	}
}

// Execute generates the children of a parent expense in one transaction.
func (uc *GenerateChildrenUseCase) Execute(ctx context.Context, input GenerateChildrenInput) (*GenerateChildrenOutput, error) {
	parent, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if !parent.IsParent() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotParent,
			"only a parent expense can generate children",
			domainerror.ErrExpenseNotParent,
		)
	}
	if parent.Kind == entity.ExpenseKindSingle {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseKind,
			"a single expense has no installments or recurrences",
			domainerror.ErrInvalidExpenseKind,
		)
	}

	existing, err := uc.expenseRepo.CountChildren(ctx, parent.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count children: %w", err)
	}
	if existing > 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseChildrenGenerated,
			"children already generated for this expense",
			domainerror.ErrChildrenAlreadyGenerated,
		)
	}

	var children []*entity.Expense
	switch parent.Kind {
	case entity.ExpenseKindInstallment:
		children = BuildInstallments(parent)
	case entity.ExpenseKindRecurring:
		children = BuildRecurrences(parent, input.Count)
	}
	if len(children) == 0 {
		return &GenerateChildrenOutput{}, nil
	}

	// The parent already exists; only the children go through the batch
	// insert, still as one transaction.
	if err := uc.expenseRepo.CreateWithChildren(ctx, nil, children); err != nil {
		return nil, fmt.Errorf("failed to generate children: %w", err)
	}

	if err := uc.summaryCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}

	return &GenerateChildrenOutput{GeneratedCount: len(children)}, nil
}
