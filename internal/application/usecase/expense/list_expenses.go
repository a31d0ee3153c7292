package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Filter adapter.ExpenseFilter
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves expenses matching the filter, ordered by due date.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	records, err := uc.expenseRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{Expenses: make([]*ExpenseOutput, 0, len(records))}
	for _, record := range records {
		output.Expenses = append(output.Expenses, newExpenseOutputWithRelations(record))
	}
	return output, nil
}

// GetExpenseInput represents the input for fetching one expense.
type GetExpenseInput struct {
	ID uuid.UUID
}

// GetExpenseOutput represents the output of fetching one expense.
type GetExpenseOutput struct {
	Expense *ExpenseOutput
}

// GetExpenseUseCase handles single expense retrieval.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves an expense with its relations.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	record, err := uc.expenseRepo.FindByIDWithRelations(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return &GetExpenseOutput{Expense: newExpenseOutputWithRelations(record)}, nil
}
