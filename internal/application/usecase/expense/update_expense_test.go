package expense

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

func TestUpdateExpensePropagatesInstallmentTotal(t *testing.T) {
	investor := newInvestor("ana")
	category := entity.NewCategory("Casa", "", entity.DefaultCategoryColor)

	expenseRepo := newFakeExpenseRepo()
	categoryRepo := newFakeCategoryRepo(category)
	cardRepo := newFakeCardRepo()
	userRepo := newFakeUserRepo(investor)

	createUC := NewCreateExpenseUseCase(expenseRepo, categoryRepo, cardRepo, userRepo, &fakeSummaryCache{})
	created, err := createUC.Execute(context.Background(), CreateExpenseInput{
		Description:      "Sofá",
		CategoryID:       category.ID,
		TotalValue:       decimal.NewFromInt(500),
		PurchaseDate:     date(2024, 1, 5),
		DueDate:          date(2024, 1, 10),
		PaidByID:         investor.ID,
		Kind:             entity.ExpenseKindInstallment,
		InstallmentTotal: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updateUC := NewUpdateExpenseUseCase(expenseRepo, categoryRepo, cardRepo, userRepo, &fakeSummaryCache{})

	description := "Sofá da sala"
	installmentTotal := 6
	output, err := updateUC.Execute(context.Background(), UpdateExpenseInput{
		ID:                created.Expense.ID,
		Description:       &description,
		InstallmentTotal:  &installmentTotal,
		PropagateToFuture: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.PropagatedCount != 3 {
		t.Errorf("expected 3 propagated children, got %d", output.PropagatedCount)
	}
	if output.Expense.InstallmentTotal != 6 {
		t.Errorf("parent installment total: got %d, want 6", output.Expense.InstallmentTotal)
	}

	children, _ := expenseRepo.FindChildren(context.Background(), created.Expense.ID, nil)
	for _, child := range children {
		if child.InstallmentTotal != 6 {
			t.Errorf("child %d installment total: got %d, want 6", child.InstallmentCurrent, child.InstallmentTotal)
		}
		want := InstallmentDescription("Sofá da sala", child.InstallmentCurrent, 6)
		if child.Description != want {
			t.Errorf("child description: got %q, want %q", child.Description, want)
		}
	}
}

func TestUpdateExpenseInstallmentFieldsIgnoredForOtherKinds(t *testing.T) {
	investor := newInvestor("ana")
	category := entity.NewCategory("Casa", "", entity.DefaultCategoryColor)

	expenseRepo := newFakeExpenseRepo()
	categoryRepo := newFakeCategoryRepo(category)
	cardRepo := newFakeCardRepo()
	userRepo := newFakeUserRepo(investor)

	createUC := NewCreateExpenseUseCase(expenseRepo, categoryRepo, cardRepo, userRepo, &fakeSummaryCache{})
	created, err := createUC.Execute(context.Background(), CreateExpenseInput{
		Description:  "Conta de luz",
		CategoryID:   category.ID,
		TotalValue:   decimal.NewFromInt(200),
		PurchaseDate: date(2024, 1, 5),
		DueDate:      date(2024, 1, 10),
		PaidByID:     investor.ID,
		Kind:         entity.ExpenseKindSingle,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updateUC := NewUpdateExpenseUseCase(expenseRepo, categoryRepo, cardRepo, userRepo, &fakeSummaryCache{})

	installmentTotal := 3
	output, err := updateUC.Execute(context.Background(), UpdateExpenseInput{
		ID:               created.Expense.ID,
		InstallmentTotal: &installmentTotal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Expense.InstallmentTotal != 0 {
		t.Errorf("single expense should keep installment total 0, got %d", output.Expense.InstallmentTotal)
	}
}
