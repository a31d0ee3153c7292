package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

func newInvestor(name string) *entity.User {
	return entity.NewUser(name, name+"@example.com", "hash", entity.UserRoleInvestor)
}

func TestCreateExpenseDividesAcrossActiveInvestors(t *testing.T) {
	investorA := newInvestor("ana")
	investorB := newInvestor("bia")
	investorC := newInvestor("caio")
	inactive := newInvestor("davi")
	inactive.Active = false
	admin := entity.NewUser("root", "root@example.com", "hash", entity.UserRoleAdmin)

	category := entity.NewCategory("Mercado", "", entity.DefaultCategoryColor)

	expenseRepo := newFakeExpenseRepo()
	cache := &fakeSummaryCache{}
	uc := NewCreateExpenseUseCase(
		expenseRepo,
		newFakeCategoryRepo(category),
		newFakeCardRepo(),
		newFakeUserRepo(investorA, investorB, investorC, inactive, admin),
		cache,
	)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Description:  "Compra do mês",
		CategoryID:   category.ID,
		TotalValue:   decimal.NewFromInt(300),
		PurchaseDate: date(2024, 3, 1),
		DueDate:      date(2024, 3, 10),
		PaidByID:     investorA.ID,
		Kind:         entity.ExpenseKindSingle,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 300 across 3 active investors; the inactive one and the admin do not
	// count.
	if want := decimal.NewFromInt(100); !output.Expense.DividedValue.Equal(want) {
		t.Errorf("divided value: got %s, want %s", output.Expense.DividedValue, want)
	}
	if cache.invalidations != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
	}
}

func TestCreateExpenseInstallmentsGeneratedAtomically(t *testing.T) {
	investor := newInvestor("ana")
	category := entity.NewCategory("Casa", "", entity.DefaultCategoryColor)

	expenseRepo := newFakeExpenseRepo()
	uc := NewCreateExpenseUseCase(
		expenseRepo,
		newFakeCategoryRepo(category),
		newFakeCardRepo(),
		newFakeUserRepo(investor),
		&fakeSummaryCache{},
	)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Description:      "Sofá",
		CategoryID:       category.ID,
		TotalValue:       decimal.NewFromInt(500),
		PurchaseDate:     date(2024, 1, 5),
		DueDate:          date(2024, 1, 10),
		PaidByID:         investor.ID,
		Kind:             entity.ExpenseKindInstallment,
		InstallmentTotal: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.GeneratedCount != 4 {
		t.Errorf("expected 4 generated children, got %d", output.GeneratedCount)
	}
	children, _ := expenseRepo.FindChildren(context.Background(), output.Expense.ID, nil)
	if len(children) != 4 {
		t.Errorf("expected 4 persisted children, got %d", len(children))
	}
	if output.Expense.Description != "Sofá" {
		t.Errorf("parent description should stay plain, got %q", output.Expense.Description)
	}
}

func TestCreateRecurringExpenseWithoutGenerationCreatesParentOnly(t *testing.T) {
	investor := newInvestor("ana")
	category := entity.NewCategory("Internet", "", entity.DefaultCategoryColor)

	expenseRepo := newFakeExpenseRepo()
	uc := NewCreateExpenseUseCase(
		expenseRepo,
		newFakeCategoryRepo(category),
		newFakeCardRepo(),
		newFakeUserRepo(investor),
		&fakeSummaryCache{},
	)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Description:  "Fibra",
		CategoryID:   category.ID,
		TotalValue:   decimal.NewFromInt(120),
		PurchaseDate: date(2024, 1, 5),
		DueDate:      date(2024, 1, 10),
		PaidByID:     investor.ID,
		Kind:         entity.ExpenseKindRecurring,
		Frequency:    entity.FrequencyMonthly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.GeneratedCount != 0 {
		t.Errorf("expected no generated children, got %d", output.GeneratedCount)
	}
	if got := len(expenseRepo.expenses); got != 1 {
		t.Errorf("expected only the parent persisted, got %d records", got)
	}

	// The occurrences can still be materialized afterwards.
	genUC := NewGenerateChildrenUseCase(expenseRepo, &fakeSummaryCache{})
	generated, err := genUC.Execute(context.Background(), GenerateChildrenInput{
		ID:    output.Expense.ID,
		Count: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error generating children: %v", err)
	}
	if generated.GeneratedCount != 3 {
		t.Errorf("expected 3 generated children, got %d", generated.GeneratedCount)
	}
}

func TestCreateRecurringExpenseGeneratesWhenRequested(t *testing.T) {
	investor := newInvestor("ana")
	category := entity.NewCategory("Internet", "", entity.DefaultCategoryColor)

	expenseRepo := newFakeExpenseRepo()
	uc := NewCreateExpenseUseCase(
		expenseRepo,
		newFakeCategoryRepo(category),
		newFakeCardRepo(),
		newFakeUserRepo(investor),
		&fakeSummaryCache{},
	)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Description:         "Fibra",
		CategoryID:          category.ID,
		TotalValue:          decimal.NewFromInt(120),
		PurchaseDate:        date(2024, 1, 5),
		DueDate:             date(2024, 1, 10),
		PaidByID:            investor.ID,
		Kind:                entity.ExpenseKindRecurring,
		Frequency:           entity.FrequencyMonthly,
		GenerateRecurrences: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.GeneratedCount != DefaultRecurrenceCount {
		t.Errorf("expected %d generated children, got %d", DefaultRecurrenceCount, output.GeneratedCount)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	investor := newInvestor("ana")
	category := entity.NewCategory("Casa", "", entity.DefaultCategoryColor)

	uc := NewCreateExpenseUseCase(
		newFakeExpenseRepo(),
		newFakeCategoryRepo(category),
		newFakeCardRepo(),
		newFakeUserRepo(investor),
		&fakeSummaryCache{},
	)

	base := CreateExpenseInput{
		Description:  "Teste",
		CategoryID:   category.ID,
		TotalValue:   decimal.NewFromInt(10),
		PurchaseDate: date(2024, 1, 5),
		DueDate:      date(2024, 1, 10),
		PaidByID:     investor.ID,
		Kind:         entity.ExpenseKindSingle,
	}

	tests := []struct {
		name    string
		mutate  func(input *CreateExpenseInput)
		wantErr error
	}{
		{
			name:    "negative value",
			mutate:  func(input *CreateExpenseInput) { input.TotalValue = decimal.NewFromInt(-5) },
			wantErr: domainerror.ErrInvalidExpenseValue,
		},
		{
			name:    "zero value",
			mutate:  func(input *CreateExpenseInput) { input.TotalValue = decimal.Zero },
			wantErr: domainerror.ErrInvalidExpenseValue,
		},
		{
			name:    "invalid kind",
			mutate:  func(input *CreateExpenseInput) { input.Kind = "semanal" },
			wantErr: domainerror.ErrInvalidExpenseKind,
		},
		{
			name:    "invalid status",
			mutate:  func(input *CreateExpenseInput) { input.Status = "atrasada" },
			wantErr: domainerror.ErrInvalidExpenseStatus,
		},
		{
			name: "invalid frequency",
			mutate: func(input *CreateExpenseInput) {
				input.Kind = entity.ExpenseKindRecurring
				input.Frequency = "quinzenal"
			},
			wantErr: domainerror.ErrInvalidExpenseFrequency,
		},
		{
			name:    "unknown category",
			mutate:  func(input *CreateExpenseInput) { input.CategoryID = newInvestor("x").ID },
			wantErr: domainerror.ErrCategoryNotFound,
		},
		{
			name:    "unknown payer",
			mutate:  func(input *CreateExpenseInput) { input.PaidByID = category.ID },
			wantErr: domainerror.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			tt.mutate(&input)
			_, err := uc.Execute(context.Background(), input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteExpenseRefusesPendingChildren(t *testing.T) {
	investor := newInvestor("ana")
	category := entity.NewCategory("Casa", "", entity.DefaultCategoryColor)

	expenseRepo := newFakeExpenseRepo()
	createUC := NewCreateExpenseUseCase(
		expenseRepo,
		newFakeCategoryRepo(category),
		newFakeCardRepo(),
		newFakeUserRepo(investor),
		&fakeSummaryCache{},
	)

	created, err := createUC.Execute(context.Background(), CreateExpenseInput{
		Description:      "Sofá",
		CategoryID:       category.ID,
		TotalValue:       decimal.NewFromInt(500),
		PurchaseDate:     date(2024, 1, 5),
		DueDate:          date(2024, 1, 10),
		PaidByID:         investor.ID,
		Kind:             entity.ExpenseKindInstallment,
		InstallmentTotal: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleteUC := NewDeleteExpenseUseCase(expenseRepo, &fakeSummaryCache{})

	_, err = deleteUC.Execute(context.Background(), DeleteExpenseInput{ID: created.Expense.ID})
	if !errors.Is(err, domainerror.ErrExpenseHasPendingChildren) {
		t.Fatalf("expected pending children error, got %v", err)
	}

	output, err := deleteUC.Execute(context.Background(), DeleteExpenseInput{ID: created.Expense.ID, Cascade: true})
	if err != nil {
		t.Fatalf("unexpected error on cascade: %v", err)
	}
	if output.DeletedCount != 3 {
		t.Errorf("expected 3 deleted records, got %d", output.DeletedCount)
	}
	if len(expenseRepo.expenses) != 0 {
		t.Errorf("expected empty repo, got %d records", len(expenseRepo.expenses))
	}
}

func TestGenerateChildrenGuardsDoubleGeneration(t *testing.T) {
	investor := newInvestor("ana")
	category := entity.NewCategory("Internet", "", entity.DefaultCategoryColor)

	expenseRepo := newFakeExpenseRepo()
	parent := entity.NewExpense(
		"", "Fibra", category.ID,
		decimal.NewFromInt(120), decimal.NewFromInt(120),
		date(2024, 1, 5), date(2024, 1, 10),
		"débito", nil, investor.ID,
		entity.ExpenseStatusPending, entity.ExpenseKindRecurring,
	)
	parent.Frequency = entity.FrequencyMonthly
	if err := expenseRepo.Create(context.Background(), parent); err != nil {
		t.Fatal(err)
	}

	uc := NewGenerateChildrenUseCase(expenseRepo, &fakeSummaryCache{})

	output, err := uc.Execute(context.Background(), GenerateChildrenInput{ID: parent.ID, Count: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.GeneratedCount != 6 {
		t.Errorf("expected 6 generated children, got %d", output.GeneratedCount)
	}

	_, err = uc.Execute(context.Background(), GenerateChildrenInput{ID: parent.ID, Count: 6})
	if !errors.Is(err, domainerror.ErrChildrenAlreadyGenerated) {
		t.Errorf("expected already-generated error, got %v", err)
	}
}
