package expense

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func installmentParent(description string, total int, due time.Time) *entity.Expense {
	parent := entity.NewExpense(
		"Loja", description,
		uuid.New(),
		decimal.NewFromInt(500), decimal.NewFromInt(250),
		due.AddDate(0, 0, -10), due,
		"cartão", nil, uuid.New(),
		entity.ExpenseStatusPending,
		entity.ExpenseKindInstallment,
	)
	parent.InstallmentTotal = total
	parent.InstallmentCurrent = 1
	return parent
}

func recurringParent(frequency entity.ExpenseFrequency, due time.Time) *entity.Expense {
	parent := entity.NewExpense(
		"Internet", "Fibra",
		uuid.New(),
		decimal.NewFromInt(120), decimal.NewFromInt(60),
		due.AddDate(0, 0, -5), due,
		"débito", nil, uuid.New(),
		entity.ExpenseStatusPending,
		entity.ExpenseKindRecurring,
	)
	parent.Frequency = frequency
	return parent
}

func TestBuildInstallments(t *testing.T) {
	parent := installmentParent("Notebook", 5, date(2024, 1, 10))

	children := BuildInstallments(parent)
	if len(children) != 4 {
		t.Fatalf("expected 4 children, got %d", len(children))
	}

	wantDues := []time.Time{date(2024, 2, 9), date(2024, 3, 10), date(2024, 4, 9), date(2024, 5, 9)}
	for i, child := range children {
		current := i + 2
		wantDue := parent.DueDate.AddDate(0, 0, 30*(current-1))
		if !child.DueDate.Equal(wantDue) {
			t.Errorf("child %d due date: got %v, want %v", current, child.DueDate, wantDue)
		}
		if !child.DueDate.Equal(wantDues[i]) {
			t.Errorf("child %d due date: got %v, want %v", current, child.DueDate, wantDues[i])
		}
		if want := InstallmentDescription("Notebook", current, 5); child.Description != want {
			t.Errorf("child %d description: got %q, want %q", current, child.Description, want)
		}
		if child.InstallmentCurrent != current {
			t.Errorf("child %d installment number: got %d", current, child.InstallmentCurrent)
		}
		if child.InstallmentTotal != 5 {
			t.Errorf("child %d installment total: got %d", current, child.InstallmentTotal)
		}
		if !child.TotalValue.Equal(parent.TotalValue) {
			t.Errorf("child %d total value: got %s, want %s", current, child.TotalValue, parent.TotalValue)
		}
		if child.Status != entity.ExpenseStatusPending {
			t.Errorf("child %d status: got %s", current, child.Status)
		}
		if child.ParentID == nil || *child.ParentID != parent.ID {
			t.Errorf("child %d not linked to parent", current)
		}
	}
}

func TestBuildInstallmentsSingle(t *testing.T) {
	parent := installmentParent("Geladeira", 1, date(2024, 1, 10))
	if children := BuildInstallments(parent); len(children) != 0 {
		t.Errorf("expected no children for a single installment, got %d", len(children))
	}
}

func TestBuildRecurrencesMonthEndClamp(t *testing.T) {
	parent := recurringParent(entity.FrequencyMonthly, date(2024, 1, 31))

	children := BuildRecurrences(parent, 3)
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}

	wantDues := []time.Time{date(2024, 2, 29), date(2024, 3, 31), date(2024, 4, 30)}
	for i, child := range children {
		if !child.DueDate.Equal(wantDues[i]) {
			t.Errorf("child %d due date: got %v, want %v", i+1, child.DueDate, wantDues[i])
		}
		wantPurchase := wantDues[i].AddDate(0, 0, -5)
		if !child.PurchaseDate.Equal(wantPurchase) {
			t.Errorf("child %d purchase date: got %v, want %v", i+1, child.PurchaseDate, wantPurchase)
		}
		if child.Description != parent.Description {
			t.Errorf("child %d description: got %q, want %q", i+1, child.Description, parent.Description)
		}
	}
}

func TestBuildRecurrencesNonLeapFebruary(t *testing.T) {
	parent := recurringParent(entity.FrequencyMonthly, date(2023, 1, 31))
	children := BuildRecurrences(parent, 1)
	if !children[0].DueDate.Equal(date(2023, 2, 28)) {
		t.Errorf("got %v, want 2023-02-28", children[0].DueDate)
	}
}

func TestBuildRecurrencesFrequencies(t *testing.T) {
	tests := []struct {
		frequency entity.ExpenseFrequency
		wantFirst time.Time
		wantThird time.Time
	}{
		{entity.FrequencyMonthly, date(2024, 7, 15), date(2024, 9, 15)},
		{entity.FrequencyBimonthly, date(2024, 8, 15), date(2024, 12, 15)},
		{entity.FrequencyQuarterly, date(2024, 9, 15), date(2025, 3, 15)},
		{entity.FrequencySemiannual, date(2024, 12, 15), date(2025, 12, 15)},
		{entity.FrequencyAnnual, date(2025, 6, 15), date(2027, 6, 15)},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			parent := recurringParent(tt.frequency, date(2024, 6, 15))
			children := BuildRecurrences(parent, 3)
			if len(children) != 3 {
				t.Fatalf("expected 3 children, got %d", len(children))
			}
			if !children[0].DueDate.Equal(tt.wantFirst) {
				t.Errorf("first due: got %v, want %v", children[0].DueDate, tt.wantFirst)
			}
			if !children[2].DueDate.Equal(tt.wantThird) {
				t.Errorf("third due: got %v, want %v", children[2].DueDate, tt.wantThird)
			}
		})
	}
}

func TestBuildRecurrencesDefaultCount(t *testing.T) {
	parent := recurringParent(entity.FrequencyMonthly, date(2024, 1, 10))
	children := BuildRecurrences(parent, 0)
	if len(children) != DefaultRecurrenceCount {
		t.Errorf("expected %d children, got %d", DefaultRecurrenceCount, len(children))
	}
	// A monthly series of 12 ends one year ahead, one month before the
	// anchor repeating.
	if !children[len(children)-1].DueDate.Equal(date(2025, 1, 10)) {
		t.Errorf("last due: got %v, want 2025-01-10", children[len(children)-1].DueDate)
	}
}

func TestMonthIntervalUnknownFallsBackToMonthly(t *testing.T) {
	if got := MonthInterval(entity.ExpenseFrequency("quinzenal")); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestPropagateToChildren(t *testing.T) {
	parent := installmentParent("Sofá", 3, date(2024, 5, 10))
	children := BuildInstallments(parent)

	parent.Description = "Sofá novo"
	parent.TotalValue = decimal.NewFromInt(900)
	parent.DividedValue = decimal.NewFromInt(450)
	newCategory := uuid.New()
	parent.CategoryID = newCategory

	originalDues := []time.Time{children[0].DueDate, children[1].DueDate}

	PropagateToChildren(parent, children)

	for i, child := range children {
		if !child.TotalValue.Equal(parent.TotalValue) {
			t.Errorf("child %d total not propagated", i)
		}
		if child.CategoryID != newCategory {
			t.Errorf("child %d category not propagated", i)
		}
		if !child.DueDate.Equal(originalDues[i]) {
			t.Errorf("child %d due date changed during propagation", i)
		}
		want := InstallmentDescription("Sofá novo", child.InstallmentCurrent, 3)
		if child.Description != want {
			t.Errorf("child %d description: got %q, want %q", i, child.Description, want)
		}
	}
}

func TestPropagateToChildrenRecurring(t *testing.T) {
	parent := recurringParent(entity.FrequencyMonthly, date(2024, 5, 10))
	children := BuildRecurrences(parent, 2)

	parent.Description = "Fibra 600MB"
	PropagateToChildren(parent, children)

	for i, child := range children {
		if child.Description != "Fibra 600MB" {
			t.Errorf("child %d description: got %q", i, child.Description)
		}
	}
}
