package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// CategoryOutput represents category data nested in expense outputs.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color string
}

// CardOutput represents card data nested in expense outputs.
type CardOutput struct {
	ID   uuid.UUID
	Name string
}

// PayerOutput represents the paying user nested in expense outputs.
type PayerOutput struct {
	ID   uuid.UUID
	Name string
}

// ExpenseOutput represents expense data returned by use cases.
type ExpenseOutput struct {
	ID                 uuid.UUID
	Origin             string
	Description        string
	CategoryID         uuid.UUID
	Category           *CategoryOutput
	TotalValue         decimal.Decimal
	DividedValue       decimal.Decimal
	PurchaseDate       time.Time
	DueDate            time.Time
	PaymentMethod      string
	CardID             *uuid.UUID
	Card               *CardOutput
	PaidByID           uuid.UUID
	PaidBy             *PayerOutput
	Status             entity.ExpenseStatus
	Kind               entity.ExpenseKind
	Frequency          entity.ExpenseFrequency
	InstallmentTotal   int
	InstallmentCurrent int
	ParentID           *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func newExpenseOutput(expense *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:                 expense.ID,
		Origin:             expense.Origin,
		Description:        expense.Description,
		CategoryID:         expense.CategoryID,
		TotalValue:         expense.TotalValue,
		DividedValue:       expense.DividedValue,
		PurchaseDate:       expense.PurchaseDate,
		DueDate:            expense.DueDate,
		PaymentMethod:      expense.PaymentMethod,
		CardID:             expense.CardID,
		PaidByID:           expense.PaidByID,
		Status:             expense.Status,
		Kind:               expense.Kind,
		Frequency:          expense.Frequency,
		InstallmentTotal:   expense.InstallmentTotal,
		InstallmentCurrent: expense.InstallmentCurrent,
		ParentID:           expense.ParentID,
		CreatedAt:          expense.CreatedAt,
		UpdatedAt:          expense.UpdatedAt,
	}
}

func newExpenseOutputWithRelations(record *entity.ExpenseWithRelations) *ExpenseOutput {
	output := newExpenseOutput(record.Expense)
	if record.Category != nil {
		output.Category = &CategoryOutput{
			ID:    record.Category.ID,
			Name:  record.Category.Name,
			Color: record.Category.Color,
		}
	}
	if record.Card != nil {
		output.Card = &CardOutput{
			ID:   record.Card.ID,
			Name: record.Card.Name,
		}
	}
	if record.PaidBy != nil {
		output.PaidBy = &PayerOutput{
			ID:   record.PaidBy.ID,
			Name: record.PaidBy.Name,
		}
	}
	return output
}
