// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseStatus represents the payment status of an expense.
type ExpenseStatus string

const (
	ExpenseStatusPending ExpenseStatus = "pendente"
	ExpenseStatusPaid    ExpenseStatus = "pago"
)

// ExpenseKind represents how an expense repeats over time.
type ExpenseKind string

const (
	ExpenseKindSingle      ExpenseKind = "única"
	ExpenseKindRecurring   ExpenseKind = "recorrente"
	ExpenseKindInstallment ExpenseKind = "parcelada"
)

// ExpenseFrequency represents the repetition interval of a recurring expense.
type ExpenseFrequency string

const (
	FrequencyMonthly    ExpenseFrequency = "mensal"
	FrequencyBimonthly  ExpenseFrequency = "bimestral"
	FrequencyQuarterly  ExpenseFrequency = "trimestral"
	FrequencySemiannual ExpenseFrequency = "semestral"
	FrequencyAnnual     ExpenseFrequency = "anual"
)

// Expense represents a shared expense. Recurring and installment expenses
// form a one-level tree: a parent record plus generated children, linked by
// ParentID. Children never have children of their own.
type Expense struct {
	ID                 uuid.UUID
	Origin             string
	Description        string
	CategoryID         uuid.UUID
	TotalValue         decimal.Decimal
	DividedValue       decimal.Decimal
	PurchaseDate       time.Time
	DueDate            time.Time
	PaymentMethod      string
	CardID             *uuid.UUID
	PaidByID           uuid.UUID
	Status             ExpenseStatus
	Kind               ExpenseKind
	Frequency          ExpenseFrequency
	InstallmentTotal   int
	InstallmentCurrent int
	ParentID           *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewExpense creates a new parent Expense entity.
func NewExpense(
	origin, description string,
	categoryID uuid.UUID,
	totalValue, dividedValue decimal.Decimal,
	purchaseDate, dueDate time.Time,
	paymentMethod string,
	cardID *uuid.UUID,
	paidByID uuid.UUID,
	status ExpenseStatus,
	kind ExpenseKind,
) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:            uuid.New(),
		Origin:        origin,
		Description:   description,
		CategoryID:    categoryID,
		TotalValue:    totalValue,
		DividedValue:  dividedValue,
		PurchaseDate:  purchaseDate,
		DueDate:       dueDate,
		PaymentMethod: paymentMethod,
		CardID:        cardID,
		PaidByID:      paidByID,
		Status:        status,
		Kind:          kind,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsParent reports whether the expense heads a recurrence or installment
// series (or stands alone). Only parents may be propagated or cascaded.
func (e *Expense) IsParent() bool {
	return e.ParentID == nil
}

// IsValidExpenseStatus validates an expense status value.
func IsValidExpenseStatus(status ExpenseStatus) bool {
	return status == ExpenseStatusPending || status == ExpenseStatusPaid
}

// IsValidExpenseKind validates an expense kind value.
func IsValidExpenseKind(kind ExpenseKind) bool {
	return kind == ExpenseKindSingle || kind == ExpenseKindRecurring || kind == ExpenseKindInstallment
}

// IsValidExpenseFrequency validates a recurrence frequency value.
func IsValidExpenseFrequency(frequency ExpenseFrequency) bool {
	switch frequency {
	case FrequencyMonthly, FrequencyBimonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

// ExpenseWithRelations represents an expense with its referenced records.
type ExpenseWithRelations struct {
	Expense  *Expense
	Category *Category
	Card     *Card
	PaidBy   *User
}
