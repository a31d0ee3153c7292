// Package expense contains expense-related use cases, including the
// recurrence and installment generator.
package expense

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

const (
	// DefaultRecurrenceCount is how many future occurrences are generated
	// for a recurring expense when the caller does not say.
	DefaultRecurrenceCount = 12

	// MaxRecurrenceCount caps generation batches.
	MaxRecurrenceCount = 60

	// installmentStepDays is the fixed spacing between installments.
	installmentStepDays = 30

	// purchaseLeadDays is how many days before the due date a generated
	// occurrence is considered purchased.
	purchaseLeadDays = 5
)

// frequencyMonths maps a recurrence frequency to its month interval.
var frequencyMonths = map[entity.ExpenseFrequency]int{
	entity.FrequencyMonthly:    1,
	entity.FrequencyBimonthly:  2,
	entity.FrequencyQuarterly:  3,
	entity.FrequencySemiannual: 6,
	entity.FrequencyAnnual:     12,
}

// MonthInterval returns the month step of a frequency. Unknown values fall
// back to monthly.
func MonthInterval(frequency entity.ExpenseFrequency) int {
	if months, ok := frequencyMonths[frequency]; ok {
		return months
	}
	return 1
}

// InstallmentDescription renders the "(current/total)" suffix used on every
// installment of a series.
func InstallmentDescription(description string, current, total int) string {
	return fmt.Sprintf("%s (%d/%d)", description, current, total)
}

// BuildInstallments generates the remaining installments of a series. The
// parent is installment 1; children cover 2..total, each due 30 days after
// the previous one and carrying the same value. The parent is not modified.
func BuildInstallments(parent *entity.Expense) []*entity.Expense {
	if parent.InstallmentTotal <= 1 {
		return nil
	}

	children := make([]*entity.Expense, 0, parent.InstallmentTotal-1)
	for i := 2; i <= parent.InstallmentTotal; i++ {
		child := childFromParent(parent)
		child.Description = InstallmentDescription(parent.Description, i, parent.InstallmentTotal)
		child.DueDate = parent.DueDate.AddDate(0, 0, installmentStepDays*(i-1))
		child.PurchaseDate = parent.PurchaseDate
		child.InstallmentCurrent = i
		child.InstallmentTotal = parent.InstallmentTotal
		children = append(children, child)
	}
	return children
}

// BuildRecurrences generates count future occurrences of a recurring
// expense, stepping whole calendar months per the parent's frequency. The
// day of month is clamped to the length of each target month, so a series
// anchored on the 31st lands on Feb 28/29 and returns to the 31st in March.
func BuildRecurrences(parent *entity.Expense, count int) []*entity.Expense {
	if count <= 0 {
		count = DefaultRecurrenceCount
	}
	if count > MaxRecurrenceCount {
		count = MaxRecurrenceCount
	}

	interval := MonthInterval(parent.Frequency)
	baseDay := parent.DueDate.Day()
	baseMonth := int(parent.DueDate.Month())
	baseYear := parent.DueDate.Year()

	children := make([]*entity.Expense, 0, count)
	for i := 1; i <= count; i++ {
		idx := baseMonth + interval*i
		year := baseYear + (idx-1)/12
		month := ((idx - 1) % 12) + 1

		day := baseDay
		if last := daysInMonth(month, year); day > last {
			day = last
		}

		dueDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

		child := childFromParent(parent)
		child.DueDate = dueDate
		child.PurchaseDate = dueDate.AddDate(0, 0, -purchaseLeadDays)
		children = append(children, child)
	}
	return children
}

// PropagateToChildren copies the parent's shared fields onto each pending
// child, leaving the children's dates alone. Installment children get their
// numbered description rebuilt from the parent's new base description.
func PropagateToChildren(parent *entity.Expense, children []*entity.Expense) {
	now := time.Now().UTC()
	for _, child := range children {
		child.Origin = parent.Origin
		child.CategoryID = parent.CategoryID
		child.TotalValue = parent.TotalValue
		child.DividedValue = parent.DividedValue
		child.PaymentMethod = parent.PaymentMethod
		child.CardID = parent.CardID
		child.PaidByID = parent.PaidByID

		if child.InstallmentCurrent > 1 {
			child.InstallmentTotal = parent.InstallmentTotal
			child.Description = InstallmentDescription(parent.Description, child.InstallmentCurrent, parent.InstallmentTotal)
		} else {
			child.Description = parent.Description
		}
		child.UpdatedAt = now
	}
}

// childFromParent copies the shared fields of the parent into a fresh
// pending child linked back to it.
func childFromParent(parent *entity.Expense) *entity.Expense {
	now := time.Now().UTC()
	parentID := parent.ID
	return &entity.Expense{
		ID:            uuid.New(),
		Origin:        parent.Origin,
		Description:   parent.Description,
		CategoryID:    parent.CategoryID,
		TotalValue:    parent.TotalValue,
		DividedValue:  parent.DividedValue,
		PurchaseDate:  parent.PurchaseDate,
		DueDate:       parent.DueDate,
		PaymentMethod: parent.PaymentMethod,
		CardID:        parent.CardID,
		PaidByID:      parent.PaidByID,
		Status:        entity.ExpenseStatusPending,
		Kind:          parent.Kind,
		Frequency:     parent.Frequency,
		ParentID:      &parentID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
