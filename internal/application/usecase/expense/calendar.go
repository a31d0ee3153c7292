package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
)

// CalendarInput represents the input for the monthly calendar view. Month
// and Year default to the current date when zero.
type CalendarInput struct {
	Month int
	Year  int
	Now   time.Time
}

// CalendarDayOutput groups the expenses due on one day of the month.
type CalendarDayOutput struct {
	Day      int
	Total    decimal.Decimal
	Expenses []*ExpenseOutput
}

// CalendarOutput represents the output of the monthly calendar view.
type CalendarOutput struct {
	Month int
	Year  int
	Total decimal.Decimal
	Days  []*CalendarDayOutput
}

// CalendarUseCase groups a month's expenses by due day.
type CalendarUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCalendarUseCase creates a new CalendarUseCase instance.
func NewCalendarUseCase(expenseRepo adapter.ExpenseRepository) *CalendarUseCase {
	return &CalendarUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves the expenses due in a month, grouped by day in ascending
// order. Days without expenses are omitted.
func (uc *CalendarUseCase) Execute(ctx context.Context, input CalendarInput) (*CalendarOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	month := input.Month
	year := input.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).AddDate(0, 0, -1)

	records, err := uc.expenseRepo.FindByDueDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar expenses: %w", err)
	}

	output := &CalendarOutput{
		Month: month,
		Year:  year,
		Total: decimal.Zero,
	}

	var current *CalendarDayOutput
	for _, record := range records {
		day := record.Expense.DueDate.Day()
		if current == nil || current.Day != day {
			current = &CalendarDayOutput{Day: day, Total: decimal.Zero}
			output.Days = append(output.Days, current)
		}
		current.Total = current.Total.Add(record.Expense.TotalValue)
		current.Expenses = append(current.Expenses, newExpenseOutputWithRelations(record))
		output.Total = output.Total.Add(record.Expense.TotalValue)
	}

	return output, nil
}
