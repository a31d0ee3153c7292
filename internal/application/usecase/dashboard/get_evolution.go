package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
)

// DefaultEvolutionMonths is how many months back the evolution series spans
// when the caller does not say.
const DefaultEvolutionMonths = 6

// MaxEvolutionMonths caps the evolution series length.
const MaxEvolutionMonths = 36

// GetEvolutionInput represents the input for the evolution series.
type GetEvolutionInput struct {
	Months int
	Now    time.Time
}

// MonthPoint represents one month on the evolution series.
type MonthPoint struct {
	Month int
	Year  int
	Total decimal.Decimal
}

// GetEvolutionOutput represents the month-by-month series of expenses and
// contributions, oldest first.
type GetEvolutionOutput struct {
	Expenses      []*MonthPoint
	Contributions []*MonthPoint
}

// GetEvolutionUseCase computes the expense and contribution evolution over
// the trailing months.
type GetEvolutionUseCase struct {
	expenseRepo      adapter.ExpenseRepository
	contributionRepo adapter.ContributionRepository
}

// NewGetEvolutionUseCase creates a new GetEvolutionUseCase instance.
func NewGetEvolutionUseCase(expenseRepo adapter.ExpenseRepository, contributionRepo adapter.ContributionRepository) *GetEvolutionUseCase {
	return &GetEvolutionUseCase{
		expenseRepo:      expenseRepo,
		contributionRepo: contributionRepo,
	}
}

// Execute computes the evolution series ending at the current month.
func (uc *GetEvolutionUseCase) Execute(ctx context.Context, input GetEvolutionInput) (*GetEvolutionOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	months := input.Months
	if months <= 0 {
		months = DefaultEvolutionMonths
	}
	if months > MaxEvolutionMonths {
		months = MaxEvolutionMonths
	}

	output := &GetEvolutionOutput{}
	for i := months - 1; i >= 0; i-- {
		month := int(now.Month()) - i
		year := now.Year()
		for month <= 0 {
			month += 12
			year--
		}

		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0).AddDate(0, 0, -1)

		expenses, err := uc.expenseRepo.FindByDueDateRange(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to load expenses for %04d-%02d: %w", year, month, err)
		}
		expenseTotal := decimal.Zero
		for _, record := range expenses {
			expenseTotal = expenseTotal.Add(record.Expense.TotalValue)
		}

		contributions, err := uc.contributionRepo.FindByDateRange(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to load contributions for %04d-%02d: %w", year, month, err)
		}
		contributionTotal := decimal.Zero
		for _, contribution := range contributions {
			contributionTotal = contributionTotal.Add(contribution.Value)
		}

		output.Expenses = append(output.Expenses, &MonthPoint{Month: month, Year: year, Total: expenseTotal})
		output.Contributions = append(output.Contributions, &MonthPoint{Month: month, Year: year, Total: contributionTotal})
	}

	return output, nil
}
