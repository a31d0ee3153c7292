// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// SummaryCacheTTL bounds how long a computed summary may be served from
// cache. Writes invalidate earlier, so this is only a backstop.
const SummaryCacheTTL = 10 * time.Minute

// upcomingWindowDays is how far ahead the due-soon list looks.
const upcomingWindowDays = 7

// GetSummaryInput represents the input for the dashboard summary. Month and
// Year default to the current date when zero.
type GetSummaryInput struct {
	Month int
	Year  int
	Now   time.Time
}

// CategoryTotal represents the expense total of one category in the month.
type CategoryTotal struct {
	Category *entity.Category
	Total    decimal.Decimal
}

// InvestorBalance represents one investor's current balance. Only the
// identifying fields are carried; the whole output goes into the Redis
// cache and the user entity holds the password hash.
type InvestorBalance struct {
	UserID   uuid.UUID
	UserName string
	Balance  decimal.Decimal
}

// UpcomingExpense represents a pending expense due in the next days.
type UpcomingExpense struct {
	ID          uuid.UUID
	Description string
	TotalValue  decimal.Decimal
	DueDate     time.Time
}

// GetSummaryOutput represents the dashboard summary of one month.
type GetSummaryOutput struct {
	Month              int
	Year               int
	TotalExpenses      decimal.Decimal
	TotalPaid          decimal.Decimal
	TotalPending       decimal.Decimal
	ByCategory         []*CategoryTotal
	TotalContributions decimal.Decimal
	Balances           []*InvestorBalance
	Upcoming           []*UpcomingExpense
}

// GetSummaryUseCase computes the dashboard summary of a month. Results are
// cached per month/year; any expense or contribution write drops the cache.
type GetSummaryUseCase struct {
	expenseRepo      adapter.ExpenseRepository
	contributionRepo adapter.ContributionRepository
	userRepo         adapter.UserRepository
	categoryRepo     adapter.CategoryRepository
	summaryCache     adapter.SummaryCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	contributionRepo adapter.ContributionRepository,
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo:      expenseRepo,
		contributionRepo: contributionRepo,
		userRepo:         userRepo,
		categoryRepo:     categoryRepo,
		summaryCache:     summaryCache,
	}
}

// Execute computes or serves the cached summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
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

	cacheKey := fmt.Sprintf("summary:%04d-%02d", year, month)
	var cached GetSummaryOutput
	hit, err := uc.summaryCache.Get(ctx, cacheKey, &cached)
	if err != nil {
		slog.Warn("Failed to read summary cache", "key", cacheKey, "error", err)
	}
	if hit {
		return &cached, nil
	}

	output, err := uc.compute(ctx, month, year, now)
	if err != nil {
		return nil, err
	}

	if err := uc.summaryCache.Set(ctx, cacheKey, output, SummaryCacheTTL); err != nil {
		slog.Warn("Failed to write summary cache", "key", cacheKey, "error", err)
	}

	return output, nil
}

func (uc *GetSummaryUseCase) compute(ctx context.Context, month, year int, now time.Time) (*GetSummaryOutput, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).AddDate(0, 0, -1)

	expenses, err := uc.expenseRepo.FindByDueDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load month expenses: %w", err)
	}

	output := &GetSummaryOutput{
		Month:              month,
		Year:               year,
		TotalExpenses:      decimal.Zero,
		TotalPaid:          decimal.Zero,
		TotalPending:       decimal.Zero,
		TotalContributions: decimal.Zero,
	}

	byCategory := make(map[uuid.UUID]*CategoryTotal)
	for _, record := range expenses {
		value := record.Expense.TotalValue
		output.TotalExpenses = output.TotalExpenses.Add(value)
		switch record.Expense.Status {
		case entity.ExpenseStatusPaid:
			output.TotalPaid = output.TotalPaid.Add(value)
		case entity.ExpenseStatusPending:
			output.TotalPending = output.TotalPending.Add(value)
		}

		categoryTotal, ok := byCategory[record.Expense.CategoryID]
		if !ok {
			category := record.Category
			if category == nil {
				category, err = uc.categoryRepo.FindByID(ctx, record.Expense.CategoryID)
				if err != nil {
					return nil, fmt.Errorf("failed to load category: %w", err)
				}
			}
			categoryTotal = &CategoryTotal{Category: category, Total: decimal.Zero}
			byCategory[record.Expense.CategoryID] = categoryTotal
			output.ByCategory = append(output.ByCategory, categoryTotal)
		}
		categoryTotal.Total = categoryTotal.Total.Add(value)
	}

	contributions, err := uc.contributionRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load month contributions: %w", err)
	}
	for _, contribution := range contributions {
		output.TotalContributions = output.TotalContributions.Add(contribution.Value)
	}

	if err := uc.appendBalances(ctx, output); err != nil {
		return nil, err
	}
	if err := uc.appendUpcoming(ctx, output, now); err != nil {
		return nil, err
	}

	return output, nil
}

func (uc *GetSummaryUseCase) appendBalances(ctx context.Context, output *GetSummaryOutput) error {
	investors, err := uc.userRepo.FindActiveInvestors(ctx)
	if err != nil {
		return fmt.Errorf("failed to load investors: %w", err)
	}

	totalShare, err := uc.expenseRepo.SumDividedPaid(ctx)
	if err != nil {
		return fmt.Errorf("failed to sum divided expenses: %w", err)
	}

	for _, investor := range investors {
		contributions, err := uc.contributionRepo.SumByUser(ctx, investor.ID)
		if err != nil {
			return fmt.Errorf("failed to sum contributions: %w", err)
		}
		output.Balances = append(output.Balances, &InvestorBalance{
			UserID:   investor.ID,
			UserName: investor.Name,
			Balance:  contributions.Sub(totalShare),
		})
	}
	return nil
}

func (uc *GetSummaryUseCase) appendUpcoming(ctx context.Context, output *GetSummaryOutput, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	until := today.AddDate(0, 0, upcomingWindowDays)

	records, err := uc.expenseRepo.FindByDueDateRange(ctx, today, until)
	if err != nil {
		return fmt.Errorf("failed to load upcoming expenses: %w", err)
	}

	for _, record := range records {
		if record.Expense.Status != entity.ExpenseStatusPending {
			continue
		}
		output.Upcoming = append(output.Upcoming, &UpcomingExpense{
			ID:          record.Expense.ID,
			Description: record.Expense.Description,
			TotalValue:  record.Expense.TotalValue,
			DueDate:     record.Expense.DueDate,
		})
	}
	return nil
}
