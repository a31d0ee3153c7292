package contribution

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// GetTotalsInput represents the input for the contribution totals report.
// Year defaults to the current year when zero.
type GetTotalsInput struct {
	Year   int
	UserID *uuid.UUID
	Now    time.Time
}

// UserTotalOutput represents one investor's contribution total in a year.
type UserTotalOutput struct {
	User  *entity.User
	Total decimal.Decimal
}

// MonthTotalOutput represents the contribution total of one month.
type MonthTotalOutput struct {
	Month int
	Total decimal.Decimal
}

// GetTotalsOutput represents the output of the contribution totals report.
type GetTotalsOutput struct {
	Year       int
	GrandTotal decimal.Decimal
	ByUser     []*UserTotalOutput
	ByMonth    []*MonthTotalOutput
}

// GetTotalsUseCase aggregates a year's contributions by investor and by
// month.
type GetTotalsUseCase struct {
	contributionRepo adapter.ContributionRepository
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(contributionRepo adapter.ContributionRepository) *GetTotalsUseCase {
	return &GetTotalsUseCase{contributionRepo: contributionRepo}
}

// Execute computes the totals report.
func (uc *GetTotalsUseCase) Execute(ctx context.Context, input GetTotalsInput) (*GetTotalsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	year := input.Year
	if year == 0 {
		year = now.Year()
	}

	contributions, err := uc.contributionRepo.FindByYear(ctx, year, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}

	output := &GetTotalsOutput{
		Year:       year,
		GrandTotal: decimal.Zero,
	}

	byUser := make(map[uuid.UUID]*UserTotalOutput)
	byMonth := make(map[int]decimal.Decimal)
	for _, record := range contributions {
		value := record.Contribution.Value
		output.GrandTotal = output.GrandTotal.Add(value)

		userTotal, ok := byUser[record.Contribution.UserID]
		if !ok {
			userTotal = &UserTotalOutput{User: record.User, Total: decimal.Zero}
			byUser[record.Contribution.UserID] = userTotal
			output.ByUser = append(output.ByUser, userTotal)
		}
		userTotal.Total = userTotal.Total.Add(value)

		month := int(record.Contribution.Date.Month())
		byMonth[month] = byMonth[month].Add(value)
	}

	for month := 1; month <= 12; month++ {
		if total, ok := byMonth[month]; ok {
			output.ByMonth = append(output.ByMonth, &MonthTotalOutput{Month: month, Total: total})
		}
	}

	sort.Slice(output.ByUser, func(i, j int) bool {
		return output.ByUser[i].User.Name < output.ByUser[j].User.Name
	})

	return output, nil
}
