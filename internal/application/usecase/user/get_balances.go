package user

import (
	"context"
	"fmt"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// GetBalancesOutput represents the output of the balances report.
type GetBalancesOutput struct {
	Balances []*entity.UserBalance
}

// GetBalancesUseCase computes the standing of every active investor against
// the shared fund.
type GetBalancesUseCase struct {
	userRepo         adapter.UserRepository
	contributionRepo adapter.ContributionRepository
	expenseRepo      adapter.ExpenseRepository
}

// NewGetBalancesUseCase creates a new GetBalancesUseCase instance.
func NewGetBalancesUseCase(
	userRepo adapter.UserRepository,
	contributionRepo adapter.ContributionRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetBalancesUseCase {
	return &GetBalancesUseCase{
		userRepo:         userRepo,
		contributionRepo: contributionRepo,
		expenseRepo:      expenseRepo,
	}
}

// Execute computes each active investor's balance: contributions in, minus
// their share of every settled expense. The share is the sum of divided
// values of all paid expenses and is the same for every investor.
func (uc *GetBalancesUseCase) Execute(ctx context.Context) (*GetBalancesOutput, error) {
	investors, err := uc.userRepo.FindActiveInvestors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investors: %w", err)
	}

	totalShare, err := uc.expenseRepo.SumDividedPaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum divided expenses: %w", err)
	}

	balances := make([]*entity.UserBalance, 0, len(investors))
	for _, investor := range investors {
		contributions, err := uc.contributionRepo.SumByUser(ctx, investor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to sum contributions: %w", err)
		}

		paidDirectly, err := uc.expenseRepo.SumTotalPaidBy(ctx, investor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to sum paid expenses: %w", err)
		}

		balances = append(balances, &entity.UserBalance{
			User:               investor,
			TotalContributions: contributions,
			TotalPaidDirectly:  paidDirectly,
			TotalShare:         totalShare,
			Balance:            contributions.Sub(totalShare),
		})
	}

	return &GetBalancesOutput{Balances: balances}, nil
}
