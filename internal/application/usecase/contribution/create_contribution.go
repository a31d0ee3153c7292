// Package contribution contains contribution (aporte) use cases.
package contribution

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// CreateContributionInput represents the input for contribution creation.
type CreateContributionInput struct {
	UserID uuid.UUID
	Value  decimal.Decimal
	Date   time.Time
	Note   string
}

// CreateContributionOutput represents the output of contribution creation.
type CreateContributionOutput struct {
	Contribution *entity.Contribution
}

// CreateContributionUseCase handles contribution creation logic.
type CreateContributionUseCase struct {
	contributionRepo adapter.ContributionRepository
	userRepo         adapter.UserRepository
	summaryCache     adapter.SummaryCache
}

// NewCreateContributionUseCase creates a new CreateContributionUseCase instance.
func NewCreateContributionUseCase(
	contributionRepo adapter.ContributionRepository,
	userRepo adapter.UserRepository,
	summaryCache adapter.SummaryCache,
) *CreateContributionUseCase {
	return &CreateContributionUseCase{
		contributionRepo: contributionRepo,
		userRepo:         userRepo,
		summaryCache:     summaryCache,
	}
}

// Execute performs the contribution creation.
func (uc *CreateContributionUseCase) Execute(ctx context.Context, input CreateContributionInput) (*CreateContributionOutput, error) {
	if !input.Value.IsPositive() {
		return nil, domainerror.NewContributionError(
			domainerror.ErrCodeInvalidContributionValue,
			"contribution value must be positive",
			domainerror.ErrInvalidContributionValue,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewContributionError(
			domainerror.ErrCodeMissingContributionFields,
			"user, value and date are required",
			nil,
		)
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, domainerror.NewContributionError(
			domainerror.ErrCodeContributionUserMissing,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	contribution := entity.NewContribution(input.UserID, input.Value, input.Date, strings.TrimSpace(input.Note))

	if err := uc.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, fmt.Errorf("failed to create contribution: %w", err)
	}

	if err := uc.summaryCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}

	return &CreateContributionOutput{Contribution: contribution}, nil
}
