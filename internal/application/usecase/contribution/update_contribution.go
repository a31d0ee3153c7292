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

// UpdateContributionInput represents the input for contribution updates. Nil
// fields are left unchanged.
type UpdateContributionInput struct {
	ID     uuid.UUID
	UserID *uuid.UUID
	Value  *decimal.Decimal
	Date   *time.Time
	Note   *string
}

// UpdateContributionOutput represents the output of a contribution update.
type UpdateContributionOutput struct {
	Contribution *entity.Contribution
}

// UpdateContributionUseCase handles contribution update logic.
type UpdateContributionUseCase struct {
	contributionRepo adapter.ContributionRepository
	userRepo         adapter.UserRepository
	summaryCache     adapter.SummaryCache
}

// NewUpdateContributionUseCase creates a new UpdateContributionUseCase instance.
func NewUpdateContributionUseCase(
	contributionRepo adapter.ContributionRepository,
	userRepo adapter.UserRepository,
	summaryCache adapter.SummaryCache,
) *UpdateContributionUseCase {
	return &UpdateContributionUseCase{
		contributionRepo: contributionRepo,
		userRepo:         userRepo,
		summaryCache:     summaryCache,
	}
}

// Execute performs the contribution update.
func (uc *UpdateContributionUseCase) Execute(ctx context.Context, input UpdateContributionInput) (*UpdateContributionOutput, error) {
	record, err := uc.contributionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewContributionError(
			domainerror.ErrCodeContributionNotFound,
			"contribution not found",
			domainerror.ErrContributionNotFound,
		)
	}
	contribution := record.Contribution

	if input.UserID != nil {
		if _, err := uc.userRepo.FindByID(ctx, *input.UserID); err != nil {
			return nil, domainerror.NewContributionError(
				domainerror.ErrCodeContributionUserMissing,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		contribution.UserID = *input.UserID
	}
	if input.Value != nil {
		if !input.Value.IsPositive() {
			return nil, domainerror.NewContributionError(
				domainerror.ErrCodeInvalidContributionValue,
				"contribution value must be positive",
				domainerror.ErrInvalidContributionValue,
			)
		}
		contribution.Value = *input.Value
	}
	if input.Date != nil {
		contribution.Date = *input.Date
	}
	if input.Note != nil {
		contribution.Note = strings.TrimSpace(*input.Note)
	}

	contribution.UpdatedAt = time.Now().UTC()

	if err := uc.contributionRepo.Update(ctx, contribution); err != nil {
		return nil, fmt.Errorf("failed to update contribution: %w", err)
	}

	if err := uc.summaryCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}

	return &UpdateContributionOutput{Contribution: contribution}, nil
}
