package contribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// DeleteContributionInput represents the input for contribution deletion.
type DeleteContributionInput struct {
	ID uuid.UUID
}

// DeleteContributionUseCase handles contribution deletion logic.
type DeleteContributionUseCase struct {
	contributionRepo adapter.ContributionRepository
	summaryCache     adapter.SummaryCache
}

// NewDeleteContributionUseCase creates a new DeleteContributionUseCase instance.
func NewDeleteContributionUseCase(contributionRepo adapter.ContributionRepository, summaryCache adapter.SummaryCache) *DeleteContributionUseCase {
	return &DeleteContributionUseCase{
		contributionRepo: contributionRepo,
		summaryCache:     summaryCache,
	}
}

// Execute performs the contribution deletion.
func (uc *DeleteContributionUseCase) Execute(ctx context.Context, input DeleteContributionInput) error {
	if _, err := uc.contributionRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewContributionError(
			domainerror.ErrCodeContributionNotFound,
			"contribution not found",
			domainerror.ErrContributionNotFound,
		)
	}

	if err := uc.contributionRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete contribution: %w", err)
	}

	if err := uc.summaryCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}
	return nil
}
