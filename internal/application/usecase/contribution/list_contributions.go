package contribution

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// ListContributionsInput represents the input for listing contributions.
type ListContributionsInput struct {
	Filter adapter.ContributionFilter
}

// ListContributionsOutput represents the output of listing contributions.
type ListContributionsOutput struct {
	Contributions []*entity.ContributionWithUser
}

// ListContributionsUseCase handles contribution listing logic.
type ListContributionsUseCase struct {
	contributionRepo adapter.ContributionRepository
}

// NewListContributionsUseCase creates a new ListContributionsUseCase instance.
func NewListContributionsUseCase(contributionRepo adapter.ContributionRepository) *ListContributionsUseCase {
	return &ListContributionsUseCase{contributionRepo: contributionRepo}
}

// Execute retrieves contributions matching the filter, newest first.
func (uc *ListContributionsUseCase) Execute(ctx context.Context, input ListContributionsInput) (*ListContributionsOutput, error) {
	contributions, err := uc.contributionRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	return &ListContributionsOutput{Contributions: contributions}, nil
}

// GetContributionInput represents the input for fetching one contribution.
type GetContributionInput struct {
	ID uuid.UUID
}

// GetContributionOutput represents the output of fetching one contribution.
type GetContributionOutput struct {
	Contribution *entity.ContributionWithUser
}

// GetContributionUseCase handles single contribution retrieval.
type GetContributionUseCase struct {
	contributionRepo adapter.ContributionRepository
}

// NewGetContributionUseCase creates a new GetContributionUseCase instance.
func NewGetContributionUseCase(contributionRepo adapter.ContributionRepository) *GetContributionUseCase {
	return &GetContributionUseCase{contributionRepo: contributionRepo}
}

// Execute retrieves a contribution by ID.
func (uc *GetContributionUseCase) Execute(ctx context.Context, input GetContributionInput) (*GetContributionOutput, error) {
	contribution, err := uc.contributionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewContributionError(
			domainerror.ErrCodeContributionNotFound,
			"contribution not found",
			domainerror.ErrContributionNotFound,
		)
	}
	return &GetContributionOutput{Contribution: contribution}, nil
}
