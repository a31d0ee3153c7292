package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// DeleteUserInput represents the input for user deletion.
type DeleteUserInput struct {
	ID      uuid.UUID
	ActorID uuid.UUID
}

// DeleteUserOutput reports whether the user was removed or only deactivated.
type DeleteUserOutput struct {
	Deactivated bool
}

// DeleteUserUseCase handles user deletion. A user referenced by
// contributions, cards or expenses is deactivated instead of removed, so
// historical records keep a valid owner.
type DeleteUserUseCase struct {
	userRepo         adapter.UserRepository
	contributionRepo adapter.ContributionRepository
	cardRepo         adapter.CardRepository
	expenseRepo      adapter.ExpenseRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(
	userRepo adapter.UserRepository,
	contributionRepo adapter.ContributionRepository,
	cardRepo adapter.CardRepository,
	expenseRepo adapter.ExpenseRepository,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:         userRepo,
		contributionRepo: contributionRepo,
		cardRepo:         cardRepo,
		expenseRepo:      expenseRepo,
	}
}

// Execute deletes or deactivates a user. Admins cannot delete themselves.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) (*DeleteUserOutput, error) {
	if input.ID == input.ActorID {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeCannotDeleteSelf,
			"cannot delete own user",
			domainerror.ErrCannotDeleteSelf,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeTargetUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	referenced, err := uc.hasReferences(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if referenced {
		user.Active = false
		user.UpdatedAt = time.Now().UTC()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to deactivate user: %w", err)
		}
		return &DeleteUserOutput{Deactivated: true}, nil
	}

	if err := uc.userRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return &DeleteUserOutput{}, nil
}

func (uc *DeleteUserUseCase) hasReferences(ctx context.Context, id uuid.UUID) (bool, error) {
	contributions, err := uc.contributionRepo.CountByUser(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to count contributions: %w", err)
	}
	if contributions > 0 {
		return true, nil
	}

	cards, err := uc.cardRepo.CountByUser(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to count cards: %w", err)
	}
	if cards > 0 {
		return true, nil
	}

	expenses, err := uc.expenseRepo.CountPaidBy(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to count expenses: %w", err)
	}
	return expenses > 0, nil
}
