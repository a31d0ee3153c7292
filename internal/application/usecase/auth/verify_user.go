// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// VerifyUserInput represents the input for session verification.
type VerifyUserInput struct {
	UserID uuid.UUID
}

// VerifyUserOutput represents the output of session verification.
type VerifyUserOutput struct {
	User *entity.User
}

// VerifyUserUseCase confirms that the authenticated user still exists and is
// active. Used by clients to validate a stored session on startup.
type VerifyUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewVerifyUserUseCase creates a new VerifyUserUseCase instance.
func NewVerifyUserUseCase(userRepo adapter.UserRepository) *VerifyUserUseCase {
	return &VerifyUserUseCase{userRepo: userRepo}
}

// Execute performs the session verification.
func (uc *VerifyUserUseCase) Execute(ctx context.Context, input VerifyUserInput) (*VerifyUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if !user.Active {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserInactive,
			"user is deactivated",
			domainerror.ErrUserInactive,
		)
	}

	return &VerifyUserOutput{User: user}, nil
}
