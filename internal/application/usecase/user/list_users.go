package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// ListUsersInput represents the input for listing users.
type ListUsersInput struct {
	Filter adapter.UserFilter
}

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*entity.User
}

// ListUsersUseCase handles user listing logic.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute retrieves users matching the filter, ordered by name.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	users, err := uc.userRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &ListUsersOutput{Users: users}, nil
}

// GetUserInput represents the input for fetching one user. A regular user
// can only fetch their own record.
type GetUserInput struct {
	ID           uuid.UUID
	ActorID      uuid.UUID
	ActorIsAdmin bool
}

// GetUserOutput represents the output of fetching one user.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase handles single user retrieval.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute retrieves a user by ID.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	if !input.ActorIsAdmin && input.ActorID != input.ID {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserPermissionDenied,
			"permission denied",
			domainerror.ErrPermissionDenied,
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
	return &GetUserOutput{User: user}, nil
}
