package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// UpdateUserInput represents the input for user updates. Nil fields are left
// unchanged. A regular user can only edit their own record, and only name,
// email and password; Role and Active are applied when ActorIsAdmin is set.
type UpdateUserInput struct {
	ID           uuid.UUID
	Name         *string
	Email        *string
	Password     *string
	Role         *entity.UserRole
	Active       *bool
	ActorID      uuid.UUID
	ActorIsAdmin bool
}

// UpdateUserOutput represents the output of a user update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles user update logic.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
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

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			exists, err := uc.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email existence: %w", err)
			}
			if exists {
				return nil, domainerror.NewUserError(
					domainerror.ErrCodeUserEmailExists,
					"email already exists",
					domainerror.ErrEmailAlreadyExists,
				)
			}
			user.Email = email
		}
	}

	if input.Password != nil {
		if err := uc.passwordService.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeMissingUserFields,
				"password does not meet minimum requirements",
				domainerror.ErrWeakPassword,
			)
		}
		passwordHash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	if input.ActorIsAdmin {
		if input.Role != nil {
			if !entity.IsValidUserRole(*input.Role) {
				return nil, domainerror.NewUserError(
					domainerror.ErrCodeUserInvalidRole,
					"role must be 'admin' or 'investidor'",
					domainerror.ErrInvalidRole,
				)
			}
			user.Role = *input.Role
		}
		if input.Active != nil {
			user.Active = *input.Active
		}
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateUserOutput{User: user}, nil
}
