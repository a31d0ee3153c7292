// Package user contains user management use cases.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// CreateUserInput represents the input for admin user creation.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.UserRole
	Active   *bool
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles user creation by an administrator.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user creation.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"name, email, password and role are required",
			nil,
		)
	}

	if !entity.IsValidUserRole(input.Role) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserInvalidRole,
			"role must be 'admin' or 'investidor'",
			domainerror.ErrInvalidRole,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

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

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(name, email, passwordHash, input.Role)
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{User: user}, nil
}
