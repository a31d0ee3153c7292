// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// UserFilter defines filter options for listing users.
type UserFilter struct {
	Role   *entity.UserRole
	Active *bool
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindByFilter retrieves users matching the filter, ordered by name.
	FindByFilter(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// FindActiveInvestors retrieves all active users with the investor role.
	FindActiveInvestors(ctx context.Context) ([]*entity.User, error)

	// CountActiveInvestors counts active users with the investor role. The
	// expense division is always computed against this count.
	CountActiveInvestors(ctx context.Context) (int64, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete hard-deletes a user.
	Delete(ctx context.Context, id uuid.UUID) error
}
