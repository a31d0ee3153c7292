// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves all categories ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete deletes a category.
	Delete(ctx context.Context, id uuid.UUID) error
}
