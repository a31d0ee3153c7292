// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// CardRepository defines the interface for card persistence operations.
type CardRepository interface {
	// Create creates a new card in the database.
	Create(ctx context.Context, card *entity.Card) error

	// FindByID retrieves a card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)

	// FindAll retrieves cards ordered by name, optionally filtered by owner.
	FindAll(ctx context.Context, userID *uuid.UUID) ([]*entity.CardWithUser, error)

	// Update updates an existing card.
	Update(ctx context.Context, card *entity.Card) error

	// Delete deletes a card.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByUser counts cards owned by a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
