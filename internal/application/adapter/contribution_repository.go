// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// ContributionFilter defines filter options for listing contributions.
type ContributionFilter struct {
	UserID   *uuid.UUID
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string // Case-insensitive match on the note
}

// ContributionRepository defines the interface for contribution persistence operations.
type ContributionRepository interface {
	// Create creates a new contribution in the database.
	Create(ctx context.Context, contribution *entity.Contribution) error

	// FindByID retrieves a contribution by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContributionWithUser, error)

	// FindByFilter retrieves contributions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter ContributionFilter) ([]*entity.ContributionWithUser, error)

	// FindByYear retrieves all contributions dated inside a calendar year.
	FindByYear(ctx context.Context, year int, userID *uuid.UUID) ([]*entity.ContributionWithUser, error)

	// FindByDateRange retrieves contributions dated inside [from, to].
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Contribution, error)

	// SumByUser sums all contribution values for a user.
	SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// CountByUser counts contributions made by a user (used by the delete guard).
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Update updates an existing contribution.
	Update(ctx context.Context, contribution *entity.Contribution) error

	// Delete deletes a contribution.
	Delete(ctx context.Context, id uuid.UUID) error
}
