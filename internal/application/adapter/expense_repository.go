// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	Month      int // 1-12, 0 when unset (used together with Year)
	Year       int
	CategoryID *uuid.UUID
	Kind       *entity.ExpenseKind
	Status     *entity.ExpenseStatus
	Search     string // Case-insensitive match on description or origin
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a single expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// CreateWithChildren creates a parent expense and all of its generated
	// children in one transaction. Any failure aborts the whole batch. A nil
	// parent inserts only the children, for generation on an existing record.
	CreateWithChildren(ctx context.Context, parent *entity.Expense, children []*entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByIDWithRelations retrieves an expense with category, card and payer.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithRelations, error)

	// FindByFilter retrieves expenses matching the filter, ordered by due date.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.ExpenseWithRelations, error)

	// FindByCardAndWindow retrieves expenses on a card whose purchase date lies
	// in the half-open invoice window (after, until]. Ordered by purchase date.
	FindByCardAndWindow(ctx context.Context, cardID uuid.UUID, after, until time.Time) ([]*entity.Expense, error)

	// FindByDueDateRange retrieves expenses due inside [from, to], ordered by
	// due date, with relations loaded.
	FindByDueDateRange(ctx context.Context, from, to time.Time) ([]*entity.ExpenseWithRelations, error)

	// FindChildren retrieves the children of a parent expense, optionally
	// restricted to a status.
	FindChildren(ctx context.Context, parentID uuid.UUID, status *entity.ExpenseStatus) ([]*entity.Expense, error)

	// CountChildren counts the children of a parent expense, optionally
	// restricted to a status.
	CountChildren(ctx context.Context, parentID uuid.UUID, status *entity.ExpenseStatus) (int64, error)

	// Update updates a single expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// UpdateWithChildren updates a parent and a set of its children in one
	// transaction. Used by update propagation.
	UpdateWithChildren(ctx context.Context, parent *entity.Expense, children []*entity.Expense) error

	// Delete deletes a single expense.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteWithChildren deletes a parent and all of its children in one
	// transaction, returning the number of records removed.
	DeleteWithChildren(ctx context.Context, parentID uuid.UUID) (int64, error)

	// CountByCard counts expenses referencing a card.
	CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error)

	// CountByCategory counts expenses referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// CountPaidBy counts expenses paid by a user (used by the delete guard).
	CountPaidBy(ctx context.Context, userID uuid.UUID) (int64, error)

	// SumDividedPaid sums the divided value of all paid expenses.
	SumDividedPaid(ctx context.Context) (decimal.Decimal, error)

	// SumTotalPaidBy sums the total value of paid expenses paid by a user.
	SumTotalPaidBy(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
