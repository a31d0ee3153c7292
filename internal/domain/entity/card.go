// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card represents a credit card whose invoices close on a fixed day of the
// month and fall due on another. Both days are plain month-day integers;
// whether they exist in a given month is checked by the billing cycle
// calculator before any date is built.
type Card struct {
	ID         uuid.UUID
	Name       string
	Brand      string
	ClosingDay int
	DueDay     int
	Limit      decimal.Decimal
	UserID     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCard creates a new Card entity.
func NewCard(name, brand string, closingDay, dueDay int, limit decimal.Decimal, userID uuid.UUID) *Card {
	now := time.Now().UTC()
	return &Card{
		ID:         uuid.New(),
		Name:       name,
		Brand:      brand,
		ClosingDay: closingDay,
		DueDay:     dueDay,
		Limit:      limit,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CardWithUser represents a card with its owning user.
type CardWithUser struct {
	Card *Card
	User *User
}
