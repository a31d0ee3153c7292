// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contribution represents a deposit (aporte) made by an investor into the
// shared fund.
type Contribution struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Value     decimal.Decimal
	Date      time.Time
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewContribution creates a new Contribution entity.
func NewContribution(userID uuid.UUID, value decimal.Decimal, date time.Time, note string) *Contribution {
	now := time.Now().UTC()
	return &Contribution{
		ID:        uuid.New(),
		UserID:    userID,
		Value:     value,
		Date:      date,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ContributionWithUser represents a contribution with its investor.
type ContributionWithUser struct {
	Contribution *Contribution
	User         *User
}
