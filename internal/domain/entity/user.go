// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRole represents the role of a user in the system.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleInvestor UserRole = "investidor"
)

// User represents a user of the shared-finance tracker. Investors share
// expense liability and make contributions; admins manage all records.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(name, email, passwordHash string, role UserRole) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// IsValidUserRole validates a user role value.
func IsValidUserRole(role UserRole) bool {
	return role == UserRoleAdmin || role == UserRoleInvestor
}

// UserBalance represents an investor's standing against the shared fund:
// everything they put in minus their share of every settled expense.
type UserBalance struct {
	User               *User
	TotalContributions decimal.Decimal
	TotalPaidDirectly  decimal.Decimal
	TotalShare         decimal.Decimal
	Balance            decimal.Decimal
}
