// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the color assigned when none is provided.
const DefaultCategoryColor = "#4285F4"

// Category represents an expense category. Categories are shared reference
// data and never cascade into the expenses that reference them.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category entity. Defaulting of the color is
// applied in the use case before calling this constructor.
func NewCategory(name, description, color string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
