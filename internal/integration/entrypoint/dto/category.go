package dto

import (
	"time"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string `json:"nome" binding:"required,min=1,max=100"`
	Description string `json:"descricao,omitempty" binding:"omitempty,max=255"`
	Color       string `json:"cor,omitempty" binding:"omitempty,len=7"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"nome,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"descricao,omitempty" binding:"omitempty,max=255"`
	Color       *string `json:"cor,omitempty" binding:"omitempty,len=7"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Color       string `json:"cor"`
	CreatedAt   string `json:"data_criacao"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		CreatedAt:   category.CreatedAt.Format(time.RFC3339),
	}
}
