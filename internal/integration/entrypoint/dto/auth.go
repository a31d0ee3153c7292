package dto

import (
	"time"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"nome" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=8"`
	Role     string `json:"tipo,omitempty"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"usuario"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// VerifyResponse represents the response for session verification.
type VerifyResponse struct {
	User UserResponse `json:"usuario"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Role      string `json:"tipo"`
	Active    bool   `json:"ativo"`
	CreatedAt string `json:"data_criacao"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
