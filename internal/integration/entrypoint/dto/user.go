package dto

import (
	"github.com/controle-financeiro/backend/internal/application/usecase/user"
	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// CreateUserRequest represents the request body for user creation by an admin.
type CreateUserRequest struct {
	Name     string `json:"nome" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=8"`
	Role     string `json:"tipo" binding:"required,oneof=admin investidor"`
	Active   *bool  `json:"ativo,omitempty"`
}

// UpdateUserRequest represents the request body for user update.
type UpdateUserRequest struct {
	Name     *string `json:"nome,omitempty" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"senha,omitempty" binding:"omitempty,min=8"`
	Role     *string `json:"tipo,omitempty" binding:"omitempty,oneof=admin investidor"`
	Active   *bool   `json:"ativo,omitempty"`
}

// DeleteUserResponse represents the response for user deletion.
type DeleteUserResponse struct {
	Message     string `json:"message"`
	Deactivated bool   `json:"desativado"`
}

// BalanceResponse represents one investor's standing against the shared fund.
type BalanceResponse struct {
	User               UserResponse `json:"usuario"`
	TotalContributions string       `json:"total_aportes"`
	TotalPaidDirectly  string       `json:"total_pago_diretamente"`
	TotalShare         string       `json:"total_cota"`
	Balance            string       `json:"saldo"`
}

// BalancesResponse represents the response for the balances endpoint.
type BalancesResponse struct {
	Balances []BalanceResponse `json:"saldos"`
}

// ToBalanceResponse converts a domain UserBalance to a BalanceResponse DTO.
func ToBalanceResponse(balance *entity.UserBalance) BalanceResponse {
	return BalanceResponse{
		User:               ToUserResponse(balance.User),
		TotalContributions: balance.TotalContributions.String(),
		TotalPaidDirectly:  balance.TotalPaidDirectly.String(),
		TotalShare:         balance.TotalShare.String(),
		Balance:            balance.Balance.String(),
	}
}

// ToBalancesResponse converts a GetBalancesOutput to a BalancesResponse.
func ToBalancesResponse(output *user.GetBalancesOutput) BalancesResponse {
	balances := make([]BalanceResponse, len(output.Balances))
	for i, balance := range output.Balances {
		balances[i] = ToBalanceResponse(balance)
	}
	return BalancesResponse{Balances: balances}
}
