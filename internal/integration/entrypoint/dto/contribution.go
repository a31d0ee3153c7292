package dto

import (
	"time"

	"github.com/controle-financeiro/backend/internal/application/usecase/contribution"
	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// CreateContributionRequest represents the request body for contribution creation.
type CreateContributionRequest struct {
	UserID string  `json:"usuario_id" binding:"required,uuid"`
	Value  float64 `json:"valor" binding:"required"`
	Date   string  `json:"data" binding:"required"`
	Note   string  `json:"observacao,omitempty" binding:"omitempty,max=255"`
}

// UpdateContributionRequest represents the request body for contribution update.
type UpdateContributionRequest struct {
	UserID *string  `json:"usuario_id,omitempty" binding:"omitempty,uuid"`
	Value  *float64 `json:"valor,omitempty"`
	Date   *string  `json:"data,omitempty"`
	Note   *string  `json:"observacao,omitempty" binding:"omitempty,max=255"`
}

// ContributionResponse represents a contribution in API responses.
type ContributionResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"usuario_id"`
	User      *UserResponse `json:"usuario,omitempty"`
	Value     string        `json:"valor"`
	Date      string        `json:"data"`
	Note      string        `json:"observacao"`
	CreatedAt string        `json:"data_criacao"`
}

// UserTotalResponse represents one investor's contribution total in a year.
type UserTotalResponse struct {
	User  UserResponse `json:"usuario"`
	Total string       `json:"total"`
}

// MonthTotalResponse represents the contribution total of one month.
type MonthTotalResponse struct {
	Month int    `json:"mes"`
	Total string `json:"total"`
}

// TotalsResponse represents the response for the contribution totals report.
type TotalsResponse struct {
	Year       int                  `json:"ano"`
	GrandTotal string               `json:"total_geral"`
	ByUser     []UserTotalResponse  `json:"totais_por_usuario"`
	ByMonth    []MonthTotalResponse `json:"totais_por_mes"`
}

// ToContributionResponse converts a domain Contribution entity to a
// ContributionResponse DTO.
func ToContributionResponse(record *entity.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:        record.ID.String(),
		UserID:    record.UserID.String(),
		Value:     record.Value.String(),
		Date:      record.Date.Format("2006-01-02"),
		Note:      record.Note,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	}
}

// ToContributionWithUserResponse converts a ContributionWithUser to a
// ContributionResponse DTO with the user attached.
func ToContributionWithUserResponse(record *entity.ContributionWithUser) ContributionResponse {
	response := ToContributionResponse(record.Contribution)
	if record.User != nil {
		user := ToUserResponse(record.User)
		response.User = &user
	}
	return response
}

// ToTotalsResponse converts a GetTotalsOutput to a TotalsResponse.
func ToTotalsResponse(output *contribution.GetTotalsOutput) TotalsResponse {
	byUser := make([]UserTotalResponse, len(output.ByUser))
	for i, item := range output.ByUser {
		byUser[i] = UserTotalResponse{
			User:  ToUserResponse(item.User),
			Total: item.Total.String(),
		}
	}

	byMonth := make([]MonthTotalResponse, len(output.ByMonth))
	for i, item := range output.ByMonth {
		byMonth[i] = MonthTotalResponse{
			Month: item.Month,
			Total: item.Total.String(),
		}
	}

	return TotalsResponse{
		Year:       output.Year,
		GrandTotal: output.GrandTotal.String(),
		ByUser:     byUser,
		ByMonth:    byMonth,
	}
}
