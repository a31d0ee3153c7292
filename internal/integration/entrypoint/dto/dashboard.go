package dto

import (
	"github.com/controle-financeiro/backend/internal/application/usecase/dashboard"
)

// CategoryTotalResponse represents the expense total of one category.
type CategoryTotalResponse struct {
	Category CategoryResponse `json:"categoria"`
	Total    string           `json:"total"`
}

// BalanceUserResponse identifies the investor on a dashboard balance entry.
type BalanceUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// InvestorBalanceResponse represents one investor's balance on the dashboard.
type InvestorBalanceResponse struct {
	User    BalanceUserResponse `json:"usuario"`
	Balance string              `json:"saldo"`
}

// UpcomingExpenseResponse represents a pending expense due soon.
type UpcomingExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"descricao"`
	TotalValue  string `json:"valor_total"`
	DueDate     string `json:"data_vencimento"`
}

// SummaryResponse represents the dashboard summary of one month.
type SummaryResponse struct {
	Month              int                       `json:"mes"`
	Year               int                       `json:"ano"`
	TotalExpenses      string                    `json:"total_despesas_mes"`
	TotalPaid          string                    `json:"total_despesas_pagas"`
	TotalPending       string                    `json:"total_despesas_pendentes"`
	ByCategory         []CategoryTotalResponse   `json:"despesas_por_categoria"`
	TotalContributions string                    `json:"total_aportes_mes"`
	Balances           []InvestorBalanceResponse `json:"saldos"`
	Upcoming           []UpcomingExpenseResponse `json:"proximos_vencimentos"`
}

// MonthPointResponse represents one month on an evolution series.
type MonthPointResponse struct {
	Month int    `json:"mes"`
	Year  int    `json:"ano"`
	Total string `json:"total"`
}

// EvolutionResponse represents the month-by-month evolution series.
type EvolutionResponse struct {
	Expenses      []MonthPointResponse `json:"evolucao_despesas"`
	Contributions []MonthPointResponse `json:"evolucao_aportes"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	byCategory := make([]CategoryTotalResponse, len(output.ByCategory))
	for i, item := range output.ByCategory {
		byCategory[i] = CategoryTotalResponse{
			Category: ToCategoryResponse(item.Category),
			Total:    item.Total.String(),
		}
	}

	balances := make([]InvestorBalanceResponse, len(output.Balances))
	for i, item := range output.Balances {
		balances[i] = InvestorBalanceResponse{
			User: BalanceUserResponse{
				ID:   item.UserID.String(),
				Name: item.UserName,
			},
			Balance: item.Balance.String(),
		}
	}

	upcoming := make([]UpcomingExpenseResponse, len(output.Upcoming))
	for i, item := range output.Upcoming {
		upcoming[i] = UpcomingExpenseResponse{
			ID:          item.ID.String(),
			Description: item.Description,
			TotalValue:  item.TotalValue.String(),
			DueDate:     item.DueDate.Format("2006-01-02"),
		}
	}

	return SummaryResponse{
		Month:              output.Month,
		Year:               output.Year,
		TotalExpenses:      output.TotalExpenses.String(),
		TotalPaid:          output.TotalPaid.String(),
		TotalPending:       output.TotalPending.String(),
		ByCategory:         byCategory,
		TotalContributions: output.TotalContributions.String(),
		Balances:           balances,
		Upcoming:           upcoming,
	}
}

// ToEvolutionResponse converts a GetEvolutionOutput to an EvolutionResponse.
func ToEvolutionResponse(output *dashboard.GetEvolutionOutput) EvolutionResponse {
	expenses := make([]MonthPointResponse, len(output.Expenses))
	for i, point := range output.Expenses {
		expenses[i] = MonthPointResponse{Month: point.Month, Year: point.Year, Total: point.Total.String()}
	}

	contributions := make([]MonthPointResponse, len(output.Contributions))
	for i, point := range output.Contributions {
		contributions[i] = MonthPointResponse{Month: point.Month, Year: point.Year, Total: point.Total.String()}
	}

	return EvolutionResponse{
		Expenses:      expenses,
		Contributions: contributions,
	}
}
