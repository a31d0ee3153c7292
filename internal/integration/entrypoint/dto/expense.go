package dto

import (
	"time"

	"github.com/controle-financeiro/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Origin           string  `json:"origem,omitempty" binding:"omitempty,max=100"`
	Description      string  `json:"descricao" binding:"required,min=1,max=255"`
	CategoryID       string  `json:"categoria_id" binding:"required,uuid"`
	TotalValue       float64 `json:"valor_total" binding:"required"`
	PurchaseDate     string  `json:"data_compra,omitempty"`
	DueDate          string  `json:"data_vencimento" binding:"required"`
	PaymentMethod    string  `json:"forma_pagamento,omitempty" binding:"omitempty,max=50"`
	CardID           *string `json:"cartao_id,omitempty" binding:"omitempty,uuid"`
	PaidByID         string  `json:"pago_por_id" binding:"required,uuid"`
	Status           string  `json:"status,omitempty" binding:"omitempty,oneof=pendente pago"`
	Kind             string  `json:"tipo_despesa" binding:"required,oneof=única recorrente parcelada"`
	Frequency        string  `json:"frequencia,omitempty" binding:"omitempty,oneof=mensal bimestral trimestral semestral anual"`
	InstallmentTotal int     `json:"total_parcelas,omitempty" binding:"omitempty,min=1,max=60"`

	// GenerateRecurrences asks for the future occurrences of a recurring
	// expense to be created together with it.
	GenerateRecurrences bool `json:"gerar_recorrencias,omitempty"`
	RecurrenceCount     int  `json:"quantidade_recorrencias,omitempty" binding:"omitempty,min=1,max=60"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Origin             *string  `json:"origem,omitempty" binding:"omitempty,max=100"`
	Description        *string  `json:"descricao,omitempty" binding:"omitempty,min=1,max=255"`
	CategoryID         *string  `json:"categoria_id,omitempty" binding:"omitempty,uuid"`
	TotalValue         *float64 `json:"valor_total,omitempty"`
	PurchaseDate       *string  `json:"data_compra,omitempty"`
	DueDate            *string  `json:"data_vencimento,omitempty"`
	PaymentMethod      *string  `json:"forma_pagamento,omitempty" binding:"omitempty,max=50"`
	CardID             *string  `json:"cartao_id,omitempty" binding:"omitempty,uuid"`
	ClearCard          bool     `json:"remover_cartao,omitempty"`
	PaidByID           *string  `json:"pago_por_id,omitempty" binding:"omitempty,uuid"`
	Status             *string  `json:"status,omitempty" binding:"omitempty,oneof=pendente pago"`
	Frequency          *string  `json:"frequencia,omitempty" binding:"omitempty,oneof=mensal bimestral trimestral semestral anual"`
	InstallmentTotal   *int     `json:"total_parcelas,omitempty" binding:"omitempty,min=1,max=60"`
	InstallmentCurrent *int     `json:"parcela_atual,omitempty" binding:"omitempty,min=1,max=60"`
	PropagateToFuture  bool     `json:"atualizar_futuras,omitempty"`
}

// GenerateChildrenRequest represents the request body for child generation.
type GenerateChildrenRequest struct {
	Count int `json:"quantidade,omitempty" binding:"omitempty,min=1,max=60"`
}

// ExpenseCategoryResponse represents category information nested in an expense.
type ExpenseCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Color string `json:"cor"`
}

// ExpenseCardResponse represents card information nested in an expense.
type ExpenseCardResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// ExpensePayerResponse represents the paying user nested in an expense.
type ExpensePayerResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID                 string                   `json:"id"`
	Origin             string                   `json:"origem"`
	Description        string                   `json:"descricao"`
	CategoryID         string                   `json:"categoria_id"`
	Category           *ExpenseCategoryResponse `json:"categoria,omitempty"`
	TotalValue         string                   `json:"valor_total"`
	DividedValue       string                   `json:"valor_dividido"`
	PurchaseDate       string                   `json:"data_compra"`
	DueDate            string                   `json:"data_vencimento"`
	PaymentMethod      string                   `json:"forma_pagamento"`
	CardID             *string                  `json:"cartao_id,omitempty"`
	Card               *ExpenseCardResponse     `json:"cartao,omitempty"`
	PaidByID           string                   `json:"pago_por_id"`
	PaidBy             *ExpensePayerResponse    `json:"pago_por,omitempty"`
	Status             string                   `json:"status"`
	Kind               string                   `json:"tipo_despesa"`
	Frequency          string                   `json:"frequencia,omitempty"`
	InstallmentTotal   int                      `json:"total_parcelas,omitempty"`
	InstallmentCurrent int                      `json:"parcela_atual,omitempty"`
	ParentID           *string                  `json:"despesa_pai_id,omitempty"`
	CreatedAt          string                   `json:"data_criacao"`
}

// CreateExpenseResponse represents the response for expense creation.
type CreateExpenseResponse struct {
	Expense        ExpenseResponse `json:"despesa"`
	GeneratedCount int             `json:"geradas"`
}

// UpdateExpenseResponse represents the response for expense update.
type UpdateExpenseResponse struct {
	Expense         ExpenseResponse `json:"despesa"`
	PropagatedCount int             `json:"propagadas"`
}

// DeleteExpenseResponse represents the response for expense deletion.
type DeleteExpenseResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"removidas"`
}

// GenerateChildrenResponse represents the response for child generation.
type GenerateChildrenResponse struct {
	GeneratedCount int `json:"geradas"`
}

// CalendarDayResponse represents one day of the expense calendar.
type CalendarDayResponse struct {
	Day      int               `json:"dia"`
	Total    string            `json:"total"`
	Expenses []ExpenseResponse `json:"despesas"`
}

// CalendarResponse represents the monthly expense calendar.
type CalendarResponse struct {
	Month int                   `json:"mes"`
	Year  int                   `json:"ano"`
	Total string                `json:"total"`
	Days  []CalendarDayResponse `json:"dias"`
}

// ToExpenseResponse converts an expense use case output to an ExpenseResponse DTO.
func ToExpenseResponse(output *expense.ExpenseOutput) ExpenseResponse {
	response := ExpenseResponse{
		ID:                 output.ID.String(),
		Origin:             output.Origin,
		Description:        output.Description,
		CategoryID:         output.CategoryID.String(),
		TotalValue:         output.TotalValue.String(),
		DividedValue:       output.DividedValue.String(),
		PurchaseDate:       output.PurchaseDate.Format("2006-01-02"),
		DueDate:            output.DueDate.Format("2006-01-02"),
		PaymentMethod:      output.PaymentMethod,
		PaidByID:           output.PaidByID.String(),
		Status:             string(output.Status),
		Kind:               string(output.Kind),
		Frequency:          string(output.Frequency),
		InstallmentTotal:   output.InstallmentTotal,
		InstallmentCurrent: output.InstallmentCurrent,
		CreatedAt:          output.CreatedAt.Format(time.RFC3339),
	}

	if output.CardID != nil {
		cardID := output.CardID.String()
		response.CardID = &cardID
	}
	if output.ParentID != nil {
		parentID := output.ParentID.String()
		response.ParentID = &parentID
	}
	if output.Category != nil {
		response.Category = &ExpenseCategoryResponse{
			ID:    output.Category.ID.String(),
			Name:  output.Category.Name,
			Color: output.Category.Color,
		}
	}
	if output.Card != nil {
		response.Card = &ExpenseCardResponse{
			ID:   output.Card.ID.String(),
			Name: output.Card.Name,
		}
	}
	if output.PaidBy != nil {
		response.PaidBy = &ExpensePayerResponse{
			ID:   output.PaidBy.ID.String(),
			Name: output.PaidBy.Name,
		}
	}

	return response
}

// ToCalendarResponse converts a CalendarOutput to a CalendarResponse.
func ToCalendarResponse(output *expense.CalendarOutput) CalendarResponse {
	days := make([]CalendarDayResponse, len(output.Days))
	for i, day := range output.Days {
		expenses := make([]ExpenseResponse, len(day.Expenses))
		for j, item := range day.Expenses {
			expenses[j] = ToExpenseResponse(item)
		}
		days[i] = CalendarDayResponse{
			Day:      day.Day,
			Total:    day.Total.String(),
			Expenses: expenses,
		}
	}

	return CalendarResponse{
		Month: output.Month,
		Year:  output.Year,
		Total: output.Total.String(),
		Days:  days,
	}
}
