package dto

import (
	"time"

	"github.com/controle-financeiro/backend/internal/application/usecase/card"
)

// CreateCardRequest represents the request body for card creation.
type CreateCardRequest struct {
	Name       string  `json:"nome" binding:"required,min=1,max=100"`
	Brand      string  `json:"bandeira,omitempty" binding:"omitempty,max=50"`
	ClosingDay int     `json:"dia_fechamento" binding:"required,min=1,max=31"`
	DueDay     int     `json:"dia_vencimento" binding:"required,min=1,max=31"`
	Limit      float64 `json:"limite,omitempty"`
	UserID     string  `json:"usuario_id" binding:"required,uuid"`
}

// UpdateCardRequest represents the request body for card update.
type UpdateCardRequest struct {
	Name       *string  `json:"nome,omitempty" binding:"omitempty,min=1,max=100"`
	Brand      *string  `json:"bandeira,omitempty" binding:"omitempty,max=50"`
	ClosingDay *int     `json:"dia_fechamento,omitempty" binding:"omitempty,min=1,max=31"`
	DueDay     *int     `json:"dia_vencimento,omitempty" binding:"omitempty,min=1,max=31"`
	Limit      *float64 `json:"limite,omitempty"`
	UserID     *string  `json:"usuario_id,omitempty" binding:"omitempty,uuid"`
}

// CardResponse represents a card in API responses.
type CardResponse struct {
	ID         string `json:"id"`
	Name       string `json:"nome"`
	Brand      string `json:"bandeira"`
	ClosingDay int    `json:"dia_fechamento"`
	DueDay     int    `json:"dia_vencimento"`
	Limit      string `json:"limite"`
	UserID     string `json:"usuario_id"`
	UserName   string `json:"usuario_nome,omitempty"`
	CreatedAt  string `json:"data_criacao"`
}

// InvoiceItemResponse represents one expense inside an invoice.
type InvoiceItemResponse struct {
	ID                 string `json:"id"`
	Origin             string `json:"origem"`
	Description        string `json:"descricao"`
	TotalValue         string `json:"valor_total"`
	DividedValue       string `json:"valor_dividido"`
	PurchaseDate       string `json:"data_compra"`
	DueDate            string `json:"data_vencimento"`
	Status             string `json:"status"`
	InstallmentCurrent int    `json:"parcela_atual,omitempty"`
	InstallmentTotal   int    `json:"total_parcelas,omitempty"`
}

// InvoiceResponse represents a card invoice for a reference month.
type InvoiceResponse struct {
	Card                CardResponse          `json:"cartao"`
	Month               int                   `json:"mes"`
	Year                int                   `json:"ano"`
	ClosingDate         string                `json:"data_fechamento"`
	DueDate             string                `json:"data_vencimento"`
	PreviousClosingDate string                `json:"fechamento_anterior"`
	Total               string                `json:"total"`
	Expenses            []InvoiceItemResponse `json:"despesas"`
}

// ProjectedInvoiceResponse represents one projected upcoming invoice.
type ProjectedInvoiceResponse struct {
	Month        int    `json:"mes"`
	Year         int    `json:"ano"`
	ClosingDate  string `json:"data_fechamento"`
	DueDate      string `json:"data_vencimento"`
	Total        string `json:"total"`
	ExpenseCount int    `json:"quantidade_despesas"`
}

// NextInvoicesResponse represents the response of the invoice projection.
type NextInvoicesResponse struct {
	Card     CardResponse               `json:"cartao"`
	Invoices []ProjectedInvoiceResponse `json:"faturas"`
}

// ToCardResponse converts a card use case output to a CardResponse DTO.
func ToCardResponse(output *card.CardOutput) CardResponse {
	return CardResponse{
		ID:         output.ID.String(),
		Name:       output.Name,
		Brand:      output.Brand,
		ClosingDay: output.ClosingDay,
		DueDay:     output.DueDay,
		Limit:      output.Limit.String(),
		UserID:     output.UserID.String(),
		UserName:   output.UserName,
		CreatedAt:  output.CreatedAt.Format(time.RFC3339),
	}
}

// ToInvoiceResponse converts a GetInvoiceOutput to an InvoiceResponse.
func ToInvoiceResponse(output *card.GetInvoiceOutput) InvoiceResponse {
	expenses := make([]InvoiceItemResponse, len(output.Expenses))
	for i, item := range output.Expenses {
		expenses[i] = InvoiceItemResponse{
			ID:                 item.ID.String(),
			Origin:             item.Origin,
			Description:        item.Description,
			TotalValue:         item.TotalValue.String(),
			DividedValue:       item.DividedValue.String(),
			PurchaseDate:       item.PurchaseDate.Format("2006-01-02"),
			DueDate:            item.DueDate.Format("2006-01-02"),
			Status:             string(item.Status),
			InstallmentCurrent: item.InstallmentCurrent,
			InstallmentTotal:   item.InstallmentTotal,
		}
	}

	return InvoiceResponse{
		Card:                ToCardResponse(output.Card),
		Month:               output.Month,
		Year:                output.Year,
		ClosingDate:         output.ClosingDate.Format("2006-01-02"),
		DueDate:             output.DueDate.Format("2006-01-02"),
		PreviousClosingDate: output.PreviousClosingDate.Format("2006-01-02"),
		Total:               output.Total.String(),
		Expenses:            expenses,
	}
}

// ToNextInvoicesResponse converts a NextInvoicesOutput to a NextInvoicesResponse.
func ToNextInvoicesResponse(output *card.NextInvoicesOutput) NextInvoicesResponse {
	invoices := make([]ProjectedInvoiceResponse, len(output.Invoices))
	for i, invoice := range output.Invoices {
		invoices[i] = ProjectedInvoiceResponse{
			Month:        invoice.Month,
			Year:         invoice.Year,
			ClosingDate:  invoice.ClosingDate.Format("2006-01-02"),
			DueDate:      invoice.DueDate.Format("2006-01-02"),
			Total:        invoice.Total.String(),
			ExpenseCount: invoice.ExpenseCount,
		}
	}

	return NextInvoicesResponse{
		Card:     ToCardResponse(output.Card),
		Invoices: invoices,
	}
}
