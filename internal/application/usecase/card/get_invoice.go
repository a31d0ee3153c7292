package card

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// GetInvoiceInput represents the input for invoice retrieval. Month and Year
// default to the current date when zero. Now exists so tests can pin the
// reference date; a zero value means time.Now.
type GetInvoiceInput struct {
	CardID uuid.UUID
	Month  int
	Year   int
	Now    time.Time
}

// InvoiceItemOutput represents one expense inside an invoice window.
type InvoiceItemOutput struct {
	ID                 uuid.UUID
	Origin             string
	Description        string
	TotalValue         decimal.Decimal
	DividedValue       decimal.Decimal
	PurchaseDate       time.Time
	DueDate            time.Time
	Status             entity.ExpenseStatus
	InstallmentCurrent int
	InstallmentTotal   int
}

// GetInvoiceOutput represents one card invoice: its cycle dates and the
// expenses whose purchase date falls inside the window.
type GetInvoiceOutput struct {
	Card                *CardOutput
	Month               int
	Year                int
	ClosingDate         time.Time
	DueDate             time.Time
	PreviousClosingDate time.Time
	Total               decimal.Decimal
	Expenses            []*InvoiceItemOutput
}

// GetInvoiceUseCase computes a card invoice for a reference month.
type GetInvoiceUseCase struct {
	cardRepo    adapter.CardRepository
	expenseRepo adapter.ExpenseRepository
	userRepo    adapter.UserRepository
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(
	cardRepo adapter.CardRepository,
	expenseRepo adapter.ExpenseRepository,
	userRepo adapter.UserRepository,
) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		cardRepo:    cardRepo,
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
	}
}

// Execute computes the invoice cycle and aggregates the expenses in its
// window.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, input GetInvoiceInput) (*GetInvoiceOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	cycle, err := ComputeCycle(now, card.ClosingDay, card.DueDay, input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByCardAndWindow(ctx, card.ID, cycle.PreviousClosingDate, cycle.ClosingDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice expenses: %w", err)
	}

	total := decimal.Zero
	items := make([]*InvoiceItemOutput, 0, len(expenses))
	for _, expense := range expenses {
		total = total.Add(expense.TotalValue)
		items = append(items, &InvoiceItemOutput{
			ID:                 expense.ID,
			Origin:             expense.Origin,
			Description:        expense.Description,
			TotalValue:         expense.TotalValue,
			DividedValue:       expense.DividedValue,
			PurchaseDate:       expense.PurchaseDate,
			DueDate:            expense.DueDate,
			Status:             expense.Status,
			InstallmentCurrent: expense.InstallmentCurrent,
			InstallmentTotal:   expense.InstallmentTotal,
		})
	}

	user, _ := uc.userRepo.FindByID(ctx, card.UserID)

	return &GetInvoiceOutput{
		Card:                newCardOutput(card, user),
		Month:               cycle.Month,
		Year:                cycle.Year,
		ClosingDate:         cycle.ClosingDate,
		DueDate:             cycle.DueDate,
		PreviousClosingDate: cycle.PreviousClosingDate,
		Total:               total,
		Expenses:            items,
	}, nil
}
