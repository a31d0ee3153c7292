package card

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// DefaultProjectionMonths is how many future invoices are projected when the
// caller does not say.
const DefaultProjectionMonths = 3

// MaxProjectionMonths caps forward projections.
const MaxProjectionMonths = 24

// NextInvoicesInput represents the input for invoice projection.
type NextInvoicesInput struct {
	CardID uuid.UUID
	Months int
	Now    time.Time
}

// ProjectedInvoiceOutput represents one projected invoice: cycle dates plus
// the aggregate of already-recorded expenses falling in its window. Nothing
// is materialized.
type ProjectedInvoiceOutput struct {
	Month        int
	Year         int
	ClosingDate  time.Time
	DueDate      time.Time
	Total        decimal.Decimal
	ExpenseCount int
}

// NextInvoicesOutput represents the output of invoice projection.
type NextInvoicesOutput struct {
	Card     *CardOutput
	Invoices []*ProjectedInvoiceOutput
}

// NextInvoicesUseCase projects the upcoming invoices of a card.
type NextInvoicesUseCase struct {
	cardRepo    adapter.CardRepository
	expenseRepo adapter.ExpenseRepository
	userRepo    adapter.UserRepository
}

// NewNextInvoicesUseCase creates a new NextInvoicesUseCase instance.
func NewNextInvoicesUseCase(
	cardRepo adapter.CardRepository,
	expenseRepo adapter.ExpenseRepository,
	userRepo adapter.UserRepository,
) *NextInvoicesUseCase {
	return &NextInvoicesUseCase{
		cardRepo:    cardRepo,
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
	}
}

// Execute projects the next invoices starting from the cycle open today.
func (uc *NextInvoicesUseCase) Execute(ctx context.Context, input NextInvoicesInput) (*NextInvoicesOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	months := input.Months
	if months <= 0 {
		months = DefaultProjectionMonths
	}
	if months > MaxProjectionMonths {
		months = MaxProjectionMonths
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	cycles, err := NextCycles(now, card.ClosingDay, card.DueDay, months)
	if err != nil {
		return nil, err
	}

	invoices := make([]*ProjectedInvoiceOutput, 0, len(cycles))
	for _, cycle := range cycles {
		expenses, err := uc.expenseRepo.FindByCardAndWindow(ctx, card.ID, cycle.PreviousClosingDate, cycle.ClosingDate)
		if err != nil {
			return nil, fmt.Errorf("failed to load expenses for projection: %w", err)
		}

		total := decimal.Zero
		for _, expense := range expenses {
			total = total.Add(expense.TotalValue)
		}

		invoices = append(invoices, &ProjectedInvoiceOutput{
			Month:        cycle.Month,
			Year:         cycle.Year,
			ClosingDate:  cycle.ClosingDate,
			DueDate:      cycle.DueDate,
			Total:        total,
			ExpenseCount: len(expenses),
		})
	}

	user, _ := uc.userRepo.FindByID(ctx, card.UserID)

	return &NextInvoicesOutput{
		Card:     newCardOutput(card, user),
		Invoices: invoices,
	}, nil
}
