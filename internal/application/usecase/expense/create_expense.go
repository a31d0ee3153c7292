package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Origin           string
	Description      string
	CategoryID       uuid.UUID
	TotalValue       decimal.Decimal
	PurchaseDate     time.Time
	DueDate          time.Time
	PaymentMethod    string
	CardID           *uuid.UUID
	PaidByID         uuid.UUID
	Status           entity.ExpenseStatus
	Kind             entity.ExpenseKind
	Frequency        entity.ExpenseFrequency
	InstallmentTotal int

	// GenerateRecurrences materializes the future occurrences of a
	// recurring expense at creation. Without it only the parent is created;
	// occurrences can be generated later through GenerateChildrenUseCase.
	GenerateRecurrences bool
	RecurrenceCount     int // 0 means DefaultRecurrenceCount
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense        *ExpenseOutput
	GeneratedCount int
}

// CreateExpenseUseCase handles expense creation, including generation of
// installment and recurrence children in the same transaction as the parent.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	cardRepo     adapter.CardRepository
	userRepo     adapter.UserRepository
	summaryCache adapter.SummaryCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	cardRepo adapter.CardRepository,
	userRepo adapter.UserRepository,
	summaryCache adapter.SummaryCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		cardRepo:     cardRepo,
		userRepo:     userRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the expense creation. Installment expenses get one child
// per remaining installment; recurring expenses get one child per future
// occurrence when GenerateRecurrences is set, otherwise the parent is
// created alone. Parent and children are written atomically.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpCategoryMissing,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	if _, err := uc.userRepo.FindByID(ctx, input.PaidByID); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpPayerMissing,
			"paying user not found",
			domainerror.ErrUserNotFound,
		)
	}
	if input.CardID != nil {
		if _, err := uc.cardRepo.FindByID(ctx, *input.CardID); err != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpCardMissing,
				"card not found",
				domainerror.ErrCardNotFound,
			)
		}
	}

	divided, err := uc.computeDividedValue(ctx, input.TotalValue)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.ExpenseStatusPending
	}

	parent := entity.NewExpense(
		strings.TrimSpace(input.Origin),
		strings.TrimSpace(input.Description),
		input.CategoryID,
		input.TotalValue,
		divided,
		input.PurchaseDate,
		input.DueDate,
		input.PaymentMethod,
		input.CardID,
		input.PaidByID,
		status,
		input.Kind,
	)

	var children []*entity.Expense
	switch input.Kind {
	case entity.ExpenseKindInstallment:
		parent.InstallmentTotal = input.InstallmentTotal
		if parent.InstallmentTotal < 1 {
			parent.InstallmentTotal = 1
		}
		parent.InstallmentCurrent = 1
		children = BuildInstallments(parent)
	case entity.ExpenseKindRecurring:
		parent.Frequency = input.Frequency
		if parent.Frequency == "" {
			parent.Frequency = entity.FrequencyMonthly
		}
		if input.GenerateRecurrences {
			children = BuildRecurrences(parent, input.RecurrenceCount)
		}
	}

	if err := uc.expenseRepo.CreateWithChildren(ctx, parent, children); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	uc.invalidateSummaries(ctx)

	return &CreateExpenseOutput{
		Expense:        newExpenseOutput(parent),
		GeneratedCount: len(children),
	}, nil
}

func (uc *CreateExpenseUseCase) validate(input CreateExpenseInput) error {
	if strings.TrimSpace(input.Description) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"description is required",
			nil,
		)
	}
	if !input.TotalValue.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseValue,
			"total value must be positive",
			domainerror.ErrInvalidExpenseValue,
		)
	}
	if !entity.IsValidExpenseKind(input.Kind) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseKind,
			"kind must be 'única', 'recorrente' or 'parcelada'",
			domainerror.ErrInvalidExpenseKind,
		)
	}
	if input.Status != "" && !entity.IsValidExpenseStatus(input.Status) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseStatus,
			"status must be 'pendente' or 'pago'",
			domainerror.ErrInvalidExpenseStatus,
		)
	}
	if input.Kind == entity.ExpenseKindRecurring && input.Frequency != "" && !entity.IsValidExpenseFrequency(input.Frequency) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseFrequency,
			"frequency must be 'mensal', 'bimestral', 'trimestral', 'semestral' or 'anual'",
			domainerror.ErrInvalidExpenseFrequency,
		)
	}
	if input.DueDate.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"due date is required",
			nil,
		)
	}
	return nil
}

// computeDividedValue splits the total across the active investors. With no
// active investors the whole value falls on the payer.
func (uc *CreateExpenseUseCase) computeDividedValue(ctx context.Context, total decimal.Decimal) (decimal.Decimal, error) {
	count, err := uc.userRepo.CountActiveInvestors(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to count active investors: %w", err)
	}
	return DivideValue(total, count), nil
}

func (uc *CreateExpenseUseCase) invalidateSummaries(ctx context.Context) {
	if err := uc.summaryCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}
}

// DivideValue splits a total value across count investors, rounded to cents.
// A count of zero returns the total unchanged.
func DivideValue(total decimal.Decimal, count int64) decimal.Decimal {
	if count <= 0 {
		return total
	}
	return total.Div(decimal.NewFromInt(count)).Round(2)
}
