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

// UpdateExpenseInput represents the input for expense updates. Nil fields
// are left unchanged. PropagateToFuture copies the shared fields onto every
// pending child of a parent record.
type UpdateExpenseInput struct {
	ID                 uuid.UUID
	Origin             *string
	Description        *string
	CategoryID         *uuid.UUID
	TotalValue         *decimal.Decimal
	PurchaseDate       *time.Time
	DueDate            *time.Time
	PaymentMethod      *string
	CardID             *uuid.UUID
	ClearCard          bool
	PaidByID           *uuid.UUID
	Status             *entity.ExpenseStatus
	Frequency          *entity.ExpenseFrequency
	InstallmentTotal   *int
	InstallmentCurrent *int
	PropagateToFuture  bool
}

// UpdateExpenseOutput represents the output of an expense update.
type UpdateExpenseOutput struct {
	Expense         *ExpenseOutput
	PropagatedCount int
}

// UpdateExpenseUseCase handles expense update logic, including propagation
// to pending children.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	cardRepo     adapter.CardRepository
	userRepo     adapter.UserRepository
	summaryCache adapter.SummaryCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	cardRepo adapter.CardRepository,
	userRepo adapter.UserRepository,
	summaryCache adapter.SummaryCache,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		cardRepo:     cardRepo,
		userRepo:     userRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the expense update. When PropagateToFuture is set and the
// record is a parent, the shared fields are copied onto every pending child
// in the same transaction; the children keep their own dates.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if input.PropagateToFuture && !expense.IsParent() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotParent,
			"only a parent expense can propagate to future records",
			domainerror.ErrExpenseNotParent,
		)
	}

	if err := uc.apply(ctx, expense, input); err != nil {
		return nil, err
	}

	expense.UpdatedAt = time.Now().UTC()

	propagated := 0
	if input.PropagateToFuture {
		pending := entity.ExpenseStatusPending
		children, err := uc.expenseRepo.FindChildren(ctx, expense.ID, &pending)
		if err != nil {
			return nil, fmt.Errorf("failed to load pending children: %w", err)
		}

		PropagateToChildren(expense, children)

		if err := uc.expenseRepo.UpdateWithChildren(ctx, expense, children); err != nil {
			return nil, fmt.Errorf("failed to update expense with children: %w", err)
		}
		propagated = len(children)
	} else {
		if err := uc.expenseRepo.Update(ctx, expense); err != nil {
			return nil, fmt.Errorf("failed to update expense: %w", err)
		}
	}

	if err := uc.summaryCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}

	return &UpdateExpenseOutput{
		Expense:         newExpenseOutput(expense),
		PropagatedCount: propagated,
	}, nil
}

func (uc *UpdateExpenseUseCase) apply(ctx context.Context, expense *entity.Expense, input UpdateExpenseInput) error {
	if input.Origin != nil {
		expense.Origin = strings.TrimSpace(*input.Origin)
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeMissingExpenseFields,
				"description is required",
				nil,
			)
		}
		expense.Description = description
	}
	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpCategoryMissing,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		expense.CategoryID = *input.CategoryID
	}
	if input.TotalValue != nil {
		if !input.TotalValue.IsPositive() {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseValue,
				"total value must be positive",
				domainerror.ErrInvalidExpenseValue,
			)
		}
		expense.TotalValue = *input.TotalValue

		// The division is redone against the investor count as it stands
		// now, not the count at creation time.
		count, err := uc.userRepo.CountActiveInvestors(ctx)
		if err != nil {
			return fmt.Errorf("failed to count active investors: %w", err)
		}
		expense.DividedValue = DivideValue(expense.TotalValue, count)
	}
	if input.PurchaseDate != nil {
		expense.PurchaseDate = *input.PurchaseDate
	}
	if input.DueDate != nil {
		expense.DueDate = *input.DueDate
	}
	if input.PaymentMethod != nil {
		expense.PaymentMethod = *input.PaymentMethod
	}
	if input.ClearCard {
		expense.CardID = nil
	} else if input.CardID != nil {
		if _, err := uc.cardRepo.FindByID(ctx, *input.CardID); err != nil {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpCardMissing,
				"card not found",
				domainerror.ErrCardNotFound,
			)
		}
		expense.CardID = input.CardID
	}
	if input.PaidByID != nil {
		if _, err := uc.userRepo.FindByID(ctx, *input.PaidByID); err != nil {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpPayerMissing,
				"paying user not found",
				domainerror.ErrUserNotFound,
			)
		}
		expense.PaidByID = *input.PaidByID
	}
	if input.Status != nil {
		if !entity.IsValidExpenseStatus(*input.Status) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseStatus,
				"status must be 'pendente' or 'pago'",
				domainerror.ErrInvalidExpenseStatus,
			)
		}
		expense.Status = *input.Status
	}
	if input.Frequency != nil && expense.Kind == entity.ExpenseKindRecurring {
		if !entity.IsValidExpenseFrequency(*input.Frequency) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseFrequency,
				"frequency must be 'mensal', 'bimestral', 'trimestral', 'semestral' or 'anual'",
				domainerror.ErrInvalidExpenseFrequency,
			)
		}
		expense.Frequency = *input.Frequency
	}
	if expense.Kind == entity.ExpenseKindInstallment {
		if input.InstallmentTotal != nil {
			expense.InstallmentTotal = *input.InstallmentTotal
		}
		if input.InstallmentCurrent != nil {
			expense.InstallmentCurrent = *input.InstallmentCurrent
		}
	}
	return nil
}
