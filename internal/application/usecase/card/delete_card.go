package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// DeleteCardInput represents the input for card deletion.
type DeleteCardInput struct {
	ID uuid.UUID
}

// DeleteCardUseCase handles card deletion logic.
type DeleteCardUseCase struct {
	cardRepo    adapter.CardRepository
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CardRepository, expenseRepo adapter.ExpenseRepository) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo:    cardRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the card deletion. A card with expenses pointing at it
// cannot be removed.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) error {
	if _, err := uc.cardRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	count, err := uc.expenseRepo.CountByCard(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count card expenses: %w", err)
	}
	if count > 0 {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardHasExpenses,
			fmt.Sprintf("card has %d associated expenses", count),
			domainerror.ErrCardHasExpenses,
		)
	}

	if err := uc.cardRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}
