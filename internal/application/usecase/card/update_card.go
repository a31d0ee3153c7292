package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// UpdateCardInput represents the input for card updates. Nil fields are left
// unchanged.
type UpdateCardInput struct {
	ID         uuid.UUID
	Name       *string
	Brand      *string
	ClosingDay *int
	DueDay     *int
	Limit      *decimal.Decimal
	UserID     *uuid.UUID
}

// UpdateCardOutput represents the output of a card update.
type UpdateCardOutput struct {
	Card *CardOutput
}

// UpdateCardUseCase handles card update logic.
type UpdateCardUseCase struct {
	cardRepo adapter.CardRepository
	userRepo adapter.UserRepository
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(cardRepo adapter.CardRepository, userRepo adapter.UserRepository) *UpdateCardUseCase {
	return &UpdateCardUseCase{
		cardRepo: cardRepo,
		userRepo: userRepo,
	}
}

// Execute performs the card update.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeMissingCardFields,
				"card name is required",
				nil,
			)
		}
		card.Name = name
	}
	if input.Brand != nil {
		card.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.ClosingDay != nil {
		if err := ValidateCycleDay(*input.ClosingDay); err != nil {
			return nil, err
		}
		card.ClosingDay = *input.ClosingDay
	}
	if input.DueDay != nil {
		if err := ValidateCycleDay(*input.DueDay); err != nil {
			return nil, err
		}
		card.DueDay = *input.DueDay
	}
	if input.Limit != nil {
		card.Limit = *input.Limit
	}

	if input.UserID != nil && *input.UserID != card.UserID {
		if _, err := uc.userRepo.FindByID(ctx, *input.UserID); err != nil {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeCardUserMissing,
				"card owner not found",
				domainerror.ErrUserNotFound,
			)
		}
		card.UserID = *input.UserID
	}

	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	user, _ := uc.userRepo.FindByID(ctx, card.UserID)
	return &UpdateCardOutput{Card: newCardOutput(card, user)}, nil
}
