package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// CreateCardInput represents the input for card creation.
type CreateCardInput struct {
	Name       string
	Brand      string
	ClosingDay int
	DueDay     int
	Limit      decimal.Decimal
	UserID     uuid.UUID
}

// CreateCardOutput represents the output of card creation.
type CreateCardOutput struct {
	Card *CardOutput
}

// CreateCardUseCase handles card creation logic.
type CreateCardUseCase struct {
	cardRepo adapter.CardRepository
	userRepo adapter.UserRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CardRepository, userRepo adapter.UserRepository) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo: cardRepo,
		userRepo: userRepo,
	}
}

// Execute performs the card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeMissingCardFields,
			"card name is required",
			nil,
		)
	}

	if err := ValidateCycleDay(input.ClosingDay); err != nil {
		return nil, err
	}
	if err := ValidateCycleDay(input.DueDay); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardUserMissing,
			"card owner not found",
			domainerror.ErrUserNotFound,
		)
	}

	card := entity.NewCard(
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Brand),
		input.ClosingDay,
		input.DueDay,
		input.Limit,
		input.UserID,
	)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return &CreateCardOutput{Card: newCardOutput(card, user)}, nil
}
