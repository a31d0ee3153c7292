package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// ListCardsInput represents the input for listing cards.
type ListCardsInput struct {
	UserID *uuid.UUID
}

// ListCardsOutput represents the output of listing cards.
type ListCardsOutput struct {
	Cards []*CardOutput
}

// ListCardsUseCase handles card listing logic.
type ListCardsUseCase struct {
	cardRepo adapter.CardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{cardRepo: cardRepo}
}

// Execute retrieves cards, optionally filtered by owner.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.FindAll(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	output := &ListCardsOutput{Cards: make([]*CardOutput, 0, len(cards))}
	for _, c := range cards {
		output.Cards = append(output.Cards, newCardOutput(c.Card, c.User))
	}
	return output, nil
}

// GetCardInput represents the input for fetching one card.
type GetCardInput struct {
	ID uuid.UUID
}

// GetCardOutput represents the output of fetching one card.
type GetCardOutput struct {
	Card *CardOutput
}

// GetCardUseCase handles single card retrieval.
type GetCardUseCase struct {
	cardRepo adapter.CardRepository
	userRepo adapter.UserRepository
}

// NewGetCardUseCase creates a new GetCardUseCase instance.
func NewGetCardUseCase(cardRepo adapter.CardRepository, userRepo adapter.UserRepository) *GetCardUseCase {
	return &GetCardUseCase{
		cardRepo: cardRepo,
		userRepo: userRepo,
	}
}

// Execute retrieves a card by ID.
func (uc *GetCardUseCase) Execute(ctx context.Context, input GetCardInput) (*GetCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	user, _ := uc.userRepo.FindByID(ctx, card.UserID)
	return &GetCardOutput{Card: newCardOutput(card, user)}, nil
}
