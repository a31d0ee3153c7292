package card

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// CardOutput represents card data returned by use cases.
type CardOutput struct {
	ID         uuid.UUID
	Name       string
	Brand      string
	ClosingDay int
	DueDay     int
	Limit      decimal.Decimal
	UserID     uuid.UUID
	UserName   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func newCardOutput(card *entity.Card, user *entity.User) *CardOutput {
	output := &CardOutput{
		ID:         card.ID,
		Name:       card.Name,
		Brand:      card.Brand,
		ClosingDay: card.ClosingDay,
		DueDay:     card.DueDay,
		Limit:      card.Limit,
		UserID:     card.UserID,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
	if user != nil {
		output.UserName = user.Name
	}
	return output
}
