package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// CardModel represents the cartoes table in the database.
type CardModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"column:nome;type:varchar(100);not null"`
	Brand      string          `gorm:"column:bandeira;type:varchar(50)"`
	ClosingDay int             `gorm:"column:dia_fechamento;not null"`
	DueDay     int             `gorm:"column:dia_vencimento;not null"`
	Limit      decimal.Decimal `gorm:"column:limite;type:decimal(15,2)"`
	UserID     uuid.UUID       `gorm:"column:usuario_id;type:uuid;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// Loaded with Preload only.
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CardModel.
func (CardModel) TableName() string {
	return "cartoes"
}

// ToEntity converts a CardModel to a domain Card entity.
func (m *CardModel) ToEntity() *entity.Card {
	return &entity.Card{
		ID:         m.ID,
		Name:       m.Name,
		Brand:      m.Brand,
		ClosingDay: m.ClosingDay,
		DueDay:     m.DueDay,
		Limit:      m.Limit,
		UserID:     m.UserID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToEntityWithUser converts a CardModel with its User to a CardWithUser entity.
func (m *CardModel) ToEntityWithUser() *entity.CardWithUser {
	result := &entity.CardWithUser{Card: m.ToEntity()}
	if m.User != nil {
		result.User = m.User.ToEntity()
	}
	return result
}

// CardFromEntity creates a CardModel from a domain Card entity.
func CardFromEntity(card *entity.Card) *CardModel {
	return &CardModel{
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
}
