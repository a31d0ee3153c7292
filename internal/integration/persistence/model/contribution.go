package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// ContributionModel represents the aportes table in the database.
type ContributionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"column:usuario_id;type:uuid;not null;index"`
	Value     decimal.Decimal `gorm:"column:valor;type:decimal(15,2);not null"`
	Date      time.Time       `gorm:"column:data;type:date;not null;index"`
	Note      string          `gorm:"column:observacao;type:varchar(255)"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	// Loaded with Preload only.
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ContributionModel.
func (ContributionModel) TableName() string {
	return "aportes"
}

// ToEntity converts a ContributionModel to a domain Contribution entity.
func (m *ContributionModel) ToEntity() *entity.Contribution {
	return &entity.Contribution{
		ID:        m.ID,
		UserID:    m.UserID,
		Value:     m.Value,
		Date:      m.Date,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToEntityWithUser converts a ContributionModel with its User to a
// ContributionWithUser entity.
func (m *ContributionModel) ToEntityWithUser() *entity.ContributionWithUser {
	result := &entity.ContributionWithUser{Contribution: m.ToEntity()}
	if m.User != nil {
		result.User = m.User.ToEntity()
	}
	return result
}

// ContributionFromEntity creates a ContributionModel from a domain
// Contribution entity.
func ContributionFromEntity(contribution *entity.Contribution) *ContributionModel {
	return &ContributionModel{
		ID:        contribution.ID,
		UserID:    contribution.UserID,
		Value:     contribution.Value,
		Date:      contribution.Date,
		Note:      contribution.Note,
		CreatedAt: contribution.CreatedAt,
		UpdatedAt: contribution.UpdatedAt,
	}
}
