package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// ExpenseModel represents the despesas table in the database.
type ExpenseModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Origin             string          `gorm:"column:origem;type:varchar(100)"`
	Description        string          `gorm:"column:descricao;type:varchar(255);not null"`
	CategoryID         uuid.UUID       `gorm:"column:categoria_id;type:uuid;not null;index"`
	TotalValue         decimal.Decimal `gorm:"column:valor_total;type:decimal(15,2);not null"`
	DividedValue       decimal.Decimal `gorm:"column:valor_dividido;type:decimal(15,2);not null"`
	PurchaseDate       time.Time       `gorm:"column:data_compra;type:date;index"`
	DueDate            time.Time       `gorm:"column:data_vencimento;type:date;not null;index"`
	PaymentMethod      string          `gorm:"column:forma_pagamento;type:varchar(50)"`
	CardID             *uuid.UUID      `gorm:"column:cartao_id;type:uuid;index"`
	PaidByID           uuid.UUID       `gorm:"column:pago_por_id;type:uuid;not null;index"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	Kind               string          `gorm:"column:tipo_despesa;type:varchar(20);not null;index"`
	Frequency          string          `gorm:"column:frequencia;type:varchar(20)"`
	InstallmentTotal   int             `gorm:"column:total_parcelas"`
	InstallmentCurrent int             `gorm:"column:parcela_atual"`
	ParentID           *uuid.UUID      `gorm:"column:despesa_pai_id;type:uuid;index"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`

	// Loaded with Preload only.
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Card     *CardModel     `gorm:"foreignKey:CardID;references:ID"`
	PaidBy   *UserModel     `gorm:"foreignKey:PaidByID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "despesas"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:                 m.ID,
		Origin:             m.Origin,
		Description:        m.Description,
		CategoryID:         m.CategoryID,
		TotalValue:         m.TotalValue,
		DividedValue:       m.DividedValue,
		PurchaseDate:       m.PurchaseDate,
		DueDate:            m.DueDate,
		PaymentMethod:      m.PaymentMethod,
		CardID:             m.CardID,
		PaidByID:           m.PaidByID,
		Status:             entity.ExpenseStatus(m.Status),
		Kind:               entity.ExpenseKind(m.Kind),
		Frequency:          entity.ExpenseFrequency(m.Frequency),
		InstallmentTotal:   m.InstallmentTotal,
		InstallmentCurrent: m.InstallmentCurrent,
		ParentID:           m.ParentID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ToEntityWithRelations converts an ExpenseModel with its preloaded
// relations to an ExpenseWithRelations entity.
func (m *ExpenseModel) ToEntityWithRelations() *entity.ExpenseWithRelations {
	result := &entity.ExpenseWithRelations{Expense: m.ToEntity()}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	if m.Card != nil {
		result.Card = m.Card.ToEntity()
	}
	if m.PaidBy != nil {
		result.PaidBy = m.PaidBy.ToEntity()
	}
	return result
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                 expense.ID,
		Origin:             expense.Origin,
		Description:        expense.Description,
		CategoryID:         expense.CategoryID,
		TotalValue:         expense.TotalValue,
		DividedValue:       expense.DividedValue,
		PurchaseDate:       expense.PurchaseDate,
		DueDate:            expense.DueDate,
		PaymentMethod:      expense.PaymentMethod,
		CardID:             expense.CardID,
		PaidByID:           expense.PaidByID,
		Status:             string(expense.Status),
		Kind:               string(expense.Kind),
		Frequency:          string(expense.Frequency),
		InstallmentTotal:   expense.InstallmentTotal,
		InstallmentCurrent: expense.InstallmentCurrent,
		ParentID:           expense.ParentID,
		CreatedAt:          expense.CreatedAt,
		UpdatedAt:          expense.UpdatedAt,
	}
}
