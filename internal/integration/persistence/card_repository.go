package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
	"github.com/controle-financeiro/backend/internal/integration/persistence/model"
)

// cardRepository implements the adapter.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository instance.
func NewCardRepository(db *gorm.DB) adapter.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// Create creates a new card in the database.
func (r *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	cardModel := model.CardFromEntity(card)
	return r.db.WithContext(ctx).Create(cardModel).Error
}

// FindByID retrieves a card by its ID.
func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	var cardModel model.CardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// FindAll retrieves cards ordered by name, optionally filtered by owner.
func (r *cardRepository) FindAll(ctx context.Context, userID *uuid.UUID) ([]*entity.CardWithUser, error) {
	query := r.db.WithContext(ctx).Model(&model.CardModel{}).Preload("User")
	if userID != nil {
		query = query.Where("usuario_id = ?", *userID)
	}

	var cardModels []model.CardModel
	if err := query.Order("nome").Find(&cardModels).Error; err != nil {
		return nil, err
	}

	cards := make([]*entity.CardWithUser, len(cardModels))
	for i, cm := range cardModels {
		cards[i] = cm.ToEntityWithUser()
	}
	return cards, nil
}

// Update updates an existing card.
func (r *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	cardModel := model.CardFromEntity(card)
	result := r.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("id = ?", card.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(cardModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCardNotFound
	}
	return nil
}

// Delete deletes a card.
func (r *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CardModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCardNotFound
	}
	return nil
}

// CountByUser counts cards owned by a user.
func (r *cardRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("usuario_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
