package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
	"github.com/controle-financeiro/backend/internal/integration/persistence/model"
)

// contributionRepository implements the adapter.ContributionRepository interface.
type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository instance.
func NewContributionRepository(db *gorm.DB) adapter.ContributionRepository {
	return &contributionRepository{
		db: db,
	}
}

// Create creates a new contribution in the database.
func (r *contributionRepository) Create(ctx context.Context, contribution *entity.Contribution) error {
	contributionModel := model.ContributionFromEntity(contribution)
	return r.db.WithContext(ctx).Create(contributionModel).Error
}

// FindByID retrieves a contribution by its ID.
func (r *contributionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContributionWithUser, error) {
	var contributionModel model.ContributionModel
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&contributionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrContributionNotFound
		}
		return nil, result.Error
	}
	return contributionModel.ToEntityWithUser(), nil
}

// FindByFilter retrieves contributions matching the filter, newest first.
func (r *contributionRepository) FindByFilter(ctx context.Context, filter adapter.ContributionFilter) ([]*entity.ContributionWithUser, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ContributionModel{}).
		Preload("User")

	if filter.UserID != nil {
		query = query.Where("usuario_id = ?", *filter.UserID)
	}
	if filter.DateFrom != nil {
		query = query.Where("data >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("data <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(observacao) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	var contributionModels []model.ContributionModel
	if err := query.Order("data DESC").Find(&contributionModels).Error; err != nil {
		return nil, err
	}

	contributions := make([]*entity.ContributionWithUser, len(contributionModels))
	for i := range contributionModels {
		contributions[i] = contributionModels[i].ToEntityWithUser()
	}
	return contributions, nil
}

// FindByYear retrieves all contributions dated inside a calendar year.
func (r *contributionRepository) FindByYear(ctx context.Context, year int, userID *uuid.UUID) ([]*entity.ContributionWithUser, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return r.FindByFilter(ctx, adapter.ContributionFilter{
		UserID:   userID,
		DateFrom: &from,
		DateTo:   &to,
	})
}

// FindByDateRange retrieves contributions dated inside [from, to].
func (r *contributionRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Contribution, error) {
	var contributionModels []model.ContributionModel
	err := r.db.WithContext(ctx).
		Where("data >= ? AND data <= ?", from, to).
		Order("data").
		Find(&contributionModels).Error
	if err != nil {
		return nil, err
	}

	contributions := make([]*entity.Contribution, len(contributionModels))
	for i := range contributionModels {
		contributions[i] = contributionModels[i].ToEntity()
	}
	return contributions, nil
}

// SumByUser sums all contribution values for a user.
func (r *contributionRepository) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&model.ContributionModel{}).
		Where("usuario_id = ?", userID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// CountByUser counts contributions made by a user.
func (r *contributionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ContributionModel{}).
		Where("usuario_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing contribution.
func (r *contributionRepository) Update(ctx context.Context, contribution *entity.Contribution) error {
	contributionModel := model.ContributionFromEntity(contribution)
	result := r.db.WithContext(ctx).
		Model(&model.ContributionModel{}).
		Where("id = ?", contribution.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(contributionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrContributionNotFound
	}
	return nil
}

// Delete deletes a contribution.
func (r *contributionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ContributionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrContributionNotFound
	}
	return nil
}
