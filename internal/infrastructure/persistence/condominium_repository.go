package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/condo/backend/internal/domain/condominium"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCondominiumRepository implements CondominiumRepository using GORM
type GormCondominiumRepository struct {
	db *gorm.DB
}

// NewGormCondominiumRepository creates a new GormCondominiumRepository
func NewGormCondominiumRepository(db *gorm.DB) *GormCondominiumRepository {
	return &GormCondominiumRepository{db: db}
}

// FindByID finds a condominium by its ID
func (r *GormCondominiumRepository) FindByID(ctx context.Context, id uuid.UUID) (*condominium.Condominium, error) {
	var model models.CondominiumModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a condominium by its code
func (r *GormCondominiumRepository) FindByCode(ctx context.Context, code string) (*condominium.Condominium, error) {
	var model models.CondominiumModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists condominiums with pagination
func (r *GormCondominiumRepository) FindAll(ctx context.Context, limit, offset int) ([]*condominium.Condominium, error) {
	query := r.db.WithContext(ctx).Model(&models.CondominiumModel{}).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var condoModels []models.CondominiumModel
	if err := query.Find(&condoModels).Error; err != nil {
		return nil, err
	}

	condos := make([]*condominium.Condominium, len(condoModels))
	for i := range condoModels {
		condos[i] = condoModels[i].ToDomain()
	}
	return condos, nil
}

// Save creates or updates a condominium
func (r *GormCondominiumRepository) Save(ctx context.Context, condo *condominium.Condominium) error {
	model := models.CondominiumModelFromDomain(condo)
	return r.db.WithContext(ctx).Save(model).Error
}

// ExistsByCode checks if a condominium code is taken
func (r *GormCondominiumRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CondominiumModel{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts all condominiums
func (r *GormCondominiumRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CondominiumModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetActiveCondominiumIDs lists the IDs of all active condominiums.
// The daily scheduler iterates these when fanning out per-condominium jobs.
func (r *GormCondominiumRepository) GetActiveCondominiumIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&models.CondominiumModel{}).
		Where("status = ?", condominium.CondominiumStatusActive).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Ensure GormCondominiumRepository implements CondominiumRepository
var _ condominium.CondominiumRepository = (*GormCondominiumRepository)(nil)
