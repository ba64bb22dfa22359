package persistence

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/communication"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAvisoRepository implements AvisoRepository using GORM
type GormAvisoRepository struct {
	db *gorm.DB
}

// NewGormAvisoRepository creates a new GormAvisoRepository
func NewGormAvisoRepository(db *gorm.DB) *GormAvisoRepository {
	return &GormAvisoRepository{db: db}
}

// FindByID finds a notice by its ID
func (r *GormAvisoRepository) FindByID(ctx context.Context, id uuid.UUID) (*communication.Aviso, error) {
	var model models.AvisoModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForCondo finds a notice by ID within a condominium
func (r *GormAvisoRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*communication.Aviso, error) {
	var model models.AvisoModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ? AND id = ?", condominiumID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCondo finds all notices for a condominium with filtering
func (r *GormAvisoRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter communication.AvisoFilter) ([]*communication.Aviso, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.AvisoModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	).Order("published_at DESC NULLS LAST, created_at DESC")

	var avisoModels []models.AvisoModel
	if err := query.Find(&avisoModels).Error; err != nil {
		return nil, err
	}

	avisos := make([]*communication.Aviso, len(avisoModels))
	for i := range avisoModels {
		avisos[i] = avisoModels[i].ToDomain()
	}
	return avisos, nil
}

// Save creates or updates a notice
func (r *GormAvisoRepository) Save(ctx context.Context, aviso *communication.Aviso) error {
	model := models.AvisoModelFromDomain(aviso)
	return r.db.WithContext(ctx).Save(model).Error
}

// CountForCondo counts notices for a condominium with optional filters
func (r *GormAvisoRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter communication.AvisoFilter) (int64, error) {
	filter.Limit = 0
	filter.Offset = 0
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.AvisoModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies notice filter options
func (r *GormAvisoRepository) applyFilter(query *gorm.DB, filter communication.AvisoFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.VisibleOnly {
		// Published and not yet expired
		query = query.Where("status = ?", communication.AvisoStatusPublished).
			Where("expires_at IS NULL OR expires_at > CURRENT_TIMESTAMP")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}

// Ensure GormAvisoRepository implements AvisoRepository
var _ communication.AvisoRepository = (*GormAvisoRepository)(nil)
