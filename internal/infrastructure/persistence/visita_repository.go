package persistence

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVisitaRepository implements VisitaRepository using GORM
type GormVisitaRepository struct {
	db *gorm.DB
}

// NewGormVisitaRepository creates a new GormVisitaRepository
func NewGormVisitaRepository(db *gorm.DB) *GormVisitaRepository {
	return &GormVisitaRepository{db: db}
}

// FindByID finds a visit by its ID
func (r *GormVisitaRepository) FindByID(ctx context.Context, id uuid.UUID) (*frontdesk.Visita, error) {
	var model models.VisitaModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForCondo finds a visit by ID within a condominium
func (r *GormVisitaRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*frontdesk.Visita, error) {
	var model models.VisitaModel
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

// FindAllForCondo finds all visits for a condominium with filtering
func (r *GormVisitaRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter frontdesk.VisitaFilter) ([]*frontdesk.Visita, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.VisitaModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	).Order("created_at DESC")

	var visitaModels []models.VisitaModel
	if err := query.Find(&visitaModels).Error; err != nil {
		return nil, err
	}

	visitas := make([]*frontdesk.Visita, len(visitaModels))
	for i := range visitaModels {
		visitas[i] = visitaModels[i].ToDomain()
	}
	return visitas, nil
}

// Save creates or updates a visit
func (r *GormVisitaRepository) Save(ctx context.Context, visita *frontdesk.Visita) error {
	model := models.VisitaModelFromDomain(visita)
	return r.db.WithContext(ctx).Save(model).Error
}

// CountForCondo counts visits for a condominium with optional filters
func (r *GormVisitaRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter frontdesk.VisitaFilter) (int64, error) {
	filter.Limit = 0
	filter.Offset = 0
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.VisitaModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies visit filter options
func (r *GormVisitaRepository) applyFilter(query *gorm.DB, filter frontdesk.VisitaFilter) *gorm.DB {
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}

// Ensure GormVisitaRepository implements VisitaRepository
var _ frontdesk.VisitaRepository = (*GormVisitaRepository)(nil)
