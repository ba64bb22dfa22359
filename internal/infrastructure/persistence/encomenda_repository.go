package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEncomendaRepository implements EncomendaRepository using GORM
type GormEncomendaRepository struct {
	db *gorm.DB
}

// NewGormEncomendaRepository creates a new GormEncomendaRepository
func NewGormEncomendaRepository(db *gorm.DB) *GormEncomendaRepository {
	return &GormEncomendaRepository{db: db}
}

// FindByID finds a package by its ID
func (r *GormEncomendaRepository) FindByID(ctx context.Context, id uuid.UUID) (*frontdesk.Encomenda, error) {
	var model models.EncomendaModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForCondo finds a package by ID within a condominium
func (r *GormEncomendaRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*frontdesk.Encomenda, error) {
	var model models.EncomendaModel
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

// FindAllForCondo finds all packages for a condominium with filtering
func (r *GormEncomendaRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter frontdesk.EncomendaFilter) ([]*frontdesk.Encomenda, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.EncomendaModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	).Order("received_at DESC")

	var encomendaModels []models.EncomendaModel
	if err := query.Find(&encomendaModels).Error; err != nil {
		return nil, err
	}

	encomendas := make([]*frontdesk.Encomenda, len(encomendaModels))
	for i := range encomendaModels {
		encomendas[i] = encomendaModels[i].ToDomain()
	}
	return encomendas, nil
}

// FindPendingOlderThan lists packages still waiting for pickup received
// before the cutoff
func (r *GormEncomendaRepository) FindPendingOlderThan(ctx context.Context, condominiumID uuid.UUID, cutoff time.Time) ([]*frontdesk.Encomenda, error) {
	var encomendaModels []models.EncomendaModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ? AND status = ? AND received_at < ?",
			condominiumID, frontdesk.EncomendaStatusReceived, cutoff).
		Order("received_at ASC").
		Find(&encomendaModels).Error; err != nil {
		return nil, err
	}

	encomendas := make([]*frontdesk.Encomenda, len(encomendaModels))
	for i := range encomendaModels {
		encomendas[i] = encomendaModels[i].ToDomain()
	}
	return encomendas, nil
}

// Save creates or updates a package
func (r *GormEncomendaRepository) Save(ctx context.Context, encomenda *frontdesk.Encomenda) error {
	model := models.EncomendaModelFromDomain(encomenda)
	return r.db.WithContext(ctx).Save(model).Error
}

// CountForCondo counts packages for a condominium with optional filters
func (r *GormEncomendaRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter frontdesk.EncomendaFilter) (int64, error) {
	filter.Limit = 0
	filter.Offset = 0
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.EncomendaModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies package filter options
func (r *GormEncomendaRepository) applyFilter(query *gorm.DB, filter frontdesk.EncomendaFilter) *gorm.DB {
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}

// Ensure GormEncomendaRepository implements EncomendaRepository
var _ frontdesk.EncomendaRepository = (*GormEncomendaRepository)(nil)
