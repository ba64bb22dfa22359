package persistence

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/ticket"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOcorrenciaRepository implements OcorrenciaRepository using GORM
type GormOcorrenciaRepository struct {
	db *gorm.DB
}

// NewGormOcorrenciaRepository creates a new GormOcorrenciaRepository
func NewGormOcorrenciaRepository(db *gorm.DB) *GormOcorrenciaRepository {
	return &GormOcorrenciaRepository{db: db}
}

// FindByID finds an occurrence by its ID
func (r *GormOcorrenciaRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ocorrencia, error) {
	var model models.OcorrenciaModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithComments(ctx, &model)
}

// FindByIDForCondo finds an occurrence by ID within a condominium
func (r *GormOcorrenciaRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*ticket.Ocorrencia, error) {
	var model models.OcorrenciaModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ? AND id = ?", condominiumID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithComments(ctx, &model)
}

// FindAllForCondo finds all occurrences for a condominium with filtering.
// Comments are not loaded for listings.
func (r *GormOcorrenciaRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter ticket.OcorrenciaFilter) ([]*ticket.Ocorrencia, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.OcorrenciaModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	).Order("created_at DESC")

	var ocorrenciaModels []models.OcorrenciaModel
	if err := query.Find(&ocorrenciaModels).Error; err != nil {
		return nil, err
	}

	ocorrencias := make([]*ticket.Ocorrencia, len(ocorrenciaModels))
	for i := range ocorrenciaModels {
		ocorrencias[i] = ocorrenciaModels[i].ToDomain(nil)
	}
	return ocorrencias, nil
}

// Save creates or updates an occurrence together with its comments
func (r *GormOcorrenciaRepository) Save(ctx context.Context, ocorrencia *ticket.Ocorrencia) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.OcorrenciaModelFromDomain(ocorrencia)
		if err := tx.Save(model).Error; err != nil {
			return err
		}

		// Comments are append-only; rows are upserted, never removed.
		for i := range ocorrencia.Comments {
			var commentModel models.ComentarioModel
			commentModel.FromDomain(ocorrencia.ID, &ocorrencia.Comments[i])
			if err := tx.Save(&commentModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountByStatus counts occurrences per status for a condominium
func (r *GormOcorrenciaRepository) CountByStatus(ctx context.Context, condominiumID uuid.UUID) (map[ticket.OcorrenciaStatus]int64, error) {
	type statusCount struct {
		Status ticket.OcorrenciaStatus
		Count  int64
	}

	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&models.OcorrenciaModel{}).
		Select("status, COUNT(*) as count").
		Where("condominium_id = ?", condominiumID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[ticket.OcorrenciaStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountForCondo counts occurrences for a condominium with optional filters
func (r *GormOcorrenciaRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter ticket.OcorrenciaFilter) (int64, error) {
	filter.Limit = 0
	filter.Offset = 0
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.OcorrenciaModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// loadWithComments attaches the comment rows to an occurrence model
func (r *GormOcorrenciaRepository) loadWithComments(ctx context.Context, model *models.OcorrenciaModel) (*ticket.Ocorrencia, error) {
	var comments []models.ComentarioModel
	if err := r.db.WithContext(ctx).
		Where("ocorrencia_id = ?", model.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(comments), nil
}

// applyFilter applies occurrence filter options
func (r *GormOcorrenciaRepository) applyFilter(query *gorm.DB, filter ticket.OcorrenciaFilter) *gorm.DB {
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.OpenedBy != nil {
		query = query.Where("opened_by = ?", *filter.OpenedBy)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}

// Ensure GormOcorrenciaRepository implements OcorrenciaRepository
var _ ticket.OcorrenciaRepository = (*GormOcorrenciaRepository)(nil)
