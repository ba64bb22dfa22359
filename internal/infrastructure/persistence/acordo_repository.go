package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAcordoRepository implements AcordoRepository using GORM
type GormAcordoRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver // optional, for transactional outbox pattern
}

// NewGormAcordoRepository creates a new GormAcordoRepository
func NewGormAcordoRepository(db *gorm.DB) *GormAcordoRepository {
	return &GormAcordoRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormAcordoRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

// FindByID finds an agreement by its ID
func (r *GormAcordoRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Acordo, error) {
	var model models.AcordoModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithParcelas(ctx, &model)
}

// FindByIDForCondo finds an agreement by ID within a condominium
func (r *GormAcordoRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*billing.Acordo, error) {
	var model models.AcordoModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ? AND id = ?", condominiumID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithParcelas(ctx, &model)
}

// FindAllForCondo finds all agreements for a condominium with filtering
func (r *GormAcordoRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter billing.AcordoFilter) ([]billing.Acordo, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.AcordoModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)
	return r.findAll(ctx, query)
}

// FindByUnit finds agreements for a unit
func (r *GormAcordoRepository) FindByUnit(ctx context.Context, condominiumID, unitID uuid.UUID, filter billing.AcordoFilter) ([]billing.Acordo, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.AcordoModel{}).
			Where("condominium_id = ? AND unit_id = ?", condominiumID, unitID),
		filter,
	)
	return r.findAll(ctx, query)
}

// Save creates or updates an agreement together with its installments
func (r *GormAcordoRepository) Save(ctx context.Context, acordo *billing.Acordo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.AcordoModelFromDomain(acordo)
		if err := tx.Save(model).Error; err != nil {
			return err
		}

		// Installment schedules are fixed at creation; rows are upserted,
		// never removed.
		for i := range acordo.Parcelas {
			var parcelaModel models.ParcelaModel
			parcelaModel.FromDomain(acordo.ID, &acordo.Parcelas[i])
			if err := tx.Save(&parcelaModel).Error; err != nil {
				return err
			}
		}

		// Save events to outbox within the same transaction
		if events := acordo.GetDomainEvents(); r.outboxSaver != nil && len(events) > 0 {
			if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
				return fmt.Errorf("failed to save events to outbox: %w", err)
			}
		}
		return nil
	})
}

// CountForCondo counts agreements for a condominium with optional filters
func (r *GormAcordoRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter billing.AcordoFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.AcordoModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NextAcordoNumber generates the next sequential agreement number for a
// condominium, scoped to the current year (ACD-2026-000001).
func (r *GormAcordoRepository) NextAcordoNumber(ctx context.Context, condominiumID uuid.UUID) (string, error) {
	prefix := fmt.Sprintf("ACD-%d-", time.Now().Year())

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AcordoModel{}).
		Where("condominium_id = ? AND acordo_number LIKE ?", condominiumID, prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}

	for seq := count + 1; seq <= count+1000; seq++ {
		candidate := fmt.Sprintf("%s%06d", prefix, seq)
		var exists int64
		if err := r.db.WithContext(ctx).Model(&models.AcordoModel{}).
			Where("condominium_id = ? AND acordo_number = ?", condominiumID, candidate).
			Count(&exists).Error; err != nil {
			return "", err
		}
		if exists == 0 {
			return candidate, nil
		}
	}
	return "", shared.NewDomainError("NUMBER_EXHAUSTED", "Could not allocate an agreement number")
}

// loadWithParcelas attaches the installment rows to an agreement model
func (r *GormAcordoRepository) loadWithParcelas(ctx context.Context, model *models.AcordoModel) (*billing.Acordo, error) {
	var parcelas []models.ParcelaModel
	if err := r.db.WithContext(ctx).
		Where("acordo_id = ?", model.ID).
		Order("sequence ASC").
		Find(&parcelas).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(parcelas), nil
}

func (r *GormAcordoRepository) findAll(ctx context.Context, query *gorm.DB) ([]billing.Acordo, error) {
	var acordoModels []models.AcordoModel
	if err := query.Find(&acordoModels).Error; err != nil {
		return nil, err
	}

	acordos := make([]billing.Acordo, len(acordoModels))
	for i := range acordoModels {
		acordo, err := r.loadWithParcelas(ctx, &acordoModels[i])
		if err != nil {
			return nil, err
		}
		acordos[i] = *acordo
	}
	return acordos, nil
}

// applyFilter applies filter options including pagination and ordering
func (r *GormAcordoRepository) applyFilter(query *gorm.DB, filter billing.AcordoFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, AcordoSortFields, "created_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAcordoRepository) applyFilterWithoutPagination(query *gorm.DB, filter billing.AcordoFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("acordo_number ILIKE ?", searchPattern)
	}
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	return query
}

// Ensure GormAcordoRepository implements AcordoRepository
var _ billing.AcordoRepository = (*GormAcordoRepository)(nil)
