package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBoletoRepository implements BoletoRepository using GORM
type GormBoletoRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver // optional, for transactional outbox pattern
}

// NewGormBoletoRepository creates a new GormBoletoRepository
func NewGormBoletoRepository(db *gorm.DB) *GormBoletoRepository {
	return &GormBoletoRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormBoletoRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

// FindByID finds a boleto by its ID
func (r *GormBoletoRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Boleto, error) {
	var model models.BoletoModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForCondo finds a boleto by ID within a condominium
func (r *GormBoletoRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*billing.Boleto, error) {
	var model models.BoletoModel
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

// FindByNumber finds a boleto by its number within a condominium
func (r *GormBoletoRepository) FindByNumber(ctx context.Context, condominiumID uuid.UUID, boletoNumber string) (*billing.Boleto, error) {
	var model models.BoletoModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ? AND boleto_number = ?", condominiumID, strings.ToUpper(boletoNumber)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCondo finds all boletos for a condominium with filtering
func (r *GormBoletoRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter billing.BoletoFilter) ([]billing.Boleto, error) {
	var boletoModels []models.BoletoModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.BoletoModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)

	if err := query.Find(&boletoModels).Error; err != nil {
		return nil, err
	}

	boletos := make([]billing.Boleto, len(boletoModels))
	for i, model := range boletoModels {
		boletos[i] = *model.ToDomain()
	}
	return boletos, nil
}

// FindByUnit finds boletos for a unit
func (r *GormBoletoRepository) FindByUnit(ctx context.Context, condominiumID, unitID uuid.UUID, filter billing.BoletoFilter) ([]billing.Boleto, error) {
	var boletoModels []models.BoletoModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.BoletoModel{}).
			Where("condominium_id = ? AND unit_id = ?", condominiumID, unitID),
		filter,
	)

	if err := query.Find(&boletoModels).Error; err != nil {
		return nil, err
	}

	boletos := make([]billing.Boleto, len(boletoModels))
	for i, model := range boletoModels {
		boletos[i] = *model.ToDomain()
	}
	return boletos, nil
}

// FindDueForOverdueSweep finds sent boletos whose due date is before the given day
func (r *GormBoletoRepository) FindDueForOverdueSweep(ctx context.Context, condominiumID uuid.UUID, before time.Time) ([]*billing.Boleto, error) {
	var boletoModels []models.BoletoModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ? AND status = ? AND due_date < ?", condominiumID, billing.BoletoStatusSent, before).
		Order("due_date ASC").
		Find(&boletoModels).Error; err != nil {
		return nil, err
	}

	boletos := make([]*billing.Boleto, len(boletoModels))
	for i := range boletoModels {
		boletos[i] = boletoModels[i].ToDomain()
	}
	return boletos, nil
}

// Save creates or updates a boleto
func (r *GormBoletoRepository) Save(ctx context.Context, boleto *billing.Boleto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.BoletoModelFromDomain(boleto)
		if err := tx.Save(model).Error; err != nil {
			return err
		}

		// Save events to outbox within the same transaction
		if events := boleto.GetDomainEvents(); r.outboxSaver != nil && len(events) > 0 {
			if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
				return fmt.Errorf("failed to save events to outbox: %w", err)
			}
		}
		return nil
	})
}

// SaveWithLock saves a boleto with optimistic locking (version check).
// Returns an error if the version has changed (concurrent modification).
func (r *GormBoletoRepository) SaveWithLock(ctx context.Context, boleto *billing.Boleto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.BoletoModelFromDomain(boleto)
		result := tx.Model(model).
			Where("id = ? AND version = ?", boleto.ID, boleto.Version-1).
			Updates(model)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The boleto has been modified by another transaction")
		}

		// Save events to outbox within the same transaction
		if events := boleto.GetDomainEvents(); r.outboxSaver != nil && len(events) > 0 {
			if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
				return fmt.Errorf("failed to save events to outbox: %w", err)
			}
		}
		return nil
	})
}

// CountForCondo counts boletos for a condominium with optional filters
func (r *GormBoletoRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter billing.BoletoFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.BoletoModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts boletos by status for a condominium
func (r *GormBoletoRepository) CountByStatus(ctx context.Context, condominiumID uuid.UUID, status billing.BoletoStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BoletoModel{}).
		Where("condominium_id = ? AND status = ?", condominiumID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumByStatus sums boleto amounts by status for a condominium
func (r *GormBoletoRepository) SumByStatus(ctx context.Context, condominiumID uuid.UUID, status billing.BoletoStatus) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&models.BoletoModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("condominium_id = ? AND status = ?", condominiumID, status).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumPaidBetween sums paid amounts with payment timestamps in [from, to)
func (r *GormBoletoRepository) SumPaidBetween(ctx context.Context, condominiumID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&models.BoletoModel{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Where("condominium_id = ? AND status = ?", condominiumID, billing.BoletoStatusPaid).
		Where("paid_at >= ? AND paid_at < ?", from, to).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// ExistsByNumber checks if a boleto number exists within a condominium
func (r *GormBoletoRepository) ExistsByNumber(ctx context.Context, condominiumID uuid.UUID, boletoNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BoletoModel{}).
		Where("condominium_id = ? AND boleto_number = ?", condominiumID, strings.ToUpper(boletoNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextBoletoNumber generates the next sequential boleto number for a
// condominium, scoped to the current year (BOL-2026-000001).
func (r *GormBoletoRepository) NextBoletoNumber(ctx context.Context, condominiumID uuid.UUID) (string, error) {
	prefix := fmt.Sprintf("BOL-%d-", time.Now().Year())

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BoletoModel{}).
		Where("condominium_id = ? AND boleto_number LIKE ?", condominiumID, prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}

	// Walk forward from the count until a free slot is found, in case
	// numbers were skipped by concurrent generation.
	for seq := count + 1; seq <= count+1000; seq++ {
		candidate := fmt.Sprintf("%s%06d", prefix, seq)
		exists, err := r.ExistsByNumber(ctx, condominiumID, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", shared.NewDomainError("NUMBER_EXHAUSTED", "Could not allocate a boleto number")
}

// applyFilter applies filter options including pagination and ordering
func (r *GormBoletoRepository) applyFilter(query *gorm.DB, filter billing.BoletoFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Apply ordering
	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, BoletoSortFields, "due_date")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("due_date DESC, boleto_number DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBoletoRepository) applyFilterWithoutPagination(query *gorm.DB, filter billing.BoletoFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("boleto_number ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DueFrom != nil {
		query = query.Where("due_date >= ?", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		query = query.Where("due_date <= ?", *filter.DueTo)
	}
	if filter.Overdue != nil {
		if *filter.Overdue {
			query = query.Where("status = ?", billing.BoletoStatusOverdue)
		} else {
			query = query.Where("status <> ?", billing.BoletoStatusOverdue)
		}
	}
	return query
}

// Ensure GormBoletoRepository implements BoletoRepository
var _ billing.BoletoRepository = (*GormBoletoRepository)(nil)
