package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/condo/backend/internal/domain/reservation"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReservaRepository implements ReservaRepository using GORM
type GormReservaRepository struct {
	db *gorm.DB
}

// NewGormReservaRepository creates a new GormReservaRepository
func NewGormReservaRepository(db *gorm.DB) *GormReservaRepository {
	return &GormReservaRepository{db: db}
}

// FindByID finds a reservation by its ID
func (r *GormReservaRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reserva, error) {
	var model models.ReservaModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForCondo finds a reservation by ID within a condominium
func (r *GormReservaRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*reservation.Reserva, error) {
	var model models.ReservaModel
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

// FindAllForCondo finds all reservations for a condominium with filtering
func (r *GormReservaRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter reservation.ReservaFilter) ([]*reservation.Reserva, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ReservaModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	).Order("starts_at DESC")

	var reservaModels []models.ReservaModel
	if err := query.Find(&reservaModels).Error; err != nil {
		return nil, err
	}

	reservas := make([]*reservation.Reserva, len(reservaModels))
	for i := range reservaModels {
		reservas[i] = reservaModels[i].ToDomain()
	}
	return reservas, nil
}

// FindBlockingInWindow returns pending and confirmed reservations of the
// espaco whose window intersects [start, end)
func (r *GormReservaRepository) FindBlockingInWindow(ctx context.Context, espacoID uuid.UUID, start, end time.Time) ([]*reservation.Reserva, error) {
	blocking := []reservation.ReservaStatus{reservation.ReservaStatusPending, reservation.ReservaStatusConfirmed}

	var reservaModels []models.ReservaModel
	if err := r.db.WithContext(ctx).
		Where("espaco_id = ? AND status IN ?", espacoID, blocking).
		Where("starts_at < ? AND ends_at > ?", end, start).
		Order("starts_at ASC").
		Find(&reservaModels).Error; err != nil {
		return nil, err
	}

	reservas := make([]*reservation.Reserva, len(reservaModels))
	for i := range reservaModels {
		reservas[i] = reservaModels[i].ToDomain()
	}
	return reservas, nil
}

// CountForUnitInMonth counts pending and confirmed reservations the unit
// holds on the espaco in the month containing ref
func (r *GormReservaRepository) CountForUnitInMonth(ctx context.Context, espacoID, unitID uuid.UUID, ref time.Time) (int, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	blocking := []reservation.ReservaStatus{reservation.ReservaStatusPending, reservation.ReservaStatusConfirmed}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ReservaModel{}).
		Where("espaco_id = ? AND unit_id = ? AND status IN ?", espacoID, unitID, blocking).
		Where("starts_at >= ? AND starts_at < ?", monthStart, monthEnd).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// Save creates or updates a reservation
func (r *GormReservaRepository) Save(ctx context.Context, reserva *reservation.Reserva) error {
	model := models.ReservaModelFromDomain(reserva)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves a reservation with optimistic locking (version check).
// Returns an error if the version has changed (concurrent modification).
func (r *GormReservaRepository) SaveWithLock(ctx context.Context, reserva *reservation.Reserva) error {
	model := models.ReservaModelFromDomain(reserva)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", reserva.ID, reserva.Version-1).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The reservation has been modified by another transaction")
	}
	return nil
}

// CountForCondo counts reservations for a condominium with optional filters
func (r *GormReservaRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter reservation.ReservaFilter) (int64, error) {
	filter.Limit = 0
	filter.Offset = 0
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ReservaModel{}).Where("condominium_id = ?", condominiumID),
		filter,
	)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies reservation filter options
func (r *GormReservaRepository) applyFilter(query *gorm.DB, filter reservation.ReservaFilter) *gorm.DB {
	if filter.EspacoID != nil {
		query = query.Where("espaco_id = ?", *filter.EspacoID)
	}
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("starts_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("starts_at < ?", *filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}

// Ensure GormReservaRepository implements ReservaRepository
var _ reservation.ReservaRepository = (*GormReservaRepository)(nil)
