package persistence

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/reservation"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEspacoRepository implements EspacoRepository using GORM
type GormEspacoRepository struct {
	db *gorm.DB
}

// NewGormEspacoRepository creates a new GormEspacoRepository
func NewGormEspacoRepository(db *gorm.DB) *GormEspacoRepository {
	return &GormEspacoRepository{db: db}
}

// FindByID finds a common area by its ID
func (r *GormEspacoRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.EspacoComum, error) {
	var model models.EspacoComumModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForCondo finds a common area by ID within a condominium
func (r *GormEspacoRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*reservation.EspacoComum, error) {
	var model models.EspacoComumModel
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

// FindAllForCondo finds all common areas for a condominium
func (r *GormEspacoRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter reservation.EspacoFilter) ([]*reservation.EspacoComum, error) {
	query := r.db.WithContext(ctx).Model(&models.EspacoComumModel{}).
		Where("condominium_id = ?", condominiumID)
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	query = query.Order("name ASC")

	var espacoModels []models.EspacoComumModel
	if err := query.Find(&espacoModels).Error; err != nil {
		return nil, err
	}

	espacos := make([]*reservation.EspacoComum, len(espacoModels))
	for i := range espacoModels {
		espacos[i] = espacoModels[i].ToDomain()
	}
	return espacos, nil
}

// Save creates or updates a common area
func (r *GormEspacoRepository) Save(ctx context.Context, espaco *reservation.EspacoComum) error {
	model := models.EspacoComumModelFromDomain(espaco)
	return r.db.WithContext(ctx).Save(model).Error
}

// CountForCondo counts common areas for a condominium
func (r *GormEspacoRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EspacoComumModel{}).
		Where("condominium_id = ?", condominiumID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormEspacoRepository implements EspacoRepository
var _ reservation.EspacoRepository = (*GormEspacoRepository)(nil)
