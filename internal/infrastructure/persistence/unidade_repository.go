package persistence

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/domain/condominium"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUnidadeRepository implements UnidadeRepository using GORM
type GormUnidadeRepository struct {
	db *gorm.DB
}

// NewGormUnidadeRepository creates a new GormUnidadeRepository
func NewGormUnidadeRepository(db *gorm.DB) *GormUnidadeRepository {
	return &GormUnidadeRepository{db: db}
}

// FindByID finds a unit by its ID
func (r *GormUnidadeRepository) FindByID(ctx context.Context, id uuid.UUID) (*condominium.Unidade, error) {
	var model models.UnidadeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForCondo finds a unit by ID within a condominium
func (r *GormUnidadeRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*condominium.Unidade, error) {
	var model models.UnidadeModel
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

// FindByLabel finds a unit by its bloco and numero within a condominium
func (r *GormUnidadeRepository) FindByLabel(ctx context.Context, condominiumID uuid.UUID, bloco, numero string) (*condominium.Unidade, error) {
	var model models.UnidadeModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ? AND bloco = ? AND numero = ?", condominiumID, bloco, numero).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCondo finds all units for a condominium with filtering
func (r *GormUnidadeRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter condominium.UnidadeFilter) ([]*condominium.Unidade, error) {
	query := r.db.WithContext(ctx).Model(&models.UnidadeModel{}).
		Where("condominium_id = ?", condominiumID)
	if filter.Bloco != nil {
		query = query.Where("bloco = ?", *filter.Bloco)
	}
	if filter.Occupancy != nil {
		query = query.Where("occupancy = ?", *filter.Occupancy)
	}
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	query = query.Order("bloco ASC, numero ASC")

	var unidadeModels []models.UnidadeModel
	if err := query.Find(&unidadeModels).Error; err != nil {
		return nil, err
	}

	unidades := make([]*condominium.Unidade, len(unidadeModels))
	for i := range unidadeModels {
		unidades[i] = unidadeModels[i].ToDomain()
	}
	return unidades, nil
}

// FindByResident finds units a user owns or rents within a condominium
func (r *GormUnidadeRepository) FindByResident(ctx context.Context, condominiumID, userID uuid.UUID) ([]*condominium.Unidade, error) {
	var unidadeModels []models.UnidadeModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Where("owner_user_id = ? OR tenant_user_id = ?", userID, userID).
		Order("bloco ASC, numero ASC").
		Find(&unidadeModels).Error; err != nil {
		return nil, err
	}

	unidades := make([]*condominium.Unidade, len(unidadeModels))
	for i := range unidadeModels {
		unidades[i] = unidadeModels[i].ToDomain()
	}
	return unidades, nil
}

// Save creates or updates a unit
func (r *GormUnidadeRepository) Save(ctx context.Context, unidade *condominium.Unidade) error {
	model := models.UnidadeModelFromDomain(unidade)
	return r.db.WithContext(ctx).Save(model).Error
}

// CountForCondo counts units for a condominium
func (r *GormUnidadeRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UnidadeModel{}).
		Where("condominium_id = ?", condominiumID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormUnidadeRepository implements UnidadeRepository
var _ condominium.UnidadeRepository = (*GormUnidadeRepository)(nil)
