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

// GormEnqueteRepository implements EnqueteRepository using GORM
type GormEnqueteRepository struct {
	db *gorm.DB
}

// NewGormEnqueteRepository creates a new GormEnqueteRepository
func NewGormEnqueteRepository(db *gorm.DB) *GormEnqueteRepository {
	return &GormEnqueteRepository{db: db}
}

// FindByID finds a poll by its ID
func (r *GormEnqueteRepository) FindByID(ctx context.Context, id uuid.UUID) (*communication.Enquete, error) {
	var model models.EnqueteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithVotes(ctx, &model)
}

// FindByIDForCondo finds a poll by ID within a condominium
func (r *GormEnqueteRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*communication.Enquete, error) {
	var model models.EnqueteModel
	if err := r.db.WithContext(ctx).
		Where("condominium_id = ? AND id = ?", condominiumID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithVotes(ctx, &model)
}

// FindAllForCondo finds all polls for a condominium with filtering
func (r *GormEnqueteRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter communication.EnqueteFilter) ([]*communication.Enquete, error) {
	query := r.db.WithContext(ctx).Model(&models.EnqueteModel{}).
		Where("condominium_id = ?", condominiumID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	query = query.Order("opens_at DESC")

	var enqueteModels []models.EnqueteModel
	if err := query.Find(&enqueteModels).Error; err != nil {
		return nil, err
	}

	enquetes := make([]*communication.Enquete, len(enqueteModels))
	for i := range enqueteModels {
		enquete, err := r.loadWithVotes(ctx, &enqueteModels[i])
		if err != nil {
			return nil, err
		}
		enquetes[i] = enquete
	}
	return enquetes, nil
}

// Save creates or updates a poll together with its votes
func (r *GormEnqueteRepository) Save(ctx context.Context, enquete *communication.Enquete) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.saveInTx(tx, enquete)
	})
}

// SaveWithLock saves a poll with optimistic locking (version check).
// Voting is the concurrent path; two residents of the same unit voting at
// once must not both get through.
func (r *GormEnqueteRepository) SaveWithLock(ctx context.Context, enquete *communication.Enquete) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := models.EnqueteModelFromDomain(enquete)
		if err != nil {
			return err
		}

		result := tx.Model(model).
			Where("id = ? AND version = ?", enquete.ID, enquete.Version-1).
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The poll has been modified by another transaction")
		}

		return r.saveVotes(tx, enquete)
	})
}

// CountForCondo counts polls for a condominium with optional filters
func (r *GormEnqueteRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter communication.EnqueteFilter) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EnqueteModel{}).
		Where("condominium_id = ?", condominiumID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormEnqueteRepository) saveInTx(tx *gorm.DB, enquete *communication.Enquete) error {
	model, err := models.EnqueteModelFromDomain(enquete)
	if err != nil {
		return err
	}
	if err := tx.Save(model).Error; err != nil {
		return err
	}
	return r.saveVotes(tx, enquete)
}

// saveVotes inserts missing vote rows. Votes are immutable; the unique
// index on (enquete_id, unit_id) backs up the domain's one-vote-per-unit
// rule.
func (r *GormEnqueteRepository) saveVotes(tx *gorm.DB, enquete *communication.Enquete) error {
	for i := range enquete.Votes {
		vote := &enquete.Votes[i]
		var existing int64
		if err := tx.Model(&models.VotoModel{}).
			Where("enquete_id = ? AND unit_id = ?", enquete.ID, vote.UnitID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			continue
		}

		var voteModel models.VotoModel
		voteModel.FromDomain(enquete.ID, vote)
		if err := tx.Create(&voteModel).Error; err != nil {
			return err
		}
	}
	return nil
}

// loadWithVotes attaches the vote rows to a poll model
func (r *GormEnqueteRepository) loadWithVotes(ctx context.Context, model *models.EnqueteModel) (*communication.Enquete, error) {
	var votes []models.VotoModel
	if err := r.db.WithContext(ctx).
		Where("enquete_id = ?", model.ID).
		Order("cast_at ASC").
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(votes)
}

// Ensure GormEnqueteRepository implements EnqueteRepository
var _ communication.EnqueteRepository = (*GormEnqueteRepository)(nil)
