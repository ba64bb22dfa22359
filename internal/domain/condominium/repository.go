package condominium

import (
	"context"

	"github.com/google/uuid"
)

// CondominiumRepository persists condominiums
type CondominiumRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Condominium, error)
	FindByCode(ctx context.Context, code string) (*Condominium, error)
	FindAll(ctx context.Context, limit, offset int) ([]*Condominium, error)
	Save(ctx context.Context, condo *Condominium) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// UnidadeFilter carries query options for unit listings
type UnidadeFilter struct {
	Bloco      *string
	Occupancy  *OccupancyStatus
	ActiveOnly bool
	Limit      int
	Offset     int
}

// UnidadeRepository persists units
type UnidadeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Unidade, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Unidade, error)
	FindByLabel(ctx context.Context, condominiumID uuid.UUID, bloco, numero string) (*Unidade, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter UnidadeFilter) ([]*Unidade, error)
	FindByResident(ctx context.Context, condominiumID, userID uuid.UUID) ([]*Unidade, error)
	Save(ctx context.Context, unidade *Unidade) error
	CountForCondo(ctx context.Context, condominiumID uuid.UUID) (int64, error)
}
