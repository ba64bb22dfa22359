package communication

import (
	"context"

	"github.com/google/uuid"
)

// AvisoFilter carries query options for notice listings
type AvisoFilter struct {
	Status      *AvisoStatus
	VisibleOnly bool
	Limit       int
	Offset      int
}

// AvisoRepository persists notices
type AvisoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Aviso, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Aviso, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter AvisoFilter) ([]*Aviso, error)
	Save(ctx context.Context, aviso *Aviso) error
	CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter AvisoFilter) (int64, error)
}

// EnqueteFilter carries query options for poll listings
type EnqueteFilter struct {
	Status *EnqueteStatus
	Limit  int
	Offset int
}

// EnqueteRepository persists polls
type EnqueteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Enquete, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Enquete, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter EnqueteFilter) ([]*Enquete, error)
	Save(ctx context.Context, enquete *Enquete) error
	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, enquete *Enquete) error
	CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter EnqueteFilter) (int64, error)
}
