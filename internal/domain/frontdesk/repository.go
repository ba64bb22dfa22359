package frontdesk

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VisitaFilter carries query options for visit listings
type VisitaFilter struct {
	UnitID *uuid.UUID
	Status *VisitaStatus
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// VisitaRepository persists visits
type VisitaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Visita, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Visita, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter VisitaFilter) ([]*Visita, error)
	Save(ctx context.Context, visita *Visita) error
	CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter VisitaFilter) (int64, error)
}

// EncomendaFilter carries query options for package listings
type EncomendaFilter struct {
	UnitID *uuid.UUID
	Status *EncomendaStatus
	Limit  int
	Offset int
}

// EncomendaRepository persists packages
type EncomendaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Encomenda, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Encomenda, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter EncomendaFilter) ([]*Encomenda, error)
	// FindPendingOlderThan lists packages still waiting after the cutoff,
	// used for reminder notifications
	FindPendingOlderThan(ctx context.Context, condominiumID uuid.UUID, cutoff time.Time) ([]*Encomenda, error)
	Save(ctx context.Context, encomenda *Encomenda) error
	CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter EncomendaFilter) (int64, error)
}
