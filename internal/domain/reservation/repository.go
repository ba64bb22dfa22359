package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EspacoFilter carries query options for common area listings
type EspacoFilter struct {
	ActiveOnly bool
	Limit      int
	Offset     int
}

// EspacoRepository persists common areas
type EspacoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EspacoComum, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*EspacoComum, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter EspacoFilter) ([]*EspacoComum, error)
	Save(ctx context.Context, espaco *EspacoComum) error
	CountForCondo(ctx context.Context, condominiumID uuid.UUID) (int64, error)
}

// ReservaFilter carries query options for reservation listings
type ReservaFilter struct {
	EspacoID *uuid.UUID
	UnitID   *uuid.UUID
	Status   *ReservaStatus
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// ReservaRepository persists reservations
type ReservaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Reserva, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Reserva, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter ReservaFilter) ([]*Reserva, error)
	// FindBlockingInWindow returns pending and confirmed reservations of the
	// espaco whose window intersects [start, end)
	FindBlockingInWindow(ctx context.Context, espacoID uuid.UUID, start, end time.Time) ([]*Reserva, error)
	// CountForUnitInMonth counts pending and confirmed reservations the unit
	// holds on the espaco in the month containing ref
	CountForUnitInMonth(ctx context.Context, espacoID, unitID uuid.UUID, ref time.Time) (int, error)
	Save(ctx context.Context, reserva *Reserva) error
	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, reserva *Reserva) error
	CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter ReservaFilter) (int64, error)
}
