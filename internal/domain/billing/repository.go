package billing

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BoletoFilter defines filtering options for boleto queries
type BoletoFilter struct {
	shared.Filter
	UnitID   *uuid.UUID    // Filter by unit
	Status   *BoletoStatus // Filter by status
	DueFrom  *time.Time    // Filter by due date range start
	DueTo    *time.Time    // Filter by due date range end
	Overdue  *bool         // Filter only past-due boletos
}

// BoletoRepository defines the interface for boleto persistence
type BoletoRepository interface {
	// FindByID finds a boleto by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Boleto, error)

	// FindByIDForCondo finds a boleto by ID for a specific condominium
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Boleto, error)

	// FindByNumber finds by boleto number for a condominium
	FindByNumber(ctx context.Context, condominiumID uuid.UUID, boletoNumber string) (*Boleto, error)

	// FindAllForCondo finds all boletos for a condominium with filtering
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter BoletoFilter) ([]Boleto, error)

	// FindByUnit finds boletos for a unit
	FindByUnit(ctx context.Context, condominiumID, unitID uuid.UUID, filter BoletoFilter) ([]Boleto, error)

	// FindDueForOverdueSweep finds sent boletos whose due date is before the given day
	FindDueForOverdueSweep(ctx context.Context, condominiumID uuid.UUID, before time.Time) ([]*Boleto, error)

	// Save creates or updates a boleto
	Save(ctx context.Context, boleto *Boleto) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, boleto *Boleto) error

	// CountForCondo counts boletos for a condominium with optional filters
	CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter BoletoFilter) (int64, error)

	// CountByStatus counts boletos by status for a condominium
	CountByStatus(ctx context.Context, condominiumID uuid.UUID, status BoletoStatus) (int64, error)

	// SumByStatus sums boleto amounts by status for a condominium
	SumByStatus(ctx context.Context, condominiumID uuid.UUID, status BoletoStatus) (decimal.Decimal, error)

	// SumPaidBetween sums paid amounts with payment timestamps in [from, to)
	SumPaidBetween(ctx context.Context, condominiumID uuid.UUID, from, to time.Time) (decimal.Decimal, error)

	// ExistsByNumber checks if a boleto number exists for a condominium
	ExistsByNumber(ctx context.Context, condominiumID uuid.UUID, boletoNumber string) (bool, error)

	// NextBoletoNumber generates a unique boleto number for a condominium
	NextBoletoNumber(ctx context.Context, condominiumID uuid.UUID) (string, error)
}

// AcordoFilter defines filtering options for agreement queries
type AcordoFilter struct {
	shared.Filter
	UnitID *uuid.UUID    // Filter by unit
	Status *AcordoStatus // Filter by status
}

// AcordoRepository defines the interface for installment agreement persistence
type AcordoRepository interface {
	// FindByID finds an agreement by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Acordo, error)

	// FindByIDForCondo finds an agreement by ID for a specific condominium
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Acordo, error)

	// FindAllForCondo finds all agreements for a condominium with filtering
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter AcordoFilter) ([]Acordo, error)

	// FindByUnit finds agreements for a unit
	FindByUnit(ctx context.Context, condominiumID, unitID uuid.UUID, filter AcordoFilter) ([]Acordo, error)

	// Save creates or updates an agreement together with its installments
	Save(ctx context.Context, acordo *Acordo) error

	// CountForCondo counts agreements for a condominium with optional filters
	CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter AcordoFilter) (int64, error)

	// NextAcordoNumber generates a unique agreement number for a condominium
	NextAcordoNumber(ctx context.Context, condominiumID uuid.UUID) (string, error)
}
