package condominium

import (
	"fmt"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OccupancyStatus describes who currently occupies a unit
type OccupancyStatus string

const (
	OccupancyOwner  OccupancyStatus = "OWNER_OCCUPIED"
	OccupancyRented OccupancyStatus = "RENTED"
	OccupancyVacant OccupancyStatus = "VACANT"
)

// IsValid checks if the occupancy status is valid
func (s OccupancyStatus) IsValid() bool {
	switch s {
	case OccupancyOwner, OccupancyRented, OccupancyVacant:
		return true
	}
	return false
}

// Unidade is a unit (apartment or house) inside a condominium. Billing
// and reservations are tracked per unit, not per resident.
type Unidade struct {
	shared.CondoAggregateRoot
	Bloco        string          `json:"bloco"`
	Numero       string          `json:"numero"`
	FracaoIdeal  decimal.Decimal `json:"fracao_ideal"` // ownership share used for expense apportionment
	AreaM2       decimal.Decimal `json:"area_m2"`
	Occupancy    OccupancyStatus `json:"occupancy"`
	OwnerUserID  *uuid.UUID      `json:"owner_user_id"`
	TenantUserID *uuid.UUID      `json:"tenant_user_id"`
	Active       bool            `json:"active"`
}

// NewUnidade creates a new unit
func NewUnidade(condominiumID uuid.UUID, bloco, numero string, fracaoIdeal decimal.Decimal) (*Unidade, error) {
	if strings.TrimSpace(numero) == "" {
		return nil, shared.NewDomainError("INVALID_NUMERO", "Unit number cannot be empty")
	}
	if fracaoIdeal.IsNegative() {
		return nil, shared.NewDomainError("INVALID_FRACAO", "Ideal fraction cannot be negative")
	}

	unidade := &Unidade{
		CondoAggregateRoot: shared.NewCondoAggregateRoot(condominiumID),
		Bloco:              strings.TrimSpace(bloco),
		Numero:             strings.TrimSpace(numero),
		FracaoIdeal:        fracaoIdeal,
		Occupancy:          OccupancyVacant,
		Active:             true,
	}
	return unidade, nil
}

// Label returns the display label, e.g. "B2-104" or "104"
func (u *Unidade) Label() string {
	if u.Bloco == "" {
		return u.Numero
	}
	return fmt.Sprintf("%s-%s", u.Bloco, u.Numero)
}

// AssignOwner sets the owner and, when the unit was vacant, marks it
// owner occupied
func (u *Unidade) AssignOwner(userID uuid.UUID) {
	u.OwnerUserID = &userID
	if u.Occupancy == OccupancyVacant {
		u.Occupancy = OccupancyOwner
	}
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// AssignTenant registers a renting resident and marks the unit rented
func (u *Unidade) AssignTenant(userID uuid.UUID) {
	u.TenantUserID = &userID
	u.Occupancy = OccupancyRented
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// ClearTenant removes the renting resident
func (u *Unidade) ClearTenant() {
	u.TenantUserID = nil
	if u.OwnerUserID != nil {
		u.Occupancy = OccupancyOwner
	} else {
		u.Occupancy = OccupancyVacant
	}
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// SetOccupancy overrides the occupancy status
func (u *Unidade) SetOccupancy(status OccupancyStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_OCCUPANCY", "Invalid occupancy status")
	}
	u.Occupancy = status
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// ResidentUserID returns the user currently responsible for the unit:
// the renting resident when present, the owner otherwise
func (u *Unidade) ResidentUserID() *uuid.UUID {
	if u.TenantUserID != nil {
		return u.TenantUserID
	}
	return u.OwnerUserID
}

// Deactivate retires the unit from active use
func (u *Unidade) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}
