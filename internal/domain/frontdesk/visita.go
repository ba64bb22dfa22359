package frontdesk

import (
	"fmt"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VisitaStatus represents the status of a visit
type VisitaStatus string

const (
	VisitaStatusExpected  VisitaStatus = "EXPECTED"   // pre-authorized by a resident
	VisitaStatusCheckedIn VisitaStatus = "CHECKED_IN" // visitor is inside
	VisitaStatusCheckedOut VisitaStatus = "CHECKED_OUT"
	VisitaStatusCancelled VisitaStatus = "CANCELLED"
)

// IsValid checks if the status is valid
func (s VisitaStatus) IsValid() bool {
	switch s {
	case VisitaStatusExpected, VisitaStatusCheckedIn, VisitaStatusCheckedOut, VisitaStatusCancelled:
		return true
	}
	return false
}

// Visita is a visitor entry at the front desk. Residents can
// pre-authorize a visit; the porteiro records check-in and check-out.
type Visita struct {
	shared.CondoAggregateRoot
	UnitID       uuid.UUID    `json:"unit_id"`
	VisitorName  string       `json:"visitor_name"`
	VisitorDoc   string       `json:"visitor_doc"` // CPF or RG, free form
	Status       VisitaStatus `json:"status"`
	AuthorizedBy *uuid.UUID   `json:"authorized_by"`
	ExpectedAt   *time.Time   `json:"expected_at"`
	CheckedInAt  *time.Time   `json:"checked_in_at"`
	CheckedOutAt *time.Time   `json:"checked_out_at"`
	RegisteredBy *uuid.UUID   `json:"registered_by"` // porteiro who handled check-in
	Notes        string       `json:"notes"`
}

// NewExpectedVisita pre-authorizes a visit on behalf of a resident
func NewExpectedVisita(condominiumID, unitID, authorizedBy uuid.UUID, visitorName, visitorDoc string, expectedAt *time.Time) (*Visita, error) {
	if strings.TrimSpace(visitorName) == "" {
		return nil, shared.NewDomainError("INVALID_VISITOR", "Visitor name cannot be empty")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit is required")
	}

	visita := &Visita{
		CondoAggregateRoot: shared.NewCondoAggregateRootWithCreator(condominiumID, authorizedBy),
		UnitID:             unitID,
		VisitorName:        strings.TrimSpace(visitorName),
		VisitorDoc:         strings.TrimSpace(visitorDoc),
		Status:             VisitaStatusExpected,
		AuthorizedBy:       &authorizedBy,
		ExpectedAt:         expectedAt,
	}
	return visita, nil
}

// NewWalkInVisita registers a visitor who arrived unannounced; the
// porteiro checks them in immediately.
func NewWalkInVisita(condominiumID, unitID, registeredBy uuid.UUID, visitorName, visitorDoc string, now time.Time) (*Visita, error) {
	visita, err := NewExpectedVisita(condominiumID, unitID, registeredBy, visitorName, visitorDoc, nil)
	if err != nil {
		return nil, err
	}
	visita.AuthorizedBy = nil
	if err := visita.CheckIn(registeredBy, now); err != nil {
		return nil, err
	}
	return visita, nil
}

// CheckIn records the visitor entering the building
func (v *Visita) CheckIn(registeredBy uuid.UUID, now time.Time) error {
	if v.Status != VisitaStatusExpected {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Visit cannot be checked in from status %s", v.Status))
	}

	v.Status = VisitaStatusCheckedIn
	v.CheckedInAt = &now
	v.RegisteredBy = &registeredBy
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// CheckOut records the visitor leaving the building
func (v *Visita) CheckOut(now time.Time) error {
	if v.Status != VisitaStatusCheckedIn {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Visit cannot be checked out from status %s", v.Status))
	}

	v.Status = VisitaStatusCheckedOut
	v.CheckedOutAt = &now
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// Cancel cancels a pre-authorized visit that never checked in
func (v *Visita) Cancel() error {
	if v.Status != VisitaStatusExpected {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Visit cannot be cancelled from status %s", v.Status))
	}

	v.Status = VisitaStatusCancelled
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}
