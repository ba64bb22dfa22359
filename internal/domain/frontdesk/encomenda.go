package frontdesk

import (
	"fmt"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EncomendaStatus represents the status of a package held at the front desk
type EncomendaStatus string

const (
	EncomendaStatusReceived  EncomendaStatus = "RECEIVED"
	EncomendaStatusDelivered EncomendaStatus = "DELIVERED"
	EncomendaStatusReturned  EncomendaStatus = "RETURNED" // returned to sender
)

// IsValid checks if the status is valid
func (s EncomendaStatus) IsValid() bool {
	switch s {
	case EncomendaStatusReceived, EncomendaStatusDelivered, EncomendaStatusReturned:
		return true
	}
	return false
}

// Encomenda is a package received at the front desk on behalf of a unit
type Encomenda struct {
	shared.CondoAggregateRoot
	UnitID       uuid.UUID       `json:"unit_id"`
	Description  string          `json:"description"`
	Carrier      string          `json:"carrier"`
	TrackingCode string          `json:"tracking_code"`
	Status       EncomendaStatus `json:"status"`
	ReceivedBy   uuid.UUID       `json:"received_by"` // porteiro
	ReceivedAt   time.Time       `json:"received_at"`
	DeliveredAt  *time.Time      `json:"delivered_at"`
	DeliveredTo  string          `json:"delivered_to"` // name of the person who picked it up
	ReturnedAt   *time.Time      `json:"returned_at"`
	Notes        string          `json:"notes"`
}

// NewEncomenda registers a package received at the front desk
func NewEncomenda(condominiumID, unitID, receivedBy uuid.UUID, description, carrier, trackingCode string, receivedAt time.Time) (*Encomenda, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Package description cannot be empty")
	}

	encomenda := &Encomenda{
		CondoAggregateRoot: shared.NewCondoAggregateRootWithCreator(condominiumID, receivedBy),
		UnitID:             unitID,
		Description:        strings.TrimSpace(description),
		Carrier:            strings.TrimSpace(carrier),
		TrackingCode:       strings.TrimSpace(trackingCode),
		Status:             EncomendaStatusReceived,
		ReceivedBy:         receivedBy,
		ReceivedAt:         receivedAt,
	}

	encomenda.AddDomainEvent(NewEncomendaReceivedEvent(encomenda))
	return encomenda, nil
}

// Deliver hands the package over to a resident
func (e *Encomenda) Deliver(deliveredTo string, now time.Time) error {
	if e.Status != EncomendaStatusReceived {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Package cannot be delivered from status %s", e.Status))
	}
	if strings.TrimSpace(deliveredTo) == "" {
		return shared.NewDomainError("INVALID_RECIPIENT", "Recipient name is required")
	}

	e.Status = EncomendaStatusDelivered
	e.DeliveredAt = &now
	e.DeliveredTo = strings.TrimSpace(deliveredTo)
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Return sends the package back to the carrier
func (e *Encomenda) Return(now time.Time, reason string) error {
	if e.Status != EncomendaStatusReceived {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Package cannot be returned from status %s", e.Status))
	}

	e.Status = EncomendaStatusReturned
	e.ReturnedAt = &now
	if reason != "" {
		e.Notes = reason
	}
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// DaysHeld returns how many whole days the package has been waiting
func (e *Encomenda) DaysHeld(now time.Time) int {
	if e.Status != EncomendaStatusReceived {
		return 0
	}
	return int(now.Sub(e.ReceivedAt).Hours() / 24)
}
