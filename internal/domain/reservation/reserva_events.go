package reservation

import "github.com/condo/backend/internal/domain/shared"

// Reservation domain event types
const (
	EventTypeReservaRequested = "reservation.reserva.requested"
	EventTypeReservaConfirmed = "reservation.reserva.confirmed"
	EventTypeReservaRejected  = "reservation.reserva.rejected"
	EventTypeReservaCancelled = "reservation.reserva.cancelled"
)

// ReservaEvent is the base event for reservation lifecycle changes
type ReservaEvent struct {
	shared.BaseDomainEvent
	UnitID   string `json:"unit_id"`
	EspacoID string `json:"espaco_id"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

func newReservaEvent(eventType string, r *Reserva, reason string) *ReservaEvent {
	return &ReservaEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Reserva", r.ID, r.CondominiumID),
		UnitID:          r.UnitID.String(),
		EspacoID:        r.EspacoID.String(),
		Status:          r.Status.String(),
		Reason:          reason,
	}
}

// NewReservaRequestedEvent fires when a reservation is created
func NewReservaRequestedEvent(r *Reserva) *ReservaEvent {
	return newReservaEvent(EventTypeReservaRequested, r, "")
}

// NewReservaConfirmedEvent fires when a reservation is confirmed
func NewReservaConfirmedEvent(r *Reserva) *ReservaEvent {
	return newReservaEvent(EventTypeReservaConfirmed, r, "")
}

// NewReservaRejectedEvent fires when a pending reservation is declined
func NewReservaRejectedEvent(r *Reserva, reason string) *ReservaEvent {
	return newReservaEvent(EventTypeReservaRejected, r, reason)
}

// NewReservaCancelledEvent fires when a reservation is cancelled
func NewReservaCancelledEvent(r *Reserva) *ReservaEvent {
	return newReservaEvent(EventTypeReservaCancelled, r, "")
}
