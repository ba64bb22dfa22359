package reservation

import (
	"fmt"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservaStatus represents the lifecycle state of a reservation
type ReservaStatus string

const (
	ReservaStatusPending   ReservaStatus = "PENDING"
	ReservaStatusConfirmed ReservaStatus = "CONFIRMED"
	ReservaStatusRejected  ReservaStatus = "REJECTED"
	ReservaStatusCancelled ReservaStatus = "CANCELLED"
)

// IsValid checks if the status is valid
func (s ReservaStatus) IsValid() bool {
	switch s {
	case ReservaStatusPending, ReservaStatusConfirmed, ReservaStatusRejected, ReservaStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed
func (s ReservaStatus) IsTerminal() bool {
	return s == ReservaStatusRejected || s == ReservaStatusCancelled
}

// String returns the string representation
func (s ReservaStatus) String() string {
	return string(s)
}

// Reserva is a reservation of a common area by a unit. The fee and the
// cancellation notice in force at creation are snapshotted onto the
// reservation, so later rule changes never affect it.
type Reserva struct {
	shared.CondoAggregateRoot
	EspacoID          uuid.UUID       `json:"espaco_id"`
	UnitID            uuid.UUID       `json:"unit_id"`
	RequestedBy       uuid.UUID       `json:"requested_by"`
	StartsAt          time.Time       `json:"starts_at"`
	EndsAt            time.Time       `json:"ends_at"`
	Status            ReservaStatus   `json:"status"`
	Fee               decimal.Decimal `json:"fee"`
	CancelNoticeHours *int            `json:"cancel_notice_hours"`
	Notes             string          `json:"notes"`
	DecidedBy         *uuid.UUID      `json:"decided_by"`
	DecidedAt         *time.Time      `json:"decided_at"`
	RejectionReason   string          `json:"rejection_reason"`
	CancelledAt       *time.Time      `json:"cancelled_at"`
}

// NewReserva creates a reservation for the given window. The caller is
// expected to have validated the window via EspacoComum.CheckWindow and
// checked for overlaps; this constructor snapshots the fee, the
// cancellation notice and the approval requirement from the espaco.
func NewReserva(espaco *EspacoComum, unitID, requestedBy uuid.UUID, start, end time.Time, notes string) (*Reserva, error) {
	if espaco == nil {
		return nil, shared.NewDomainError("INVALID_ESPACO", "Common area is required")
	}
	if !espaco.Active {
		return nil, shared.NewDomainError("ESPACO_INACTIVE", "Common area is not available for reservation")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit is required")
	}
	if !end.After(start) {
		return nil, shared.NewDomainError(RuleCodeInvalidWindow, "Reservation end must be after its start")
	}

	fee := decimal.Zero
	if espaco.Fee != nil {
		fee = *espaco.Fee
	}
	var notice *int
	if espaco.MinCancelNoticeHours != nil {
		v := *espaco.MinCancelNoticeHours
		notice = &v
	}

	reserva := &Reserva{
		CondoAggregateRoot: shared.NewCondoAggregateRootWithCreator(espaco.CondominiumID, requestedBy),
		EspacoID:           espaco.ID,
		UnitID:             unitID,
		RequestedBy:        requestedBy,
		StartsAt:           start,
		EndsAt:             end,
		Status:             espaco.InitialStatus(),
		Fee:                fee,
		CancelNoticeHours:  notice,
		Notes:              notes,
	}

	reserva.AddDomainEvent(NewReservaRequestedEvent(reserva))
	if reserva.Status == ReservaStatusConfirmed {
		reserva.AddDomainEvent(NewReservaConfirmedEvent(reserva))
	}
	return reserva, nil
}

// Approve confirms a pending reservation
func (r *Reserva) Approve(decidedBy uuid.UUID) error {
	if r.Status != ReservaStatusPending {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Only pending reservations can be approved, current status is %s", r.Status))
	}

	now := time.Now()
	r.Status = ReservaStatusConfirmed
	r.DecidedBy = &decidedBy
	r.DecidedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReservaConfirmedEvent(r))
	return nil
}

// Reject declines a pending reservation
func (r *Reserva) Reject(decidedBy uuid.UUID, reason string) error {
	if r.Status != ReservaStatusPending {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Only pending reservations can be rejected, current status is %s", r.Status))
	}

	now := time.Now()
	r.Status = ReservaStatusRejected
	r.DecidedBy = &decidedBy
	r.DecidedAt = &now
	r.RejectionReason = reason
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReservaRejectedEvent(r, reason))
	return nil
}

// Cancel cancels a pending or confirmed reservation on behalf of the
// resident. The snapshotted cancellation notice is enforced against the
// given clock: now plus the notice must not pass the reservation start.
func (r *Reserva) Cancel(now time.Time) error {
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Reservation in status %s cannot be cancelled", r.Status))
	}
	if r.CancelNoticeHours != nil {
		deadline := r.StartsAt.Add(-time.Duration(*r.CancelNoticeHours) * time.Hour)
		if now.After(deadline) {
			return shared.NewDomainError(RuleCodeCancellationNotice, fmt.Sprintf(
				"Cancellation requires at least %d hours of notice", *r.CancelNoticeHours))
		}
	}

	r.Status = ReservaStatusCancelled
	r.CancelledAt = &now
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewReservaCancelledEvent(r))
	return nil
}

// CancelByAdmin cancels a reservation without the notice guard. Used by
// the sindico, for example when the common area must be closed.
func (r *Reserva) CancelByAdmin(decidedBy uuid.UUID, now time.Time) error {
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Reservation in status %s cannot be cancelled", r.Status))
	}

	r.Status = ReservaStatusCancelled
	r.DecidedBy = &decidedBy
	r.CancelledAt = &now
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewReservaCancelledEvent(r))
	return nil
}

// Overlaps reports whether this reservation's window intersects [start, end)
func (r *Reserva) Overlaps(start, end time.Time) bool {
	return r.StartsAt.Before(end) && start.Before(r.EndsAt)
}

// BlocksSlot reports whether the reservation still occupies its window
func (r *Reserva) BlocksSlot() bool {
	return r.Status == ReservaStatusPending || r.Status == ReservaStatusConfirmed
}
