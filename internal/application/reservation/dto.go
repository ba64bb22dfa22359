package reservation

import (
	"time"

	"github.com/condo/backend/internal/domain/reservation"
	"github.com/shopspring/decimal"
)

// CreateEspacoRequest registers a new common area
type CreateEspacoRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Capacity    int    `json:"capacity" binding:"min=0"`
}

// ConfigureEspacoRequest replaces the reservation rules of a common area
type ConfigureEspacoRequest struct {
	MinReservationMinutes *int             `json:"min_reservation_minutes"`
	MaxReservationMinutes *int             `json:"max_reservation_minutes"`
	OperatingStartMinute  *int             `json:"operating_start_minute"`
	OperatingEndMinute    *int             `json:"operating_end_minute"`
	MaxAdvanceDays        *int             `json:"max_advance_days"`
	MinCancelNoticeHours  *int             `json:"min_cancel_notice_hours"`
	MaxMonthlyPerUnit     *int             `json:"max_monthly_per_unit"`
	RequiresApproval      bool             `json:"requires_approval"`
	Fee                   *decimal.Decimal `json:"fee"`
}

// EspacoResponse is the API representation of a common area
type EspacoResponse struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	Capacity              int              `json:"capacity"`
	Active                bool             `json:"active"`
	MinReservationMinutes *int             `json:"min_reservation_minutes,omitempty"`
	MaxReservationMinutes *int             `json:"max_reservation_minutes,omitempty"`
	OperatingStartMinute  *int             `json:"operating_start_minute,omitempty"`
	OperatingEndMinute    *int             `json:"operating_end_minute,omitempty"`
	MaxAdvanceDays        *int             `json:"max_advance_days,omitempty"`
	MinCancelNoticeHours  *int             `json:"min_cancel_notice_hours,omitempty"`
	MaxMonthlyPerUnit     *int             `json:"max_monthly_per_unit,omitempty"`
	RequiresApproval      bool             `json:"requires_approval"`
	Fee                   *decimal.Decimal `json:"fee,omitempty"`
}

// ToEspacoResponse converts a domain common area
func ToEspacoResponse(e *reservation.EspacoComum) EspacoResponse {
	return EspacoResponse{
		ID:                    e.ID.String(),
		Name:                  e.Name,
		Description:           e.Description,
		Capacity:              e.Capacity,
		Active:                e.Active,
		MinReservationMinutes: e.MinReservationMinutes,
		MaxReservationMinutes: e.MaxReservationMinutes,
		OperatingStartMinute:  e.OperatingStartMinute,
		OperatingEndMinute:    e.OperatingEndMinute,
		MaxAdvanceDays:        e.MaxAdvanceDays,
		MinCancelNoticeHours:  e.MinCancelNoticeHours,
		MaxMonthlyPerUnit:     e.MaxMonthlyPerUnit,
		RequiresApproval:      e.RequiresApproval,
		Fee:                   e.Fee,
	}
}

// RequestReservaRequest asks for a reservation of a common area
type RequestReservaRequest struct {
	EspacoID string    `json:"espaco_id" binding:"required,uuid"`
	UnitID   string    `json:"unit_id" binding:"required,uuid"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
	Notes    string    `json:"notes" binding:"max=500"`
}

// RejectReservaRequest declines a pending reservation
type RejectReservaRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ReservaResponse is the API representation of a reservation
type ReservaResponse struct {
	ID              string          `json:"id"`
	EspacoID        string          `json:"espaco_id"`
	UnitID          string          `json:"unit_id"`
	RequestedBy     string          `json:"requested_by"`
	StartsAt        time.Time       `json:"starts_at"`
	EndsAt          time.Time       `json:"ends_at"`
	Status          string          `json:"status"`
	Fee             decimal.Decimal `json:"fee"`
	Notes           string          `json:"notes,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToReservaResponse converts a domain reservation
func ToReservaResponse(r *reservation.Reserva) ReservaResponse {
	return ReservaResponse{
		ID:              r.ID.String(),
		EspacoID:        r.EspacoID.String(),
		UnitID:          r.UnitID.String(),
		RequestedBy:     r.RequestedBy.String(),
		StartsAt:        r.StartsAt,
		EndsAt:          r.EndsAt,
		Status:          r.Status.String(),
		Fee:             r.Fee,
		Notes:           r.Notes,
		RejectionReason: r.RejectionReason,
		DecidedAt:       r.DecidedAt,
		CancelledAt:     r.CancelledAt,
		CreatedAt:       r.CreatedAt,
	}
}

// ReservaListFilter carries list query parameters
type ReservaListFilter struct {
	EspacoID string `form:"espaco_id"`
	UnitID   string `form:"unit_id"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
