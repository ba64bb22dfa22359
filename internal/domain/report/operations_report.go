package report

import (
	"time"

	"github.com/google/uuid"
)

// EspacoUsageItem summarizes reservation activity for one common area
type EspacoUsageItem struct {
	EspacoID       uuid.UUID `json:"espaco_id"`
	EspacoName     string    `json:"espaco_name"`
	Confirmed      int64     `json:"confirmed"`
	Pending        int64     `json:"pending"`
	Cancelled      int64     `json:"cancelled"`
	Rejected       int64     `json:"rejected"`
	HoursReserved  float64   `json:"hours_reserved"`
}

// ReservationUsageReport summarizes common-area usage for a period
type ReservationUsageReport struct {
	CondominiumID uuid.UUID         `json:"condominium_id"`
	PeriodStart   time.Time         `json:"period_start"`
	PeriodEnd     time.Time         `json:"period_end"`
	Items         []EspacoUsageItem `json:"items"`
}

// TicketSummary counts occurrence tickets per status
type TicketSummary struct {
	CondominiumID uuid.UUID        `json:"condominium_id"`
	GeneratedAt   time.Time        `json:"generated_at"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByCategory    map[string]int64 `json:"by_category"`
}
