package reservation

import (
	"fmt"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation rule violation codes. Each configured rule fails with its
// own code so the frontend can display the reason verbatim.
const (
	RuleCodeTooShort          = "RESERVATION_TOO_SHORT"
	RuleCodeTooLong           = "RESERVATION_TOO_LONG"
	RuleCodeOutsideHours      = "OUTSIDE_OPERATING_HOURS"
	RuleCodeTooFarInAdvance   = "TOO_FAR_IN_ADVANCE"
	RuleCodeMonthlyLimit      = "MONTHLY_LIMIT_REACHED"
	RuleCodeCancellationNotice = "CANCELLATION_NOTICE_REQUIRED"
	RuleCodeInvalidWindow     = "INVALID_WINDOW"
)

// EspacoComum is a common area of the condominium available for
// reservation. It owns the rule configuration a requested time window
// is validated against. Optional rules are nil when not configured.
type EspacoComum struct {
	shared.CondoAggregateRoot
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	Capacity              int              `json:"capacity"`
	Active                bool             `json:"active"`
	MinReservationMinutes *int             `json:"min_reservation_minutes"`
	MaxReservationMinutes *int             `json:"max_reservation_minutes"`
	OperatingStartMinute  *int             `json:"operating_start_minute"` // minutes from midnight
	OperatingEndMinute    *int             `json:"operating_end_minute"`
	MaxAdvanceDays        *int             `json:"max_advance_days"`
	MinCancelNoticeHours  *int             `json:"min_cancel_notice_hours"`
	MaxMonthlyPerUnit     *int             `json:"max_monthly_per_unit"`
	RequiresApproval      bool             `json:"requires_approval"`
	Fee                   *decimal.Decimal `json:"fee"`
}

// NewEspacoComum creates a new common area with no optional rules configured
func NewEspacoComum(condominiumID uuid.UUID, name, description string, capacity int) (*EspacoComum, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Common area name cannot be empty")
	}
	if capacity < 0 {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity cannot be negative")
	}

	return &EspacoComum{
		CondoAggregateRoot: shared.NewCondoAggregateRoot(condominiumID),
		Name:               name,
		Description:        description,
		Capacity:           capacity,
		Active:             true,
	}, nil
}

// RuleConfig groups the optional reservation rules for bulk updates
type RuleConfig struct {
	MinReservationMinutes *int
	MaxReservationMinutes *int
	OperatingStartMinute  *int
	OperatingEndMinute    *int
	MaxAdvanceDays        *int
	MinCancelNoticeHours  *int
	MaxMonthlyPerUnit     *int
	RequiresApproval      bool
	Fee                   *decimal.Decimal
}

// ConfigureRules replaces the optional rule configuration
func (e *EspacoComum) ConfigureRules(cfg RuleConfig) error {
	if cfg.MinReservationMinutes != nil && *cfg.MinReservationMinutes <= 0 {
		return shared.NewDomainError("INVALID_RULE", "Minimum reservation duration must be positive")
	}
	if cfg.MaxReservationMinutes != nil && *cfg.MaxReservationMinutes <= 0 {
		return shared.NewDomainError("INVALID_RULE", "Maximum reservation duration must be positive")
	}
	if cfg.MinReservationMinutes != nil && cfg.MaxReservationMinutes != nil &&
		*cfg.MinReservationMinutes > *cfg.MaxReservationMinutes {
		return shared.NewDomainError("INVALID_RULE", "Minimum reservation duration cannot exceed the maximum")
	}
	if (cfg.OperatingStartMinute == nil) != (cfg.OperatingEndMinute == nil) {
		return shared.NewDomainError("INVALID_RULE", "Operating hours require both a start and an end")
	}
	if cfg.OperatingStartMinute != nil {
		if *cfg.OperatingStartMinute < 0 || *cfg.OperatingEndMinute > 24*60 ||
			*cfg.OperatingStartMinute >= *cfg.OperatingEndMinute {
			return shared.NewDomainError("INVALID_RULE", "Operating hours window is not valid")
		}
	}
	if cfg.MaxAdvanceDays != nil && *cfg.MaxAdvanceDays <= 0 {
		return shared.NewDomainError("INVALID_RULE", "Maximum advance days must be positive")
	}
	if cfg.MinCancelNoticeHours != nil && *cfg.MinCancelNoticeHours < 0 {
		return shared.NewDomainError("INVALID_RULE", "Cancellation notice hours cannot be negative")
	}
	if cfg.MaxMonthlyPerUnit != nil && *cfg.MaxMonthlyPerUnit <= 0 {
		return shared.NewDomainError("INVALID_RULE", "Monthly reservation limit must be positive")
	}
	if cfg.Fee != nil && cfg.Fee.IsNegative() {
		return shared.NewDomainError("INVALID_RULE", "Reservation fee cannot be negative")
	}

	e.MinReservationMinutes = cfg.MinReservationMinutes
	e.MaxReservationMinutes = cfg.MaxReservationMinutes
	e.OperatingStartMinute = cfg.OperatingStartMinute
	e.OperatingEndMinute = cfg.OperatingEndMinute
	e.MaxAdvanceDays = cfg.MaxAdvanceDays
	e.MinCancelNoticeHours = cfg.MinCancelNoticeHours
	e.MaxMonthlyPerUnit = cfg.MaxMonthlyPerUnit
	e.RequiresApproval = cfg.RequiresApproval
	e.Fee = cfg.Fee
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// Deactivate takes the common area out of service for new reservations
func (e *EspacoComum) Deactivate() {
	e.Active = false
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// Activate puts the common area back in service
func (e *EspacoComum) Activate() {
	e.Active = true
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// GetFeeMoney returns the reservation fee as Money, or zero when unset
func (e *EspacoComum) GetFeeMoney() valueobject.Money {
	if e.Fee == nil {
		return valueobject.ZeroBRL()
	}
	return valueobject.NewMoneyBRL(*e.Fee)
}

// CheckWindow validates a requested [start, end) window against the
// configured rules. monthCount is the number of reservations the
// requesting unit already holds in the month containing start. Each
// violated rule fails with its own code; the first violation wins.
// Rules are evaluated against the configuration in force right now -
// existing reservations are never re-validated.
func (e *EspacoComum) CheckWindow(start, end, now time.Time, monthCount int) error {
	if !end.After(start) {
		return shared.NewDomainError(RuleCodeInvalidWindow, "Reservation end must be after its start")
	}
	if start.Before(now) {
		return shared.NewDomainError(RuleCodeInvalidWindow, "Reservation cannot start in the past")
	}

	duration := int(end.Sub(start).Minutes())
	if e.MinReservationMinutes != nil && duration < *e.MinReservationMinutes {
		return shared.NewDomainError(RuleCodeTooShort, fmt.Sprintf(
			"Reservation must last at least %d minutes", *e.MinReservationMinutes))
	}
	if e.MaxReservationMinutes != nil && duration > *e.MaxReservationMinutes {
		return shared.NewDomainError(RuleCodeTooLong, fmt.Sprintf(
			"Reservation cannot last more than %d minutes", *e.MaxReservationMinutes))
	}

	if e.OperatingStartMinute != nil && e.OperatingEndMinute != nil {
		sameDay := start.Year() == end.Year() && start.YearDay() == end.YearDay()
		startMin := start.Hour()*60 + start.Minute()
		endMin := end.Hour()*60 + end.Minute()
		if endMin == 0 && !sameDay {
			// an end at exactly midnight belongs to the previous day
			prev := end.Add(-time.Minute)
			sameDay = start.Year() == prev.Year() && start.YearDay() == prev.YearDay()
			endMin = 24 * 60
		}
		if !sameDay || startMin < *e.OperatingStartMinute || endMin > *e.OperatingEndMinute {
			return shared.NewDomainError(RuleCodeOutsideHours, fmt.Sprintf(
				"Reservation must fall within operating hours %s to %s",
				formatMinute(*e.OperatingStartMinute), formatMinute(*e.OperatingEndMinute)))
		}
	}

	if e.MaxAdvanceDays != nil {
		limit := now.AddDate(0, 0, *e.MaxAdvanceDays)
		if start.After(limit) {
			return shared.NewDomainError(RuleCodeTooFarInAdvance, fmt.Sprintf(
				"Reservation cannot be made more than %d days in advance", *e.MaxAdvanceDays))
		}
	}

	if e.MaxMonthlyPerUnit != nil && monthCount >= *e.MaxMonthlyPerUnit {
		return shared.NewDomainError(RuleCodeMonthlyLimit, fmt.Sprintf(
			"Unit already has %d reservations this month (limit %d)", monthCount, *e.MaxMonthlyPerUnit))
	}

	return nil
}

// InitialStatus returns the status a newly created reservation starts in
func (e *EspacoComum) InitialStatus() ReservaStatus {
	if e.RequiresApproval {
		return ReservaStatusPending
	}
	return ReservaStatusConfirmed
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
