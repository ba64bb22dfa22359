package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BillingReportRepository runs read-only billing queries. Implementations
// aggregate directly over the boleto and acordo tables.
type BillingReportRepository interface {
	// GetBillingSummary aggregates boletos whose due date falls in the period
	GetBillingSummary(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) (*BillingSummary, error)

	// GetStatusBreakdown counts and sums boletos per status for the period
	GetStatusBreakdown(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) ([]StatusBreakdownItem, error)

	// GetDelinquentUnits lists units with overdue boletos ordered by
	// outstanding amount, largest first
	GetDelinquentUnits(ctx context.Context, condominiumID uuid.UUID, limit int) ([]DelinquentUnit, error)
}

// OperationsReportRepository runs read-only queries over reservations and
// tickets.
type OperationsReportRepository interface {
	// GetEspacoUsage aggregates reservations per common area in the period
	GetEspacoUsage(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) ([]EspacoUsageItem, error)

	// GetTicketCounts returns ticket counts grouped by status and category
	GetTicketCounts(ctx context.Context, condominiumID uuid.UUID) (byStatus map[string]int64, byCategory map[string]int64, err error)
}
