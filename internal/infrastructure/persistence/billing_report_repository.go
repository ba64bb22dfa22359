package persistence

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBillingReportRepository implements BillingReportRepository using GORM.
// Queries aggregate directly over the boleto and acordo tables.
type GormBillingReportRepository struct {
	db *gorm.DB
}

// NewGormBillingReportRepository creates a new GormBillingReportRepository
func NewGormBillingReportRepository(db *gorm.DB) *GormBillingReportRepository {
	return &GormBillingReportRepository{db: db}
}

// GetBillingSummary aggregates boletos whose due date falls in the period
func (r *GormBillingReportRepository) GetBillingSummary(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) (*report.BillingSummary, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Table("boletos").
			Where("condominium_id = ?", condominiumID).
			Where("due_date >= ? AND due_date < ?", periodStart, periodEnd)
	}

	var totalBilled decimal.Decimal
	if err := base().
		Select("COALESCE(SUM(amount), 0)").
		Where("status <> ?", billing.BoletoStatusCancelled).
		Scan(&totalBilled).Error; err != nil {
		return nil, err
	}

	var totalCollected decimal.Decimal
	if err := base().
		Select("COALESCE(SUM(amount_paid), 0)").
		Where("status = ?", billing.BoletoStatusPaid).
		Scan(&totalCollected).Error; err != nil {
		return nil, err
	}

	var totalOverdue decimal.Decimal
	if err := base().
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", billing.BoletoStatusOverdue).
		Scan(&totalOverdue).Error; err != nil {
		return nil, err
	}

	var boletoCount, paidCount, overdueCount int64
	if err := base().
		Where("status <> ?", billing.BoletoStatusCancelled).
		Count(&boletoCount).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", billing.BoletoStatusPaid).Count(&paidCount).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", billing.BoletoStatusOverdue).Count(&overdueCount).Error; err != nil {
		return nil, err
	}

	collectionRate := decimal.Zero
	if totalBilled.IsPositive() {
		collectionRate = totalCollected.Div(totalBilled).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &report.BillingSummary{
		CondominiumID:  condominiumID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		TotalBilled:    totalBilled,
		TotalCollected: totalCollected,
		TotalOverdue:   totalOverdue,
		BoletoCount:    boletoCount,
		PaidCount:      paidCount,
		OverdueCount:   overdueCount,
		CollectionRate: collectionRate,
	}, nil
}

// GetStatusBreakdown counts and sums boletos per status for the period
func (r *GormBillingReportRepository) GetStatusBreakdown(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) ([]report.StatusBreakdownItem, error) {
	var items []report.StatusBreakdownItem
	if err := r.db.WithContext(ctx).Table("boletos").
		Select("status, COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").
		Where("condominium_id = ?", condominiumID).
		Where("due_date >= ? AND due_date < ?", periodStart, periodEnd).
		Group("status").
		Order("status ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetDelinquentUnits lists units with overdue boletos ordered by
// outstanding amount, largest first
func (r *GormBillingReportRepository) GetDelinquentUnits(ctx context.Context, condominiumID uuid.UUID, limit int) ([]report.DelinquentUnit, error) {
	if limit <= 0 {
		limit = 20
	}

	type delinquentRow struct {
		UnitID        uuid.UUID
		OverdueCount  int64
		OverdueAmount decimal.Decimal
		OldestDueDate time.Time
	}

	var rows []delinquentRow
	if err := r.db.WithContext(ctx).Table("boletos").
		Select("unit_id, COUNT(*) as overdue_count, COALESCE(SUM(amount), 0) as overdue_amount, MIN(due_date) as oldest_due_date").
		Where("condominium_id = ? AND status = ?", condominiumID, billing.BoletoStatusOverdue).
		Group("unit_id").
		Order("overdue_amount DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	units := make([]report.DelinquentUnit, len(rows))
	for i, row := range rows {
		var label struct {
			Bloco  string
			Numero string
		}
		if err := r.db.WithContext(ctx).Table("unidades").
			Select("bloco, numero").
			Where("id = ?", row.UnitID).
			Scan(&label).Error; err != nil {
			return nil, err
		}

		var agreements int64
		if err := r.db.WithContext(ctx).Table("acordos").
			Where("condominium_id = ? AND unit_id = ? AND status = ?",
				condominiumID, row.UnitID, billing.AcordoStatusActive).
			Count(&agreements).Error; err != nil {
			return nil, err
		}

		unitLabel := label.Numero
		if label.Bloco != "" {
			unitLabel = label.Bloco + "-" + label.Numero
		}

		units[i] = report.DelinquentUnit{
			UnitID:        row.UnitID,
			UnitLabel:     unitLabel,
			OverdueCount:  row.OverdueCount,
			OverdueAmount: row.OverdueAmount,
			OldestDueDate: row.OldestDueDate,
			HasAgreement:  agreements > 0,
		}
	}
	return units, nil
}

// Ensure GormBillingReportRepository implements BillingReportRepository
var _ report.BillingReportRepository = (*GormBillingReportRepository)(nil)
