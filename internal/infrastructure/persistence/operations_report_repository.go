package persistence

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/report"
	"github.com/condo/backend/internal/domain/reservation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOperationsReportRepository implements OperationsReportRepository using
// GORM. Queries aggregate over the reserva and ocorrencia tables.
type GormOperationsReportRepository struct {
	db *gorm.DB
}

// NewGormOperationsReportRepository creates a new GormOperationsReportRepository
func NewGormOperationsReportRepository(db *gorm.DB) *GormOperationsReportRepository {
	return &GormOperationsReportRepository{db: db}
}

// GetEspacoUsage aggregates reservations per common area in the period
func (r *GormOperationsReportRepository) GetEspacoUsage(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) ([]report.EspacoUsageItem, error) {
	type usageRow struct {
		EspacoID uuid.UUID
		Status   reservation.ReservaStatus
		Count    int64
	}

	var rows []usageRow
	if err := r.db.WithContext(ctx).Table("reservas").
		Select("espaco_id, status, COUNT(*) as count").
		Where("condominium_id = ?", condominiumID).
		Where("starts_at >= ? AND starts_at < ?", periodStart, periodEnd).
		Group("espaco_id, status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byEspaco := make(map[uuid.UUID]*report.EspacoUsageItem)
	order := make([]uuid.UUID, 0)
	for _, row := range rows {
		item, ok := byEspaco[row.EspacoID]
		if !ok {
			item = &report.EspacoUsageItem{EspacoID: row.EspacoID}
			byEspaco[row.EspacoID] = item
			order = append(order, row.EspacoID)
		}
		switch row.Status {
		case reservation.ReservaStatusConfirmed:
			item.Confirmed = row.Count
		case reservation.ReservaStatusPending:
			item.Pending = row.Count
		case reservation.ReservaStatusCancelled:
			item.Cancelled = row.Count
		case reservation.ReservaStatusRejected:
			item.Rejected = row.Count
		}
	}

	items := make([]report.EspacoUsageItem, 0, len(order))
	for _, espacoID := range order {
		item := byEspaco[espacoID]

		var name string
		if err := r.db.WithContext(ctx).Table("espacos_comuns").
			Select("name").
			Where("id = ?", espacoID).
			Scan(&name).Error; err != nil {
			return nil, err
		}
		item.EspacoName = name

		// Hours booked by confirmed reservations in the period
		type windowRow struct {
			StartsAt time.Time
			EndsAt   time.Time
		}
		var windows []windowRow
		if err := r.db.WithContext(ctx).Table("reservas").
			Select("starts_at, ends_at").
			Where("condominium_id = ? AND espaco_id = ? AND status = ?",
				condominiumID, espacoID, reservation.ReservaStatusConfirmed).
			Where("starts_at >= ? AND starts_at < ?", periodStart, periodEnd).
			Scan(&windows).Error; err != nil {
			return nil, err
		}
		var hours float64
		for _, w := range windows {
			hours += w.EndsAt.Sub(w.StartsAt).Hours()
		}
		item.HoursReserved = hours

		items = append(items, *item)
	}
	return items, nil
}

// GetTicketCounts returns ticket counts grouped by status and category
func (r *GormOperationsReportRepository) GetTicketCounts(ctx context.Context, condominiumID uuid.UUID) (map[string]int64, map[string]int64, error) {
	type countRow struct {
		Key   string
		Count int64
	}

	var statusRows []countRow
	if err := r.db.WithContext(ctx).Table("ocorrencias").
		Select("status as key, COUNT(*) as count").
		Where("condominium_id = ?", condominiumID).
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, nil, err
	}

	var categoryRows []countRow
	if err := r.db.WithContext(ctx).Table("ocorrencias").
		Select("category as key, COUNT(*) as count").
		Where("condominium_id = ?", condominiumID).
		Group("category").
		Scan(&categoryRows).Error; err != nil {
		return nil, nil, err
	}

	byStatus := make(map[string]int64, len(statusRows))
	for _, row := range statusRows {
		byStatus[row.Key] = row.Count
	}
	byCategory := make(map[string]int64, len(categoryRows))
	for _, row := range categoryRows {
		byCategory[row.Key] = row.Count
	}
	return byStatus, byCategory, nil
}

// Ensure GormOperationsReportRepository implements OperationsReportRepository
var _ report.OperationsReportRepository = (*GormOperationsReportRepository)(nil)
