package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingSummary is a read model summarizing boleto billing for a period
type BillingSummary struct {
	CondominiumID  uuid.UUID       `json:"condominium_id"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	TotalBilled    decimal.Decimal `json:"total_billed"`    // sum of boletos issued in the period
	TotalCollected decimal.Decimal `json:"total_collected"` // sum of payments received in the period
	TotalOverdue   decimal.Decimal `json:"total_overdue"`   // outstanding amount past due
	BoletoCount    int64           `json:"boleto_count"`
	PaidCount      int64           `json:"paid_count"`
	OverdueCount   int64           `json:"overdue_count"`
	CollectionRate decimal.Decimal `json:"collection_rate"` // TotalCollected / TotalBilled * 100
}

// StatusBreakdownItem is one row of the per-status boleto breakdown
type StatusBreakdownItem struct {
	Status string          `json:"status"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// DelinquentUnit is one row of the delinquency report
type DelinquentUnit struct {
	UnitID        uuid.UUID       `json:"unit_id"`
	UnitLabel     string          `json:"unit_label"`
	OverdueCount  int64           `json:"overdue_count"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
	OldestDueDate time.Time       `json:"oldest_due_date"`
	HasAgreement  bool            `json:"has_agreement"` // an active installment agreement exists
}

// DelinquencyReport lists units with overdue boletos, worst first
type DelinquencyReport struct {
	CondominiumID uuid.UUID        `json:"condominium_id"`
	GeneratedAt   time.Time        `json:"generated_at"`
	TotalOverdue  decimal.Decimal  `json:"total_overdue"`
	Units         []DelinquentUnit `json:"units"`
}
