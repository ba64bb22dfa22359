package report

import (
	"context"
	"testing"
	"time"

	"github.com/condo/backend/internal/domain/report"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_GetBillingSummary(t *testing.T) {
	condoID := uuid.New()
	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	billingRepo := new(MockBillingReportRepository)
	billingRepo.On("GetBillingSummary", mock.Anything, condoID, periodStart, periodEnd).Return(&report.BillingSummary{
		CondominiumID:  condoID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		TotalBilled:    decimal.RequireFromString("50000.00"),
		TotalCollected: decimal.RequireFromString("42500.00"),
		TotalOverdue:   decimal.RequireFromString("4200.00"),
		BoletoCount:    100,
		PaidCount:      85,
		OverdueCount:   8,
	}, nil)
	billingRepo.On("GetStatusBreakdown", mock.Anything, condoID, periodStart, periodEnd).Return([]report.StatusBreakdownItem{
		{Status: "PAID", Count: 85, Amount: decimal.RequireFromString("42500.00")},
		{Status: "OVERDUE", Count: 8, Amount: decimal.RequireFromString("4200.00")},
	}, nil)

	svc := NewReportService(billingRepo, new(MockOperationsReportRepository))

	resp, err := svc.GetBillingSummary(context.Background(), condoID, PeriodFilter{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})

	require.NoError(t, err)
	assert.True(t, resp.Summary.CollectionRate.Equal(decimal.RequireFromString("85.00")),
		"got %s", resp.Summary.CollectionRate)
	assert.Len(t, resp.Breakdown, 2)
}

func TestReportService_GetBillingSummary_ZeroBilled(t *testing.T) {
	condoID := uuid.New()
	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	billingRepo := new(MockBillingReportRepository)
	billingRepo.On("GetBillingSummary", mock.Anything, condoID, periodStart, periodEnd).Return(&report.BillingSummary{
		TotalBilled:    decimal.Zero,
		TotalCollected: decimal.Zero,
	}, nil)
	billingRepo.On("GetStatusBreakdown", mock.Anything, condoID, periodStart, periodEnd).Return([]report.StatusBreakdownItem{}, nil)

	svc := NewReportService(billingRepo, new(MockOperationsReportRepository))

	resp, err := svc.GetBillingSummary(context.Background(), condoID, PeriodFilter{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})

	require.NoError(t, err)
	assert.True(t, resp.Summary.CollectionRate.IsZero())
}

func TestReportService_GetBillingSummary_InvalidPeriod(t *testing.T) {
	svc := NewReportService(new(MockBillingReportRepository), new(MockOperationsReportRepository))
	now := time.Now()

	_, err := svc.GetBillingSummary(context.Background(), uuid.New(), PeriodFilter{
		PeriodStart: now,
		PeriodEnd:   now.AddDate(0, -1, 0),
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PERIOD", domainErr.Code)
}

func TestReportService_GetDelinquencyReport(t *testing.T) {
	condoID := uuid.New()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	billingRepo := new(MockBillingReportRepository)
	billingRepo.On("GetDelinquentUnits", mock.Anything, condoID, 100).Return([]report.DelinquentUnit{
		{UnitLabel: "B2-104", OverdueCount: 3, OverdueAmount: decimal.RequireFromString("2400.00"), HasAgreement: false},
		{UnitLabel: "A-12", OverdueCount: 1, OverdueAmount: decimal.RequireFromString("800.00"), HasAgreement: true},
	}, nil)

	svc := NewReportService(billingRepo, new(MockOperationsReportRepository))
	svc.SetClock(func() time.Time { return now })

	resp, err := svc.GetDelinquencyReport(context.Background(), condoID, 0)

	require.NoError(t, err)
	assert.Equal(t, now, resp.GeneratedAt)
	assert.True(t, resp.TotalOverdue.Equal(decimal.RequireFromString("3200.00")))
	require.Len(t, resp.Units, 2)
	assert.Equal(t, "B2-104", resp.Units[0].UnitLabel)
}

func TestReportService_GetTicketSummary(t *testing.T) {
	condoID := uuid.New()

	operationsRepo := new(MockOperationsReportRepository)
	operationsRepo.On("GetTicketCounts", mock.Anything, condoID).Return(
		map[string]int64{"OPEN": 4, "RESOLVED": 11},
		map[string]int64{"MAINTENANCE": 9, "NOISE": 6},
		nil,
	)

	svc := NewReportService(new(MockBillingReportRepository), operationsRepo)

	resp, err := svc.GetTicketSummary(context.Background(), condoID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ByStatus["OPEN"])
	assert.Equal(t, int64(9), resp.ByCategory["MAINTENANCE"])
}
