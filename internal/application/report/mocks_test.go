package report

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBillingReportRepository is a mock implementation of report.BillingReportRepository
type MockBillingReportRepository struct {
	mock.Mock
}

func (m *MockBillingReportRepository) GetBillingSummary(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) (*report.BillingSummary, error) {
	args := m.Called(ctx, condominiumID, periodStart, periodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.BillingSummary), args.Error(1)
}

func (m *MockBillingReportRepository) GetStatusBreakdown(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) ([]report.StatusBreakdownItem, error) {
	args := m.Called(ctx, condominiumID, periodStart, periodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.StatusBreakdownItem), args.Error(1)
}

func (m *MockBillingReportRepository) GetDelinquentUnits(ctx context.Context, condominiumID uuid.UUID, limit int) ([]report.DelinquentUnit, error) {
	args := m.Called(ctx, condominiumID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.DelinquentUnit), args.Error(1)
}

// MockOperationsReportRepository is a mock implementation of report.OperationsReportRepository
type MockOperationsReportRepository struct {
	mock.Mock
}

func (m *MockOperationsReportRepository) GetEspacoUsage(ctx context.Context, condominiumID uuid.UUID, periodStart, periodEnd time.Time) ([]report.EspacoUsageItem, error) {
	args := m.Called(ctx, condominiumID, periodStart, periodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.EspacoUsageItem), args.Error(1)
}

func (m *MockOperationsReportRepository) GetTicketCounts(ctx context.Context, condominiumID uuid.UUID) (map[string]int64, map[string]int64, error) {
	args := m.Called(ctx, condominiumID)
	var byStatus, byCategory map[string]int64
	if args.Get(0) != nil {
		byStatus = args.Get(0).(map[string]int64)
	}
	if args.Get(1) != nil {
		byCategory = args.Get(1).(map[string]int64)
	}
	return byStatus, byCategory, args.Error(2)
}
