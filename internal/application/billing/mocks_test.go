package billing

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBoletoRepository is a mock implementation of billing.BoletoRepository
type MockBoletoRepository struct {
	mock.Mock
}

func (m *MockBoletoRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Boleto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Boleto), args.Error(1)
}

func (m *MockBoletoRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*billing.Boleto, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Boleto), args.Error(1)
}

func (m *MockBoletoRepository) FindByNumber(ctx context.Context, condominiumID uuid.UUID, boletoNumber string) (*billing.Boleto, error) {
	args := m.Called(ctx, condominiumID, boletoNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Boleto), args.Error(1)
}

func (m *MockBoletoRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter billing.BoletoFilter) ([]billing.Boleto, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Boleto), args.Error(1)
}

func (m *MockBoletoRepository) FindByUnit(ctx context.Context, condominiumID, unitID uuid.UUID, filter billing.BoletoFilter) ([]billing.Boleto, error) {
	args := m.Called(ctx, condominiumID, unitID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Boleto), args.Error(1)
}

func (m *MockBoletoRepository) FindDueForOverdueSweep(ctx context.Context, condominiumID uuid.UUID, before time.Time) ([]*billing.Boleto, error) {
	args := m.Called(ctx, condominiumID, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Boleto), args.Error(1)
}

func (m *MockBoletoRepository) Save(ctx context.Context, boleto *billing.Boleto) error {
	args := m.Called(ctx, boleto)
	return args.Error(0)
}

func (m *MockBoletoRepository) SaveWithLock(ctx context.Context, boleto *billing.Boleto) error {
	args := m.Called(ctx, boleto)
	return args.Error(0)
}

func (m *MockBoletoRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter billing.BoletoFilter) (int64, error) {
	args := m.Called(ctx, condominiumID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBoletoRepository) CountByStatus(ctx context.Context, condominiumID uuid.UUID, status billing.BoletoStatus) (int64, error) {
	args := m.Called(ctx, condominiumID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBoletoRepository) SumByStatus(ctx context.Context, condominiumID uuid.UUID, status billing.BoletoStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, condominiumID, status)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBoletoRepository) SumPaidBetween(ctx context.Context, condominiumID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, condominiumID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBoletoRepository) ExistsByNumber(ctx context.Context, condominiumID uuid.UUID, boletoNumber string) (bool, error) {
	args := m.Called(ctx, condominiumID, boletoNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoletoRepository) NextBoletoNumber(ctx context.Context, condominiumID uuid.UUID) (string, error) {
	args := m.Called(ctx, condominiumID)
	return args.String(0), args.Error(1)
}

// MockAcordoRepository is a mock implementation of billing.AcordoRepository
type MockAcordoRepository struct {
	mock.Mock
}

func (m *MockAcordoRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Acordo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Acordo), args.Error(1)
}

func (m *MockAcordoRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*billing.Acordo, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Acordo), args.Error(1)
}

func (m *MockAcordoRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter billing.AcordoFilter) ([]billing.Acordo, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Acordo), args.Error(1)
}

func (m *MockAcordoRepository) FindByUnit(ctx context.Context, condominiumID, unitID uuid.UUID, filter billing.AcordoFilter) ([]billing.Acordo, error) {
	args := m.Called(ctx, condominiumID, unitID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Acordo), args.Error(1)
}

func (m *MockAcordoRepository) Save(ctx context.Context, acordo *billing.Acordo) error {
	args := m.Called(ctx, acordo)
	return args.Error(0)
}

func (m *MockAcordoRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter billing.AcordoFilter) (int64, error) {
	args := m.Called(ctx, condominiumID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAcordoRepository) NextAcordoNumber(ctx context.Context, condominiumID uuid.UUID) (string, error) {
	args := m.Called(ctx, condominiumID)
	return args.String(0), args.Error(1)
}
