package reservation

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/reservation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEspacoRepository is a mock implementation of reservation.EspacoRepository
type MockEspacoRepository struct {
	mock.Mock
}

func (m *MockEspacoRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.EspacoComum, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.EspacoComum), args.Error(1)
}

func (m *MockEspacoRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*reservation.EspacoComum, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.EspacoComum), args.Error(1)
}

func (m *MockEspacoRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter reservation.EspacoFilter) ([]*reservation.EspacoComum, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.EspacoComum), args.Error(1)
}

func (m *MockEspacoRepository) Save(ctx context.Context, espaco *reservation.EspacoComum) error {
	args := m.Called(ctx, espaco)
	return args.Error(0)
}

func (m *MockEspacoRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID) (int64, error) {
	args := m.Called(ctx, condominiumID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReservaRepository is a mock implementation of reservation.ReservaRepository
type MockReservaRepository struct {
	mock.Mock
}

func (m *MockReservaRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reserva, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reserva), args.Error(1)
}

func (m *MockReservaRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*reservation.Reserva, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reserva), args.Error(1)
}

func (m *MockReservaRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter reservation.ReservaFilter) ([]*reservation.Reserva, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reserva), args.Error(1)
}

func (m *MockReservaRepository) FindBlockingInWindow(ctx context.Context, espacoID uuid.UUID, start, end time.Time) ([]*reservation.Reserva, error) {
	args := m.Called(ctx, espacoID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reserva), args.Error(1)
}

func (m *MockReservaRepository) CountForUnitInMonth(ctx context.Context, espacoID, unitID uuid.UUID, ref time.Time) (int, error) {
	args := m.Called(ctx, espacoID, unitID, ref)
	return args.Int(0), args.Error(1)
}

func (m *MockReservaRepository) Save(ctx context.Context, reserva *reservation.Reserva) error {
	args := m.Called(ctx, reserva)
	return args.Error(0)
}

func (m *MockReservaRepository) SaveWithLock(ctx context.Context, reserva *reservation.Reserva) error {
	args := m.Called(ctx, reserva)
	return args.Error(0)
}

func (m *MockReservaRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter reservation.ReservaFilter) (int64, error) {
	args := m.Called(ctx, condominiumID, filter)
	return args.Get(0).(int64), args.Error(1)
}
