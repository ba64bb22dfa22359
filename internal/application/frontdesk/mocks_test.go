package frontdesk

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVisitaRepository is a mock implementation of frontdesk.VisitaRepository
type MockVisitaRepository struct {
	mock.Mock
}

func (m *MockVisitaRepository) FindByID(ctx context.Context, id uuid.UUID) (*frontdesk.Visita, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*frontdesk.Visita), args.Error(1)
}

func (m *MockVisitaRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*frontdesk.Visita, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*frontdesk.Visita), args.Error(1)
}

func (m *MockVisitaRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter frontdesk.VisitaFilter) ([]*frontdesk.Visita, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*frontdesk.Visita), args.Error(1)
}

func (m *MockVisitaRepository) Save(ctx context.Context, visita *frontdesk.Visita) error {
	args := m.Called(ctx, visita)
	return args.Error(0)
}

func (m *MockVisitaRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter frontdesk.VisitaFilter) (int64, error) {
	args := m.Called(ctx, condominiumID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockEncomendaRepository is a mock implementation of frontdesk.EncomendaRepository
type MockEncomendaRepository struct {
	mock.Mock
}

func (m *MockEncomendaRepository) FindByID(ctx context.Context, id uuid.UUID) (*frontdesk.Encomenda, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*frontdesk.Encomenda), args.Error(1)
}

func (m *MockEncomendaRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*frontdesk.Encomenda, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*frontdesk.Encomenda), args.Error(1)
}

func (m *MockEncomendaRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter frontdesk.EncomendaFilter) ([]*frontdesk.Encomenda, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*frontdesk.Encomenda), args.Error(1)
}

func (m *MockEncomendaRepository) FindPendingOlderThan(ctx context.Context, condominiumID uuid.UUID, cutoff time.Time) ([]*frontdesk.Encomenda, error) {
	args := m.Called(ctx, condominiumID, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*frontdesk.Encomenda), args.Error(1)
}

func (m *MockEncomendaRepository) Save(ctx context.Context, encomenda *frontdesk.Encomenda) error {
	args := m.Called(ctx, encomenda)
	return args.Error(0)
}

func (m *MockEncomendaRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter frontdesk.EncomendaFilter) (int64, error) {
	args := m.Called(ctx, condominiumID, filter)
	return args.Get(0).(int64), args.Error(1)
}
