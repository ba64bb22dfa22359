package condominium

import (
	"context"

	"github.com/condo/backend/internal/domain/condominium"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCondominiumRepository is a mock implementation of condominium.CondominiumRepository
type MockCondominiumRepository struct {
	mock.Mock
}

func (m *MockCondominiumRepository) FindByID(ctx context.Context, id uuid.UUID) (*condominium.Condominium, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*condominium.Condominium), args.Error(1)
}

func (m *MockCondominiumRepository) FindByCode(ctx context.Context, code string) (*condominium.Condominium, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*condominium.Condominium), args.Error(1)
}

func (m *MockCondominiumRepository) FindAll(ctx context.Context, limit, offset int) ([]*condominium.Condominium, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*condominium.Condominium), args.Error(1)
}

func (m *MockCondominiumRepository) Save(ctx context.Context, condo *condominium.Condominium) error {
	args := m.Called(ctx, condo)
	return args.Error(0)
}

func (m *MockCondominiumRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCondominiumRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUnidadeRepository is a mock implementation of condominium.UnidadeRepository
type MockUnidadeRepository struct {
	mock.Mock
}

func (m *MockUnidadeRepository) FindByID(ctx context.Context, id uuid.UUID) (*condominium.Unidade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*condominium.Unidade), args.Error(1)
}

func (m *MockUnidadeRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*condominium.Unidade, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*condominium.Unidade), args.Error(1)
}

func (m *MockUnidadeRepository) FindByLabel(ctx context.Context, condominiumID uuid.UUID, bloco, numero string) (*condominium.Unidade, error) {
	args := m.Called(ctx, condominiumID, bloco, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*condominium.Unidade), args.Error(1)
}

func (m *MockUnidadeRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter condominium.UnidadeFilter) ([]*condominium.Unidade, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*condominium.Unidade), args.Error(1)
}

func (m *MockUnidadeRepository) FindByResident(ctx context.Context, condominiumID, userID uuid.UUID) ([]*condominium.Unidade, error) {
	args := m.Called(ctx, condominiumID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*condominium.Unidade), args.Error(1)
}

func (m *MockUnidadeRepository) Save(ctx context.Context, unidade *condominium.Unidade) error {
	args := m.Called(ctx, unidade)
	return args.Error(0)
}

func (m *MockUnidadeRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID) (int64, error) {
	args := m.Called(ctx, condominiumID)
	return args.Get(0).(int64), args.Error(1)
}
