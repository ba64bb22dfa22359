package communication

import (
	"context"

	"github.com/condo/backend/internal/domain/communication"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAvisoRepository is a mock implementation of communication.AvisoRepository
type MockAvisoRepository struct {
	mock.Mock
}

func (m *MockAvisoRepository) FindByID(ctx context.Context, id uuid.UUID) (*communication.Aviso, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*communication.Aviso), args.Error(1)
}

func (m *MockAvisoRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*communication.Aviso, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*communication.Aviso), args.Error(1)
}

func (m *MockAvisoRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter communication.AvisoFilter) ([]*communication.Aviso, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*communication.Aviso), args.Error(1)
}

func (m *MockAvisoRepository) Save(ctx context.Context, aviso *communication.Aviso) error {
	args := m.Called(ctx, aviso)
	return args.Error(0)
}

func (m *MockAvisoRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter communication.AvisoFilter) (int64, error) {
	args := m.Called(ctx, condominiumID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockEnqueteRepository is a mock implementation of communication.EnqueteRepository
type MockEnqueteRepository struct {
	mock.Mock
}

func (m *MockEnqueteRepository) FindByID(ctx context.Context, id uuid.UUID) (*communication.Enquete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*communication.Enquete), args.Error(1)
}

func (m *MockEnqueteRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*communication.Enquete, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*communication.Enquete), args.Error(1)
}

func (m *MockEnqueteRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter communication.EnqueteFilter) ([]*communication.Enquete, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*communication.Enquete), args.Error(1)
}

func (m *MockEnqueteRepository) Save(ctx context.Context, enquete *communication.Enquete) error {
	args := m.Called(ctx, enquete)
	return args.Error(0)
}

func (m *MockEnqueteRepository) SaveWithLock(ctx context.Context, enquete *communication.Enquete) error {
	args := m.Called(ctx, enquete)
	return args.Error(0)
}

func (m *MockEnqueteRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter communication.EnqueteFilter) (int64, error) {
	args := m.Called(ctx, condominiumID, filter)
	return args.Get(0).(int64), args.Error(1)
}
