package ticket

import (
	"context"

	"github.com/condo/backend/internal/domain/ticket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOcorrenciaRepository is a mock implementation of ticket.OcorrenciaRepository
type MockOcorrenciaRepository struct {
	mock.Mock
}

func (m *MockOcorrenciaRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ocorrencia, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ocorrencia), args.Error(1)
}

func (m *MockOcorrenciaRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*ticket.Ocorrencia, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ocorrencia), args.Error(1)
}

func (m *MockOcorrenciaRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter ticket.OcorrenciaFilter) ([]*ticket.Ocorrencia, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ocorrencia), args.Error(1)
}

func (m *MockOcorrenciaRepository) Save(ctx context.Context, ocorrencia *ticket.Ocorrencia) error {
	args := m.Called(ctx, ocorrencia)
	return args.Error(0)
}

func (m *MockOcorrenciaRepository) CountByStatus(ctx context.Context, condominiumID uuid.UUID) (map[ticket.OcorrenciaStatus]int64, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[ticket.OcorrenciaStatus]int64), args.Error(1)
}

func (m *MockOcorrenciaRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter ticket.OcorrenciaFilter) (int64, error) {
	args := m.Called(ctx, condominiumID, filter)
	return args.Get(0).(int64), args.Error(1)
}
