package identity

import (
	"context"

	"github.com/condo/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, condominiumID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, condominiumID uuid.UUID, email string) (*identity.User, error) {
	args := m.Called(ctx, condominiumID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter identity.UserFilter) ([]*identity.User, error) {
	args := m.Called(ctx, condominiumID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, condominiumID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, condominiumID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CountForCondo(ctx context.Context, condominiumID uuid.UUID) (int64, error) {
	args := m.Called(ctx, condominiumID)
	return args.Get(0).(int64), args.Error(1)
}
