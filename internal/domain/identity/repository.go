package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserFilter carries query options for user listings
type UserFilter struct {
	Role   *Role
	Status *UserStatus
	UnitID *uuid.UUID
	Search string
	Limit  int
	Offset int
}

// UserRepository persists users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, condominiumID uuid.UUID, email string) (*User, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter UserFilter) ([]*User, error)
	Save(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, condominiumID uuid.UUID, email string) (bool, error)
	CountForCondo(ctx context.Context, condominiumID uuid.UUID) (int64, error)
}
