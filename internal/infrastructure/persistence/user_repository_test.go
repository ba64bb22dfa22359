package persistence

import (
	"context"
	"testing"

	"github.com/condo/backend/internal/domain/identity"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{})
	require.NoError(t, err)

	return db
}

func newTestUser(t *testing.T, condominiumID uuid.UUID, email string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewActiveUser(condominiumID, email, "s3nha-Forte!", role)
	require.NoError(t, err)
	return user
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()
	condoID := uuid.New()

	user := newTestUser(t, condoID, "maria@example.com", identity.RoleMorador)
	require.NoError(t, repo.Save(ctx, user))

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, condoID, "Maria@Example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.True(t, found.VerifyPassword("s3nha-Forte!"))
	})

	t.Run("email is scoped to the condominium", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, uuid.New(), "maria@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("empty email is rejected", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, condoID, "")
		require.Error(t, err)
	})
}

func TestGormUserRepository_RolesRoundTrip(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()
	condoID := uuid.New()

	user := newTestUser(t, condoID, "sindico@example.com", identity.RoleMorador)
	require.NoError(t, user.AssignRole(identity.RoleSindico))
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByIDForCondo(ctx, condoID, user.ID)
	require.NoError(t, err)
	assert.True(t, found.HasRole(identity.RoleMorador))
	assert.True(t, found.HasRole(identity.RoleSindico))
	assert.False(t, found.HasRole(identity.RoleAdmin))

	t.Run("filter by role", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestUser(t, condoID, "porteiro@example.com", identity.RolePorteiro)))

		role := identity.RoleSindico
		users, err := repo.FindAllForCondo(ctx, condoID, identity.UserFilter{Role: &role})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "sindico@example.com", users[0].Email)
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()
	condoID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestUser(t, condoID, "joao@example.com", identity.RoleMorador)))

	exists, err := repo.ExistsByEmail(ctx, condoID, "JOAO@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, condoID, "outro@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEmail(ctx, uuid.New(), "joao@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
