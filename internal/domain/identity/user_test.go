package identity

import (
	"testing"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestNewUser(t *testing.T) {
	condoID := uuid.New()

	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser(condoID, "Maria.Silva@Example.com", "s3nh4segura", RoleMorador)

		require.NoError(t, err)
		assert.Equal(t, "maria.silva@example.com", user.Email)
		assert.Equal(t, UserStatusPending, user.Status)
		assert.Equal(t, []Role{RoleMorador}, user.Roles)
		assert.NotEqual(t, "s3nh4segura", user.PasswordHash)
		assert.True(t, user.VerifyPassword("s3nh4segura"))
		assert.False(t, user.VerifyPassword("errada"))
	})

	t.Run("active user", func(t *testing.T) {
		user, err := NewActiveUser(condoID, "sindico@example.com", "s3nh4segura", RoleSindico)
		require.NoError(t, err)
		assert.Equal(t, UserStatusActive, user.Status)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := NewUser(condoID, "nao-e-email", "s3nh4segura", RoleMorador)
		assertCode(t, err, "INVALID_EMAIL")
	})

	t.Run("short password", func(t *testing.T) {
		_, err := NewUser(condoID, "a@example.com", "curta", RoleMorador)
		assertCode(t, err, "INVALID_PASSWORD")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := NewUser(condoID, "a@example.com", "s3nh4segura", Role("ZELADOR"))
		assertCode(t, err, "INVALID_ROLE")
	})
}

func TestUser_Passwords(t *testing.T) {
	user, err := NewActiveUser(uuid.New(), "a@example.com", "senhaAntiga1", RoleMorador)
	require.NoError(t, err)

	t.Run("change with wrong old password", func(t *testing.T) {
		assertCode(t, user.ChangePassword("errada", "senhaNova123"), "INVALID_PASSWORD")
	})

	t.Run("change password", func(t *testing.T) {
		require.NoError(t, user.ChangePassword("senhaAntiga1", "senhaNova123"))
		assert.True(t, user.VerifyPassword("senhaNova123"))
		assert.False(t, user.VerifyPassword("senhaAntiga1"))
	})

	t.Run("admin reset clears must-change flag", func(t *testing.T) {
		user.MustChangePassword = true
		require.NoError(t, user.SetPassword("outraSenha99"))
		assert.False(t, user.MustChangePassword)
	})
}

func TestUser_Roles(t *testing.T) {
	user, err := NewActiveUser(uuid.New(), "a@example.com", "s3nh4segura", RoleMorador)
	require.NoError(t, err)

	require.NoError(t, user.AssignRole(RoleSindico))
	assert.True(t, user.HasRole(RoleSindico))
	assertCode(t, user.AssignRole(RoleSindico), "ROLE_ALREADY_ASSIGNED")

	require.NoError(t, user.RemoveRole(RoleMorador))
	assert.False(t, user.HasRole(RoleMorador))
	assertCode(t, user.RemoveRole(RolePorteiro), "ROLE_NOT_ASSIGNED")

	// the last role cannot be removed
	assertCode(t, user.RemoveRole(RoleSindico), "LAST_ROLE")
}

func TestUser_Lockout(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	user, err := NewActiveUser(uuid.New(), "a@example.com", "s3nh4segura", RoleMorador)
	require.NoError(t, err)

	for i := 0; i < MaxFailedAttempts-1; i++ {
		user.RecordFailedLogin(30*time.Minute, now)
		assert.Equal(t, UserStatusActive, user.Status)
	}

	user.RecordFailedLogin(30*time.Minute, now)
	assert.Equal(t, UserStatusLocked, user.Status)
	require.NotNil(t, user.LockedUntil)
	assert.False(t, user.CanLogin(now))

	// lock expires after the duration
	assert.True(t, user.CanLogin(now.Add(31*time.Minute)))

	user.RecordLogin("10.0.0.7", now.Add(31*time.Minute))
	assert.Equal(t, UserStatusActive, user.Status)
	assert.Zero(t, user.FailedAttempts)
	assert.Nil(t, user.LockedUntil)
	assert.Equal(t, "10.0.0.7", user.LastLoginIP)
}

func TestUser_ActivateDeactivate(t *testing.T) {
	user, err := NewUser(uuid.New(), "a@example.com", "s3nh4segura", RoleMorador)
	require.NoError(t, err)

	require.NoError(t, user.Activate())
	assertCode(t, user.Activate(), "ALREADY_ACTIVE")

	require.NoError(t, user.Deactivate())
	assertCode(t, user.Deactivate(), "ALREADY_DEACTIVATED")
	assert.False(t, user.CanLogin(time.Now()))
}
