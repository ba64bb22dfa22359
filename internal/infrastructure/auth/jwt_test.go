package auth

import (
	"testing"
	"time"

	"github.com/condo/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-at-least-32-char",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "condo-backend",
		MaxRefreshCount:        5,
	})
}

func newTokenInput() GenerateTokenInput {
	return GenerateTokenInput{
		CondominiumID: uuid.New(),
		UserID:        uuid.New(),
		Email:         "sindico@example.com",
		Roles:         []string{"SINDICO"},
	}
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := newTokenInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()
	input := newTokenInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, input.CondominiumID.String(), claims.CondominiumID)
	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, input.Email, claims.Email)
	assert.Equal(t, []string{"SINDICO"}, claims.Roles)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(newTokenInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_ValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(newTokenInput())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_Garbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateAccessToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-completely-different-secret-value!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "condo-backend",
		MaxRefreshCount:        5,
	})

	pair, err := other.GenerateTokenPair(newTokenInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateAccessToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars",
		AccessTokenExpiration:  -1 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "condo-backend",
		MaxRefreshCount:        5,
	})

	pair, err := svc.GenerateTokenPair(newTokenInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := newTokenInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokenPair(pair.RefreshToken, input.Email, []string{"SINDICO", "MORADOR"})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, input.CondominiumID.String(), claims.CondominiumID)
	assert.Equal(t, []string{"SINDICO", "MORADOR"}, claims.Roles)

	refreshClaims, err := svc.ValidateRefreshToken(refreshed.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshClaims.RefreshCount)
}

func TestJWTService_RefreshTokenPair_MaxRefreshExceeded(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "condo-backend",
		MaxRefreshCount:        2,
	})
	input := newTokenInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	refreshToken := pair.RefreshToken
	for i := 0; i < 2; i++ {
		next, err := svc.RefreshTokenPair(refreshToken, input.Email, []string{"MORADOR"})
		require.NoError(t, err)
		refreshToken = next.RefreshToken
	}

	_, err = svc.RefreshTokenPair(refreshToken, input.Email, []string{"MORADOR"})
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestClaims_GetCondominiumUUID(t *testing.T) {
	svc := newTestJWTService()
	input := newTokenInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	condoUUID, err := claims.GetCondominiumUUID()
	require.NoError(t, err)
	assert.Equal(t, input.CondominiumID, condoUUID)

	userUUID, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, input.UserID, userUUID)
}

func TestClaims_RoleChecks(t *testing.T) {
	claims := &Claims{Roles: []string{"SINDICO", "MORADOR"}}

	assert.True(t, claims.HasRole("SINDICO"))
	assert.False(t, claims.HasRole("PORTEIRO"))
	assert.True(t, claims.HasAnyRole("PORTEIRO", "MORADOR"))
	assert.False(t, claims.HasAnyRole("PORTEIRO", "ADMIN"))
}
