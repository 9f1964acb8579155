package session

import (
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusrx24/Turf-2025/internal/infra/localstore"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	store := localstore.New(filepath.Join(t.TempDir(), "session.json"))
	return New(store, noopLogger{})
}

// signedToken собирает валидно выглядящий JWT; подпись не проверяется сессией
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSession_Unauthenticated(t *testing.T) {
	s := newTestSession(t)

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.False(t, s.IsUser())
}

func TestSession_AdminRoleDerivedFromClaims(t *testing.T) {
	s := newTestSession(t)

	token := signedToken(t, jwt.MapClaims{"sub": "admin@turf.io", "roles": []string{"USER", "ADMIN"}})
	require.NoError(t, s.SaveToken(token))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.False(t, s.IsUser())
}

func TestSession_UserRoleDerivedFromClaims(t *testing.T) {
	s := newTestSession(t)

	token := signedToken(t, jwt.MapClaims{"sub": "user@turf.io", "roles": []string{"USER"}})
	require.NoError(t, s.SaveToken(token))

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.True(t, s.IsUser())
}

func TestSession_TokenWithoutRoleClaimStaysAuthenticated(t *testing.T) {
	s := newTestSession(t)

	token := signedToken(t, jwt.MapClaims{"sub": "someone@turf.io"})
	require.NoError(t, s.SaveToken(token))

	// Аутентифицирован, но role-gated UI скрыт
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.False(t, s.IsUser())
}

func TestSession_UndecodableTokenStaysAuthenticated(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.SaveToken("not-a-jwt-at-all"))

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.False(t, s.IsUser())
}

func TestSession_StaleRoleIgnoredWithoutToken(t *testing.T) {
	store := localstore.New(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Set("role", "ADMIN"))

	s := New(store, noopLogger{})

	// Роль без токена не имеет силы
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}

func TestSession_NewTokenClearsStaleRole(t *testing.T) {
	store := localstore.New(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Set("role", "ADMIN"))
	s := New(store, noopLogger{})

	token := signedToken(t, jwt.MapClaims{"sub": "someone@turf.io"})
	require.NoError(t, s.SaveToken(token))

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}

func TestSession_LogoutIsIdempotent(t *testing.T) {
	s := newTestSession(t)

	token := signedToken(t, jwt.MapClaims{"roles": []string{"ADMIN"}})
	require.NoError(t, s.SaveToken(token))
	require.True(t, s.IsAuthenticated())

	require.NoError(t, s.Logout())
	require.NoError(t, s.Logout())

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}
