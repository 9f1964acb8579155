package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_SetGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("token", "abc.def.ghi"))
	require.NoError(t, s.Set("role", "ADMIN"))

	token, err := s.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	role, err := s.Get("role")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", role)
}

func TestStore_GetMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("token", "x"))
	require.NoError(t, s.Delete("token", "role"))
	require.NoError(t, s.Delete("token"))

	_, err := s.Get("token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStore_OverwriteValue(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("role", "USER"))
	require.NoError(t, s.Set("role", "ADMIN"))

	role, err := s.Get("role")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", role)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := New(path)
	require.NoError(t, first.Set("token", "persisted"))

	second := New(path)
	token, err := second.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)
}
