package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T, dir string) *Store {
	t.Helper()
	stash, err := NewFileStash(dir)
	require.NoError(t, err)
	store, err := NewStore(stash)
	require.NoError(t, err)
	return store
}

func TestStoreStartsUnauthenticated(t *testing.T) {
	store := newFileStore(t, t.TempDir())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Current())
}

func TestTokenSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store := newFileStore(t, dir)
	require.NoError(t, store.Set("jwt-abc"))
	assert.True(t, store.IsAuthenticated())

	// Simulated reload: a fresh store over the same stash.
	reloaded := newFileStore(t, dir)
	assert.Equal(t, "jwt-abc", reloaded.Current())
	assert.True(t, reloaded.IsAuthenticated())
}

func TestClearRemovesToken(t *testing.T) {
	dir := t.TempDir()

	store := newFileStore(t, dir)
	require.NoError(t, store.Set("jwt-abc"))
	require.NoError(t, store.Clear())
	assert.False(t, store.IsAuthenticated())

	reloaded := newFileStore(t, dir)
	assert.Empty(t, reloaded.Current())
}

func TestMutationsBroadcast(t *testing.T) {
	store := newFileStore(t, t.TempDir())

	var seen []string
	store.Subscribe(func(token string) {
		seen = append(seen, token)
	})

	require.NoError(t, store.Set("first"))
	require.NoError(t, store.Set("second"))
	require.NoError(t, store.Clear())

	assert.Equal(t, []string{"first", "second", ""}, seen)
}

func TestClearIsIdempotent(t *testing.T) {
	store := newFileStore(t, t.TempDir())
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
