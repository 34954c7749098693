package localstorage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	s, err := Open(path)
	require.NoError(t, err)

	cart := []map[string]any{
		{"product": "a1", "qty": 2.0, "price": 89.99},
		{"product": "b2", "qty": 1.0, "price": 599.99},
	}
	require.NoError(t, s.SetItem(KeyCartItems, cart))

	// simulate an app relaunch
	reopened, err := Open(path)
	require.NoError(t, err)

	var restored []map[string]any
	require.True(t, reopened.GetItem(KeyCartItems, &restored))
	assert.Equal(t, cart, restored)
}

func TestGetItemMissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "storage.json"))
	require.NoError(t, err)

	var out string
	assert.False(t, s.GetItem(KeyUserInfo, &out))
}

func TestRemoveItem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.SetItem(KeyUserInfo, map[string]string{"name": "John"}))
	require.NoError(t, s.RemoveItem(KeyUserInfo))

	var out map[string]string
	assert.False(t, s.GetItem(KeyUserInfo, &out))

	// removal persists across reopen
	reopened, err := Open(path)
	require.NoError(t, err)
	assert.False(t, reopened.GetItem(KeyUserInfo, &out))
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.NotNil(t, s)
}
