package assistant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileTokenStore(dir)
	require.NoError(t, err)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file reads as empty token")

	require.NoError(t, store.Save("abc.def.ghi"))

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// The credential lives under a fixed file name.
	raw, err := os.ReadFile(filepath.Join(dir, "adminToken"))
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", string(raw))

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Clear(), "clearing an absent token is not an error")
}

func TestFileTokenStorePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileTokenStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("secret"))

	info, err := os.Stat(filepath.Join(dir, "adminToken"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
