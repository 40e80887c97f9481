package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAuth struct {
	tokens []string
	err    error
	calls  int
}

func (a *scriptedAuth) Authenticate(context.Context, string, string) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	token := a.tokens[0]
	if len(a.tokens) > 1 {
		a.tokens = a.tokens[1:]
	}
	return token, nil
}

func TestTokenCacheReusesCachedToken(t *testing.T) {
	auth := &scriptedAuth{tokens: []string{"t1"}}
	cache := NewTokenCache(auth, &MemoryTokenStore{}, "admin@abcit.com", "admin123")

	first, err := cache.Acquire(context.Background(), false)
	require.NoError(t, err)
	second, err := cache.Acquire(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, "t1", first)
	assert.Equal(t, "t1", second)
	assert.Equal(t, 1, auth.calls, "cached token must not trigger another login")
}

// A token present in the store is used as-is, with no login and no expiry
// inspection.
func TestTokenCacheLoadsStoredToken(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save("persisted"))

	auth := &scriptedAuth{tokens: []string{"never"}}
	cache := NewTokenCache(auth, store, "admin@abcit.com", "admin123")

	token, err := cache.Acquire(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)
	assert.Zero(t, auth.calls)
}

func TestTokenCacheForceRefreshBypassesCache(t *testing.T) {
	auth := &scriptedAuth{tokens: []string{"t1", "t2"}}
	store := &MemoryTokenStore{}
	cache := NewTokenCache(auth, store, "admin@abcit.com", "admin123")

	_, err := cache.Acquire(context.Background(), false)
	require.NoError(t, err)

	token, err := cache.Acquire(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "t2", token)
	assert.Equal(t, 2, auth.calls)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "t2", stored, "refreshed token must be persisted")
}

func TestTokenCacheFailureClearsEverything(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save("stale"))

	auth := &scriptedAuth{err: errors.New("connection refused")}
	cache := NewTokenCache(auth, store, "admin@abcit.com", "admin123")

	_, err := cache.Acquire(context.Background(), true)

	var authErr *AuthFailure
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Error(), "admin login failed")

	stored, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, stored, "failed refresh must not leave a stale token behind")

	token, err := cache.Acquire(context.Background(), false)
	var again *AuthFailure
	require.ErrorAs(t, err, &again)
	assert.Empty(t, token)
}

func TestTokenCacheInvalidate(t *testing.T) {
	auth := &scriptedAuth{tokens: []string{"t1", "t2"}}
	store := &MemoryTokenStore{}
	cache := NewTokenCache(auth, store, "admin@abcit.com", "admin123")

	_, err := cache.Acquire(context.Background(), false)
	require.NoError(t, err)

	cache.Invalidate()
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)

	token, err := cache.Acquire(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "t2", token)
}

func TestTokenCacheReportsServerMessage(t *testing.T) {
	auth := &scriptedAuth{err: &RemoteError{StatusCode: 400, Message: "Invalid credentials"}}
	cache := NewTokenCache(auth, &MemoryTokenStore{}, "admin@abcit.com", "wrong")

	_, err := cache.Acquire(context.Background(), false)
	var authErr *AuthFailure
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "admin login failed: Invalid credentials", authErr.Error())
}
