package assistant

import (
	"context"
	"fmt"
)

// Authenticator is the login exchange the cache falls back to when no
// cached credential exists.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// AuthFailure is returned when credential acquisition fails. The cached
// value is always cleared first; the caller is never left with a stale
// token after a failed refresh.
type AuthFailure struct {
	Reason string
}

func (e *AuthFailure) Error() string {
	return "admin login failed: " + e.Reason
}

// TokenCache owns the bearer credential used for privileged portal calls.
// Expiry is never checked proactively; a credential lives until an
// authorized call rejects it, at which point the executor invalidates and
// forces a refresh.
type TokenCache struct {
	auth     Authenticator
	store    TokenStore
	email    string
	password string
	token    string
}

// NewTokenCache builds a cache for the fixed operator identity.
func NewTokenCache(auth Authenticator, store TokenStore, email, password string) *TokenCache {
	return &TokenCache{auth: auth, store: store, email: email, password: password}
}

// Acquire returns the cached credential when one exists and forceRefresh is
// false, with no network interaction. Otherwise it authenticates, persists
// the new token and returns it. On failure any cached value is dropped and
// an AuthFailure is returned.
func (c *TokenCache) Acquire(ctx context.Context, forceRefresh bool) (string, error) {
	if !forceRefresh {
		if c.token != "" {
			return c.token, nil
		}
		if stored, err := c.store.Load(); err == nil && stored != "" {
			c.token = stored
			return stored, nil
		}
	}

	token, err := c.auth.Authenticate(ctx, c.email, c.password)
	if err != nil {
		c.Invalidate()
		return "", &AuthFailure{Reason: reasonFor(err)}
	}

	c.token = token
	_ = c.store.Save(token)
	return token, nil
}

// Invalidate drops the cached credential and its persisted copy.
func (c *TokenCache) Invalidate() {
	c.token = ""
	_ = c.store.Clear()
}

func reasonFor(err error) string {
	if re, ok := err.(*RemoteError); ok {
		return re.Message
	}
	return fmt.Sprintf("login request failed: %v", err)
}
