package admin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushpakoirala/portfolio-api/pkg/logger"
	"github.com/pushpakoirala/portfolio-api/pkg/portfolio"
)

func TestLoginPersistsSessionAcrossRestart(t *testing.T) {
	fake := newFakeAPI()
	srv := fake.server()
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewSessionStore(path, logger.NewNop())
	require.NoError(t, err)
	assert.False(t, store.Authenticated())

	client := portfolio.New(srv.URL, store)
	user, err := store.Login(t.Context(), client.Auth(), "admin", "Admin@2025")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, store.Authenticated())

	// A fresh store reading the same file resumes the session.
	reloaded, err := NewSessionStore(path, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, store.Token(), reloaded.Token())
	u, ok := reloaded.User()
	require.True(t, ok)
	assert.Equal(t, "admin", u.Username)
}

func TestLoginFailureLeavesSessionUnauthenticated(t *testing.T) {
	fake := newFakeAPI()
	srv := fake.server()
	defer srv.Close()

	store, err := NewSessionStore(filepath.Join(t.TempDir(), "session.json"), logger.NewNop())
	require.NoError(t, err)

	client := portfolio.New(srv.URL, store)
	_, err = store.Login(t.Context(), client.Auth(), "admin", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password", err.(*portfolio.APIError).Message)
	assert.False(t, store.Authenticated())
}

func TestChangeUsernameSwapsTokenAtomically(t *testing.T) {
	_, _, store, client := newTestStack(t)

	oldToken := store.Token()
	user, err := store.ChangeUsername(t.Context(), client.Auth(), "admin2", "Admin@2025")
	require.NoError(t, err)
	assert.Equal(t, "admin2", user.Username)
	assert.NotEqual(t, oldToken, store.Token())

	// The fake invalidates the old token, so this only succeeds if the
	// client is already sending the replacement.
	_, err = client.Messages().List(t.Context(), "")
	require.NoError(t, err)

	u, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "admin2", u.Username)
}

func TestChangeUsernameWrongPasswordKeepsSession(t *testing.T) {
	_, _, store, client := newTestStack(t)

	oldToken := store.Token()
	_, err := store.ChangeUsername(t.Context(), client.Auth(), "admin2", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", err.(*portfolio.APIError).Message)
	assert.Equal(t, oldToken, store.Token())

	u, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "admin", u.Username)

	// Old token still valid.
	_, err = client.Messages().List(t.Context(), "")
	require.NoError(t, err)
}

func TestChangePasswordKeepsToken(t *testing.T) {
	_, _, store, client := newTestStack(t)

	oldToken := store.Token()
	require.NoError(t, store.ChangePassword(t.Context(), client.Auth(), "Admin@2025", "NewPass@2026"))
	assert.Equal(t, oldToken, store.Token())

	err := store.ChangePassword(t.Context(), client.Auth(), "Admin@2025", "whatever")
	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", err.(*portfolio.APIError).Message)
}

func TestLogoutClearsSessionFile(t *testing.T) {
	_, _, store, client := newTestStack(t)

	require.NoError(t, store.Logout(t.Context(), client.Auth()))
	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())

	_, ok := store.User()
	assert.False(t, ok)
}

func TestCorruptSessionFileIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewSessionStore(path, logger.NewNop())
	require.NoError(t, err)
	assert.False(t, store.Authenticated())
}
