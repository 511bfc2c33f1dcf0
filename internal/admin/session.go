// Package admin implements the content-management core behind the admin
// tooling: a durable session store, form view-models and the CRUD
// controller that reconciles them against the API.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/pushpakoirala/portfolio-api/pkg/logger"
	"github.com/pushpakoirala/portfolio-api/pkg/portfolio"
)

// Session is what survives a restart: the bearer token and the admin it
// was issued to.
type Session struct {
	Token string         `json:"token"`
	User  portfolio.User `json:"user"`
}

// SessionStore persists the session as a JSON file and doubles as the
// portfolio.TokenSource for the API client. It is the single writer of
// session state; everything else only reads.
type SessionStore struct {
	mu   sync.RWMutex
	path string
	sess *Session
	log  logger.Logger
}

// DefaultSessionPath is the per-user session file location.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "portfolio-admin", "session.json"), nil
}

// NewSessionStore loads any previously persisted session. A missing file
// means logged out; a corrupt file is discarded with a warning rather
// than blocking startup.
func NewSessionStore(path string, log logger.Logger) (*SessionStore, error) {
	s := &SessionStore{path: path, log: log}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		log.Warn("discarding unreadable session file", zap.String("path", path))
		return s, nil
	}
	s.sess = &sess
	return s, nil
}

// Token implements portfolio.TokenSource. It is read on every request so
// a token swap mid-session is observed immediately.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sess == nil {
		return ""
	}
	return s.sess.Token
}

func (s *SessionStore) Authenticated() bool {
	return s.Token() != ""
}

// User returns the admin identity from the current session, if any.
func (s *SessionStore) User() (portfolio.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sess == nil {
		return portfolio.User{}, false
	}
	return s.sess.User, true
}

// Login exchanges credentials for a token and persists the session.
func (s *SessionStore) Login(ctx context.Context, auth *portfolio.AuthClient, username, password string) (portfolio.User, error) {
	result, err := auth.Login(ctx, username, password)
	if err != nil {
		return portfolio.User{}, err
	}
	if err := s.replace(Session{Token: result.Token, User: result.User}); err != nil {
		return portfolio.User{}, err
	}
	return result.User, nil
}

// Logout clears the persisted session. The server call is best-effort:
// local invalidation alone is durable.
func (s *SessionStore) Logout(ctx context.Context, auth *portfolio.AuthClient) error {
	if err := auth.Logout(ctx); err != nil {
		s.log.Warn("server logout failed, clearing local session anyway", zap.Error(err))
	}
	return s.clear()
}

// ChangePassword re-verifies the current password server-side. The
// session token is unchanged on success.
func (s *SessionStore) ChangePassword(ctx context.Context, auth *portfolio.AuthClient, currentPassword, newPassword string) error {
	return auth.ChangePassword(ctx, currentPassword, newPassword)
}

// ChangeUsername swaps the token and the user record together. The old
// token names the old username and stops being accepted, so a stale
// token must never survive this call.
func (s *SessionStore) ChangeUsername(ctx context.Context, auth *portfolio.AuthClient, newUsername, currentPassword string) (portfolio.User, error) {
	result, err := auth.ChangeUsername(ctx, newUsername, currentPassword)
	if err != nil {
		return portfolio.User{}, err
	}
	if err := s.replace(Session{Token: result.Token, User: result.User}); err != nil {
		return portfolio.User{}, err
	}
	return result.User, nil
}

// ChangeEmail updates the stored user record in place; the token does
// not embed the email so it survives unchanged.
func (s *SessionStore) ChangeEmail(ctx context.Context, auth *portfolio.AuthClient, newEmail string) error {
	if err := auth.ChangeEmail(ctx, newEmail); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil
	}
	updated := *s.sess
	updated.User.Email = newEmail
	return s.writeLocked(&updated)
}

func (s *SessionStore) replace(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(&sess)
}

func (s *SessionStore) clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// writeLocked persists via temp-file rename so a crash mid-write never
// leaves a half-written session behind. Caller holds s.mu.
func (s *SessionStore) writeLocked(sess *Session) error {
	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	s.sess = sess
	return nil
}
