// Package session holds the explicit authentication state of the client.
// There is no ambient global: the Manager is constructed once, wired in as
// the transport's token source, and handed to whatever needs to read or
// change session state.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/store"
)

// ErrLoginRequired gates authenticated-only operations.
var ErrLoginRequired = errors.New("login required")

// ErrAlreadyAuthenticated gates the login flow when a session is active.
var ErrAlreadyAuthenticated = errors.New("already authenticated")

type Manager struct {
	store *store.SessionStore
	log   *slog.Logger
	now   func() time.Time

	token string
	user  *model.User
}

// NewManager loads any stored token so the transport can attach it before
// Bootstrap has validated the session.
func NewManager(st *store.SessionStore, log *slog.Logger) (*Manager, error) {
	token, err := st.Token()
	if err != nil {
		return nil, err
	}
	return &Manager{store: st, log: log, now: time.Now, token: token}, nil
}

// Token implements api.TokenSource.
func (m *Manager) Token() string { return m.token }

// Authenticated reports whether a validated user is attached. Before
// Bootstrap it is always false, even with a token on disk.
func (m *Manager) Authenticated() bool { return m.user != nil }

func (m *Manager) User() *model.User { return m.user }

// Bootstrap validates a stored token against /auth/me. Any failure is
// treated as an expired session: the token is cleared silently and the
// client stays unauthenticated. It never returns a user-facing error.
func (m *Manager) Bootstrap(ctx context.Context, auth *api.AuthService) {
	if m.token == "" {
		return
	}

	// A token whose exp claim is already past would only fail the round
	// trip; drop it locally.
	if tokenExpired(m.token, m.now()) {
		m.log.Debug("stored token expired, clearing session")
		m.clearLocal()
		return
	}

	user, err := auth.Me(ctx)
	if err != nil {
		m.log.Debug("session check failed, clearing session", "error", err)
		m.clearLocal()
		return
	}
	m.user = user
}

func (m *Manager) Login(ctx context.Context, auth *api.AuthService, email, password string) (*model.User, error) {
	result, err := auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := m.store.SaveToken(result.Token); err != nil {
		return nil, err
	}
	m.token = result.Token
	user := result.User
	m.user = &user
	m.log.Info("logged in", "user", user.Email)
	return &user, nil
}

// Logout best-effort-notifies the server, then unconditionally drops local
// session state.
func (m *Manager) Logout(ctx context.Context, auth *api.AuthService) {
	if err := auth.Logout(ctx); err != nil {
		m.log.Warn("server logout failed", "error", err)
	}
	m.clearLocal()
	m.log.Info("logged out")
}

// Gate is the route-guard analog: it fails with ErrLoginRequired when no
// authenticated user is attached.
func (m *Manager) Gate() error {
	if !m.Authenticated() {
		return ErrLoginRequired
	}
	return nil
}

// GateLogin mirrors the login-route redirect: logging in twice is refused.
func (m *Manager) GateLogin() error {
	if m.Authenticated() {
		return ErrAlreadyAuthenticated
	}
	return nil
}

func (m *Manager) clearLocal() {
	m.token = ""
	m.user = nil
	if err := m.store.Clear(); err != nil {
		m.log.Warn("clear stored token failed", "error", err)
	}
}

// tokenExpired inspects the exp claim without verifying the signature; the
// server remains the authority. Opaque or claimless tokens are not treated
// as expired.
func tokenExpired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
