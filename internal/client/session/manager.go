// Package session tracks who is currently using the client.
//
// The manager is an explicit state machine constructed fresh per process (or
// per test) rather than ambient global state. It starts in StateUnknown and
// settles to StateAnonymous or StateAuthenticated once Init runs the
// configured startup check. A non-nil cached user means a login succeeded in
// this session; it does not imply the stored token is still valid
// server-side.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mvolkova/taskquest/internal/client/models"
	"github.com/mvolkova/taskquest/internal/client/tokenstore"
	"github.com/mvolkova/taskquest/internal/common"
	"github.com/mvolkova/taskquest/internal/logging"
)

type State string

const (
	StateUnknown       State = "unknown"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// StartupStrategy controls what Init does when a stored token is found.
type StartupStrategy string

const (
	// StartupTrustToken trusts a stored token without inspection
	// (the baseline optimistic behavior).
	StartupTrustToken StartupStrategy = "trust"

	// StartupValidateToken decodes the access token's claims locally
	// (no signature check) and rejects it when expired or malformed.
	StartupValidateToken StartupStrategy = "validate"
)

// LogoutClient is the slice of the API client the manager needs to
// invalidate a refresh token server-side.
type LogoutClient interface {
	Logout(ctx context.Context, refreshToken string) error
}

type Manager struct {
	tokens   tokenstore.Store
	client   LogoutClient
	strategy StartupStrategy
	log      logging.Logger

	mu    sync.RWMutex
	state State
	user  *models.User
}

// NewManager builds a manager in StateUnknown. client may be nil when no
// backend is configured (offline mode); Logout then only clears local state.
func NewManager(tokens tokenstore.Store, client LogoutClient, strategy StartupStrategy, log logging.Logger) *Manager {
	if strategy == "" {
		strategy = StartupTrustToken
	}
	return &Manager{
		tokens:   tokens,
		client:   client,
		strategy: strategy,
		log:      log,
		state:    StateUnknown,
	}
}

// Init performs the startup session check and settles the state. With no
// stored access token the session is anonymous. With a token, the configured
// strategy decides: trust it as-is, or reject it locally when its claims say
// it is expired (rejected tokens are cleared from the store).
func (m *Manager) Init(ctx context.Context) {
	token := m.tokens.Access()
	if token == "" {
		m.settle(StateAnonymous)
		return
	}

	if m.strategy == StartupValidateToken {
		if err := checkExpiry(token, time.Now()); err != nil {
			m.log.Warn(ctx, "stored token rejected on startup", "err", err)
			if err := m.tokens.Clear(); err != nil {
				m.log.Error(ctx, "clearing rejected token failed", "err", err)
			}
			m.settle(StateAnonymous)
			return
		}
	}

	m.settle(StateAuthenticated)
}

// checkExpiry decodes the token without verifying its signature and reports
// whether the exp claim has passed. The client has no signing key; this is a
// local staleness check, not an authenticity check.
func checkExpiry(token string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("parse access token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("read exp claim: %w", err)
	}
	if exp != nil && exp.Before(now) {
		return common.ErrTokenExpired
	}
	return nil
}

func (m *Manager) settle(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

// SetUser caches the authenticated user after a successful login or
// registration. A nil user drops the session to anonymous.
func (m *Manager) SetUser(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	if u != nil {
		m.state = StateAuthenticated
	} else {
		m.state = StateAnonymous
	}
}

// User returns the cached user, which may be nil even when authenticated
// (token present but no login happened in this session).
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAuthenticated reports whether the session has settled as authenticated.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// Settled distinguishes the initial unknown state from a finished startup
// check, so dependent surfaces can defer until Init completes.
func (m *Manager) Settled() bool {
	return m.State() != StateUnknown
}

// Logout invalidates the refresh token server-side (best effort — a failed
// call is logged and does not stop the local cleanup), clears the token
// store, and drops the session to anonymous. Idempotent from anonymous.
func (m *Manager) Logout(ctx context.Context) error {
	if refresh := m.tokens.Refresh(); refresh != "" && m.client != nil {
		if err := m.client.Logout(ctx, refresh); err != nil {
			m.log.Warn(ctx, "server logout failed, clearing local session anyway", "err", err)
		}
	}

	err := m.tokens.Clear()

	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()

	return err
}
