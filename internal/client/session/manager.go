// Package session keeps the in-memory mirror of authentication state the UI
// consumes. One Manager is created at process start and passed by reference;
// there is no ambient global to bootstrap in the right order.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/agromaps/agromaps-go/internal/client/api"
	"github.com/agromaps/agromaps-go/internal/client/domain"
	"github.com/agromaps/agromaps-go/internal/client/store"
)

// Navigator is the external navigation collaborator. The manager signals it
// when the session ends; what "moving to the login screen" means is the UI
// layer's business.
type Navigator interface {
	NavigateToLogin()
}

// State is a snapshot of the session. Copies are handed out; nobody shares
// the manager's internals.
type State struct {
	Authenticated bool
	User          *domain.UserProfile
	Loading       bool
	Err           string
}

// Manager owns session state with an explicit lifecycle: Init once at start,
// Login/Logout on user action, Teardown on shutdown. Methods never return
// errors; every failure is captured into the state's Err field as
// displayable text.
type Manager struct {
	client *api.Client
	creds  *store.Credentials
	nav    Navigator
	logger *slog.Logger

	mu    sync.RWMutex
	state State
	subs  []chan State
}

// NewManager builds a manager in the loading state; call Init to resolve it.
func NewManager(client *api.Client, creds *store.Credentials, nav Navigator, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		client: client,
		creds:  creds,
		nav:    nav,
		logger: logger,
		state:  State{Loading: true},
	}
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Subscribe returns a channel that receives a snapshot after every state
// transition. Slow consumers miss intermediate snapshots rather than block
// the manager; the latest state is always available via State().
func (m *Manager) Subscribe() <-chan State {
	ch := make(chan State, 8)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Teardown closes subscriber channels. Call once on shutdown.
func (m *Manager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		close(ch)
	}
	m.subs = nil
}

// Init derives session state from the credential store. Cached profile plus
// access token present means authenticated, no network validation is
// performed; the pipeline will discover a stale token on first use. A
// half-present record is cleared defensively. Loading transitions false
// exactly once, here.
func (m *Manager) Init(ctx context.Context) {
	profile := m.creds.Profile(ctx)
	token := m.creds.AccessToken(ctx)

	if profile != nil && token != "" {
		m.update(func(s *State) {
			s.Authenticated = true
			s.User = profile
			s.Loading = false
			s.Err = ""
		})
		return
	}

	if err := m.creds.Clear(ctx); err != nil {
		m.logger.Warn("defensive credential clear failed", "error", err)
	}
	m.update(func(s *State) {
		s.Authenticated = false
		s.User = nil
		s.Loading = false
		s.Err = ""
	})
}

// Login marks the session authenticated from already-persisted login
// results. Token and profile persistence is the login flow's responsibility
// and happens before this is called; Login itself touches no storage.
func (m *Manager) Login(profile *domain.UserProfile) {
	m.update(func(s *State) {
		s.Authenticated = true
		s.User = profile
		s.Err = ""
	})
}

// Logout ends the session. The remote logout call is best-effort: an
// unreachable server is logged and ignored, local state and stored
// credentials are cleared on every path, and the navigator is signalled to
// move to the login entry point.
func (m *Manager) Logout(ctx context.Context) {
	m.update(func(s *State) { s.Loading = true })
	defer m.update(func(s *State) { s.Loading = false })

	if err := m.client.Logout(ctx); err != nil {
		m.logger.Warn("remote logout failed, clearing local session anyway", "error", err)
	}

	if err := m.creds.Clear(ctx); err != nil {
		m.logger.Error("failed to clear stored credentials on logout", "error", err)
	}

	m.update(func(s *State) {
		s.Authenticated = false
		s.User = nil
		s.Err = ""
	})

	if m.nav != nil {
		m.nav.NavigateToLogin()
	}
}

// RefreshUser replaces the cached user with a fresh profile fetch. On
// failure the previous user stays; stale-but-present beats a blank screen.
func (m *Manager) RefreshUser(ctx context.Context) {
	m.update(func(s *State) { s.Loading = true })
	defer m.update(func(s *State) { s.Loading = false })

	profile, err := m.client.Profile(ctx)
	if err != nil {
		m.logger.Warn("profile refresh failed", "error", err)
		m.update(func(s *State) { s.Err = "could not load your profile" })
		return
	}

	if err := m.creds.SaveProfile(ctx, profile); err != nil {
		m.logger.Warn("failed to cache refreshed profile", "error", err)
	}

	m.update(func(s *State) {
		s.User = profile
		s.Err = ""
	})
}

// ClearError resets the error field.
func (m *Manager) ClearError() {
	m.update(func(s *State) { s.Err = "" })
}

// update applies fn under the lock and notifies subscribers with the new
// snapshot.
func (m *Manager) update(fn func(*State)) {
	m.mu.Lock()
	fn(&m.state)
	snapshot := m.state
	subs := m.subs
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}
