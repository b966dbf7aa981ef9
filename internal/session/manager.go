package session

import (
	"sync"

	"github.com/rs/zerolog"
)

// Session is the derived view of "who is logged in". Both fields are nil/
// empty when nobody is.
type Session struct {
	UserData *Claims
	Token    string
}

func (s Session) LoggedIn() bool { return s.UserData != nil && s.Token != "" }

// Manager derives the current Session from the store and keeps it current:
// it re-decodes on every store change notification (covering writes from
// elsewhere in the process) and never polls. A credential that fails to
// decode is fatal to the session: the store is cleared and the failure is
// reported through the registered handler.
type Manager struct {
	store Store
	log   zerolog.Logger

	mu        sync.RWMutex
	current   Session
	decodeErr error
	onExpired []func(error)
}

func NewManager(store Store, log zerolog.Logger) *Manager {
	m := &Manager{store: store, log: log}
	store.OnChange(m.reload)
	m.reload()
	return m
}

// OnSessionLost registers a callback invoked when a stored credential turns
// out to be undecodable and the session is force-cleared.
func (m *Manager) OnSessionLost(fn func(error)) {
	m.mu.Lock()
	m.onExpired = append(m.onExpired, fn)
	m.mu.Unlock()
}

// Current returns the session as of the last store change. An absent
// credential yields an empty session without error.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// DecodeErr reports the decode failure behind an empty session, if any.
func (m *Manager) DecodeErr() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.decodeErr
}

// BearerToken satisfies the API client's token source. Empty when logged
// out; requests then go out unauthenticated.
func (m *Manager) BearerToken() string {
	return m.Current().Token
}

// Login persists a freshly issued token. The store change notification
// re-derives the session.
func (m *Manager) Login(token string) error {
	return m.store.Set(token)
}

// Logout destroys the session. Also used when an API call comes back 401.
func (m *Manager) Logout() error {
	return m.store.Clear()
}

func (m *Manager) reload() {
	token, err := m.store.Get()
	if err != nil {
		m.log.Error().Err(err).Msg("session store read failed")
		m.set(Session{}, err, false)
		return
	}
	if token == "" {
		m.set(Session{}, nil, false)
		return
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		m.log.Warn().Err(err).Msg("stored session token is invalid, logging out")
		// Clearing fires reload again; the recursive pass sees an empty
		// store and settles on the empty session.
		_ = m.store.Clear()
		m.set(Session{}, err, true)
		return
	}

	m.set(Session{UserData: claims, Token: token}, nil, false)
}

func (m *Manager) set(s Session, err error, lost bool) {
	m.mu.Lock()
	m.current = s
	m.decodeErr = err
	handlers := append([]func(error){}, m.onExpired...)
	m.mu.Unlock()

	if lost {
		for _, fn := range handlers {
			fn(err)
		}
	}
}
