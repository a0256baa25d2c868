package location

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GriffinCanCode/urlargs/internal/host"
	"github.com/GriffinCanCode/urlargs/internal/nav"
	"github.com/GriffinCanCode/urlargs/internal/params"
	"github.com/GriffinCanCode/urlargs/internal/shared/id"
)

var (
	// ErrSessionNotFound is returned for unknown or closed sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionLimit is returned when the manager is full.
	ErrSessionLimit = errors.New("session limit reached")
)

// Session is one in-memory location with its translator and facade.
type Session struct {
	ID         id.SessionID
	CreatedAt  time.Time
	Host       *host.Memory
	Translator *params.Translator
	Navigator  *nav.Navigator
}

// SessionManager owns the live sessions.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[id.SessionID]*Session
	max      int
	navOpts  []nav.Option
}

// NewSessionManager creates a manager holding at most max sessions; max <= 0
// means unbounded.
func NewSessionManager(max int, navOpts ...nav.Option) *SessionManager {
	return &SessionManager{
		sessions: make(map[id.SessionID]*Session),
		max:      max,
		navOpts:  navOpts,
	}
}

// Create opens a session positioned at rawURL.
func (m *SessionManager) Create(rawURL string) (*Session, error) {
	mem, err := host.NewMemory(rawURL)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.max > 0 && len(m.sessions) >= m.max {
		return nil, fmt.Errorf("%w (%d)", ErrSessionLimit, m.max)
	}

	sid := id.NewSessionID()
	created, err := id.Timestamp(sid.String())
	if err != nil {
		created = time.Now()
	}
	s := &Session{
		ID:         sid,
		CreatedAt:  created,
		Host:       mem,
		Translator: params.NewTranslator(mem),
		Navigator:  nav.New(mem, m.navOpts...),
	}
	m.sessions[s.ID] = s
	return s, nil
}

// Get returns the session with the given ID.
func (m *SessionManager) Get(sessionID string) (*Session, error) {
	if err := checkSessionID(sessionID); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id.SessionID(sessionID)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return s, nil
}

// Close removes a session.
func (m *SessionManager) Close(sessionID string) error {
	if err := checkSessionID(sessionID); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := id.SessionID(sessionID)
	if _, ok := m.sessions[key]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	delete(m.sessions, key)
	return nil
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

func checkSessionID(sessionID string) error {
	if !id.HasPrefix(sessionID, id.SessionPrefix) {
		return fmt.Errorf("%w: malformed session id %q", ErrSessionNotFound, sessionID)
	}
	return nil
}
