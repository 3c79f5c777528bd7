package wizard

import (
	"sync"
	"time"
)

// Manager holds the live sessions, keyed by flow and user. At most one
// session exists per key; starting a new one replaces (and invalidates) the
// old, so a submission resolving after a restart cannot touch the fresh
// session. Idle sessions are swept after the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	lastGen  uint64
}

// NewManager creates a manager sweeping idle sessions after ttl.
func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
	go m.sweep()
	return m
}

func sessionKey(flow, userID string) string { return flow + "/" + userID }

// Start creates (or replaces) the session for (def.Flow, userID), seeding it
// with the reconciled initial field values.
func (m *Manager) Start(def *Definition, userID string, initial FieldValues) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastGen++
	s := newSession(def, userID, initial, m.lastGen)
	m.sessions[sessionKey(def.Flow, userID)] = s
	return s
}

// Get returns the live session for (flow, userID), if any.
func (m *Manager) Get(flow, userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionKey(flow, userID)]
	return s, ok
}

// Complete removes s if it is still the current session for its key. A
// stale session (replaced while its submission was in flight) is left
// untouched, making the late result a no-op.
func (m *Manager) Complete(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(s.def.Flow, s.userID)
	if cur, ok := m.sessions[key]; ok && cur.generation == s.generation {
		delete(m.sessions, key)
	}
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		now := time.Now()
		m.mu.Lock()
		for key, s := range m.sessions {
			if s.expired(m.ttl, now) {
				delete(m.sessions, key)
			}
		}
		m.mu.Unlock()
	}
}
