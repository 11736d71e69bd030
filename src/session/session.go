package session

import "sync"

// Manager tracks which sessions are currently logged in. A session is
// either anonymous (its ID is unknown here) or authenticated as some
// username. State lives only in memory: a process restart logs everyone
// out, which is the intended behavior of the portal.
type Manager struct {
	mutex  sync.RWMutex
	active map[string]string // session ID -> username
}

func NewManager() *Manager {
	return &Manager{
		active: make(map[string]string),
	}
}

// Login marks the session ID as authenticated for the given username.
func (m *Manager) Login(sessionID, username string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.active[sessionID] = username
}

// Logout returns the session to the anonymous state. Unknown IDs are a no-op.
func (m *Manager) Logout(sessionID string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.active, sessionID)
}

// Username reports the authenticated username for a session ID, if any.
func (m *Manager) Username(sessionID string) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	username, ok := m.active[sessionID]
	return username, ok
}
