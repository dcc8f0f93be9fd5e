// pkg/permissions/manager.go

package permissions

import (
	"fmt"
	"sync"
)

type Capability string

const (
	Calendar  Capability = "calendar"
	Reminders Capability = "reminders"
	Camera    Capability = "camera"
)

// Manager is the single consent gate for external capabilities. A grant is
// memoized for the process lifetime: once given, it is never re-requested.
type Manager struct {
	mu      sync.Mutex
	granted map[Capability]bool
}

// New seeds the manager with grants the user already gave (from config).
func New(calendar, reminders, camera bool) *Manager {
	return &Manager{granted: map[Capability]bool{
		Calendar:  calendar,
		Reminders: reminders,
		Camera:    camera,
	}}
}

// Request returns whether the capability is granted.
func (m *Manager) Request(c Capability) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.granted[c]
}

// Grant records user consent for a capability.
func (m *Manager) Grant(c Capability) error {
	switch c {
	case Calendar, Reminders, Camera:
	default:
		return fmt.Errorf("unknown capability %q", c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.granted[c] = true
	return nil
}

// Snapshot returns the current grant state for each capability.
func (m *Manager) Snapshot() map[Capability]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[Capability]bool, len(m.granted))
	for k, v := range m.granted {
		out[k] = v
	}
	return out
}
