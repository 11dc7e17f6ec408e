// Package utils holds small helpers shared by the packages of this module
package utils

import "sync"

// OptionalMutex is a mutex that only locks when enabled. Objects created with an externally
// synchronized flag leave it disabled and rely on their caller for exclusion.
type OptionalMutex struct {
	mutex   sync.Mutex
	enabled bool
}

func NewOptionalMutex(enabled bool) OptionalMutex {
	return OptionalMutex{enabled: enabled}
}

func (m *OptionalMutex) Lock() {
	if m.enabled {
		m.mutex.Lock()
	}
}

func (m *OptionalMutex) Unlock() {
	if m.enabled {
		m.mutex.Unlock()
	}
}

// OptionalRWMutex is the read/write counterpart of OptionalMutex
type OptionalRWMutex struct {
	mutex   sync.RWMutex
	enabled bool
}

func NewOptionalRWMutex(enabled bool) OptionalRWMutex {
	return OptionalRWMutex{enabled: enabled}
}

func (m *OptionalRWMutex) Enabled() bool { return m.enabled }

func (m *OptionalRWMutex) Lock() {
	if m.enabled {
		m.mutex.Lock()
	}
}

func (m *OptionalRWMutex) Unlock() {
	if m.enabled {
		m.mutex.Unlock()
	}
}

func (m *OptionalRWMutex) RLock() {
	if m.enabled {
		m.mutex.RLock()
	}
}

func (m *OptionalRWMutex) RUnlock() {
	if m.enabled {
		m.mutex.RUnlock()
	}
}
