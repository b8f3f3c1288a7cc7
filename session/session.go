package session

import "sync"

// Session is a string-keyed container holding one client's session data.
// It is safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	values map[string]any
}

// New returns an empty session.
func New() *Session {
	return &Session{values: make(map[string]any)}
}

// Get returns the value stored under key and whether it is present.
func (s *Session) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

// Delete removes the value stored under key, if any.
func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}

// Len returns the number of stored values.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
