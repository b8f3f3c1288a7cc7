package session

import "sync"

// Store maps session identifiers to sessions. It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for the given identifier, atomically creating an
// empty one on first access. Concurrent calls with the same identifier
// receive the same session.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = New()
		s.sessions[id] = sess
	}
	return sess
}

// Has reports whether a session exists for the given identifier, without
// creating one.
func (s *Store) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	return ok
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
