// Package session holds the in-progress answer set between requests. One
// shared session serves the single interactive user the tool is built for;
// the Store exists so a host that ever needs per-caller isolation can hand
// out one session per user instead.
package session

import (
	"sync"

	"github.com/google/uuid"

	"statwizard/domain/wizard"
)

// Session is a mutex-guarded answer cell. All accessors copy, so callers
// never share the underlying map.
type Session struct {
	id string

	mu      sync.Mutex
	answers wizard.AnswerSet
}

// NewSession creates an empty session with a fresh id.
func NewSession() *Session {
	return &Session{
		id:      uuid.NewString(),
		answers: wizard.AnswerSet{},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Answers returns a copy of the current answer set.
func (s *Session) Answers() wizard.AnswerSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers.Clone()
}

// Replace swaps the stored answers for a copy of the given set.
func (s *Session) Replace(answers wizard.AnswerSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = answers.Clone()
	if s.answers == nil {
		s.answers = wizard.AnswerSet{}
	}
}

// Merge overlays the given answers onto the stored set.
func (s *Session) Merge(answers wizard.AnswerSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range answers {
		s.answers[k] = v
	}
}

// Reset clears the stored answers to empty.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = wizard.AnswerSet{}
}

// Store hands out sessions by id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers and returns a new session.
func (st *Store) Create() *Session {
	s := NewSession()
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id, or nil.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id]
}
