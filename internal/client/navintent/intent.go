// Package navintent passes a one-shot filter selection between two views
// across a client-side navigation, outside the normal argument channel.
package navintent

import "sync"

// State is the payload carried by a pending navigation.
type State struct {
	CategoryName string
}

// Store is a single-item inbox: one pending value, consumed at most once per
// write via a destructive read.
type Store struct {
	mu      sync.Mutex
	pending *State
}

func New() *Store {
	return &Store{}
}

// Set records the pending navigation state, replacing any unconsumed value.
func (s *Store) Set(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &state
}

// TakeAndClear returns the pending state and clears it, or nil when empty.
func (s *Store) TakeAndClear() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.pending
	s.pending = nil
	return current
}

// Clear drops any pending state without consuming it.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}
