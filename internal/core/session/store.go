package session

import "sync"

// Store serializes dispatches so concurrent callers observe a linear history.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
}

func NewStore() *Store {
	return &Store{state: InitialState()}
}

// Dispatch applies a and notifies subscribers with the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
