package store

import "sync"

// Action is a plain dispatched record. Payload is nil for REQUEST
// actions, the decoded response for SUCCESS, and the error string for
// FAILED.
type Action struct {
	Type    string
	Payload any
}

// Reducer folds an action into the state. Must be pure.
type Reducer[S any] func(S, Action) S

// Store is a single-writer state container: dispatches are serialized,
// so interleaved actions can never corrupt a slice. Last write wins.
type Store[S any] struct {
	mu          sync.Mutex
	state       S
	reducer     Reducer[S]
	subscribers []func(S)
}

func New[S any](reducer Reducer[S], initial S) *Store[S] {
	return &Store[S]{reducer: reducer, state: initial}
}

// Dispatch reduces the action into the state and notifies subscribers
// with the resulting snapshot.
func (s *Store[S]) Dispatch(action Action) {
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	state := s.state
	subscribers := make([]func(S), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(state)
	}
}

func (s *Store[S]) GetState() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener called after every dispatch. The
// returned function unsubscribes it.
func (s *Store[S]) Subscribe(subscriber func(S)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, subscriber)
	index := len(s.subscribers) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subscribers[index] = func(S) {}
	}
}
