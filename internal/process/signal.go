package process

import "sync"

// Signal is an observable value. Subscribers are called synchronously by Set
// on the setter's goroutine, outside the signal's lock, and only when the
// value changes.
type Signal[T comparable] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
}

// NewSignal returns a signal holding initial.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and notifies subscribers if it differs from the current value.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return
	}
	s.value = v
	fns := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn and returns a func that removes it. The returned
// func is safe to call more than once.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(T))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of registered subscribers.
func (s *Signal[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
