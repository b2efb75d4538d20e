package reactive

import "sync"

// Signal holds a host-owned value. Its Get method is the read accessor handed
// to derived computations.
type Signal[T comparable] struct {
	mu      sync.RWMutex
	value   T
	version uint64
}

// NewSignal returns a signal holding initial.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v. Setting the current value again is a no-op.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == v {
		return
	}
	s.value = v
	s.version++
}

// Version counts effective changes since the signal was created.
func (s *Signal[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
