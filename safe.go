package array

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// SafeArena is a mutex-protected wrapper around Arena. It lets Arrays owned
// by different goroutines share one arena; each Array itself still needs a
// single owner.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSlots is used.
func NewSafeArena[T any](chunkSize int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](chunkSize)}
}

// SetLogger installs the logger used for chunk growth traces.
func (s *SafeArena[T]) SetLogger(l logrus.FieldLogger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Logger = l
}

// Allocate thread-safely returns n zeroed slots.
func (s *SafeArena[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Free clears region. It does not need the lock: a region belongs to the
// single Array returning it.
func (s *SafeArena[T]) Free(region []T) {
	clear(region)
}

// EnsureCapacity thread-safely ensures the current chunk has at least n free slots.
func (s *SafeArena[T]) EnsureCapacity(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds the arena for reuse.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
