package array

// Option configures an Array created by New.
type Option[T any] func(*Array[T])

// WithAllocator makes the Array obtain and return its regions through al.
// The allocator travels with the buffer: moves and swaps transfer it.
func WithAllocator[T any](al Allocator[T]) Option[T] {
	return func(a *Array[T]) {
		a.alloc = al
	}
}
