package array

import (
	"iter"
	"unsafe"
)

// Iterator is a forward cursor over the live elements of an Array. It does
// no bounds checking and is invalidated by any operation that reallocates
// or empties the Array.
type Iterator[T any] struct {
	buf []T
	pos int
}

// Begin returns an iterator at the first element.
func (a *Array[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: a.buf}
}

// End returns an iterator one past the last element.
func (a *Array[T]) End() Iterator[T] {
	return Iterator[T]{buf: a.buf, pos: a.count}
}

// Value returns the element under the iterator.
func (it Iterator[T]) Value() *T {
	return &it.buf[it.pos]
}

// Next advances the iterator and returns its new position.
func (it *Iterator[T]) Next() Iterator[T] {
	it.pos++
	return *it
}

// PostNext advances the iterator and returns the position it had before.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Equal reports whether both iterators point at the same slot of the same
// buffer.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return unsafe.SliceData(it.buf) == unsafe.SliceData(o.buf) && it.pos == o.pos
}

// All yields the index and a pointer to each element live at the time of
// the call.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	buf, n := a.buf, a.count
	return func(yield func(int, *T) bool) {
		for i := 0; i < n; i++ {
			if !yield(i, &buf[i]) {
				return
			}
		}
	}
}

// Values yields a pointer to each element live at the time of the call.
func (a *Array[T]) Values() iter.Seq[*T] {
	buf, n := a.buf, a.count
	return func(yield func(*T) bool) {
		for i := 0; i < n; i++ {
			if !yield(&buf[i]) {
				return
			}
		}
	}
}
