package array

import (
	"fmt"
	"reflect"
)

// AtChecked is At with a bounds check.
func (a *Array[T]) AtChecked(i int) (*T, error) {
	if i < 0 || i >= a.count {
		return nil, fmt.Errorf("At(%d) with length %d: %w", i, a.count, ErrOutOfRange)
	}
	return &a.buf[i], nil
}

// FrontChecked is Front with an emptiness check.
func (a *Array[T]) FrontChecked() (*T, error) {
	if a.count == 0 {
		return nil, ErrEmpty
	}
	return a.Front(), nil
}

// BackChecked is Back with an emptiness check.
func (a *Array[T]) BackChecked() (*T, error) {
	if a.count == 0 {
		return nil, ErrEmpty
	}
	return a.Back(), nil
}

// PopBackChecked is PopBack with an emptiness check.
func (a *Array[T]) PopBackChecked() error {
	if a.count == 0 {
		return ErrEmpty
	}
	a.PopBack()
	return nil
}

// Validate checks the Array's bookkeeping: the length lies within the
// capacity, the buffer is nil exactly when the capacity is zero, and every
// raw slot holds the zero value. It is meant for tests and debugging.
func (a *Array[T]) Validate() error {
	if a.count < 0 || a.count > len(a.buf) {
		return fmt.Errorf("length %d, capacity %d: %w", a.count, len(a.buf), ErrCorrupt)
	}
	if (a.buf == nil) != (len(a.buf) == 0) {
		return fmt.Errorf("empty non-nil buffer: %w", ErrCorrupt)
	}
	if cap(a.buf) != len(a.buf) {
		return fmt.Errorf("region len %d, cap %d: %w", len(a.buf), cap(a.buf), ErrCorrupt)
	}
	for i := a.count; i < len(a.buf); i++ {
		if !reflect.ValueOf(&a.buf[i]).Elem().IsZero() {
			return fmt.Errorf("raw slot %d is not zero: %w", i, ErrCorrupt)
		}
	}
	return nil
}
