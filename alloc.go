package array

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// Allocator hands out regions of element slots to an Array.
//
// Allocate must return a region with len == cap == n whose slots all hold
// the zero value of T, or an error. Arrays return every region they stop
// using through Free, exactly once.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Free(region []T)
}

// AllocationError reports that an allocator could not provide a region.
type AllocationError struct {
	Requested int     // slots requested
	ElemSize  uintptr // bytes per slot
	Err       error   // underlying cause
}

func newAllocationError[T any](n int, cause error) *AllocationError {
	return &AllocationError{Requested: n, ElemSize: sizeOf[T](), Err: cause}
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("array: allocate %d slots of %d bytes: %v", e.Requested, e.ElemSize, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

// HeapAllocator allocates regions with make and leaves reclamation to the
// garbage collector. The zero value is ready to use and is what an Array
// without an explicit allocator uses.
type HeapAllocator[T any] struct {
	// MaxSlots caps the size of a single region. Zero means no limit.
	MaxSlots int

	// Logger, when set, receives a Debug entry per allocation and free.
	Logger logrus.FieldLogger
}

// Allocate returns a zeroed region of n slots. A runtime panic raised by
// make (for example a length the runtime cannot represent) is returned as
// an *AllocationError instead of unwinding the caller.
func (h HeapAllocator[T]) Allocate(n int) (region []T, err error) {
	if h.MaxSlots > 0 && n > h.MaxSlots {
		return nil, newAllocationError[T](n, ErrSlotLimit)
	}

	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			region, err = nil, newAllocationError[T](n, re)
		}
	}()
	region = make([]T, n)

	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{
			"slots": n,
			"bytes": uintptr(n) * sizeOf[T](),
		}).Debug("array: heap region allocated")
	}
	return region, nil
}

// Free drops the region. The memory is reclaimed by the garbage collector
// once nothing else refers to it.
func (h HeapAllocator[T]) Free(region []T) {
	if h.Logger != nil {
		h.Logger.WithField("slots", cap(region)).Debug("array: heap region freed")
	}
}

// sizeOf returns the size in bytes of one slot of T.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
