package array

import "math"

// nextCapacity applies the growth policy: keep the capacity when n more
// elements already fit, double it when doubling is enough, otherwise grow
// to exactly capacity+n.
func nextCapacity(capacity, count, n int) (int, error) {
	if capacity-count >= n {
		return capacity, nil
	}
	if capacity <= math.MaxInt/2 && capacity*2-count >= n {
		return capacity * 2, nil
	}
	if n > math.MaxInt-capacity {
		return 0, ErrCapacityOverflow
	}
	return capacity + n, nil
}

// ensureCapacity makes room for n more elements beyond Len.
// On failure the Array is left exactly as it was.
func (a *Array[T]) ensureCapacity(n int) error {
	capacity := len(a.buf)
	if capacity-a.count >= n {
		return nil
	}

	newCap, err := nextCapacity(capacity, a.count, n)
	if err != nil {
		return newAllocationError[T](n, err)
	}
	region, err := a.allocator().Allocate(newCap)
	if err != nil {
		return err
	}

	a.relocate(region)
	return nil
}

// relocate moves the live elements into region, destroys the husks left
// behind, returns the old region to the allocator and adopts region.
func (a *Array[T]) relocate(region []T) {
	old := a.buf
	for i := 0; i < a.count; i++ {
		moveConstruct(&region[i], &old[i])
	}
	if old != nil {
		destroy(old[:a.count])
		a.allocator().Free(old)
	}
	a.buf = region
}

// allocator returns the Array's allocator, defaulting to the heap.
func (a *Array[T]) allocator() Allocator[T] {
	if a.alloc == nil {
		return HeapAllocator[T]{}
	}
	return a.alloc
}
