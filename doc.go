// Package array implements a generic growable array that manages its own
// element storage.
//
// # Overview
//
// Array[T] owns a contiguous region of slots. The first Len() slots hold
// live elements; the remaining Cap()-Len() slots are raw and are never read.
// Element lifetimes are explicit: a slot is constructed when an element is
// added and destroyed when it is removed, independently of when the region
// itself is allocated or released.
//
// # Basic Usage
//
//	var a array.Array[int] // empty, nothing allocated
//	defer a.Destroy()
//
//	if err := a.PushBack(42); err != nil {
//		return err // *AllocationError
//	}
//	*a.At(0) += 1
//
//	b, err := a.Clone() // deep copy
//	c := array.Move(&b) // b is now empty
//	a.Swap(&c)
//
// # Growth
//
// When more room is needed the capacity doubles if doubling is enough,
// otherwise it grows to exactly what the operation requires. The first
// allocation is therefore always exact. Growing moves the live elements
// into the new region and returns the old one to the allocator.
//
// # Element Types
//
// The zero value of T is the default-constructed element. Types that own
// storage can hook into the copy and destroy steps:
//
//   - *T implementing Assigner[T] is used for every copy instead of plain
//     assignment.
//   - *T implementing Destroyer is called whenever an element's lifetime
//     ends.
//
// *Array[T] implements both, so arrays of arrays copy deeply and release
// their inner buffers.
//
// # Allocators
//
// Regions come from an Allocator. The default HeapAllocator uses make;
// Arena carves regions out of large chunks and reclaims them in bulk;
// SafeArena does the same under a mutex so Arrays owned by different
// goroutines can share it.
//
// # Important Notes
//
//   - At, Front, Back and PopBack do not check their preconditions. Use the
//     Checked variants when the index is not known to be valid.
//   - Iterators and Slice views are invalidated by any operation that grows
//     or empties the Array.
//   - An Array is not safe for concurrent use.
//   - Copying an Array value with = aliases its buffer; use Clone or Move.
package array
