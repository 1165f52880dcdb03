package array

import "errors"

var (
	// ErrAllocation matches every *AllocationError via errors.Is.
	ErrAllocation = errors.New("array: allocation failed")

	// ErrSlotLimit is the cause of an AllocationError when a region exceeds
	// the allocator's configured slot limit.
	ErrSlotLimit = errors.New("array: region exceeds allocator slot limit")

	// ErrCapacityOverflow is the cause of an AllocationError when the
	// requested capacity does not fit in an int.
	ErrCapacityOverflow = errors.New("array: capacity overflows int")

	// ErrArenaReleased is the cause of an AllocationError when an arena is
	// asked for memory after Release.
	ErrArenaReleased = errors.New("array: arena used after Release")

	// ErrOutOfRange is returned by the checked accessors for an index
	// outside [0, Len()).
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrEmpty is returned by the checked accessors on an empty Array.
	ErrEmpty = errors.New("array: empty array")

	// ErrCorrupt is returned by Validate when an Array's bookkeeping is
	// inconsistent.
	ErrCorrupt = errors.New("array: invariant violated")
)
