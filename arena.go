package array

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// DefaultChunkSlots is the default number of slots per arena chunk.
const DefaultChunkSlots = 1 << 12

// chunk represents a single block of slots within an arena.
type chunk[T any] struct {
	buf    []T // backing slots
	offset int // first unused slot in buf
}

// Arena is a chunked bump allocator of element slots. It implements
// Allocator, so many Arrays can carve their regions out of a few large
// chunks. Regions are reclaimed together by Reset or Release; Free only
// clears the region.
//
// Not goroutine-safe. Use SafeArena for Arrays owned by different
// goroutines.
type Arena[T any] struct {
	chunks       []chunk[T]
	chunkSize    int
	currentChunk *chunk[T]

	// Logger, when set, receives a Debug entry whenever a chunk is added.
	Logger logrus.FieldLogger
}

// NewArena creates an Arena whose chunks hold chunkSize slots.
// If chunkSize <= 0, DefaultChunkSlots is used. The first chunk is
// allocated eagerly.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSlots
	}
	a := &Arena[T]{chunks: []chunk[T]{}, chunkSize: chunkSize}
	// On failure the arena starts without chunks and Allocate retries.
	_ = a.grow(chunkSize)
	return a
}

// Allocate returns n zeroed slots from the current chunk, adding a chunk of
// at least n slots when the current one is full.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if a.chunks == nil {
		return nil, newAllocationError[T](n, ErrArenaReleased)
	}
	if n <= 0 {
		return nil, nil
	}

	// Fast path: bump the current chunk
	c := a.currentChunk
	if c != nil && n <= len(c.buf)-c.offset {
		start := c.offset
		c.offset += n
		return c.buf[start:c.offset:c.offset], nil
	}

	return a.allocateSlow(n)
}

// allocateSlow handles allocation when the fast path fails. Chunks rewound
// by Reset are reused before a new one is added.
func (a *Arena[T]) allocateSlow(n int) ([]T, error) {
	for i := range a.chunks {
		c := &a.chunks[i]
		if n <= len(c.buf)-c.offset {
			a.currentChunk = c
			start := c.offset
			c.offset += n
			return c.buf[start:c.offset:c.offset], nil
		}
	}

	if err := a.grow(n); err != nil {
		return nil, err
	}
	c := a.currentChunk
	c.offset = n
	return c.buf[:n:n], nil
}

// Free clears region so the slots hold no references. The slots themselves
// are only reused after Reset.
func (a *Arena[T]) Free(region []T) {
	clear(region)
}

// EnsureCapacity ensures the current chunk has at least n free slots.
// If not, it grows the arena with a new chunk.
func (a *Arena[T]) EnsureCapacity(n int) error {
	a.panicIfReleased()
	c := a.currentChunk
	if c == nil || n > len(c.buf)-c.offset {
		return a.grow(n)
	}
	return nil
}

// Reset clears every chunk and rewinds the offsets so the chunks are reused.
// Arrays still holding regions from the arena must not be used afterwards.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		clear(a.chunks[i].buf[:a.chunks[i].offset])
		a.chunks[i].offset = 0
	}
	// Reset cached chunk to first chunk
	if len(a.chunks) > 0 {
		a.currentChunk = &a.chunks[0]
	}
}

// Release drops all chunks and makes the arena unusable.
// Subsequent allocations fail with ErrArenaReleased; Reset and
// EnsureCapacity panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.currentChunk = nil
}

// grow appends a new chunk of at least min slots and makes it current.
func (a *Arena[T]) grow(min int) (err error) {
	size := a.chunkSize
	if min > size {
		size = min
	}

	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			err = newAllocationError[T](size, re)
		}
	}()
	buf := make([]T, size)

	a.chunks = append(a.chunks, chunk[T]{buf: buf})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
	if a.Logger != nil {
		a.Logger.WithFields(logrus.Fields{
			"slots":  size,
			"chunks": len(a.chunks),
		}).Debug("array: arena chunk added")
	}
	return nil
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("array: arena used after Release()")
	}
}
