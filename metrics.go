package array

// Metrics is a snapshot of an Array's storage.
type Metrics struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	ElemSize    uintptr // bytes per slot
	Bytes       uintptr // bytes held by the buffer
	Utilization float64 // Len / Cap, 0 when nothing is allocated
}

// Metrics returns a snapshot of a's storage statistics.
func (a *Array[T]) Metrics() Metrics {
	size := sizeOf[T]()
	m := Metrics{
		Len:      a.count,
		Cap:      len(a.buf),
		ElemSize: size,
		Bytes:    uintptr(len(a.buf)) * size,
	}
	if m.Cap > 0 {
		m.Utilization = float64(m.Len) / float64(m.Cap)
	}
	return m
}

// SlotsInUse returns the number of slots handed out since the last Reset.
func (a *Arena[T]) SlotsInUse() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total number of slots in all chunks.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SlotsInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size, in slots, used by this arena.
func (a *Arena[T]) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	inUse := a.SlotsInUse()
	return ArenaMetrics{
		SlotsInUse:  inUse,
		BytesInUse:  uintptr(inUse) * sizeOf[T](),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SlotsInUse  int     // Slots handed out since the last Reset
	BytesInUse  uintptr // SlotsInUse in bytes
	Capacity    int     // Total slots in all chunks
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size in slots
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
