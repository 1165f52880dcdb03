package array

// Array is a growable sequence that owns a contiguous region of element
// slots. Slots [0, Len()) hold live elements; slots [Len(), Cap()) are raw
// and never read.
//
// The zero value is an empty Array that allocates from the heap on first
// growth. An Array must not be copied by plain assignment once it owns a
// buffer; use Clone, Move or Assign. Arrays are not safe for concurrent use.
type Array[T any] struct {
	buf   []T // len(buf) is the capacity; nil iff the capacity is zero
	count int
	alloc Allocator[T]
}

// New returns an empty Array configured by opts. It does not allocate.
func New[T any](opts ...Option[T]) Array[T] {
	var a Array[T]
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Of returns an Array holding copies of vals, in order.
func Of[T any](vals ...T) (Array[T], error) {
	var a Array[T]
	if err := a.Reserve(len(vals)); err != nil {
		return Array[T]{}, err
	}
	for _, v := range vals {
		if err := a.PushBack(v); err != nil {
			a.Destroy()
			return Array[T]{}, err
		}
	}
	return a, nil
}

// Clone returns a deep copy of a in a region sized to exactly a.Len().
// The copy uses the same allocator as a.
func (a *Array[T]) Clone() (Array[T], error) {
	c := Array[T]{alloc: a.alloc}
	if err := c.ensureCapacity(a.count); err != nil {
		return Array[T]{}, err
	}
	if err := c.copyTail(a.buf[:a.count]); err != nil {
		c.Destroy()
		return Array[T]{}, err
	}
	return c, nil
}

// Move transfers x's buffer and elements into a new Array and leaves x
// empty. Nothing is copied or allocated.
func Move[T any](x *Array[T]) Array[T] {
	m := *x
	x.buf, x.count = nil, 0
	return m
}

// Assign replaces a's elements with copies of x's. Assigning an Array to
// itself does nothing.
func (a *Array[T]) Assign(x *Array[T]) error {
	if x == a {
		return nil
	}
	destroy(a.buf[:a.count])
	a.count = 0
	if err := a.ensureCapacity(x.count); err != nil {
		return err
	}
	return a.copyTail(x.buf[:x.count])
}

// MoveFrom releases a's contents and takes over x's buffer, elements and
// allocator, leaving x empty. Moving an Array into itself does nothing.
func (a *Array[T]) MoveFrom(x *Array[T]) {
	if x == a {
		return
	}
	a.Destroy()
	a.buf, a.count, a.alloc = x.buf, x.count, x.alloc
	x.buf, x.count = nil, 0
}

// Destroy ends the lifetime of every element and returns the buffer to the
// allocator. The Array is empty and reusable afterwards; calling Destroy
// again is a no-op.
func (a *Array[T]) Destroy() {
	destroy(a.buf[:a.count])
	if a.buf != nil {
		a.allocator().Free(a.buf)
	}
	a.buf, a.count = nil, 0
}

// Empty reports whether a has no elements.
func (a *Array[T]) Empty() bool { return a.count == 0 }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.count }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.buf) }

// Front returns the first element. a must not be empty.
func (a *Array[T]) Front() *T { return &a.buf[0] }

// Back returns the last element. a must not be empty.
func (a *Array[T]) Back() *T { return &a.buf[a.count-1] }

// At returns the element at i. i must be in [0, Len()); no further check is
// made.
func (a *Array[T]) At(i int) *T { return &a.buf[i] }

// Slice returns the live elements as a slice sharing a's buffer. It is
// invalidated by any operation that grows or empties a.
func (a *Array[T]) Slice() []T { return a.buf[:a.count:a.count] }

// PushBack appends a copy of v. v is captured before the buffer grows, so
// passing an element of a itself is safe.
func (a *Array[T]) PushBack(v T) error {
	if err := a.ensureCapacity(1); err != nil {
		return err
	}
	slot := a.buf[a.count : a.count+1]
	if err := copyConstruct(&slot[0], &v); err != nil {
		destroy(slot)
		return err
	}
	a.count++
	return nil
}

// PushBackMove moves *v onto the end of a and leaves *v as a zero value.
// v must not point into a.
func (a *Array[T]) PushBackMove(v *T) error {
	if err := a.ensureCapacity(1); err != nil {
		return err
	}
	moveConstruct(&a.buf[a.count], v)
	a.count++
	return nil
}

// PopBack destroys the last element. a must not be empty.
func (a *Array[T]) PopBack() {
	a.count--
	destroy(a.buf[a.count : a.count+1])
}

// Clear destroys every element. The capacity is kept.
func (a *Array[T]) Clear() {
	destroy(a.buf[:a.count])
	a.count = 0
}

// Reserve grows the capacity to at least n. It never shrinks.
func (a *Array[T]) Reserve(n int) error {
	if n > len(a.buf) {
		return a.ensureCapacity(n - a.count)
	}
	return nil
}

// Resize sets the length to n, destroying trailing elements or appending
// default-constructed ones. It panics if n is negative.
func (a *Array[T]) Resize(n int) error {
	if n < 0 {
		panic("array: negative Resize length")
	}
	switch {
	case n < a.count:
		destroy(a.buf[n:a.count])
		a.count = n
	case n > a.count:
		if err := a.ensureCapacity(n - a.count); err != nil {
			return err
		}
		for ; a.count < n; a.count++ {
			construct(&a.buf[a.count])
		}
	}
	return nil
}

// Append copies o's elements onto the end of a. o may be a itself.
func (a *Array[T]) Append(o *Array[T]) error {
	if err := a.ensureCapacity(o.count); err != nil {
		return err
	}
	return a.copyTail(o.buf[:o.count])
}

// AppendMove moves o's elements onto the end of a and leaves o with no
// elements. o keeps its buffer. Moving an Array onto itself does nothing.
func (a *Array[T]) AppendMove(o *Array[T]) error {
	if o == a {
		return nil
	}
	if err := a.ensureCapacity(o.count); err != nil {
		return err
	}
	for i := 0; i < o.count; i++ {
		moveConstruct(&a.buf[a.count+i], &o.buf[i])
	}
	a.count += o.count
	destroy(o.buf[:o.count])
	o.count = 0
	return nil
}

// Swap exchanges the buffers, elements and allocators of a and o.
func (a *Array[T]) Swap(o *Array[T]) {
	tmp := Move(a)
	a.MoveFrom(o)
	o.MoveFrom(&tmp)
}

// copyTail copy-constructs src into the raw slots after the last element.
// The capacity must already be sufficient. On error the slots constructed
// so far are destroyed and the length is unchanged.
func (a *Array[T]) copyTail(src []T) error {
	tail := a.buf[a.count : a.count+len(src)]
	for i := range src {
		if err := copyConstruct(&tail[i], &src[i]); err != nil {
			destroy(tail[:i+1])
			return err
		}
	}
	a.count += len(src)
	return nil
}
