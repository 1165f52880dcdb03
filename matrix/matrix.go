package matrix

import (
	"fmt"
	"io"

	"github.com/pavanmanishd/array"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Matrix can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a matrix stored as an array of columns.
type Matrix[T Number] = array.Array[array.Array[T]]

// Option configures how Build and Mult allocate columns.
type Option[T Number] func(*options[T])

type options[T Number] struct {
	alloc array.Allocator[T]
}

// WithColumnAllocator makes new columns allocate through al.
func WithColumnAllocator[T Number](al array.Allocator[T]) Option[T] {
	return func(o *options[T]) {
		o.alloc = al
	}
}

func gatherOptions[T Number](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options[T]) newColumn() array.Array[T] {
	if o.alloc == nil {
		return array.Array[T]{}
	}
	return array.New(array.WithAllocator(o.alloc))
}

// Build returns a matrix of w columns of height h whose element in column i,
// row j is f(i, j).
func Build[T Number](w, h int, f func(i, j int) T, opts ...Option[T]) (Matrix[T], error) {
	if w < 0 || h < 0 {
		return Matrix[T]{}, fmt.Errorf("Build(%d, %d): %w", w, h, ErrBadShape)
	}
	o := gatherOptions(opts)

	var m Matrix[T]
	if err := m.Reserve(w); err != nil {
		return Matrix[T]{}, err
	}
	for i := 0; i < w; i++ {
		col := o.newColumn()
		if err := col.Reserve(h); err != nil {
			m.Destroy()
			return Matrix[T]{}, err
		}
		for j := 0; j < h; j++ {
			// capacity was reserved above
			_ = col.PushBack(f(i, j))
		}
		if err := m.PushBackMove(&col); err != nil {
			col.Destroy()
			m.Destroy()
			return Matrix[T]{}, err
		}
	}
	return m, nil
}

// Shape returns the number of columns and the column height of m.
// An empty matrix has shape (0, 0).
func Shape[T Number](m *Matrix[T]) (w, h int, err error) {
	if m.Empty() {
		return 0, 0, nil
	}
	w, h = m.Len(), m.Front().Len()
	for i, col := range m.All() {
		if col.Len() != h {
			return 0, 0, fmt.Errorf("column %d has %d rows, want %d: %w", i, col.Len(), h, ErrBadShape)
		}
	}
	return w, h, nil
}

// Mult returns the product a×b. a must have as many columns as b's columns
// have rows. If either operand is empty the result is empty.
func Mult[T Number](a, b *Matrix[T], opts ...Option[T]) (Matrix[T], error) {
	if a.Empty() || b.Empty() {
		return Matrix[T]{}, nil
	}
	d, h, err := Shape(a)
	if err != nil {
		return Matrix[T]{}, fmt.Errorf("Mult: left operand: %w", err)
	}
	w, bh, err := Shape(b)
	if err != nil {
		return Matrix[T]{}, fmt.Errorf("Mult: right operand: %w", err)
	}
	if d != bh {
		return Matrix[T]{}, fmt.Errorf("Mult: %d columns times %d rows: %w", d, bh, ErrDimensionMismatch)
	}
	o := gatherOptions(opts)

	var res Matrix[T]
	if err := res.Resize(w); err != nil {
		return Matrix[T]{}, err
	}
	for i := 0; i < w; i++ {
		col := res.At(i)
		*col = o.newColumn()
		// Resize default-constructs, so every element starts at zero.
		if err := col.Resize(h); err != nil {
			res.Destroy()
			return Matrix[T]{}, err
		}
	}

	for i := 0; i < w; i++ {
		out, bcol := res.At(i), b.At(i)
		for j := 0; j < h; j++ {
			for k := 0; k < d; k++ {
				*out.At(j) += *a.At(k).At(j) * *bcol.At(k)
			}
		}
	}
	return res, nil
}

// Columns copies m into a slice of columns.
func Columns[T Number](m *Matrix[T]) [][]T {
	out := make([][]T, 0, m.Len())
	for col := range m.Values() {
		out = append(out, append([]T(nil), col.Slice()...))
	}
	return out
}

// Write prints m one column per line, elements separated by tabs, walking
// the matrix with iterators.
func Write[T Number](w io.Writer, m *Matrix[T]) error {
	for it, end := m.Begin(), m.End(); !it.Equal(end); it.Next() {
		col := it.Value()
		for jt, jend := col.Begin(), col.End(); !jt.Equal(jend); jt.Next() {
			if _, err := fmt.Fprintf(w, "%v\t", *jt.Value()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
