// Package demo runs the column-swap matrix product scenario: two generated
// matrices have columns exchanged between them, are multiplied, and are
// then emptied element by element and by Clear.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/pavanmanishd/array"
	"github.com/pavanmanishd/array/internal/config"
	"github.com/pavanmanishd/array/matrix"
	"github.com/sirupsen/logrus"
)

// ErrTooSmall is returned when the matrices cannot hold the swapped columns.
var ErrTooSmall = errors.New("demo: matrix too small for the column swaps")

// Operands builds the two size×size operands by nested PushBack. Column i
// of a holds 0.3*i + 0.5*j in row j; column i of b is the same column with
// its last element replaced by 10*i.
func Operands(size int) (a, b matrix.Matrix[float32], err error) {
	if err := a.Reserve(size); err != nil {
		return a, b, err
	}
	if err := b.Reserve(size); err != nil {
		a.Destroy()
		return a, b, err
	}

	for i := 0; i < size; i++ {
		if err := pushColumns(&a, &b, i, size); err != nil {
			a.Destroy()
			b.Destroy()
			return a, b, err
		}
	}
	return a, b, nil
}

// pushColumns appends copies of column i to a and b.
func pushColumns(a, b *matrix.Matrix[float32], i, size int) error {
	var col array.Array[float32]
	defer col.Destroy()

	if err := col.Reserve(size); err != nil {
		return err
	}
	for j := 0; j < size; j++ {
		if err := col.PushBack(float32(0.3*float64(i) + 0.5*float64(j))); err != nil {
			return err
		}
	}
	if err := a.PushBack(col); err != nil {
		return err
	}

	col.PopBack()
	if err := col.PushBack(float32(10 * i)); err != nil {
		return err
	}
	return b.PushBack(col)
}

// Permute exchanges column 5 of a with column 2 of b, then column 3 of b
// with column 0 of a.
func Permute(a, b *matrix.Matrix[float32]) {
	a.At(5).Swap(b.At(2))
	b.At(3).Swap(a.At(0))
}

// Product builds the operands, permutes them, multiplies them and empties
// the operands again. opts apply to the product's columns.
func Product(size int, opts ...matrix.Option[float32]) (matrix.Matrix[float32], error) {
	if size < config.MinSize {
		return matrix.Matrix[float32]{}, fmt.Errorf("size %d: %w", size, ErrTooSmall)
	}
	a, b, err := Operands(size)
	if err != nil {
		return matrix.Matrix[float32]{}, err
	}
	defer a.Destroy()
	defer b.Destroy()

	Permute(&a, &b)
	c, err := matrix.Mult(&a, &b, opts...)
	if err != nil {
		return matrix.Matrix[float32]{}, err
	}

	for !a.Empty() {
		a.PopBack()
	}
	b.Clear()
	return c, nil
}

// Run computes the product for s and writes it to w, one column per line.
func Run(s config.Settings, log logrus.FieldLogger, w io.Writer) error {
	var col array.Allocator[float32] = array.HeapAllocator[float32]{Logger: log}
	if s.ArenaChunk > 0 {
		ar := array.NewArena[float32](s.ArenaChunk)
		ar.Logger = log
		defer ar.Release()
		if err := ar.EnsureCapacity(s.Size * s.Size); err != nil {
			return fmt.Errorf("demo: presize arena: %w", err)
		}
		defer func() {
			m := ar.Metrics()
			log.WithFields(logrus.Fields{
				"slots":       m.SlotsInUse,
				"bytes":       m.BytesInUse,
				"chunks":      m.NumChunks,
				"utilization": m.Utilization,
			}).Info("arena usage")
		}()
		col = ar
	}

	c, err := Product(s.Size, matrix.WithColumnAllocator(col))
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	defer c.Destroy()

	m := c.Metrics()
	log.WithFields(logrus.Fields{
		"columns":  m.Len,
		"capacity": m.Cap,
	}).Info("product computed")

	return matrix.Write(w, &c)
}
