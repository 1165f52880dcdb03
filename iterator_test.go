package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorWalk(t *testing.T) {
	a := mustOf(t, 10, 20, 30)

	var got []int
	for it, end := a.Begin(), a.End(); !it.Equal(end); it.Next() {
		got = append(got, *it.Value())
	}
	assert.Equal(t, []int{10, 20, 30}, got)

	for it, end := a.Begin(), a.End(); !it.Equal(end); it.Next() {
		*it.Value() *= 2
	}
	assert.Equal(t, []int{20, 40, 60}, a.Slice())
}

func TestIteratorPreAndPostAdvance(t *testing.T) {
	a := mustOf(t, 1, 2, 3)
	it := a.Begin()

	prev := it.PostNext()
	assert.Equal(t, 1, *prev.Value())
	assert.Equal(t, 2, *it.Value())

	next := it.Next()
	assert.Equal(t, 3, *next.Value())
	assert.True(t, next.Equal(it))

	it.Next()
	assert.True(t, it.Equal(a.End()))
	assert.False(t, prev.Equal(it))
}

func TestIteratorEmpty(t *testing.T) {
	var a Array[int]
	assert.True(t, a.Begin().Equal(a.End()))

	require.NoError(t, a.Reserve(4))
	assert.True(t, a.Begin().Equal(a.End()), "capacity alone yields nothing")
}

func TestIteratorIdentity(t *testing.T) {
	a := mustOf(t, 1, 2)
	b := mustOf(t, 1, 2)
	assert.False(t, a.Begin().Equal(b.Begin()), "positions in different buffers differ")
	assert.True(t, a.Begin().Equal(a.Begin()))
}

func TestAllAndValues(t *testing.T) {
	a := mustOf(t, "x", "y", "z")

	var idx []int
	var vals []string
	for i, v := range a.All() {
		idx = append(idx, i)
		vals = append(vals, *v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"x", "y", "z"}, vals)

	vals = nil
	for v := range a.Values() {
		if *v == "y" {
			break
		}
		vals = append(vals, *v)
	}
	assert.Equal(t, []string{"x"}, vals)

	seq := a.Values()
	a.PopBack()
	n := 0
	for range seq {
		n++
	}
	assert.Equal(t, 3, n, "a sequence covers the elements live when it was obtained")
}

func TestNestedIteration(t *testing.T) {
	var m Array[Array[int]]
	for i := range 3 {
		row := mustOf(t, i, i+1)
		require.NoError(t, m.PushBack(row))
	}

	sum := 0
	for it, end := m.Begin(), m.End(); !it.Equal(end); it.Next() {
		for v := range it.Value().Values() {
			sum += *v
		}
	}
	assert.Equal(t, 9, sum)
}
