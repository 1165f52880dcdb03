package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAccessors(t *testing.T) {
	var a Array[int]

	_, err := a.FrontChecked()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = a.BackChecked()
	require.ErrorIs(t, err, ErrEmpty)
	require.ErrorIs(t, a.PopBackChecked(), ErrEmpty)
	_, err = a.AtChecked(0)
	require.ErrorIs(t, err, ErrOutOfRange)

	require.NoError(t, a.Reserve(8))
	require.NoError(t, a.PushBack(5))
	require.NoError(t, a.PushBack(6))

	p, err := a.AtChecked(1)
	require.NoError(t, err)
	assert.Equal(t, 6, *p)

	for _, i := range []int{-1, 2, 7} {
		_, err = a.AtChecked(i)
		assert.ErrorIs(t, err, ErrOutOfRange, "index %d", i)
	}

	f, err := a.FrontChecked()
	require.NoError(t, err)
	assert.Equal(t, 5, *f)
	b, err := a.BackChecked()
	require.NoError(t, err)
	assert.Equal(t, 6, *b)

	require.NoError(t, a.PopBackChecked())
	require.NoError(t, a.PopBackChecked())
	require.ErrorIs(t, a.PopBackChecked(), ErrEmpty)
	assert.Equal(t, 0, a.Len())
}

func TestValidate(t *testing.T) {
	a := mustOf(t, 1, 2, 3)
	require.NoError(t, a.Validate())

	tests := []struct {
		name    string
		corrupt func(a *Array[int])
	}{
		{"length above capacity", func(a *Array[int]) { a.count = len(a.buf) + 1 }},
		{"negative length", func(a *Array[int]) { a.count = -1 }},
		{"empty non-nil buffer", func(a *Array[int]) { a.buf, a.count = []int{}, 0 }},
		{"dirty raw slot", func(a *Array[int]) { a.count = 2 }},
		{"region with spare capacity", func(a *Array[int]) { a.buf = append(a.buf[:3:3], 0)[:3] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := a.Clone()
			require.NoError(t, err)
			tt.corrupt(&c)
			assert.ErrorIs(t, c.Validate(), ErrCorrupt)
		})
	}
}
