package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap_SetClearGet(t *testing.T) {
	b := New(127)
	assert.Equal(t, 127, b.Len())
	assert.False(t, b.AllOnes())

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(126)
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(63))
	assert.True(t, b.Get(64))
	assert.True(t, b.Get(126))
	assert.False(t, b.Get(1))
	assert.Equal(t, 4, b.CountOnes())

	b.Clear(63)
	assert.False(t, b.Get(63))
	assert.Equal(t, 3, b.CountOnes())

	b.Assign(10, true)
	assert.True(t, b.Get(10))
	b.Assign(10, false)
	assert.False(t, b.Get(10))
}

func TestBitmap_FirstSetAndFirstZero(t *testing.T) {
	b := New(127)
	assert.Equal(t, 127, b.FirstSetIndex(), "all-zero bitmap reports Len() as first-set")
	assert.Equal(t, 0, b.FirstZeroIndex())

	b.Set(0)
	assert.Equal(t, 0, b.FirstSetIndex())
	assert.Equal(t, 1, b.FirstZeroIndex())

	for i := 0; i < 126; i++ {
		b.Set(i)
	}
	assert.Equal(t, 126, b.FirstZeroIndex())
	b.Set(126)
	assert.Equal(t, 127, b.FirstZeroIndex())
	assert.True(t, b.AllOnes())
}

func TestBitmap_Reset(t *testing.T) {
	b := New(65)
	b.Set(0)
	b.Set(64)
	b.Reset()
	assert.Equal(t, 0, b.CountOnes())
	assert.Equal(t, 65, b.FirstSetIndex())
}

func TestBitmap_IndexPanics(t *testing.T) {
	b := New(8)
	require.Panics(t, func() { b.Get(8) })
	require.Panics(t, func() { b.Set(-1) })
}

func TestBitmap_ZeroLength(t *testing.T) {
	b := New(0)
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.AllOnes(), "an empty bitmap vacuously has every bit set")
}
