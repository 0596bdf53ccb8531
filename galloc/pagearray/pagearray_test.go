package pagearray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_RoundTrip1000Uint64s(t *testing.T) {
	var a Array[uint64]
	require.NoError(t, a.SetLength(1000))
	assert.Equal(t, 1000, a.Len())
	assert.True(t, a.CapacityInBytes() >= 1000*8)
	assert.Equal(t, 0, a.CapacityInBytes()%4096, "capacity is always a whole number of pages")

	for i := 0; i < 1000; i++ {
		*a.At(i) = uint64(i)
	}
	for i := 0; i < 1000; i++ {
		assert.Equal(t, uint64(i), *a.At(i))
	}

	require.NoError(t, a.SetLength(0))
	assert.True(t, a.Empty())
	assert.Equal(t, 0, a.CapacityInBytes())
}

func TestArray_InsertBackAndPopBack(t *testing.T) {
	var a Array[int]
	for i := 0; i < 10; i++ {
		require.NoError(t, a.InsertBack(i * i))
	}
	assert.Equal(t, 10, a.Len())
	assert.Equal(t, 81, *a.Back())
	assert.Equal(t, 0, *a.Front())

	a.PopBack()
	assert.Equal(t, 9, a.Len())
	assert.Equal(t, 64, *a.Back())
}

func TestArray_Remove(t *testing.T) {
	var a Array[int]
	for _, v := range []int{10, 20, 30, 40} {
		require.NoError(t, a.InsertBack(v))
	}
	a.Remove(1)
	assert.Equal(t, []int{10, 30, 40}, a.Slice())
}

func TestArray_Swap(t *testing.T) {
	var a, b Array[int]
	require.NoError(t, a.InsertBack(1))
	require.NoError(t, b.InsertBack(2))
	require.NoError(t, b.InsertBack(3))

	a.Swap(&b)
	assert.Equal(t, []int{2, 3}, a.Slice())
	assert.Equal(t, []int{1}, b.Slice())
}

func TestArray_ShrinkThenGrowReusesCapacity(t *testing.T) {
	var a Array[int]
	require.NoError(t, a.SetLength(2000))
	cap1 := a.CapacityInBytes()
	require.NoError(t, a.SetLength(10))
	assert.Equal(t, cap1, a.CapacityInBytes(), "shrinking to a nonzero length keeps every page")
	require.NoError(t, a.SetLength(2000))
	assert.Equal(t, cap1, a.CapacityInBytes())
}

func TestArray_IndexOutOfRangePanics(t *testing.T) {
	var a Array[int]
	require.NoError(t, a.InsertBack(1))
	assert.Panics(t, func() { a.At(1) })
	assert.Panics(t, func() { a.At(-1) })
}
