package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordlow/druntime/galloc/pool"
	"github.com/nordlow/druntime/galloc/sizeclass"
)

func TestMatrix_QallocDispatchesByCeilAndScanBit(t *testing.T) {
	m := New(sizeclass.SmallOnly)

	bi, err := m.Qalloc(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, bi.Size, "a 1-byte scanned request ceils to the smallest class")
	assert.Equal(t, AttrBits(0), bi.Attr)

	bi, err = m.Qalloc(200, NoScan)
	require.NoError(t, err)
	assert.Equal(t, 256, bi.Size)
	assert.Equal(t, NoScan, bi.Attr)
}

func TestMatrix_QallocOutOfMemoryBeyondLargestClass(t *testing.T) {
	m := New(sizeclass.SmallOnly)
	_, err := m.Qalloc(5000, 0)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestMatrix_QallocWithMediumSatisfiesLargeRequest(t *testing.T) {
	m := New(sizeclass.WithMedium)
	bi, err := m.Qalloc(5000, 0)
	require.NoError(t, err)
	assert.Equal(t, 8192, bi.Size)
}

func TestMatrix_ScannedAndUnscannedPoolsAreDistinct(t *testing.T) {
	m := New(sizeclass.SmallOnly)
	scanned := m.PoolFor(0, true)
	unscanned := m.PoolFor(0, false)
	require.NotNil(t, scanned)
	require.NotNil(t, unscanned)
	assert.NotSame(t, scanned, unscanned)
	assert.True(t, scanned.Scanned())
	assert.False(t, unscanned.Scanned())
}

func TestMatrix_LocatePoolRoundTrip(t *testing.T) {
	m := New(sizeclass.SmallOnly)
	bi, err := m.Qalloc(16, NoScan)
	require.NoError(t, err)

	p, pageIdx, slotIdx, ok := m.LocatePool(bi.Base)
	require.True(t, ok)
	assert.False(t, p.Scanned())
	assert.Equal(t, 0, pageIdx)
	assert.Equal(t, 0, slotIdx)
}

func TestMatrix_FastPathMatchesQalloc(t *testing.T) {
	m := New(sizeclass.SmallOnly)
	direct, err := m.AllocClass256(true)
	require.NoError(t, err)

	p := m.PoolFor(m.Table().ClassRank(256), true)
	_, _, ok := p.Locate(direct)
	assert.True(t, ok)
}

func TestMatrix_AllPoolsVisitsEveryRank(t *testing.T) {
	m := New(sizeclass.SmallOnly)
	seen := 0
	m.AllPools(func(p *pool.Pool) { seen++ })
	assert.Equal(t, 2*m.Table().NumClasses(), seen)
}
