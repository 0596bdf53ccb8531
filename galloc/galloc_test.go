package galloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordlow/druntime/galloc/gcx"
	"github.com/nordlow/druntime/galloc/pool"
	"github.com/nordlow/druntime/galloc/sizeclass"
)

func TestScenario_S1_SingleByteNoScanTwice(t *testing.T) {
	g := NewThreadLocal(sizeclass.SmallOnly)

	bi1, err := g.Qalloc(1, NoScan)
	require.NoError(t, err)
	assert.Equal(t, 8, bi1.Size)
	assert.Equal(t, NoScan, bi1.Attr)

	bi2, err := g.Qalloc(1, NoScan)
	require.NoError(t, err)
	assert.Equal(t, uintptr(unsafe.Pointer(&bi1.Base[0]))+8, uintptr(unsafe.Pointer(&bi2.Base[0])))
}

func TestScenario_S2_256ScannedAllocsMapExactlyOnePage(t *testing.T) {
	g := NewThreadLocal(sizeclass.SmallOnly)
	m := g.Matrix()
	p := m.PoolFor(m.Table().ClassRank(16), true)

	for i := 0; i < 256; i++ {
		_, err := g.Qalloc(16, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, p.NumPages())
	}

	_, err := g.Qalloc(16, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, p.NumPages(), "the 257th allocation maps a second page")
}

func TestScenario_S3_5000ByteRequestFailsWithoutMedium(t *testing.T) {
	g := NewThreadLocal(sizeclass.SmallOnly)
	m := g.Matrix()
	before := 0
	m.AllPools(func(p *pool.Pool) { before += p.NumPages() })

	_, err := g.Qalloc(5000, 0)
	assert.ErrorIs(t, err, gcx.ErrOutOfMemory)

	after := 0
	m.AllPools(func(p *pool.Pool) { after += p.NumPages() })
	assert.Equal(t, before, after, "a failed request must not map any page")
}

func TestScenario_S6_RootAddRemoveIterationAndDoubleRemoveAborts(t *testing.T) {
	g := NewThreadLocal(sizeclass.SmallOnly)
	var v1, v2 int
	r1 := Root(unsafe.Pointer(&v1))
	r2 := Root(unsafe.Pointer(&v2))

	require.NoError(t, g.AddRoot(r1))
	require.NoError(t, g.AddRoot(r2))
	require.NoError(t, g.RemoveRoot(r1))
	assert.Equal(t, []Root{r2}, g.Roots())

	require.NoError(t, g.RemoveRoot(r2))
	assert.Empty(t, g.Roots())

	assert.Panics(t, func() { _ = g.RemoveRoot(r1) })
}
