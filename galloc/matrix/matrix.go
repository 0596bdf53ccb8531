// Package matrix implements the pool matrix: exactly |classes|*2 pools,
// keyed by (size class, scanned bit), dispatched by a compile-time-known
// size class.
//
// Grounded on the teacher's Allocator interface and its two interchangeable
// implementations (hive/alloc/interface.go's Allocator, satisfied by both
// FastAllocator and BumpAllocator) — Matrix plays the FastAllocator role,
// generalized from one free-structure per size class to one bitmap pool per
// (size class, scanned?) pair. Dispatch indexes one of two per-rank pool
// slices, scanned and unscanned (spec.md §9 design-note strategy (b)), so
// qalloc costs one bit test plus the class ceiling and rank lookups.
package matrix

import (
	"errors"

	"github.com/nordlow/druntime/galloc/pool"
	"github.com/nordlow/druntime/galloc/sizeclass"
	"github.com/nordlow/druntime/internal/cpu"
)

// ErrOutOfMemory is returned when the requested size exceeds the largest
// compiled-in size class, or the underlying pool fails to map a page.
var ErrOutOfMemory = errors.New("matrix: out of memory")

// AttrBits are the verbatim-passed-through request attributes.
type AttrBits uint32

// NoScan selects the unscanned pool: slots allocated with this bit set are
// never scanned for pointers.
const NoScan AttrBits = 1 << 0

// BlockInfo is the (base, size, attr) triple returned by qalloc.
type BlockInfo struct {
	Base []byte
	Size int
	Attr AttrBits
}

// Matrix owns exactly table.NumClasses()*2 pools.
type Matrix struct {
	table     *sizeclass.Table
	scanned   []*pool.Pool // indexed by class rank
	unscanned []*pool.Pool // indexed by class rank
}

// New constructs a Matrix for cfg's compiled-in size classes. Pools are
// empty until their first allocation (lazily mapped per spec.md's
// lifecycle summary).
func New(cfg sizeclass.Config) *Matrix {
	table := sizeclass.NewTable(cfg)
	pageSize := cpu.PageSize()
	m := &Matrix{
		table:     table,
		scanned:   make([]*pool.Pool, table.NumClasses()),
		unscanned: make([]*pool.Pool, table.NumClasses()),
	}
	for rank, sc := range table.Classes() {
		slots := sizeclass.SlotsPerPage(sc, pageSize)
		m.scanned[rank] = pool.New(sc, true, pageSize, slots)
		m.unscanned[rank] = pool.New(sc, false, pageSize, slots)
	}
	return m
}

// Table returns the matrix's size-class table.
func (m *Matrix) Table() *sizeclass.Table { return m.table }

// PoolFor returns the pool for (size class rank, scanned?), or nil if rank
// is out of range.
func (m *Matrix) PoolFor(rank int, scanned bool) *pool.Pool {
	if rank < 0 || rank >= len(m.scanned) {
		return nil
	}
	if scanned {
		return m.scanned[rank]
	}
	return m.unscanned[rank]
}

// Qalloc ceilings size to the smallest compiled-in class >= max(size,
// Smallest), selects the scanned or unscanned pool based on attr&NoScan,
// and returns the allocated slot. Fails with ErrOutOfMemory if size
// exceeds the largest compiled-in class or the chosen pool cannot map a
// new page.
func (m *Matrix) Qalloc(size int, attr AttrBits) (BlockInfo, error) {
	cls := m.table.Ceil(size)
	if cls == 0 {
		return BlockInfo{}, ErrOutOfMemory
	}
	rank := m.table.ClassRank(cls)
	p := m.PoolFor(rank, attr&NoScan == 0)

	base, err := p.AllocateNext()
	if err != nil {
		return BlockInfo{}, ErrOutOfMemory
	}
	return BlockInfo{Base: base, Size: cls, Attr: attr}, nil
}

// AllPools calls fn for every pool in the matrix, scanned pools first, in
// ascending class-rank order within each. Used by sweep/stat walks.
func (m *Matrix) AllPools(fn func(p *pool.Pool)) {
	for _, p := range m.scanned {
		fn(p)
	}
	for _, p := range m.unscanned {
		fn(p)
	}
}

// LocatePool returns the pool owning addr, and its (pageIdx, slotIdx)
// within that pool, searching unscanned pools first since conservative
// Free() calls are more often issued against leaf, pointer-free payloads.
// Returns ok=false if addr lies in none of the matrix's pages.
func (m *Matrix) LocatePool(addr []byte) (p *pool.Pool, pageIdx, slotIdx int, ok bool) {
	for _, candidate := range m.unscanned {
		if pi, si, found := candidate.Locate(addr); found {
			return candidate, pi, si, true
		}
	}
	for _, candidate := range m.scanned {
		if pi, si, found := candidate.Locate(addr); found {
			return candidate, pi, si, true
		}
	}
	return nil, 0, 0, false
}
