// Package pool implements the per-(size class, scanned?) pool: a
// growable, page-backed table of slots plus the occupancy and mark
// bitmaps that track them.
//
// Grounded on the teacher's per-HBIN bookkeeping in hive/alloc/fastalloc.go
// (one hbinStats/hbinRange entry per mapped region, tracked in an
// append-only table) and on its segregated free-structure idiom
// (freeList/freeCellHeap, one per size class) — re-purposed here from a
// heap of free byte ranges to a bitmap of occupied fixed-size slots, which
// is what spec.md's occupancy/mark bitmap design calls for.
package pool

import (
	"errors"

	"github.com/nordlow/druntime/galloc/bitmap"
	"github.com/nordlow/druntime/galloc/pagearray"
	"github.com/nordlow/druntime/galloc/pagemap"
)

// ErrOutOfMemory is returned when mapping a new page fails.
var ErrOutOfMemory = errors.New("pool: out of memory")

// Entry is a page-table entry: an owning page plus its occupancy and mark
// bitmaps. Invariant: Page is never nil for a live entry; both bitmaps have
// length equal to the page's slot count.
type Entry struct {
	Page []byte
	Occ  *bitmap.Bitmap
	Mark *bitmap.Bitmap
}

// cursor is the monotonic next-slot hint: (page index, intra-page slot
// index). It may lag the true first-free slot once frees occur — the
// occupancy bitmap is authoritative, the cursor is only a hint for
// sequential allocation.
type cursor struct {
	page int
	slot int
}

// Pool owns one (size class, scanned?) pool's pages and bitmaps.
type Pool struct {
	sizeClass    int
	scanned      bool
	pageSize     int
	slotsPerPage int

	pages  pagearray.Array[Entry]
	cursor cursor
}

// New constructs an empty pool for sizeClass, with scanned recording
// whether the collector's mark phase will look inside its slots for
// pointers. slotsPerPage must be >= 1 (callers compute it via
// sizeclass.SlotsPerPage).
func New(sizeClass int, scanned bool, pageSize, slotsPerPage int) *Pool {
	return &Pool{
		sizeClass:    sizeClass,
		scanned:      scanned,
		pageSize:     pageSize,
		slotsPerPage: slotsPerPage,
	}
}

// SizeClass returns the pool's size class.
func (p *Pool) SizeClass() int { return p.sizeClass }

// Scanned reports whether slots in this pool are scanned for pointers.
func (p *Pool) Scanned() bool { return p.scanned }

// NumPages returns the number of page-table entries currently owned by the
// pool. Each entry is one mapping; for a class larger than one OS page that
// mapping spans several OS pages.
func (p *Pool) NumPages() int { return p.pages.Len() }

// PageEntry returns a pointer to the i'th page-table entry. Precondition:
// i < NumPages().
func (p *Pool) PageEntry(i int) *Entry { return p.pages.At(i) }

// slotAddr returns the byte range of slot s within page-table entry e.
func (p *Pool) slotAddr(e *Entry, s int) []byte {
	off := s * p.sizeClass
	return e.Page[off : off+p.sizeClass]
}

// AllocateNext returns a pointer to a free slot, mapping a new page from
// the OS only when the pool has no room left at the cursor. Implements
// spec.md §4.6's Allocate-next algorithm: the cursor is authoritative for
// sequential allocation; see FindFreeSlot for the bitmap-driven search a
// mark/sweep pass uses to reset it.
func (p *Pool) AllocateNext() ([]byte, error) {
	if p.cursor.page >= p.pages.Len() {
		// First allocation, or just crossed a page boundary: map a new
		// page and append its page-table entry. A slot larger than one
		// page (a medium class) gets as many whole pages as it spans.
		mapBytes := p.pageSize
		if need := p.slotsPerPage * p.sizeClass; need > mapBytes {
			mapBytes = need
		}
		page := pagemap.Map(mapBytes)
		if page == nil {
			return nil, ErrOutOfMemory
		}
		entry := Entry{
			Page: page,
			Occ:  bitmap.New(p.slotsPerPage),
			Mark: bitmap.New(p.slotsPerPage),
		}
		if err := p.pages.InsertBack(entry); err != nil {
			if unmapErr := pagemap.Unmap(page); unmapErr != nil {
				return nil, unmapErr
			}
			return nil, ErrOutOfMemory
		}
		p.cursor.page = p.pages.Len() - 1
		p.cursor.slot = 0
	}

	e := p.pages.At(p.cursor.page)
	s := p.cursor.slot
	e.Occ.Set(s)
	addr := p.slotAddr(e, s)

	p.cursor.slot++
	if p.cursor.slot >= p.slotsPerPage {
		p.cursor.page++
		p.cursor.slot = 0
	}

	return addr, nil
}

// FindFreeSlot walks the occupancy bitmaps in page order looking for the
// earliest free slot, without consuming it. It is the bitmap-driven
// tie-break policy spec.md §4.6 describes for a mature pool with freed
// slots: a mark/sweep pass uses it to reset the cursor after a collection.
// Returns (pageIdx, slotIdx, true), or (0, 0, false) if every allocated
// page is completely full.
func (p *Pool) FindFreeSlot() (int, int, bool) {
	for i := 0; i < p.pages.Len(); i++ {
		e := p.pages.At(i)
		if e.Occ.AllOnes() {
			continue
		}
		slot := e.Occ.FirstZeroIndex()
		if slot < e.Occ.Len() {
			return i, slot, true
		}
	}
	return 0, 0, false
}

// ResetCursor repositions the allocation cursor at (pageIdx, slotIdx),
// letting a mark/sweep pass redirect sequential allocation at the earliest
// free slot it found via FindFreeSlot instead of always growing at the
// tail.
func (p *Pool) ResetCursor(pageIdx, slotIdx int) {
	p.cursor.page = pageIdx
	p.cursor.slot = slotIdx
}

// SlotAt returns the byte range of slot (pageIdx, slotIdx) without
// allocating or mutating occupancy state.
func (p *Pool) SlotAt(pageIdx, slotIdx int) []byte {
	return p.slotAddr(p.pages.At(pageIdx), slotIdx)
}

// ResetMarks zero-initializes every page's mark bitmap at the start of a
// mark phase, as spec.md's page-table entry invariant requires.
func (p *Pool) ResetMarks() {
	for i := 0; i < p.pages.Len(); i++ {
		p.pages.At(i).Mark.Reset()
	}
}

// ClearOccupancy clears occupancy bit slotIdx on page pageIdx, conservatively
// marking that slot free. Used by Free when the owning slot can be
// located.
func (p *Pool) ClearOccupancy(pageIdx, slotIdx int) {
	p.pages.At(pageIdx).Occ.Clear(slotIdx)
}

// Locate finds the (pageIdx, slotIdx) owning addr, if addr lies inside one
// of this pool's pages. Used by the conservative Free path (spec.md §9's
// fix for the source's incorrect free-to-foreign-allocator delegation).
func (p *Pool) Locate(addr []byte) (pageIdx, slotIdx int, ok bool) {
	if len(addr) == 0 {
		return 0, 0, false
	}
	for i := 0; i < p.pages.Len(); i++ {
		e := p.pages.At(i)
		start := addrOf(e.Page)
		if start == 0 {
			continue
		}
		a := addrOf(addr)
		if a < start || a >= start+uintptr(len(e.Page)) {
			continue
		}
		off := int(a - start)
		return i, off / p.sizeClass, true
	}
	return 0, 0, false
}
