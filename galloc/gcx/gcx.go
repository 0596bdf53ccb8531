// Package gcx implements the allocator instance (spec.md §4.8): a pool
// matrix plus root/range registries and a disable-depth counter, in both a
// spinlock-guarded global flavor and an unlocked, single-goroutine-owned
// flavor.
//
// Grounded on the teacher's FastAllocator struct shape (hive/alloc/fastalloc.go:
// one struct owning matrix-equivalent state, a stats struct, and lifecycle
// methods reachable through the shared Allocator interface) and on its
// always-release-the-lock discipline in hive/dirty's guarded flush path,
// generalized into the explicit internal/spinlock.Guard helper.
package gcx

import (
	"fmt"

	"github.com/nordlow/druntime/galloc/matrix"
	"github.com/nordlow/druntime/galloc/sizeclass"
	"github.com/nordlow/druntime/internal/spinlock"
)

// DebugChecks gates the bag-membership precondition check (removing an
// absent root or range), which spec.md §7.3 says aborts with a diagnostic
// in debug builds and is undefined in release builds. Index bounds in
// galloc/bitmap and galloc/pagearray are checked unconditionally. Mirrors the teacher's debugAlloc/logAlloc
// compile-time-and-env toggles (hive/alloc/fastalloc.go), but as a plain
// variable rather than a build-tagged constant so tests can flip it.
var DebugChecks = true

// Gcx is one allocator instance: a pool matrix plus root and range bags and
// a disable-collection depth counter.
type Gcx struct {
	matrix       *matrix.Matrix
	roots        Bag[Root]
	ranges       Bag[Range]
	disableDepth int

	lock *spinlock.Spinlock // nil for an unlocked (thread-local) instance
}

// New constructs an unlocked allocator instance — the "thread-local"
// flavor of spec.md §4.8. The returned *Gcx must be used by a single
// goroutine at a time; spec.md's thread-local contract ("no cross-thread
// operations... attempting one is undefined") is the closest Go-idiomatic
// reading available in a language without real thread-local storage (see
// DESIGN.md).
func New(cfg sizeclass.Config) *Gcx {
	return &Gcx{matrix: matrix.New(cfg)}
}

// newLocked constructs an allocator instance guarded by its own spinlock —
// used only for the process-wide global instance.
func newLocked(cfg sizeclass.Config) *Gcx {
	g := New(cfg)
	g.lock = &spinlock.Spinlock{}
	return g
}

// withLock runs fn under g's lock if g has one (the global instance);
// otherwise runs fn directly (a thread-local instance, single-owner by
// contract). On the locked instance, returns ErrInvalidMemoryOperation
// without running fn while the process-wide finalizer-running flag is set
// (see SetFinalizerRunning), rather than deadlocking (spec.md §5's
// finalizer-reentrancy rule).
func (g *Gcx) withLock(fn func() error) error {
	if g.lock == nil {
		return fn()
	}
	if finalizerRunning.Load() {
		return ErrInvalidMemoryOperation
	}
	var err error
	spinlock.Guard(g.lock, func() {
		err = fn()
	})
	return err
}

// Malloc allocates size bytes with the given attribute bits, ignoring
// typeInfo (object-type-info plumbing is out of scope — spec.md §1) and
// returning only the base pointer.
func (g *Gcx) Malloc(size int, attr matrix.AttrBits, typeInfo TypeInfo) ([]byte, error) {
	bi, err := g.Qalloc(size, attr)
	if err != nil {
		return nil, err
	}
	return bi.Base, nil
}

// Qalloc allocates size bytes with the given attribute bits and returns the
// full BlockInfo (base, ceilinged size, attr verbatim).
func (g *Gcx) Qalloc(size int, attr matrix.AttrBits) (matrix.BlockInfo, error) {
	var bi matrix.BlockInfo
	err := g.withLock(func() error {
		var qerr error
		bi, qerr = g.matrix.Qalloc(size, attr)
		if qerr != nil {
			return fmt.Errorf("qalloc: %w", ErrOutOfMemory)
		}
		return nil
	})
	return bi, err
}

// Calloc allocates like Qalloc and zero-fills the returned slot.
func (g *Gcx) Calloc(size int, attr matrix.AttrBits) (matrix.BlockInfo, error) {
	bi, err := g.Qalloc(size, attr)
	if err != nil {
		return bi, err
	}
	for i := range bi.Base {
		bi.Base[i] = 0
	}
	return bi, nil
}

// Free conservatively clears the occupancy bit of the slot owning p, if it
// can be located in this instance's matrix; otherwise it is a no-op.
// spec.md §9's fix for the source's incorrect delegation to a foreign
// allocator: a slab pointer is never handed to anything but this matrix.
func (g *Gcx) Free(p []byte) error {
	return g.withLock(func() error {
		if pl, pageIdx, slotIdx, ok := g.matrix.LocatePool(p); ok {
			pl.ClearOccupancy(pageIdx, slotIdx)
		}
		return nil
	})
}

// Matrix exposes the instance's pool matrix for read-only inspection (a
// mark/sweep pass walks it via matrix.Matrix.AllPools). Only valid on an
// unlocked (thread-local) instance: matrix.Matrix's fast-path allocators
// (galloc/matrix/fastpath.go) mutate pool bitmaps and pagearrays with no
// locking of their own, so handing this out for the global instance would
// let a caller bypass g.lock entirely. Panics if called on a locked
// instance (spec.md §5: every public entry point touching the pool matrix
// on the global instance acquires the spinlock first).
func (g *Gcx) Matrix() *matrix.Matrix {
	if g.lock != nil {
		panic("gcx: Matrix is not accessible on the locked global instance")
	}
	return g.matrix
}

// AddRoot registers r as an additional liveness anchor.
func (g *Gcx) AddRoot(r Root) error {
	return g.withLock(func() error { g.roots.Add(r); return nil })
}

// RemoveRoot removes the first occurrence of r. Removing an absent root is
// a programming error (spec.md §9: "preserve the behavior").
func (g *Gcx) RemoveRoot(r Root) error {
	return g.withLock(func() error { g.roots.Remove(r); return nil })
}

// Roots returns a copy of the registered roots, taken under g's lock so a
// concurrent AddRoot/RemoveRoot on the global instance can never race with
// the read of the underlying slice header (spec.md §5).
func (g *Gcx) Roots() []Root {
	var out []Root
	_ = g.withLock(func() error {
		out = append([]Root(nil), g.roots.Items()...)
		return nil
	})
	return out
}

// AddRange registers rg as a conservative scan range.
func (g *Gcx) AddRange(rg Range) error {
	return g.withLock(func() error { g.ranges.Add(rg); return nil })
}

// RemoveRange removes the first occurrence of rg. Removing an absent range
// is a programming error (spec.md §9: "preserve the behavior").
func (g *Gcx) RemoveRange(rg Range) error {
	return g.withLock(func() error { g.ranges.Remove(rg); return nil })
}

// Ranges returns a copy of the registered ranges, taken under g's lock for
// the same reason Roots does (spec.md §5).
func (g *Gcx) Ranges() []Range {
	var out []Range
	_ = g.withLock(func() error {
		out = append([]Range(nil), g.ranges.Items()...)
		return nil
	})
	return out
}

// Disable increments the disable-collection depth.
func (g *Gcx) Disable() error {
	return g.withLock(func() error { g.disableDepth++; return nil })
}

// Enable decrements the disable-collection depth.
func (g *Gcx) Enable() error {
	return g.withLock(func() error {
		if g.disableDepth > 0 {
			g.disableDepth--
		}
		return nil
	})
}

// CollectionDisabled reports whether collection is currently suppressed,
// read under g's lock so it never races with a concurrent Disable/Enable on
// the global instance (spec.md §5).
func (g *Gcx) CollectionDisabled() bool {
	var disabled bool
	_ = g.withLock(func() error {
		disabled = g.disableDepth > 0
		return nil
	})
	return disabled
}

// InFinalizer always reports false in this core — finalizer invocation is
// out of scope (spec.md §1); the host runtime tracks its own
// finalizer-running state via SetFinalizerRunning.
func (g *Gcx) InFinalizer() bool { return false }

// Stats returns the zero value: accurate statistics are an explicit
// non-goal (spec.md §1).
func (g *Gcx) Stats() Stats { return Stats{} }
