// Package galloc is the public facade of the segregated-fits, page-backed
// slab allocator core: the vtable-shaped surface a host collector consumes
// (spec.md §6), backed by the gcx, matrix, pool, pagearray, bitmap, and
// sizeclass packages.
//
// Grounded on the teacher's Allocator interface
// (hive/alloc/interface.go) — method-set-per-capability, doc-commented
// with concrete examples, closed with a compile-time
// "var _ Allocator = (*impl)(nil)" assertion, the same pattern used in
// hive/alloc/bump.go.
package galloc

import (
	"github.com/nordlow/druntime/galloc/gcx"
	"github.com/nordlow/druntime/galloc/matrix"
	"github.com/nordlow/druntime/galloc/sizeclass"
)

// Re-exported so callers don't need to import galloc/matrix and galloc/gcx
// directly for the common case.
type (
	AttrBits  = matrix.AttrBits
	BlockInfo = matrix.BlockInfo
	Root      = gcx.Root
	Range     = gcx.Range
	TypeInfo  = gcx.TypeInfo
	Stats     = gcx.Stats
)

// NoScan selects the unscanned pool (spec.md §6).
const NoScan = matrix.NoScan

// Allocator is the capability surface spec.md §6 calls "the allocator
// vtable": the contracts the host collector's mark/sweep pass and public
// GC interface consume, independent of whether the concrete instance is
// the global, locked one or a caller-owned, unlocked one.
type Allocator interface {
	Malloc(size int, attr AttrBits, typeInfo TypeInfo) ([]byte, error)
	Qalloc(size int, attr AttrBits) (BlockInfo, error)
	Calloc(size int, attr AttrBits) (BlockInfo, error)
	Free(p []byte) error

	AddRoot(r Root) error
	RemoveRoot(r Root) error
	Roots() []Root

	AddRange(rg Range) error
	RemoveRange(rg Range) error
	Ranges() []Range

	Enable() error
	Disable() error
	CollectionDisabled() bool

	InFinalizer() bool
	Stats() Stats
}

var _ Allocator = (*gcx.Gcx)(nil)

// NewThreadLocal constructs an unlocked allocator instance for exclusive
// use by the calling goroutine — spec.md §4.8's "thread-local instance".
// See DESIGN.md for why a *Gcx, rather than true OS-thread-local storage,
// is the Go-idiomatic reading of that requirement.
func NewThreadLocal(cfg sizeclass.Config) *gcx.Gcx {
	return gcx.New(cfg)
}

// Global returns the process-wide, spinlock-guarded allocator instance.
func Global() *gcx.Gcx {
	return gcx.Global()
}

// SetFinalizerRunning forwards to gcx.SetFinalizerRunning.
func SetFinalizerRunning(running bool) {
	gcx.SetFinalizerRunning(running)
}
