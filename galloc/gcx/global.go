package gcx

import (
	"sync"
	"sync/atomic"

	"github.com/nordlow/druntime/galloc/sizeclass"
)

var (
	finalizerRunning atomic.Bool

	globalOnce sync.Once
	global     *Gcx
)

// Global returns the process-wide, spinlock-guarded allocator instance
// (spec.md §4.8's "global instance"), initializing it on first use with
// the small-classes-only size-class configuration. Every entry point on
// the returned *Gcx acquires the instance's spinlock before touching its
// pool matrix or lists, and releases it on every exit path including
// failure (spec.md §5).
func Global() *Gcx {
	globalOnce.Do(func() {
		global = newLocked(sizeclass.SmallOnly)
	})
	return global
}

// SetFinalizerRunning records whether a finalizer is currently running. The
// flag is process-wide, not per goroutine: while it is set, any goroutine's
// attempt to acquire the global lock returns ErrInvalidMemoryOperation
// instead of deadlocking
// (spec.md §5, §7.2). The host runtime's finalizer dispatcher is
// responsible for calling SetFinalizerRunning(true) before invoking a
// finalizer and SetFinalizerRunning(false) after.
func SetFinalizerRunning(running bool) {
	finalizerRunning.Store(running)
}
