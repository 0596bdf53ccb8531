// Package spinlock implements a contention-tolerant spinlock for the global
// allocator instance.
//
// Unlike a naive busy-wait, Lock backs off with runtime.Gosched and a short
// sleep under sustained contention instead of hammering the cache line
// indefinitely. It is not reentrant: locking twice from the same goroutine
// deadlocks, matching the finalizer-reentrancy contract in spec §5 (callers
// detect the reentrant case themselves via a separate flag before ever
// reaching Lock).
package spinlock

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Spinlock is a single-word mutual-exclusion lock suited to very short
// critical sections, such as a handful of bitmap and slice operations.
type Spinlock struct {
	held atomic.Bool
}

// Lock blocks until the lock is acquired, backing off under contention.
func (l *Spinlock) Lock() {
	var spins int
	for !l.held.CompareAndSwap(false, true) {
		spins++
		switch {
		case spins < 30:
			// Tight spin: the common case is a critical section a few
			// instructions long, so most callers never leave this branch.
		case spins < 1000:
			runtime.Gosched()
		default:
			time.Sleep(time.Microsecond)
		}
	}
}

// Unlock releases the lock. Calling Unlock on an unlocked Spinlock is a
// programming error and panics.
func (l *Spinlock) Unlock() {
	if !l.held.CompareAndSwap(true, false) {
		panic("spinlock: Unlock of unlocked Spinlock")
	}
}

// TryLock attempts to acquire the lock without blocking.
func (l *Spinlock) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

// Guard acquires l, runs fn, and releases l on every path including a panic
// inside fn — the scoped-acquisition primitive spec §9 calls for so release
// on every exit path is structural rather than repeated at each call site.
func Guard(l *Spinlock, fn func()) {
	l.Lock()
	defer l.Unlock()
	fn()
}
