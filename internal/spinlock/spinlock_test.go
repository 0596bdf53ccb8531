package spinlock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinlock_TryLock(t *testing.T) {
	var l Spinlock
	assert.True(t, l.TryLock())
	assert.False(t, l.TryLock(), "a held lock refuses a second TryLock")
	l.Unlock()
	assert.True(t, l.TryLock())
}

func TestSpinlock_UnlockOfUnlockedPanics(t *testing.T) {
	var l Spinlock
	assert.Panics(t, func() { l.Unlock() })
}

func TestSpinlock_GuardReleasesOnPanic(t *testing.T) {
	var l Spinlock
	assert.Panics(t, func() {
		Guard(&l, func() { panic("boom") })
	})
	assert.True(t, l.TryLock(), "Guard must release the lock even when fn panics")
}

func TestSpinlock_SerializesConcurrentIncrement(t *testing.T) {
	var l Spinlock
	var counter int
	var wg sync.WaitGroup
	const goroutines = 64
	const perGoroutine = 200

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				Guard(&l, func() { counter++ })
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, counter)
}
