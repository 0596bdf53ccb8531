// Package pagemap wraps the operating system's anonymous virtual-memory
// primitives: page-granular map, unmap, and (where available) in-place
// remap.
//
// Grounded on the teacher corpus's direct use of golang.org/x/sys/unix for
// memory-mapped I/O (hive/dirty's Msync/Fdatasync build-tag split) and on
// the anonymous-mmap idiom used by other slab-style allocators in the
// surveyed corpus (unix.Mmap with MAP_ANON|MAP_PRIVATE). Regions are always
// readable, writable, and zero-filled at mapping time.
package pagemap

import "github.com/nordlow/druntime/internal/cpu"

// RoundUp rounds n up to the next whole multiple of the OS page size.
func RoundUp(n int) int {
	ps := cpu.PageSize()
	if n <= 0 {
		return 0
	}
	return (n + ps - 1) / ps * ps
}

// Map reserves and commits n bytes of zero-filled anonymous memory, rounded
// up to a whole number of pages. Returns nil on failure.
func Map(n int) []byte {
	if n <= 0 {
		return nil
	}
	b, err := mapPages(RoundUp(n))
	if err != nil {
		return nil
	}
	return b
}

// Unmap releases a region previously returned by Map or Remap. base must be
// the exact slice returned by those calls.
func Unmap(base []byte) error {
	if len(base) == 0 {
		return nil
	}
	return unmapPages(base)
}

// Remap grows or shrinks base in place when the OS offers an atomic
// grow/move primitive, preserving contents. ok is false when no such
// primitive exists on this platform; callers must then fall back to
// map-new + copy + unmap-old themselves.
func Remap(base []byte, newSize int) (newBase []byte, ok bool, err error) {
	newSize = RoundUp(newSize)
	if newSize == 0 {
		if err := Unmap(base); err != nil {
			return nil, true, err
		}
		return nil, true, nil
	}
	return remapPages(base, newSize)
}
