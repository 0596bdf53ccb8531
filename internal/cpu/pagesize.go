// Package cpu discovers machine parameters the allocator core is compiled
// against, chiefly the OS page size.
package cpu

import (
	"fmt"
	"sync"
)

// WantPageSize is the page size every size class, page struct, and bitmap
// length in this module is compiled for. The core does not support running
// on a system whose actual page size differs.
const WantPageSize = 4096

var (
	pageSizeOnce sync.Once
	pageSize     int
)

// PageSize returns the OS page size, discovered once via the platform's
// discoverPageSize (pagesize_unix.go, pagesize_windows.go or
// pagesize_fallback.go) and memoized. Panics if the discovered size does
// not match WantPageSize, since pool, page, and bitmap layouts are fixed at
// compile time for a 4096-byte page.
func PageSize() int {
	pageSizeOnce.Do(func() {
		pageSize = discoverPageSize()
		if pageSize != WantPageSize {
			panic(fmt.Sprintf("galloc: OS page size mismatch: got %d, want %d", pageSize, WantPageSize))
		}
	})
	return pageSize
}
