//go:build linux

package pagemap

import "golang.org/x/sys/unix"

// remapPages uses Linux's mremap with MREMAP_MAYMOVE to grow or shrink the
// mapping in place where the kernel can, relocating only when it must.
func remapPages(base []byte, newSize int) ([]byte, bool, error) {
	if len(base) == 0 {
		b, err := mapPages(newSize)
		return b, true, err
	}
	newBase, err := unix.Mremap(base, newSize, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, true, err
	}
	return newBase, true, nil
}
