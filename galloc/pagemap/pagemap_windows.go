//go:build windows

package pagemap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapPages(n int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(n), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

func unmapPages(base []byte) error {
	addr := uintptr(unsafe.Pointer(&base[0]))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}

// remapPages reports no in-place remap support: VirtualAlloc has no atomic
// grow-in-place primitive for anonymous regions, so callers always fall
// back to map-new + copy + unmap-old.
func remapPages(base []byte, newSize int) ([]byte, bool, error) {
	return nil, false, nil
}
