package pool

import "unsafe"

// addrOf returns the address of a byte slice's backing storage, or 0 for a
// nil/empty slice. Used only by Locate's containment check.
func addrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
