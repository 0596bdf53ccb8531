package matrix

// Size-class-specialized fast paths for the required small classes.
//
// These bypass the Ceil/ClassRank dispatch used by Qalloc entirely: the
// rank of every small class is fixed at construction (Small is always
// prepended ahead of any optional medium classes — see sizeclass.NewTable),
// so each function below indexes straight into m.scanned/m.unscanned. This is
// the "separate inlined entry points taking the class as a constant"
// strategy spec.md §9 calls out, and the optimization whose existence
// justifies the segregated-pool design (spec.md §4.8, §6).
const (
	rank8    = 0
	rank16   = 1
	rank32   = 2
	rank64   = 3
	rank128  = 4
	rank256  = 5
	rank512  = 6
	rank1024 = 7
	rank2048 = 8
)

// AllocClass8 allocates an 8-byte slot directly, skipping size-class
// dispatch.
func (m *Matrix) AllocClass8(scanned bool) ([]byte, error) { return m.allocRank(rank8, scanned) }

// AllocClass16 allocates a 16-byte slot directly.
func (m *Matrix) AllocClass16(scanned bool) ([]byte, error) { return m.allocRank(rank16, scanned) }

// AllocClass32 allocates a 32-byte slot directly.
func (m *Matrix) AllocClass32(scanned bool) ([]byte, error) { return m.allocRank(rank32, scanned) }

// AllocClass64 allocates a 64-byte slot directly.
func (m *Matrix) AllocClass64(scanned bool) ([]byte, error) { return m.allocRank(rank64, scanned) }

// AllocClass128 allocates a 128-byte slot directly.
func (m *Matrix) AllocClass128(scanned bool) ([]byte, error) { return m.allocRank(rank128, scanned) }

// AllocClass256 allocates a 256-byte slot directly.
func (m *Matrix) AllocClass256(scanned bool) ([]byte, error) { return m.allocRank(rank256, scanned) }

// AllocClass512 allocates a 512-byte slot directly.
func (m *Matrix) AllocClass512(scanned bool) ([]byte, error) { return m.allocRank(rank512, scanned) }

// AllocClass1024 allocates a 1024-byte slot directly.
func (m *Matrix) AllocClass1024(scanned bool) ([]byte, error) {
	return m.allocRank(rank1024, scanned)
}

// AllocClass2048 allocates a 2048-byte slot directly.
func (m *Matrix) AllocClass2048(scanned bool) ([]byte, error) {
	return m.allocRank(rank2048, scanned)
}

func (m *Matrix) allocRank(rank int, scanned bool) ([]byte, error) {
	p := m.PoolFor(rank, scanned)
	base, err := p.AllocateNext()
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return base, nil
}
