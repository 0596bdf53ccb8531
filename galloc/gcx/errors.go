package gcx

import "errors"

// Grounded on the teacher's package-level sentinel-error idiom
// (hive/alloc/errors.go): one var block of errors.New values, each
// prefixed with the owning package's name, wrapped at call sites with
// fmt.Errorf("...: %w", ...) rather than redeclared per call site.
var (
	// ErrOutOfMemory covers every case in spec.md §7.1: page mapping
	// failure, size/offset arithmetic overflow, or a request exceeding the
	// largest compiled-in size class.
	ErrOutOfMemory = errors.New("gcx: out of memory")

	// ErrInvalidMemoryOperation is returned when the global instance's lock
	// is requested while the process-wide finalizer-running flag is set
	// (spec.md §5, §7.2).
	ErrInvalidMemoryOperation = errors.New("gcx: invalid memory operation")
)
