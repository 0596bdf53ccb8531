package gcx

import "unsafe"

// Root is an opaque pointer registered as an additional liveness anchor.
type Root unsafe.Pointer

// TypeInfo is an opaque collaborator supplied by the host runtime's
// object-type-info plumbing (out of scope for this core — spec.md §1).
type TypeInfo any

// Range is a (base, end, type-info) triple registered as a conservative
// scan range.
type Range struct {
	Base     unsafe.Pointer
	End      unsafe.Pointer
	TypeInfo TypeInfo
}

// Stats mirrors the host collector's statistics surface. Accurate
// statistics are an explicit non-goal (spec.md §1); Stats always reports
// the zero value.
type Stats struct {
	HeapSize    uint64
	Allocated   uint64
	Collections uint64
}
