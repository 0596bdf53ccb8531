// Package pagearray implements the paged dynamic array: a growable,
// owning, non-copyable buffer whose capacity is always a whole number of
// OS pages, backed by galloc/pagemap.
//
// Grounded on the teacher's hive growth path (hive/alloc/fastalloc.go's
// growByHBINSize/Grow/GrowByPages: append-only, page-granular growth with
// header bookkeeping on every resize), generalized from "append one more
// fixed-size HBIN" to "grow to at least N elements, remapping in place via
// pagemap.Remap when available, else map-new + copy + unmap-old" exactly as
// spec.md §4.3 describes. Go generics stand in for the source's
// compile-time container parameterization (spec.md §9, strategy (b)/(c)).
package pagearray

import (
	"errors"
	"unsafe"

	"github.com/nordlow/druntime/galloc/pagemap"
)

// ErrOutOfMemory is returned when page mapping fails or a length*elemSize
// computation would overflow.
var ErrOutOfMemory = errors.New("pagearray: out of memory")

// Array is a growable, page-backed buffer of T. The zero value is an empty,
// unmapped array ready to use.
type Array[T any] struct {
	base   []byte // capacity in bytes, always a multiple of the page size
	length int    // logical length in elements
}

func elemSize[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// Len returns the logical length in elements.
func (a *Array[T]) Len() int { return a.length }

// CapacityInBytes returns the backing capacity, always a whole multiple of
// the OS page size.
func (a *Array[T]) CapacityInBytes() int { return len(a.base) }

// Empty reports whether Len() == 0.
func (a *Array[T]) Empty() bool { return a.length == 0 }

// slice reinterprets the byte-backed capacity as a []T of the full logical
// length. Safe because base is always sized and aligned for T by
// SetLength.
func (a *Array[T]) slice() []T {
	if a.length == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.base[0])), a.length)
}

// At returns a pointer to element i. Precondition: i < Len().
func (a *Array[T]) At(i int) *T {
	if i < 0 || i >= a.length {
		panic("pagearray: index out of range")
	}
	return &a.slice()[i]
}

// Slice returns the array's contents as a []T sharing the backing storage.
// The slice is invalidated by any subsequent growing/shrinking call.
func (a *Array[T]) Slice() []T { return a.slice() }

// Front returns a pointer to the first element. Precondition: !Empty().
func (a *Array[T]) Front() *T { return a.At(0) }

// Back returns a pointer to the last element. Precondition: !Empty().
func (a *Array[T]) Back() *T { return a.At(a.length - 1) }

// SetLength resizes the array to n elements. Growing zero-fills the new
// tail (guaranteed by the OS page mapper); shrinking to zero unmaps and
// nils the backing storage. Remaps in place when the platform's pagemap
// supports it and the array is already mapped; otherwise maps fresh,
// copies the old prefix, and unmaps the old storage.
func (a *Array[T]) SetLength(n int) error {
	if n < 0 {
		panic("pagearray: negative length")
	}
	if n == 0 {
		if len(a.base) > 0 {
			if err := pagemap.Unmap(a.base); err != nil {
				return err
			}
		}
		a.base = nil
		a.length = 0
		return nil
	}

	needBytes, ok := mulOverflows(n, elemSize[T]())
	if !ok {
		return ErrOutOfMemory
	}

	if needBytes <= len(a.base) {
		a.length = n
		return nil
	}

	newCap := pagemap.RoundUp(needBytes)
	if len(a.base) == 0 {
		newBase := pagemap.Map(newCap)
		if newBase == nil {
			return ErrOutOfMemory
		}
		a.base = newBase
		a.length = n
		return nil
	}

	if remapped, ok, err := pagemap.Remap(a.base, newCap); ok {
		if err != nil {
			return err
		}
		if remapped == nil {
			return ErrOutOfMemory
		}
		a.base = remapped
		a.length = n
		return nil
	}

	newBase := pagemap.Map(newCap)
	if newBase == nil {
		return ErrOutOfMemory
	}
	copy(newBase, a.base)
	if err := pagemap.Unmap(a.base); err != nil {
		// Best-effort: keep the new mapping, surface the unmap failure.
		a.base = newBase
		a.length = n
		return err
	}
	a.base = newBase
	a.length = n
	return nil
}

// InsertBack appends v, growing the array by one element.
func (a *Array[T]) InsertBack(v T) error {
	if err := a.SetLength(a.length + 1); err != nil {
		return err
	}
	*a.At(a.length - 1) = v
	return nil
}

// PopBack removes the last element without running any destructor on it —
// callers owning elements with external resources must release them first.
func (a *Array[T]) PopBack() {
	if a.length == 0 {
		panic("pagearray: PopBack of empty array")
	}
	_ = a.SetLength(a.length - 1)
}

// Remove deletes element i, shifting everything after it down by one.
// O(Len()-i). Precondition: i < Len().
func (a *Array[T]) Remove(i int) {
	if i < 0 || i >= a.length {
		panic("pagearray: index out of range")
	}
	s := a.slice()
	copy(s[i:], s[i+1:])
	a.PopBack()
}

// Swap exchanges base storage, length, and capacity with other in constant
// time and without allocating.
func (a *Array[T]) Swap(other *Array[T]) {
	a.base, other.base = other.base, a.base
	a.length, other.length = other.length, a.length
}

func mulOverflows(n, size int) (int, bool) {
	if n == 0 || size == 0 {
		return 0, true
	}
	product := n * size
	if product/n != size {
		return 0, false
	}
	if product < 0 {
		return 0, false
	}
	return product, true
}
