package gcx

import "github.com/nordlow/druntime/internal/assert"

// Bag is an append/remove-by-value container with O(length) removal:
// Remove finds the first matching entry, overwrites it with the back
// entry, and pops the back. Insertion appends. Duplicates are preserved.
//
// Grounded on the teacher's append-only bins index plus its
// filter-and-rebuild truncation pattern
// (hive/alloc/fastalloc.go's bins []hbinRange and
// removeFreeListEntriesAfter) — generalized into the explicit swap-remove
// bag spec.md §4.8 requires for the root and range registries.
type Bag[T comparable] struct {
	items []T
}

// Add appends v.
func (b *Bag[T]) Add(v T) {
	b.items = append(b.items, v)
}

// Remove deletes the first occurrence of v. Removing an absent value is a
// programming error and aborts (spec.md §9's explicit "preserve the
// behavior" decision for remove_root/remove_range), checked only when
// DebugChecks is enabled.
func (b *Bag[T]) Remove(v T) {
	for i, item := range b.items {
		if item == v {
			last := len(b.items) - 1
			b.items[i] = b.items[last]
			b.items = b.items[:last]
			return
		}
	}
	if DebugChecks {
		assert.Truef(false, "Bag.Remove: value %v not present", v)
	}
}

// Len returns the number of live entries.
func (b *Bag[T]) Len() int { return len(b.items) }

// Each calls fn once for every live entry, in unspecified order (matching
// the swap-remove container's lack of stable ordering across removals).
func (b *Bag[T]) Each(fn func(T)) {
	for _, item := range b.items {
		fn(item)
	}
}

// Items returns the bag's contents as a slice. The returned slice must not
// be retained past the next Add/Remove call.
func (b *Bag[T]) Items() []T { return b.items }
