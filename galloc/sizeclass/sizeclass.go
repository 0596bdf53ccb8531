// Package sizeclass holds the compile-time-fixed size-class ladder and the
// ceiling function that rounds a requested byte count up to one.
//
// Grounded on the teacher's sizeClassTable (hive/alloc/size_classes.go):
// a configurable table with a binary-search lookup, generalized here from
// the teacher's linear+logarithmic scheme to the fixed power-of-two ladder
// spec.md requires, and extended with a Config toggle for the optional
// medium classes (the teacher's own notion of swappable named presets —
// ConfigFineGrained/ConfigBalanced/ConfigCoarse — reappears here as the
// choice of whether medium classes are compiled into the table at all).
package sizeclass

import "math/bits"

// Small is the required ascending ladder of small size classes.
var Small = [...]int{8, 16, 32, 64, 128, 256, 512, 1024, 2048}

// Medium is the optional ladder of medium size classes, one slot (or N
// pages per slot, for the larger ones) per page.
var Medium = [...]int{4096, 8192, 16384, 32768, 65536}

// Smallest is the smallest supported size class.
const Smallest = 8

// Config selects which size classes a Table compiles in.
type Config struct {
	// IncludeMedium enables the optional medium classes. Off by default:
	// spec.md's S3 scenario (5000-byte request, medium disabled) must fail
	// with out-of-memory rather than silently succeeding against a medium
	// class.
	IncludeMedium bool
}

// SmallOnly is the default configuration: only the required small classes.
var SmallOnly = Config{IncludeMedium: false}

// WithMedium additionally compiles in the optional medium classes.
var WithMedium = Config{IncludeMedium: true}

// Table is the materialized, ascending list of classes a Matrix dispatches
// over, plus the lookup used by Ceil.
type Table struct {
	classes []int
}

// NewTable builds a Table from cfg.
func NewTable(cfg Config) *Table {
	t := &Table{classes: append([]int(nil), Small[:]...)}
	if cfg.IncludeMedium {
		t.classes = append(t.classes, Medium[:]...)
	}
	return t
}

// Classes returns the ascending list of compiled-in size classes. The
// returned slice must not be mutated by the caller.
func (t *Table) Classes() []int { return t.classes }

// NumClasses returns len(Classes()).
func (t *Table) NumClasses() int { return len(t.classes) }

// Largest returns the largest compiled-in size class.
func (t *Table) Largest() int { return t.classes[len(t.classes)-1] }

// ClassRank returns the index into Classes() of size class c, or -1 if c is
// not one of the compiled-in classes.
func (t *Table) ClassRank(c int) int {
	for i, sc := range t.classes {
		if sc == c {
			return i
		}
	}
	return -1
}

// Ceil returns the smallest compiled-in size class that is >= n, or 0 if n
// exceeds the largest compiled-in class (the caller must treat 0 as
// out-of-memory).
//
// ceilPow2(n) for n <= 1 returns Smallest — spec.md's fix for the source's
// inconsistent handling of ceilPow2(1); this implementation never
// special-cases n==1 differently from n==0 or any other n <= Smallest.
func (t *Table) Ceil(n int) int {
	want := CeilPow2(n)
	for _, sc := range t.classes {
		if sc >= want {
			return sc
		}
	}
	return 0
}

// CeilPow2 returns max(Smallest, next power of two >= n).
func CeilPow2(n int) int {
	if n <= Smallest {
		return Smallest
	}
	return 1 << bits.Len(uint(n-1))
}

// SlotsPerPage returns how many slots of size class sc fit in a page of
// pageSize bytes. For classes where pageSize/sc == 0 (a medium class larger
// than one page), it returns 1 and the caller is responsible for computing
// how many pages back that single slot.
func SlotsPerPage(sc, pageSize int) int {
	n := pageSize / sc
	if n < 1 {
		return 1
	}
	return n
}

// PagesPerSlot returns how many whole pages a single slot of size class sc
// spans, for classes larger than one page. Returns 1 for classes that fit
// multiple slots per page.
func PagesPerSlot(sc, pageSize int) int {
	if sc <= pageSize {
		return 1
	}
	return (sc + pageSize - 1) / pageSize
}
