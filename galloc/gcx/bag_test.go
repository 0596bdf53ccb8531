package gcx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBag_AddRemoveRoundTrip(t *testing.T) {
	var b Bag[int]
	b.Add(1)
	b.Add(2)
	b.Add(3)
	assert.Equal(t, 3, b.Len())

	b.Remove(2)
	assert.Equal(t, 2, b.Len())
	assert.ElementsMatch(t, []int{1, 3}, b.Items())
}

func TestBag_RemoveOnlyFirstOccurrence(t *testing.T) {
	var b Bag[int]
	b.Add(5)
	b.Add(5)
	b.Remove(5)
	assert.Equal(t, 1, b.Len())
}

func TestBag_RemoveAbsentValueAbortsUnderDebugChecks(t *testing.T) {
	old := DebugChecks
	DebugChecks = true
	defer func() { DebugChecks = old }()

	var b Bag[int]
	b.Add(1)
	assert.Panics(t, func() { b.Remove(99) })
}

func TestBag_RemoveAbsentValueNoopWhenDebugChecksDisabled(t *testing.T) {
	old := DebugChecks
	DebugChecks = false
	defer func() { DebugChecks = old }()

	var b Bag[int]
	b.Add(1)
	assert.NotPanics(t, func() { b.Remove(99) })
	assert.Equal(t, 1, b.Len())
}

func TestBag_Each(t *testing.T) {
	var b Bag[int]
	b.Add(1)
	b.Add(2)
	sum := 0
	b.Each(func(v int) { sum += v })
	assert.Equal(t, 3, sum)
}
