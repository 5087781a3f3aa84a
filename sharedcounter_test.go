// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCounter returns a SharedCounter over a single label with a trivial
// key/range table: states {0,1,2} each get their own slot.
func buildCounter() (*SharedCounter, *CachingAllocator) {
	key := []int{0, 1, 2}
	rang := []int{3}
	alloc := NewCachingAllocator(0)
	return NewSharedCounter(1, key, 3, rang, alloc), alloc
}

//********************************************************************************************

func TestSharedCounterIncrDecr(t *testing.T) {
	c, _ := buildCounter()
	assert.False(t, c.HasRow(0))

	c.Incr(0, 1)
	require.True(t, c.HasRow(0))
	assert.Equal(t, uint32(1), c.Value(0, 1))
	assert.Equal(t, uint32(0), c.Value(0, 0))

	c.Incr(0, 1)
	assert.Equal(t, uint32(2), c.Value(0, 1))

	assert.Equal(t, uint32(1), c.Decr(0, 1))
	assert.Equal(t, uint32(0), c.Decr(0, 1))
	assert.False(t, c.HasRow(0), "row is reclaimed once the last arrival is gone")
}

//********************************************************************************************

func TestSharedCounterValueOnAbsentRow(t *testing.T) {
	c, _ := buildCounter()
	assert.Equal(t, uint32(0), c.Value(0, 2))
}

//********************************************************************************************

func TestSharedCounterCopyRowDivergesOnWrite(t *testing.T) {
	c, _ := buildCounter()
	c.Incr(0, 0)
	c.Incr(0, 1)

	child := c.NewChild()
	child.CopyRow(0, c)
	assert.Equal(t, uint32(1), child.Value(0, 0))

	// Decrementing the child's row must not perturb the parent's view.
	child.Decr(0, 0)
	assert.Equal(t, uint32(0), child.Value(0, 0))
	assert.Equal(t, uint32(1), c.Value(0, 0), "parent row is unaffected by the child's divergence")
}

//********************************************************************************************

func TestSharedCounterNewChildStartsEmpty(t *testing.T) {
	c, _ := buildCounter()
	c.Incr(0, 0)
	child := c.NewChild()
	assert.False(t, child.HasRow(0))
}
