// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBlockLTS() *LTS {
	l := NewLTS(3, 2)
	l.AddTransition(0, 0, 1) // label 0 into state 1
	l.AddTransition(2, 1, 1) // label 1 into state 1
	l.Finalize()
	return l
}

//********************************************************************************************

func TestListInsertRemoveSingleton(t *testing.T) {
	var head *stateListElem
	e := &stateListElem{state: 7}
	listInsert(&head, e)
	assert.Equal(t, e, head)
	assert.Equal(t, e, e.next)
	assert.Equal(t, e, e.prev)

	listRemove(&head, e)
	assert.Nil(t, head)
}

//********************************************************************************************

func TestBlockFromStatesPopulatesInset(t *testing.T) {
	l := buildBlockLTS()
	elems := make([]*stateListElem, 3)
	b := newBlockFromStates(0, []int{0, 1, 2}, 2, l.key, 3, l.rang, NewCachingAllocator(0), elems, l)

	assert.Equal(t, 3, b.mainSize)
	assert.True(t, b.inset.Contains(0), "state 1 (in the block) has an incoming label-0 edge")
	assert.True(t, b.inset.Contains(1), "state 1 also has an incoming label-1 edge")
	assert.ElementsMatch(t, []int{0, 1, 2}, b.states())
}

//********************************************************************************************

func TestBlockMarkTmpAndSplitOff(t *testing.T) {
	l := buildBlockLTS()
	elems := make([]*stateListElem, 3)
	b := newBlockFromStates(0, []int{0, 1, 2}, 2, l.key, 3, l.rang, NewCachingAllocator(0), elems, l)

	b.markTmp(1, l)
	require.Equal(t, 2, b.mainSize)
	require.Equal(t, 1, b.tmpSize)

	nb := b.splitOff(1, 2, l)
	assert.Equal(t, 0, b.tmpSize)
	assert.Equal(t, 1, nb.mainSize)
	assert.Equal(t, []int{1}, nb.states())
	assert.Same(t, nb, elems[1].owner)

	remaining := b.states()
	sort.Ints(remaining)
	assert.Equal(t, []int{0, 2}, remaining)

	// state 1 carried both its inbound labels into the new block.
	assert.True(t, nb.inset.Contains(0))
	assert.True(t, nb.inset.Contains(1))
}

//********************************************************************************************

func TestBlockSplitOffCopiesCounterRows(t *testing.T) {
	l := buildBlockLTS()
	elems := make([]*stateListElem, 3)
	alloc := NewCachingAllocator(0)
	b := newBlockFromStates(0, []int{0, 1, 2}, 2, l.key, 3, l.rang, alloc, elems, l)
	b.counter.Incr(0, 0)

	b.markTmp(1, l)
	nb := b.splitOff(1, 2, l)

	assert.True(t, nb.counter.HasRow(0), "child inherits the parent's populated row via CopyRow")
	assert.Equal(t, uint32(1), nb.counter.Value(0, 0))
}
