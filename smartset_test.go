// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//********************************************************************************************

func TestSmartSetAddRemove(t *testing.T) {
	s := NewSmartSet(5)
	assert.True(t, s.Empty())

	s.Add(2)
	s.Add(2)
	assert.True(t, s.Contains(2))
	assert.Equal(t, 1, s.Len())

	s.Remove(2)
	assert.True(t, s.Contains(2), "multiplicity 2 before first remove")
	s.Remove(2)
	assert.False(t, s.Contains(2), "multiplicity drops to 0 after second remove")
	assert.True(t, s.Empty())
}

//********************************************************************************************

func TestSmartSetRemoveOnNonMember(t *testing.T) {
	s := NewSmartSet(3)
	s.Remove(1) // no-op, must not panic or go negative
	assert.False(t, s.Contains(1))
}

//********************************************************************************************

func TestSmartSetAssignFlat(t *testing.T) {
	s := NewSmartSet(5)
	s.Add(0)
	s.Add(0)
	s.Add(4)

	s.AssignFlat([]int{1, 2, 3})
	assert.ElementsMatch(t, []int{1, 2, 3}, s.Elements())
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(4))

	// After AssignFlat every surviving member has multiplicity exactly one.
	s.Remove(1)
	assert.False(t, s.Contains(1))
}

//********************************************************************************************

func TestSmartSetForEach(t *testing.T) {
	s := NewSmartSet(4)
	s.Add(3)
	s.Add(1)
	var seen []int
	s.ForEach(func(x int) { seen = append(seen, x) })
	assert.Equal(t, []int{1, 3}, seen)
}
