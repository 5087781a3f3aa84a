// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSampleAutomaton builds a 3-state automaton over two leaf symbols (0,
// 1) and one binary symbol (2): leaf 0 -> state 0, leaf 1 -> state 1, and
// symbol(2) applied to (state0, state1) -> state 2 (final).
func buildSampleAutomaton() *TreeAutomaton {
	a := NewTreeAutomaton(3)
	a.AddRule(0, nil, 0)
	a.AddRule(1, nil, 1)
	a.AddRule(2, []int{0, 1}, 2)
	a.SetFinal(2)
	a.Finalize()
	return a
}

//********************************************************************************************

func TestTreeAutomatonLeaves(t *testing.T) {
	a := buildSampleAutomaton()
	require.Len(t, a.Leaves(0), 1)
	assert.Equal(t, 0, a.Leaves(0)[0].Head)
	assert.ElementsMatch(t, []int{0, 1}, a.LeafSymbols())
	assert.Equal(t, 2, a.NumLeaves())
}

//********************************************************************************************

func TestTreeAutomatonRulesWithChildAt(t *testing.T) {
	a := buildSampleAutomaton()
	rules := a.RulesWithChildAt(2, 0, 0)
	require.Len(t, rules, 1)
	assert.Equal(t, 2, rules[0].Head)

	assert.Empty(t, a.RulesWithChildAt(2, 0, 1), "state 1 never appears at position 0")
}

//********************************************************************************************

func TestTreeAutomatonPositionsOf(t *testing.T) {
	a := buildSampleAutomaton()
	pos := a.PositionsOf(1)
	require.Len(t, pos, 1)
	assert.Equal(t, symbolPosition{Symbol: 2, Position: 1}, pos[0])

	assert.Empty(t, a.PositionsOf(2), "state 2 never appears as a child")
}

//********************************************************************************************

func TestTreeAutomatonFinalStates(t *testing.T) {
	a := buildSampleAutomaton()
	assert.True(t, a.IsFinal(2))
	assert.False(t, a.IsFinal(0))
}
