// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

// TestCheckInclusionLeavesOnly builds two single-leaf, single-final-state
// automata and checks that leaf-level coverage alone proves inclusion
// without needing to expand any rule.
func TestCheckInclusionLeavesOnly(t *testing.T) {
	smaller := NewTreeAutomaton(1)
	smaller.AddRule(0, nil, 0)
	smaller.SetFinal(0)
	smaller.Finalize()

	bigger := NewTreeAutomaton(1)
	bigger.AddRule(0, nil, 0)
	bigger.SetFinal(0)
	bigger.Finalize()

	rel := NewBinaryRelation(1)
	rel.Set(0, 0, true)
	pre := NewPreorder(1, rel)

	checker := NewInclusionChecker(smaller, bigger, pre)
	ok, ctx := checker.CheckInclusion()
	require.True(t, ok)
	assert.Equal(t, "Inclusion proved!", ctx.Description)
	assert.Len(t, ctx.RunID, 12)
	checker.Close()
}

//********************************************************************************************

// TestCheckInclusionRefutedByLeaves builds a smaller automaton whose single
// leaf is final while the bigger automaton's matching leaf is not, which
// must refute inclusion before any rule is ever expanded.
func TestCheckInclusionRefutedByLeaves(t *testing.T) {
	smaller := NewTreeAutomaton(1)
	smaller.AddRule(0, nil, 0)
	smaller.SetFinal(0)
	smaller.Finalize()

	bigger := NewTreeAutomaton(1)
	bigger.AddRule(0, nil, 0)
	// bigger's leaf is not final.
	bigger.Finalize()

	rel := NewBinaryRelation(1)
	rel.Set(0, 0, true)
	pre := NewPreorder(1, rel)

	checker := NewInclusionChecker(smaller, bigger, pre)
	ok, ctx := checker.CheckInclusion()
	require.False(t, ok)
	assert.True(t, strings.Contains(ctx.Description, "leaves not covered"))
}

//********************************************************************************************

// buildMirroredBranchingAutomata returns two structurally identical
// automata over disjoint state spaces: two leaf symbols (0, 1) feeding a
// binary symbol (2) at a final head. The bigger automaton's head is final
// according to finalHead.
func buildMirroredBranchingAutomata(finalHead bool) (smaller, bigger *TreeAutomaton, pre *Preorder) {
	smaller = NewTreeAutomaton(3)
	smaller.AddRule(0, nil, 0)
	smaller.AddRule(1, nil, 1)
	smaller.AddRule(2, []int{0, 1}, 2)
	smaller.SetFinal(2)
	smaller.Finalize()

	bigger = NewTreeAutomaton(3)
	bigger.AddRule(0, nil, 0)
	bigger.AddRule(1, nil, 1)
	bigger.AddRule(2, []int{0, 1}, 2)
	if finalHead {
		bigger.SetFinal(2)
	}
	bigger.Finalize()

	// Disjoint combined state space: smaller states 0..2, bigger states
	// 3..5, identity relation only (no shortcut coverage through the
	// preorder) so inclusion must be proved through rule expansion.
	rel := NewBinaryRelation(6)
	for i := 0; i < 6; i++ {
		rel.Set(i, i, true)
	}
	pre = NewPreorder(6, rel)
	return smaller, shiftAutomaton(bigger, 3), pre
}

// shiftAutomaton returns a copy of a whose state numbers are all offset by
// delta, used to place the bigger automaton in a disjoint slice of the
// combined state space from the smaller automaton.
func shiftAutomaton(a *TreeAutomaton, delta int) *TreeAutomaton {
	out := NewTreeAutomaton(a.numStates + delta)
	for _, r := range a.rules {
		children := make([]int, len(r.Children))
		for i, c := range r.Children {
			children[i] = c + delta
		}
		out.AddRule(r.Symbol, children, r.Head+delta)
	}
	for s := 0; s < a.numStates; s++ {
		if a.IsFinal(s) {
			out.SetFinal(s + delta)
		}
	}
	out.Finalize()
	return out
}

//********************************************************************************************

func TestCheckInclusionBinaryBranchingHolds(t *testing.T) {
	smaller, bigger, pre := buildMirroredBranchingAutomata(true)
	checker := NewInclusionChecker(smaller, bigger, pre)
	ok, ctx := checker.CheckInclusion()
	require.True(t, ok)
	assert.NotEmpty(t, ctx.Trace(), "proving inclusion through rule expansion must record a witness trace")
}

//********************************************************************************************

func TestCheckInclusionBinaryBranchingRefuted(t *testing.T) {
	smaller, bigger, pre := buildMirroredBranchingAutomata(false)
	checker := NewInclusionChecker(smaller, bigger, pre)
	ok, ctx := checker.CheckInclusion()
	require.False(t, ok)
	assert.True(t, strings.Contains(ctx.Description, "smaller accepts, bigger does not"))
}
