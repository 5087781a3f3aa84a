// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import "sort"

// Antichain1C is a set of bigger-automaton states maintained as an antichain
// under the preorder: a state already dominated by (≤) a current member is
// never added, and adding a new state evicts any existing member it
// dominates. It backs the "post" accumulator used while evaluating one
// symbol/child-tuple assignment (§4.6.1).
type Antichain1C struct {
	members []int
}

// NewAntichain1C returns an empty antichain.
func NewAntichain1C() *Antichain1C { return &Antichain1C{} }

// Contains reports whether state is already dominated by some current
// member, i.e. some member m with state<=m.
func (a *Antichain1C) Contains(state int, pre *Preorder) bool {
	for _, m := range a.members {
		if containsSorted(pre.Ind(state), m) {
			return true
		}
	}
	return false
}

// Add inserts state, first discarding it as redundant if some member
// already dominates it, otherwise evicting every member it dominates.
func (a *Antichain1C) Add(state int, pre *Preorder) {
	if a.Contains(state, pre) {
		return
	}
	lower := pre.Inv(state)
	kept := a.members[:0:0]
	for _, m := range a.members {
		if !containsSorted(lower, m) {
			kept = append(kept, m)
		}
	}
	a.members = append(kept, state)
}

// States returns the current antichain members, unspecified order.
func (a *Antichain1C) States() []int { return a.members }

// Empty reports whether the antichain has no members.
func (a *Antichain1C) Empty() bool { return len(a.members) == 0 }

// AnyFinal reports whether any current member is accepting in automaton.
func (a *Antichain1C) AnyFinal(automaton *TreeAutomaton) bool {
	for _, m := range a.members {
		if automaton.IsFinal(m) {
			return true
		}
	}
	return false
}

// Sorted returns the current members as an ascending, duplicate-free slice
// suitable for interning through a BiggerTypeCache.
func (a *Antichain1C) Sorted() []int {
	out := append([]int(nil), a.members...)
	sort.Ints(out)
	return out
}
