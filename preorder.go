// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import "sort"

// Preorder is a state preorder R addressable in both directions: Ind(q) is
// the upper set {q' : R(q,q')}, Inv(q) is the lower set {q' : R(q',q)}.
// The inclusion engine (C6) uses simulation computed by ComputeSimulation as
// its preorder, but any reflexive, transitive BinaryRelation is accepted.
type Preorder struct {
	ind [][]int
	inv [][]int
}

// NewPreorder builds a Preorder from a state-level BinaryRelation of
// dimension n, materializing both the upper and lower set index, each
// sorted ascending so antichain dominance checks can use binary search.
func NewPreorder(n int, rel *BinaryRelation) *Preorder {
	p := &Preorder{ind: make([][]int, n), inv: make([][]int, n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rel.Get(i, j) {
				p.ind[i] = append(p.ind[i], j)
				p.inv[j] = append(p.inv[j], i)
			}
		}
	}
	return p
}

// Ind returns the upper set of q, {q' : q<=q'}, ascending.
func (p *Preorder) Ind(q int) []int { return p.ind[q] }

// Inv returns the lower set of q, {q' : q'<=q}, ascending.
func (p *Preorder) Inv(q int) []int { return p.inv[q] }

// LTE reports whether q<=q'.
func (p *Preorder) LTE(q, q2 int) bool {
	return containsSorted(p.ind[q], q2)
}

// containsSorted reports whether x appears in the ascending slice xs.
func containsSorted(xs []int, x int) bool {
	i := sort.SearchInts(xs, x)
	return i < len(xs) && xs[i] == x
}

// intersectsSorted reports whether the ascending slices a and b share any
// element.
func intersectsSorted(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}
