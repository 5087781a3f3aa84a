// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BinaryRelation is a square boolean matrix of dynamic size, used both at
// block granularity (by the OLRT engine, C5) and at state granularity (as
// the output of ComputeSimulation and the input preorder to the inclusion
// engine, C6). Rows are bitsets, following the teacher's use of a compact
// bit-level encoding wherever a dense boolean structure is needed (the BDD
// node table packs level/mark bits into a single int32; here the natural
// analogue is one bitset.BitSet per row).
type BinaryRelation struct {
	rows []*bitset.BitSet
}

// NewBinaryRelation returns a BinaryRelation of dimension n with every entry
// false.
func NewBinaryRelation(n int) *BinaryRelation {
	r := &BinaryRelation{rows: make([]*bitset.BitSet, n)}
	for i := range r.rows {
		r.rows[i] = bitset.New(uint(n))
	}
	return r
}

// Size returns the current dimension of the relation.
func (r *BinaryRelation) Size() int {
	return len(r.rows)
}

// Get returns the value of R[i,j].
func (r *BinaryRelation) Get(i, j int) bool {
	return r.rows[i].Test(uint(j))
}

// Set sets R[i,j] to v.
func (r *BinaryRelation) Set(i, j int, v bool) {
	if v {
		r.rows[i].Set(uint(j))
	} else {
		r.rows[i].Clear(uint(j))
	}
}

// Resize grows or shrinks the relation to dimension n, preserving existing
// entries R[i,j] for i,j < min(old size, n). Growing fills new entries with
// false.
func (r *BinaryRelation) Resize(n int) {
	old := len(r.rows)
	if n == old {
		return
	}
	if n < old {
		r.rows = r.rows[:n]
		for i := range r.rows {
			for j := n; j < old; j++ {
				r.rows[i].Clear(uint(j))
			}
		}
		return
	}
	rows := make([]*bitset.BitSet, n)
	for i := 0; i < old; i++ {
		rows[i] = r.rows[i]
	}
	for i := old; i < n; i++ {
		rows[i] = bitset.New(uint(n))
	}
	r.rows = rows
}

// Split appends a new row/column, returning its index. When newIsSubset is
// true, the new block i' starts related exactly as i was: column i' is a
// copy of column i, row i' is a copy of row i, and R[i,i'] = R[i',i] =
// R[i',i'] = true. This is the operation the OLRT engine (C5) uses to carve
// a new block off an existing one while preserving the coarser relation it
// refines.
func (r *BinaryRelation) Split(i int, newIsSubset bool) int {
	n := len(r.rows)
	newIndex := n
	r.Resize(n + 1)
	if !newIsSubset {
		return newIndex
	}
	// column i' = copy of column i
	for k := 0; k < n; k++ {
		if r.rows[k].Test(uint(i)) {
			r.rows[k].Set(uint(newIndex))
		}
	}
	// row i' = copy of row i
	r.rows[newIndex] = r.rows[i].Clone()
	r.rows[newIndex].Set(uint(newIndex))
	r.rows[i].Set(uint(newIndex))
	r.rows[newIndex].Set(uint(i))
	return newIndex
}

// IsReflexive reports whether R[i,i] holds for every i < Size(). Used by
// ComputeSimulation to reject a non-reflexive caller-supplied relation.
func (r *BinaryRelation) IsReflexive() bool {
	for i := range r.rows {
		if !r.rows[i].Test(uint(i)) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of r.
func (r *BinaryRelation) Clone() *BinaryRelation {
	c := &BinaryRelation{rows: make([]*bitset.BitSet, len(r.rows))}
	for i, row := range r.rows {
		c.rows[i] = row.Clone()
	}
	return c
}

// String renders the relation as a matrix of 0/1, one row per line, for use
// in debug tracing (matching the teacher's terse cacheStat.String() style).
func (r *BinaryRelation) String() string {
	var b strings.Builder
	for i := range r.rows {
		for j := range r.rows {
			if r.Get(i, j) {
				fmt.Fprint(&b, "1")
			} else {
				fmt.Fprint(&b, "0")
			}
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
