// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import "github.com/bits-and-blooms/bitset"

// SmartSet is a set over {0, ..., N-1} that tracks multiplicity: Add
// increments a count, Remove decrements it and drops membership only when
// the count reaches zero. This is exactly the structure the OLRT engine
// (C5) uses for a block's inset, where the same label can be added once per
// state that has an incoming edge on it and must stay a member until every
// such state has been accounted for.
//
// Membership is tracked in a bitset (the bits-and-blooms library the
// teacher's peers in this pack use for dense membership masks) alongside a
// parallel count slice for the multiplicity.
type SmartSet struct {
	members *bitset.BitSet
	counts  []int32
	size    int // number of currently-set members, i.e. counts[x] > 0
}

// NewSmartSet returns an empty SmartSet over the universe {0, ..., n-1}.
func NewSmartSet(n int) *SmartSet {
	return &SmartSet{
		members: bitset.New(uint(n)),
		counts:  make([]int32, n),
	}
}

// Contains reports whether x is currently a member (count > 0).
func (s *SmartSet) Contains(x int) bool {
	return s.members.Test(uint(x))
}

// Add increments the multiplicity of x, making it a member if it was not
// one already.
func (s *SmartSet) Add(x int) {
	if s.counts[x] == 0 {
		s.members.Set(uint(x))
		s.size++
	}
	s.counts[x]++
}

// Remove decrements the multiplicity of x, dropping membership once the
// count reaches zero. Removing an element that is not a member is a no-op.
func (s *SmartSet) Remove(x int) {
	if s.counts[x] == 0 {
		return
	}
	s.counts[x]--
	if s.counts[x] == 0 {
		s.members.Clear(uint(x))
		s.size--
	}
}

// RemoveStrict behaves like Remove but asserts (in debug builds) that x was
// a member, mirroring the teacher's distinction between defensive and
// trusted removal paths.
func (s *SmartSet) RemoveStrict(x int) {
	assertf(s.counts[x] > 0, "RemoveStrict(%d) on a non-member", x)
	s.Remove(x)
}

// Empty reports whether the set has no members.
func (s *SmartSet) Empty() bool {
	return s.size == 0
}

// Len returns the number of distinct current members.
func (s *SmartSet) Len() int {
	return s.size
}

// AssignFlat replaces the contents of s with exactly the elements of xs,
// each at multiplicity one, discarding whatever multiplicities were there
// before.
func (s *SmartSet) AssignFlat(xs []int) {
	s.members.ClearAll()
	for i := range s.counts {
		s.counts[i] = 0
	}
	s.size = 0
	for _, x := range xs {
		s.counts[x] = 1
		s.members.Set(uint(x))
		s.size++
	}
}

// Elements returns the current members in ascending order. Order is
// unspecified by the spec but ascending order makes traces and tests
// deterministic and easy to read.
func (s *SmartSet) Elements() []int {
	out := make([]int, 0, s.size)
	for i, e := s.members.NextSet(0); e; i, e = s.members.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// ForEach calls f once for every current member, in ascending order. It
// exists alongside Elements for call sites (like inset iteration in
// olrt.go's seed) that would otherwise allocate a throwaway slice every call.
func (s *SmartSet) ForEach(f func(x int)) {
	for i, e := s.members.NextSet(0); e; i, e = s.members.NextSet(i + 1) {
		f(int(i))
	}
}
