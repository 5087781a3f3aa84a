// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

// Antichain2C maps a smaller-automaton state to the list of interned
// bigger-state sets currently known to cover it. It backs both `processed`
// (the persistent frontier) and `temporary` (the per-transition scratch
// accumulator) of the inclusion engine (§4.6.1).
type Antichain2C struct {
	byState map[int][]*BiggerType
}

// NewAntichain2C returns an empty Antichain2C.
func NewAntichain2C() *Antichain2C {
	return &Antichain2C{byState: make(map[int][]*BiggerType)}
}

// Contains reports whether, for some state in upperSet, an existing entry P'
// satisfies p<=P' (p is already covered by a recorded, at-least-as-strong
// configuration).
func (a *Antichain2C) Contains(upperSet []int, p *BiggerType, lte *lteCache) bool {
	for _, s := range upperSet {
		for _, q := range a.byState[s] {
			if lte.LTE(p, q) {
				return true
			}
		}
	}
	return false
}

// Refine drops every existing entry at a state in lowerSet that is
// dominated by the newcomer p (q<=p), releasing it from cache and, if
// erase is non-nil, reporting it to the caller so dependent structures
// (like the inclusion engine's worklist) can drop it too.
func (a *Antichain2C) Refine(lowerSet []int, p *BiggerType, lte *lteCache, cache *BiggerTypeCache, erase func(state int, bigger *BiggerType)) {
	for _, s := range lowerSet {
		list := a.byState[s]
		kept := list[:0:0]
		for _, q := range list {
			if lte.LTE(q, p) {
				if erase != nil {
					erase(s, q)
				}
				cache.Release(q)
				continue
			}
			kept = append(kept, q)
		}
		a.byState[s] = kept
	}
}

// Insert records a new (state, p) configuration.
func (a *Antichain2C) Insert(state int, p *BiggerType) {
	a.byState[state] = append(a.byState[state], p)
}

// Lookup returns the bigger-sets currently recorded for state.
func (a *Antichain2C) Lookup(state int) []*BiggerType { return a.byState[state] }

// Entries iterates every (state, bigger) pair currently recorded, calling f
// for each; used by promote to migrate temporary's contents into processed.
func (a *Antichain2C) Entries(f func(state int, bigger *BiggerType)) {
	for s, list := range a.byState {
		for _, p := range list {
			f(s, p)
		}
	}
}

// Reset empties the antichain without releasing its entries, for use after
// every entry has already been individually transferred elsewhere or
// released by the caller (promote in inclusion.go does this).
func (a *Antichain2C) Reset() {
	a.byState = make(map[int][]*BiggerType)
}

// Clear empties the antichain, releasing every entry back to cache.
func (a *Antichain2C) Clear(cache *BiggerTypeCache) {
	for s, list := range a.byState {
		for _, p := range list {
			cache.Release(p)
		}
		delete(a.byState, s)
	}
}
