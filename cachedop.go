// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

// lteCache memoizes the subset-modulo-preorder test used throughout the
// inclusion engine: ∀s∈P ∃t∈Q with R(s,t). Pointer identity (P===Q) is a
// free hit. Entries are keyed by the BiggerType pair, so they must be
// purged whenever either operand is evicted from the owning
// BiggerTypeCache (§4.6.4) — see invalidate.
type lteCache struct {
	memo map[ltePairKey]bool
	pre  *Preorder
}

type ltePairKey struct {
	p, q *BiggerType
}

func newLTECache(pre *Preorder) *lteCache {
	return &lteCache{memo: make(map[ltePairKey]bool), pre: pre}
}

// LTE reports whether p<=q modulo the preorder: every state of p is
// dominated by some state of q.
func (c *lteCache) LTE(p, q *BiggerType) bool {
	if p == q {
		return true
	}
	key := ltePairKey{p, q}
	if v, ok := c.memo[key]; ok {
		return v
	}
	v := subsetModuloPreorder(p.states, q.states, c.pre)
	c.memo[key] = v
	return v
}

func subsetModuloPreorder(p, q []int, pre *Preorder) bool {
	for _, s := range p {
		if !intersectsSorted(pre.Ind(s), q) {
			return false
		}
	}
	return true
}

// invalidate removes every memoized entry that mentions bt, as either
// operand.
func (c *lteCache) invalidate(bt *BiggerType) {
	for k := range c.memo {
		if k.p == bt || k.q == bt {
			delete(c.memo, k)
		}
	}
}

// evalTransitionsCache memoizes, for a (symbol, child position, candidate
// set) triple, the union of bigger-automaton rule indices whose child at
// that position lies in the candidate set.
type evalTransitionsCache struct {
	memo   map[evalKey][]int
	bigger *TreeAutomaton
}

type evalKey struct {
	symbol, position int
	set              *BiggerType
}

func newEvalTransitionsCache(bigger *TreeAutomaton) *evalTransitionsCache {
	return &evalTransitionsCache{memo: make(map[evalKey][]int), bigger: bigger}
}

func (c *evalTransitionsCache) Eval(symbol, position int, set *BiggerType) []int {
	key := evalKey{symbol: symbol, position: position, set: set}
	if v, ok := c.memo[key]; ok {
		return v
	}
	seen := make(map[int]bool)
	out := make([]int, 0)
	for _, s := range set.states {
		for _, idx := range c.bigger.RuleIndicesWithChildAt(symbol, position, s) {
			if !seen[idx] {
				seen[idx] = true
				out = append(out, idx)
			}
		}
	}
	c.memo[key] = out
	return out
}

func (c *evalTransitionsCache) invalidate(bt *BiggerType) {
	for k := range c.memo {
		if k.set == bt {
			delete(c.memo, k)
		}
	}
}

// intersectRuleIndices returns the rule indices present in every one of the
// given index sets, used to combine per-position evalTransitionsCache
// results into the set of bigger rules consistent with every child
// position's candidate set at once.
func intersectRuleIndices(sets [][]int) []int {
	if len(sets) == 0 {
		return nil
	}
	counts := make(map[int]int)
	for _, set := range sets {
		seen := make(map[int]bool)
		for _, idx := range set {
			if !seen[idx] {
				seen[idx] = true
				counts[idx]++
			}
		}
	}
	out := make([]int, 0)
	for idx, n := range counts {
		if n == len(sets) {
			out = append(out, idx)
		}
	}
	return out
}
