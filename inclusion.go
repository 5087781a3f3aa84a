// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"sort"

	"github.com/google/uuid"
)

// InclContext carries the outcome of one CheckInclusion run: a
// human-readable description of the result and, on refutation, the chain of
// smaller-automaton rules that witness the uncovered tree (§4.6, §7).
type InclContext struct {
	RunID       string
	Description string
	trace       []TreeRule
}

// Trace returns the accumulated witness rules for this run, in the order
// they were recorded. It is populated whether or not inclusion holds (see
// SPEC_FULL §3's "trace accumulation on leaves").
func (c *InclContext) Trace() []TreeRule { return c.trace }

type nextEntry struct {
	smaller int
	bigger  *BiggerType
}

// lessEntry orders by (|P|, smallerState, P-identity), matching §4.5's
// "smallest bigger first" heuristic with a deterministic tie-break.
func lessEntry(a, b nextEntry) bool {
	if len(a.bigger.states) != len(b.bigger.states) {
		return len(a.bigger.states) < len(b.bigger.states)
	}
	if a.smaller != b.smaller {
		return a.smaller < b.smaller
	}
	return a.bigger.id < b.bigger.id
}

// InclusionChecker decides language inclusion between two tree automata
// modulo a given preorder (§4.6). One checker handles exactly one
// CheckInclusion call; create a fresh one to run again.
type InclusionChecker struct {
	smaller, bigger *TreeAutomaton
	pre             *Preorder

	cache *BiggerTypeCache
	lte   *lteCache
	eval  *evalTransitionsCache

	processed *Antichain2C
	temporary *Antichain2C
	next      []nextEntry

	ctx *InclContext
}

// NewInclusionChecker prepares a checker for L(smaller) ⊆ L(bigger) modulo
// pre. opts set the BiggerTypeCache's initial intern table size
// (WithInternSize); the other options have no effect here.
func NewInclusionChecker(smaller, bigger *TreeAutomaton, pre *Preorder, opts ...Option) *InclusionChecker {
	o := newOptions(opts)
	cache := NewBiggerTypeCache(o.internSize)
	lte := newLTECache(pre)
	eval := newEvalTransitionsCache(bigger)
	cache.OnEvict(lte.invalidate)
	cache.OnEvict(eval.invalidate)
	return &InclusionChecker{
		smaller:   smaller,
		bigger:    bigger,
		pre:       pre,
		cache:     cache,
		lte:       lte,
		eval:      eval,
		processed: NewAntichain2C(),
		temporary: NewAntichain2C(),
	}
}

// CheckInclusion runs the antichain search and reports whether L(smaller) ⊆
// L(bigger), along with the run's context (trace and description).
func (c *InclusionChecker) CheckInclusion() (bool, *InclContext) {
	c.ctx = &InclContext{RunID: uuid.NewString()[:12]}
	ok := c.run()
	if ok {
		c.ctx.Description = "Inclusion proved!"
	}
	return ok, c.ctx
}

// Close releases every BiggerType still held by this checker's antichains
// back to its intern cache. A checker is unusable after Close; create a new
// one to run again. Callers that run many checks against the same automata
// pair should call Close promptly so the cache's eviction callbacks (which
// purge lteCache/evalTransitionsCache entries) fire deterministically rather
// than waiting on the garbage collector.
func (c *InclusionChecker) Close() {
	c.processed.Clear(c.cache)
	c.temporary.Clear(c.cache)
}

func (c *InclusionChecker) refute(reason string) string {
	c.ctx.Description = "Inclusion refuted! Reason: " + reason
	return reason
}

func (c *InclusionChecker) run() bool {
	if reason := c.seedLeaves(); reason != "" {
		c.refute(reason)
		return false
	}
	tracef(c.ctx.RunID, "seeded leaves, %d pending", len(c.next))
	for len(c.next) > 0 {
		e := c.next[0]
		c.next = c.next[1:]
		tracef(c.ctx.RunID, "pop (%d, %v)", e.smaller, e.bigger.States())
		if reason := c.expand(e.smaller, e.bigger); reason != "" {
			c.refute(reason)
			return false
		}
	}
	return true
}

// seedLeaves implements §4.6.2.
func (c *InclusionChecker) seedLeaves() string {
	if c.bigger.NumLeaves() < c.smaller.NumLeaves() {
		return "leaves set sizes incompatible"
	}
	for _, symbol := range c.smaller.LeafSymbols() {
		post := NewAntichain1C()
		for _, r := range c.bigger.Leaves(symbol) {
			post.Add(r.Head, c.pre)
		}
		final := post.AnyFinal(c.bigger)
		sorted := post.Sorted()

		for _, t := range c.smaller.Leaves(symbol) {
			q := t.Head
			if c.smaller.IsFinal(q) && !final {
				return "leaves not covered"
			}
			if intersectsSorted(c.pre.Ind(q), sorted) {
				continue
			}
			ptr := c.cache.Intern(sorted)
			if c.processed.Contains(c.pre.Ind(q), ptr, c.lte) {
				c.cache.Release(ptr)
				continue
			}
			c.processed.Refine(c.pre.Inv(q), ptr, c.lte, c.cache, c.erase)
			c.processed.Insert(q, ptr)
			c.insertNext(q, ptr)
			c.ctx.trace = append(c.ctx.trace, t)
		}
	}
	return ""
}

// expand implements one pop of the §4.6.3 main loop: every smaller rule
// that could use q (now covered by qptr) at some child position is a
// candidate for extension.
func (c *InclusionChecker) expand(q int, qptr *BiggerType) string {
	for _, sp := range c.smaller.PositionsOf(q) {
		for _, t := range c.smaller.RulesForSymbolAndPosition(sp.Symbol, sp.Position, q) {
			if reason := c.expandRule(t, sp.Position, qptr); reason != "" {
				return reason
			}
		}
	}
	return ""
}

// expandRule Cartesian-iterates the ChoiceVector for rule t with position
// pinned to pinned, then promotes whatever landed in temporary.
func (c *InclusionChecker) expandRule(t TreeRule, pinned int, pinnedSet *BiggerType) string {
	arity := len(t.Children)
	candidates := make([][]*BiggerType, arity)
	for k := 0; k < arity; k++ {
		if k == pinned {
			candidates[k] = []*BiggerType{pinnedSet}
			continue
		}
		lst := c.processed.Lookup(t.Children[k])
		if len(lst) == 0 {
			return ""
		}
		candidates[k] = lst
	}

	idx := make([]int, arity)
	for {
		choice := make([]*BiggerType, arity)
		for k := range idx {
			choice[k] = candidates[k][idx[k]]
		}
		if reason := c.tryChoice(t, choice); reason != "" {
			return reason
		}
		k := arity - 1
		for k >= 0 {
			idx[k]++
			if idx[k] < len(candidates[k]) {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			break
		}
	}
	c.promote()
	return ""
}

// tryChoice evaluates one Cartesian assignment (§4.6.3 step 2).
func (c *InclusionChecker) tryChoice(t TreeRule, choice []*BiggerType) string {
	sets := make([][]int, len(choice))
	for k, bt := range choice {
		sets[k] = c.eval.Eval(t.Symbol, k, bt)
	}
	ruleIdxs := intersectRuleIndices(sets)

	post := NewAntichain1C()
	for _, idx := range ruleIdxs {
		post.Add(c.bigger.Rule(idx).Head, c.pre)
	}
	final := post.AnyFinal(c.bigger)
	if post.Empty() || (c.smaller.IsFinal(t.Head) && !final) {
		return "smaller accepts, bigger does not"
	}

	sorted := post.Sorted()
	if intersectsSorted(c.pre.Ind(t.Head), sorted) {
		return ""
	}
	ptr := c.cache.Intern(sorted)
	if c.temporary.Contains(c.pre.Ind(t.Head), ptr, c.lte) {
		c.cache.Release(ptr)
		return ""
	}
	c.temporary.Refine(c.pre.Inv(t.Head), ptr, c.lte, c.cache, nil)
	c.temporary.Insert(t.Head, ptr)
	c.ctx.trace = append(c.ctx.trace, t)
	return ""
}

// promote migrates temporary into processed (§4.6.3 step 3).
func (c *InclusionChecker) promote() {
	promoted := 0
	c.temporary.Entries(func(state int, p *BiggerType) {
		if c.processed.Contains(c.pre.Ind(state), p, c.lte) {
			c.cache.Release(p)
			return
		}
		c.processed.Refine(c.pre.Inv(state), p, c.lte, c.cache, c.erase)
		c.processed.Insert(state, p)
		c.insertNext(state, p)
		promoted++
	})
	tracef(c.ctx.RunID, "promoted %d configuration(s)", promoted)
	c.temporary.Reset()
}

func (c *InclusionChecker) insertNext(state int, p *BiggerType) {
	e := nextEntry{smaller: state, bigger: p}
	i := sort.Search(len(c.next), func(i int) bool { return !lessEntry(c.next[i], e) })
	c.next = append(c.next, nextEntry{})
	copy(c.next[i+1:], c.next[i:])
	c.next[i] = e
}

// erase drops (state, bigger) from the pending worklist, used as the
// Eraser callback passed to Antichain2C.Refine so a dominated configuration
// cannot be popped and expanded after it has been superseded.
func (c *InclusionChecker) erase(state int, bigger *BiggerType) {
	for i, e := range c.next {
		if e.smaller == state && e.bigger == bigger {
			c.next = append(c.next[:i], c.next[i+1:]...)
			return
		}
	}
}
