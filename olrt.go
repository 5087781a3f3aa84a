// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import "github.com/google/uuid"

// olrtEngine computes the coarsest simulation consistent with a caller-given
// initial partition and block relation (§4, §4.5). It refines both as it
// discovers states whose behaviour disagrees with their block's peers,
// splitting the offending states into a new block exactly as
// explicit_lts_sim.cc's OLRTAlgorithm does, and maintains the invariant
// Rel[B][C] ⟸ B is simulated by C so a block only ever loses relation
// entries, never gains them, guaranteeing termination.
type olrtEngine struct {
	lts    *LTS
	blocks []*block
	rel    *BinaryRelation
	alloc  *CachingAllocator
	labels int
	runID  string

	worklist []workItem
	queued   map[workItem]bool
}

type workItem struct {
	block int
	label int
}

func newOLRTEngine(lts *LTS, partition [][]int, relation *BinaryRelation, o *options) *olrtEngine {
	labels := lts.Labels()
	n := lts.States()
	e := &olrtEngine{
		lts:    lts,
		rel:    relation.Clone(),
		alloc:  NewCachingAllocator(o.allocatorPool),
		labels: labels,
		runID:  uuid.NewString()[:12],
		queued: make(map[workItem]bool),
	}
	elems := make([]*stateListElem, n)
	e.blocks = make([]*block, len(partition))
	for i, cell := range partition {
		e.blocks[i] = newBlockFromStates(i, cell, labels, e.lts.key, n, e.lts.rang, e.alloc, elems, lts)
	}
	return e
}

func (e *olrtEngine) blockOf(state int) *block {
	return e.blocks[0].elems[state].owner
}

// enqueue schedules (c,a) for draining if it is not already pending.
func (e *olrtEngine) enqueue(c, a int) {
	w := workItem{block: c, label: a}
	if e.queued[w] {
		return
	}
	e.queued[w] = true
	e.worklist = append(e.worklist, w)
}

// pruneUnsupported clears Rel[b1][b2] for every pair where b1 needs an
// a-witness (some member state has an a-successor) but b2 cannot possibly
// supply one (no member state of b2 has any a-successor at all). This is
// the initial pass that primes the counter/worklist cascade for blocks
// that start out with no outgoing edges whatsoever on some label (§4.5.1
// step 6) — without it, seed's counter can come up non-zero purely because
// b1 and b2 haven't been compared on a yet, and the degenerate case where
// b2 offers no witness on any label never gets scheduled for revocation.
func (e *olrtEngine) pruneUnsupported() {
	for _, b2 := range e.blocks {
		for a := 0; a < e.labels; a++ {
			supported := false
			for _, q := range b2.states() {
				if e.lts.HasSuccessor(a, q) {
					supported = true
					break
				}
			}
			if supported {
				continue
			}
			for _, b1 := range e.blocks {
				if b1.index == b2.index || !e.rel.Get(b1.index, b2.index) {
					continue
				}
				for _, p := range b1.states() {
					if e.lts.HasSuccessor(a, p) {
						e.rel.Set(b1.index, b2.index, false)
						break
					}
				}
			}
		}
	}
}

// seed populates every block's counter from the current (initial) relation
// and discovers the first round of violations it already implies. c's
// counter at (a,p) counts the a-successors of p that lie in blocks d with
// Rel[c][d] — the blocks c is allowed to witness through (§4.5.1 step
// 7, matching explicit_lts_sim.cc's init(): a predecessor only counts
// towards c's budget for label a if c itself is related to the block its
// successor landed in).
func (e *olrtEngine) seed() {
	for _, c := range e.blocks {
		for _, d := range e.blocks {
			if !e.rel.Get(c.index, d.index) {
				continue
			}
			d.inset.ForEach(func(a int) {
				for _, q := range d.states() {
					for _, p := range e.lts.Pre(a, q) {
						c.counter.Incr(a, p)
					}
				}
			})
		}
	}
	for _, c := range e.blocks {
		for a := 0; a < e.labels; a++ {
			for _, b := range e.blocks {
				if !e.rel.Get(b.index, c.index) {
					continue
				}
				for _, p := range b.states() {
					if e.lts.HasSuccessor(a, p) && c.counter.Value(a, p) == 0 {
						if AppendToSharedList(&c.removes[a], uint32(p), e.alloc) {
							e.enqueue(c.index, a)
						}
					}
				}
			}
		}
	}
}

// revoke accounts for block x (typically a freshly split-off block) leaving
// Good_a(c) = {d : Rel[d][c]}: every predecessor, on label a, of a state in
// x loses one witness in c, and may itself need to be removed from c's
// relation if that was its last one. If no member of x even has an
// a-predecessor, x.inset says so and there is nothing to account for
// (§4.5.3's inset(B1)∩inset(B2) label restriction on processing removals).
func (e *olrtEngine) revoke(x *block, c *block, a int) {
	if !x.inset.Contains(a) {
		return
	}
	for _, q := range x.states() {
		for _, p := range e.lts.Pre(a, q) {
			if c.counter.Decr(a, p) == 0 {
				if AppendToSharedList(&c.removes[a], uint32(p), e.alloc) {
					e.enqueue(c.index, a)
				}
			}
		}
	}
}

// drain processes one pending (c,a) work item: every predecessor state on
// c's remove list for a no longer simulates into c, so it must leave the
// block relation Rel[blockOf(p)][c]. States are grouped by their current
// block and split off together.
func (e *olrtEngine) drain(c *block, a int) {
	list := c.removes[a]
	c.removes[a] = nil
	marks := list.Elements()
	list.UnsafeRelease(e.alloc)

	byBlock := make(map[*block][]int)
	for _, pu := range marks {
		p := int(pu)
		b := e.blockOf(p)
		if !e.rel.Get(b.index, c.index) {
			continue // already revoked by an earlier group in this same batch
		}
		byBlock[b] = append(byBlock[b], p)
	}

	for b, ps := range byBlock {
		if b.index == c.index {
			// A block always simulates itself: every one of its states can
			// witness its own moves. Self-relation is a standing invariant,
			// never a candidate for revocation.
			continue
		}
		if len(ps) == b.mainSize {
			// Every member of b lost its witness: the whole block's
			// relation to c is revoked, no split needed.
			e.rel.Set(b.index, c.index, false)
			e.revoke(b, c, a)
			continue
		}
		for _, p := range ps {
			b.markTmp(p, e.lts)
		}
		newIndex := e.rel.Split(b.index, true)
		nb := b.splitOff(newIndex, e.labels, e.lts)
		e.blocks = append(e.blocks, nb)
		e.rel.Set(nb.index, c.index, false)
		tracef(e.runID, "split block %d -> %d (%d states) on label %d, revoked from %d", b.index, nb.index, len(ps), a, c.index)
		e.revoke(nb, c, a)
	}
}

func (e *olrtEngine) run() {
	e.pruneUnsupported()
	e.seed()
	tracef(e.runID, "seeded %d blocks, %d worklist items", len(e.blocks), len(e.worklist))
	for len(e.worklist) > 0 {
		w := e.worklist[0]
		e.worklist = e.worklist[1:]
		delete(e.queued, w)
		tracef(e.runID, "drain block %d label %d", w.block, w.label)
		e.drain(e.blocks[w.block], w.label)
	}
	tracef(e.runID, "converged with %d blocks", len(e.blocks))
}

// stateRelation projects the converged block relation down onto a
// state-level BinaryRelation of the given dimension, as required by
// ComputeSimulation's result: R[q][q'] holds iff blockOf(q) is simulated by
// blockOf(q').
func (e *olrtEngine) stateRelation(outputSize int) *BinaryRelation {
	out := NewBinaryRelation(outputSize)
	n := e.lts.States()
	for q := 0; q < n; q++ {
		bq := e.blockOf(q)
		for q2 := 0; q2 < n; q2++ {
			if e.rel.Get(bq.index, e.blockOf(q2).index) {
				out.Set(q, q2, true)
			}
		}
	}
	return out
}

// ComputeSimulation computes the coarsest refinement of the given partition
// and block relation that is a simulation of lts: R[q][q'] holds in the
// result iff q' can match every move of q, transitively (§4).
//
// partition must cover every state of lts exactly once; relation must be a
// reflexive relation over len(partition) blocks, interpreted as "block i is
// simulated by block j". outputSize fixes the dimension of the returned
// relation and must be at least lts.States().
func ComputeSimulation(lts *LTS, partition [][]int, relation *BinaryRelation, outputSize int, opts ...Option) (*BinaryRelation, error) {
	o := newOptions(opts)

	if err := checkPartition(partition, lts.States()); err != nil {
		return nil, err
	}
	if relation.Size() != len(partition) {
		return nil, ErrBadRelation
	}
	if !relation.IsReflexive() {
		return nil, ErrBadRelation
	}
	if outputSize < lts.States() {
		return nil, ErrStateRange
	}

	e := newOLRTEngine(lts, partition, relation, o)
	e.run()
	return e.stateRelation(outputSize), nil
}

// checkPartition verifies that partition covers {0,...,n-1} exactly once.
func checkPartition(partition [][]int, n int) error {
	seen := make([]bool, n)
	count := 0
	for _, cell := range partition {
		for _, q := range cell {
			if q < 0 || q >= n {
				return ErrStateRange
			}
			if seen[q] {
				return ErrNotPartition
			}
			seen[q] = true
			count++
		}
	}
	if count != n {
		return ErrNotPartition
	}
	return nil
}
