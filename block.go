// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

// stateListElem is one node of an intrusive, doubly linked circular list of
// states, used for both a block's main list and its scratch tmp list during
// a split (§4.2, §4.5). Moving a state between lists is O(1) regardless of
// either list's size, which is the whole reason OLRT uses this structure
// instead of a slice: a split only touches the states it actually marks,
// never the rest of the block.
type stateListElem struct {
	state      int
	next, prev *stateListElem
	owner      *block
}

// listInsert inserts e into the circular list referenced by *head (creating
// a singleton list if *head is nil).
func listInsert(head **stateListElem, e *stateListElem) {
	if *head == nil {
		e.next, e.prev = e, e
		*head = e
		return
	}
	h := *head
	last := h.prev
	last.next = e
	e.prev = last
	e.next = h
	h.prev = e
}

// listRemove removes e from the circular list referenced by *head. e must
// currently be a member of that list.
func listRemove(head **stateListElem, e *stateListElem) {
	if e.next == e {
		*head = nil
		e.next, e.prev = nil, nil
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	if *head == e {
		*head = e.next
	}
	e.next, e.prev = nil, nil
}

// block is one equivalence class of the current partition during OLRT
// refinement (§4.2). It owns: the main list of its member states; a scratch
// tmp list used while a split is being computed; an inset recording which
// labels have an edge into some member state; a SharedCounter recording, per
// label a and state p, how many a-successors of p lie in blocks this block
// is related to; and one SharedList per label recording states whose count
// has dropped to zero (§4.3/§4.4).
type block struct {
	index int

	main     *stateListElem
	mainSize int

	tmp     *stateListElem
	tmpSize int

	inset   *SmartSet
	counter *SharedCounter
	removes []*SharedList // removes[a] accumulates predecessors to reprocess for label a

	elems []*stateListElem // elems[q] is this run's stateListElem for state q, shared across all blocks
}

// newBlockFromStates returns a block with the given index and member
// states, its SmartSet inset populated from lts's predecessor labels and its
// SharedCounter freshly allocated (no rows), sharing the engine-wide elems
// table so splitOff and markTmp continue to work across every block derived
// from it.
func newBlockFromStates(index int, states []int, labels int, key []int, n int, rang []int, alloc *CachingAllocator, elems []*stateListElem, lts *LTS) *block {
	b := &block{
		index:   index,
		inset:   NewSmartSet(labels),
		counter: NewSharedCounter(labels, key, n, rang, alloc),
		removes: make([]*SharedList, labels),
		elems:   elems,
	}
	for _, q := range states {
		e := &stateListElem{state: q, owner: b}
		b.elems[q] = e
		listInsert(&b.main, e)
		b.mainSize++
		for _, a := range lts.InLabels(q) {
			b.inset.Add(a)
		}
	}
	return b
}

// markTmp moves the stateListElem for state q from b's main list to its tmp
// list, used to collect the states that will leave b during a split. b's
// inset is updated to reflect q's departure.
func (b *block) markTmp(q int, lts *LTS) {
	e := b.elems[q]
	listRemove(&b.main, e)
	b.mainSize--
	listInsert(&b.tmp, e)
	b.tmpSize++
	for _, a := range lts.InLabels(q) {
		b.inset.Remove(a)
	}
}

// splitOff creates a new block containing every state currently on b's tmp
// list, removes them from b's bookkeeping (each moved element's owner is
// set to the new block; the shared elems slice itself is unchanged), and
// returns the new block. b's tmp
// list is empty afterward. newIndex is the index to assign the new block.
func (b *block) splitOff(newIndex int, labels int, lts *LTS) *block {
	assertf(b.tmp != nil, "splitOff called with an empty tmp list")
	nb := &block{
		index:   newIndex,
		inset:   NewSmartSet(labels),
		counter: b.counter.NewChild(),
		removes: make([]*SharedList, labels),
		elems:   b.elems,
	}
	for a := 0; a < labels; a++ {
		if b.counter.HasRow(a) {
			nb.counter.CopyRow(a, b.counter)
		}
	}
	nb.main = b.tmp
	nb.mainSize = b.tmpSize
	b.tmp, b.tmpSize = nil, 0

	e := nb.main
	for i := 0; i < nb.mainSize; i++ {
		e.owner = nb
		for _, a := range lts.InLabels(e.state) {
			nb.inset.Add(a)
		}
		e = e.next
	}
	return nb
}

// states returns the member states of b's main list in traversal order
// (unspecified but stable within a run), for building the final simulation
// classes.
func (b *block) states() []int {
	out := make([]int, 0, b.mainSize)
	if b.main == nil {
		return out
	}
	e := b.main
	for i := 0; i < b.mainSize; i++ {
		out = append(out, e.state)
		e = e.next
	}
	return out
}
