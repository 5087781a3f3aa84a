// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import "sort"

// Transition is one labelled edge parent --label--> child of a Labelled
// Transition System, per §2 and §4.1.
type Transition struct {
	Parent int
	Label  int
	Child  int
}

// LTS is an explicit labelled transition system over states {0, ..., N-1}
// and labels {0, ..., L-1}, built by repeated AddTransition calls and
// finalized once via Finalize. Finalize computes the pre-image tables and
// the compact per-label predecessor keys that SharedCounter (C4) indexes
// rows by, mirroring the teacher's pattern of a mutable builder phase
// followed by a frozen, query-optimized phase (compare buddy.go's table
// construction followed by frozen hashing in bdd.go, before this repo's
// domain rewrite).
type LTS struct {
	states      int
	labels      int
	transitions []Transition

	// pre[a][q] lists, in ascending order, every parent p such that
	// (p, a, q) is a transition. Built by Finalize.
	pre [][][]int

	// post[a][p] lists, in ascending order, every child q such that
	// (p, a, q) is a transition. Built by Finalize.
	post [][][]int

	// key[a*states+p] is the compact index of predecessor state p among all
	// states that appear as a parent of some a-transition; rang[a] is the
	// number of such states. SharedCounter rows for label a have exactly
	// rang[a] body slots.
	key  []int
	rang []int

	finalized bool
}

// NewLTS returns an empty LTS with the given number of states and labels.
func NewLTS(states, labels int) *LTS {
	return &LTS{
		states: states,
		labels: labels,
	}
}

// States returns the number of states.
func (l *LTS) States() int { return l.states }

// Labels returns the number of labels.
func (l *LTS) Labels() int { return l.labels }

// AddTransition records parent --label--> child. It must not be called
// after Finalize.
func (l *LTS) AddTransition(parent, label, child int) {
	assertf(!l.finalized, "AddTransition after Finalize")
	assertf(parent >= 0 && parent < l.states, "parent state %d out of range", parent)
	assertf(child >= 0 && child < l.states, "child state %d out of range", child)
	assertf(label >= 0 && label < l.labels, "label %d out of range", label)
	l.transitions = append(l.transitions, Transition{Parent: parent, Label: label, Child: child})
}

// Finalize computes the pre-image tables and compact predecessor keys.
// It is idempotent-unsafe to call twice but safe to call once after all
// transitions have been added.
func (l *LTS) Finalize() {
	assertf(!l.finalized, "Finalize called twice")

	l.pre = make([][][]int, l.labels)
	l.post = make([][][]int, l.labels)
	for a := range l.pre {
		l.pre[a] = make([][]int, l.states)
		l.post[a] = make([][]int, l.states)
	}

	predecessorSets := make([]map[int]bool, l.labels)
	for a := range predecessorSets {
		predecessorSets[a] = make(map[int]bool)
	}

	for _, t := range l.transitions {
		l.pre[t.Label][t.Child] = append(l.pre[t.Label][t.Child], t.Parent)
		l.post[t.Label][t.Parent] = append(l.post[t.Label][t.Parent], t.Child)
		predecessorSets[t.Label][t.Parent] = true
	}

	for a := 0; a < l.labels; a++ {
		for q := 0; q < l.states; q++ {
			sort.Ints(l.pre[a][q])
			sort.Ints(l.post[a][q])
		}
	}

	l.key = make([]int, l.labels*l.states)
	l.rang = make([]int, l.labels)
	for a := 0; a < l.labels; a++ {
		preds := make([]int, 0, len(predecessorSets[a]))
		for p := range predecessorSets[a] {
			preds = append(preds, p)
		}
		sort.Ints(preds)
		for idx, p := range preds {
			l.key[a*l.states+p] = idx
		}
		l.rang[a] = len(preds)
	}

	l.finalized = true
}

// Pre returns, in ascending order, every state p such that (p, a, q) is a
// transition. Finalize must have been called.
func (l *LTS) Pre(a, q int) []int {
	assertf(l.finalized, "Pre called before Finalize")
	return l.pre[a][q]
}

// HasPredecessor reports whether any state has an a-edge into q.
func (l *LTS) HasPredecessor(a, q int) bool {
	return len(l.Pre(a, q)) > 0
}

// Post returns, in ascending order, every state q such that (p, a, q) is a
// transition. Finalize must have been called.
func (l *LTS) Post(a, p int) []int {
	assertf(l.finalized, "Post called before Finalize")
	return l.post[a][p]
}

// HasSuccessor reports whether p has any a-edge to some state.
func (l *LTS) HasSuccessor(a, p int) bool {
	return len(l.Post(a, p)) > 0
}

// InLabels returns, in ascending order, every label with at least one edge
// into q. Used to seed a block's inset (§3, §4.2) from its member states.
func (l *LTS) InLabels(q int) []int {
	assertf(l.finalized, "InLabels called before Finalize")
	out := make([]int, 0)
	for a := 0; a < l.labels; a++ {
		if l.HasPredecessor(a, q) {
			out = append(out, a)
		}
	}
	return out
}

// OutLabels returns, in ascending order, every label used by at least one
// outgoing edge of p.
func (l *LTS) OutLabels(p int) []int {
	assertf(l.finalized, "OutLabels called before Finalize")
	out := make([]int, 0)
	for a := 0; a < l.labels; a++ {
		if len(l.post[a][p]) > 0 {
			out = append(out, a)
		}
	}
	return out
}
