// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import "strconv"

// BiggerType is a reference-counted, immutable sorted set of bigger-automaton
// states, interned through a BiggerTypeCache so pointer equality implies set
// equality (§4.3, §4.6.4). id is a monotonically increasing intern sequence
// number, used as the deterministic tie-break the teacher's source gets for
// free from pointer identity: Go gives no ordering guarantee on raw pointer
// values across runs, so id stands in for it.
type BiggerType struct {
	id       uint64
	states   []int
	refcount int32
}

// States returns the sorted member states.
func (b *BiggerType) States() []int { return b.states }

// ID returns the intern sequence number, used to break ties in the
// inclusion engine's worklist order.
func (b *BiggerType) ID() uint64 { return b.id }

// BiggerTypeCache interns sorted state-sets: two calls to Intern with
// pointer-distinct but element-equal slices return the same *BiggerType.
// Release decrements a handle's refcount and, on reaching zero, evicts it
// from the table and invokes every registered invalidation callback, which
// dependent memoization caches (cachedop.go) use to purge entries keyed on
// the vanishing pointer before it could be reused for an unrelated set.
type BiggerTypeCache struct {
	table   map[string]*BiggerType
	nextID  uint64
	onEvict []func(*BiggerType)
}

// NewBiggerTypeCache returns an empty cache with an initial table capacity
// hint of size (see WithInternSize).
func NewBiggerTypeCache(size int) *BiggerTypeCache {
	if size < 0 {
		size = 0
	}
	return &BiggerTypeCache{table: make(map[string]*BiggerType, size)}
}

// OnEvict registers a callback invoked synchronously whenever a BiggerType
// is evicted from the cache, before its identity could be reused.
func (c *BiggerTypeCache) OnEvict(f func(*BiggerType)) {
	c.onEvict = append(c.onEvict, f)
}

func encodeStates(states []int) string {
	buf := make([]byte, 0, len(states)*4)
	for i, s := range states {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(s), 10)
	}
	return string(buf)
}

// Intern returns the canonical handle for states (which must already be
// sorted ascending and free of duplicates), creating and bumping its
// refcount to 1 on first sight, or bumping an existing handle's refcount.
func (c *BiggerTypeCache) Intern(states []int) *BiggerType {
	key := encodeStates(states)
	if b, ok := c.table[key]; ok {
		if b.refcount < _MAXREFCOUNT {
			b.refcount++
		}
		return b
	}
	b := &BiggerType{id: c.nextID, states: append([]int(nil), states...), refcount: 1}
	c.nextID++
	c.table[key] = b
	return b
}

// Release decrements b's refcount, evicting it and firing every
// invalidation callback once it reaches zero.
func (c *BiggerTypeCache) Release(b *BiggerType) {
	if b == nil {
		return
	}
	b.refcount--
	if b.refcount > 0 {
		return
	}
	delete(c.table, encodeStates(b.states))
	for _, f := range c.onEvict {
		f(b)
	}
}
