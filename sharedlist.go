// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

// _CHUNKCAP is the fixed capacity of one SharedList chunk's backing vector
// before Append links a new chunk.
const _CHUNKCAP = 8

// sharedListChunk is one link of a SharedList's chain.
type sharedListChunk struct {
	data *[]uint32
	next *sharedListChunk
}

// SharedList is a singly-linked chain of fixed-capacity chunks, each backed
// by a vector drawn from a CachingAllocator (C3). It implements the
// per-(block,label) "remove" list described in §4.3/§4.5: many blocks can
// hold an alias of the same physical list (via Copy), and the list is only
// actually reclaimed once the last alias releases it (via UnsafeRelease).
//
// A SharedList is always used through a pointer; a nil *SharedList denotes
// "no pending remove list", matching the teacher's convention of a nil
// pointer meaning "row absent" in SharedCounter.
type SharedList struct {
	head     *sharedListChunk
	tail     *sharedListChunk
	refcount int32
}

// AppendToSharedList appends element to the list pointed to by listRef,
// allocating the list itself (and reporting true) if *listRef was nil, or
// appending to the current tail chunk (allocating and linking a new chunk
// on overflow) and reporting false otherwise. The boolean return is used by
// the OLRT engine to decide whether (block, label) must be pushed onto the
// worklist: only the very first append onto an previously-empty remove list
// is a new piece of work.
func AppendToSharedList(listRef **SharedList, element uint32, alloc *CachingAllocator) bool {
	if *listRef == nil {
		v := alloc.Acquire()
		*v = append(*v, element)
		chunk := &sharedListChunk{data: v}
		*listRef = &SharedList{head: chunk, tail: chunk, refcount: 1}
		return true
	}
	list := *listRef
	if len(*list.tail.data) >= _CHUNKCAP {
		v := alloc.Acquire()
		*v = append(*v, element)
		chunk := &sharedListChunk{data: v}
		list.tail.next = chunk
		list.tail = chunk
	} else {
		*list.tail.data = append(*list.tail.data, element)
	}
	return false
}

// Copy returns an alias of l, bumping its refcount. Both the caller's
// handle and the returned one must eventually call UnsafeRelease.
func (l *SharedList) Copy() *SharedList {
	if l.refcount < _MAXREFCOUNT {
		l.refcount++
	}
	return l
}

// UnsafeRelease decrements l's refcount and, once it reaches zero, walks
// the chain reclaiming every chunk's backing vector via alloc. It is
// "unsafe" in the same sense as the teacher's node-table operations: the
// caller must not touch l (or any alias of it) afterward if this call was
// the one that reached zero.
func (l *SharedList) UnsafeRelease(alloc *CachingAllocator) {
	if l == nil {
		return
	}
	l.refcount--
	if l.refcount > 0 {
		return
	}
	for c := l.head; c != nil; {
		next := c.next
		alloc.Reclaim(c.data)
		c = next
	}
}

// Elements returns the contents of the list, in append order, by walking
// every chunk in the chain.
func (l *SharedList) Elements() []uint32 {
	if l == nil {
		return nil
	}
	out := make([]uint32, 0)
	for c := l.head; c != nil; c = c.next {
		out = append(out, *c.data...)
	}
	return out
}
