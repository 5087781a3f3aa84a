// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

// _MAXREFCOUNT is the maximal value held in the refCount administrative slot
// of a SharedCounter row (see sharedcounter.go) and in a SharedList's own
// refcount (see sharedlist.go). Saturating at this value, rather than
// overflowing, mirrors the teacher's treatment of a BDD node's refcou for
// nodes referenced unboundedly often.
const _MAXREFCOUNT int32 = 0x3FFFFFFF

// _DEFAULTPOOLSIZE is the default initial capacity hint for a
// CachingAllocator's free list when no WithAllocatorPool option is given.
const _DEFAULTPOOLSIZE int = 64

// _DEFAULTINTERNSIZE is the default initial size of the BiggerTypeCache
// intern table when no WithInternSize option is given.
const _DEFAULTINTERNSIZE int = 1024

// _MINFREERATIO is the default minimum free-list occupancy (%) stored by
// newOptions (see WithMinFreeRatio); CachingAllocator does not read it.
const _MINFREERATIO int = 20
