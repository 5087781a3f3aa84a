// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

// CachingAllocator is a free-list for fixed-shape mutable vectors of type
// []uint32, used by SharedList (remove lists, §4.3) and SharedCounter (row
// bodies, §4.4). Acquire returns an empty-but-capacity-preserving vector,
// either freshly allocated or recycled from the pool; Reclaim returns a
// vector to the pool for later reuse. Correctness never depends on pooling:
// dropping the pool and always allocating fresh still produces a correct
// program, pooling only avoids repeated garbage-collector churn on the hot
// incr/decr/append paths, the same trade the teacher makes with the BDD
// node table's freepos/freenum free list (kernel.go/hkernel.go).
//
// No cross-thread safety is provided or required: §5 of the design fixes
// single-threaded, synchronous execution for both engines.
type CachingAllocator struct {
	free []*[]uint32
	made int // total vectors ever produced, for Stats
}

// NewCachingAllocator returns an allocator whose free list is pre-sized
// according to poolSize (see WithAllocatorPool).
func NewCachingAllocator(poolSize int) *CachingAllocator {
	if poolSize < 0 {
		poolSize = 0
	}
	return &CachingAllocator{free: make([]*[]uint32, 0, poolSize)}
}

// Acquire returns a vector with length zero, ready to be appended to. It is
// either a recycled vector from the pool (with its old capacity intact) or
// a freshly allocated one.
func (a *CachingAllocator) Acquire() *[]uint32 {
	if n := len(a.free); n > 0 {
		v := a.free[n-1]
		a.free = a.free[:n-1]
		*v = (*v)[:0]
		return v
	}
	a.made++
	v := make([]uint32, 0, 4)
	return &v
}

// Reclaim returns v to the free list for later reuse. It is the caller's
// responsibility not to keep using v afterward; this mirrors the teacher's
// vectorAllocator_.reclaim calls, which are only ever made once a row or
// chunk is provably unreferenced (refCount reaches zero).
func (a *CachingAllocator) Reclaim(v *[]uint32) {
	if v == nil {
		return
	}
	a.free = append(a.free, v)
}

// Stats reports the total number of vectors ever produced (recycled
// acquisitions do not count) and the number currently pooled.
func (a *CachingAllocator) Stats() (produced, pooled int) {
	return a.made, len(a.free)
}
