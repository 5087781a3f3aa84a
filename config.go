// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

// options holds the tunable parameters shared by ComputeSimulation and
// InclusionChecker. The zero value is filled in with defaults by newOptions.
type options struct {
	allocatorPool int // initial capacity hint for CachingAllocator free lists
	internSize    int // initial size of the BiggerTypeCache intern table
	internRatio   int // growth ratio (%) of the intern table, 0 if fixed
	minFreeRatio  int // minimum free-list occupancy (%) before growing the pool
}

// Option configures ComputeSimulation or NewInclusionChecker. Following the
// teacher's functional-options idiom, each Option is a function that mutates
// an *options built from defaults.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		allocatorPool: _DEFAULTPOOLSIZE,
		internSize:    _DEFAULTINTERNSIZE,
		minFreeRatio:  _MINFREERATIO,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAllocatorPool sets the initial capacity hint for the free lists used
// by the CachingAllocator backing SharedList remove-lists and SharedCounter
// rows (C3). It sets the initial capacity of the free-list slice; no vectors
// are allocated up front, and the pool grows past this size on demand.
func WithAllocatorPool(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.allocatorPool = size
		}
	}
}

// WithInternSize sets the initial number of slots in the BiggerTypeCache
// intern table used by the inclusion engine (C6) to hash-cons bigger-sets.
func WithInternSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.internSize = size
		}
	}
}

// WithInternRatio records a growth ratio (%) for the intern table. The value
// is stored in the options but nothing reads it: the BiggerTypeCache table
// is a Go map sized once from WithInternSize and grows like any other map.
func WithInternRatio(ratio int) Option {
	return func(o *options) {
		o.internRatio = ratio
	}
}

// WithMinFreeRatio records a minimum free-list occupancy (%) for the
// CachingAllocator; the default is 20%. The value is stored in the options
// but nothing reads it: Acquire reuses a pooled vector whenever one is
// available and otherwise allocates a fresh one.
func WithMinFreeRatio(ratio int) Option {
	return func(o *options) {
		if ratio > 0 && ratio <= 100 {
			o.minFreeRatio = ratio
		}
	}
}
