// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller contract violations (category (a) in the error
// handling design) and resource exhaustion (category (c)). Algorithmic
// refutation of inclusion (category (b)) is not an error: it is a normal
// boolean result paired with an InclContext describing why.
var (
	// ErrNotPartition is returned when the partition argument to
	// ComputeSimulation does not partition [0, states).
	ErrNotPartition = errors.New("vata: partition does not cover states exactly once")

	// ErrBadRelation is returned when the initial block-level relation is not
	// reflexive or does not have one row/column per block.
	ErrBadRelation = errors.New("vata: initial relation is not a reflexive relation over the partition")

	// ErrStateRange is returned when outputSize is smaller than the number of
	// LTS states, or when the partition names a state outside the LTS.
	ErrStateRange = errors.New("vata: outputSize smaller than the largest referenced state")

	// ErrAllocation is the sentinel for a CachingAllocator or an intern table
	// that cannot grow its backing storage. No function in this package
	// returns it.
	ErrAllocation = errors.New("vata: unable to allocate or resize backing storage")
)

// assertf panics with a formatted message when cond is false and the
// package is built with the debug tag; see assertEnabled in
// debug.go/debug_off.go. Without the tag it checks that constant and
// returns, though its arguments are still evaluated at the call site.
func assertf(cond bool, format string, a ...interface{}) {
	if assertEnabled && !cond {
		panic("vata: assertion failed: " + fmt.Sprintf(format, a...))
	}
}
