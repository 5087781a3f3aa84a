// Copyright (c) 2024 The vata authors
//
// MIT License

/*
Package vata implements the core decision procedures of a tree-automata
library: computing simulation preorders on labelled transition systems and
deciding language inclusion between finite bottom-up tree automata.

Simulation

ComputeSimulation runs a Paige-Tarjan-style partition-refinement, known as the
OLRT algorithm, on a labelled transition system (LTS). Given an LTS over
states Q and labels L, an initial partition of Q into blocks, and an initial
block-level relation, it computes the coarsest relation refining the input
that is a simulation: whenever two blocks are related and a state in the
first has an a-transition, some state in the second must have a matching
a-transition into a related block.

Inclusion

An InclusionChecker decides language inclusion between two explicit tree
automata modulo a state preorder, using an antichain-based upward search. It
explores configurations (q, P) where q is a state of the smaller automaton
and P is a downward-closed antichain of bigger-automaton states reachable on
the same tree context, terminating with a verdict and, on refutation, a
witnessing trace of transitions.

Both procedures are single-threaded and synchronous: no operation suspends,
there is no task scheduler, and there are no timeouts. They are also fully
deterministic, including the tie-breaks used in the inclusion engine's
worklist order, so the same input always produces the same output.

Use of build tags

Internal bookkeeping for invariant checking and execution tracing is
available when compiling with the `debug` build tag; see debug.go. Without
the tag, the corresponding calls compile to no-ops and carry no runtime cost.
*/
package vata
