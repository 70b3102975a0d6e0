// Package ising computes exact quantities of pairwise Ising models on
// planar graphs: the log-partition function via Kasteleyn's Pfaffian method
// and an exact ground state via maximum weight perfect matching.
//
// A Model holds quadratic couplings J(u,v) between named spin variables
// s ∈ {−1,+1} and a constant energy offset:
//
//	E(s) = offset + Σ J(u,v)·s(u)·s(v)
//
// Positive J favors disagreeing spins, negative J agreeing ones. Both
// entry points take the model plus a crossing-free drawing of its
// interaction graph (coordinates per variable) and run the shared
// pipeline: rotation system → plane triangulation → Pfaffian orientation →
// expanded dual. LogPartition then evaluates log Σ_s exp(−E(s)) through a
// log-determinant, GroundState decodes an energy-minimizing configuration
// from a perfect matching of the dual.
//
// All failures are terminal: bad input (too few variables, missing
// coordinates, parallel couplings, disconnected interaction graph) and
// violated preconditions (a drawing with crossings) surface as errors,
// never as silently wrong numbers.
package ising
