// Package lattice generates planar Ising models with matching coordinate
// maps, ready for the inference pipeline.
//
// Each generator returns a model plus a crossing-free drawing:
//
//   - Grid(rows, cols): orthogonal grid, 4-neighborhood.
//   - Cycle(n): ring of n spins on the unit circle.
//   - Triangular(rows, cols): grid plus one diagonal per cell, so every
//     bounded face is already a triangle.
//
// Couplings come from a CouplingFn (constant by default); stochastic
// distributions are seeded explicitly through WithSeed or WithRand, so a
// fixed seed always reproduces the same model. Option constructors validate
// their inputs and panic on programmer error; generators themselves return
// sentinel errors only.
package lattice
