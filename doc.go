// Package planar computes exact inference quantities for pairwise Ising
// models whose interaction graph admits a crossing-free drawing — the
// log-partition function and the exact ground state — in polynomial time,
// via Kasteleyn's reduction of weighted perfect-matching counts on planar
// graphs to a matrix determinant.
//
// 🚀 What is planar?
//
//	A small, composable library that brings together:
//		• Core primitives: a weighted planar multigraph with parallel edges
//		• Embeddings: rotation systems from 2D coordinates, face tracing
//		• Triangulation: zero-weight fan chords until every face is a triangle
//		• Kasteleyn machinery: odd-out-degree orientation, expanded dual,
//		  skew-symmetric matrix assembly, Pfaffian via pivoted LU (gonum)
//		• Matching: blossom maximum-weight matching for ground-state decoding
//		• Model layer: Ising couplings + offset in, log Z or spins out
//
// ✨ Why choose planar?
//
//   - Exact - no sampling, no annealing; a determinant, not a heuristic
//   - Polynomial - O(n³) where brute force is O(2ⁿ)
//   - Pure pipeline - one evaluation owns its graph; no shared state
//   - Honest failures - invalid preconditions surface as errors, never NaN
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/      — Graph, Vertex, Edge: the mutable multigraph the stages share
//	dfs/, bfs/ — spanning-tree and layered traversals used by the stages
//	embed/     — rotation systems, faces, triangulation, expanded dual
//	kasteleyn/ — orientation, edge indexing, matrix build, logsqrtdet
//	matching/  — maximum-weight perfect matching (blossom)
//	ising/     — Model, LogPartition, GroundState
//	lattice/   — grid/cycle/triangular model generators for tests and demos
//	draw/      — SVG rendering of embeddings
//
// Quick ASCII example:
//
//	    a───b        antiferromagnetic triangle: the frustrated
//	     ╲  │        textbook instance; its ground state flips
//	      ╲ │        exactly one pair and has energy −1
//	        c
//
// The precondition is combinatorial, not verified: the supplied coordinates
// must describe a crossing-free drawing of the model's interaction graph.
//
//	go get github.com/katalvlaran/planar
package planar
