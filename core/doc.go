// Package core defines the central Graph, Vertex, and Edge types for the
// planar-Ising pipeline: an undirected weighted multigraph with real-valued
// edge weights and generated edge IDs.
//
// The pipeline stages (rotation system, triangulation, orientation, matrix
// build) pass a single Graph by exclusive ownership: each evaluation derives
// its own Graph from the model, mutates it stage by stage, and discards it.
// Nothing is shared across evaluations, so the type carries no locks and is
// not safe for concurrent mutation.
//
// Key properties:
//   - Parallel edges between the same pair of vertices are distinct entities,
//     each with its own Edge.ID.
//   - Self-loops are rejected: an Ising coupling of a variable with itself is
//     a constant and belongs in the model offset.
//   - All query methods return deterministic orderings (vertex IDs lex asc,
//     edges by Edge.ID asc), so downstream stages are reproducible.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop was attempted.
package core
