// Package dfs implements depth-first search on core.Graph, recording the
// spanning tree (parent vertex and parent edge per vertex), pre-order and
// post-order sequences, and the visited set.
//
// The Kasteleyn orientation stage consumes the post-order: fixing each
// vertex's tree edge in finish order guarantees that all descendant edges
// are already directed when a vertex's parity is balanced. The same result
// doubles as the pipeline's connectivity check - a traversal from any root
// that does not cover every vertex means the embedding cannot be faced.
//
// Traversal is deterministic: neighbors are explored in Edge.ID order as
// returned by core.Graph.Neighbors.
//
// Complexity:
//
//   - Time:   O(V + E·log E) including neighbor sorting.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if the start vertex is missing.
package dfs
