// Package bfs provides breadth-first search over a core.Graph, returning
// parent links, tree edges, and visit order, with an optional per-edge hook.
//
// BFS explores vertices in increasing distance from a start vertex. The
// OnEdge hook fires once per explored edge - spanning-tree edges and
// non-tree (cycle-closing) edges alike - which is how the ground-state
// decoder both propagates spins across the cut and verifies that the cut is
// consistent on every closing edge.
package bfs
