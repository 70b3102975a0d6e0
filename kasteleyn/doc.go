// Package kasteleyn assigns the Pfaffian edge orientation of a triangulated
// planar embedding, indexes its edges, assembles the skew-symmetric
// Kasteleyn matrix on the expanded dual, and evaluates the log-Pfaffian via
// a pivoted LU factorization (gonum/mat).
//
// The orientation condition used here is odd out-degree at every vertex,
// fixed over a DFS spanning tree: non-tree edges keep their canonical
// direction, and each vertex's tree edge to its parent is set in post-order
// so the vertex's out-degree becomes odd. On a triangulated graph the root
// lands odd automatically (E = 3V−6). With the gadget triangles of the
// expanded dual directed against the face-tracing order, every bounded face
// of the dual then carries an odd number of clockwise boundary edges - the
// classical Kasteleyn condition - so all perfect matchings of the dual enter
// the Pfaffian with one sign and |Pf(K)| is the weighted matching sum.
//
// Failure modes are fatal by design: an orientation that cannot be completed
// or a singular matrix means the input violated a precondition (planarity,
// triangulation, connectivity), not that a retry could help.
package kasteleyn
