// orientation.go - Pfaffian orientation (odd out-degree) over a DFS tree,
// plus the dense edge index shared with the expanded dual.

package kasteleyn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/dfs"
	"github.com/katalvlaran/planar/embed"
)

var (
	// ErrDisconnected - the embedded graph is not connected, so no spanning
	// tree reaches every vertex and no Pfaffian orientation exists.
	ErrDisconnected = errors.New("kasteleyn: graph is not connected")

	// ErrNoOrientation - the tree sweep finished with an even out-degree at
	// the root, which means the input was not fully triangulated.
	ErrNoOrientation = errors.New("kasteleyn: no odd out-degree orientation exists")
)

// Orientation maps Edge.ID → direction flag:
// true means the edge runs From→To, false means To→From.
type Orientation map[string]bool

// Orient computes an odd out-degree orientation of the embedded graph.
//
// Every vertex must end with an odd number of outgoing edges. The sweep:
//
//  1. Run DFS from the lexicographically smallest vertex; reject a
//     disconnected graph.
//  2. Orient every non-tree edge canonically From→To.
//  3. Walk vertices in DFS post-order (children before parents): at each
//     non-root vertex all incident edges except the tree edge to the parent
//     are already fixed, so point the parent edge away from the vertex
//     exactly when its current out-degree is even.
//  4. The root has no free edge left; verify it landed odd.
//
// Complexity: O(V + E·maxDeg) time, O(V + E) memory.
func Orient(m *embed.Embedding) (Orientation, error) {
	g := m.Graph()

	// Step 1: spanning tree from the smallest vertex.
	vs := g.Vertices()
	if len(vs) == 0 {
		return nil, ErrDisconnected
	}
	root := vs[0]
	res, err := dfs.DFS(g, root)
	if err != nil {
		return nil, err
	}
	if len(res.Order) != g.VertexCount() {
		return nil, ErrDisconnected
	}

	// Step 2: canonical direction for every edge; tree edges get
	// overwritten below, in post-order.
	orient := make(Orientation, g.EdgeCount())
	for _, e := range g.Edges() {
		orient[e.ID] = true
	}

	// Step 3: fix each parent edge so the child's out-degree is odd.
	for _, v := range res.PostOrder {
		pe, ok := res.ParentEdge[v]
		if !ok {
			continue // root: handled after the sweep
		}
		out, derr := outDegree(g, v, pe, orient)
		if derr != nil {
			return nil, derr
		}
		leaves, derr := edgeLeavesVertex(g, pe, v)
		if derr != nil {
			return nil, derr
		}
		if out%2 == 0 {
			orient[pe] = leaves
		} else {
			orient[pe] = !leaves
		}
	}

	// Step 4: the root's parity is forced by everyone else's choices.
	out, derr := outDegree(g, root, "", orient)
	if derr != nil {
		return nil, derr
	}
	if out%2 == 0 {
		return nil, ErrNoOrientation
	}
	return orient, nil
}

// outDegree counts edges incident to v currently pointing away from v,
// ignoring the edge skipID (the still-undecided parent edge).
func outDegree(g *core.Graph, v, skipID string, orient Orientation) (int, error) {
	nbs, err := g.Neighbors(v)
	if err != nil {
		return 0, fmt.Errorf("kasteleyn: Neighbors(%q): %w", v, err)
	}
	out := 0
	for _, e := range nbs {
		if e.ID == skipID {
			continue
		}
		if orient[e.ID] == (e.From == v) {
			out++
		}
	}
	return out, nil
}

// edgeLeavesVertex reports the orientation flag that points edge eid away
// from vertex v.
func edgeLeavesVertex(g *core.Graph, eid, v string) (bool, error) {
	e, err := g.Edge(eid)
	if err != nil {
		return false, fmt.Errorf("kasteleyn: Edge(%q): %w", eid, err)
	}
	return e.From == v, nil
}

// IndexEdges assigns each edge a dense index 0..E-1 in Edge.ID order.
// The index is the node-numbering base of the expanded dual: edge i owns
// dual nodes 2i (From-side arc) and 2i+1 (To-side arc).
func IndexEdges(g *core.Graph) map[string]int {
	edges := g.Edges() // already sorted by Edge.ID
	idx := make(map[string]int, len(edges))
	for i, e := range edges {
		idx[e.ID] = i
	}
	return idx
}
