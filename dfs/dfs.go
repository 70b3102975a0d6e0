package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planar/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Result collects the outcome of a depth-first traversal.
type Result struct {
	// Order lists vertices in pre-order (discovery order).
	Order []string

	// PostOrder lists vertices in post-order (finish order); every vertex
	// appears after all of its spanning-tree descendants.
	PostOrder []string

	// Parent maps each non-root visited vertex to its spanning-tree parent.
	Parent map[string]string

	// ParentEdge maps each non-root visited vertex to the Edge.ID of the
	// spanning-tree edge connecting it to Parent[v].
	ParentEdge map[string]string

	// Depth maps each visited vertex to its distance from the root in the
	// spanning tree.
	Depth map[string]int

	// Visited marks every vertex reached from the root.
	Visited map[string]bool
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	res   *Result
}

// DFS performs a depth-first search on graph g starting at startID and
// returns the spanning-tree Result. Only the component containing startID is
// traversed; comparing len(Result.Order) with g.VertexCount() is the
// idiomatic connectivity check.
func DFS(g *core.Graph, startID string) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Verify startID
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 3. Initialize result with capacity hints
	n := g.VertexCount()
	res := &Result{
		Order:      make([]string, 0, n),
		PostOrder:  make([]string, 0, n),
		Parent:     make(map[string]string, n),
		ParentEdge: make(map[string]string, n),
		Depth:      make(map[string]int, n),
		Visited:    make(map[string]bool, n),
	}

	// 4. Traverse
	w := &walker{graph: g, res: res}
	if err := w.traverse(startID, 0); err != nil {
		return nil, err
	}

	return res, nil
}

// traverse visits vertex id at the given depth, recursing to neighbors in
// Edge.ID order.
func (w *walker) traverse(id string, depth int) error {
	// 1. Mark visited, record discovery
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	// 2. Fetch neighbors once (sorted by Edge.ID)
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	// 3. Explore each neighbor not yet visited
	var nid string
	for _, e := range nbs {
		nid = e.Other(id)
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		w.res.ParentEdge[nid] = e.ID
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	// 4. Record finish
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
