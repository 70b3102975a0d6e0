package bfs

import (
	"fmt"

	"github.com/katalvlaran/planar/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  options
	queue []queueItem
	seen  map[string]bool // edge IDs already reported to the hook
	res   *Result
}

// BFS runs breadth-first search on g starting from startID, applying any
// number of functional Options. Neighbors are explored in Edge.ID order, so
// the traversal is deterministic.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, or any
// error returned by the OnEdge hook.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 2. Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		seen:  make(map[string]bool),
		res: &Result{
			Order:      make([]string, 0, n),
			Parent:     make(map[string]string, n),
			ParentEdge: make(map[string]string, n),
			Depth:      make(map[string]int, n),
			Visited:    make(map[string]bool, n),
		},
	}

	// 3. Seed queue with start vertex and run the main loop
	w.enqueue(startID, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d and appends it to the queue.
func (w *walker) enqueue(id string, d int) {
	w.res.Visited[id] = true
	w.res.Depth[id] = d
	w.res.Order = append(w.res.Order, id)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty.
func (w *walker) loop() error {
	var item queueItem
	for len(w.queue) > 0 {
		item, w.queue = w.queue[0], w.queue[1:]

		nbs, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: Neighbors(%q): %w", item.id, err)
		}
		for _, e := range nbs {
			if w.seen[e.ID] {
				continue
			}
			w.seen[e.ID] = true

			nid := e.Other(item.id)
			if !w.res.Visited[nid] {
				// Tree edge: discover nid.
				if err = w.hook(item.id, nid, e, TreeEdge); err != nil {
					return err
				}
				w.res.Parent[nid] = item.id
				w.res.ParentEdge[nid] = e.ID
				w.enqueue(nid, item.depth+1)
			} else {
				// Cross edge: both endpoints known.
				if err = w.hook(item.id, nid, e, CrossEdge); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// hook invokes the OnEdge callback when installed.
func (w *walker) hook(from, to string, e *core.Edge, kind EdgeKind) error {
	if w.opts.onEdge == nil {
		return nil
	}
	if err := w.opts.onEdge(from, to, e, kind); err != nil {
		return fmt.Errorf("bfs: OnEdge hook for %q: %w", e.ID, err)
	}

	return nil
}
