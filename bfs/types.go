package bfs

import (
	"errors"

	"github.com/katalvlaran/planar/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to BFS.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// EdgeKind distinguishes how BFS encountered an edge.
type EdgeKind int

const (
	// TreeEdge is an edge that discovered a new vertex.
	TreeEdge EdgeKind = iota

	// CrossEdge is an edge whose far endpoint was already visited.
	// Each cross edge is reported exactly once.
	CrossEdge
)

// Option configures optional behavior of BFS traversal.
type Option func(*options)

// options holds configurable parameters for BFS traversal.
type options struct {
	// onEdge, if non-nil, is invoked once per explored edge. For a TreeEdge
	// the far endpoint to is being discovered from. For a CrossEdge both
	// endpoints are already visited. Returning an error aborts traversal.
	onEdge func(from, to string, e *core.Edge, kind EdgeKind) error
}

// WithOnEdge installs fn as the per-edge hook.
func WithOnEdge(fn func(from, to string, e *core.Edge, kind EdgeKind) error) Option {
	return func(o *options) { o.onEdge = fn }
}

// Result collects the outcome of a breadth-first traversal.
type Result struct {
	// Order lists vertices in discovery order.
	Order []string

	// Parent maps each non-root visited vertex to its BFS-tree parent.
	Parent map[string]string

	// ParentEdge maps each non-root visited vertex to the Edge.ID of the
	// tree edge that discovered it.
	ParentEdge map[string]string

	// Depth maps each visited vertex to its distance from the root.
	Depth map[string]int

	// Visited marks every vertex reached from the root.
	Visited map[string]bool
}
