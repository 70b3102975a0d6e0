package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; for graphs built from
// an Ising model the ID is the model variable name.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents an undirected connection between two vertices.
//
// From/To record the endpoints in insertion order; the pair carries no
// direction of its own (the Kasteleyn orientation stage assigns directions
// externally, keyed by Edge.ID). Weight is the matching-model weight the
// multigraph builder derived from the coupling; chords added by the
// triangulator carry weight 0.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint's vertex ID (insertion order).
	From string

	// To is the second endpoint's vertex ID (insertion order).
	To string

	// Weight is the real-valued edge weight.
	Weight float64
}

// Other returns the endpoint of e that is not id.
// If id is not an endpoint of e, Other returns the empty string.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// Graph is the in-memory multigraph the pipeline stages mutate in turn.
//
// It is always undirected and weighted, permits parallel edges, and forbids
// self-loops. A Graph is owned by exactly one evaluation at a time and must
// not be mutated from multiple goroutines.
type Graph struct {
	nextEdgeID uint64             // edge ID generator, "e1", "e2", ...
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	// Mirrored both ways for every edge.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
}
