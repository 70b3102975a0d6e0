package embed

import (
	"errors"

	"github.com/katalvlaran/planar/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is supplied.
	ErrNilGraph = errors.New("embed: graph is nil")

	// ErrMissingCoordinate indicates the coordinate map does not cover every
	// vertex of the graph.
	ErrMissingCoordinate = errors.New("embed: coordinate map missing a vertex")

	// ErrBigonFace indicates a face bounded by fewer than three distinct
	// corners (parallel couplings between the same pair), which cannot be
	// triangulated.
	ErrBigonFace = errors.New("embed: face cannot be triangulated")

	// ErrFaceNotTriangle indicates the expanded dual was requested for an
	// embedding that is not fully triangulated.
	ErrFaceNotTriangle = errors.New("embed: face is not a triangle")

	// ErrIndexIncomplete indicates the edge index does not cover every edge
	// of the graph.
	ErrIndexIncomplete = errors.New("embed: edge index missing an edge")
)

// Point is a 2D coordinate of a vertex in the planar drawing.
type Point struct {
	X, Y float64
}

// Arc is a directed traversal of an undirected edge: EdgeID traversed from
// Tail toward its other endpoint. Every edge yields exactly two arcs.
type Arc struct {
	// EdgeID identifies the underlying core.Edge.
	EdgeID string

	// Tail is the vertex the arc leaves.
	Tail string
}

// Face is the closed boundary walk of one face of the embedding, as a
// sequence of arcs in face-tracing order (face on the left; bounded faces
// counterclockwise).
type Face []Arc

// Embedding couples a graph with its rotation system. The graph is shared,
// not copied: triangulation mutates both the graph (new chords) and the
// rotation system in place, matching the pipeline's single-owner lifecycle.
type Embedding struct {
	g *core.Graph

	// rot maps each vertex to the counterclockwise cyclic order of its
	// incident edge IDs.
	rot map[string][]string
}

// Graph returns the underlying graph.
func (m *Embedding) Graph() *core.Graph { return m.g }

// Rotation returns the counterclockwise cyclic order of incident edge IDs at
// vertex v. The returned slice is the live rotation; callers must not
// mutate it.
func (m *Embedding) Rotation(v string) []string { return m.rot[v] }

// Head returns the endpoint the arc enters.
func (m *Embedding) Head(a Arc) (string, error) {
	e, err := m.g.Edge(a.EdgeID)
	if err != nil {
		return "", err
	}

	return e.Other(a.Tail), nil
}
