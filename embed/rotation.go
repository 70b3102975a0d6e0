package embed

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/planar/core"
)

// FromCoordinates derives the rotation system of g from a vertex→coordinate
// mapping and returns the resulting Embedding.
//
// For each vertex, incident edges are sorted by the angle of the vector
// toward the opposite endpoint, counterclockwise from the positive x-axis.
// Ties between parallel edges (identical angle) are broken by Edge.ID, i.e.
// insertion order, so the result is deterministic.
//
// Precondition (not verified): the coordinates describe a crossing-free
// drawing of g. If they do not, downstream stages silently produce an
// incorrect orientation rather than an error.
//
// Returns ErrNilGraph or ErrMissingCoordinate.
// Complexity: O(Σ d·log d) over vertex degrees d.
func FromCoordinates(g *core.Graph, pos map[string]Point) (*Embedding, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	vertices := g.Vertices()
	for _, v := range vertices {
		if _, ok := pos[v]; !ok {
			return nil, fmt.Errorf("embed: vertex %q: %w", v, ErrMissingCoordinate)
		}
	}

	// 2. Sort each vertex's incident edges by bearing
	rot := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		nbs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("embed: Neighbors(%q): %w", v, err)
		}

		type incident struct {
			id    string
			angle float64
		}
		inc := make([]incident, 0, len(nbs))
		p := pos[v]
		for _, e := range nbs {
			q := pos[e.Other(v)]
			inc = append(inc, incident{
				id:    e.ID,
				angle: math.Atan2(q.Y-p.Y, q.X-p.X),
			})
		}
		// Neighbors is already Edge.ID-sorted; a stable sort on angle keeps
		// parallel edges in insertion order.
		sort.SliceStable(inc, func(i, j int) bool { return inc[i].angle < inc[j].angle })

		order := make([]string, len(inc))
		for i, in := range inc {
			order[i] = in.id
		}
		rot[v] = order
	}

	return &Embedding{g: g, rot: rot}, nil
}
