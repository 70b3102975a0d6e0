// pipeline.go - the stages shared by LogPartition and GroundState:
// multigraph → rotation system → triangulation → edge index → expanded dual.

package ising

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/kasteleyn"
)

// ErrTooFewVariables - Kasteleyn's construction needs at least three
// variables; trivial models are cheaper to enumerate directly.
var ErrTooFewVariables = errors.New("ising: model has fewer than 3 variables")

// pipeline carries the intermediate artifacts of the shared stages.
type pipeline struct {
	emb   *embed.Embedding
	index map[string]int
	dual  *embed.Dual
	off   float64
}

// prepare runs the model through the geometry stages. pos must assign a
// coordinate to every variable of a crossing-free drawing; planarity of
// the drawing itself is an unchecked precondition.
func (m *Model) prepare(pos map[string]embed.Point) (*pipeline, error) {
	if m.NumVariables() < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVariables, m.NumVariables())
	}

	g, off, err := m.multigraph()
	if err != nil {
		return nil, err
	}

	emb, err := embed.FromCoordinates(g, pos)
	if err != nil {
		return nil, err
	}
	if err = embed.PlaneTriangulate(emb); err != nil {
		return nil, err
	}

	index := kasteleyn.IndexEdges(emb.Graph())
	dual, err := embed.ExpandedDual(emb, index)
	if err != nil {
		return nil, err
	}

	return &pipeline{emb: emb, index: index, dual: dual, off: off}, nil
}
