// groundstate.go - exact minimum-energy configuration via maximum weight
// perfect matching on the expanded dual.

package ising

import (
	"errors"

	"github.com/katalvlaran/planar/bfs"
	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/kasteleyn"
	"github.com/katalvlaran/planar/matching"
)

// ErrNoPerfectMatching - the dual admitted no perfect matching. The
// all-long-pairs matching always exists for a well-formed dual, so this
// indicates a broken pipeline invariant rather than bad user input.
var ErrNoPerfectMatching = errors.New("ising: expanded dual has no perfect matching")

// GroundState returns a spin configuration minimizing E(s), together with
// its energy. The smallest variable is pinned to +1, which selects one
// configuration out of each globally-flipped pair; degenerate models may
// have further ground states with the same energy.
//
// Every perfect matching of the expanded dual encodes a spin configuration:
// a long pair left unmatched marks its edge as cut (disagreeing endpoint
// spins). Matching weight equals −2·Σ J over agreeing couplings plus a
// constant, so the maximum weight perfect matching is exactly the minimum
// of E. Spins are then propagated from the pinned root by BFS, flipping
// across cut edges.
func GroundState(m *Model, pos map[string]embed.Point) (map[string]int8, float64, error) {
	p, err := m.prepare(pos)
	if err != nil {
		return nil, 0, err
	}

	// 1. Maximum weight perfect matching on the dual. Gadget pairs carry
	// weight zero, long pairs their edge weight.
	edges := make([]matching.Edge, 0, len(p.dual.Longs)+len(p.dual.Gadgets))
	for _, l := range p.dual.Longs {
		edges = append(edges, matching.Edge{U: l.FromNode, V: l.ToNode, Weight: l.Weight})
	}
	for _, gp := range p.dual.Gadgets {
		edges = append(edges, matching.Edge{U: gp[0], V: gp[1]})
	}
	mate, err := matching.MaxWeight(p.dual.N, edges, true)
	if err != nil {
		return nil, 0, err
	}
	for _, partner := range mate {
		if partner < 0 {
			return nil, 0, ErrNoPerfectMatching
		}
	}

	// 2. A long pair not matched to itself means the edge is cut.
	cut := make(map[string]bool, len(p.dual.Longs))
	for _, l := range p.dual.Longs {
		cut[l.EdgeID] = mate[l.FromNode] != l.ToNode
	}

	// 3. Propagate spins from the pinned root across the triangulated
	// graph (chords included, so connectivity is guaranteed per face).
	g := p.emb.Graph()
	root := m.Variables()[0]
	spins := map[string]int8{root: 1}
	_, err = bfs.BFS(g, root, bfs.WithOnEdge(
		func(from, to string, e *core.Edge, kind bfs.EdgeKind) error {
			if kind != bfs.TreeEdge {
				return nil
			}
			if cut[e.ID] {
				spins[to] = -spins[from]
			} else {
				spins[to] = spins[from]
			}
			return nil
		}))
	if err != nil {
		return nil, 0, err
	}
	if len(spins) != g.VertexCount() {
		return nil, 0, kasteleyn.ErrDisconnected
	}

	energy, err := m.Energy(spins)
	if err != nil {
		return nil, 0, err
	}
	return spins, energy, nil
}
