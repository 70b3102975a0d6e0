package embed

import "fmt"

// PlaneTriangulate augments the embedding with zero-weight chords until every
// face, the unbounded one included, is bounded by exactly three edges. Each
// chord is spliced into the rotation system locally, so the embedding stays
// valid throughout; planarity is preserved because chords are only ever drawn
// inside the face they subdivide.
//
// Original vertices and edges are never removed, and chords carry weight 0 so
// the represented energy function is unchanged. Running PlaneTriangulate on an
// already-triangulated embedding adds no edges and changes nothing
// (idempotent).
//
// Returns ErrBigonFace if some face has fewer than three corners that can be
// cut (parallel edges bounding a bigon).
// Complexity: O(F·k²) over face sizes k; linear in practice for the fan cuts.
func PlaneTriangulate(m *Embedding) error {
	faces, err := m.Faces()
	if err != nil {
		return err
	}
	for _, face := range faces {
		if err = m.triangulateFace(face); err != nil {
			return err
		}
	}

	return nil
}

// triangulateFace cuts corners off one face walk until it is a triangle.
//
// A corner is a pair of consecutive arcs (u→v, v→w); cutting it adds the
// chord u—w inside the face, splitting off the triangle (u,v,w) and
// shrinking the walk by one. Corners with u == w (the walk doubling back
// over a bridge) are skipped; the fan stays anchored while valid corners
// remain at the front of the walk.
func (m *Embedding) triangulateFace(face Face) error {
	// Already triangular or smaller: leave untouched; bigons are fatal below.
	walk := make(Face, len(face))
	copy(walk, face)

	for len(walk) > 3 {
		// 1. Find the first cuttable corner.
		cut := -1
		var u, w string
		for j := range walk {
			a1, a2 := walk[j], walk[(j+1)%len(walk)]
			head2, err := m.Head(a2)
			if err != nil {
				return err
			}
			if a1.Tail != head2 {
				cut, u, w = j, a1.Tail, head2
				break
			}
		}
		if cut < 0 {
			// Every corner doubles back: an alternating bigon-like walk.
			return fmt.Errorf("embed: face of length %d: %w", len(walk), ErrBigonFace)
		}

		// 2. Add the chord u—w with weight 0.
		a1, a2 := walk[cut], walk[(cut+1)%len(walk)]
		cid, err := m.g.AddEdge(u, w, 0)
		if err != nil {
			return fmt.Errorf("embed: chord %s-%s: %w", u, w, err)
		}

		// 3. Splice the chord into the rotation system: at w immediately
		// after the corner's incoming edge, at u immediately before its
		// outgoing edge. This makes the split triangle (u,v,w) and the
		// shrunken face both trace correctly.
		m.insertAfter(w, a2.EdgeID, cid)
		m.insertBefore(u, a1.EdgeID, cid)

		// 4. Shrink the walk: the corner's two arcs collapse into the chord
		// arc u→w.
		walk[cut] = Arc{EdgeID: cid, Tail: u}
		walk = removeAt(walk, (cut+1)%len(walk))
	}

	if len(walk) < 3 {
		return fmt.Errorf("embed: face of length %d: %w", len(walk), ErrBigonFace)
	}

	return nil
}

// insertAfter places newID immediately after refID in v's rotation.
func (m *Embedding) insertAfter(v, refID, newID string) {
	order := m.rot[v]
	i := indexOf(order, refID)
	out := make([]string, 0, len(order)+1)
	out = append(out, order[:i+1]...)
	out = append(out, newID)
	out = append(out, order[i+1:]...)
	m.rot[v] = out
}

// insertBefore places newID immediately before refID in v's rotation.
func (m *Embedding) insertBefore(v, refID, newID string) {
	order := m.rot[v]
	i := indexOf(order, refID)
	out := make([]string, 0, len(order)+1)
	out = append(out, order[:i]...)
	out = append(out, newID)
	out = append(out, order[i:]...)
	m.rot[v] = out
}

// removeAt deletes the element at position i from the walk.
func removeAt(walk Face, i int) Face {
	return append(walk[:i], walk[i+1:]...)
}
