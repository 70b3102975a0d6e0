package embed

import "fmt"

// Next advances a face-tracing walk by one step: from arc a, it looks up the
// head vertex's rotation, finds a's edge there, and returns the arc leaving
// along the next edge counterclockwise. Following Next from any arc until it
// returns to the start traces exactly one face, with the face on the left of
// every arc.
//
// The traversal is deterministic and restartable: it holds no state beyond
// the embedding itself.
func (m *Embedding) Next(a Arc) (Arc, error) {
	head, err := m.Head(a)
	if err != nil {
		return Arc{}, fmt.Errorf("embed: Next(%v): %w", a, err)
	}

	// The reverse of a enters the rotation of head as a.EdgeID; the walk
	// leaves along the following entry, cyclically.
	order := m.rot[head]
	i := indexOf(order, a.EdgeID)
	if i < 0 {
		return Arc{}, fmt.Errorf("embed: edge %q absent from rotation of %q", a.EdgeID, head)
	}
	next := order[(i+1)%len(order)]

	return Arc{EdgeID: next, Tail: head}, nil
}

// traceFace walks the face containing start and returns its full boundary.
func (m *Embedding) traceFace(start Arc) (Face, error) {
	face := Face{start}
	cur := start
	for {
		nxt, err := m.Next(cur)
		if err != nil {
			return nil, err
		}
		if nxt == start {
			return face, nil
		}
		face = append(face, nxt)
		cur = nxt
	}
}

// Faces traces every face of the embedding, visiting arcs in a deterministic
// order (edges by ID ascending, From-arc before To-arc). Each of the 2·E
// arcs belongs to exactly one face; for a connected embedding the number of
// faces satisfies Euler's formula V − E + F = 2.
// Complexity: O(E·d) where d bounds vertex degree.
func (m *Embedding) Faces() ([]Face, error) {
	visited := make(map[Arc]bool, 2*m.g.EdgeCount())
	var faces []Face

	for _, e := range m.g.Edges() {
		for _, tail := range []string{e.From, e.To} {
			start := Arc{EdgeID: e.ID, Tail: tail}
			if visited[start] {
				continue
			}
			face, err := m.traceFace(start)
			if err != nil {
				return nil, err
			}
			for _, a := range face {
				visited[a] = true
			}
			faces = append(faces, face)
		}
	}

	return faces, nil
}

// indexOf returns the position of id in order or -1.
func indexOf(order []string, id string) int {
	for i, x := range order {
		if x == id {
			return i
		}
	}

	return -1
}
