package embed

import "fmt"

// Long is the expanded-dual connection between the two arcs of one graph
// edge. It carries the edge's weight; a perfect matching that leaves a Long
// unmatched puts that edge in the cut.
type Long struct {
	// EdgeID identifies the underlying graph edge.
	EdgeID string

	// Weight is the graph edge's weight.
	Weight float64

	// FromNode is the dual node of the arc leaving Edge.From (index 2i);
	// ToNode is the dual node of the reverse arc (index 2i+1).
	FromNode, ToNode int
}

// Dual is the expanded dual of a triangulated embedding: one node per arc,
// one Long per edge, and a triangle gadget inside every face. Its weighted
// perfect matchings are in weight-preserving bijection with the cuts of the
// original graph, which is what both the Kasteleyn matrix and the
// ground-state matching consume.
type Dual struct {
	// N is the number of dual nodes, always 2·E.
	N int

	// Index maps each edge ID to its dense index i; the edge's arcs are the
	// dual nodes 2i (From→To) and 2i+1 (To→From).
	Index map[string]int

	// EdgeIDs is the inverse of Index.
	EdgeIDs []string

	// Longs holds one entry per graph edge, ordered by Index.
	Longs []Long

	// Gadgets holds the directed gadget pairs, three per face. Gadget pairs
	// carry weight zero (matrix entries ±1). The pairs traverse every gadget triangle in the reverse
	// of face-tracing order, which is the cyclic sense the Kasteleyn parity
	// condition requires of bounded gadget faces.
	Gadgets [][2]int
}

// ArcNode returns the dual node index of an arc.
func (d *Dual) ArcNode(m *Embedding, a Arc) (int, error) {
	e, err := m.g.Edge(a.EdgeID)
	if err != nil {
		return 0, err
	}
	i, ok := d.Index[a.EdgeID]
	if !ok {
		return 0, fmt.Errorf("embed: edge %q: %w", a.EdgeID, ErrIndexIncomplete)
	}
	if a.Tail == e.From {
		return 2 * i, nil
	}

	return 2*i + 1, nil
}

// ExpandedDual constructs the expanded dual of a triangulated embedding
// using the given dense edge index. Every face must be a triangle
// (ErrFaceNotTriangle) and the index must cover every edge
// (ErrIndexIncomplete).
// Complexity: O(V + E).
func ExpandedDual(m *Embedding, index map[string]int) (*Dual, error) {
	edges := m.g.Edges()
	d := &Dual{
		N:       2 * len(edges),
		Index:   index,
		EdgeIDs: make([]string, len(edges)),
		Longs:   make([]Long, len(edges)),
	}

	// 1. One Long per edge, ordered by index.
	for _, e := range edges {
		i, ok := index[e.ID]
		if !ok {
			return nil, fmt.Errorf("embed: edge %q: %w", e.ID, ErrIndexIncomplete)
		}
		d.EdgeIDs[i] = e.ID
		d.Longs[i] = Long{
			EdgeID:   e.ID,
			Weight:   e.Weight,
			FromNode: 2 * i,
			ToNode:   2*i + 1,
		}
	}

	// 2. One gadget triangle per face, directed against the trace order.
	faces, err := m.Faces()
	if err != nil {
		return nil, err
	}
	for _, face := range faces {
		if len(face) != 3 {
			return nil, fmt.Errorf("embed: face of length %d: %w", len(face), ErrFaceNotTriangle)
		}
		var n [3]int
		for k, a := range face {
			if n[k], err = d.ArcNode(m, a); err != nil {
				return nil, err
			}
		}
		// Reversed cycle: a0→a2, a2→a1, a1→a0.
		d.Gadgets = append(d.Gadgets,
			[2]int{n[0], n[2]},
			[2]int{n[2], n[1]},
			[2]int{n[1], n[0]},
		)
	}

	return d, nil
}
