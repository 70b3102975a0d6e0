// blossom.go - maximum weight matching via the blossom algorithm.
//
// The solver keeps every attribute in flat slices indexed by node number:
// real vertices are 0..n-1, contracted blossoms are n..2n-1 (at most n-1
// blossoms can be alive, so the range never overflows). Each edge k owns
// two "endpoints" 2k and 2k+1; endpoint[p] is the vertex sitting at p, and
// p^1 flips to the opposite side. Matching state is stored as endpoints
// (mate[v] = endpoint pointing at v's partner) until the very end.

package matching

import (
	"errors"
	"fmt"
)

// Edge is an undirected weighted edge between dense vertex indices.
type Edge struct {
	U      int
	V      int
	Weight float64
}

// ErrBadEndpoint - an edge references a vertex outside 0..n-1 or is a loop.
var ErrBadEndpoint = errors.New("matching: edge endpoint out of range or loop")

// MaxWeight computes a maximum weight matching on n vertices.
//
// It returns mate with mate[v] = partner of v, or -1 when v stays single.
// With maxCardinality the matching additionally has the largest possible
// number of edges, at maximum weight among such matchings; a perfect
// matching is then found whenever one exists, regardless of weights.
//
// Complexity: O(n³) time, O(n + len(edges)) memory.
func MaxWeight(n int, edges []Edge, maxCardinality bool) ([]int, error) {
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n || e.U == e.V {
			return nil, fmt.Errorf("%w: (%d,%d) with n=%d", ErrBadEndpoint, e.U, e.V, n)
		}
	}
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	if n == 0 || len(edges) == 0 {
		return mate, nil
	}

	s := newSolver(n, edges, maxCardinality)
	s.run()

	// Convert endpoint representation to vertex indices.
	for v := 0; v < n; v++ {
		if s.mate[v] >= 0 {
			mate[v] = s.endpoint[s.mate[v]]
		}
	}
	return mate, nil
}

type solver struct {
	n       int
	edges   []Edge
	maxCard bool

	endpoint  []int   // endpoint[p]: vertex at endpoint p of edge p/2
	neighbend [][]int // neighbend[v]: endpoints of edges leaving v (remote side)

	mate     []int // mate[v]: endpoint of matched edge, -1 if single
	label    []int // 0 free, 1 S, 2 T, 5 breadcrumb; per vertex and blossom
	labelend []int // endpoint through which the label was assigned
	inblossom []int // top-level blossom (or self) containing vertex v

	blossomparent    []int
	blossomchilds    [][]int
	blossombase      []int
	blossomendps     [][]int
	bestedge         []int   // least-slack edge to a different S-blossom
	blossombestedges [][]int // per top-level blossom; nil when absent
	unusedblossoms   []int

	dualvar   []float64 // u(v) for vertices, z(b) for blossoms
	allowedge []bool
	queue     []int
}

func newSolver(n int, edges []Edge, maxCard bool) *solver {
	s := &solver{n: n, edges: edges, maxCard: maxCard}

	maxWeight := 0.0
	for _, e := range edges {
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}

	ne := len(edges)
	s.endpoint = make([]int, 2*ne)
	s.neighbend = make([][]int, n)
	for k, e := range edges {
		s.endpoint[2*k] = e.U
		s.endpoint[2*k+1] = e.V
		s.neighbend[e.U] = append(s.neighbend[e.U], 2*k+1)
		s.neighbend[e.V] = append(s.neighbend[e.V], 2*k)
	}

	s.mate = fill(n, -1)
	s.label = make([]int, 2*n)
	s.labelend = fill(2*n, -1)
	s.inblossom = make([]int, n)
	s.blossomparent = fill(2*n, -1)
	s.blossomchilds = make([][]int, 2*n)
	s.blossombase = fill(2*n, -1)
	s.blossomendps = make([][]int, 2*n)
	s.bestedge = fill(2*n, -1)
	s.blossombestedges = make([][]int, 2*n)
	s.unusedblossoms = make([]int, 0, n)
	for b := n; b < 2*n; b++ {
		s.unusedblossoms = append(s.unusedblossoms, b)
	}
	s.dualvar = make([]float64, 2*n)
	for v := 0; v < n; v++ {
		s.inblossom[v] = v
		s.blossombase[v] = v
		s.dualvar[v] = maxWeight
	}
	s.allowedge = make([]bool, ne)
	return s
}

func fill(n, x int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = x
	}
	return out
}

// slack of edge k under the current duals; zero slack makes it allowable.
func (s *solver) slack(k int) float64 {
	e := s.edges[k]
	return s.dualvar[e.U] + s.dualvar[e.V] - 2*e.Weight
}

// leaves appends the real vertices inside blossom b to buf.
func (s *solver) leaves(b int, buf []int) []int {
	if b < s.n {
		return append(buf, b)
	}
	for _, t := range s.blossomchilds[b] {
		buf = s.leaves(t, buf)
	}
	return buf
}

// childAt and endpAt index a blossom's child / connecting-endpoint lists
// with Python-style wraparound (negative offsets count from the end).
func (s *solver) childAt(b, j int) int {
	c := s.blossomchilds[b]
	return c[mod(j, len(c))]
}

func (s *solver) endpAt(b, j int) int {
	e := s.blossomendps[b]
	return e[mod(j, len(e))]
}

func mod(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// assignLabel gives vertex w (and its top-level blossom) label t, reached
// through endpoint p. Labeling an S-blossom enqueues its vertices for
// scanning; labeling a T-blossom immediately S-labels its mate.
func (s *solver) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	s.label[w], s.label[b] = t, t
	s.labelend[w], s.labelend[b] = p, p
	s.bestedge[w], s.bestedge[b] = -1, -1
	if t == 1 {
		s.queue = s.leaves(b, s.queue)
	} else if t == 2 {
		base := s.blossombase[b]
		s.assignLabel(s.endpoint[s.mate[base]], 1, s.mate[base]^1)
	}
}

// scanBlossom traces back from v and w toward the tree roots, alternating
// sides, and returns the first common base vertex, or -1 when the paths end
// at two distinct roots (an augmenting path was found).
func (s *solver) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := s.inblossom[v]
		if s.label[b]&4 != 0 {
			base = s.blossombase[b]
			break
		}
		path = append(path, b)
		s.label[b] = 5 // breadcrumb
		if s.labelend[b] == -1 {
			v = -1 // reached a single (free) root
		} else {
			v = s.endpoint[s.labelend[b]]
			b = s.inblossom[v]
			// b is a T-blossom; step through to its S-side.
			v = s.endpoint[s.labelend[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}
	for _, b := range path {
		s.label[b] = 1
	}
	return base
}

// addBlossom contracts the odd cycle through edge k and base into a new
// blossom, relabels its vertices S, and merges the least-slack edge lists
// of its sub-blossoms.
func (s *solver) addBlossom(base, k int) {
	v, w := s.edges[k].U, s.edges[k].V
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	b := s.unusedblossoms[len(s.unusedblossoms)-1]
	s.unusedblossoms = s.unusedblossoms[:len(s.unusedblossoms)-1]
	s.blossombase[b] = base
	s.blossomparent[b] = -1
	s.blossomparent[bb] = b

	var path, endps []int

	// Trace from v back to the base.
	for bv != bb {
		s.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}
	path = append(path, bb)
	reverse(path)
	reverse(endps)
	endps = append(endps, 2*k)

	// Trace from w back to the base.
	for bw != bb {
		s.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}
	s.blossomchilds[b] = path
	s.blossomendps[b] = endps

	s.label[b] = 1
	s.labelend[b] = s.labelend[bb]
	s.dualvar[b] = 0

	// Former T-vertices become S-vertices and must be scanned.
	for _, lv := range s.leaves(b, nil) {
		if s.label[s.inblossom[lv]] == 2 {
			s.queue = append(s.queue, lv)
		}
		s.inblossom[lv] = b
	}

	// Merge least-slack edges toward other S-blossoms.
	bestedgeto := fill(2*s.n, -1)
	for _, sub := range path {
		var nblists [][]int
		if s.blossombestedges[sub] == nil {
			for _, lv := range s.leaves(sub, nil) {
				ks := make([]int, 0, len(s.neighbend[lv]))
				for _, p := range s.neighbend[lv] {
					ks = append(ks, p/2)
				}
				nblists = append(nblists, ks)
			}
		} else {
			nblists = [][]int{s.blossombestedges[sub]}
		}
		for _, nblist := range nblists {
			for _, ek := range nblist {
				j := s.edges[ek].V
				if s.inblossom[j] == b {
					j = s.edges[ek].U
				}
				bj := s.inblossom[j]
				if bj != b && s.label[bj] == 1 &&
					(bestedgeto[bj] == -1 || s.slack(ek) < s.slack(bestedgeto[bj])) {
					bestedgeto[bj] = ek
				}
			}
		}
		s.blossombestedges[sub] = nil
		s.bestedge[sub] = -1
	}
	var merged []int
	for _, ek := range bestedgeto {
		if ek != -1 {
			merged = append(merged, ek)
		}
	}
	s.blossombestedges[b] = merged
	s.bestedge[b] = -1
	for _, ek := range merged {
		if s.bestedge[b] == -1 || s.slack(ek) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = ek
		}
	}
}

// expandBlossom dissolves blossom b. During a stage (endstage false) a
// T-blossom's children must be relabeled by walking the even side of the
// cycle from the entry child to the base.
func (s *solver) expandBlossom(b int, endstage bool) {
	for _, sub := range s.blossomchilds[b] {
		s.blossomparent[sub] = -1
		switch {
		case sub < s.n:
			s.inblossom[sub] = sub
		case endstage && s.dualvar[sub] == 0:
			s.expandBlossom(sub, endstage)
		default:
			for _, lv := range s.leaves(sub, nil) {
				s.inblossom[lv] = sub
			}
		}
	}

	if !endstage && s.label[b] == 2 {
		entrychild := s.inblossom[s.endpoint[s.labelend[b]^1]]
		j := index(s.blossomchilds[b], entrychild)
		var jstep, endptrick int
		if j&1 != 0 {
			j -= len(s.blossomchilds[b]) // odd: walk forward with wraparound
			jstep = 1
			endptrick = 0
		} else {
			jstep = -1 // even: walk backward
			endptrick = 1
		}

		// Walk the cycle toward the base, alternating T and S children.
		p := s.labelend[b]
		for j != 0 {
			s.label[s.endpoint[p^1]] = 0
			s.label[s.endpoint[s.endpAt(b, j-endptrick)^endptrick^1]] = 0
			s.assignLabel(s.endpoint[p^1], 2, p)
			s.allowedge[s.endpAt(b, j-endptrick)/2] = true
			j += jstep
			p = s.endpAt(b, j-endptrick) ^ endptrick
			s.allowedge[p/2] = true
			j += jstep
		}

		// Relabel the base child T without stepping through to its mate.
		bv := s.childAt(b, j)
		s.label[s.endpoint[p^1]], s.label[bv] = 2, 2
		s.labelend[s.endpoint[p^1]], s.labelend[bv] = p, p
		s.bestedge[bv] = -1

		// The remaining (odd side) children keep or lose their labels.
		j += jstep
		for s.childAt(b, j) != entrychild {
			bv = s.childAt(b, j)
			if s.label[bv] == 1 {
				j += jstep
				continue
			}
			lv := -1
			for _, cand := range s.leaves(bv, nil) {
				lv = cand
				if s.label[cand] != 0 {
					break
				}
			}
			if lv != -1 && s.label[lv] != 0 {
				s.label[lv] = 0
				s.label[s.endpoint[s.mate[s.blossombase[bv]]]] = 0
				s.assignLabel(lv, 2, s.labelend[lv])
			}
			j += jstep
		}
	}

	// Recycle the blossom number.
	s.label[b] = -1
	s.labelend[b] = -1
	s.blossomchilds[b] = nil
	s.blossomendps[b] = nil
	s.blossombase[b] = -1
	s.blossombestedges[b] = nil
	s.bestedge[b] = -1
	s.unusedblossoms = append(s.unusedblossoms, b)
}

// augmentBlossom swaps matched and unmatched edges along the even path from
// vertex v to the base inside blossom b, then rotates the child list so v's
// sub-blossom becomes the new base.
func (s *solver) augmentBlossom(b, v int) {
	t := v
	for s.blossomparent[t] != b {
		t = s.blossomparent[t]
	}
	if t >= s.n {
		s.augmentBlossom(t, v)
	}
	i := index(s.blossomchilds[b], t)
	j := i
	var jstep, endptrick int
	if i&1 != 0 {
		j -= len(s.blossomchilds[b])
		jstep = 1
		endptrick = 0
	} else {
		jstep = -1
		endptrick = 1
	}
	for j != 0 {
		j += jstep
		t = s.childAt(b, j)
		p := s.endpAt(b, j-endptrick) ^ endptrick
		if t >= s.n {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = s.childAt(b, j)
		if t >= s.n {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}
	s.blossomchilds[b] = rotate(s.blossomchilds[b], i)
	s.blossomendps[b] = rotate(s.blossomendps[b], i)
	s.blossombase[b] = s.blossombase[s.blossomchilds[b][0]]
}

// augmentMatching flips the augmenting path that runs through edge k,
// tracing from both of its endpoints back to the tree roots.
func (s *solver) augmentMatching(k int) {
	starts := [2][2]int{
		{s.edges[k].U, 2*k + 1},
		{s.edges[k].V, 2 * k},
	}
	for _, sp := range starts {
		v, p := sp[0], sp[1]
		for {
			bs := s.inblossom[v]
			if bs >= s.n {
				s.augmentBlossom(bs, v)
			}
			s.mate[v] = p
			if s.labelend[bs] == -1 {
				break // reached a free root
			}
			t := s.endpoint[s.labelend[bs]]
			bt := s.inblossom[t]
			v = s.endpoint[s.labelend[bt]]
			j := s.endpoint[s.labelend[bt]^1]
			if bt >= s.n {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelend[bt]
			p = s.labelend[bt] ^ 1
		}
	}
}

// run executes up to n stages, each ending in either an augmentation or a
// proof that no further improvement exists.
func (s *solver) run() {
	for stage := 0; stage < s.n; stage++ {
		// Reset per-stage state.
		for i := range s.label {
			s.label[i] = 0
			s.bestedge[i] = -1
		}
		for b := s.n; b < 2*s.n; b++ {
			s.blossombestedges[b] = nil
		}
		for k := range s.allowedge {
			s.allowedge[k] = false
		}
		s.queue = s.queue[:0]

		// Every free vertex roots an alternating tree.
		for v := 0; v < s.n; v++ {
			if s.mate[v] == -1 && s.label[s.inblossom[v]] == 0 {
				s.assignLabel(v, 1, -1)
			}
		}

		augmented := false
		for {
			// Substage: grow trees until augmentation or exhaustion.
			for len(s.queue) > 0 && !augmented {
				v := s.queue[len(s.queue)-1]
				s.queue = s.queue[:len(s.queue)-1]
				for _, p := range s.neighbend[v] {
					k := p / 2
					w := s.endpoint[p]
					if s.inblossom[v] == s.inblossom[w] {
						continue
					}
					kslack := 0.0
					if !s.allowedge[k] {
						kslack = s.slack(k)
						if kslack <= 0 {
							s.allowedge[k] = true
						}
					}
					if s.allowedge[k] {
						switch {
						case s.label[s.inblossom[w]] == 0:
							s.assignLabel(w, 2, p^1)
						case s.label[s.inblossom[w]] == 1:
							base := s.scanBlossom(v, w)
							if base >= 0 {
								s.addBlossom(base, k)
							} else {
								s.augmentMatching(k)
								augmented = true
							}
						case s.label[w] == 0:
							s.label[w] = 2
							s.labelend[w] = p ^ 1
						}
						if augmented {
							break
						}
					} else if s.label[s.inblossom[w]] == 1 {
						b := s.inblossom[v]
						if s.bestedge[b] == -1 || kslack < s.slack(s.bestedge[b]) {
							s.bestedge[b] = k
						}
					} else if s.label[w] == 0 {
						if s.bestedge[w] == -1 || kslack < s.slack(s.bestedge[w]) {
							s.bestedge[w] = k
						}
					}
				}
			}
			if augmented {
				break
			}

			// No augmenting path; adjust the duals by the tightest bound.
			deltatype := -1
			var delta float64
			deltaedge, deltablossom := -1, -1

			if !s.maxCard {
				deltatype = 1
				delta = minVertexDual(s.dualvar[:s.n])
			}
			for v := 0; v < s.n; v++ {
				if s.label[s.inblossom[v]] == 0 && s.bestedge[v] != -1 {
					d := s.slack(s.bestedge[v])
					if deltatype == -1 || d < delta {
						delta, deltatype, deltaedge = d, 2, s.bestedge[v]
					}
				}
			}
			for b := 0; b < 2*s.n; b++ {
				if s.blossomparent[b] == -1 && s.label[b] == 1 && s.bestedge[b] != -1 {
					d := s.slack(s.bestedge[b]) / 2
					if deltatype == -1 || d < delta {
						delta, deltatype, deltaedge = d, 3, s.bestedge[b]
					}
				}
			}
			for b := s.n; b < 2*s.n; b++ {
				if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 &&
					s.label[b] == 2 && (deltatype == -1 || s.dualvar[b] < delta) {
					delta, deltatype, deltablossom = s.dualvar[b], 4, b
				}
			}
			if deltatype == -1 {
				// Max-cardinality optimum reached.
				deltatype = 1
				delta = minVertexDual(s.dualvar[:s.n])
			}

			for v := 0; v < s.n; v++ {
				switch s.label[s.inblossom[v]] {
				case 1:
					s.dualvar[v] -= delta
				case 2:
					s.dualvar[v] += delta
				}
			}
			for b := s.n; b < 2*s.n; b++ {
				if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 {
					switch s.label[b] {
					case 1:
						s.dualvar[b] += delta
					case 2:
						s.dualvar[b] -= delta
					}
				}
			}

			switch deltatype {
			case 1:
				// Optimum reached.
			case 2:
				s.allowedge[deltaedge] = true
				i := s.edges[deltaedge].U
				if s.label[s.inblossom[i]] == 0 {
					i = s.edges[deltaedge].V
				}
				s.queue = append(s.queue, i)
			case 3:
				s.allowedge[deltaedge] = true
				s.queue = append(s.queue, s.edges[deltaedge].U)
			case 4:
				s.expandBlossom(deltablossom, false)
			}
			if deltatype == 1 {
				break
			}
		}

		if !augmented {
			break
		}

		// End of stage: dissolve S-blossoms whose dual dropped to zero.
		for b := s.n; b < 2*s.n; b++ {
			if s.blossomparent[b] == -1 && s.blossombase[b] >= 0 &&
				s.label[b] == 1 && s.dualvar[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}
}

func minVertexDual(duals []float64) float64 {
	m := duals[0]
	for _, d := range duals[1:] {
		if d < m {
			m = d
		}
	}
	if m < 0 {
		return 0
	}
	return m
}

func index(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

func rotate(xs []int, i int) []int {
	out := make([]int, 0, len(xs))
	out = append(out, xs[i:]...)
	out = append(out, xs[:i]...)
	return out
}
