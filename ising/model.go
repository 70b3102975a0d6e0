// model.go - the Ising model container and its multigraph conversion.

package ising

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/planar/core"
)

var (
	// ErrLinearBias - a coupling with u == v is a linear (field) term;
	// the quadratic solver does not accept biases directly. Encode a bias
	// as a coupling to an auxiliary pinned spin instead.
	ErrLinearBias = errors.New("ising: linear bias terms are not supported")

	// ErrEmptyVariable - a coupling references an empty variable name.
	ErrEmptyVariable = errors.New("ising: empty variable name")

	// ErrMissingSpin - an Energy evaluation got a configuration that does
	// not assign every model variable.
	ErrMissingSpin = errors.New("ising: configuration misses a variable")

	// ErrBadSpin - a spin value outside {-1, +1}.
	ErrBadSpin = errors.New("ising: spin value must be -1 or +1")
)

// Coupling is one quadratic term J·s(U)·s(V).
type Coupling struct {
	U string
	V string
	J float64
}

// Model is a pairwise Ising model over named ±1 spins. The zero value is
// usable. Not safe for concurrent mutation.
type Model struct {
	offset    float64
	couplings []Coupling
	vars      map[string]struct{}
}

// NewModel returns an empty model with the given constant energy offset.
func NewModel(offset float64) *Model {
	return &Model{offset: offset, vars: make(map[string]struct{})}
}

// AddCoupling appends the quadratic term J·s(u)·s(v). Parallel couplings
// between the same pair are kept separate; the pipeline treats them as
// parallel edges. u == v is rejected with ErrLinearBias.
func (m *Model) AddCoupling(u, v string, j float64) error {
	if u == "" || v == "" {
		return ErrEmptyVariable
	}
	if u == v {
		return fmt.Errorf("%w: coupling (%s,%s)", ErrLinearBias, u, v)
	}
	if m.vars == nil {
		m.vars = make(map[string]struct{})
	}
	m.couplings = append(m.couplings, Coupling{U: u, V: v, J: j})
	m.vars[u] = struct{}{}
	m.vars[v] = struct{}{}
	return nil
}

// Offset returns the constant energy term.
func (m *Model) Offset() float64 { return m.offset }

// Couplings returns the quadratic terms in insertion order.
func (m *Model) Couplings() []Coupling {
	out := make([]Coupling, len(m.couplings))
	copy(out, m.couplings)
	return out
}

// Variables returns the variable names in sorted order.
func (m *Model) Variables() []string {
	out := make([]string, 0, len(m.vars))
	for v := range m.vars {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// NumVariables returns the number of distinct variables.
func (m *Model) NumVariables() int { return len(m.vars) }

// Energy evaluates E(s) = offset + Σ J·s(u)·s(v) for a full ±1 assignment.
func (m *Model) Energy(spins map[string]int8) (float64, error) {
	for v := range m.vars {
		s, ok := spins[v]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingSpin, v)
		}
		if s != 1 && s != -1 {
			return 0, fmt.Errorf("%w: %s=%d", ErrBadSpin, v, s)
		}
	}
	e := m.offset
	for _, c := range m.couplings {
		e += c.J * float64(spins[c.U]) * float64(spins[c.V])
	}
	return e, nil
}

// multigraph converts the model into the weighted interaction multigraph
// and the accumulated offset of the Pfaffian identity. A coupling J maps
// to an edge of weight −2J; the offset collects the model constant, the
// coupling sum and −ln 2 (the global spin-flip symmetry), so that
//
//	log Z = logsqrtdet(K) − Σ weights − offset
//
// holds exactly.
func (m *Model) multigraph() (*core.Graph, float64, error) {
	g := core.NewGraph()
	off := m.offset - math.Ln2
	for _, v := range m.Variables() {
		if err := g.AddVertex(v); err != nil {
			return nil, 0, err
		}
	}
	for _, c := range m.couplings {
		if _, err := g.AddEdge(c.U, c.V, -2*c.J); err != nil {
			return nil, 0, fmt.Errorf("ising: coupling (%s,%s): %w", c.U, c.V, err)
		}
		off += c.J
	}
	return g, off, nil
}
