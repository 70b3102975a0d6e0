package lattice

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/ising"
)

func TestGrid_Shape(t *testing.T) {
	m, pos, err := Grid(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 12, m.NumVariables())
	assert.Len(t, pos, 12)
	// 3·(4−1) horizontal + (3−1)·4 vertical couplings.
	assert.Len(t, m.Couplings(), 9+8)

	for _, v := range m.Variables() {
		_, ok := pos[v]
		assert.True(t, ok, "no coordinate for %s", v)
	}
	// Default coupling is the antiferromagnetic constant.
	for _, c := range m.Couplings() {
		assert.Equal(t, DefaultCoupling, c.J)
	}
}

func TestGrid_TooSmall(t *testing.T) {
	_, _, err := Grid(1, 2)
	assert.ErrorIs(t, err, ErrTooFewVertices)
	_, _, err = Grid(0, 5)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestGrid_SeedDeterminism(t *testing.T) {
	m1, _, err := Grid(3, 3, WithCouplingFn(UniformCoupling(-1, 1)), WithSeed(42))
	require.NoError(t, err)
	m2, _, err := Grid(3, 3, WithCouplingFn(UniformCoupling(-1, 1)), WithSeed(42))
	require.NoError(t, err)
	m3, _, err := Grid(3, 3, WithCouplingFn(UniformCoupling(-1, 1)), WithSeed(7))
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(m1.Couplings(), m2.Couplings()))
	assert.NotEmpty(t, cmp.Diff(m1.Couplings(), m3.Couplings()))
}

func TestCycle_Shape(t *testing.T) {
	m, pos, err := Cycle(5, WithOffset(0.25))
	require.NoError(t, err)

	assert.Equal(t, 5, m.NumVariables())
	assert.Len(t, m.Couplings(), 5)
	assert.Equal(t, 0.25, m.Offset())
	for _, p := range pos {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12)
	}

	_, _, err = Cycle(2)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestTriangular_Shape(t *testing.T) {
	m, pos, err := Triangular(3, 3, WithCouplingFn(ConstantCoupling(-0.5)))
	require.NoError(t, err)

	assert.Equal(t, 9, m.NumVariables())
	assert.Len(t, pos, 9)
	// 6 horizontal + 6 vertical + 4 diagonal couplings.
	assert.Len(t, m.Couplings(), 16)

	_, _, err = Triangular(1, 5)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestOptionValidation(t *testing.T) {
	assert.Panics(t, func() { WithCouplingFn(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { UniformCoupling(2, 1) })
	assert.Panics(t, func() { SpinGlassCoupling(-1) })
}

func TestCouplingFns(t *testing.T) {
	assert.Equal(t, -3.0, ConstantCoupling(-3)(nil))
	// Unseeded fallbacks stay deterministic.
	assert.Equal(t, 0.5, UniformCoupling(0, 1)(nil))
	assert.Equal(t, 2.0, SpinGlassCoupling(2)(nil))
}

// The uniform cycle has the transfer-matrix closed form
// Z = (2·cosh J)ⁿ + (−2·sinh J)ⁿ.
func TestCycle_LogPartitionClosedForm(t *testing.T) {
	const n, j = 5, 1.0
	m, pos, err := Cycle(n, WithCouplingFn(ConstantCoupling(j)))
	require.NoError(t, err)

	got, err := ising.LogPartition(m, pos)
	require.NoError(t, err)

	want := math.Log(math.Pow(2*math.Cosh(j), n) - math.Pow(2*math.Sinh(j), n))
	assert.InDelta(t, want, got, 1e-9)
}

// A ferromagnetic triangular lattice aligns every spin with the pinned
// root.
func TestTriangular_FerromagneticGroundState(t *testing.T) {
	m, pos, err := Triangular(3, 4, WithCouplingFn(ConstantCoupling(-1)))
	require.NoError(t, err)

	spins, energy, err := ising.GroundState(m, pos)
	require.NoError(t, err)
	for v, s := range spins {
		assert.Equal(t, int8(1), s, "vertex %s", v)
	}
	assert.InDelta(t, -float64(len(m.Couplings())), energy, 1e-9)
}
