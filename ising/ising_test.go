package ising

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/kasteleyn"
)

// bruteLogZ enumerates all 2ⁿ configurations and log-sum-exps their
// Boltzmann weights. Only usable for small n.
func bruteLogZ(t *testing.T, m *Model) float64 {
	t.Helper()
	vars := m.Variables()
	n := len(vars)
	require.LessOrEqual(t, n, 16, "brute force would explode")

	best := math.Inf(-1)
	energies := make([]float64, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		spins := make(map[string]int8, n)
		for i, v := range vars {
			if mask&(1<<i) != 0 {
				spins[v] = 1
			} else {
				spins[v] = -1
			}
		}
		e, err := m.Energy(spins)
		require.NoError(t, err)
		energies = append(energies, -e)
		if -e > best {
			best = -e
		}
	}
	sum := 0.0
	for _, le := range energies {
		sum += math.Exp(le - best)
	}
	return best + math.Log(sum)
}

// bruteMinEnergy returns the minimum energy over all configurations.
func bruteMinEnergy(t *testing.T, m *Model) float64 {
	t.Helper()
	vars := m.Variables()
	best := math.Inf(1)
	for mask := 0; mask < 1<<len(vars); mask++ {
		spins := make(map[string]int8, len(vars))
		for i, v := range vars {
			if mask&(1<<i) != 0 {
				spins[v] = 1
			} else {
				spins[v] = -1
			}
		}
		e, err := m.Energy(spins)
		require.NoError(t, err)
		if e < best {
			best = e
		}
	}
	return best
}

func triangleModel(t *testing.T, jab, jbc, jca, offset float64) (*Model, map[string]embed.Point) {
	t.Helper()
	m := NewModel(offset)
	require.NoError(t, m.AddCoupling("a", "b", jab))
	require.NoError(t, m.AddCoupling("b", "c", jbc))
	require.NoError(t, m.AddCoupling("c", "a", jca))
	pos := map[string]embed.Point{
		"a": {X: 0, Y: 0},
		"b": {X: 1, Y: 0},
		"c": {X: 0, Y: 1},
	}
	return m, pos
}

// gridModel builds a rows×cols ferromagnet-style lattice with the given
// coupling on every nearest-neighbor pair.
func gridModel(t *testing.T, rows, cols int, j float64) (*Model, map[string]embed.Point) {
	t.Helper()
	m := NewModel(0)
	pos := make(map[string]embed.Point)
	name := func(r, c int) string { return fmt.Sprintf("v%d_%d", r, c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos[name(r, c)] = embed.Point{X: float64(c), Y: float64(r)}
			if c+1 < cols {
				require.NoError(t, m.AddCoupling(name(r, c), name(r, c+1), j))
			}
			if r+1 < rows {
				require.NoError(t, m.AddCoupling(name(r, c), name(r+1, c), j))
			}
		}
	}
	return m, pos
}

func TestModel_AddCoupling(t *testing.T) {
	m := NewModel(0.5)
	require.NoError(t, m.AddCoupling("a", "b", 1))
	require.NoError(t, m.AddCoupling("a", "b", -1)) // parallel couplings kept
	assert.Equal(t, []string{"a", "b"}, m.Variables())
	assert.Len(t, m.Couplings(), 2)
	assert.Equal(t, 0.5, m.Offset())

	assert.ErrorIs(t, m.AddCoupling("a", "a", 1), ErrLinearBias)
	assert.ErrorIs(t, m.AddCoupling("", "b", 1), ErrEmptyVariable)
}

func TestModel_Energy(t *testing.T) {
	m, _ := triangleModel(t, 1, 1, 1, 0.25)

	e, err := m.Energy(map[string]int8{"a": 1, "b": 1, "c": 1})
	require.NoError(t, err)
	assert.InDelta(t, 3.25, e, 1e-12)

	e, err = m.Energy(map[string]int8{"a": 1, "b": -1, "c": -1})
	require.NoError(t, err)
	assert.InDelta(t, -0.75, e, 1e-12)

	_, err = m.Energy(map[string]int8{"a": 1, "b": 1})
	assert.ErrorIs(t, err, ErrMissingSpin)
	_, err = m.Energy(map[string]int8{"a": 1, "b": 1, "c": 0})
	assert.ErrorIs(t, err, ErrBadSpin)
}

// The uniform antiferromagnetic triangle has the closed form
// Z = 2e⁻³ + 6e¹.
func TestLogPartition_TriangleClosedForm(t *testing.T) {
	m, pos := triangleModel(t, 1, 1, 1, 0)
	got, err := LogPartition(m, pos)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2*math.Exp(-3)+6*math.Exp(1)), got, 1e-9)
}

func TestLogPartition_BruteForce(t *testing.T) {
	cases := []struct {
		name  string
		build func(t *testing.T) (*Model, map[string]embed.Point)
	}{
		{"triangle mixed couplings", func(t *testing.T) (*Model, map[string]embed.Point) {
			return triangleModel(t, 1, -0.5, 0.3, 0.25)
		}},
		{"square", func(t *testing.T) (*Model, map[string]embed.Point) {
			m := NewModel(-0.1)
			require.NoError(t, m.AddCoupling("a", "b", 0.7))
			require.NoError(t, m.AddCoupling("b", "c", -1.2))
			require.NoError(t, m.AddCoupling("c", "d", 0.4))
			require.NoError(t, m.AddCoupling("d", "a", 0.9))
			return m, map[string]embed.Point{
				"a": {X: 0, Y: 0}, "b": {X: 1, Y: 0},
				"c": {X: 1, Y: 1}, "d": {X: 0, Y: 1},
			}
		}},
		{"grid 3x3 ferro", func(t *testing.T) (*Model, map[string]embed.Point) {
			return gridModel(t, 3, 3, -1)
		}},
		{"grid 2x4 antiferro", func(t *testing.T) (*Model, map[string]embed.Point) {
			return gridModel(t, 2, 4, 0.8)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, pos := tc.build(t)
			got, err := LogPartition(m, pos)
			require.NoError(t, err)
			assert.InDelta(t, bruteLogZ(t, m), got, 1e-8)
		})
	}
}

func TestLogPartition_TooFewVariables(t *testing.T) {
	m := NewModel(0)
	require.NoError(t, m.AddCoupling("a", "b", 1))
	_, err := LogPartition(m, map[string]embed.Point{
		"a": {X: 0, Y: 0}, "b": {X: 1, Y: 0},
	})
	assert.ErrorIs(t, err, ErrTooFewVariables)
}

func TestLogPartition_MissingCoordinate(t *testing.T) {
	m, pos := triangleModel(t, 1, 1, 1, 0)
	delete(pos, "c")
	_, err := LogPartition(m, pos)
	assert.ErrorIs(t, err, embed.ErrMissingCoordinate)
}

func TestLogPartition_ParallelCouplingsBigon(t *testing.T) {
	m, pos := triangleModel(t, 1, 1, 1, 0)
	require.NoError(t, m.AddCoupling("a", "b", 0.5))
	_, err := LogPartition(m, pos)
	assert.ErrorIs(t, err, embed.ErrBigonFace)
}

func TestLogPartition_Disconnected(t *testing.T) {
	m := NewModel(0)
	require.NoError(t, m.AddCoupling("a", "b", 1))
	require.NoError(t, m.AddCoupling("b", "c", 1))
	require.NoError(t, m.AddCoupling("c", "a", 1))
	require.NoError(t, m.AddCoupling("x", "y", 1))
	require.NoError(t, m.AddCoupling("y", "z", 1))
	require.NoError(t, m.AddCoupling("z", "x", 1))
	pos := map[string]embed.Point{
		"a": {X: 0, Y: 0}, "b": {X: 1, Y: 0}, "c": {X: 0, Y: 1},
		"x": {X: 5, Y: 5}, "y": {X: 6, Y: 5}, "z": {X: 5, Y: 6},
	}
	_, err := LogPartition(m, pos)
	assert.ErrorIs(t, err, kasteleyn.ErrDisconnected)

	_, _, err = GroundState(m, pos)
	assert.ErrorIs(t, err, kasteleyn.ErrDisconnected)
}

// The frustrated triangle cannot satisfy all three antiferromagnetic
// couplings; any ground state has exactly one agreeing pair and energy −1.
func TestGroundState_FrustratedTriangle(t *testing.T) {
	m, pos := triangleModel(t, 1, 1, 1, 0)
	spins, energy, err := GroundState(m, pos)
	require.NoError(t, err)

	assert.InDelta(t, -1.0, energy, 1e-9)
	assert.Equal(t, int8(1), spins["a"], "root spin is pinned to +1")

	check, err := m.Energy(spins)
	require.NoError(t, err)
	assert.InDelta(t, energy, check, 1e-12)

	agree := 0
	pairs := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}
	for _, p := range pairs {
		if spins[p[0]] == spins[p[1]] {
			agree++
		}
	}
	assert.Equal(t, 1, agree)
}

func TestGroundState_FerromagneticGridUniform(t *testing.T) {
	m, pos := gridModel(t, 3, 3, -1)
	spins, energy, err := GroundState(m, pos)
	require.NoError(t, err)

	for v, s := range spins {
		assert.Equal(t, int8(1), s, "vertex %s", v)
	}
	// 12 nearest-neighbor couplings, each contributing −1 when aligned.
	assert.InDelta(t, -12.0, energy, 1e-9)
}

func TestGroundState_MatchesBruteForce(t *testing.T) {
	cases := []struct {
		name  string
		build func(t *testing.T) (*Model, map[string]embed.Point)
	}{
		{"triangle mixed", func(t *testing.T) (*Model, map[string]embed.Point) {
			return triangleModel(t, 1, -0.5, 0.3, 0.25)
		}},
		{"grid 2x4 antiferro", func(t *testing.T) (*Model, map[string]embed.Point) {
			return gridModel(t, 2, 4, 0.8)
		}},
		{"grid 3x3 mixed", func(t *testing.T) (*Model, map[string]embed.Point) {
			m := NewModel(0.5)
			pos := make(map[string]embed.Point)
			js := []float64{0.7, -1.1, 0.2, 0.9, -0.4, 1.3, -0.8, 0.6, -0.3, 1.0, -0.6, 0.5}
			k := 0
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					u := fmt.Sprintf("v%d_%d", r, c)
					pos[u] = embed.Point{X: float64(c), Y: float64(r)}
					if c+1 < 3 {
						require.NoError(t, m.AddCoupling(u, fmt.Sprintf("v%d_%d", r, c+1), js[k]))
						k++
					}
					if r+1 < 3 {
						require.NoError(t, m.AddCoupling(u, fmt.Sprintf("v%d_%d", r+1, c), js[k]))
						k++
					}
				}
			}
			return m, pos
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, pos := tc.build(t)
			spins, energy, err := GroundState(m, pos)
			require.NoError(t, err)

			assert.InDelta(t, bruteMinEnergy(t, m), energy, 1e-9)

			check, err := m.Energy(spins)
			require.NoError(t, err)
			assert.InDelta(t, energy, check, 1e-12)
		})
	}
}
