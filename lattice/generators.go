// generators.go - planar model generators: grid, cycle, triangular band.
//
// Vertex IDs use fixed, documented schemes ("r,c" for grids, "v<i>" for
// cycles) so coordinates and couplings line up across tests and tools.
// Emission order is row-major / index order, which makes generated models
// deterministic for a fixed seed.

package lattice

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/ising"
)

// ErrTooFewVertices - the requested dimensions produce fewer than the three
// variables the pipeline needs.
var ErrTooFewVertices = errors.New("lattice: dimensions yield fewer than 3 vertices")

const gridIDFmt = "%d,%d" // "r,c", row-major

// Grid builds a rows×cols orthogonal lattice with 4-neighborhood couplings.
// Vertex "r,c" sits at coordinate (c, r).
//
// Complexity: O(rows·cols) time and memory.
func Grid(rows, cols int, opts ...Option) (*ising.Model, map[string]embed.Point, error) {
	if rows*cols < 3 || rows < 1 || cols < 1 {
		return nil, nil, fmt.Errorf("grid %d×%d: %w", rows, cols, ErrTooFewVertices)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := ising.NewModel(cfg.offset)
	pos := make(map[string]embed.Point, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := fmt.Sprintf(gridIDFmt, r, c)
			pos[id] = embed.Point{X: float64(c), Y: float64(r)}
			// Right and bottom neighbors, in that order.
			if c+1 < cols {
				right := fmt.Sprintf(gridIDFmt, r, c+1)
				if err := m.AddCoupling(id, right, cfg.couplingFn(cfg.rng)); err != nil {
					return nil, nil, fmt.Errorf("grid: %w", err)
				}
			}
			if r+1 < rows {
				bottom := fmt.Sprintf(gridIDFmt, r+1, c)
				if err := m.AddCoupling(id, bottom, cfg.couplingFn(cfg.rng)); err != nil {
					return nil, nil, fmt.Errorf("grid: %w", err)
				}
			}
		}
	}
	return m, pos, nil
}

// Cycle builds a ring of n ≥ 3 spins, vertex "v<i>" placed on the unit
// circle at angle 2πi/n.
//
// Complexity: O(n) time and memory.
func Cycle(n int, opts ...Option) (*ising.Model, map[string]embed.Point, error) {
	if n < 3 {
		return nil, nil, fmt.Errorf("cycle n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := ising.NewModel(cfg.offset)
	pos := make(map[string]embed.Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos[fmt.Sprintf("v%d", i)] = embed.Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("v%d", i)
		v := fmt.Sprintf("v%d", (i+1)%n)
		if err := m.AddCoupling(u, v, cfg.couplingFn(cfg.rng)); err != nil {
			return nil, nil, fmt.Errorf("cycle: %w", err)
		}
	}
	return m, pos, nil
}

// Triangular builds a rows×cols grid with one extra diagonal coupling
// (r,c)–(r+1,c+1) per cell, so every bounded face of the drawing is a
// triangle and PlaneTriangulate only has to close the outer face.
//
// Complexity: O(rows·cols) time and memory.
func Triangular(rows, cols int, opts ...Option) (*ising.Model, map[string]embed.Point, error) {
	if rows < 2 || cols < 2 {
		return nil, nil, fmt.Errorf("triangular %d×%d: %w", rows, cols, ErrTooFewVertices)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := ising.NewModel(cfg.offset)
	pos := make(map[string]embed.Point, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := fmt.Sprintf(gridIDFmt, r, c)
			pos[id] = embed.Point{X: float64(c), Y: float64(r)}
			// Right, bottom, then diagonal, in that order.
			if c+1 < cols {
				if err := m.AddCoupling(id, fmt.Sprintf(gridIDFmt, r, c+1), cfg.couplingFn(cfg.rng)); err != nil {
					return nil, nil, fmt.Errorf("triangular: %w", err)
				}
			}
			if r+1 < rows {
				if err := m.AddCoupling(id, fmt.Sprintf(gridIDFmt, r+1, c), cfg.couplingFn(cfg.rng)); err != nil {
					return nil, nil, fmt.Errorf("triangular: %w", err)
				}
			}
			if c+1 < cols && r+1 < rows {
				if err := m.AddCoupling(id, fmt.Sprintf(gridIDFmt, r+1, c+1), cfg.couplingFn(cfg.rng)); err != nil {
					return nil, nil, fmt.Errorf("triangular: %w", err)
				}
			}
		}
	}
	return m, pos, nil
}
