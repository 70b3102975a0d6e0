// modelfile.go - the TOML model-file schema and loader.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/ising"
)

var (
	// ErrNoCouplings - the file declares no [[coupling]] entries.
	ErrNoCouplings = errors.New("cli: model file has no couplings")

	// ErrBadPosition - a [position] entry is not a two-element [x, y] array.
	ErrBadPosition = errors.New("cli: position must be [x, y]")
)

// modelFile mirrors the TOML schema.
type modelFile struct {
	Model struct {
		Offset float64 `toml:"offset"`
	} `toml:"model"`
	Couplings []couplingEntry      `toml:"coupling"`
	Position  map[string][]float64 `toml:"position"`
}

type couplingEntry struct {
	U string  `toml:"u"`
	V string  `toml:"v"`
	J float64 `toml:"j"`
}

// loadModel reads path and returns the model with its coordinate map.
// Coordinates are passed through unvalidated beyond arity; whether they
// cover every variable is checked by the pipeline itself.
func loadModel(path string) (*ising.Model, map[string]embed.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: read %s: %w", path, err)
	}

	var mf modelFile
	if err = toml.Unmarshal(data, &mf); err != nil {
		return nil, nil, fmt.Errorf("cli: parse %s: %w", path, err)
	}
	if len(mf.Couplings) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoCouplings, path)
	}

	m := ising.NewModel(mf.Model.Offset)
	for _, c := range mf.Couplings {
		if err = m.AddCoupling(c.U, c.V, c.J); err != nil {
			return nil, nil, fmt.Errorf("cli: %s: %w", path, err)
		}
	}

	pos := make(map[string]embed.Point, len(mf.Position))
	for name, xy := range mf.Position {
		if len(xy) != 2 {
			return nil, nil, fmt.Errorf("%w: %s has %d elements", ErrBadPosition, name, len(xy))
		}
		pos[name] = embed.Point{X: xy[0], Y: xy[1]}
	}
	return m, pos, nil
}
