// ground.go - the ground command: exact minimum-energy configuration.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/ising"
)

func newGroundCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "ground",
		Short: "Compute an exact ground state of a model file",
		Long: "Computes a spin configuration with minimal energy. The\n" +
			"lexicographically smallest variable is pinned to +1; degenerate\n" +
			"models may have further ground states at the same energy.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			m, pos, err := loadModel(file)
			if err != nil {
				return err
			}
			logger.Debug("model loaded",
				"file", file,
				"variables", m.NumVariables(),
				"couplings", len(m.Couplings()))

			spins, energy, err := ising.GroundState(m, pos)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "energy %.12g\n", energy)
			for _, v := range m.Variables() {
				fmt.Fprintf(out, "%s %+d\n", v, spins[v])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML model file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
