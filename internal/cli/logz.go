// logz.go - the logz command: exact log-partition function.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/ising"
)

func newLogZCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "logz",
		Short: "Compute the exact log-partition function of a model file",
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

			logZ, err := ising.LogPartition(m, pos)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.12g\n", logZ)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML model file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
