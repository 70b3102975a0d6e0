// drawcmd.go - the draw command: SVG rendering of the embedded model.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/draw"
	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/kasteleyn"
)

func newDrawCmd() *cobra.Command {
	var (
		file        string
		output      string
		triangulate bool
		arrows      bool
		labels      bool
		width       int
		height      int
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render the embedded interaction graph as SVG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			if width <= 0 || height <= 0 {
				return fmt.Errorf("cli: canvas size %dx%d must be positive", width, height)
			}

			m, pos, err := loadModel(file)
			if err != nil {
				return err
			}

			// Edge weights carry the couplings so zero (including chords
			// added by --triangulate) renders dashed.
			g := core.NewGraph()
			for _, c := range m.Couplings() {
				if _, err = g.AddEdge(c.U, c.V, c.J); err != nil {
					return fmt.Errorf("cli: coupling (%s,%s): %w", c.U, c.V, err)
				}
			}
			emb, err := embed.FromCoordinates(g, pos)
			if err != nil {
				return err
			}
			if triangulate || arrows {
				if err = embed.PlaneTriangulate(emb); err != nil {
					return err
				}
			}

			opts := []draw.Option{draw.WithSize(width, height)}
			if labels {
				opts = append(opts, draw.WithLabels())
			}
			if arrows {
				orient, oerr := kasteleyn.Orient(emb)
				if oerr != nil {
					return oerr
				}
				opts = append(opts, draw.WithOrientation(orient))
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("cli: create %s: %w", output, err)
			}
			defer f.Close()

			if err = draw.SVG(f, emb, pos, opts...); err != nil {
				return err
			}
			logger.Info("rendered", "file", output,
				"vertices", g.VertexCount(), "edges", g.EdgeCount())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML model file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "model.svg", "output SVG path")
	cmd.Flags().BoolVar(&triangulate, "triangulate", false, "triangulate before rendering")
	cmd.Flags().BoolVar(&arrows, "arrows", false, "show the Pfaffian orientation (implies --triangulate)")
	cmd.Flags().BoolVar(&labels, "labels", false, "print vertex names")
	cmd.Flags().IntVar(&width, "width", 600, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "canvas height in pixels")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
