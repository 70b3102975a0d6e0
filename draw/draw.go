// Package draw renders planar embeddings as SVG for eyeballing rotation
// systems, triangulations and orientations.
package draw

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/planar/embed"
)

const (
	defaultWidth  = 600
	defaultHeight = 600
	margin        = 40

	vertexRadius = 5
	arrowLen     = 8.0
	arrowAngle   = 2.6 // radians between shaft and barb

	backgroundStyle = "fill:rgb(255,255,255)"
	vertexStyle     = "fill:rgb(30,30,120)"
	labelStyle      = "font-size:11px;fill:rgb(60,60,60)"
	edgeStyle       = "stroke:rgb(60,60,60);stroke-width:2"
	chordStyle      = "stroke:rgb(170,170,170);stroke-width:1;stroke-dasharray:4,3"
	arrowStyle      = "stroke:rgb(200,60,60);stroke-width:2"
)

// options collects renderer settings.
type options struct {
	width  int
	height int
	orient map[string]bool // Edge.ID → From→To; draws arrowheads when set
	labels bool
}

// Option customizes the renderer.
type Option func(*options)

// WithSize sets the canvas size in pixels. Panics on non-positive values.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("draw: WithSize(%d, %d)", width, height))
	}
	return func(o *options) { o.width, o.height = width, height }
}

// WithOrientation draws an arrowhead at each oriented edge's midpoint.
// The map follows the kasteleyn convention: true means From→To.
func WithOrientation(orient map[string]bool) Option {
	return func(o *options) { o.orient = orient }
}

// WithLabels prints vertex IDs next to their markers.
func WithLabels() Option {
	return func(o *options) { o.labels = true }
}

// SVG renders the embedded graph onto w. Zero-weight edges (triangulation
// chords) are drawn dashed. Every vertex needs a coordinate; otherwise
// embed.ErrMissingCoordinate is returned.
func SVG(w io.Writer, m *embed.Embedding, pos map[string]embed.Point, opts ...Option) error {
	o := options{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	g := m.Graph()
	for _, v := range g.Vertices() {
		if _, ok := pos[v]; !ok {
			return fmt.Errorf("draw: vertex %q: %w", v, embed.ErrMissingCoordinate)
		}
	}

	project := projector(g.Vertices(), pos, o.width, o.height)

	canvas := svg.New(w)
	canvas.Start(o.width, o.height)
	canvas.Rect(0, 0, o.width, o.height, backgroundStyle)

	// Edges first so vertex markers sit on top.
	for _, e := range g.Edges() {
		x1, y1 := project(pos[e.From])
		x2, y2 := project(pos[e.To])
		style := edgeStyle
		if e.Weight == 0 {
			style = chordStyle
		}
		canvas.Line(x1, y1, x2, y2, style)

		if o.orient != nil {
			if dir, ok := o.orient[e.ID]; ok {
				drawArrow(canvas, x1, y1, x2, y2, dir)
			}
		}
	}

	for _, v := range g.Vertices() {
		x, y := project(pos[v])
		canvas.Circle(x, y, vertexRadius, vertexStyle)
		if o.labels {
			canvas.Text(x+vertexRadius+2, y-vertexRadius, v, labelStyle)
		}
	}

	canvas.End()
	return nil
}

// projector maps model coordinates into the canvas, preserving aspect
// ratio and leaving a margin. Degenerate (single-point) extents center.
func projector(vertices []string, pos map[string]embed.Point, width, height int) func(embed.Point) (int, int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range vertices {
		p := pos[v]
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	scale := math.Inf(1)
	if spanX > 0 {
		scale = float64(width-2*margin) / spanX
	}
	if spanY > 0 {
		scale = math.Min(scale, float64(height-2*margin)/spanY)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := (float64(width) - spanX*scale) / 2
	offY := (float64(height) - spanY*scale) / 2
	return func(p embed.Point) (int, int) {
		x := offX + (p.X-minX)*scale
		// SVG y grows downward; flip so the drawing keeps its chirality.
		y := float64(height) - offY - (p.Y-minY)*scale
		return int(math.Round(x)), int(math.Round(y))
	}
}

// drawArrow paints two barbs at the edge midpoint pointing along the
// assigned direction.
func drawArrow(canvas *svg.SVG, x1, y1, x2, y2 int, forward bool) {
	if !forward {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	mx := float64(x1+x2) / 2
	my := float64(y1+y2) / 2
	theta := math.Atan2(float64(y2-y1), float64(x2-x1))
	for _, dt := range []float64{arrowAngle, -arrowAngle} {
		bx := mx + arrowLen*math.Cos(theta+dt)
		by := my + arrowLen*math.Sin(theta+dt)
		canvas.Line(int(math.Round(mx)), int(math.Round(my)),
			int(math.Round(bx)), int(math.Round(by)), arrowStyle)
	}
}
