package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/kasteleyn"
)

func squareEmbedding(t *testing.T) (*embed.Embedding, map[string]embed.Point) {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}} {
		_, err := g.AddEdge(pair[0], pair[1], 1)
		require.NoError(t, err)
	}
	pos := map[string]embed.Point{
		"a": {X: 0, Y: 0}, "b": {X: 1, Y: 0},
		"c": {X: 1, Y: 1}, "d": {X: 0, Y: 1},
	}
	m, err := embed.FromCoordinates(g, pos)
	require.NoError(t, err)
	return m, pos
}

func TestSVG_Basic(t *testing.T) {
	m, pos := squareEmbedding(t)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, m, pos))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 4, strings.Count(out, "<circle"))
	assert.Equal(t, 4, strings.Count(out, "<line"))
	assert.NotContains(t, out, "dasharray")
	assert.NotContains(t, out, "<text")
}

func TestSVG_ChordsDashed(t *testing.T) {
	m, pos := squareEmbedding(t)
	require.NoError(t, embed.PlaneTriangulate(m))

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, m, pos, WithLabels()))
	out := buf.String()

	// Two zero-weight chords, drawn dashed; labels on.
	assert.Equal(t, 6, strings.Count(out, "<line"))
	assert.Equal(t, 2, strings.Count(out, "dasharray"))
	assert.Equal(t, 4, strings.Count(out, "<text"))
}

func TestSVG_OrientationArrows(t *testing.T) {
	m, pos := squareEmbedding(t)
	require.NoError(t, embed.PlaneTriangulate(m))
	orient, err := kasteleyn.Orient(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, m, pos, WithOrientation(orient), WithSize(400, 300)))
	out := buf.String()

	assert.Contains(t, out, `width="400"`)
	// 6 edges + 2 barbs per arrowhead.
	assert.Equal(t, 6+12, strings.Count(out, "<line"))
}

func TestSVG_MissingCoordinate(t *testing.T) {
	m, pos := squareEmbedding(t)
	delete(pos, "d")
	var buf bytes.Buffer
	err := SVG(&buf, m, pos)
	assert.ErrorIs(t, err, embed.ErrMissingCoordinate)
	assert.Zero(t, buf.Len())
}

func TestWithSize_Panics(t *testing.T) {
	assert.Panics(t, func() { WithSize(0, 100) })
	assert.Panics(t, func() { WithSize(100, -1) })
}
