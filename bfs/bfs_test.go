package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/bfs"
	"github.com/katalvlaran/planar/core"
)

func TestBFS_NilGraph(t *testing.T) {
	res, err := bfs.BFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	res, err := bfs.BFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_LayerOrder(t *testing.T) {
	// a—b, a—c, b—d: layers {a}, {b,c}, {d}.
	g := core.NewGraph()
	for _, pair := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Order)
	assert.Equal(t, 2, res.Depth["d"])
	assert.Equal(t, "b", res.Parent["d"])
}

func TestBFS_OnEdgeKindsAndOnce(t *testing.T) {
	// Triangle: two tree edges plus one cross edge closing the cycle.
	g := core.NewGraph()
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	var tree, cross int
	seen := make(map[string]int)
	_, err := bfs.BFS(g, "a", bfs.WithOnEdge(
		func(from, to string, e *core.Edge, kind bfs.EdgeKind) error {
			seen[e.ID]++
			if kind == bfs.TreeEdge {
				tree++
			} else {
				cross++
			}
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, 2, tree)
	assert.Equal(t, 1, cross)
	for eid, n := range seen {
		assert.Equalf(t, 1, n, "edge %s reported %d times", eid, n)
	}
}

func TestBFS_ParallelEdgesBothReported(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("u", "v", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("u", "v", 0)
	require.NoError(t, err)

	var kinds []bfs.EdgeKind
	_, err = bfs.BFS(g, "u", bfs.WithOnEdge(
		func(from, to string, e *core.Edge, kind bfs.EdgeKind) error {
			kinds = append(kinds, kind)
			return nil
		}))
	require.NoError(t, err)
	require.Len(t, kinds, 2)
	assert.Equal(t, bfs.TreeEdge, kinds[0])
	assert.Equal(t, bfs.CrossEdge, kinds[1])
}

func TestBFS_HookErrorAborts(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	boom := errors.New("boom")
	res, err := bfs.BFS(g, "a", bfs.WithOnEdge(
		func(from, to string, e *core.Edge, kind bfs.EdgeKind) error {
			return boom
		}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}
