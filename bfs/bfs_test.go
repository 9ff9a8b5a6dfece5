package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/bfs"
	"github.com/katalvlaran/circuitlab/core"
)

// square builds the undirected 4-cycle A–B–C–D–A with edges ab, bc, cd, da.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("ab", "A", "B"))
	require.NoError(t, g.AddEdge("bc", "B", "C"))
	require.NoError(t, g.AddEdge("cd", "C", "D"))
	require.NoError(t, g.AddEdge("da", "D", "A"))

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndParents(t *testing.T) {
	g := square(t)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["B"])
	assert.Equal(t, 1, res.Depth["D"])
	assert.Equal(t, 2, res.Depth["C"])

	// C is discovered from B first because ab was declared before da.
	assert.Equal(t, "B", res.Parent["C"])
	assert.Equal(t, "bc", res.ParentEdge["C"])

	vertices, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, vertices)

	edges, err := res.EdgePathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "bc"}, edges)

	edges, err = res.EdgePathTo("A")
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestBFS_BlockedEdges(t *testing.T) {
	g := square(t)
	res, err := bfs.BFS(g, "A", bfs.WithBlockedEdges("ab"))
	require.NoError(t, err)

	edges, err := res.EdgePathTo("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"da", "cd", "bc"}, edges)
}

func TestBFS_FilterEdge(t *testing.T) {
	g := square(t)
	res, err := bfs.BFS(g, "A", bfs.WithFilterEdge(func(_ string, e *core.Edge) bool {
		return e.ID != "bc" && e.ID != "cd"
	}))
	require.NoError(t, err)
	assert.False(t, res.Reached("C"))

	_, err = res.PathTo("C")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	_, err = res.EdgePathTo("C")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepthAndTarget(t *testing.T) {
	g := square(t)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "D"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithTarget("B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.True(t, res.Reached("B"))
}

func TestBFS_HookErrorAndCancel(t *testing.T) {
	g := square(t)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath(t *testing.T) {
	g := square(t)
	require.NoError(t, g.AddVertex("island"))

	path, found, err := bfs.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"ab", "bc"}, path)

	path, found, err = bfs.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, path)
	assert.NotNil(t, path)

	path, found, err = bfs.ShortestPath(g, "A", "island")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, path)

	_, found, err = bfs.ShortestPath(g, "A", "nowhere")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = bfs.ShortestPath(g, "A", "C", bfs.WithBlockedEdges("bc", "cd"))
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = bfs.ShortestPath(nil, "A", "C")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, _, err = bfs.ShortestPath(g, "nowhere", "C")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestShortestPath_ParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddEdge("bulb", "L", "R"))
	require.NoError(t, g.AddEdge("bypass", "L", "R"))

	path, found, err := bfs.ShortestPath(g, "L", "R")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"bulb"}, path)

	path, found, err = bfs.ShortestPath(g, "L", "R", bfs.WithBlockedEdges("bulb"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"bypass"}, path)
}
