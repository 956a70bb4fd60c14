package datastructure

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineNodes() []GraphNode {
	return []GraphNode{
		NewGraphNode("A", 0, 0),
		NewGraphNode("B", 0, 1),
		NewGraphNode("C", 0, 2),
	}
}

func TestBuildGraph(t *testing.T) {
	g, err := BuildGraph(lineNodes(), []GraphEdge{
		NewGraphEdge("A", "B", 1),
		NewGraphEdge("B", "C", 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.GetNumNodes())
	assert.Equal(t, 2, g.GetNumEdges())

	b, ok := g.GetNodeIDx("B")
	require.True(t, ok)
	assert.Equal(t, 2, g.Degree(b))
	assert.Equal(t, 1.0, g.GetNode(b).Lon)

	a, _ := g.GetNodeIDx("A")
	edge, ok := g.GetEdgeBetween(b, a)
	require.True(t, ok)
	assert.Equal(t, 1.0, edge.Weight)
	assert.Equal(t, b, edge.Other(a))
}

func TestBuildGraphUnknownNode(t *testing.T) {
	_, err := BuildGraph(lineNodes(), []GraphEdge{
		NewGraphEdge("A", "B", 1),
		NewGraphEdge("B", "Z", 1),
	})
	require.Error(t, err)

	var topoErr *MalformedTopologyError
	require.True(t, errors.As(err, &topoErr))
	assert.Equal(t, 1, topoErr.EdgeIndex)
	assert.Equal(t, "Z", topoErr.NodeID)
}

func TestBuildGraphInvalidDistance(t *testing.T) {
	cases := []float64{-1, math.NaN(), math.Inf(1)}
	for _, dist := range cases {
		_, err := BuildGraph(lineNodes(), []GraphEdge{NewGraphEdge("A", "B", dist)})
		var topoErr *MalformedTopologyError
		assert.True(t, errors.As(err, &topoErr), "dist %v", dist)
	}
}

func TestBuildGraphDuplicateEdgeLastWins(t *testing.T) {
	g, err := BuildGraph(lineNodes(), []GraphEdge{
		NewGraphEdge("A", "B", 5),
		NewGraphEdge("B", "A", 2),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, g.GetNumEdges())
	a, _ := g.GetNodeIDx("A")
	assert.Equal(t, 1, g.Degree(a))

	edges := g.GetEdges()
	require.Len(t, edges, 1)
	assert.Equal(t, 2.0, edges[0].Weight)
	assert.Equal(t, 2.0, edges[0].Dist)
}

func TestBuildGraphDefaultWeight(t *testing.T) {
	g, err := BuildGraph(lineNodes(), []GraphEdge{NewGraphEdge("A", "B", 0)})
	require.NoError(t, err)
	assert.Equal(t, DefaultEdgeWeight, g.GetEdges()[0].Weight)
}

func TestBuildGraphDuplicateNodeOverwritesCoordinates(t *testing.T) {
	nodes := append(lineNodes(), NewGraphNode("A", 5, 6))
	g, err := BuildGraph(nodes, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, g.GetNumNodes())
	a, _ := g.GetNodeIDx("A")
	assert.Equal(t, NewCoordinate(5, 6), g.GetNode(a).Coordinate())
}

func TestRemoveEdge(t *testing.T) {
	g, err := BuildGraph(lineNodes(), []GraphEdge{
		NewGraphEdge("A", "B", 1),
		NewGraphEdge("B", "C", 1),
	})
	require.NoError(t, err)

	a, _ := g.GetNodeIDx("A")
	b, _ := g.GetNodeIDx("B")
	edge, _ := g.GetEdgeBetween(a, b)

	g.RemoveEdge(edge.EdgeID)
	g.RemoveEdge(edge.EdgeID)

	assert.Equal(t, 0, g.Degree(a))
	assert.Equal(t, 1, g.Degree(b))
	assert.Equal(t, 1, g.GetNumEdges())
	assert.Len(t, g.GetEdges(), 1)

	_, ok := g.GetEdgeBetween(a, b)
	assert.False(t, ok)
}

func TestSelfLoopDegree(t *testing.T) {
	g, err := BuildGraph(lineNodes(), []GraphEdge{NewGraphEdge("C", "C", 1)})
	require.NoError(t, err)

	c, _ := g.GetNodeIDx("C")
	assert.Equal(t, 2, g.Degree(c))

	g.RemoveEdge(g.GetEdges()[0].EdgeID)
	assert.Equal(t, 0, g.Degree(c))
}

func TestCreatePolyline(t *testing.T) {
	path := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", CreatePolyline(path))
	assert.Equal(t, "", CreatePolyline(nil))
}
