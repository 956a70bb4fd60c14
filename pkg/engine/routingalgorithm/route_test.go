package routingalgorithm

import (
	"errors"
	"testing"

	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func lineNodes() []datastructure.GraphNode {
	return []datastructure.GraphNode{
		datastructure.NewGraphNode("A", 0, 0),
		datastructure.NewGraphNode("B", 0, 1),
		datastructure.NewGraphNode("C", 0, 2),
	}
}

func lineEdges() []datastructure.GraphEdge {
	return []datastructure.GraphEdge{
		datastructure.NewGraphEdge("A", "B", 1),
		datastructure.NewGraphEdge("B", "C", 1),
	}
}

// hazard polygon around the A-B segment, clear of C
func abHazard() orb.Polygon {
	return orb.Polygon{orb.Ring{{0.2, -0.1}, {0.8, -0.1}, {0.8, 0.1}, {0.2, 0.1}, {0.2, -0.1}}}
}

func TestComputeRouteNoHazards(t *testing.T) {
	route, err := ComputeRoute(lineNodes(), lineEdges(), "A", "C", nil, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, route.NodePath)
	assert.Equal(t, [][2]float64{{0, 0}, {0, 1}, {0, 2}}, route.Coordinates)
	assert.Equal(t, 2.0, route.Cost)
	assert.Equal(t, 0, route.HazardEdges)
	assert.InDelta(t, 222.39, route.DistanceKm, 0.5)
	assert.NotEmpty(t, route.Polyline)
}

func TestComputeRouteHazardOnOnlyPath(t *testing.T) {
	route, err := ComputeRoute(lineNodes(), lineEdges(), "A", "C", []orb.Geometry{abHazard()}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, route.NodePath)
	assert.GreaterOrEqual(t, route.Cost, 1001.0)
	assert.Equal(t, 1002.0, route.Cost)
	assert.Equal(t, 1, route.HazardEdges)
}

func TestComputeRouteAvoidsHazard(t *testing.T) {
	nodes := append(lineNodes(), datastructure.NewGraphNode("D", 1, 1))
	edges := append(lineEdges(),
		datastructure.NewGraphEdge("A", "D", 3),
		datastructure.NewGraphEdge("D", "C", 3),
	)

	route, err := ComputeRoute(nodes, edges, "A", "C", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, route.NodePath)

	route, err = ComputeRoute(nodes, edges, "A", "C", []orb.Geometry{abHazard()}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C"}, route.NodePath)
	assert.Equal(t, 6.0, route.Cost)
	assert.Equal(t, 0, route.HazardEdges)

	// a small penalty is cheaper than the detour
	route, err = ComputeRoute(nodes, edges, "A", "C", []orb.Geometry{abHazard()}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, route.NodePath)
	assert.Equal(t, 4.0, route.Cost)
}

func TestComputeRouteSameStartGoal(t *testing.T) {
	route, err := ComputeRoute(lineNodes(), lineEdges(), "B", "B", []orb.Geometry{abHazard()}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, route.NodePath)
	assert.Equal(t, [][2]float64{{0, 1}}, route.Coordinates)
	assert.Equal(t, 0.0, route.Cost)
}

func TestComputeRouteErrors(t *testing.T) {
	t.Run("unknown start", func(t *testing.T) {
		_, err := ComputeRoute(lineNodes(), lineEdges(), "Z", "C", nil, 0)
		var unknown *UnknownNodeError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "Z", unknown.NodeID)
	})

	t.Run("unknown goal", func(t *testing.T) {
		_, err := ComputeRoute(lineNodes(), lineEdges(), "A", "Y", nil, 0)
		var unknown *UnknownNodeError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "Y", unknown.NodeID)
	})

	t.Run("disconnected", func(t *testing.T) {
		nodes := append(lineNodes(), datastructure.NewGraphNode("E", 5, 5))
		_, err := ComputeRoute(nodes, lineEdges(), "A", "E", nil, 0)
		var noPath *NoPathError
		require.True(t, errors.As(err, &noPath))
		assert.Equal(t, "A", noPath.Start)
		assert.Equal(t, "E", noPath.Goal)
	})

	t.Run("malformed topology", func(t *testing.T) {
		edges := append(lineEdges(), datastructure.NewGraphEdge("A", "Q", 1))
		_, err := ComputeRoute(lineNodes(), edges, "A", "C", nil, 0)
		var malformed *datastructure.MalformedTopologyError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "Q", malformed.NodeID)
	})
}

func gridGraph(rd *rand.Rand, size int) ([]datastructure.GraphNode, []datastructure.GraphEdge) {
	id := func(r, c int) string {
		return string(rune('a'+r)) + string(rune('a'+c))
	}
	nodes := make([]datastructure.GraphNode, 0, size*size)
	edges := make([]datastructure.GraphEdge, 0)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			nodes = append(nodes, datastructure.NewGraphNode(id(r, c), float64(r)*0.01, float64(c)*0.01))
			if c > 0 {
				edges = append(edges, datastructure.NewGraphEdge(id(r, c-1), id(r, c), 1+rd.Float64()))
			}
			if r > 0 {
				edges = append(edges, datastructure.NewGraphEdge(id(r-1, c), id(r, c), 1+rd.Float64()))
			}
		}
	}
	return nodes, edges
}

func TestComputeRouteProperties(t *testing.T) {
	rd := rand.New(rand.NewSource(7))
	nodes, edges := gridGraph(rd, 12)
	start, goal := nodes[0].ID, nodes[len(nodes)-1].ID

	hazards := []orb.Geometry{
		orb.Polygon{orb.Ring{{0.025, 0.025}, {0.065, 0.025}, {0.065, 0.065}, {0.025, 0.065}, {0.025, 0.025}}},
		orb.LineString{{0.085, 0.0}, {0.085, 0.2}},
	}

	base, err := ComputeRoute(nodes, edges, start, goal, nil, 0)
	require.NoError(t, err)

	t.Run("hazards that touch nothing change nothing", func(t *testing.T) {
		far := []orb.Geometry{orb.Point{50, 50}}
		route, err := ComputeRoute(nodes, edges, start, goal, far, 0)
		require.NoError(t, err)
		assert.InDelta(t, base.Cost, route.Cost, 1e-9)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := ComputeRoute(nodes, edges, start, goal, hazards, 0)
		require.NoError(t, err)
		second, err := ComputeRoute(nodes, edges, start, goal, hazards, 0)
		require.NoError(t, err)
		assert.Equal(t, first.Cost, second.Cost)
	})

	t.Run("monotone in hazards", func(t *testing.T) {
		one, err := ComputeRoute(nodes, edges, start, goal, hazards[:1], 0)
		require.NoError(t, err)
		two, err := ComputeRoute(nodes, edges, start, goal, hazards, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, one.Cost, base.Cost)
		assert.GreaterOrEqual(t, two.Cost, one.Cost)
	})

	t.Run("path cost matches edge weights", func(t *testing.T) {
		route, err := ComputeRoute(nodes, edges, start, goal, nil, 0)
		require.NoError(t, err)
		weights := make(map[[2]string]float64)
		for _, e := range edges {
			weights[[2]string{e.A, e.B}] = e.Dist
			weights[[2]string{e.B, e.A}] = e.Dist
		}
		sum := 0.0
		for i := 1; i < len(route.NodePath); i++ {
			sum += weights[[2]string{route.NodePath[i-1], route.NodePath[i]}]
		}
		assert.InDelta(t, route.Cost, sum, 1e-9)
	})
}
