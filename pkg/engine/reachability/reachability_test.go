package reachability

import (
	"errors"
	"testing"

	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/hazard"
	"github.com/alexgaaranes/PJDSC-25/pkg/geo"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// center O with spokes to N, E, S, W
func starGraph() ([]datastructure.GraphNode, []datastructure.GraphEdge) {
	nodes := []datastructure.GraphNode{
		datastructure.NewGraphNode("O", 14.60, 121.00),
		datastructure.NewGraphNode("N", 14.61, 121.00),
		datastructure.NewGraphNode("E", 14.60, 121.01),
		datastructure.NewGraphNode("S", 14.59, 121.00),
		datastructure.NewGraphNode("W", 14.60, 120.99),
	}
	edges := []datastructure.GraphEdge{
		datastructure.NewGraphEdge("O", "N", 1),
		datastructure.NewGraphEdge("O", "E", 1),
		datastructure.NewGraphEdge("O", "S", 1),
		datastructure.NewGraphEdge("O", "W", 1),
	}
	return nodes, edges
}

// covers the middle of the O-E spoke only
func eastHazard() orb.Polygon {
	return orb.Polygon{orb.Ring{
		{121.003, 14.599}, {121.007, 14.599}, {121.007, 14.601}, {121.003, 14.601}, {121.003, 14.599},
	}}
}

func TestUnreachableNodesSeveredSpoke(t *testing.T) {
	nodes, edges := starGraph()
	report, err := UnreachableNodes(nodes, edges, []orb.Geometry{eastHazard()})
	require.NoError(t, err)

	assert.Equal(t, []string{"E"}, report.Unreachable)
	assert.Equal(t, 1, report.RemovedEdges)
	assert.Equal(t, 2, report.Components)
	require.Contains(t, report.IsolatedCells, "E")
	assert.Len(t, report.IsolatedCells["E"], 15)
}

func TestUnreachableNodesNoHazards(t *testing.T) {
	nodes, edges := starGraph()
	report, err := UnreachableNodes(nodes, edges, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Unreachable)
	assert.Equal(t, 0, report.RemovedEdges)
	assert.Equal(t, 1, report.Components)
}

func TestUnreachableNodesCenterHit(t *testing.T) {
	nodes, edges := starGraph()
	report, err := UnreachableNodes(nodes, edges, []orb.Geometry{orb.Point{121.00, 14.60}})
	require.NoError(t, err)

	// input order, center included
	assert.Equal(t, []string{"O", "N", "E", "S", "W"}, report.Unreachable)
	assert.Equal(t, 4, report.RemovedEdges)
	assert.Equal(t, 5, report.Components)
}

func TestUnreachableNodesOnlyDegreeZero(t *testing.T) {
	// N-X keeps N connected even though it is cut off from O
	nodes, edges := starGraph()
	nodes = append(nodes, datastructure.NewGraphNode("X", 14.62, 121.00))
	edges = append(edges, datastructure.NewGraphEdge("N", "X", 1))
	hazards := []orb.Geometry{orb.LineString{{120.99, 14.605}, {121.01, 14.605}}}

	report, err := UnreachableNodes(nodes, edges, hazards)
	require.NoError(t, err)
	assert.Empty(t, report.Unreachable)
	assert.Equal(t, 2, report.Components)
}

func TestUnreachableNodesIsolatedBeforeRemoval(t *testing.T) {
	nodes, edges := starGraph()
	nodes = append(nodes, datastructure.NewGraphNode("Z", 15, 122))
	report, err := UnreachableNodes(nodes, edges, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, report.Unreachable)
}

func TestUnreachableNodesErrors(t *testing.T) {
	nodes, edges := starGraph()
	edges = append(edges, datastructure.NewGraphEdge("O", "missing", 1))
	_, err := UnreachableNodes(nodes, edges, nil)
	var malformed *datastructure.MalformedTopologyError
	assert.True(t, errors.As(err, &malformed))
}

func TestUnreachableNodesParallel(t *testing.T) {
	nodes, edges := starGraph()
	opts := hazard.Options{Workers: 3, ParallelThreshold: 1}
	report, err := UnreachableNodesWithOptions(nodes, edges, []orb.Geometry{eastHazard()}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, report.Unreachable)

	raw := []byte(`{"type":"Polygon","coordinates":[[[121.003,14.599],[121.007,14.599],[121.007,14.601],[121.003,14.601],[121.003,14.599]]]}`)
	shape, err := geo.ParseHazard(raw)
	require.NoError(t, err)
	report, err = UnreachableNodes(nodes, edges, []orb.Geometry{shape})
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, report.Unreachable)
}
