package routingalgorithm

import (
	"fmt"

	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/hazard"
	"github.com/alexgaaranes/PJDSC-25/pkg/geo"

	"github.com/paulmach/orb"
)

// UnknownNodeError is returned when the start or goal id is not one of the graph's nodes.
type UnknownNodeError struct {
	NodeID string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node %q", e.NodeID)
}

// NoPathError is returned when goal cannot be reached from start.
type NoPathError struct {
	Start string
	Goal  string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path between %q and %q", e.Start, e.Goal)
}

type Route struct {
	NodePath    []string     `json:"nodePath"`
	Coordinates [][2]float64 `json:"coordinates"`
	Cost        float64      `json:"cost"`
	DistanceKm  float64      `json:"distanceKm"`
	Polyline    string       `json:"polyline"`
	HazardEdges int          `json:"hazardEdges"`
}

// ComputeRoute finds the cheapest start -> goal path once every edge touching a hazard
// has been penalised. penalty <= 0 is the "use the default" sentinel and means
// hazard.DefaultPenalty; there is no way to route with a zero penalty.
func ComputeRoute(nodes []datastructure.GraphNode, edges []datastructure.GraphEdge, start, goal string,
	hazards []orb.Geometry, penalty float64) (Route, error) {
	opts := hazard.DefaultOptions()
	opts.Penalty = penalty
	return ComputeRouteWithOptions(nodes, edges, start, goal, hazards, opts)
}

func ComputeRouteWithOptions(nodes []datastructure.GraphNode, edges []datastructure.GraphEdge, start, goal string,
	hazards []orb.Geometry, opts hazard.Options) (Route, error) {
	g, err := datastructure.BuildGraph(nodes, edges)
	if err != nil {
		return Route{}, err
	}

	from, ok := g.GetNodeIDx(start)
	if !ok {
		return Route{}, &UnknownNodeError{NodeID: start}
	}
	to, ok := g.GetNodeIDx(goal)
	if !ok {
		return Route{}, &UnknownNodeError{NodeID: goal}
	}

	penalised := make(map[int32]struct{})
	for _, edgeID := range hazard.ApplyPenalty(g, hazards, opts) {
		penalised[edgeID] = struct{}{}
	}

	rt := NewRouteAlgorithm(g)
	nodePath, edgePath, cost, found := rt.ShortestPathDijkstra(from, to)
	if !found {
		return Route{}, &NoPathError{Start: start, Goal: goal}
	}

	route := Route{
		NodePath:    make([]string, 0, len(nodePath)),
		Coordinates: make([][2]float64, 0, len(nodePath)),
		Cost:        cost,
	}
	coords := make([]datastructure.Coordinate, 0, len(nodePath))
	for _, nodeID := range nodePath {
		node := g.GetNode(nodeID)
		route.NodePath = append(route.NodePath, node.ID)
		route.Coordinates = append(route.Coordinates, node.Coordinate().LatLonPair())
		coords = append(coords, node.Coordinate())
	}
	for _, edge := range edgePath {
		if _, ok := penalised[edge.EdgeID]; ok {
			route.HazardEdges++
		}
	}
	route.DistanceKm = geo.PathLengthKm(coords)
	route.Polyline = datastructure.CreatePolyline(coords)

	return route, nil
}
