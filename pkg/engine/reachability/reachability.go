package reachability

import (
	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/hazard"

	"github.com/paulmach/orb"
	"github.com/uber/h3-go/v4"
)

const cellResolution = 9

type Report struct {
	// Unreachable holds the ids of nodes left without any edge, in node input order.
	Unreachable []string `json:"unreachable"`

	RemovedEdges  int               `json:"removedEdges"`
	Components    int               `json:"components"`
	IsolatedCells map[string]string `json:"isolatedCells"`
}

// UnreachableNodes removes every edge touching a hazard and reports the nodes whose
// degree drops to zero. Nodes that were isolated before removal are reported too.
func UnreachableNodes(nodes []datastructure.GraphNode, edges []datastructure.GraphEdge, hazards []orb.Geometry) (Report, error) {
	return UnreachableNodesWithOptions(nodes, edges, hazards, hazard.DefaultOptions())
}

func UnreachableNodesWithOptions(nodes []datastructure.GraphNode, edges []datastructure.GraphEdge, hazards []orb.Geometry,
	opts hazard.Options) (Report, error) {
	g, err := datastructure.BuildGraph(nodes, edges)
	if err != nil {
		return Report{}, err
	}

	removed := hazard.RemoveHazardousEdges(g, hazards, opts)

	report := Report{
		Unreachable:   []string{},
		RemovedEdges:  len(removed),
		Components:    countComponents(g),
		IsolatedCells: make(map[string]string),
	}

	// duplicate ids collapse to one graph node; report each once
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}

		nodeID, _ := g.GetNodeIDx(n.ID)
		if g.Degree(nodeID) != 0 {
			continue
		}
		node := g.GetNode(nodeID)
		report.Unreachable = append(report.Unreachable, node.ID)
		cell := h3.LatLngToCell(h3.NewLatLng(node.Lat, node.Lon), cellResolution)
		report.IsolatedCells[node.ID] = cell.String()
	}

	return report, nil
}
