package routingalgorithm

import "github.com/alexgaaranes/PJDSC-25/pkg/datastructure"

// Graph is the read side of datastructure.Graph the search needs.
type Graph interface {
	GetNode(nodeID int32) datastructure.Node
	GetEdge(edgeID int32) datastructure.Edge
	GetNodeEdges(nodeID int32) []int32
	GetNumNodes() int
}
