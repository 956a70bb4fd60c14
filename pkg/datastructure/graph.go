package datastructure

import (
	"fmt"
	"math"
)

const (
	// DefaultEdgeWeight is used when an edge arrives without a distance.
	DefaultEdgeWeight = 1.0
)

// GraphNode is a node as supplied by the caller.
type GraphNode struct {
	ID  string
	Lat float64
	Lon float64
}

func NewGraphNode(id string, lat, lon float64) GraphNode {
	return GraphNode{ID: id, Lat: lat, Lon: lon}
}

// GraphEdge is an undirected edge as supplied by the caller. Dist == 0 means unset.
type GraphEdge struct {
	A    string
	B    string
	Dist float64
}

func NewGraphEdge(a, b string, dist float64) GraphEdge {
	return GraphEdge{A: a, B: b, Dist: dist}
}

type Node struct {
	ID  string
	IDx int32
	Lat float64
	Lon float64
}

func (n Node) Coordinate() Coordinate {
	return NewCoordinate(n.Lat, n.Lon)
}

type Edge struct {
	EdgeID     int32
	FromNodeID int32
	ToNodeID   int32
	Dist       float64
	Weight     float64
	removed    bool
}

// Other returns the endpoint of e that is not nodeID. Self loops return nodeID.
func (e Edge) Other(nodeID int32) int32 {
	if e.FromNodeID == nodeID {
		return e.ToNodeID
	}
	return e.FromNodeID
}

func (e Edge) IsSelfLoop() bool {
	return e.FromNodeID == e.ToNodeID
}

// MalformedTopologyError is returned when an edge cannot be added to the graph,
// usually because one of its endpoints is not in the node list.
type MalformedTopologyError struct {
	EdgeIndex int
	NodeID    string
	Reason    string
}

func (e *MalformedTopologyError) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("malformed topology: edge %d references unknown node %q", e.EdgeIndex, e.NodeID)
	}
	return fmt.Sprintf("malformed topology: edge %d %s", e.EdgeIndex, e.Reason)
}

// Graph is an undirected simple graph with string node ids. Nodes are indexed in
// insertion order; edges live in a flat storage slice and every node keeps the ids
// of its incident edges.
type Graph struct {
	nodes     []Node
	nodeIDMap map[string]int32

	edges     []Edge
	edgeIDMap map[[2]int32]int32
	adj       [][]int32

	numEdges int
}

func NewGraph(nodeCap, edgeCap int) *Graph {
	return &Graph{
		nodes:     make([]Node, 0, nodeCap),
		nodeIDMap: make(map[string]int32, nodeCap),
		edges:     make([]Edge, 0, edgeCap),
		edgeIDMap: make(map[[2]int32]int32, edgeCap),
		adj:       make([][]int32, 0, nodeCap),
	}
}

// BuildGraph constructs the undirected graph for one request. Duplicate node ids
// overwrite the coordinates of the earlier node; duplicate edges between the same
// pair overwrite the earlier weight.
func BuildGraph(nodes []GraphNode, edges []GraphEdge) (*Graph, error) {
	g := NewGraph(len(nodes), len(edges))
	for _, n := range nodes {
		g.AddNode(n.ID, n.Lat, n.Lon)
	}
	for i, e := range edges {
		if err := g.AddEdge(i, e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddNode inserts a node or updates the coordinates of an existing one.
func (g *Graph) AddNode(id string, lat, lon float64) int32 {
	if idx, ok := g.nodeIDMap[id]; ok {
		g.nodes[idx].Lat = lat
		g.nodes[idx].Lon = lon
		return idx
	}
	idx := int32(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, IDx: idx, Lat: lat, Lon: lon})
	g.nodeIDMap[id] = idx
	g.adj = append(g.adj, nil)
	return idx
}

// AddEdge adds e. edgeIndex is only used for error reporting.
func (g *Graph) AddEdge(edgeIndex int, e GraphEdge) error {
	from, ok := g.nodeIDMap[e.A]
	if !ok {
		return &MalformedTopologyError{EdgeIndex: edgeIndex, NodeID: e.A}
	}
	to, ok := g.nodeIDMap[e.B]
	if !ok {
		return &MalformedTopologyError{EdgeIndex: edgeIndex, NodeID: e.B}
	}

	dist := e.Dist
	if math.IsNaN(dist) || math.IsInf(dist, 0) || dist < 0 {
		return &MalformedTopologyError{EdgeIndex: edgeIndex, Reason: fmt.Sprintf("has invalid distance %v", dist)}
	}
	if dist == 0 {
		dist = DefaultEdgeWeight
	}

	key := edgeKey(from, to)
	if edgeID, ok := g.edgeIDMap[key]; ok {
		edge := &g.edges[edgeID]
		edge.Dist = dist
		edge.Weight = dist
		return nil
	}

	edgeID := int32(len(g.edges))
	g.edges = append(g.edges, Edge{
		EdgeID:     edgeID,
		FromNodeID: from,
		ToNodeID:   to,
		Dist:       dist,
		Weight:     dist,
	})
	g.edgeIDMap[key] = edgeID
	g.adj[from] = append(g.adj[from], edgeID)
	if from != to {
		g.adj[to] = append(g.adj[to], edgeID)
	}
	g.numEdges++
	return nil
}

func edgeKey(a, b int32) [2]int32 {
	if a > b {
		a, b = b, a
	}
	return [2]int32{a, b}
}

func (g *Graph) GetNumNodes() int {
	return len(g.nodes)
}

func (g *Graph) GetNumEdges() int {
	return g.numEdges
}

func (g *Graph) GetNode(nodeID int32) Node {
	return g.nodes[nodeID]
}

func (g *Graph) GetNodes() []Node {
	return g.nodes
}

// GetNodeIDx maps a caller supplied id to the internal node index.
func (g *Graph) GetNodeIDx(id string) (int32, bool) {
	idx, ok := g.nodeIDMap[id]
	return idx, ok
}

func (g *Graph) GetEdge(edgeID int32) Edge {
	return g.edges[edgeID]
}

// GetEdgeBetween returns the edge connecting a and b, if any.
func (g *Graph) GetEdgeBetween(a, b int32) (Edge, bool) {
	edgeID, ok := g.edgeIDMap[edgeKey(a, b)]
	if !ok || g.edges[edgeID].removed {
		return Edge{}, false
	}
	return g.edges[edgeID], true
}

// GetNodeEdges returns the ids of the edges incident to nodeID.
func (g *Graph) GetNodeEdges(nodeID int32) []int32 {
	return g.adj[nodeID]
}

// GetEdges returns every edge that has not been removed, in insertion order.
func (g *Graph) GetEdges() []Edge {
	edges := make([]Edge, 0, g.numEdges)
	for _, e := range g.edges {
		if !e.removed {
			edges = append(edges, e)
		}
	}
	return edges
}

func (g *Graph) SetEdgeWeight(edgeID int32, weight float64) {
	g.edges[edgeID].Weight = weight
}

// RemoveEdge deletes the edge from storage and from both endpoints' incidence lists.
func (g *Graph) RemoveEdge(edgeID int32) {
	edge := &g.edges[edgeID]
	if edge.removed {
		return
	}
	edge.removed = true
	g.adj[edge.FromNodeID] = removeEdgeID(g.adj[edge.FromNodeID], edgeID)
	if !edge.IsSelfLoop() {
		g.adj[edge.ToNodeID] = removeEdgeID(g.adj[edge.ToNodeID], edgeID)
	}
	delete(g.edgeIDMap, edgeKey(edge.FromNodeID, edge.ToNodeID))
	g.numEdges--
}

func removeEdgeID(ids []int32, edgeID int32) []int32 {
	for i, id := range ids {
		if id == edgeID {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Degree counts incident edges. A self loop contributes two.
func (g *Graph) Degree(nodeID int32) int {
	degree := 0
	for _, edgeID := range g.adj[nodeID] {
		if g.edges[edgeID].IsSelfLoop() {
			degree += 2
		} else {
			degree++
		}
	}
	return degree
}
