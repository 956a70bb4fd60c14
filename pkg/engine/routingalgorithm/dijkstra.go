package routingalgorithm

import (
	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"
	"github.com/alexgaaranes/PJDSC-25/pkg/util"
)

type cameFromPair struct {
	Edge   datastructure.Edge
	NodeID int32
}

type RouteAlgorithm struct {
	g Graph
}

func NewRouteAlgorithm(g Graph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

// ShortestPathDijkstra searches from -> to over the current edge weights and stops as
// soon as to is settled. ok is false when to cannot be reached.
func (rt *RouteAlgorithm) ShortestPathDijkstra(from, to int32) (nodePath []int32, edgePath []datastructure.Edge, cost float64, ok bool) {
	if from == to {
		return []int32{from}, []datastructure.Edge{}, 0, true
	}

	pq := datastructure.NewMinHeap[int32]()
	pq.Insert(datastructure.NewPriorityQueueNode(0, from))

	costSoFar := make(map[int32]float64)
	costSoFar[from] = 0.0

	cameFrom := make(map[int32]cameFromPair)
	cameFrom[from] = cameFromPair{datastructure.Edge{}, -1}

	visited := make(map[int32]struct{})

	for pq.Size() > 0 {
		current, _ := pq.ExtractMin()
		if current.Item == to {
			nodePath, edgePath = rt.unpack(cameFrom, to)
			return nodePath, edgePath, costSoFar[to], true
		}
		visited[current.Item] = struct{}{}

		for _, edgeID := range rt.g.GetNodeEdges(current.Item) {
			edge := rt.g.GetEdge(edgeID)
			next := edge.Other(current.Item)
			if _, ok := visited[next]; ok {
				continue
			}

			newCost := costSoFar[current.Item] + edge.Weight
			oldCost, seen := costSoFar[next]
			if !seen {
				costSoFar[next] = newCost
				cameFrom[next] = cameFromPair{edge, current.Item}
				pq.Insert(datastructure.NewPriorityQueueNode(newCost, next))
			} else if newCost < oldCost {
				costSoFar[next] = newCost
				cameFrom[next] = cameFromPair{edge, current.Item}
				item := datastructure.NewPriorityQueueNode(newCost, next)
				if err := pq.DecreaseKey(item); err != nil {
					// next is unsettled but no longer queued
					pq.Insert(item)
				}
			}
		}
	}

	return nil, nil, 0, false
}

func (rt *RouteAlgorithm) unpack(cameFrom map[int32]cameFromPair, to int32) ([]int32, []datastructure.Edge) {
	nodePath := []int32{}
	edgePath := []datastructure.Edge{}

	curr := to
	for cameFrom[curr].NodeID != -1 {
		nodePath = append(nodePath, curr)
		edgePath = append(edgePath, cameFrom[curr].Edge)
		curr = cameFrom[curr].NodeID
	}
	nodePath = append(nodePath, curr)

	return util.ReverseG(nodePath), util.ReverseG(edgePath)
}
