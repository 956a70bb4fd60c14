package reachability

import "github.com/alexgaaranes/PJDSC-25/pkg/datastructure"

// countComponents labels every node with a depth first search over the remaining
// edges and returns how many connected components the graph has.
func countComponents(g *datastructure.Graph) int {
	n := g.GetNumNodes()
	visited := make([]bool, n)
	components := 0

	for v := int32(0); v < int32(n); v++ {
		if visited[v] {
			continue
		}
		dfs(g, v, visited)
		components++
	}
	return components
}

func dfs(g *datastructure.Graph, start int32, visited []bool) {
	stack := []int32{start}
	visited[start] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, edgeID := range g.GetNodeEdges(v) {
			next := g.GetEdge(edgeID).Other(v)
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
}
