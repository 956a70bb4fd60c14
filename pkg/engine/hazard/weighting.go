package hazard

import (
	"runtime"
	"sort"

	"github.com/alexgaaranes/PJDSC-25/pkg/concurrent"
	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"
	"github.com/alexgaaranes/PJDSC-25/pkg/geo"

	"github.com/paulmach/orb"
)

const (
	DefaultPenalty = 1000.0

	// DefaultParallelThreshold is the edges x hazards product above which the
	// intersection tests are spread over a worker pool.
	DefaultParallelThreshold = 200_000
)

type Options struct {
	// Penalty is added to the weight of every hazardous edge. Zero or less means
	// DefaultPenalty, so a penalty of exactly 0 cannot be requested.
	Penalty           float64
	ParallelThreshold int
	Workers           int
}

func DefaultOptions() Options {
	return Options{
		Penalty:           DefaultPenalty,
		ParallelThreshold: DefaultParallelThreshold,
		Workers:           runtime.NumCPU(),
	}
}

func (o Options) penalty() float64 {
	if o.Penalty <= 0 {
		return DefaultPenalty
	}
	return o.Penalty
}

func (o Options) parallel(numEdges, numHazards int) bool {
	return o.ParallelThreshold > 0 && o.Workers > 1 && numEdges*numHazards >= o.ParallelThreshold
}

// FlagHazardousEdges returns the ids of every edge whose segment intersects at least
// one hazard, in ascending order. The graph is only read.
func FlagHazardousEdges(g *datastructure.Graph, shapes []orb.Geometry, opts Options) []int32 {
	edges := g.GetEdges()
	if len(edges) == 0 || len(shapes) == 0 {
		return []int32{}
	}
	idx := NewIndex(shapes)

	flagRange := func(r concurrent.EdgeRange) []int32 {
		flagged := make([]int32, 0)
		for _, edge := range edges[r.From:r.To] {
			seg := geo.EdgeSegment(g, edge.FromNodeID, edge.ToNodeID)
			if idx.Intersects(seg) {
				flagged = append(flagged, edge.EdgeID)
			}
		}
		return flagged
	}

	if !opts.parallel(len(edges), len(shapes)) {
		return flagRange(concurrent.NewEdgeRange(0, len(edges)))
	}

	ranges := concurrent.SplitEdges(len(edges), opts.Workers*4)
	wp := concurrent.NewWorkerPool[concurrent.EdgeRange, []int32](opts.Workers, len(ranges))
	wp.Start(flagRange)
	for _, r := range ranges {
		wp.AddJob(r)
	}
	wp.Close()
	wp.Wait()

	flagged := make([]int32, 0)
	for part := range wp.CollectResults() {
		flagged = append(flagged, part...)
	}
	sort.Slice(flagged, func(i, j int) bool { return flagged[i] < flagged[j] })
	return flagged
}

// ApplyPenalty adds the penalty once to every edge touching a hazard, no matter how
// many hazards it touches. Other edges keep their base weight. Returns the penalised ids.
func ApplyPenalty(g *datastructure.Graph, shapes []orb.Geometry, opts Options) []int32 {
	flagged := FlagHazardousEdges(g, shapes, opts)
	penalty := opts.penalty()
	for _, edgeID := range flagged {
		edge := g.GetEdge(edgeID)
		g.SetEdgeWeight(edgeID, edge.Dist+penalty)
	}
	return flagged
}

// RemoveHazardousEdges deletes every edge touching a hazard. Returns the removed ids.
func RemoveHazardousEdges(g *datastructure.Graph, shapes []orb.Geometry, opts Options) []int32 {
	flagged := FlagHazardousEdges(g, shapes, opts)
	for _, edgeID := range flagged {
		g.RemoveEdge(edgeID)
	}
	return flagged
}
