package concurrent

// EdgeRange is a half-open range [From, To) of positions in an edge slice.
type EdgeRange struct {
	From int
	To   int
}

func NewEdgeRange(from, to int) EdgeRange {
	return EdgeRange{From: from, To: to}
}

// SplitEdges cuts n edges into at most parts ranges of near equal size.
func SplitEdges(n, parts int) []EdgeRange {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	size := (n + parts - 1) / parts
	ranges := make([]EdgeRange, 0, parts)
	for from := 0; from < n; from += size {
		to := from + size
		if to > n {
			to = n
		}
		ranges = append(ranges, NewEdgeRange(from, to))
	}
	return ranges
}

type JobI interface {
	EdgeRange
}

type JobFunc[T JobI, G any] func(job T) G
