package hazard

import (
	"sort"

	"github.com/alexgaaranes/PJDSC-25/pkg/geo"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

const (
	// boundPadding widens every rectangle so the prefilter never drops a shape that
	// only touches the segment's bounding box.
	boundPadding = 1e-9

	minChildItems = 25
	maxChildItems = 50

	// below this many hazards a linear scan is cheaper than the tree
	minIndexedHazards = 4
)

type indexedShape struct {
	shapeIdx int
	rect     rtreego.Rect
}

func (s *indexedShape) Bounds() rtreego.Rect {
	return s.rect
}

// Index answers "does this segment touch any hazard". The R-tree only narrows the
// candidate shapes by bounding box; the exact answer always comes from geo.Intersects.
type Index struct {
	shapes []orb.Geometry
	tree   *rtreego.Rtree
}

func NewIndex(shapes []orb.Geometry) *Index {
	idx := &Index{shapes: shapes}
	if len(shapes) < minIndexedHazards {
		return idx
	}

	idx.tree = rtreego.NewTree(2, minChildItems, maxChildItems)
	for i, shape := range shapes {
		b := shape.Bound()
		if b.IsEmpty() {
			// empty shapes intersect nothing
			continue
		}
		idx.tree.Insert(&indexedShape{shapeIdx: i, rect: boundToRect(b)})
	}
	return idx
}

func boundToRect(b orb.Bound) rtreego.Rect {
	rect, _ := rtreego.NewRectFromPoints(
		rtreego.Point{b.Min[0] - boundPadding, b.Min[1] - boundPadding},
		rtreego.Point{b.Max[0] + boundPadding, b.Max[1] + boundPadding},
	)
	return rect
}

func (idx *Index) Len() int {
	return len(idx.shapes)
}

// candidates returns the shapes whose bounding box touches the segment's, in input order.
func (idx *Index) candidates(seg geo.Segment) []orb.Geometry {
	if idx.tree == nil {
		return idx.shapes
	}
	hits := idx.tree.SearchIntersect(boundToRect(seg.Bound()))
	if len(hits) == 0 {
		return nil
	}
	ids := make([]int, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.(*indexedShape).shapeIdx)
	}
	sort.Ints(ids)

	shapes := make([]orb.Geometry, 0, len(ids))
	for _, id := range ids {
		shapes = append(shapes, idx.shapes[id])
	}
	return shapes
}

// Intersects reports whether seg touches at least one indexed hazard.
func (idx *Index) Intersects(seg geo.Segment) bool {
	if len(idx.shapes) == 0 {
		return false
	}
	return geo.IntersectsAny(seg, idx.candidates(seg))
}
