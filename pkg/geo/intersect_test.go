package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func square(minX, minY, maxX, maxY float64) orb.Ring {
	return orb.Ring{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY}}
}

func TestIntersects(t *testing.T) {
	seg := Segment{{0, 0}, {2, 0}}

	cases := []struct {
		name     string
		shape    orb.Geometry
		expected bool
	}{
		{"point on segment", orb.Point{1, 0}, true},
		{"point at endpoint", orb.Point{2, 0}, true},
		{"point off segment", orb.Point{1, 0.1}, false},
		{"point on extension", orb.Point{3, 0}, false},
		{"multipoint one hit", orb.MultiPoint{{5, 5}, {0.5, 0}}, true},
		{"crossing line", orb.LineString{{1, -1}, {1, 1}}, true},
		{"line touching endpoint", orb.LineString{{2, 0}, {3, 1}}, true},
		{"collinear overlapping line", orb.LineString{{1, 0}, {5, 0}}, true},
		{"collinear disjoint line", orb.LineString{{3, 0}, {5, 0}}, false},
		{"parallel line", orb.LineString{{0, 1}, {2, 1}}, false},
		{"multiline second hits", orb.MultiLineString{{{5, 5}, {6, 6}}, {{1, -1}, {1, 1}}}, true},
		{"polygon covering segment", orb.Polygon{square(-1, -1, 3, 1)}, true},
		{"polygon crossing segment", orb.Polygon{square(0.5, -1, 1.5, 1)}, true},
		{"polygon touching segment", orb.Polygon{square(0, 0, 1, 1)}, true},
		{"polygon touching at a vertex", orb.Polygon{square(2, -1, 3, 0)}, true},
		{"polygon away", orb.Polygon{square(5, 5, 6, 6)}, false},
		{"segment inside hole", orb.Polygon{square(-5, -5, 5, 5), square(-1, -1, 3, 1)}, false},
		{"segment crossing hole boundary", orb.Polygon{square(-5, -5, 5, 5), square(1, -1, 3, 1)}, true},
		{"multipolygon", orb.MultiPolygon{{square(5, 5, 6, 6)}, {square(1, -1, 1.5, 1)}}, true},
		{"bound", orb.Bound{Min: orb.Point{1, -1}, Max: orb.Point{4, 4}}, true},
		{"collection", orb.Collection{orb.Point{9, 9}, orb.LineString{{1, -1}, {1, 1}}}, true},
		{"empty polygon", orb.Polygon{}, false},
		{"empty line", orb.LineString{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Intersects(seg, c.shape))
		})
	}
}

func TestIntersectsSegmentInsidePolygon(t *testing.T) {
	seg := Segment{{0.2, 0.2}, {0.4, 0.4}}
	assert.True(t, Intersects(seg, orb.Polygon{square(0, 0, 1, 1)}))
}

func TestIntersectsUnclosedRing(t *testing.T) {
	ring := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	// only the implicit closing edge (0,1)-(0,0) is touched
	seg := Segment{{-1, 0.5}, {0, 0.5}}
	assert.True(t, Intersects(seg, ring))
}

func TestIntersectsDegenerateSegment(t *testing.T) {
	seg := Segment{{0.5, 0.5}, {0.5, 0.5}}
	assert.True(t, Intersects(seg, orb.Polygon{square(0, 0, 1, 1)}))
	assert.True(t, Intersects(seg, orb.Point{0.5, 0.5}))
	assert.False(t, Intersects(seg, orb.LineString{{0, 0}, {1, 0}}))
}

func TestIntersectsAny(t *testing.T) {
	seg := Segment{{0, 0}, {1, 1}}
	shapes := []orb.Geometry{orb.Point{5, 5}, orb.LineString{{0, 1}, {1, 0}}}
	assert.True(t, IntersectsAny(seg, shapes))
	assert.False(t, IntersectsAny(seg, shapes[:1]))
	assert.False(t, IntersectsAny(seg, nil))
}
