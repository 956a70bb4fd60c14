package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Intersects reports whether seg and shape share at least one point. Touching counts.
func Intersects(seg Segment, shape orb.Geometry) bool {
	switch s := shape.(type) {
	case orb.Point:
		return pointOnSegment(s, seg[0], seg[1])
	case orb.MultiPoint:
		for _, p := range s {
			if pointOnSegment(p, seg[0], seg[1]) {
				return true
			}
		}
	case orb.LineString:
		return segmentIntersectsLine(seg, s)
	case orb.MultiLineString:
		for _, ls := range s {
			if segmentIntersectsLine(seg, ls) {
				return true
			}
		}
	case orb.Ring:
		return segmentIntersectsPolygon(seg, orb.Polygon{s})
	case orb.Polygon:
		return segmentIntersectsPolygon(seg, s)
	case orb.MultiPolygon:
		for _, poly := range s {
			if segmentIntersectsPolygon(seg, poly) {
				return true
			}
		}
	case orb.Bound:
		return segmentIntersectsPolygon(seg, s.ToPolygon())
	case orb.Collection:
		for _, part := range s {
			if Intersects(seg, part) {
				return true
			}
		}
	}
	return false
}

// IntersectsAny reports whether seg touches any of shapes.
func IntersectsAny(seg Segment, shapes []orb.Geometry) bool {
	for _, shape := range shapes {
		if Intersects(seg, shape) {
			return true
		}
	}
	return false
}

func segmentIntersectsLine(seg Segment, ls orb.LineString) bool {
	switch len(ls) {
	case 0:
		return false
	case 1:
		return pointOnSegment(ls[0], seg[0], seg[1])
	}
	for i := 0; i < len(ls)-1; i++ {
		if segmentsIntersect(seg[0], seg[1], ls[i], ls[i+1]) {
			return true
		}
	}
	return false
}

func segmentIntersectsRing(seg Segment, ring orb.Ring) bool {
	n := len(ring)
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if segmentsIntersect(seg[0], seg[1], ring[i], ring[(i+1)%n]) {
			return true
		}
	}
	return false
}

// segmentIntersectsPolygon checks the boundary of every ring first. A segment that
// crosses no boundary lies wholly inside or wholly outside, so one endpoint decides.
func segmentIntersectsPolygon(seg Segment, poly orb.Polygon) bool {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return false
	}
	if !seg.Bound().Intersects(poly[0].Bound()) {
		return false
	}
	for _, ring := range poly {
		if segmentIntersectsRing(seg, ring) {
			return true
		}
	}
	return planar.PolygonContains(poly, seg[0])
}

// orientation is the z component of (b-a) x (c-a).
func orientation(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// onSegment assumes p, q, r are collinear and checks q lies within the box of pr.
func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}

func pointOnSegment(p, a, b orb.Point) bool {
	return orientation(a, b, p) == 0 && onSegment(a, b, p)
}

func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// collinear and touching cases
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}
