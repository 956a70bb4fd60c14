package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	ErrEmptyGeometry       = errors.New("geometry is empty")
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")
)

// InvalidGeometryError reports a hazard geometry that could not be interpreted as a shape.
type InvalidGeometryError struct {
	Index int
	Err   error
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid hazard geometry at index %d: %v", e.Index, e.Err)
}

func (e *InvalidGeometryError) Unwrap() error {
	return e.Err
}

// Segment is the straight line between two (lon, lat) points.
type Segment [2]orb.Point

func NewSegment(from, to datastructure.Coordinate) Segment {
	return Segment{orb.Point(from.LonLat()), orb.Point(to.LonLat())}
}

func (s Segment) Bound() orb.Bound {
	return s.LineString().Bound()
}

func (s Segment) LineString() orb.LineString {
	return orb.LineString{s[0], s[1]}
}

// EdgeSegment returns the segment from node a to node b of g. Geodesic curvature is ignored.
func EdgeSegment(g *datastructure.Graph, a, b int32) Segment {
	return NewSegment(g.GetNode(a).Coordinate(), g.GetNode(b).Coordinate())
}

type geoJSONType struct {
	Type string `json:"type"`
}

// ParseHazard decodes one GeoJSON geometry. A Feature is accepted and its geometry used.
func ParseHazard(raw json.RawMessage) (orb.Geometry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrEmptyGeometry
	}

	var t geoJSONType
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	var geom orb.Geometry
	switch t.Type {
	case "Feature":
		f, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			return nil, err
		}
		geom = f.Geometry
	case "FeatureCollection":
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, t.Type)
	default:
		g, err := geojson.UnmarshalGeometry(raw)
		if err != nil {
			return nil, err
		}
		geom = g.Geometry()
	}

	if geom == nil {
		return nil, ErrEmptyGeometry
	}
	if !supported(geom) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, geom.GeoJSONType())
	}
	return geom, nil
}

// ParseHazards decodes every hazard, failing on the first invalid one.
func ParseHazards(raws []json.RawMessage) ([]orb.Geometry, error) {
	shapes := make([]orb.Geometry, 0, len(raws))
	for i, raw := range raws {
		geom, err := ParseHazard(raw)
		if err != nil {
			return nil, &InvalidGeometryError{Index: i, Err: err}
		}
		shapes = append(shapes, geom)
	}
	return shapes, nil
}

func supported(geom orb.Geometry) bool {
	switch g := geom.(type) {
	case orb.Point, orb.MultiPoint, orb.LineString, orb.MultiLineString,
		orb.Ring, orb.Polygon, orb.MultiPolygon, orb.Bound:
		return true
	case orb.Collection:
		for _, part := range g {
			if !supported(part) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
