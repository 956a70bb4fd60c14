package datastructure

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// LatLonPair is the [lat, lon] form used in responses.
func (c Coordinate) LatLonPair() [2]float64 {
	return [2]float64{c.Lat, c.Lon}
}

// LonLat is the x,y order GeoJSON and planar geometry use.
func (c Coordinate) LonLat() [2]float64 {
	return [2]float64{c.Lon, c.Lat}
}
