package geo

import (
	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"

	"github.com/golang/geo/s2"
)

const (
	earthRadiusKM = 6371.0
)

// PathLengthKm is the great circle length of path in kilometers.
func PathLengthKm(path []datastructure.Coordinate) float64 {
	if len(path) < 2 {
		return 0
	}
	total := 0.0
	prev := s2.LatLngFromDegrees(path[0].Lat, path[0].Lon)
	for i := 1; i < len(path); i++ {
		curr := s2.LatLngFromDegrees(path[i].Lat, path[i].Lon)
		total += prev.Distance(curr).Radians() * earthRadiusKM
		prev = curr
	}
	return total
}
