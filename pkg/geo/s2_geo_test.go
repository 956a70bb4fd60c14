package geo

import (
	"testing"

	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func TestPathLengthKm(t *testing.T) {
	cases := []struct {
		name     string
		path     []datastructure.Coordinate
		expected float64
	}{
		{
			name: "single leg",
			path: []datastructure.Coordinate{
				datastructure.NewCoordinate(-7.557155997491524, 110.77170252731288),
				datastructure.NewCoordinate(-7.550209300671982, 110.78942094938256),
			},
			expected: 2.1,
		},
		{
			name: "north south leg",
			path: []datastructure.Coordinate{
				datastructure.NewCoordinate(-7.700002453207869, 110.37712514761436),
				datastructure.NewCoordinate(-7.760335932763678, 110.37671195413539),
			},
			expected: 6.7,
		},
		{
			name: "two legs",
			path: []datastructure.Coordinate{
				datastructure.NewCoordinate(-7.557155997491524, 110.77170252731288),
				datastructure.NewCoordinate(-7.550209300671982, 110.78942094938256),
				datastructure.NewCoordinate(-7.546196863318374, 110.7775170972345),
			},
			expected: 3.48,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, PathLengthKm(c.path), 0.1)
		})
	}
}

func TestPathLengthKmShortPath(t *testing.T) {
	assert.Equal(t, 0.0, PathLengthKm(nil))
	assert.Equal(t, 0.0, PathLengthKm([]datastructure.Coordinate{{Lat: 1, Lon: 1}}))
}
