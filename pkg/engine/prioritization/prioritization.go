package prioritization

import (
	"math"
	"sort"
)

const (
	elderlyWeight  = 2.5
	pwdWeight      = 2.0
	pregnantWeight = 1.5
	childWeight    = 1.0
	hazardWeight   = 1.25
	distanceWeight = 0.5
	baseScore      = 1.0

	DefaultHazardSeverity = 1.0
)

type Household struct {
	ID                  string  `json:"id,omitempty"`
	NumElderly          int     `json:"numElderly" validate:"gte=0"`
	NumChildren         int     `json:"numChildren" validate:"gte=0"`
	NumPWD              int     `json:"numPWD" validate:"gte=0"`
	NumPregnant         int     `json:"numPregnant" validate:"gte=0"`
	DistanceToShelterKm float64 `json:"distanceToShelterKm"`
	HazardSeverity      float64 `json:"hazardSeverity"`

	// Extra keeps fields this package does not interpret so they survive a round trip.
	Extra map[string]any `json:"-"`
}

// NewHousehold returns a household with no members at distance 0 and the default
// hazard severity.
func NewHousehold(id string) Household {
	return Household{ID: id, HazardSeverity: DefaultHazardSeverity}
}

type RankedHousehold struct {
	Household
	PriorityScore float64 `json:"priorityScore"`
}

// ScoreHousehold is a weighted risk model; higher means more urgent.
func ScoreHousehold(h Household) float64 {
	return elderlyWeight*float64(h.NumElderly) +
		pwdWeight*float64(h.NumPWD) +
		pregnantWeight*float64(h.NumPregnant) +
		childWeight*float64(h.NumChildren) +
		hazardWeight*h.HazardSeverity +
		distanceWeight*math.Max(0, h.DistanceToShelterKm) +
		baseScore
}

// PrioritizeHouseholds scores every household and sorts them by descending score.
// Equal scores keep their input order. The input slice is not modified.
func PrioritizeHouseholds(households []Household) []RankedHousehold {
	ranked := make([]RankedHousehold, 0, len(households))
	for _, h := range households {
		ranked = append(ranked, RankedHousehold{Household: h, PriorityScore: ScoreHousehold(h)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})
	return ranked
}
