package prioritization

import (
	"encoding/json"
)

var knownFields = map[string]struct{}{
	"id":                  {},
	"numElderly":          {},
	"numChildren":         {},
	"numPWD":              {},
	"numPregnant":         {},
	"distanceToShelterKm": {},
	"hazardSeverity":      {},
	"priorityScore":       {},
}

type householdFields Household

// UnmarshalJSON applies the defaults for absent fields and keeps unknown ones in Extra.
func (h *Household) UnmarshalJSON(data []byte) error {
	fields := householdFields(NewHousehold(""))
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k, v := range all {
		if _, ok := knownFields[k]; ok {
			continue
		}
		if fields.Extra == nil {
			fields.Extra = make(map[string]any)
		}
		fields.Extra[k] = v
	}

	*h = Household(fields)
	return nil
}

func (h Household) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.toMap())
}

func (h Household) toMap() map[string]any {
	out := make(map[string]any, len(h.Extra)+7)
	for k, v := range h.Extra {
		out[k] = v
	}
	if h.ID != "" {
		out["id"] = h.ID
	}
	out["numElderly"] = h.NumElderly
	out["numChildren"] = h.NumChildren
	out["numPWD"] = h.NumPWD
	out["numPregnant"] = h.NumPregnant
	out["distanceToShelterKm"] = h.DistanceToShelterKm
	out["hazardSeverity"] = h.HazardSeverity
	return out
}

func (r RankedHousehold) MarshalJSON() ([]byte, error) {
	out := r.Household.toMap()
	out["priorityScore"] = r.PriorityScore
	return json.Marshal(out)
}
