package kv

import (
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/reachability"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/routingalgorithm"

	"github.com/kelindar/binary"
)

// cached responses are stored as kelindar/binary encoded, zstd compressed values

func encodeValue[T any](v T) ([]byte, error) {
	bb, err := binary.Marshal(v)
	if err != nil {
		return nil, err
	}
	return compress(bb)
}

func decodeValue[T any](bbCompressed []byte) (T, error) {
	var v T
	bb, err := decompress(bbCompressed)
	if err != nil {
		return v, err
	}
	err = binary.Unmarshal(bb, &v)
	return v, err
}

func encodeRoute(route routingalgorithm.Route) ([]byte, error) {
	return encodeValue(route)
}

func decodeRoute(bb []byte) (routingalgorithm.Route, error) {
	return decodeValue[routingalgorithm.Route](bb)
}

func encodeReport(report reachability.Report) ([]byte, error) {
	return encodeValue(report)
}

func decodeReport(bb []byte) (reachability.Report, error) {
	return decodeValue[reachability.Report](bb)
}
