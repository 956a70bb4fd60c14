package service

import (
	"context"

	"github.com/alexgaaranes/PJDSC-25/pkg/engine/reachability"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/routingalgorithm"
)

// Cache stores computed responses. *kv.KVDB implements it.
type Cache interface {
	GetRoute(ctx context.Context, key uint64) (routingalgorithm.Route, error)
	SaveRoute(ctx context.Context, key uint64, route routingalgorithm.Route) error
	GetReachability(ctx context.Context, key uint64) (reachability.Report, error)
	SaveReachability(ctx context.Context, key uint64, report reachability.Report) error
}
