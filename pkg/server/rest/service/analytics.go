package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/hazard"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/prioritization"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/reachability"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/routingalgorithm"
	"github.com/alexgaaranes/PJDSC-25/pkg/geo"
	"github.com/alexgaaranes/PJDSC-25/pkg/kv"
	"github.com/alexgaaranes/PJDSC-25/pkg/server"
	"github.com/alexgaaranes/PJDSC-25/pkg/util"

	"go.uber.org/zap"
)

type RouteInput struct {
	Nodes   []datastructure.GraphNode `json:"nodes"`
	Edges   []datastructure.GraphEdge `json:"edges"`
	Start   string                    `json:"start"`
	Goal    string                    `json:"goal"`
	Hazards []json.RawMessage         `json:"hazards"`
	// Penalty <= 0 uses the configured penalty.
	Penalty float64 `json:"penalty"`
}

type ReachabilityInput struct {
	Nodes   []datastructure.GraphNode `json:"nodes"`
	Edges   []datastructure.GraphEdge `json:"edges"`
	Hazards []json.RawMessage         `json:"hazards"`
}

type AnalyticsService struct {
	opts  hazard.Options
	cache Cache
	log   *zap.Logger
}

// NewAnalyticsService wires the engine. cache may be nil.
func NewAnalyticsService(opts hazard.Options, cache Cache, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{opts: opts, cache: cache, log: log}
}

func (uc *AnalyticsService) ComputeRoute(ctx context.Context, in RouteInput) (routingalgorithm.Route, error) {
	if err := ctx.Err(); err != nil {
		return routingalgorithm.Route{}, err
	}

	opts := uc.opts
	if in.Penalty > 0 {
		opts.Penalty = in.Penalty
	}

	key, cacheable := uc.requestKey("route", routeCacheKey{in, opts.Penalty})
	if cacheable {
		route, err := uc.cache.GetRoute(ctx, key)
		if err == nil {
			uc.log.Debug("route served from cache", zap.Uint64("key", key))
			return route, nil
		}
		if !errors.Is(err, kv.ErrNotFound) {
			uc.log.Warn("route cache lookup failed", zap.Error(err))
		}
	}

	hazards, err := geo.ParseHazards(in.Hazards)
	if err != nil {
		return routingalgorithm.Route{}, server.WrapErrorf(err, server.ErrBadParamInput, "invalid hazard geometry")
	}

	route, err := routingalgorithm.ComputeRouteWithOptions(in.Nodes, in.Edges, in.Start, in.Goal, hazards, opts)
	if err != nil {
		return routingalgorithm.Route{}, wrapEngineError(err, "compute route")
	}
	route.DistanceKm = util.RoundFloat(route.DistanceKm, 3)

	uc.log.Debug("route computed",
		zap.Int("nodes", len(in.Nodes)),
		zap.Int("edges", len(in.Edges)),
		zap.Int("hazards", len(hazards)),
		zap.Int("path_len", len(route.NodePath)),
		zap.Float64("cost", route.Cost),
	)

	if cacheable {
		if err := uc.cache.SaveRoute(ctx, key, route); err != nil {
			uc.log.Warn("route cache save failed", zap.Error(err))
		}
	}
	return route, nil
}

func (uc *AnalyticsService) UnreachableNodes(ctx context.Context, in ReachabilityInput) (reachability.Report, error) {
	if err := ctx.Err(); err != nil {
		return reachability.Report{}, err
	}

	key, cacheable := uc.requestKey("unreachable", in)
	if cacheable {
		report, err := uc.cache.GetReachability(ctx, key)
		if err == nil {
			uc.log.Debug("reachability served from cache", zap.Uint64("key", key))
			return report, nil
		}
		if !errors.Is(err, kv.ErrNotFound) {
			uc.log.Warn("reachability cache lookup failed", zap.Error(err))
		}
	}

	hazards, err := geo.ParseHazards(in.Hazards)
	if err != nil {
		return reachability.Report{}, server.WrapErrorf(err, server.ErrBadParamInput, "invalid hazard geometry")
	}

	report, err := reachability.UnreachableNodesWithOptions(in.Nodes, in.Edges, hazards, uc.opts)
	if err != nil {
		return reachability.Report{}, wrapEngineError(err, "unreachable nodes")
	}

	uc.log.Debug("reachability computed",
		zap.Int("nodes", len(in.Nodes)),
		zap.Int("removed_edges", report.RemovedEdges),
		zap.Int("unreachable", len(report.Unreachable)),
	)

	if cacheable {
		if err := uc.cache.SaveReachability(ctx, key, report); err != nil {
			uc.log.Warn("reachability cache save failed", zap.Error(err))
		}
	}
	return report, nil
}

func (uc *AnalyticsService) PrioritizeHouseholds(ctx context.Context, households []prioritization.Household) ([]prioritization.RankedHousehold, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ranked := prioritization.PrioritizeHouseholds(households)
	uc.log.Debug("households prioritized", zap.Int("households", len(ranked)))
	return ranked, nil
}

type routeCacheKey struct {
	RouteInput
	EffectivePenalty float64 `json:"effectivePenalty"`
}

func (uc *AnalyticsService) requestKey(kind string, in any) (uint64, bool) {
	if uc.cache == nil {
		return 0, false
	}
	bb, err := json.Marshal(in)
	if err != nil {
		return 0, false
	}
	return kv.RequestKey(append([]byte(kind+":"), bb...)), true
}

// wrapEngineError marks the engine's input errors as bad requests.
func wrapEngineError(err error, msg string) error {
	var (
		malformed *datastructure.MalformedTopologyError
		unknown   *routingalgorithm.UnknownNodeError
		noPath    *routingalgorithm.NoPathError
		invalid   *geo.InvalidGeometryError
	)
	switch {
	case errors.As(err, &malformed), errors.As(err, &unknown), errors.As(err, &noPath), errors.As(err, &invalid):
		return server.WrapErrorf(err, server.ErrBadParamInput, msg)
	default:
		return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
}
