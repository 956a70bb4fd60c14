package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/prioritization"
	"github.com/alexgaaranes/PJDSC-25/pkg/observability"
	"github.com/alexgaaranes/PJDSC-25/pkg/server/rest/service"

	"github.com/spf13/cobra"
)

// request files use the same JSON bodies as the HTTP API

type routeFile struct {
	Nodes         []datastructure.GraphNode `json:"nodes"`
	Edges         []datastructure.GraphEdge `json:"edges"`
	Start         string                    `json:"start"`
	Goal          string                    `json:"goal"`
	HazardGeoJSON []json.RawMessage         `json:"hazardGeoJSON"`
	Penalty       float64                   `json:"penalty"`
}

type reachabilityFile struct {
	Nodes         []datastructure.GraphNode `json:"nodes"`
	Edges         []datastructure.GraphEdge `json:"edges"`
	HazardGeoJSON []json.RawMessage         `json:"hazardGeoJSON"`
}

func newService() *service.AnalyticsService {
	return service.NewAnalyticsService(engineOptions(cfg.Engine), nil, observability.GetLogger().Named("analytics"))
}

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <request.json>",
		Short: "Compute a hazard aware route from a request file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req routeFile
			if err := readJSON(args[0], &req); err != nil {
				return err
			}
			route, err := newService().ComputeRoute(cmd.Context(), service.RouteInput{
				Nodes:   req.Nodes,
				Edges:   req.Edges,
				Start:   req.Start,
				Goal:    req.Goal,
				Hazards: req.HazardGeoJSON,
				Penalty: req.Penalty,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), route)
		},
	}
}

func newUnreachableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unreachable <request.json>",
		Short: "List nodes isolated by hazards.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req reachabilityFile
			if err := readJSON(args[0], &req); err != nil {
				return err
			}
			report, err := newService().UnreachableNodes(cmd.Context(), service.ReachabilityInput{
				Nodes:   req.Nodes,
				Edges:   req.Edges,
				Hazards: req.HazardGeoJSON,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
}

func newPrioritizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prioritize <households.json>",
		Short: "Rank households by evacuation urgency.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var households []prioritization.Household
			if err := readJSON(args[0], &households); err != nil {
				return err
			}
			ranked, err := newService().PrioritizeHouseholds(cmd.Context(), households)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ranked)
		},
	}
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
