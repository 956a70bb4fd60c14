package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexgaaranes/PJDSC-25/pkg/config"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/hazard"
	"github.com/alexgaaranes/PJDSC-25/pkg/observability"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	cfg     *config.Config
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	rootCmd := &cobra.Command{
		Use:           "sagip",
		Short:         "Hazard aware evacuation routing engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.BindEnv(v)
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			loaded, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			cfg = loaded

			observability.InitializeLogger(cfg.Logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("logger.level", rootCmd.PersistentFlags().Lookup("log-level"))
	rootCmd.PersistentFlags().Float64("penalty", 0, "additive cost for edges touching a hazard")
	_ = v.BindPFlag("engine.hazard_penalty", rootCmd.PersistentFlags().Lookup("penalty"))

	rootCmd.AddCommand(newServeCmd(v))
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newUnreachableCmd())
	rootCmd.AddCommand(newPrioritizeCmd())
	return rootCmd
}

// Execute runs the command tree with ctx, which is cancelled on SIGINT/SIGTERM.
func Execute(ctx context.Context) error {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if cfg != nil {
			observability.GetLogger().Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

func engineOptions(c config.EngineConfig) hazard.Options {
	opts := hazard.DefaultOptions()
	opts.Penalty = c.HazardPenalty
	opts.ParallelThreshold = c.ParallelThreshold
	opts.Workers = c.Workers
	return opts
}
