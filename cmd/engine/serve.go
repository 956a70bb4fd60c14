package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/alexgaaranes/PJDSC-25/docs"
	"github.com/alexgaaranes/PJDSC-25/pkg/kv"
	"github.com/alexgaaranes/PJDSC-25/pkg/observability"
	"github.com/alexgaaranes/PJDSC-25/pkg/server/rest"
	"github.com/alexgaaranes/PJDSC-25/pkg/server/rest/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.Flags().String("listenaddr", "", "server listen address")
	_ = v.BindPFlag("server.listen_addr", cmd.Flags().Lookup("listenaddr"))
	cmd.Flags().Bool("ratelimit", false, "use rate limit")
	_ = v.BindPFlag("server.rate_limit", cmd.Flags().Lookup("ratelimit"))
	cmd.Flags().Bool("cache", false, "cache responses in badger")
	_ = v.BindPFlag("cache.enabled", cmd.Flags().Lookup("cache"))
	return cmd
}

func serve(ctx context.Context) error {
	log := observability.GetLogger()

	var cache service.Cache
	if cfg.Cache.Enabled {
		kvDB, err := kv.OpenKVDB(cfg.Cache.Dir, cfg.Cache.TTL, log.Named("cache"))
		if err != nil {
			return err
		}
		defer kvDB.Close()
		cache = kvDB
		log.Info("response cache enabled", zap.String("dir", cfg.Cache.Dir), zap.Duration("ttl", cfg.Cache.TTL))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := service.NewAnalyticsService(engineOptions(cfg.Engine), cache, log.Named("analytics"))
	r, cleanup := rest.NewRouter(cfg.Server, svc, reg, log.Named("http"))
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("addr", cfg.Server.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Server.ListenAddr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
