package rest

import (
	"net/http"

	"github.com/alexgaaranes/PJDSC-25/pkg/config"
	mymiddleware "github.com/alexgaaranes/PJDSC-25/pkg/server/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// NewRouter assembles the HTTP surface. The returned func releases background
// resources held by the middleware.
func NewRouter(cfg config.ServerConfig, svc AnalyticsService, reg *prometheus.Registry, log *zap.Logger) (*chi.Mux, func()) {
	m := NewMetrics(reg)
	cleanup := func() {}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mymiddleware.ZapLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(cfg.MaxBodyBytes))
	}

	if cfg.RateLimit {
		rl := mymiddleware.NewRateLimiter(cfg.RatePerSecond, cfg.RateBurst)
		r.Use(rl.Limit)
		cleanup = rl.Stop
	}

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), //The url pointing to API definition
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	AnalyticsRouter(r, svc, m, log)
	return r, cleanup
}
