package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	hazardEdges     *prometheus.CounterVec
	unreachable     prometheus.Counter
	householdsRated prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sagip",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sagip",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		hazardEdges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sagip",
			Name:      "hazard_edges_total",
			Help:      "Edges penalised on returned routes or removed for reachability.",
		}, []string{"mode"}),
		unreachable: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sagip",
			Name:      "unreachable_nodes_total",
			Help:      "Nodes reported as unreachable.",
		}),
		householdsRated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sagip",
			Name:      "households_prioritized_total",
			Help:      "Households scored by the prioritization endpoint.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.hazardEdges, m.unreachable, m.householdsRated)
	return m
}

// PromeHttpMiddleware records request count and latency labelled by chi route pattern.
func PromeHttpMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
