package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OverlayIcon     = "icon"
	OverlayBoundary = "boundary"

	ResultOK    = "ok"
	ResultError = "error"
)

var (
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "venuemap_sessions_active",
		Help: "Number of open map sessions",
	})
	SessionEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "venuemap_session_events_total",
		Help: "Total session events handled by type",
	}, []string{"type"})
	OverlayLoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "venuemap_overlay_loads_total",
		Help: "Total overlay loads by overlay and result",
	}, []string{"overlay", "result"})
	TileRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "venuemap_tile_requests_total",
		Help: "Total vector tile requests",
	})
	TileDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "venuemap_tile_duration_ms",
		Help:    "Vector tile generation duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)

func init() {
	prometheus.MustRegister(ActiveSessions)
	prometheus.MustRegister(SessionEventsTotal)
	prometheus.MustRegister(OverlayLoadsTotal)
	prometheus.MustRegister(TileRequestsTotal)
	prometheus.MustRegister(TileDurationMs)
}

func Handler() http.Handler { return promhttp.Handler() }
