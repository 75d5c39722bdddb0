package monitor

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes the watch session to Prometheus. A dedicated registry
// keeps the scrape output limited to kennel series plus nothing else.
type Metrics struct {
	registry *prometheus.Registry

	bootsTotal       *prometheus.CounterVec
	kicksTotal       prometheus.Counter
	hangsTotal       prometheus.Counter
	badFramesTotal   prometheus.Counter
	lastRestartCount prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bootsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kennel_boots_total",
			Help: "Firmware boots observed, by classified restart cause.",
		}, []string{"cause"}),
		kicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kennel_kicks_total",
			Help: "Watchdog acknowledges reported by the firmware.",
		}),
		hangsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kennel_hangs_total",
			Help: "Deliberate hangs announced by the firmware.",
		}),
		badFramesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kennel_bad_frames_total",
			Help: "Report frames rejected for framing or checksum errors.",
		}),
		lastRestartCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kennel_restart_counter",
			Help: "Firmware's persistent watchdog-restart counter at the last boot.",
		}),
	}

	m.registry.MustRegister(
		m.bootsTotal,
		m.kicksTotal,
		m.hangsTotal,
		m.badFramesTotal,
		m.lastRestartCount,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
