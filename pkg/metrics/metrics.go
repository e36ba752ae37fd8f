package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Signaling relay metrics, registered on the default registry.
var (
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "meetngo_signaling_connections",
		Help: "Currently open signaling connections.",
	})
	RoomsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "meetngo_signaling_rooms",
		Help: "Rooms with at least one member.",
	})
	MessagesRelayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meetngo_signaling_messages_relayed_total",
		Help: "Per-recipient deliveries attempted successfully.",
	})
	SendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meetngo_signaling_send_failures_total",
		Help: "Per-recipient deliveries dropped (slow or closed peer).",
	})
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
