// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainverifier",
		Subsystem: "gateway_client",
		Name:      "operations_total",
		Help:      "Count of data gateway operations.",
	}, []string{"operation", "network", "status"})
	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainverifier",
		Subsystem: "gateway_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of data gateway operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// GatewayClient tracks metrics for requests to the data gateway.
type GatewayClient struct {
	network model.Network
}

// NewGatewayClient constructs a metrics collector for gateway requests.
func NewGatewayClient(network model.Network) *GatewayClient {
	if network == "" {
		network = "unknown"
	}
	return &GatewayClient{network: network}
}

// Observe records a single gateway call outcome and duration.
func (m GatewayClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	gatewayRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	gatewayRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
