package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/verifier"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifierLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainverifier",
		Subsystem: "verifier",
		Name:      "lookups_total",
		Help:      "Count of short channel id lookups by outcome.",
	}, []string{"network", "outcome"})
	verifierLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainverifier",
		Subsystem: "verifier",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of short channel id lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "outcome"})
	verifierRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainverifier",
		Subsystem: "verifier",
		Name:      "retries_total",
		Help:      "Count of lookups repeated after a transient failure.",
	}, []string{"network", "outcome"})
)

// Verifier tracks metrics for short channel id resolution.
type Verifier struct {
	network model.Network
}

// NewVerifier constructs a Verifier collector.
func NewVerifier(network model.Network) *Verifier {
	if network == "" {
		network = "unknown"
	}
	return &Verifier{network: network}
}

// ObserveLookup records a lookup outcome and duration.
func (m Verifier) ObserveLookup(err error, started time.Time) {
	outcome := lookupOutcome(err)
	verifierLookupsTotal.WithLabelValues(string(m.network), outcome).Inc()
	verifierLookupDuration.WithLabelValues(string(m.network), outcome).Observe(time.Since(started).Seconds())
}

// ObserveRetry records a lookup that is about to be repeated.
func (m Verifier) ObserveRetry(err error) {
	verifierRetriesTotal.WithLabelValues(string(m.network), lookupOutcome(err)).Inc()
}

func lookupOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, verifier.ErrUnknownChain):
		return "unknown_chain"
	case errors.Is(err, verifier.ErrUnknownOutput):
		return "unknown_output"
	default:
		return "error"
	}
}
