// Package metrics defines the Prometheus collectors of the dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NormalizedResponses counts ledger responses by collection and the
	// strategy that extracted their records. Responses no strategy could
	// read are counted with strategy "none".
	NormalizedResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "equitrack",
		Subsystem: "normalize",
		Name:      "responses_total",
		Help:      "Ledger responses by collection and matching envelope strategy.",
	}, []string{"collection", "strategy"})

	// DroppedRecords counts single records that could not be decoded.
	DroppedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "equitrack",
		Subsystem: "normalize",
		Name:      "dropped_records_total",
		Help:      "Records dropped because they could not be decoded.",
	}, []string{"collection"})

	// BalanceMismatches counts reconciliations where the sum of active
	// wallets differed from the total reported by the ledger.
	BalanceMismatches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "equitrack",
		Subsystem: "wallets",
		Name:      "balance_mismatches_total",
		Help:      "Reconciliations where the computed and reported total balance differ.",
	})

	// LedgerRequestDuration observes requests to the external ledger API.
	LedgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "equitrack",
		Subsystem: "ledger",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests to the ledger API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "status"})
)
