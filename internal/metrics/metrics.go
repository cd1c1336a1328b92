package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AccountOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_account_operations_total",
			Help: "Total successful bank account operations",
		},
		[]string{"op"}, // create|replace|patch|get|list|delete
	)
	AccountOpsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bank_account_operations_failed_total",
			Help: "Total failed bank account operations",
		},
	)
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(AccountOpsTotal)
	prometheus.MustRegister(AccountOpsFailed)
	prometheus.MustRegister(WorkerQueueDepth)
}
