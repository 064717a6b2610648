package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "goalreport_stats_queries_total",
		Help: "Stats backend queries by endpoint and response status.",
	},
	[]string{"endpoint", "status"},
)
