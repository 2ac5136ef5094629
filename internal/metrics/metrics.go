package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Balance mutations and reads, by op (get|add|set) and outcome (ok|not_found|error).
	BalanceOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "balance_operations_total",
			Help: "Balance store operations",
		},
		[]string{"op", "outcome"},
	)

	// Minutes credited through the increment endpoint; negative adds count as debits.
	MinutesCredited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "balance_minutes_credited_total",
			Help: "Total minutes added to balances",
		},
	)
	MinutesDebited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "balance_minutes_debited_total",
			Help: "Total minutes removed from balances via negative increments",
		},
	)

	// register|login|login_failed|refresh|logout|token_rejected
	AuthEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_events_total",
			Help: "Identity events",
		},
		[]string{"event"},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(BalanceOpsTotal)
		prometheus.MustRegister(MinutesCredited)
		prometheus.MustRegister(MinutesDebited)
		prometheus.MustRegister(AuthEventsTotal)
	})
}
