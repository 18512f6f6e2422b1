package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_requests_submitted",
			Help: "The total number of buy requests submitted",
		},
		[]string{"result", "source"},
	)
	RequestsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_requests_accepted",
			Help: "The total number of buy requests accepted by sellers",
		},
		[]string{"result"},
	)
	RequestsDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_requests_denied",
			Help: "The total number of buy requests denied by sellers",
		},
		[]string{"result"},
	)
	RequestsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_requests_cancelled",
			Help: "The total number of buy requests cancelled by buyers",
		},
		[]string{"result"},
	)
	Checkouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_cart_checkouts",
			Help: "The total number of cart checkouts",
		},
		[]string{"result"},
	)
)

// Result labels for the counters above
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Result maps an operation error to its counter label
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
