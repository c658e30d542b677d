// Package metrics registers the prometheus collectors shared across the
// server. Everything is registered on the default registry and exposed on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	MachineActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rvm_machine_active",
			Help: "1 while an RVM session is active, 0 while locked",
		},
	)

	SessionsStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rvm_sessions_started_total",
			Help: "Total number of RVM sessions opened",
		},
	)

	SessionsClosedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rvm_sessions_closed_total",
			Help: "Total number of RVM sessions closed, by close reason",
		},
		[]string{"reason"},
	)

	DepositsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rvm_deposits_total",
			Help: "Total number of accepted bottle deposits",
		},
	)

	PointsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_points_earned_total",
			Help: "Total points reconciled into the wallet",
		},
	)

	PointsRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_points_redeemed_total",
			Help: "Total points redeemed from the wallet",
		},
	)

	RedeemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_redeems_total",
			Help: "Total number of redemptions, by payout method",
		},
		[]string{"method"},
	)
)
