// Package metrics exposes business and HTTP counters for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "dove"

var (
	InvestmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investments_created_total",
		Help:      "Number of investments created",
	})

	InvestedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invested_amount_total",
		Help:      "Sum of principal placed into packages",
	})

	CommissionsPaid = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commissions_paid_total",
		Help:      "Number of referral commissions credited",
	}, []string{"level"})

	CommissionAmount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commission_amount_total",
		Help:      "Sum of referral commissions credited",
	}, []string{"level"})

	FanOutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commission_fanout_failures_total",
		Help:      "Commission fan-outs that failed after the investment was stored",
	})

	FanOutRepaired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commission_fanout_repaired_total",
		Help:      "Pending commission fan-outs completed by the repair worker",
	})

	IncomeCollected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "income_collected_total",
		Help:      "Sum of daily income collected by users",
	})

	LedgerDriftUsers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "team_income_drift_users",
		Help:      "Users whose team income differs from their commission ledger at the last reconciliation",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPResponseTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_response_time_seconds",
		Help:      "Histogram of response times",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// AddAmount adds a money amount to a counter.
func AddAmount(c prometheus.Counter, amount decimal.Decimal) {
	c.Add(amount.InexactFloat64())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
