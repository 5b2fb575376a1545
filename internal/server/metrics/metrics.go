// Package metrics holds the server's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gophdrive"

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	Logins  *prometheus.CounterVec
	Uploads prometheus.Counter
	Deletes prometheus.Counter
	Shares  prometheus.Counter
}

// New registers the counters on reg. Pass prometheus.NewRegistry() in tests
// to avoid clashing with the default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		Uploads: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "File metadata rows created.",
		}),
		Deletes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletes_total",
			Help:      "File metadata rows deleted.",
		}),
		Shares: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shares_total",
			Help:      "Share links issued.",
		}),
	}
}

func (m *Metrics) Login(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.Logins.WithLabelValues(ResultSuccess).Inc()
		return
	}
	m.Logins.WithLabelValues(ResultFailure).Inc()
}

func (m *Metrics) Upload() {
	if m != nil {
		m.Uploads.Inc()
	}
}

func (m *Metrics) Delete() {
	if m != nil {
		m.Deletes.Inc()
	}
}

func (m *Metrics) Share() {
	if m != nil {
		m.Shares.Inc()
	}
}
