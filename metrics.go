package hxui

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	actionsTotal   *prometheus.CounterVec
	actionDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		actionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hxui",
			Name:      "actions_total",
			Help:      "Total number of component actions handled",
		}, []string{"component", "action", "outcome"}),

		actionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hxui",
			Name:      "action_duration_seconds",
			Help:      "Component action handler duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"component", "action"}),
	}
}

// observe is a no-op on unregistered components.
func (m *metrics) observe(component, action, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.actionsTotal.WithLabelValues(component, action, outcome).Inc()
	m.actionDuration.WithLabelValues(component, action).Observe(elapsed.Seconds())
}
