package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "seckill"

// Metrics holds the counters for the admission path and the order worker.
type Metrics struct {
	admissions    *prometheus.CounterVec
	workerResults *prometheus.CounterVec
	recoveries    prometheus.Counter
	deadLettered  prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "gate", Name: "admissions_total",
			Help: "Admission gate verdicts by result.",
		}, []string{"result"}),
		workerResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "worker", Name: "records_total",
			Help: "Queue records handled by the order worker by outcome.",
		}, []string{"outcome"}),
		recoveries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "worker", Name: "recoveries_total",
			Help: "Times the worker entered pending-list recovery.",
		}),
		deadLettered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "worker", Name: "dead_lettered_total",
			Help: "Records moved to the dead-letter stream.",
		}),
	}
	reg.MustRegister(m.admissions, m.workerResults, m.recoveries, m.deadLettered)
	return m
}

// NewNop returns metrics bound to a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) Admission(result string) {
	m.admissions.WithLabelValues(result).Inc()
}

func (m *Metrics) WorkerOutcome(outcome string) {
	m.workerResults.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Recovery() {
	m.recoveries.Inc()
}

func (m *Metrics) DeadLettered() {
	m.deadLettered.Inc()
}
