package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/next-trace/scg-core/erno"
	"github.com/next-trace/scg-core/try"
)

// Metrics counts activations and their failures.
type Metrics struct {
	names *erno.Table

	activations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics builds unregistered collectors under namespace. names, if
// non-nil, labels caller-defined codes by name.
func NewMetrics(namespace string, names *erno.Table) *Metrics {
	return &Metrics{
		names: names,
		activations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "activation",
				Name:      "total",
				Help:      "Activations by operation and outcome.",
			},
			[]string{"op", "outcome"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "activation",
				Name:      "failures_total",
				Help:      "Failed activations by operation and error kind.",
			},
			[]string{"op", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "activation",
				Name:      "duration_seconds",
				Help:      "Activation duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
}

// Register registers the collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.activations, m.failures, m.duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

// Catch returns a Catch option counting the failure of op by kind.
func (m *Metrics) Catch(op string) try.Option {
	return try.Catch(func(f *try.Frame) {
		m.failures.WithLabelValues(op, kindName(m.names, f.Code())).Inc()
	})
}

// Run runs guard as op, recording outcome and duration.
func (m *Metrics) Run(op string, guard func(*try.Frame), opts ...try.Option) erno.Code {
	start := time.Now()
	opts = append(opts[:len(opts):len(opts)], m.Catch(op))

	code := try.Run(guard, opts...)

	m.activations.WithLabelValues(op, outcome(code)).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	return code
}

func outcome(c erno.Code) string {
	if c == erno.None {
		return "ok"
	}

	return "failed"
}
