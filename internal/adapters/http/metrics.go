package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/automatalab/automata/pkg/domain"
)

type metrics struct {
	simulations *prometheus.CounterVec
	inputLength prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_simulations_total",
				Help: "Total number of simulation runs by machine and verdict",
			},
			[]string{"definition", "verdict"},
		),
		inputLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "automata_input_length_chars",
				Help:    "Length of simulated input strings",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
	reg.MustRegister(m.simulations, m.inputLength)
	return m
}

func (m *metrics) observe(definition, input string, res *domain.Result) {
	verdict := "rejected"
	switch {
	case res.Err != nil:
		verdict = "error"
	case res.Accepted:
		verdict = "accepted"
	}
	m.simulations.WithLabelValues(definition, verdict).Inc()
	m.inputLength.Observe(float64(len([]rune(input))))
}
