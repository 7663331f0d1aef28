package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	keypadEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keypad_events_total",
			Help: "Total number of keypad events by kind (ignored = unrecognised key)",
		},
		[]string{"kind"},
	)

	keypadEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keypad_evaluations_total",
			Help: "Total number of evaluations by outcome",
		},
		[]string{"outcome"},
	)

	keypadSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keypad_sessions_active",
			Help: "Number of live keypad sessions",
		},
	)
)
