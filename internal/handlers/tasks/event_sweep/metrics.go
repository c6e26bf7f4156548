package event_sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "simulation_events_processed_total",
			Help: "Scheduled events executed by the background sweep",
		},
	)

	eventsFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "simulation_events_failed_total",
			Help: "Scheduled events that failed during the background sweep",
		},
	)
)
