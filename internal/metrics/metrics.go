// Package metrics exposes the service's Prometheus collectors. All
// collectors register themselves via promauto at init time and are served
// from the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PagesRendered counts resolved invitation pages by template slug.
	PagesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ceremony_pages_rendered_total",
			Help: "Total invitation pages resolved and served",
		},
		[]string{"template"},
	)

	// EventFetches counts event-data fetches by outcome
	// (ok, not_found, unavailable, demo, cache_hit).
	EventFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ceremony_event_fetches_total",
			Help: "Total event data fetch attempts by outcome",
		},
		[]string{"outcome"},
	)

	// EventFetchDuration tracks remote event API latency.
	EventFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "ceremony_event_fetch_duration_seconds",
			Help: "Duration of remote event data fetches",
		},
	)

	// RSVPForwards counts RSVP submissions forwarded to the event API
	// by result (ok, error).
	RSVPForwards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ceremony_rsvp_forwards_total",
			Help: "Total RSVP submissions forwarded upstream",
		},
		[]string{"result"},
	)
)
