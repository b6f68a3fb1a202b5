package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WeatherFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherlookup_weather_fetches_total",
			Help: "Total weather source fetches",
		},
		[]string{"source", "outcome"},
	)

	WeatherFetchLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weatherlookup_weather_fetch_latency_seconds",
			Help:    "Weather source fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	ProfileUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherlookup_profile_updates_total",
			Help: "Total profile create and update operations",
		},
		[]string{"op"},
	)

	FavoriteChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherlookup_favorite_changes_total",
			Help: "Total favorite city additions and removals",
		},
		[]string{"op", "status"},
	)

	CardImagesRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "weatherlookup_card_images_rendered_total",
			Help: "Total current-conditions card images rendered",
		},
	)
)
