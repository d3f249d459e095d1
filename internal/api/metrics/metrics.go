// Package metrics defines the custom Prometheus metrics for the cat registry
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catregistry"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// CatsCreatedTotal counts successfully created cats.
var CatsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cats_created_total",
		Help:      "Total number of cats created.",
	},
)

// GeoQueriesTotal counts bounding-box queries.
// Label:
//   - result: "ok", "invalid" (bad corner input), or "error"
var GeoQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geo_queries_total",
		Help:      "Total number of bounding-box queries, labelled by result.",
	},
	[]string{"result"},
)

// UploadsTotal counts stored cat images.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of cat images written to the file store.",
	},
)
