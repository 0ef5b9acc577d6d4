package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hackhub"

// Registry holds every hackhub metric and is served on /metrics.
var Registry = prometheus.NewRegistry()

// EventsCreated counts event creation attempts by result: created, invalid or failed.
var EventsCreated = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Event creation attempts by result",
	},
	[]string{"result"},
)

// EventCreateDuration records how long the creation transaction takes.
var EventCreateDuration = promauto.With(Registry).NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_create_duration_seconds",
		Help:      "Duration of the event creation transaction in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)

// ApplicationsSubmitted counts event applications by result.
var ApplicationsSubmitted = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Event applications by result",
	},
	[]string{"result"},
)

// ProjectsSubmitted counts project submissions by result.
var ProjectsSubmitted = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_submitted_total",
		Help:      "Project submissions by result",
	},
	[]string{"result"},
)

// EmailsSent counts outgoing notification emails by template and result.
var EmailsSent = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Notification emails by template and result",
	},
	[]string{"template", "result"},
)

// IdempotentReplays counts responses served from the idempotency cache.
var IdempotentReplays = promauto.With(Registry).NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Responses replayed for a repeated Idempotency-Key",
	},
)

// RateLimited counts requests rejected by the rate limiter.
var RateLimited = promauto.With(Registry).NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Requests rejected with 429",
	},
)

// Init registers the Go runtime and process collectors.
func Init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}
