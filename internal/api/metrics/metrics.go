// Package metrics defines and registers all custom Prometheus metrics for
// the exercise tracker API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exercise_tracker"

// UsersCreatedTotal counts successfully registered users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// UsersResetTotal counts reset operations on the users collection.
var UsersResetTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_reset_total",
		Help:      "Total number of destructive resets of the users collection.",
	},
)

// ExercisesRecordedTotal counts exercises appended to user logs.
var ExercisesRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_recorded_total",
		Help:      "Total number of exercise entries appended.",
	},
)

// LogQueriesTotal counts log retrievals.
// Label:
//   - filtered: "true" when both date bounds were supplied, else "false"
var LogQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_queries_total",
		Help:      "Total number of exercise log retrievals, by filter usage.",
	},
	[]string{"filtered"},
)

// ExerciseDurationMinutes observes the duration of each recorded exercise.
var ExerciseDurationMinutes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "exercise_duration_minutes",
		Help:      "Distribution of recorded exercise durations in minutes.",
		Buckets:   []float64{5, 10, 15, 30, 45, 60, 90, 120, 180},
	},
)
