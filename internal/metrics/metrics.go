package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipehub_recipes_created_total",
			Help: "Total number of recipes published",
		},
	)

	// InteractionToggles counts like/save/follow toggles by resulting state.
	InteractionToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipehub_interaction_toggles_total",
			Help: "Total number of like, save and follow toggles",
		},
		[]string{"kind", "state"}, // kind: like, save, follow; state: on, off
	)

	ReportsFiled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipehub_reports_filed_total",
			Help: "Total number of reports filed by users",
		},
		[]string{"target"}, // recipe, user
	)

	ModerationActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipehub_moderation_actions_total",
			Help: "Total number of moderation actions by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipehub_search_results",
			Help:    "Number of recipes returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
)

// RecordToggle records the state a toggle ended in.
func RecordToggle(kind string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	InteractionToggles.WithLabelValues(kind, state).Inc()
}

// RecordModeration records the outcome of an admin action.
func RecordModeration(action string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	ModerationActions.WithLabelValues(action, outcome).Inc()
}
