package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CandidatesScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_candidates_scanned_total",
			Help: "Total number of candidates loaded into the matching pipeline",
		},
	)

	CandidatesFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_candidates_filtered_total",
			Help: "Total number of candidates dropped, by pipeline stage",
		},
		[]string{"stage"},
	)

	CandidatesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_candidates_scored_total",
			Help: "Total number of candidates that reached the compatibility scorer",
		},
	)

	MatchesPersisted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_matches_persisted_total",
			Help: "Total number of match rows upserted",
		},
	)

	ComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "matching_compute_duration_seconds",
			Help: "Duration of a full FindMatches pipeline run in seconds",
		},
	)
)

// Filter stage labels for CandidatesFiltered.
const (
	StageHardFilter = "hard_filter"
	StageThreshold  = "threshold"
)
