package shell

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	questionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "texttosql_questions_total",
			Help: "Submitted questions by final status and failing stage.",
		},
		[]string{"status", "stage"},
	)

	stageDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "texttosql_stage_duration_seconds",
			Help:    "Latency of the translate and execute stages.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(questionsTotal, stageDurationSeconds)
}

func countOutcome(out Outcome) {
	questionsTotal.WithLabelValues(string(out.Status), out.Stage).Inc()
}

func observeStage(stage string, d time.Duration) {
	stageDurationSeconds.WithLabelValues(stage).Observe(d.Seconds())
}
