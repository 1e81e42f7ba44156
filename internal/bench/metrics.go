package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nathanfaucett/persistent-list/internal/build"
)

type metrics struct {
	roundDuration *prometheus.HistogramVec
	rounds        *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		roundDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: build.ProjectName,
			Name:      "bench_round_duration_seconds",
			Help:      "Wall-clock duration of one benchmark round, averaged over a sample.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12), // 100ns to ~420ms
		}, []string{"scenario"}),
		rounds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: build.ProjectName,
			Name:      "bench_rounds_total",
			Help:      "Number of benchmark rounds executed.",
		}, []string{"scenario"}),
	}
}
