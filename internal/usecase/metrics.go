package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	liveRecomputesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geoquote_live_recomputes_total",
		Help: "Number of live-channel measurement/bid recomputations.",
	})

	throttledUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geoquote_throttled_updates_total",
		Help: "Number of pointer moves sampled but deferred by the live throttle.",
	})

	rejectedShapesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geoquote_rejected_shapes_total",
		Help: "Number of finalized strokes and click sequences dropped as degenerate.",
	})
)
