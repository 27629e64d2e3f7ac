package stat

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BuildMaxDepth tracks the deepest subtree seen across build tasks
	BuildMaxDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bvh_build_max_depth",
			Help: "Maximum subtree depth observed during hierarchy construction",
		},
	)

	// BuildMaxLeafSize tracks the largest leaf seen across build tasks
	BuildMaxLeafSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bvh_build_max_leaf_size",
			Help: "Maximum leaf primitive count observed during hierarchy construction",
		},
	)

	// PrimitivesProcessed counts primitives run through extraction
	PrimitivesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bvh_primitives_processed_total",
			Help: "Total primitives whose bounds and centroids have been extracted",
		},
	)

	// ExtractionDurationSeconds measures the bounds/centroid extraction pass
	ExtractionDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bvh_extraction_duration_seconds",
			Help:    "Duration of the parallel bounds and centroid extraction pass",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// BuildStats aggregates the per-build statistics concurrent tasks report.
// All fields are safe to update from any number of goroutines with no
// external synchronization; the maxima use the lock-free Observe loop.
type BuildStats struct {
	MaxDepth    Int64
	MaxLeafSize Int64
	Primitives  atomic.Int64
}

// ObserveTask records one finished build task: the depth of the subtree it
// produced and the size of its largest leaf.
func (s *BuildStats) ObserveTask(depth, leafSize int64) {
	s.MaxDepth.Observe(depth)
	s.MaxLeafSize.Observe(leafSize)
}

// AddPrimitives records primitives processed by an extraction pass.
func (s *BuildStats) AddPrimitives(n int64) {
	s.Primitives.Add(n)
	PrimitivesProcessed.Add(float64(n))
}

// Publish pushes the current maxima to the Prometheus gauges.
func (s *BuildStats) Publish() {
	BuildMaxDepth.Set(float64(s.MaxDepth.Load()))
	BuildMaxLeafSize.Set(float64(s.MaxLeafSize.Load()))
}
