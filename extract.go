package bvh

import (
	"github.com/kostinio/bvh/geom"
	"github.com/kostinio/bvh/internal/concurrency"
)

// Primitive is the capability a piece of geometry must expose to participate
// in hierarchy construction: its axis-aligned bounding box and a centroid
// driving the partitioning decisions.
type Primitive[T geom.Scalar] interface {
	Bounds() geom.Box[T]
	Center() geom.Vec3[T]
}

// ExtractOptions tunes the parallel extraction loop. The zero value selects
// the defaults (one worker per CPU, parallelism above a few thousand
// primitives).
type ExtractOptions struct {
	// Workers is the number of concurrent workers; 0 means one per CPU,
	// 1 forces sequential execution.
	Workers int
	// Threshold is the primitive count below which the loop runs inline;
	// 0 selects the default.
	Threshold int
}

// BoundsAndCenters computes the bounding box and centroid of every primitive,
// returning two freshly allocated arrays index-aligned with prims. This is
// the first pass of every build, touching each primitive exactly once, and
// the dominant cost before any partitioning can happen; the loop is split
// across workers since slot i depends only on prims[i].
func BoundsAndCenters[T geom.Scalar, P Primitive[T]](prims []P) ([]geom.Box[T], []geom.Vec3[T]) {
	return BoundsAndCentersOpts[T](prims, ExtractOptions{})
}

// BoundsAndCentersOpts is BoundsAndCenters with explicit loop tuning.
func BoundsAndCentersOpts[T geom.Scalar, P Primitive[T]](prims []P, opts ExtractOptions) ([]geom.Box[T], []geom.Vec3[T]) {
	boxes := make([]geom.Box[T], len(prims))
	centers := make([]geom.Vec3[T], len(prims))

	cfg := concurrency.DefaultForConfig()
	if opts.Workers != 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Threshold != 0 {
		cfg.Threshold = opts.Threshold
	}

	concurrency.For(cfg, len(prims), func(start, end int) {
		for i := start; i < end; i++ {
			boxes[i] = prims[i].Bounds()
			centers[i] = prims[i].Center()
		}
	})

	return boxes, centers
}
