// Command bvhstat runs the bounds/centroid extraction pass over a triangle
// soup and reports the statistics a hierarchy builder would start from:
// primitive count, scene bounds, centroid bounds, and extraction timing.
// The soup is read from a parquet file, or generated procedurally when no
// input is given.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kostinio/bvh"
	"github.com/kostinio/bvh/geom"
	"github.com/kostinio/bvh/internal/logging"
	"github.com/kostinio/bvh/mesh"
	"github.com/kostinio/bvh/stat"
)

func main() {
	input := flag.String("input", "", "Parquet triangle soup to analyze (empty: generate)")
	count := flag.Int("count", 100000, "Triangle count when generating a soup")
	seed := flag.Int64("seed", 1, "Seed for the generated soup")
	flag.Parse()

	cfg, err := LoadConfig()
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.Config{Format: cfg.LogFormat, Level: cfg.LogLevel})
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.MetricsAddr != "" {
		go func() {
			logger.Info("starting metrics server", zap.String("address", cfg.MetricsAddr))
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	var tris []mesh.Triangle[float32]
	if *input != "" {
		tris, err = mesh.ReadTriangles(*input)
		if err != nil {
			logger.Error("loading triangle soup failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("loaded triangle soup", zap.String("path", *input), zap.Int("triangles", len(tris)))
	} else {
		tris = generateSoup(*count, *seed)
		logger.Info("generated triangle soup", zap.Int("triangles", len(tris)), zap.Int64("seed", *seed))
	}

	var stats stat.BuildStats

	start := time.Now()
	boxes, centers := bvh.BoundsAndCentersOpts[float32](tris, bvh.ExtractOptions{
		Workers:   cfg.Workers,
		Threshold: cfg.Threshold,
	})
	elapsed := time.Since(start)
	stat.ExtractionDurationSeconds.Observe(elapsed.Seconds())
	stats.AddPrimitives(int64(len(tris)))

	scene := geom.Empty[float32]()
	for _, b := range boxes {
		scene = scene.Union(b)
	}

	xs, ys, zs := geom.Deinterleave(centers)
	centroidBounds := geom.BatchBounds(xs, ys, zs)

	// Depth of a balanced hierarchy over this soup, the traversal stack bound.
	stats.ObserveTask(int64(bvh.RoundUpLog2(uint64(len(tris)))), 1)
	stats.Publish()

	logger.Info("extraction complete",
		zap.Int("triangles", len(tris)),
		zap.Duration("elapsed", elapsed),
		zap.Float32s("scene_min", []float32{scene.Min.X, scene.Min.Y, scene.Min.Z}),
		zap.Float32s("scene_max", []float32{scene.Max.X, scene.Max.Y, scene.Max.Z}),
		zap.Float32s("centroid_min", []float32{centroidBounds.Min.X, centroidBounds.Min.Y, centroidBounds.Min.Z}),
		zap.Float32s("centroid_max", []float32{centroidBounds.Max.X, centroidBounds.Max.Y, centroidBounds.Max.Z}),
		zap.Int64("balanced_depth", stats.MaxDepth.Load()),
	)
}

// generateSoup produces small random triangles scattered in the unit cube.
func generateSoup(n int, seed int64) []mesh.Triangle[float32] {
	rng := rand.New(rand.NewSource(seed))
	tris := make([]mesh.Triangle[float32], n)
	for i := range tris {
		base := geom.V3(rng.Float32(), rng.Float32(), rng.Float32())
		tris[i] = mesh.Triangle[float32]{
			V0: base,
			V1: base.Add(geom.V3(rng.Float32()*0.01, rng.Float32()*0.01, rng.Float32()*0.01)),
			V2: base.Add(geom.V3(rng.Float32()*0.01, rng.Float32()*0.01, rng.Float32()*0.01)),
		}
	}
	return tris
}
