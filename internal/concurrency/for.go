// Package concurrency provides the fork-join parallel loop the extraction
// routines run on. Iterations are independent by contract: each chunk reads
// and writes only its own index range, so the loop needs no locks, only a
// completion barrier.
package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ForConfig controls how a parallel loop is split across workers.
type ForConfig struct {
	Workers   int
	Threshold int
	MinChunk  int
	MaxChunk  int
}

// DefaultForConfig returns sensible defaults: one worker per CPU, chunks
// sized to keep scheduling overhead below the per-element work.
func DefaultForConfig() ForConfig {
	return ForConfig{
		Workers:   runtime.NumCPU(),
		Threshold: 2048,
		MinChunk:  64,
		MaxChunk:  8192,
	}
}

func (c ForConfig) normalize() ForConfig {
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	if c.MinChunk < 1 {
		c.MinChunk = 1
	}
	if c.MaxChunk < c.MinChunk {
		c.MaxChunk = c.MinChunk
	}
	return c
}

// For runs fn over [0, n) split into contiguous chunks, each chunk executed
// exactly once by some worker. Chunks are handed out through an atomic
// cursor, so a worker that finishes early picks up remaining chunks instead
// of idling. There is no ordering guarantee between chunks and no
// cancellation; the call returns once every index has been covered.
func For(cfg ForConfig, n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	cfg = cfg.normalize()
	if cfg.Workers == 1 || n < cfg.Threshold {
		fn(0, n)
		return
	}

	// Aim for a few chunks per worker so uneven per-element cost balances out.
	chunk := n / (cfg.Workers * 4)
	if chunk < cfg.MinChunk {
		chunk = cfg.MinChunk
	}
	if chunk > cfg.MaxChunk {
		chunk = cfg.MaxChunk
	}

	workers := cfg.Workers
	if max := (n + chunk - 1) / chunk; workers > max {
		workers = max
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				start := int(cursor.Add(int64(chunk))) - chunk
				if start >= n {
					return
				}
				end := start + chunk
				if end > n {
					end = n
				}
				fn(start, end)
			}
		}()
	}
	wg.Wait()
}
