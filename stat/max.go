// Package stat provides lock-free monotonic statistics gathered by
// concurrent build tasks, and their publication as Prometheus metrics.
//
// The maximum types share one contract: Observe(v) atomically raises the
// stored value to v if v is larger, through a compare-and-retry loop rather
// than a lock. A failed compare-and-swap only means another task raised the
// value first; the loop re-reads and either retries or finds nothing left to
// do, so the operation is non-blocking and never fails. Values are
// monotonically non-decreasing over the life of the scalar. NaN candidates
// are outside the contract: Observe is restricted to totally ordered inputs.
package stat

import (
	"math"
	"sync/atomic"
)

// Int64 is a lock-free monotonic maximum over int64. The zero value holds
// math.MinInt64 observations away from any real input, i.e. it starts at 0;
// use Reset to start from a different floor.
type Int64 struct {
	v atomic.Int64
}

// Observe raises the maximum to x if x is larger.
func (m *Int64) Observe(x int64) {
	for {
		cur := m.v.Load()
		if cur >= x {
			return
		}
		if m.v.CompareAndSwap(cur, x) {
			return
		}
	}
}

// Load returns the current maximum.
func (m *Int64) Load() int64 {
	return m.v.Load()
}

// Reset sets the scalar to x, discarding prior observations.
// Not safe to race with Observe.
func (m *Int64) Reset(x int64) {
	m.v.Store(x)
}

// Float64 is a lock-free monotonic maximum over float64, stored as IEEE-754
// bits in a single atomic word. The zero value starts at +0.0.
type Float64 struct {
	bits atomic.Uint64
}

// Observe raises the maximum to x if x is larger. Comparison happens on the
// float values, not the bit patterns, so mixed-sign inputs order correctly.
func (m *Float64) Observe(x float64) {
	for {
		cur := m.bits.Load()
		if math.Float64frombits(cur) >= x {
			return
		}
		if m.bits.CompareAndSwap(cur, math.Float64bits(x)) {
			return
		}
	}
}

// Load returns the current maximum.
func (m *Float64) Load() float64 {
	return math.Float64frombits(m.bits.Load())
}

// Reset sets the scalar to x, discarding prior observations.
// Not safe to race with Observe.
func (m *Float64) Reset(x float64) {
	m.bits.Store(math.Float64bits(x))
}

// Float32 is a lock-free monotonic maximum over float32.
// The zero value starts at +0.0.
type Float32 struct {
	bits atomic.Uint32
}

// Observe raises the maximum to x if x is larger.
func (m *Float32) Observe(x float32) {
	for {
		cur := m.bits.Load()
		if math.Float32frombits(cur) >= x {
			return
		}
		if m.bits.CompareAndSwap(cur, math.Float32bits(x)) {
			return
		}
	}
}

// Load returns the current maximum.
func (m *Float32) Load() float32 {
	return math.Float32frombits(m.bits.Load())
}

// Reset sets the scalar to x, discarding prior observations.
// Not safe to race with Observe.
func (m *Float32) Reset(x float32) {
	m.bits.Store(math.Float32bits(x))
}
