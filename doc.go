// Package bvh provides the low-level primitives a bounding volume hierarchy
// builder is made of: bit-exact floating point helpers, a lock-free maximum
// reduction for cross-task statistics, permutation application for leaf
// geometry, and parallel extraction of per-primitive bounding boxes and
// centroids. The hierarchy itself, the split heuristics, and traversal are
// the caller's business; this package supplies the pieces they lean on.
//
// The numeric helpers favor precondition contracts over runtime error
// signaling. An invalid permutation handed to Shuffle, or a NaN candidate
// handed to a stat maximum, produces an unspecified result rather than an
// error. These are hot leaf utilities, not user-facing validation surfaces.
package bvh
