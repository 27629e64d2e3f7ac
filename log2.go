package bvh

import "math/bits"

// RoundUpLog2 returns the smallest k such that 2^k >= p. Used to size
// fixed-capacity auxiliary structures, e.g. the traversal stack depth for a
// hierarchy over a known primitive count. RoundUpLog2(0) is 0.
func RoundUpLog2(p uint64) uint {
	if p <= 1 {
		return 0
	}
	return uint(bits.Len64(p - 1))
}

// NextPowerOfTwo returns the smallest power of two >= p, with p = 0
// mapping to 1.
func NextPowerOfTwo(p uint64) uint64 {
	return uint64(1) << RoundUpLog2(p)
}

// IsPowerOfTwo reports whether p has exactly one bit set.
func IsPowerOfTwo(p uint64) bool {
	return p > 0 && p&(p-1) == 0
}
