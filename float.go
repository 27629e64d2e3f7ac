package bvh

import (
	"math"

	"github.com/kostinio/bvh/geom"
)

// IndexBits reports the width in bits of the unsigned integer type whose
// storage mirrors T: 32 for float32, 64 for float64. Resolved from the type
// parameter alone, so a mismatched reinterpretation cannot be expressed.
func IndexBits[T geom.Scalar]() int {
	// 2^24+1 is representable at double precision but rounds away at single
	// precision, which identifies the width for every type in the Scalar set.
	if T(1<<24+1) == T(1<<24) {
		return 32
	}
	return 64
}

// Bits returns the IEEE-754 bit pattern of x, zero-extended to 64 bits for
// single precision. The inverse is FromBits.
func Bits[T geom.Scalar](x T) uint64 {
	if IndexBits[T]() == 32 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits reinterprets a bit pattern produced by Bits back into T.
// For single precision only the low 32 bits participate.
func FromBits[T geom.Scalar](b uint64) T {
	if IndexBits[T]() == 32 {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// ProductSign returns x with its sign bit replaced by the sign of x*y,
// equivalent to copysign(x, x*y) but computed on the bit patterns directly.
// The product is never formed, so it cannot overflow, underflow, or round.
// Holds bit-exactly for all finite values including signed zeros; when either
// operand is NaN the result's sign is unspecified.
func ProductSign[T geom.Scalar](x, y T) T {
	if IndexBits[T]() == 32 {
		const signMask = uint32(1) << 31
		xb := math.Float32bits(float32(x))
		yb := math.Float32bits(float32(y))
		return T(math.Float32frombits(xb ^ (yb & signMask)))
	}
	const signMask = uint64(1) << 63
	xb := math.Float64bits(float64(x))
	yb := math.Float64bits(float64(y))
	return T(math.Float64frombits(xb ^ (yb & signMask)))
}

// MultiplyAdd computes x*y + z through the hardware fused multiply-add path
// when the platform has one. The result may differ from the double-rounded
// x*y + z by up to one ulp; callers comparing against a plain multiply-add
// must tolerate that difference.
func MultiplyAdd[T geom.Scalar](x, y, z T) T {
	if IndexBits[T]() == 32 {
		// The product of two float32 values is exact in float64, so a single
		// rounding back to float32 lands within one ulp of a fused result.
		return T(float32(math.FMA(float64(x), float64(y), float64(z))))
	}
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

// RadixKey maps x to an unsigned key whose integer ordering matches the
// total order of floats: negative values have all bits flipped, positive
// values get the sign bit set. Feeding these keys to a radix sort orders
// centroid coordinates without any float comparisons.
func RadixKey[T geom.Scalar](x T) uint64 {
	b := Bits(x)
	signBit := uint64(1) << (IndexBits[T]() - 1)
	if b&signBit != 0 {
		width := signBit | (signBit - 1)
		return ^b & width
	}
	return b | signBit
}
