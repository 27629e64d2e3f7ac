// Package geom provides the vector and axis-aligned box types shared by the
// BVH construction primitives. Types are generic over the scalar precision so
// single and double precision hierarchies share one implementation.
package geom

// Scalar is the constraint for supported floating point precisions.
// Its type set matches hwy.Floats so coordinate slices flow directly into
// the vectorized batch kernels.
type Scalar interface {
	~float32 | ~float64
}

// Vec3 is a three-component point or direction.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 constructs a Vec3 from its components.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns v + o component-wise.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o component-wise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Min returns the component-wise minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{minScalar(v.X, o.X), minScalar(v.Y, o.Y), minScalar(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{maxScalar(v.X, o.X), maxScalar(v.Y, o.Y), maxScalar(v.Z, o.Z)}
}

func minScalar[T Scalar](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxScalar[T Scalar](a, b T) T {
	if b > a {
		return b
	}
	return a
}
