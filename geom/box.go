package geom

import "math"

// Box is an axis-aligned bounding box holding its minimum and maximum corners.
type Box[T Scalar] struct {
	Min, Max Vec3[T]
}

// Empty returns the inverted box: +inf minimum, -inf maximum. Extending the
// empty box with any point yields the degenerate box at that point, so Empty
// is the identity element for Extend and Union.
func Empty[T Scalar]() Box[T] {
	inf := T(math.Inf(1))
	return Box[T]{
		Min: Vec3[T]{inf, inf, inf},
		Max: Vec3[T]{-inf, -inf, -inf},
	}
}

// BoxOf returns the smallest box containing all the given points.
func BoxOf[T Scalar](pts ...Vec3[T]) Box[T] {
	b := Empty[T]()
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// Extend returns the smallest box containing b and the point p.
func (b Box[T]) Extend(p Vec3[T]) Box[T] {
	return Box[T]{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box containing both b and o.
func (b Box[T]) Union(o Box[T]) Box[T] {
	return Box[T]{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Center returns the midpoint of the box.
func (b Box[T]) Center() Vec3[T] {
	return b.Min.Add(b.Max).Scale(T(0.5))
}

// Diagonal returns the extent of the box along each axis.
func (b Box[T]) Diagonal() Vec3[T] {
	return b.Max.Sub(b.Min)
}

// HalfArea returns half the surface area of the box, the quantity surface
// area heuristics compare when evaluating candidate splits.
func (b Box[T]) HalfArea() T {
	d := b.Diagonal()
	return d.X*(d.Y+d.Z) + d.Y*d.Z
}

// Contains reports whether p lies inside b, boundary included.
func (b Box[T]) Contains(p Vec3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps reports whether b and o intersect, boundary included.
func (b Box[T]) Overlaps(o Box[T]) bool {
	return !(b.Max.X < o.Min.X || b.Min.X > o.Max.X ||
		b.Max.Y < o.Min.Y || b.Min.Y > o.Max.Y ||
		b.Max.Z < o.Min.Z || b.Min.Z > o.Max.Z)
}
