// Package mesh provides concrete primitive types for hierarchy construction
// and parquet ingestion of triangle soups.
package mesh

import (
	"github.com/kostinio/bvh/geom"
)

// Triangle is a single triangle given by its three vertices.
type Triangle[T geom.Scalar] struct {
	V0, V1, V2 geom.Vec3[T]
}

// Bounds returns the vertex-wise min/max box of the triangle.
func (t Triangle[T]) Bounds() geom.Box[T] {
	return geom.Box[T]{
		Min: t.V0.Min(t.V1).Min(t.V2),
		Max: t.V0.Max(t.V1).Max(t.V2),
	}
}

// Center returns the vertex mean of the triangle.
func (t Triangle[T]) Center() geom.Vec3[T] {
	return t.V0.Add(t.V1).Add(t.V2).Scale(T(1.0 / 3.0))
}

// Sphere is a primitive given by its center and radius.
type Sphere[T geom.Scalar] struct {
	Pos    geom.Vec3[T]
	Radius T
}

// Bounds returns the box inflated by the radius along every axis.
func (s Sphere[T]) Bounds() geom.Box[T] {
	r := geom.Vec3[T]{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return geom.Box[T]{Min: s.Pos.Sub(r), Max: s.Pos.Add(r)}
}

// Center returns the sphere's center.
func (s Sphere[T]) Center() geom.Vec3[T] {
	return s.Pos
}

// AABB is a box-shaped primitive, its own bounding volume.
type AABB[T geom.Scalar] struct {
	Box geom.Box[T]
}

// Bounds returns the wrapped box.
func (a AABB[T]) Bounds() geom.Box[T] {
	return a.Box
}

// Center returns the midpoint of the wrapped box.
func (a AABB[T]) Center() geom.Vec3[T] {
	return a.Box.Center()
}
