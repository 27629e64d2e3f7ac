package geom

import (
	"math"
	"testing"
)

func TestVec3Ops(t *testing.T) {
	a := V3[float64](1, 2, 3)
	b := V3[float64](4, -5, 6)

	if got := a.Add(b); got != V3[float64](5, -3, 9) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != V3[float64](-3, 7, -3) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != V3[float64](2, 4, 6) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(b); got != 4-10+18 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Min(b); got != V3[float64](1, -5, 3) {
		t.Errorf("Min = %+v", got)
	}
	if got := a.Max(b); got != V3[float64](4, 2, 6) {
		t.Errorf("Max = %+v", got)
	}
}

func TestEmptyBoxIsExtendIdentity(t *testing.T) {
	b := Empty[float32]()
	if !math.IsInf(float64(b.Min.X), 1) || !math.IsInf(float64(b.Max.X), -1) {
		t.Fatalf("Empty() = %+v, want inverted infinite box", b)
	}

	p := V3[float32](3, -1, 2)
	got := b.Extend(p)
	want := Box[float32]{Min: p, Max: p}
	if got != want {
		t.Errorf("Empty().Extend(%+v) = %+v, want degenerate box at point", p, got)
	}
}

func TestBoxExtendUnion(t *testing.T) {
	b := BoxOf(V3[float64](0, 0, 0), V3[float64](1, 2, 3))
	if b.Min != V3[float64](0, 0, 0) || b.Max != V3[float64](1, 2, 3) {
		t.Fatalf("BoxOf = %+v", b)
	}

	o := BoxOf(V3[float64](-1, 1, 1), V3[float64](0.5, 5, 2))
	u := b.Union(o)
	if u.Min != V3[float64](-1, 0, 0) || u.Max != V3[float64](1, 5, 3) {
		t.Errorf("Union = %+v", u)
	}
}

func TestBoxCenterDiagonalHalfArea(t *testing.T) {
	b := Box[float64]{Min: V3[float64](-0.5, -0.5, -0.5), Max: V3[float64](0.5, 0.5, 0.5)}

	if got := b.Center(); got != V3[float64](0, 0, 0) {
		t.Errorf("Center = %+v", got)
	}
	if got := b.Diagonal(); got != V3[float64](1, 1, 1) {
		t.Errorf("Diagonal = %+v", got)
	}
	// Unit cube surface area is 6; half area 3.
	if got := b.HalfArea(); got != 3 {
		t.Errorf("HalfArea = %v, want 3", got)
	}
}

func TestBoxContainsOverlaps(t *testing.T) {
	b := BoxOf(V3[float32](0, 0, 0), V3[float32](2, 2, 2))

	if !b.Contains(V3[float32](1, 1, 1)) || !b.Contains(V3[float32](0, 0, 0)) {
		t.Error("Contains rejected interior/boundary point")
	}
	if b.Contains(V3[float32](3, 1, 1)) {
		t.Error("Contains accepted exterior point")
	}

	if !b.Overlaps(BoxOf(V3[float32](1, 1, 1), V3[float32](3, 3, 3))) {
		t.Error("Overlaps rejected intersecting box")
	}
	if b.Overlaps(BoxOf(V3[float32](5, 5, 5), V3[float32](6, 6, 6))) {
		t.Error("Overlaps accepted disjoint box")
	}
}
