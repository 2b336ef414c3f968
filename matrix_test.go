package canvas

import (
	"math"
	"testing"

	"github.com/gogpu/canvas/internal/geom"
)

func matrixNear(a, b Matrix) bool {
	const eps = 1e-9
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps && math.Abs(a.C-b.C) < eps &&
		math.Abs(a.D-b.D) < eps && math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, -5), 1, 1, 11, -4},
		{"scale", Scale(2, 3), 1, 1, 2, 3},
		{"rotate quarter", Rotate(math.Pi / 2), 1, 0, 0, 1},
		{"components", Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}, 1, 1, 9, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.TransformPoint(tt.x, tt.y)
			if math.Abs(x-tt.wx) > 1e-12 || math.Abs(y-tt.wy) > 1e-12 {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// m.Multiply(o) applies o first.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("TransformPoint = (%v, %v), want (12, 2)", x, y)
	}
	if !matrixNear(m, Matrix{A: 2, D: 2, E: 10}) {
		t.Errorf("Multiply = %+v", m)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Matrix{A: 2, B: 1, C: -1, D: 3, E: 4, F: 5}
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() failed")
	}
	if got := m.Multiply(inv); !matrixNear(got, Identity()) {
		t.Errorf("m * m^-1 = %+v, want identity", got)
	}
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert() of a singular matrix succeeded")
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Identity().IsIdentity() || Translate(1, 0).IsIdentity() {
		t.Error("IsIdentity wrong")
	}
	if !Identity().IsFinite() || (Matrix{A: math.NaN()}).IsFinite() || (Matrix{F: math.Inf(1)}).IsFinite() {
		t.Error("IsFinite wrong")
	}
}

func TestMatrixGeomRoundTrip(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	if got := fromGeom(m.geom()); got != m {
		t.Errorf("fromGeom(geom()) = %+v, want %+v", got, m)
	}
	p := m.geom().Apply(geom.Pt(1, 1))
	if p.X != 9 || p.Y != 12 {
		t.Errorf("geom().Apply(1, 1) = %+v, want (9, 12)", p)
	}
}
