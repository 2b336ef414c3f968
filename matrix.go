package canvas

import (
	"math"

	"github.com/gogpu/canvas/internal/geom"
)

// Matrix is a 2D affine transform with the component names of the Canvas
// API (DOMMatrix):
//
//	| a  c  e |
//	| b  d  f |
//
// which maps
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale returns a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate returns a rotation by angle radians, clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply returns m * other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return fromGeom(m.geom().Multiply(other.geom()))
}

// TransformPoint applies the matrix to (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Invert returns the inverse and whether it exists.
func (m Matrix) Invert() (Matrix, bool) {
	inv, ok := m.geom().Invert()
	if !ok {
		return Matrix{}, false
	}
	return fromGeom(inv), true
}

// IsIdentity reports whether m is the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether every component is finite.
func (m Matrix) IsFinite() bool {
	return geom.Finite(m.A, m.B, m.C, m.D, m.E, m.F)
}

func (m Matrix) geom() geom.Matrix {
	return geom.Matrix{A: m.A, B: m.C, C: m.E, D: m.B, E: m.D, F: m.F}
}

func fromGeom(g geom.Matrix) Matrix {
	return Matrix{A: g.A, B: g.D, C: g.B, D: g.E, E: g.C, F: g.F}
}
