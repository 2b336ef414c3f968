package canvas

import (
	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/path"
)

// Path2D is reusable path geometry in its own user space. It is applied
// under the context transform at the time it is filled, stroked, clipped
// or hit-tested.
type Path2D struct {
	p *path.Path
}

// NewPath2D returns an empty path.
func NewPath2D() *Path2D {
	return &Path2D{p: path.New()}
}

// NewPath2DFrom returns a copy of other.
func NewPath2DFrom(other *Path2D) *Path2D {
	if other == nil {
		return NewPath2D()
	}
	return &Path2D{p: other.p.Clone()}
}

// AddPath appends other, optionally transformed by m.
func (p *Path2D) AddPath(other *Path2D, m ...Matrix) error {
	if other == nil {
		return nil
	}
	xf := geom.Identity()
	if len(m) > 0 {
		if !m[0].IsFinite() {
			return ErrNonFinite
		}
		xf = m[0].geom()
	}
	p.p.Append(other.p, xf)
	return nil
}

// Empty reports whether the path has no segments.
func (p *Path2D) Empty() bool { return p.p.Empty() }

// MoveTo starts a new subpath.
func (p *Path2D) MoveTo(x, y float64) error { return p.p.MoveTo(x, y) }

// LineTo adds a line to (x, y).
func (p *Path2D) LineTo(x, y float64) error { return p.p.LineTo(x, y) }

// QuadraticCurveTo adds a quadratic Bézier curve.
func (p *Path2D) QuadraticCurveTo(cpx, cpy, x, y float64) error {
	return p.p.QuadTo(cpx, cpy, x, y)
}

// BezierCurveTo adds a cubic Bézier curve.
func (p *Path2D) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) error {
	return p.p.CubicTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// Arc adds a circular arc.
func (p *Path2D) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) error {
	return p.p.Arc(x, y, radius, startAngle, endAngle, counterclockwise)
}

// ArcTo adds a fillet between the current point, (x1, y1) and (x2, y2).
func (p *Path2D) ArcTo(x1, y1, x2, y2, radius float64) error {
	return p.p.ArcTo(x1, y1, x2, y2, radius)
}

// Ellipse adds an elliptical arc.
func (p *Path2D) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64, counterclockwise bool) error {
	return p.p.Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle, counterclockwise)
}

// Rect adds a closed rectangle.
func (p *Path2D) Rect(x, y, w, h float64) error { return p.p.Rect(x, y, w, h) }

// RoundRect adds a closed rectangle with one to four corner radii.
func (p *Path2D) RoundRect(x, y, w, h float64, radii ...float64) error {
	return p.p.RoundRect(x, y, w, h, radii...)
}

// ClosePath closes the current subpath.
func (p *Path2D) ClosePath() { p.p.Close() }

// device returns the path's elements under the transform m.
func (p *Path2D) device(m geom.Matrix) []path.Element {
	return path.Transform(p.p.Elements(), m)
}
