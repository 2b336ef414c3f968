// Package path implements the geometry kernel: path construction with
// arcs and Bézier curves, affine transformation, and adaptive flattening
// into polylines for the rasterizer and stroker.
package path

import (
	"errors"
	"math"

	"github.com/gogpu/canvas/internal/geom"
)

var (
	// ErrNonFinite is returned when a coordinate or size is NaN or infinite.
	ErrNonFinite = errors.New("path: non-finite argument")

	// ErrNegativeRadius is returned for arcs and rounded corners with a negative radius.
	ErrNegativeRadius = errors.New("path: negative radius")

	// ErrRadiiCount is returned when a rounded rectangle gets more than four radii.
	ErrRadiiCount = errors.New("path: expected one to four corner radii")
)

// Element represents an element in a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct{ Point geom.Point }

func (MoveTo) isElement() {}

// LineTo draws a line.
type LineTo struct{ Point geom.Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point geom.Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point geom.Point }

func (CubicTo) isElement() {}

// Arc is an elliptical arc kept in parametric form until flattening.
// Points on the arc are M applied to (cos θ, sin θ) for θ from Start to
// Start+Sweep. The arc always begins at the current point.
type Arc struct {
	M            geom.Matrix
	Start, Sweep float64
}

func (Arc) isElement() {}

// At returns the point at parameter angle theta.
func (a Arc) At(theta float64) geom.Point {
	sin, cos := math.Sincos(theta)
	return a.M.Apply(geom.Pt(cos, sin))
}

// End returns the final point of the arc.
func (a Arc) End() geom.Point {
	return a.At(a.Start + a.Sweep)
}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Path accumulates elements. Coordinates passed to the builder methods are
// mapped through the path's input transform before they are stored, so a
// Path can hold device-space geometry built from user-space calls.
type Path struct {
	elems      []Element
	start      geom.Point
	current    geom.Point
	hasCurrent bool
	xf         geom.Matrix
}

// New creates an empty path with an identity input transform.
func New() *Path {
	return &Path{xf: geom.Identity()}
}

// SetTransform sets the matrix applied to subsequent builder input.
func (p *Path) SetTransform(m geom.Matrix) {
	p.xf = m
}

// Elements returns the stored elements. The slice must not be modified.
func (p *Path) Elements() []Element {
	return p.elems
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elems) == 0
}

// HasCurrentPoint reports whether a subpath has been started.
func (p *Path) HasCurrentPoint() bool {
	return p.hasCurrent
}

// CurrentPoint returns the last point in stored coordinates.
func (p *Path) CurrentPoint() geom.Point {
	return p.current
}

// Reset removes all elements and forgets the current point.
func (p *Path) Reset() {
	p.elems = p.elems[:0]
	p.start = geom.Point{}
	p.current = geom.Point{}
	p.hasCurrent = false
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	c := *p
	c.elems = append([]Element(nil), p.elems...)
	return &c
}

// MoveTo begins a new subpath.
func (p *Path) MoveTo(x, y float64) error {
	if !geom.Finite(x, y) {
		return ErrNonFinite
	}
	p.moveTo(p.xf.Apply(geom.Pt(x, y)))
	return nil
}

func (p *Path) moveTo(pt geom.Point) {
	p.elems = append(p.elems, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasCurrent = true
}

// ensureSubpath starts a subpath at pt when there is no current point.
func (p *Path) ensureSubpath(pt geom.Point) {
	if !p.hasCurrent {
		p.moveTo(pt)
	}
}

// LineTo adds a line to the current subpath, or starts one at the point.
func (p *Path) LineTo(x, y float64) error {
	if !geom.Finite(x, y) {
		return ErrNonFinite
	}
	p.lineTo(p.xf.Apply(geom.Pt(x, y)))
	return nil
}

func (p *Path) lineTo(pt geom.Point) {
	if !p.hasCurrent {
		p.moveTo(pt)
		return
	}
	p.elems = append(p.elems, LineTo{Point: pt})
	p.current = pt
}

// QuadTo adds a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) error {
	if !geom.Finite(cx, cy, x, y) {
		return ErrNonFinite
	}
	c := p.xf.Apply(geom.Pt(cx, cy))
	pt := p.xf.Apply(geom.Pt(x, y))
	p.ensureSubpath(c)
	p.elems = append(p.elems, QuadTo{Control: c, Point: pt})
	p.current = pt
	return nil
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) error {
	if !geom.Finite(c1x, c1y, c2x, c2y, x, y) {
		return ErrNonFinite
	}
	c1 := p.xf.Apply(geom.Pt(c1x, c1y))
	c2 := p.xf.Apply(geom.Pt(c2x, c2y))
	pt := p.xf.Apply(geom.Pt(x, y))
	p.ensureSubpath(c1)
	p.elems = append(p.elems, CubicTo{Control1: c1, Control2: c2, Point: pt})
	p.current = pt
	return nil
}

// Close marks the current subpath closed. The next subpath starts at the
// closed subpath's first point.
func (p *Path) Close() {
	if !p.hasCurrent {
		return
	}
	p.elems = append(p.elems, Close{})
	p.current = p.start
}

// Rect adds a closed rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) error {
	if !geom.Finite(x, y, w, h) {
		return ErrNonFinite
	}
	p.moveTo(p.xf.Apply(geom.Pt(x, y)))
	p.lineTo(p.xf.Apply(geom.Pt(x+w, y)))
	p.lineTo(p.xf.Apply(geom.Pt(x+w, y+h)))
	p.lineTo(p.xf.Apply(geom.Pt(x, y+h)))
	p.Close()
	return nil
}

// Append adds all elements of other, transformed by the path's input
// transform combined with m. The current point becomes other's last point.
func (p *Path) Append(other *Path, m geom.Matrix) {
	if other == nil || other.Empty() {
		return
	}
	xf := p.xf.Multiply(m)
	for _, el := range Transform(other.elems, xf) {
		switch e := el.(type) {
		case MoveTo:
			p.moveTo(e.Point)
		case Close:
			p.elems = append(p.elems, e)
			p.current = p.start
		default:
			if !p.hasCurrent {
				// A well-formed path always starts with MoveTo.
				p.moveTo(geom.Point{})
			}
			p.elems = append(p.elems, e)
			p.current = endPoint(e, p.current)
		}
	}
}

// Transform applies m to the stored geometry in place.
func (p *Path) Transform(m geom.Matrix) {
	p.elems = Transform(p.elems, m)
	p.start = m.Apply(p.start)
	p.current = m.Apply(p.current)
}

// Transform returns a copy of elems with m applied to every point.
func Transform(elems []Element, m geom.Matrix) []Element {
	out := make([]Element, len(elems))
	for i, el := range elems {
		switch e := el.(type) {
		case MoveTo:
			out[i] = MoveTo{Point: m.Apply(e.Point)}
		case LineTo:
			out[i] = LineTo{Point: m.Apply(e.Point)}
		case QuadTo:
			out[i] = QuadTo{Control: m.Apply(e.Control), Point: m.Apply(e.Point)}
		case CubicTo:
			out[i] = CubicTo{
				Control1: m.Apply(e.Control1),
				Control2: m.Apply(e.Control2),
				Point:    m.Apply(e.Point),
			}
		case Arc:
			out[i] = Arc{M: m.Multiply(e.M), Start: e.Start, Sweep: e.Sweep}
		default:
			out[i] = el
		}
	}
	return out
}

// endPoint returns the final point of a drawing element.
func endPoint(el Element, current geom.Point) geom.Point {
	switch e := el.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case QuadTo:
		return e.Point
	case CubicTo:
		return e.Point
	case Arc:
		return e.End()
	default:
		return current
	}
}
