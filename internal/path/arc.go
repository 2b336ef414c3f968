package path

import (
	"math"

	"github.com/gogpu/canvas/internal/geom"
)

const twoPi = 2 * math.Pi

// NormalizeSweep converts a start/end angle pair and direction into a
// signed sweep. Clockwise sweeps fall in [0, 2π] and counterclockwise
// sweeps in [-2π, 0]; a requested turn of 2π or more is a full ellipse.
func NormalizeSweep(start, end float64, ccw bool) float64 {
	if !ccw {
		if end-start >= twoPi {
			return twoPi
		}
		return positiveMod(end-start, twoPi)
	}
	if start-end >= twoPi {
		return -twoPi
	}
	return -positiveMod(start-end, twoPi)
}

func positiveMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += b
	}
	return r
}

// Ellipse adds an elliptical arc. A line connects the current point to the
// arc's start; without a current point the arc starts a new subpath.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation, start, end float64, ccw bool) error {
	if !geom.Finite(cx, cy, rx, ry, rotation, start, end) {
		return ErrNonFinite
	}
	if rx < 0 || ry < 0 {
		return ErrNegativeRadius
	}
	m := p.xf.
		Multiply(geom.Translate(cx, cy)).
		Multiply(geom.Rotate(rotation)).
		Multiply(geom.Scale(rx, ry))
	p.arc(Arc{M: m, Start: start, Sweep: NormalizeSweep(start, end, ccw)})
	return nil
}

// Arc adds a circular arc.
func (p *Path) Arc(cx, cy, r, start, end float64, ccw bool) error {
	return p.Ellipse(cx, cy, r, r, 0, start, end, ccw)
}

func (p *Path) arc(a Arc) {
	p.lineTo(a.At(a.Start))
	if a.Sweep == 0 {
		return
	}
	p.elems = append(p.elems, a)
	p.current = a.End()
}

// ArcTo adds a circular fillet of radius r tangent to the line from the
// current point to (x1, y1) and the line from (x1, y1) to (x2, y2).
// It does nothing without a current point. Degenerate configurations
// draw a straight line to (x1, y1).
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) error {
	if !geom.Finite(x1, y1, x2, y2, r) {
		return ErrNonFinite
	}
	if r < 0 {
		return ErrNegativeRadius
	}
	if !p.hasCurrent {
		return nil
	}
	inv, ok := p.xf.Invert()
	if !ok {
		return nil
	}
	p0 := inv.Apply(p.current)
	p1 := geom.Pt(x1, y1)
	p2 := geom.Pt(x2, y2)

	d1 := p1.Sub(p0)
	d2 := p2.Sub(p1)
	cross := d1.Cross(d2)
	if p0 == p1 || p1 == p2 || r == 0 || math.Abs(cross) < 1e-12*d1.Length()*d2.Length() {
		p.lineTo(p.xf.Apply(p1))
		return nil
	}

	v1 := p0.Sub(p1).Normalize()
	v2 := p2.Sub(p1).Normalize()
	cosTheta := math.Max(-1, math.Min(1, v1.Dot(v2)))
	theta := math.Acos(cosTheta)
	tangentDist := r / math.Tan(theta/2)
	t1 := p1.Add(v1.Mul(tangentDist))
	t2 := p1.Add(v2.Mul(tangentDist))
	center := p1.Add(v1.Add(v2).Normalize().Mul(r / math.Sin(theta/2)))

	startAngle := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	endAngle := math.Atan2(t2.Y-center.Y, t2.X-center.X)
	ccw := cross < 0

	// arc draws the line from the current point to t1.
	m := p.xf.Multiply(geom.Translate(center.X, center.Y)).Multiply(geom.Scale(r, r))
	p.arc(Arc{M: m, Start: startAngle, Sweep: NormalizeSweep(startAngle, endAngle, ccw)})
	return nil
}

// RoundRect adds a closed rectangle with rounded corners. Radii follow the
// CSS border-radius shorthand: one value for all corners, two for
// (top-left+bottom-right, top-right+bottom-left), three for (top-left,
// top-right+bottom-left, bottom-right), four for each corner clockwise
// from top-left.
func (p *Path) RoundRect(x, y, w, h float64, radii ...float64) error {
	if !geom.Finite(x, y, w, h) || !geom.Finite(radii...) {
		return ErrNonFinite
	}
	if len(radii) == 0 {
		radii = []float64{0}
	}
	if len(radii) > 4 {
		return ErrRadiiCount
	}
	for _, r := range radii {
		if r < 0 {
			return ErrNegativeRadius
		}
	}

	var tl, tr, br, bl float64
	switch len(radii) {
	case 1:
		tl, tr, br, bl = radii[0], radii[0], radii[0], radii[0]
	case 2:
		tl, br = radii[0], radii[0]
		tr, bl = radii[1], radii[1]
	case 3:
		tl = radii[0]
		tr, bl = radii[1], radii[1]
		br = radii[2]
	case 4:
		tl, tr, br, bl = radii[0], radii[1], radii[2], radii[3]
	}

	if w < 0 {
		x, w = x+w, -w
		tl, tr = tr, tl
		bl, br = br, bl
	}
	if h < 0 {
		y, h = y+h, -h
		tl, bl = bl, tl
		tr, br = br, tr
	}

	scale := 1.0
	for _, pair := range [][3]float64{
		{tl, tr, w}, {bl, br, w}, {tl, bl, h}, {tr, br, h},
	} {
		if sum := pair[0] + pair[1]; sum > pair[2] && sum > 0 {
			scale = math.Min(scale, pair[2]/sum)
		}
	}
	tl, tr, br, bl = tl*scale, tr*scale, br*scale, bl*scale

	p.moveTo(p.xf.Apply(geom.Pt(x+tl, y)))
	p.corner(x+w-tr, y+tr, tr, -math.Pi/2)
	p.corner(x+w-br, y+h-br, br, 0)
	p.corner(x+bl, y+h-bl, bl, math.Pi/2)
	p.corner(x+tl, y+tl, tl, math.Pi)
	p.Close()
	p.moveTo(p.xf.Apply(geom.Pt(x, y)))
	return nil
}

// corner adds a quarter circle of radius r around (cx, cy) starting at angle
// start, or a sharp corner when r is zero.
func (p *Path) corner(cx, cy, r, start float64) {
	if r == 0 {
		p.lineTo(p.xf.Apply(geom.Pt(cx, cy)))
		return
	}
	m := p.xf.Multiply(geom.Translate(cx, cy)).Multiply(geom.Scale(r, r))
	p.arc(Arc{M: m, Start: start, Sweep: math.Pi / 2})
}
