package paint

import (
	"math"

	"github.com/gogpu/canvas/internal/geom"
)

// Sampler returns the paint color at a device-space point.
// Callers pass pixel centers (x+0.5, y+0.5).
type Sampler interface {
	At(x, y float64) Color
}

// Solid is a constant color sampler.
type Solid struct {
	Color Color
}

// At returns the constant color.
func (s Solid) At(float64, float64) Color { return s.Color }

// Opaque reports whether every sample of s is fully opaque. Only solid
// samplers are analyzed; anything else reports false.
func Opaque(s Sampler) bool {
	if solid, ok := s.(Solid); ok {
		return solid.Color.A >= 1
	}
	return false
}

// Linear samples a linear gradient between P0 and P1 in user space.
type Linear struct {
	p0, d geom.Point
	lenSq float64
	inv   geom.Matrix
	stops Ramp
	degen bool
}

// NewLinear creates a linear gradient sampler. inv maps device space to the
// gradient's user space.
func NewLinear(p0, p1 geom.Point, ramp Ramp, inv geom.Matrix) *Linear {
	d := p1.Sub(p0)
	return &Linear{
		p0:    p0,
		d:     d,
		lenSq: d.LengthSquared(),
		inv:   inv,
		stops: ramp,
		degen: d.LengthSquared() == 0,
	}
}

// At implements Sampler.
func (g *Linear) At(x, y float64) Color {
	if g.degen {
		return Transparent
	}
	p := g.inv.Apply(geom.Pt(x, y))
	t := p.Sub(g.p0).Dot(g.d) / g.lenSq
	return g.stops.At(t)
}

// Radial samples a two-point conical gradient between the circles
// (C0, R0) and (C1, R1).
type Radial struct {
	c0, cd geom.Point
	r0, dr float64
	a      float64
	inv    geom.Matrix
	stops  Ramp
	degen  bool
}

// NewRadial creates a two-circle radial gradient sampler.
func NewRadial(c0 geom.Point, r0 float64, c1 geom.Point, r1 float64, ramp Ramp, inv geom.Matrix) *Radial {
	cd := c1.Sub(c0)
	dr := r1 - r0
	return &Radial{
		c0:    c0,
		cd:    cd,
		r0:    r0,
		dr:    dr,
		a:     cd.LengthSquared() - dr*dr,
		inv:   inv,
		stops: ramp,
		degen: cd.LengthSquared() == 0 && dr == 0,
	}
}

// At implements Sampler. It picks the largest t for which the point lies on
// circle(t) with a non-negative radius; points with no such t are transparent.
func (g *Radial) At(x, y float64) Color {
	if g.degen {
		return Transparent
	}
	p := g.inv.Apply(geom.Pt(x, y))
	t, ok := g.solve(p)
	if !ok {
		return Transparent
	}
	return g.stops.At(t)
}

// solve finds t with |p - c(t)| = r(t), r(t) >= 0.
//
//	a t² - 2 b t + c = 0
//	a = |cd|² - dr², b = pd·cd + r0 dr, c = |pd|² - r0²
func (g *Radial) solve(p geom.Point) (float64, bool) {
	pd := p.Sub(g.c0)
	b := pd.Dot(g.cd) + g.r0*g.dr
	c := pd.LengthSquared() - g.r0*g.r0

	if math.Abs(g.a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, g.r0+t*g.dr >= 0
	}
	disc := b*b - g.a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (b + sq) / g.a
	t2 := (b - sq) / g.a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if g.r0+t1*g.dr >= 0 {
		return t1, true
	}
	if g.r0+t2*g.dr >= 0 {
		return t2, true
	}
	return 0, false
}

// Conic samples a conic (sweep) gradient around a center, starting at
// StartAngle and turning clockwise in device coordinates (y down).
type Conic struct {
	center geom.Point
	start  float64
	inv    geom.Matrix
	stops  Ramp
}

// NewConic creates a conic gradient sampler.
func NewConic(center geom.Point, startAngle float64, ramp Ramp, inv geom.Matrix) *Conic {
	return &Conic{center: center, start: startAngle, inv: inv, stops: ramp}
}

// At implements Sampler.
func (g *Conic) At(x, y float64) Color {
	p := g.inv.Apply(geom.Pt(x, y)).Sub(g.center)
	if p.X == 0 && p.Y == 0 {
		return g.stops.At(0)
	}
	a := math.Atan2(p.Y, p.X) - g.start
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return g.stops.At(a / (2 * math.Pi))
}
