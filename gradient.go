package canvas

import (
	"math"

	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/paint"
)

type gradientKind uint8

const (
	gradientLinear gradientKind = iota
	gradientRadial
	gradientConic
)

// Gradient is a CanvasGradient: a linear, radial or conic color ramp
// defined in the user space of the draw that uses it. Stops may be added
// in any order; stops at equal offsets are kept in insertion order and
// produce a hard transition.
//
// Gradients are shared by reference between drawing states. A draw takes
// a snapshot of the stops, so stops added later only affect later draws.
type Gradient struct {
	kind   gradientKind
	p0, p1 geom.Point
	r0, r1 float64
	angle  float64
	stops  []paint.Stop
}

// NewLinearGradient creates a gradient along the line from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) (*Gradient, error) {
	if !geom.Finite(x0, y0, x1, y1) {
		return nil, ErrNonFinite
	}
	return &Gradient{kind: gradientLinear, p0: geom.Pt(x0, y0), p1: geom.Pt(x1, y1)}, nil
}

// NewRadialGradient creates a two-circle gradient from the circle at
// (x0, y0) with radius r0 to the circle at (x1, y1) with radius r1.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	if !geom.Finite(x0, y0, r0, x1, y1, r1) {
		return nil, ErrNonFinite
	}
	if r0 < 0 || r1 < 0 {
		return nil, ErrNegativeRadius
	}
	return &Gradient{kind: gradientRadial, p0: geom.Pt(x0, y0), r0: r0, p1: geom.Pt(x1, y1), r1: r1}, nil
}

// NewConicGradient creates a gradient sweeping clockwise around (x, y)
// starting at startAngle radians.
func NewConicGradient(startAngle, x, y float64) (*Gradient, error) {
	if !geom.Finite(startAngle, x, y) {
		return nil, ErrNonFinite
	}
	return &Gradient{kind: gradientConic, p0: geom.Pt(x, y), angle: startAngle}, nil
}

// AddColorStop adds a stop. The offset must be within [0, 1].
func (g *Gradient) AddColorStop(offset float64, c Color) error {
	if math.IsNaN(offset) || offset < 0 || offset > 1 {
		return ErrInvalidOffset
	}
	g.stops = append(g.stops, paint.Stop{Offset: offset, Color: c.premultiplied()})
	return nil
}

// AddColorStopString adds a stop with a CSS color.
func (g *Gradient) AddColorStopString(offset float64, color string) error {
	c, err := ParseColor(color)
	if err != nil {
		return err
	}
	return g.AddColorStop(offset, c)
}

// NumStops returns the number of stops added so far.
func (g *Gradient) NumStops() int { return len(g.stops) }

// sampler snapshots the gradient. inv maps device space to the user
// space the gradient coordinates are in.
func (g *Gradient) sampler(inv geom.Matrix) paint.Sampler {
	ramp := paint.NewRamp(g.stops)
	switch g.kind {
	case gradientRadial:
		return paint.NewRadial(g.p0, g.r0, g.p1, g.r1, ramp, inv)
	case gradientConic:
		return paint.NewConic(g.p0, g.angle, ramp, inv)
	}
	return paint.NewLinear(g.p0, g.p1, ramp, inv)
}
