package stroke

import (
	"math"

	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/path"
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// CapButt specifies a flat line cap.
	CapButt LineCap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter LineJoin = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Style defines the geometry of a stroke.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns the stroke style of a fresh drawing context.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 10,
	}
}

// Expander converts stroked polylines to fill polygons.
type Expander struct {
	style     Style
	tolerance float64
	hw        float64 // half width

	forward  []geom.Point
	backward []geom.Point
	out      []path.Subpath

	startPt   geom.Point
	startTan  geom.Point
	startNorm geom.Point
	lastPt    geom.Point
	lastTan   geom.Point
	lastNorm  geom.Point

	joinThresh float64
}

// NewExpander creates a new stroke expander with the given style.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: path.Tolerance,
	}
}

// SetTolerance sets the maximum deviation of round joins and caps from
// true circular arcs, in the coordinate space of the input.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand converts stroked subpaths to closed polygons for nonzero filling.
func (e *Expander) Expand(subs []path.Subpath) []path.Subpath {
	e.out = nil
	if !(e.style.Width > 0) || math.IsInf(e.style.Width, 0) {
		return nil
	}
	e.hw = e.style.Width / 2
	e.joinThresh = 2 * e.tolerance / e.style.Width

	for _, sp := range subs {
		e.expandSubpath(sp)
	}
	return e.out
}

func (e *Expander) expandSubpath(sp path.Subpath) {
	if len(sp.Points) < 2 {
		return
	}
	pts := dedupe(sp.Points)
	if sp.Closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 1 {
		e.dot(pts[0])
		return
	}

	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.startPt = pts[0]
	e.lastPt = pts[0]

	for _, p := range pts[1:] {
		e.segment(p)
	}
	if sp.Closed {
		e.segment(pts[0])
		e.finishClosed()
		return
	}
	e.finishOpen()
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p.Sub(out[len(out)-1]).LengthSquared() < 1e-18 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// normal returns the left-hand normal of tan scaled to the half width.
func (e *Expander) normal(tan geom.Point) geom.Point {
	return tan.Perp().Mul(e.hw / tan.Length())
}

// segment extends both sides with a line from lastPt to p.
func (e *Expander) segment(p geom.Point) {
	tan := p.Sub(e.lastPt)
	norm := e.normal(tan)
	if len(e.forward) == 0 {
		e.forward = append(e.forward, e.lastPt.Sub(norm))
		e.backward = append(e.backward, e.lastPt.Add(norm))
		e.startTan = tan
		e.startNorm = norm
	} else {
		e.join(e.lastPt, tan, norm)
	}
	e.forward = append(e.forward, p.Sub(norm))
	e.backward = append(e.backward, p.Add(norm))
	e.lastPt = p
	e.lastTan = tan
	e.lastNorm = norm
}

// join connects the previous segment to one leaving p0 along tan.
func (e *Expander) join(p0, tan, norm geom.Point) {
	ab := e.lastTan
	cd := tan
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward = append(e.forward, p0.Sub(norm))
		e.backward = append(e.backward, p0.Add(norm))
		return
	}

	switch e.style.Join {
	case JoinMiter:
		limitSq := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limitSq {
			e.miter(p0, norm, ab, cd, cross)
		}
	case JoinRound:
		e.round(p0, cross, dot)
	}
	// Bevel edge, and the closing edge of miter and round joins.
	e.forward = append(e.forward, p0.Sub(norm))
	e.backward = append(e.backward, p0.Add(norm))
}

// miter adds the miter tip on the outer side and routes the inner side
// through the vertex.
func (e *Expander) miter(p0, norm, ab, cd geom.Point, cross float64) {
	if cross > 0 {
		last := p0.Sub(e.lastNorm)
		this := p0.Sub(norm)
		h := ab.Cross(this.Sub(last)) / cross
		e.forward = append(e.forward, this.Sub(cd.Mul(h)))
		e.backward = append(e.backward, p0)
	} else if cross < 0 {
		last := p0.Add(e.lastNorm)
		this := p0.Add(norm)
		h := ab.Cross(this.Sub(last)) / cross
		e.backward = append(e.backward, this.Sub(cd.Mul(h)))
		e.forward = append(e.forward, p0)
	}
}

// round adds an arc from the previous offset to the new one on the outer side.
func (e *Expander) round(p0 geom.Point, cross, dot float64) {
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward = append(e.backward, p0)
		e.forward = e.arc(e.forward, p0, e.lastNorm.Mul(-1), angle)
	} else {
		e.forward = append(e.forward, p0)
		e.backward = e.arc(e.backward, p0, e.lastNorm, angle)
	}
}

// arc appends points on the circle around center, starting at center+from
// and turning by angle radians. The starting point itself is not appended.
func (e *Expander) arc(dst []geom.Point, center, from geom.Point, angle float64) []geom.Point {
	n := e.arcSegments(math.Abs(angle))
	sin, cos := math.Sincos(angle / float64(n))
	v := from
	for i := 1; i < n; i++ {
		v = geom.Pt(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos)
		dst = append(dst, center.Add(v))
	}
	return dst
}

func (e *Expander) arcSegments(angle float64) int {
	n := int(math.Ceil(angle / (math.Pi / 4)))
	if e.hw > e.tolerance {
		step := 2 * math.Acos(1-e.tolerance/e.hw)
		if k := int(math.Ceil(angle / step)); k > n {
			n = k
		}
	}
	return max(n, 1)
}

// finishOpen emits forward side, end cap, reversed backward side and start cap.
func (e *Expander) finishOpen() {
	poly := make([]geom.Point, 0, len(e.forward)+len(e.backward)+16)
	poly = append(poly, e.forward...)
	poly = e.endCap(poly, e.lastPt, e.lastTan, e.lastNorm)
	for i := len(e.backward) - 1; i >= 0; i-- {
		poly = append(poly, e.backward[i])
	}
	poly = e.endCap(poly, e.startPt, e.startTan.Mul(-1), e.startNorm.Mul(-1))
	e.out = append(e.out, path.Subpath{Points: poly, Closed: true})
}

// endCap appends the cap at p for a stroke travelling along tan, going from
// p-norm to p+norm.
func (e *Expander) endCap(dst []geom.Point, p, tan, norm geom.Point) []geom.Point {
	u := tan.Normalize().Mul(e.hw)
	switch e.style.Cap {
	case CapSquare:
		dst = append(dst, p.Sub(norm).Add(u), p.Add(norm).Add(u))
	case CapRound:
		dst = e.arc(dst, p, norm.Mul(-1), math.Copysign(math.Pi, norm.Mul(-1).Cross(u)))
	}
	return dst
}

// finishClosed joins back to the start and emits both loops.
func (e *Expander) finishClosed() {
	e.join(e.startPt, e.startTan, e.startNorm)
	fwd := append([]geom.Point(nil), e.forward...)
	back := make([]geom.Point, 0, len(e.backward))
	for i := len(e.backward) - 1; i >= 0; i-- {
		back = append(back, e.backward[i])
	}
	e.out = append(e.out,
		path.Subpath{Points: fwd, Closed: true},
		path.Subpath{Points: back, Closed: true},
	)
}

// dot emits the cap shape for a zero-length subpath.
func (e *Expander) dot(p geom.Point) {
	switch e.style.Cap {
	case CapRound:
		pts := []geom.Point{p.Add(geom.Pt(e.hw, 0))}
		pts = e.arc(pts, p, geom.Pt(e.hw, 0), 2*math.Pi)
		e.out = append(e.out, path.Subpath{Points: pts, Closed: true})
	case CapSquare:
		h := e.hw
		e.out = append(e.out, path.Subpath{Points: []geom.Point{
			{X: p.X - h, Y: p.Y - h}, {X: p.X + h, Y: p.Y - h},
			{X: p.X + h, Y: p.Y + h}, {X: p.X - h, Y: p.Y + h},
		}, Closed: true})
	}
}
