package path

import (
	"math"

	"github.com/gogpu/canvas/internal/geom"
)

// Tolerance is the default maximum distance between a curve and its
// flattened polyline, in device pixels.
const Tolerance = 0.25

// maxSegments bounds the subdivision of a single curve.
const maxSegments = 1 << 12

// Subpath is a flattened subpath. A subpath made of a lone MoveTo has a
// single point; a zero-length segment yields two equal points.
type Subpath struct {
	Points []geom.Point
	Closed bool
}

// Flatten converts elements into polylines whose deviation from the true
// curves is at most tolerance.
func Flatten(elems []Element, tolerance float64) []Subpath {
	if tolerance <= 0 {
		tolerance = Tolerance
	}

	var (
		out     []Subpath
		cur     *Subpath
		current geom.Point
		start   geom.Point
	)

	begin := func(pt geom.Point) {
		out = append(out, Subpath{Points: []geom.Point{pt}})
		cur = &out[len(out)-1]
		start = pt
	}
	// ensure reopens a subpath after Close at the closed subpath's start.
	ensure := func() {
		if cur == nil {
			begin(current)
		}
	}

	for _, el := range elems {
		switch e := el.(type) {
		case MoveTo:
			begin(e.Point)
			current = e.Point

		case LineTo:
			ensure()
			cur.Points = append(cur.Points, e.Point)
			current = e.Point

		case QuadTo:
			ensure()
			cur.Points = flattenQuad(cur.Points, current, e.Control, e.Point, tolerance)
			current = e.Point

		case CubicTo:
			ensure()
			cur.Points = flattenCubic(cur.Points, current, e.Control1, e.Control2, e.Point, tolerance)
			current = e.Point

		case Arc:
			ensure()
			cur.Points = flattenArc(cur.Points, e, tolerance)
			current = e.End()

		case Close:
			if cur != nil {
				cur.Closed = true
				cur = nil
				current = start
			}
		}
	}
	return out
}

// segmentCount applies Wang's formula: a curve of degree n whose second
// differences are bounded by dd needs sqrt(n(n-1)/8 * dd / tol) segments.
func segmentCount(factor, dd, tol float64) int {
	n := math.Ceil(math.Sqrt(factor * dd / tol))
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n > maxSegments {
		return maxSegments
	}
	return int(n)
}

func flattenQuad(dst []geom.Point, p0, p1, p2 geom.Point, tol float64) []geom.Point {
	dd := p0.Sub(p1.Mul(2)).Add(p2).Length()
	n := segmentCount(0.25, dd, tol)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		dst = append(dst, geom.Point{
			X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
			Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
		})
	}
	return append(dst, p2)
}

func flattenCubic(dst []geom.Point, p0, p1, p2, p3 geom.Point, tol float64) []geom.Point {
	dd1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	dd2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := segmentCount(0.75, math.Max(dd1, dd2), tol)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		dst = append(dst, geom.Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return append(dst, p3)
}

// flattenArc emits points along the arc excluding its start, which is
// already the current point.
func flattenArc(dst []geom.Point, a Arc, tol float64) []geom.Point {
	r := a.M.MaxScale()
	n := int(math.Ceil(math.Abs(a.Sweep) / (math.Pi / 2)))
	if r > tol {
		step := 2 * math.Acos(1-tol/r)
		if k := int(math.Ceil(math.Abs(a.Sweep) / step)); k > n {
			n = k
		}
	}
	if n < 1 {
		n = 1
	}
	if n > maxSegments {
		n = maxSegments
	}
	for i := 1; i <= n; i++ {
		dst = append(dst, a.At(a.Start+a.Sweep*float64(i)/float64(n)))
	}
	return dst
}
