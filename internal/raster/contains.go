package raster

import (
	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/path"
)

// Winding returns the winding number of the closed polylines around pt.
func Winding(subs []path.Subpath, pt geom.Point) int {
	w := 0
	for _, sp := range subs {
		n := len(sp.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := sp.Points[i]
			b := sp.Points[(i+1)%n]
			if a.Y <= pt.Y {
				if b.Y > pt.Y && isLeft(a, b, pt) > 0 {
					w++
				}
			} else if b.Y <= pt.Y && isLeft(a, b, pt) < 0 {
				w--
			}
		}
	}
	return w
}

// isLeft is positive when pt lies left of the directed line a→b in a
// y-up frame, negative when right, and zero when collinear.
func isLeft(a, b, pt geom.Point) float64 {
	return (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
}

// Contains reports whether pt is inside the closed polylines under rule.
// Points exactly on an edge count as inside.
func Contains(subs []path.Subpath, pt geom.Point, rule FillRule) bool {
	if !pt.IsFinite() {
		return false
	}
	if onBoundary(subs, pt) {
		return true
	}
	w := Winding(subs, pt)
	if rule == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

func onBoundary(subs []path.Subpath, pt geom.Point) bool {
	const eps = 1e-9
	for _, sp := range subs {
		n := len(sp.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := sp.Points[i]
			b := sp.Points[(i+1)%n]
			ab := b.Sub(a)
			l2 := ab.LengthSquared()
			if l2 == 0 {
				continue
			}
			if abs(ab.Cross(pt.Sub(a))) > eps*l2 {
				continue
			}
			t := pt.Sub(a).Dot(ab) / l2
			if t >= 0 && t <= 1 {
				return true
			}
		}
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
