package path

import (
	"math"
	"testing"

	"github.com/gogpu/canvas/internal/geom"
)

// maxCircleDeviation measures the largest distance between circle points and
// the polyline vertices, plus the sagitta of each chord.
func maxCircleDeviation(pts []geom.Point, c geom.Point, r float64) float64 {
	var worst float64
	for i := 1; i < len(pts); i++ {
		mid := pts[i-1].Lerp(pts[i], 0.5)
		if d := math.Abs(mid.Distance(c) - r); d > worst {
			worst = d
		}
		if d := math.Abs(pts[i].Distance(c) - r); d > worst {
			worst = d
		}
	}
	return worst
}

func TestFlattenArcWithinTolerance(t *testing.T) {
	for _, r := range []float64{1, 10, 100, 1000} {
		p := New()
		_ = p.Arc(0, 0, r, 0, 2*math.Pi, false)
		subs := Flatten(p.Elements(), Tolerance)
		if len(subs) != 1 {
			t.Fatalf("r=%v: expected 1 subpath, got %d", r, len(subs))
		}
		if d := maxCircleDeviation(subs[0].Points, geom.Point{}, r); d > Tolerance+1e-9 {
			t.Errorf("r=%v: deviation %v exceeds tolerance", r, d)
		}
	}
}

func TestFlattenAdaptiveUnderScale(t *testing.T) {
	small := New()
	_ = small.Arc(0, 0, 10, 0, 2*math.Pi, false)
	big := New()
	big.SetTransform(geom.Scale(20, 20))
	_ = big.Arc(0, 0, 10, 0, 2*math.Pi, false)

	ns := len(Flatten(small.Elements(), Tolerance)[0].Points)
	nb := len(Flatten(big.Elements(), Tolerance)[0].Points)
	if nb <= ns {
		t.Errorf("Expected zoomed arc to use more points: small=%d big=%d", ns, nb)
	}
}

func TestFlattenCubicEndpoints(t *testing.T) {
	p := New()
	_ = p.MoveTo(0, 0)
	_ = p.CubicTo(0, 100, 100, 100, 100, 0)
	pts := Flatten(p.Elements(), Tolerance)[0].Points
	if pts[0] != geom.Pt(0, 0) || pts[len(pts)-1] != geom.Pt(100, 0) {
		t.Errorf("Expected endpoints preserved, got %v and %v", pts[0], pts[len(pts)-1])
	}
	if len(pts) < 10 {
		t.Errorf("Expected curve to be subdivided, got %d points", len(pts))
	}

	// Every chord midpoint stays within tolerance of the curve.
	const samples = 20000
	curve := make([]geom.Point, samples+1)
	for i := range curve {
		u := float64(i) / samples
		v := 1 - u
		curve[i] = geom.Pt(3*v*u*u*100+u*u*u*100, 3*v*v*u*100+3*v*u*u*100)
	}
	for i := 1; i < len(pts); i++ {
		mid := pts[i-1].Lerp(pts[i], 0.5)
		best := math.Inf(1)
		for _, c := range curve {
			best = math.Min(best, mid.Distance(c))
		}
		if best > Tolerance+0.01 {
			t.Errorf("segment %d midpoint %v is %v from the curve, want <= %v", i, mid, best, Tolerance)
		}
	}
}

func TestFlattenQuadStraightLine(t *testing.T) {
	p := New()
	_ = p.MoveTo(0, 0)
	_ = p.QuadTo(5, 0, 10, 0)
	pts := Flatten(p.Elements(), Tolerance)[0].Points
	if len(pts) != 2 {
		t.Errorf("Expected a flat quad to need one segment, got %d points", len(pts))
	}
}

func TestFlattenLoneMoveTo(t *testing.T) {
	p := New()
	_ = p.MoveTo(3, 3)
	_ = p.MoveTo(5, 5)
	_ = p.LineTo(5, 5)
	subs := Flatten(p.Elements(), Tolerance)
	if len(subs) != 2 {
		t.Fatalf("Expected 2 subpaths, got %d", len(subs))
	}
	if len(subs[0].Points) != 1 {
		t.Errorf("Expected lone MoveTo subpath to have 1 point, got %d", len(subs[0].Points))
	}
	if len(subs[1].Points) != 2 {
		t.Errorf("Expected zero-length segment to keep 2 points, got %d", len(subs[1].Points))
	}
}

func TestEllipseRotation(t *testing.T) {
	p := New()
	_ = p.Ellipse(0, 0, 20, 5, math.Pi/2, 0, 2*math.Pi, false)
	b := geom.Bounds(Flatten(p.Elements(), Tolerance)[0].Points)
	if math.Abs(b.Max.Y-20) > 0.5 || math.Abs(b.Max.X-5) > 0.5 {
		t.Errorf("Expected rotated ellipse bounds about (5, 20), got %v", b.Max)
	}
}
