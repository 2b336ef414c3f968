package path

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/canvas/internal/geom"
)

func TestNormalizeSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		ccw        bool
		want       float64
	}{
		{"quarter cw", 0, math.Pi / 2, false, math.Pi / 2},
		{"quarter ccw", 0, math.Pi / 2, true, -3 * math.Pi / 2},
		{"full cw", 0, 2 * math.Pi, false, 2 * math.Pi},
		{"more than full cw", 0, 7, false, 2 * math.Pi},
		{"full ccw", 2 * math.Pi, 0, true, -2 * math.Pi},
		{"backwards cw wraps", math.Pi / 2, 0, false, 3 * math.Pi / 2},
		{"zero", 1, 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSweep(tt.start, tt.end, tt.ccw)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("NormalizeSweep(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.ccw, got, tt.want)
			}
		})
	}
}

func TestNonFiniteRejected(t *testing.T) {
	p := New()
	if err := p.MoveTo(math.NaN(), 0); !errors.Is(err, ErrNonFinite) {
		t.Errorf("MoveTo(NaN) error = %v, want ErrNonFinite", err)
	}
	if err := p.LineTo(0, math.Inf(1)); !errors.Is(err, ErrNonFinite) {
		t.Errorf("LineTo(Inf) error = %v, want ErrNonFinite", err)
	}
	if !p.Empty() {
		t.Error("Expected rejected calls to leave the path empty")
	}
}

func TestNegativeRadius(t *testing.T) {
	p := New()
	_ = p.MoveTo(0, 0)
	if err := p.Arc(10, 10, -1, 0, 1, false); !errors.Is(err, ErrNegativeRadius) {
		t.Errorf("Arc error = %v, want ErrNegativeRadius", err)
	}
	if err := p.ArcTo(1, 1, 2, 2, -5); !errors.Is(err, ErrNegativeRadius) {
		t.Errorf("ArcTo error = %v, want ErrNegativeRadius", err)
	}
	if len(p.Elements()) != 1 {
		t.Errorf("Expected 1 element after rejected calls, got %d", len(p.Elements()))
	}
}

func TestArcToWithoutCurrentPoint(t *testing.T) {
	p := New()
	if err := p.ArcTo(10, 0, 10, 10, 5); err != nil {
		t.Fatalf("ArcTo: %v", err)
	}
	if !p.Empty() {
		t.Errorf("Expected ArcTo with no current point to be a no-op, got %d elements", len(p.Elements()))
	}
}

func TestArcToFillet(t *testing.T) {
	p := New()
	_ = p.MoveTo(0, 0)
	_ = p.ArcTo(10, 0, 10, 10, 4)

	elems := p.Elements()
	if len(elems) != 3 {
		t.Fatalf("Expected MoveTo, LineTo, Arc; got %d elements", len(elems))
	}
	line, ok := elems[1].(LineTo)
	if !ok {
		t.Fatalf("Expected LineTo, got %T", elems[1])
	}
	if math.Abs(line.Point.X-6) > 1e-9 || math.Abs(line.Point.Y) > 1e-9 {
		t.Errorf("Expected tangent point (6, 0), got %v", line.Point)
	}
	end := p.CurrentPoint()
	if math.Abs(end.X-10) > 1e-9 || math.Abs(end.Y-4) > 1e-9 {
		t.Errorf("Expected arc to end at (10, 4), got %v", end)
	}
	arc := elems[2].(Arc)
	if arc.Sweep <= 0 || math.Abs(arc.Sweep-math.Pi/2) > 1e-9 {
		t.Errorf("Expected clockwise quarter sweep, got %v", arc.Sweep)
	}
}

func TestArcToCollinearDrawsLine(t *testing.T) {
	p := New()
	_ = p.MoveTo(0, 0)
	_ = p.ArcTo(5, 0, 10, 0, 3)
	elems := p.Elements()
	if len(elems) != 2 {
		t.Fatalf("Expected 2 elements, got %d", len(elems))
	}
	if l, ok := elems[1].(LineTo); !ok || l.Point != geom.Pt(5, 0) {
		t.Errorf("Expected LineTo (5, 0), got %#v", elems[1])
	}
}

func TestInputTransformAppliedAtInsertion(t *testing.T) {
	p := New()
	p.SetTransform(geom.Translate(10, 20))
	_ = p.MoveTo(1, 1)
	p.SetTransform(geom.Identity())
	_ = p.LineTo(1, 1)

	elems := p.Elements()
	if got := elems[0].(MoveTo).Point; got != geom.Pt(11, 21) {
		t.Errorf("Expected transformed MoveTo (11, 21), got %v", got)
	}
	if got := elems[1].(LineTo).Point; got != geom.Pt(1, 1) {
		t.Errorf("Expected untransformed LineTo (1, 1), got %v", got)
	}
}

func TestCloseStartsNewSubpathAtStart(t *testing.T) {
	p := New()
	_ = p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	p.Close()
	_ = p.LineTo(0, 10)

	subs := Flatten(p.Elements(), Tolerance)
	if len(subs) != 2 {
		t.Fatalf("Expected 2 subpaths, got %d", len(subs))
	}
	if !subs[0].Closed || subs[1].Closed {
		t.Errorf("Expected first closed and second open, got %v %v", subs[0].Closed, subs[1].Closed)
	}
	if subs[1].Points[0] != geom.Pt(0, 0) {
		t.Errorf("Expected second subpath to start at (0, 0), got %v", subs[1].Points[0])
	}
}

func TestAppendTransformsOther(t *testing.T) {
	src := New()
	_ = src.Rect(0, 0, 1, 1)

	dst := New()
	dst.Append(src, geom.Scale(10, 10))
	subs := Flatten(dst.Elements(), Tolerance)
	if len(subs) != 1 {
		t.Fatalf("Expected 1 subpath, got %d", len(subs))
	}
	b := geom.Bounds(subs[0].Points)
	if b.Max != geom.Pt(10, 10) {
		t.Errorf("Expected bounds max (10, 10), got %v", b.Max)
	}
}

func TestRoundRectRadiiScaledDown(t *testing.T) {
	p := New()
	if err := p.RoundRect(0, 0, 10, 10, 20); err != nil {
		t.Fatalf("RoundRect: %v", err)
	}
	subs := Flatten(p.Elements(), Tolerance)
	b := geom.Bounds(subs[0].Points)
	if b.Min.X < -1e-9 || b.Max.X > 10+1e-9 || b.Max.Y > 10+1e-9 {
		t.Errorf("Expected rounded rect within (0,0)-(10,10), got %v", b)
	}
	// Radii scaled to 5: the shape is a circle; a corner point is outside it.
	for _, pt := range subs[0].Points {
		if pt.Distance(geom.Pt(5, 5)) > 5+1e-6 {
			t.Fatalf("Point %v lies outside the inscribed circle", pt)
		}
	}
}
