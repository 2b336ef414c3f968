package blend

import (
	"math"
	"testing"

	"github.com/gogpu/canvas/internal/paint"
)

var (
	red   = paint.Premultiply(1, 0, 0, 1)
	blue  = paint.Premultiply(0, 0, 1, 1)
	white = paint.Premultiply(1, 1, 1, 1)
	gray  = paint.Premultiply(0.5, 0.5, 0.5, 1)
)

func approx(a, b paint.Color) bool {
	const eps = 1e-5
	d := func(x, y float32) bool { return math.Abs(float64(x-y)) <= eps }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestParseAndString(t *testing.T) {
	for op := Op(0); op < opCount; op++ {
		got, ok := Parse(op.String())
		if !ok || got != op {
			t.Errorf("Parse(%q) = %v, %v", op.String(), got, ok)
		}
	}
	if _, ok := Parse("plus-lighter"); ok {
		t.Error("Expected unknown operation to be rejected")
	}
	if opCount != 26 {
		t.Errorf("Expected 26 operations, got %d", opCount)
	}
}

func TestPorterDuff(t *testing.T) {
	halfRed := red.Scale(0.5)
	tests := []struct {
		op   Op
		s, d paint.Color
		want paint.Color
	}{
		{OpSourceOver, red, white, red},
		{OpSourceOver, halfRed, white, paint.Color{R: 1, G: 0.5, B: 0.5, A: 1}},
		{OpSourceOver, paint.Transparent, blue, blue},
		{OpDestinationOver, red, blue, blue},
		{OpDestinationOver, red, paint.Transparent, red},
		{OpSourceIn, red, blue.Scale(0.5), red.Scale(0.5)},
		{OpSourceIn, red, paint.Transparent, paint.Transparent},
		{OpSourceOut, red, paint.Transparent, red},
		{OpSourceOut, red, blue, paint.Transparent},
		{OpSourceAtop, red, blue, red},
		{OpSourceAtop, red, paint.Transparent, paint.Transparent},
		{OpDestinationIn, halfRed, blue, blue.Scale(0.5)},
		{OpDestinationOut, halfRed, blue, blue.Scale(0.5)},
		{OpDestinationAtop, red, blue, blue},
		{OpDestinationAtop, paint.Transparent, blue, paint.Transparent},
		{OpCopy, halfRed, blue, halfRed},
		{OpXor, red, blue, paint.Transparent},
		{OpXor, red, paint.Transparent, red},
	}
	for _, tt := range tests {
		if got := Apply(tt.op, tt.s, tt.d); !approx(got, tt.want) {
			t.Errorf("%v(%+v, %+v) = %+v, want %+v", tt.op, tt.s, tt.d, got, tt.want)
		}
	}
}

func TestLighterIsAdditive(t *testing.T) {
	s := paint.Premultiply(0.5, 0, 0, 0.5)
	d := paint.Premultiply(0, 0, 0.5, 0.5)
	got := Apply(OpLighter, s, d)
	want := paint.Color{R: 0.25, G: 0, B: 0.25, A: 1}
	if !approx(got, want) {
		t.Errorf("lighter = %+v, want %+v", got, want)
	}
	if got.A <= max(s.A, d.A) {
		t.Error("Expected lighter to raise alpha above both operands")
	}
	sat := Apply(OpLighter, white, white)
	if sat != white {
		t.Errorf("Expected clamped result, got %+v", sat)
	}
}

func TestSeparableModes(t *testing.T) {
	tests := []struct {
		op   Op
		s, d paint.Color
		want paint.Color
	}{
		{OpMultiply, white, gray, gray},
		{OpMultiply, red, blue, paint.Color{A: 1}},
		{OpScreen, red, blue, paint.Color{R: 1, B: 1, A: 1}},
		{OpDarken, gray, white, gray},
		{OpLighten, gray, white, white},
		{OpDifference, white, gray, gray},
		{OpExclusion, white, white, paint.Color{A: 1}},
		{OpOverlay, gray, white, white},
		{OpHardLight, white, gray, white},
		{OpColorDodge, gray, gray, white},
		{OpColorBurn, gray, white, white},
		{OpSoftLight, gray, gray, gray},
	}
	for _, tt := range tests {
		if got := Apply(tt.op, tt.s, tt.d); !approx(got, tt.want) {
			t.Errorf("%v = %+v, want %+v", tt.op, got, tt.want)
		}
	}
}

func TestSeparableTransparentOperands(t *testing.T) {
	if got := Apply(OpMultiply, red, paint.Transparent); got != red {
		t.Errorf("Expected source over empty backdrop, got %+v", got)
	}
	if got := Apply(OpMultiply, paint.Transparent, blue); got != blue {
		t.Errorf("Expected backdrop kept for empty source, got %+v", got)
	}
}

func TestNonSeparableModes(t *testing.T) {
	// Luminosity of gray onto a saturated backdrop keeps the backdrop hue.
	got := Apply(OpLuminosity, gray, red)
	r, g, b, _ := got.Straight()
	if !(r > g && g == b) {
		t.Errorf("Expected a red hue, got %v %v %v", r, g, b)
	}
	if l := lum(rgb{r, g, b}); math.Abs(float64(l-0.5)) > 1e-4 {
		t.Errorf("Expected luminance 0.5, got %v", l)
	}

	// Saturation of gray makes the backdrop gray at its own luminance.
	got = Apply(OpSaturation, gray, red)
	r, g, b, _ = got.Straight()
	if math.Abs(float64(r-g)) > 1e-5 || math.Abs(float64(g-b)) > 1e-5 {
		t.Errorf("Expected gray, got %v %v %v", r, g, b)
	}

	// Color of blue onto white keeps white's luminance.
	got = Apply(OpColor, blue, white)
	r, g, b, _ = got.Straight()
	if l := lum(rgb{r, g, b}); math.Abs(float64(l-1)) > 1e-4 {
		t.Errorf("Expected luminance 1, got %v", l)
	}

	// Hue of red onto gray: gray has no saturation, so the result is gray.
	got = Apply(OpHue, red, gray)
	if !approx(got, gray) {
		t.Errorf("hue onto gray = %+v, want %+v", got, gray)
	}
}

func TestUnbounded(t *testing.T) {
	want := map[Op]bool{
		OpSourceIn: true, OpSourceOut: true, OpDestinationIn: true,
		OpDestinationAtop: true, OpCopy: true,
	}
	for op := Op(0); op < opCount; op++ {
		if op.Unbounded() != want[op] {
			t.Errorf("%v.Unbounded() = %v", op, op.Unbounded())
		}
	}
}

func TestCompositeClip(t *testing.T) {
	if got := Composite(OpCopy, red, blue, 0); got != blue {
		t.Errorf("Expected destination untouched outside clip, got %+v", got)
	}
	if got := Composite(OpCopy, red, blue, 1); got != red {
		t.Errorf("Expected full result inside clip, got %+v", got)
	}
	half := Composite(OpSourceOver, red, blue, 0.5)
	if !approx(half, paint.Color{R: 0.5, B: 0.5, A: 1}) {
		t.Errorf("Expected half blend at clip edge, got %+v", half)
	}
}
