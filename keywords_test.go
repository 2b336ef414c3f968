package canvas

import (
	"errors"
	"testing"
)

func TestStringSetters(t *testing.T) {
	_, ctx := newTestCanvas(t, 1, 1)
	tests := []struct {
		name string
		set  func(string) error
		get  func() string
		good string
	}{
		{"lineCap", ctx.SetLineCapString, func() string { return ctx.LineCap().String() }, "round"},
		{"lineJoin", ctx.SetLineJoinString, func() string { return ctx.LineJoin().String() }, "bevel"},
		{"textAlign", ctx.SetTextAlignString, func() string { return ctx.TextAlign().String() }, "center"},
		{"textBaseline", ctx.SetTextBaselineString, func() string { return ctx.TextBaseline().String() }, "middle"},
		{"direction", ctx.SetDirectionString, func() string { return ctx.Direction().String() }, "rtl"},
		{"globalCompositeOperation", ctx.SetGlobalCompositeOperationString, func() string { return ctx.GlobalCompositeOperation().String() }, "multiply"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.set(tt.good); err != nil {
				t.Fatalf("set(%q) = %v", tt.good, err)
			}
			if got := tt.get(); got != tt.good {
				t.Errorf("after set(%q) got %q", tt.good, got)
			}
			for _, bad := range []string{"", "bogus", "ROUND"} {
				if err := tt.set(bad); !errors.Is(err, ErrInvalidKeyword) {
					t.Errorf("set(%q) = %v, want ErrInvalidKeyword", bad, err)
				}
			}
			if got := tt.get(); got != tt.good {
				t.Errorf("invalid keyword changed the value to %q", got)
			}
		})
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for _, name := range lineCapNames {
		v, ok := ParseLineCap(name)
		if !ok || v.String() != name {
			t.Errorf("ParseLineCap(%q) = %v, %v", name, v, ok)
		}
	}
	for _, name := range lineJoinNames {
		v, ok := ParseLineJoin(name)
		if !ok || v.String() != name {
			t.Errorf("ParseLineJoin(%q) = %v, %v", name, v, ok)
		}
	}
	for _, name := range fillRuleNames {
		v, ok := ParseFillRule(name)
		if !ok || v.String() != name {
			t.Errorf("ParseFillRule(%q) = %v, %v", name, v, ok)
		}
	}
	for op := SourceOver; op <= Luminosity; op++ {
		v, ok := ParseCompositeOperation(op.String())
		if !ok || v != op {
			t.Errorf("ParseCompositeOperation(%q) = %v, %v, want %v", op.String(), v, ok, op)
		}
	}
	if _, ok := ParseCompositeOperation("darker"); ok {
		t.Error(`ParseCompositeOperation("darker") accepted`)
	}
}

func TestEnumSettersIgnoreOutOfRange(t *testing.T) {
	_, ctx := newTestCanvas(t, 1, 1)
	ctx.SetLineCap(LineCap(42))
	ctx.SetLineJoin(LineJoin(42))
	ctx.SetGlobalCompositeOperation(CompositeOperation(200))
	ctx.SetTextAlign(TextAlign(42))
	if ctx.LineCap() != LineCapButt || ctx.LineJoin() != LineJoinMiter ||
		ctx.GlobalCompositeOperation() != SourceOver || ctx.TextAlign() != AlignStart {
		t.Error("out of range enum values changed the state")
	}
}
