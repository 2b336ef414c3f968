package canvas

import (
	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/paint"
)

type styleKind uint8

const (
	styleColor styleKind = iota
	styleGradient
	stylePattern
)

// Style is a fill or stroke style: a color, a gradient or a pattern.
// The zero Style is transparent black.
type Style struct {
	kind     styleKind
	color    Color
	gradient *Gradient
	pattern  *Pattern
}

// ColorStyle returns a solid color style.
func ColorStyle(c Color) Style { return Style{kind: styleColor, color: c} }

// GradientStyle returns a gradient style. A nil gradient is transparent.
func GradientStyle(g *Gradient) Style {
	if g == nil {
		return ColorStyle(Transparent)
	}
	return Style{kind: styleGradient, gradient: g}
}

// PatternStyle returns a pattern style. A nil pattern is transparent.
func PatternStyle(p *Pattern) Style {
	if p == nil {
		return ColorStyle(Transparent)
	}
	return Style{kind: stylePattern, pattern: p}
}

// Color returns the color of a color style.
func (s Style) Color() (Color, bool) { return s.color, s.kind == styleColor }

// Gradient returns the gradient of a gradient style.
func (s Style) Gradient() (*Gradient, bool) { return s.gradient, s.kind == styleGradient }

// Pattern returns the pattern of a pattern style.
func (s Style) Pattern() (*Pattern, bool) { return s.pattern, s.kind == stylePattern }

// String returns the serialized color, or a placeholder for gradients and
// patterns.
func (s Style) String() string {
	switch s.kind {
	case styleGradient:
		return "[object CanvasGradient]"
	case stylePattern:
		return "[object CanvasPattern]"
	}
	return s.color.String()
}

// sampler resolves the style for one draw under the current transform.
func (s Style) sampler(ctm geom.Matrix, smooth bool) paint.Sampler {
	switch s.kind {
	case styleGradient:
		inv, ok := ctm.Invert()
		if !ok {
			return paint.Solid{}
		}
		return s.gradient.sampler(inv)
	case stylePattern:
		return s.pattern.sampler(ctm, smooth)
	}
	return paint.Solid{Color: s.color.premultiplied()}
}
