package canvas

import (
	"math"
	"slices"

	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/text"
)

// Context2D is the drawing context of a Canvas. It holds a stack of
// drawing states and the current path.
//
// Mutators change only the state on top of the stack. Drawing calls read
// the state and never change it; Fill, Stroke and Clip do not consume the
// current path, only BeginPath clears it.
type Context2D struct {
	canvas *Canvas
	states []drawingState // never empty
	path   *path.Path

	faceKey    string
	cachedFace text.Face
}

func newContext2D(c *Canvas) *Context2D {
	ctx := &Context2D{canvas: c, path: path.New()}
	ctx.resetState()
	return ctx
}

func (c *Context2D) state() *drawingState { return &c.states[len(c.states)-1] }

func (c *Context2D) resetState() {
	c.states = append(c.states[:0], defaultState())
	c.path.Reset()
	c.path.SetTransform(geom.Identity())
}

// Canvas returns the canvas the context draws on.
func (c *Context2D) Canvas() *Canvas { return c.canvas }

// Save pushes a copy of the current state.
func (c *Context2D) Save() {
	c.states = append(c.states, c.state().clone())
}

// Restore pops the current state. It does nothing at the base state.
func (c *Context2D) Restore() {
	if len(c.states) == 1 {
		return
	}
	c.states = c.states[:len(c.states)-1]
	c.path.SetTransform(c.state().transform)
}

// Depth returns the number of saved states above the base state.
func (c *Context2D) Depth() int { return len(c.states) - 1 }

// Reset restores the default state, empties the stack and the current
// path, and clears the pixels to the canvas background.
func (c *Context2D) Reset() {
	c.resetState()
	c.canvas.allocate(c.canvas.width, c.canvas.height)
}

// Transforms

func (c *Context2D) setTransform(m geom.Matrix) {
	c.state().transform = m
	c.path.SetTransform(m)
}

func (c *Context2D) apply(m geom.Matrix) {
	c.setTransform(c.state().transform.Multiply(m))
}

// Scale adds a scaling to the current transform.
func (c *Context2D) Scale(x, y float64) error {
	if !geom.Finite(x, y) {
		return ErrNonFinite
	}
	c.apply(geom.Scale(x, y))
	return nil
}

// Rotate adds a clockwise rotation by angle radians.
func (c *Context2D) Rotate(angle float64) error {
	if !geom.Finite(angle) {
		return ErrNonFinite
	}
	c.apply(geom.Rotate(angle))
	return nil
}

// Translate adds a translation.
func (c *Context2D) Translate(x, y float64) error {
	if !geom.Finite(x, y) {
		return ErrNonFinite
	}
	c.apply(geom.Translate(x, y))
	return nil
}

// Transform multiplies the current transform by the matrix
// [a c e; b d f].
func (c *Context2D) Transform(a, b, cc, d, e, f float64) error {
	m := Matrix{A: a, B: b, C: cc, D: d, E: e, F: f}
	if !m.IsFinite() {
		return ErrNonFinite
	}
	c.apply(m.geom())
	return nil
}

// SetTransform replaces the current transform with [a c e; b d f].
func (c *Context2D) SetTransform(a, b, cc, d, e, f float64) error {
	return c.SetTransformMatrix(Matrix{A: a, B: b, C: cc, D: d, E: e, F: f})
}

// SetTransformMatrix replaces the current transform.
func (c *Context2D) SetTransformMatrix(m Matrix) error {
	if !m.IsFinite() {
		return ErrNonFinite
	}
	c.setTransform(m.geom())
	return nil
}

// GetTransform returns the current transform.
func (c *Context2D) GetTransform() Matrix { return fromGeom(c.state().transform) }

// ResetTransform sets the identity transform.
func (c *Context2D) ResetTransform() { c.setTransform(geom.Identity()) }

// Path construction. Coordinates are mapped by the current transform
// when they are added.

// BeginPath empties the current path.
func (c *Context2D) BeginPath() { c.path.Reset() }

// ClosePath closes the current subpath.
func (c *Context2D) ClosePath() { c.path.Close() }

// MoveTo starts a new subpath at (x, y).
func (c *Context2D) MoveTo(x, y float64) error { return c.path.MoveTo(x, y) }

// LineTo adds a line to (x, y).
func (c *Context2D) LineTo(x, y float64) error { return c.path.LineTo(x, y) }

// QuadraticCurveTo adds a quadratic Bézier curve.
func (c *Context2D) QuadraticCurveTo(cpx, cpy, x, y float64) error {
	return c.path.QuadTo(cpx, cpy, x, y)
}

// BezierCurveTo adds a cubic Bézier curve.
func (c *Context2D) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) error {
	return c.path.CubicTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// Arc adds a circular arc around (x, y). Angles are in radians.
func (c *Context2D) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) error {
	return c.path.Arc(x, y, radius, startAngle, endAngle, counterclockwise)
}

// ArcTo adds a fillet of the given radius between the current point,
// (x1, y1) and (x2, y2). Without a current point it does nothing.
func (c *Context2D) ArcTo(x1, y1, x2, y2, radius float64) error {
	return c.path.ArcTo(x1, y1, x2, y2, radius)
}

// Ellipse adds an elliptical arc rotated by rotation radians.
func (c *Context2D) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64, counterclockwise bool) error {
	return c.path.Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle, counterclockwise)
}

// Rect adds a closed rectangle subpath.
func (c *Context2D) Rect(x, y, w, h float64) error { return c.path.Rect(x, y, w, h) }

// RoundRect adds a closed rectangle with one to four corner radii.
func (c *Context2D) RoundRect(x, y, w, h float64, radii ...float64) error {
	return c.path.RoundRect(x, y, w, h, radii...)
}

// Fill and stroke styles

// SetFillStyle sets the fill style.
func (c *Context2D) SetFillStyle(s Style) { c.state().fill = s }

// FillStyle returns the fill style.
func (c *Context2D) FillStyle() Style { return c.state().fill }

// SetFillColor sets a solid fill color.
func (c *Context2D) SetFillColor(col Color) { c.state().fill = ColorStyle(col) }

// SetFillStyleString sets the fill color from a CSS color string. An
// invalid string leaves the style unchanged.
func (c *Context2D) SetFillStyleString(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.state().fill = ColorStyle(col)
	return nil
}

// SetStrokeStyle sets the stroke style.
func (c *Context2D) SetStrokeStyle(s Style) { c.state().stroke = s }

// StrokeStyle returns the stroke style.
func (c *Context2D) StrokeStyle() Style { return c.state().stroke }

// SetStrokeColor sets a solid stroke color.
func (c *Context2D) SetStrokeColor(col Color) { c.state().stroke = ColorStyle(col) }

// SetStrokeStyleString sets the stroke color from a CSS color string. An
// invalid string leaves the style unchanged.
func (c *Context2D) SetStrokeStyleString(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.state().stroke = ColorStyle(col)
	return nil
}

// Line styles

// SetLineWidth sets the stroke width. Zero, negative and non-finite
// values are ignored.
func (c *Context2D) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		c.state().lineWidth = w
	}
}

// LineWidth returns the stroke width.
func (c *Context2D) LineWidth() float64 { return c.state().lineWidth }

// SetLineCap sets the cap style.
func (c *Context2D) SetLineCap(v LineCap) {
	if v <= LineCapSquare {
		c.state().lineCap = v
	}
}

// LineCap returns the cap style.
func (c *Context2D) LineCap() LineCap { return c.state().lineCap }

// SetLineJoin sets the join style.
func (c *Context2D) SetLineJoin(v LineJoin) {
	if v <= LineJoinBevel {
		c.state().lineJoin = v
	}
}

// LineJoin returns the join style.
func (c *Context2D) LineJoin() LineJoin { return c.state().lineJoin }

// SetMiterLimit sets the miter limit. Zero, negative and non-finite
// values are ignored.
func (c *Context2D) SetMiterLimit(v float64) {
	if v > 0 && !math.IsInf(v, 0) {
		c.state().miterLimit = v
	}
}

// MiterLimit returns the miter limit.
func (c *Context2D) MiterLimit() float64 { return c.state().miterLimit }

// SetLineDash sets the dash pattern; an empty slice makes lines solid.
// Odd-length patterns are repeated to even length. Negative or
// non-finite entries are rejected.
func (c *Context2D) SetLineDash(segments []float64) error {
	for _, v := range segments {
		if v < 0 || !geom.Finite(v) {
			return ErrInvalidDash
		}
	}
	d := slices.Clone(segments)
	if len(d)%2 == 1 {
		d = append(d, d...)
	}
	c.state().dash = d
	return nil
}

// LineDash returns a copy of the dash pattern.
func (c *Context2D) LineDash() []float64 {
	d := c.state().dash
	if d == nil {
		return []float64{}
	}
	return slices.Clone(d)
}

// SetLineDashOffset sets the dash phase. Non-finite values are ignored.
func (c *Context2D) SetLineDashOffset(v float64) {
	if geom.Finite(v) {
		c.state().dashOffset = v
	}
}

// LineDashOffset returns the dash phase.
func (c *Context2D) LineDashOffset() float64 { return c.state().dashOffset }

// Shadows

// SetShadowBlur sets the blur level. Negative and non-finite values are
// ignored.
func (c *Context2D) SetShadowBlur(v float64) {
	if v >= 0 && !math.IsInf(v, 0) {
		c.state().shadowBlur = v
	}
}

// ShadowBlur returns the blur level.
func (c *Context2D) ShadowBlur() float64 { return c.state().shadowBlur }

// SetShadowColor sets the shadow color. The default is transparent, which
// disables shadows.
func (c *Context2D) SetShadowColor(col Color) { c.state().shadowColor = col }

// SetShadowColorString sets the shadow color from a CSS string.
func (c *Context2D) SetShadowColorString(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.state().shadowColor = col
	return nil
}

// ShadowColor returns the shadow color.
func (c *Context2D) ShadowColor() Color { return c.state().shadowColor }

// SetShadowOffsetX sets the horizontal shadow offset. Offsets are not
// affected by the current transform.
func (c *Context2D) SetShadowOffsetX(v float64) {
	if geom.Finite(v) {
		c.state().shadowOffsetX = v
	}
}

// ShadowOffsetX returns the horizontal shadow offset.
func (c *Context2D) ShadowOffsetX() float64 { return c.state().shadowOffsetX }

// SetShadowOffsetY sets the vertical shadow offset.
func (c *Context2D) SetShadowOffsetY(v float64) {
	if geom.Finite(v) {
		c.state().shadowOffsetY = v
	}
}

// ShadowOffsetY returns the vertical shadow offset.
func (c *Context2D) ShadowOffsetY() float64 { return c.state().shadowOffsetY }

// Compositing

// SetGlobalAlpha sets the alpha applied to every draw. Values outside
// [0, 1] are ignored.
func (c *Context2D) SetGlobalAlpha(a float64) {
	if a >= 0 && a <= 1 {
		c.state().globalAlpha = a
	}
}

// GlobalAlpha returns the global alpha.
func (c *Context2D) GlobalAlpha() float64 { return c.state().globalAlpha }

// SetGlobalCompositeOperation sets the composite operation.
func (c *Context2D) SetGlobalCompositeOperation(op CompositeOperation) {
	if op <= Luminosity {
		c.state().op = blend.Op(op)
	}
}

// GlobalCompositeOperation returns the composite operation.
func (c *Context2D) GlobalCompositeOperation() CompositeOperation {
	return CompositeOperation(c.state().op)
}

// SetImageSmoothingEnabled selects bilinear (true) or nearest neighbor
// sampling for images and patterns.
func (c *Context2D) SetImageSmoothingEnabled(v bool) { c.state().smoothing = v }

// ImageSmoothingEnabled reports whether images are smoothed.
func (c *Context2D) ImageSmoothingEnabled() bool { return c.state().smoothing }

// Text properties

// SetFont sets the font from a CSS font shorthand. An invalid shorthand
// leaves the font unchanged.
func (c *Context2D) SetFont(shorthand string) error {
	f, err := text.ParseFont(shorthand)
	if err != nil {
		return err
	}
	c.state().font = f
	return nil
}

// Font returns the font in canonical shorthand form.
func (c *Context2D) Font() string { return c.state().font.String() }

// SetTextAlign sets the horizontal text alignment.
func (c *Context2D) SetTextAlign(a TextAlign) {
	if a <= text.AlignCenter {
		c.state().textAlign = a
	}
}

// TextAlign returns the horizontal text alignment.
func (c *Context2D) TextAlign() TextAlign { return c.state().textAlign }

// SetTextBaseline sets the text baseline.
func (c *Context2D) SetTextBaseline(b TextBaseline) {
	if b <= text.BaselineBottom {
		c.state().textBaseline = b
	}
}

// TextBaseline returns the text baseline.
func (c *Context2D) TextBaseline() TextBaseline { return c.state().textBaseline }

// SetDirection sets the text direction.
func (c *Context2D) SetDirection(d Direction) {
	if d <= text.DirectionRTL {
		c.state().direction = d
	}
}

// Direction returns the text direction.
func (c *Context2D) Direction() Direction { return c.state().direction }
