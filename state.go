package canvas

import (
	"slices"

	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/text"
)

// drawingState is one entry of the save/restore stack.
type drawingState struct {
	transform geom.Matrix

	fill   Style
	stroke Style

	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	dash       []float64
	dashOffset float64

	shadowBlur    float64
	shadowColor   Color
	shadowOffsetX float64
	shadowOffsetY float64

	font         text.Font
	textAlign    text.Align
	textBaseline text.Baseline
	direction    text.Direction

	globalAlpha float64
	op          blend.Op
	smoothing   bool

	// clip is nil when nothing has been clipped. Stored masks are never
	// modified, so states may share them.
	clip *raster.Mask
}

func defaultState() drawingState {
	return drawingState{
		transform:   geom.Identity(),
		fill:        ColorStyle(Black),
		stroke:      ColorStyle(Black),
		lineWidth:   1,
		lineCap:     LineCapButt,
		lineJoin:    LineJoinMiter,
		miterLimit:  10,
		shadowColor: Transparent,
		font:        text.DefaultFont(),
		globalAlpha: 1,
		op:          blend.OpSourceOver,
		smoothing:   true,
	}
}

func (s *drawingState) clone() drawingState {
	c := *s
	c.dash = slices.Clone(s.dash)
	c.font.Families = slices.Clone(s.font.Families)
	return c
}

// shadowVisible reports whether draws cast a shadow.
func (s *drawingState) shadowVisible() bool {
	return s.shadowColor.A > 0 && (s.shadowBlur > 0 || s.shadowOffsetX != 0 || s.shadowOffsetY != 0)
}
