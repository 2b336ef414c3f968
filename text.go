package canvas

import (
	"log/slog"

	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/text"
)

// FillText fills s with its anchor at (x, y), positioned by textAlign and
// textBaseline. With maxWidth, a wider run is compressed horizontally to
// fit; a maxWidth that is not positive draws nothing.
func (c *Context2D) FillText(s string, x, y float64, maxWidth ...float64) error {
	p, err := c.textPath(s, x, y, maxWidth)
	if err != nil || p == nil {
		return err
	}
	st := c.state()
	elems := path.Transform(p.Elements(), st.transform)
	c.draw(c.flatten(elems), raster.NonZero, st.fill.sampler(st.transform, st.smoothing))
	return nil
}

// StrokeText strokes the outlines of s with the line styles. See FillText.
func (c *Context2D) StrokeText(s string, x, y float64, maxWidth ...float64) error {
	p, err := c.textPath(s, x, y, maxWidth)
	if err != nil || p == nil {
		return err
	}
	st := c.state()
	outline := c.expandStroke(p.Elements(), st.transform)
	c.draw(outline, raster.NonZero, st.stroke.sampler(st.transform, st.smoothing))
	return nil
}

// MeasureText lays out s with the current font, alignment, baseline and
// direction, and returns its metrics without drawing.
func (c *Context2D) MeasureText(s string) TextMetrics {
	face := c.face()
	if face == nil {
		return TextMetrics{}
	}
	st := c.state()
	return text.Measure(face, s, st.textAlign, st.textBaseline, st.direction)
}

// textPath lays out s and returns its glyph outlines in user space.
// A nil path means there is nothing to draw.
func (c *Context2D) textPath(s string, x, y float64, maxWidth []float64) (*path.Path, error) {
	if !geom.Finite(x, y) {
		return nil, ErrNonFinite
	}
	face := c.face()
	if face == nil || s == "" {
		return nil, nil
	}
	st := c.state()
	run := text.NewRun(face, s, st.textAlign, st.textBaseline, st.direction)
	if len(maxWidth) > 0 && !run.Fit(maxWidth[0]) {
		return nil, nil
	}

	p := path.New()
	p.SetTransform(geom.Translate(x, y))
	open := false
	run.Outline(func(op text.SegmentOp, pts []text.Point) {
		switch op {
		case text.SegmentMoveTo:
			if open {
				p.Close()
			}
			_ = p.MoveTo(pts[0].X, pts[0].Y)
			open = true
		case text.SegmentLineTo:
			_ = p.LineTo(pts[0].X, pts[0].Y)
		case text.SegmentQuadTo:
			_ = p.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case text.SegmentCubeTo:
			_ = p.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		}
	})
	if open {
		p.Close()
	}
	if p.Empty() {
		return nil, nil
	}
	return p, nil
}

// face resolves the current font. Provider failures fall back to the
// builtin fonts; the last resolved face is reused while the font is
// unchanged.
func (c *Context2D) face() text.Face {
	f := c.state().font
	key := f.String()
	if c.faceKey == key && c.cachedFace != nil {
		return c.cachedFace
	}

	face, err := c.canvas.opts.fonts.Face(f)
	if err != nil || face == nil {
		Logger().Warn("font provider failed, using builtin font",
			slog.String("font", key), slog.Any("error", err))
		face, err = text.Default().Face(f)
		if err != nil {
			Logger().Warn("builtin font unavailable", slog.String("font", key), slog.Any("error", err))
			return nil
		}
	}
	Logger().Debug("font resolved", slog.String("font", key))
	c.faceKey, c.cachedFace = key, face
	return face
}
