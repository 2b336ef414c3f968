package canvas

import (
	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/internal/stroke"
)

// Fill fills the current path with the fill style. The fill rule defaults
// to NonZero. An empty path draws nothing.
func (c *Context2D) Fill(rule ...FillRule) { c.fill(nil, fillRule(rule)) }

// FillPath fills p under the current transform.
func (c *Context2D) FillPath(p *Path2D, rule ...FillRule) {
	if p == nil {
		return
	}
	c.fill(p, fillRule(rule))
}

// Stroke strokes the current path with the stroke style and line styles.
func (c *Context2D) Stroke() { c.stroke(nil) }

// StrokePath strokes p under the current transform.
func (c *Context2D) StrokePath(p *Path2D) {
	if p == nil {
		return
	}
	c.stroke(p)
}

// Clip intersects the clip region with the current path. Clip regions
// only shrink; Restore brings back the region of the saved state.
func (c *Context2D) Clip(rule ...FillRule) { c.clip(nil, fillRule(rule)) }

// ClipPath intersects the clip region with p under the current transform.
func (c *Context2D) ClipPath(p *Path2D, rule ...FillRule) {
	if p == nil {
		return
	}
	c.clip(p, fillRule(rule))
}

// IsPointInPath reports whether the canvas point (x, y) is inside the
// current path. The point is not affected by the current transform.
func (c *Context2D) IsPointInPath(x, y float64, rule ...FillRule) bool {
	return c.isPointInPath(nil, x, y, fillRule(rule))
}

// IsPointInPathOf reports whether (x, y) is inside p under the current
// transform.
func (c *Context2D) IsPointInPathOf(p *Path2D, x, y float64, rule ...FillRule) bool {
	if p == nil {
		return false
	}
	return c.isPointInPath(p, x, y, fillRule(rule))
}

// IsPointInStroke reports whether (x, y) is inside the area the current
// path's stroke would cover with the current line styles.
func (c *Context2D) IsPointInStroke(x, y float64) bool {
	return c.isPointInStroke(nil, x, y)
}

// IsPointInStrokeOf reports whether (x, y) is inside the stroke of p.
func (c *Context2D) IsPointInStrokeOf(p *Path2D, x, y float64) bool {
	if p == nil {
		return false
	}
	return c.isPointInStroke(p, x, y)
}

// deviceElements returns the target geometry in device space: the current
// path when p is nil, otherwise p under the current transform.
func (c *Context2D) deviceElements(p *Path2D) []path.Element {
	if p == nil {
		return c.path.Elements()
	}
	return p.device(c.state().transform)
}

// userElements returns the target geometry in the user space of the
// current transform. ok is false when the transform cannot be inverted.
func (c *Context2D) userElements(p *Path2D) ([]path.Element, bool) {
	if p != nil {
		return p.p.Elements(), true
	}
	inv, ok := c.state().transform.Invert()
	if !ok {
		return nil, false
	}
	return path.Transform(c.path.Elements(), inv), true
}

func (c *Context2D) flatten(elems []path.Element) []path.Subpath {
	return path.Flatten(elems, c.canvas.opts.tolerance)
}

func (c *Context2D) fill(p *Path2D, rule raster.FillRule) {
	elems := c.deviceElements(p)
	if len(elems) == 0 {
		return
	}
	st := c.state()
	c.draw(c.flatten(elems), rule, st.fill.sampler(st.transform, st.smoothing))
}

func (c *Context2D) stroke(p *Path2D) {
	outline := c.strokeOutline(p)
	if len(outline) == 0 {
		return
	}
	st := c.state()
	c.draw(outline, raster.NonZero, st.stroke.sampler(st.transform, st.smoothing))
}

// strokeOutline expands the target path in user space, so non-uniform
// transforms shape the pen, and maps the outline to device space.
func (c *Context2D) strokeOutline(p *Path2D) []path.Subpath {
	elems, ok := c.userElements(p)
	if !ok || len(elems) == 0 {
		return nil
	}
	return c.expandStroke(elems, c.state().transform)
}

// expandStroke flattens, dashes and expands user-space elements and maps
// the resulting polygons through m.
func (c *Context2D) expandStroke(elems []path.Element, m geom.Matrix) []path.Subpath {
	st := c.state()
	scale := m.MaxScale()
	if !(scale > 0) {
		return nil
	}
	tol := c.canvas.opts.tolerance / scale

	subs := path.Flatten(elems, tol)
	if len(st.dash) > 0 {
		dash := &stroke.Dash{Array: st.dash, Offset: st.dashOffset}
		subs = dash.Apply(subs)
	}
	ex := stroke.NewExpander(stroke.Style{
		Width:      st.lineWidth,
		Cap:        st.lineCap.internal(),
		Join:       st.lineJoin.internal(),
		MiterLimit: st.miterLimit,
	})
	ex.SetTolerance(tol)
	return transformSubpaths(ex.Expand(subs), m)
}

func (c *Context2D) clip(p *Path2D, rule raster.FillRule) {
	st := c.state()
	w, h := c.canvas.width, c.canvas.height
	mask := raster.Fill(c.flatten(c.deviceElements(p)), rule, w, h)
	if st.clip != nil {
		mask.Intersect(st.clip)
	}
	st.clip = mask
}

func (c *Context2D) isPointInPath(p *Path2D, x, y float64, rule raster.FillRule) bool {
	if !geom.Finite(x, y) {
		return false
	}
	elems := c.deviceElements(p)
	if len(elems) == 0 {
		return false
	}
	return raster.Contains(c.flatten(elems), geom.Pt(x, y), rule)
}

func (c *Context2D) isPointInStroke(p *Path2D, x, y float64) bool {
	if !geom.Finite(x, y) {
		return false
	}
	outline := c.strokeOutline(p)
	if len(outline) == 0 {
		return false
	}
	return raster.Contains(outline, geom.Pt(x, y), raster.NonZero)
}

// Rectangles. These neither use nor change the current path.

// rectElements returns the closed rectangle (x, y, w, h) in device space.
func (c *Context2D) rectElements(x, y, w, h float64) []path.Element {
	p := path.New()
	p.SetTransform(c.state().transform)
	_ = p.Rect(x, y, w, h)
	return p.Elements()
}

// FillRect fills a rectangle with the fill style.
func (c *Context2D) FillRect(x, y, w, h float64) error {
	if !geom.Finite(x, y, w, h) {
		return ErrNonFinite
	}
	if w == 0 || h == 0 {
		return nil
	}
	st := c.state()
	c.draw(c.flatten(c.rectElements(x, y, w, h)), raster.NonZero, st.fill.sampler(st.transform, st.smoothing))
	return nil
}

// StrokeRect strokes the outline of a rectangle with the stroke style.
func (c *Context2D) StrokeRect(x, y, w, h float64) error {
	if !geom.Finite(x, y, w, h) {
		return ErrNonFinite
	}
	if w == 0 && h == 0 {
		return nil
	}
	rect := path.New()
	_ = rect.Rect(x, y, w, h)
	st := c.state()
	outline := c.expandStroke(rect.Elements(), st.transform)
	c.draw(outline, raster.NonZero, st.stroke.sampler(st.transform, st.smoothing))
	return nil
}

// ClearRect sets the pixels of a rectangle to transparent black. Only the
// transform and the clip region apply; shadows, alpha and the composite
// operation do not.
func (c *Context2D) ClearRect(x, y, w, h float64) error {
	if !geom.Finite(x, y, w, h) {
		return ErrNonFinite
	}
	if w == 0 || h == 0 {
		return nil
	}
	st := c.state()
	cov := raster.Fill(c.flatten(c.rectElements(x, y, w, h)), raster.NonZero, c.canvas.width, c.canvas.height)
	r := cov.Bounds
	if st.clip != nil {
		r = r.Intersect(st.clip.Bounds)
	}
	if r.Empty() {
		return nil
	}
	buf := c.load(r)
	i := 0
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			k := cov.At(px, py)
			if st.clip != nil {
				k *= st.clip.At(px, py)
			}
			buf[i] = buf[i].Scale(1 - k)
			i++
		}
	}
	c.store(r, buf)
	return nil
}
