package canvas

import (
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/filter"
	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/paint"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/raster"
)

// Rendering pipeline:
//
//	device polygons → raster.Fill → coverage
//	style → paint.Sampler (snapshot)
//	shadow: polygons + offset → padded coverage × paint alpha → blur → tint
//	composite: shadow pass, then shape pass, weighted by the clip mask
//
// Every draw composes into a scratch buffer covering the affected region
// and copies it back at the end, so a draw is never partially visible.

// draw renders device-space polygons with src under the current state.
func (c *Context2D) draw(subs []path.Subpath, rule raster.FillRule, src paint.Sampler) {
	if len(subs) == 0 {
		return
	}
	st := c.state()
	w, h := c.canvas.width, c.canvas.height
	alpha := float32(st.globalAlpha)
	if alpha <= 0 && !st.op.Unbounded() {
		return
	}

	cov := raster.Fill(subs, rule, w, h)
	var shadow *raster.Mask
	if st.shadowVisible() {
		shadow = c.shadowMask(subs, rule, src)
	}

	region := c.region(cov, shadow)
	if region.Empty() {
		Logger().Debug("draw skipped: empty region", slog.String("op", st.op.String()))
		return
	}

	buf := c.load(region)
	if shadow != nil {
		tint := st.shadowColor.premultiplied().Scale(alpha)
		c.compositeRegion(buf, region, func(x, y int) paint.Color {
			return tint.Scale(shadow.At(x, y))
		})
	}
	c.compositeRegion(buf, region, func(x, y int) paint.Color {
		k := cov.At(x, y)
		if k <= 0 {
			return paint.Transparent
		}
		return src.At(float64(x)+0.5, float64(y)+0.5).Scale(k * alpha)
	})
	c.store(region, buf)
}

// region returns the pixels a draw may change. Bounded operations touch
// only the shape and its shadow; unbounded ones the whole clip area.
func (c *Context2D) region(cov, shadow *raster.Mask) image.Rectangle {
	st := c.state()
	r := image.Rect(0, 0, c.canvas.width, c.canvas.height)
	if !st.op.Unbounded() {
		b := cov.Bounds
		if shadow != nil {
			b = b.Union(shadow.Bounds)
		}
		r = r.Intersect(b)
	}
	if st.clip != nil {
		r = r.Intersect(st.clip.Bounds)
	}
	return r
}

// compositeRegion blends the colors produced by src over buf, weighted by
// the clip mask.
func (c *Context2D) compositeRegion(buf []paint.Color, r image.Rectangle, src func(x, y int) paint.Color) {
	st := c.state()
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			clip := float32(1)
			if st.clip != nil {
				clip = st.clip.At(x, y)
			}
			buf[i] = blend.Composite(st.op, src(x, y), buf[i], clip)
			i++
		}
	}
}

// shadowMask rasterizes the shadow of the polygons: their coverage times
// the paint alpha, offset and blurred, in canvas coordinates.
func (c *Context2D) shadowMask(subs []path.Subpath, rule raster.FillRule, src paint.Sampler) *raster.Mask {
	st := c.state()
	w, h := c.canvas.width, c.canvas.height
	pad := filter.Padding(st.shadowBlur)
	dx := math.Round(st.shadowOffsetX)
	dy := math.Round(st.shadowOffsetY)

	shifted := translateSubpaths(subs, dx+float64(pad), dy+float64(pad))
	plane := raster.Fill(shifted, rule, w+2*pad, h+2*pad)

	opaque := paint.Opaque(src)
	b := plane.Bounds
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := y*plane.Width + x
			if plane.Data[i] == 0 || opaque {
				continue
			}
			sx := float64(x-pad) - dx + 0.5
			sy := float64(y-pad) - dy + 0.5
			plane.Data[i] *= src.At(sx, sy).A
		}
	}
	return filter.Shadow(plane, st.shadowBlur, pad, w, h)
}

func translateSubpaths(subs []path.Subpath, dx, dy float64) []path.Subpath {
	out := make([]path.Subpath, len(subs))
	d := geom.Pt(dx, dy)
	for i, sp := range subs {
		pts := make([]geom.Point, len(sp.Points))
		for j, p := range sp.Points {
			pts[j] = p.Add(d)
		}
		out[i] = path.Subpath{Points: pts, Closed: sp.Closed}
	}
	return out
}

func transformSubpaths(subs []path.Subpath, m geom.Matrix) []path.Subpath {
	for i := range subs {
		for j, p := range subs[i].Points {
			subs[i].Points[j] = m.Apply(p)
		}
	}
	return subs
}

// load copies a region of the canvas into a scratch buffer.
func (c *Context2D) load(r image.Rectangle) []paint.Color {
	buf := make([]paint.Color, r.Dx()*r.Dy())
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.canvas.pix[(y*c.canvas.width+r.Min.X)*4:]
		for x := 0; x < r.Dx(); x++ {
			buf[i] = loadPixel(row[x*4:])
			i++
		}
	}
	return buf
}

// store commits a scratch buffer back to the canvas.
func (c *Context2D) store(r image.Rectangle, buf []paint.Color) {
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.canvas.pix[(y*c.canvas.width+r.Min.X)*4:]
		for x := 0; x < r.Dx(); x++ {
			storePixel(row[x*4:], buf[i])
			i++
		}
	}
}
