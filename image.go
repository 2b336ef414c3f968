package canvas

import (
	"image"

	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/paint"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/raster"
)

// DrawImage draws src at its natural size with its top-left corner at
// (dx, dy).
func (c *Context2D) DrawImage(src ImageSource, dx, dy float64) error {
	if src == nil {
		return ErrEmptyImage
	}
	w, h := src.Size()
	return c.DrawImageSub(src, 0, 0, float64(w), float64(h), dx, dy, float64(w), float64(h))
}

// DrawImageScaled draws src scaled into the rectangle (dx, dy, dw, dh).
func (c *Context2D) DrawImageScaled(src ImageSource, dx, dy, dw, dh float64) error {
	if src == nil {
		return ErrEmptyImage
	}
	w, h := src.Size()
	return c.DrawImageSub(src, 0, 0, float64(w), float64(h), dx, dy, dw, dh)
}

// DrawImageSub draws the source rectangle (sx, sy, sw, sh) of src into
// the destination rectangle (dx, dy, dw, dh). Shadows, clipping, global
// alpha and the composite operation apply as for fills.
func (c *Context2D) DrawImageSub(src ImageSource, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	if src == nil {
		return ErrEmptyImage
	}
	if !geom.Finite(sx, sy, sw, sh, dx, dy, dw, dh) {
		return ErrNonFinite
	}
	iw, ih := src.Size()
	if iw == 0 || ih == 0 {
		return ErrEmptyImage
	}
	if sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return nil
	}

	st := c.state()
	// Image pixel space → user space → device space.
	m := st.transform.
		Multiply(geom.Translate(dx, dy)).
		Multiply(geom.Scale(dw/sw, dh/sh)).
		Multiply(geom.Translate(-sx, -sy))
	inv, ok := m.Invert()
	if !ok {
		return nil
	}

	// Only the part of the source rectangle inside the image is drawn.
	r := geom.Rect{Min: geom.Pt(min(sx, sx+sw), min(sy, sy+sh)), Max: geom.Pt(max(sx, sx+sw), max(sy, sy+sh))}
	r = r.Intersect(geom.Rect{Max: geom.Pt(float64(iw), float64(ih))})
	if r.Empty() {
		return nil
	}
	p := path.New()
	p.SetTransform(m)
	_ = p.Rect(r.Min.X, r.Min.Y, r.Max.X-r.Min.X, r.Max.Y-r.Min.Y)

	sampler := paint.NewPattern(src.paintImage(), paint.Pad, inv, st.smoothing)
	c.draw(c.flatten(p.Elements()), raster.NonZero, sampler)
	return nil
}

// CreateImageData allocates transparent black pixels.
func (c *Context2D) CreateImageData(width, height int) (*ImageData, error) {
	return NewImageData(width, height)
}

// GetImageData returns a copy of the pixels in the canvas rectangle
// (sx, sy, sw, sh) in straight alpha. Negative sizes extend left or up;
// pixels outside the canvas are transparent black.
func (c *Context2D) GetImageData(sx, sy, sw, sh int) (*ImageData, error) {
	if sw == 0 || sh == 0 {
		return nil, ErrIndexSize
	}
	if sw < 0 {
		sx, sw = sx+sw, -sw
	}
	if sh < 0 {
		sy, sh = sy+sh, -sh
	}
	out, err := NewImageData(sw, sh)
	if err != nil {
		return nil, err
	}
	area := image.Rect(sx, sy, sx+sw, sy+sh).Intersect(image.Rect(0, 0, c.canvas.width, c.canvas.height))
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			r, g, b, a := loadPixel(c.canvas.pix[(y*c.canvas.width+x)*4:]).Straight()
			o := ((y-sy)*sw + (x - sx)) * 4
			out.Data[o] = toByte(r)
			out.Data[o+1] = toByte(g)
			out.Data[o+2] = toByte(b)
			out.Data[o+3] = toByte(a)
		}
	}
	return out, nil
}

// PutImageData writes img to the canvas with its top-left corner at
// (dx, dy). The transform, clip, alpha and composite operation do not
// apply.
func (c *Context2D) PutImageData(img *ImageData, dx, dy int) error {
	if img == nil {
		return ErrEmptyImage
	}
	return c.PutImageDataDirty(img, dx, dy, 0, 0, img.Width, img.Height)
}

// PutImageDataDirty writes only the dirty rectangle of img, given in
// img's coordinates, to the canvas at (dx+dirtyX, dy+dirtyY).
func (c *Context2D) PutImageDataDirty(img *ImageData, dx, dy, dirtyX, dirtyY, dirtyW, dirtyH int) error {
	if img == nil {
		return ErrEmptyImage
	}
	if len(img.Data) != img.Width*img.Height*4 {
		return &SizeMismatchError{Len: len(img.Data), Width: img.Width, Height: img.Height}
	}
	if dirtyW < 0 {
		dirtyX, dirtyW = dirtyX+dirtyW, -dirtyW
	}
	if dirtyH < 0 {
		dirtyY, dirtyH = dirtyY+dirtyH, -dirtyH
	}
	dirty := image.Rect(dirtyX, dirtyY, dirtyX+dirtyW, dirtyY+dirtyH).
		Intersect(image.Rect(0, 0, img.Width, img.Height)).
		Intersect(image.Rect(-dx, -dy, c.canvas.width-dx, c.canvas.height-dy))
	for y := dirty.Min.Y; y < dirty.Max.Y; y++ {
		for x := dirty.Min.X; x < dirty.Max.X; x++ {
			s := img.Data[(y*img.Width+x)*4:]
			storePixel(c.canvas.pix[((y+dy)*c.canvas.width+x+dx)*4:], paint.FromRGBA8(s[0], s[1], s[2], s[3]))
		}
	}
	return nil
}

// Factories mirroring the CanvasRenderingContext2D methods.

// CreateLinearGradient creates a linear gradient. See NewLinearGradient.
func (c *Context2D) CreateLinearGradient(x0, y0, x1, y1 float64) (*Gradient, error) {
	return NewLinearGradient(x0, y0, x1, y1)
}

// CreateRadialGradient creates a two-circle gradient. See NewRadialGradient.
func (c *Context2D) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	return NewRadialGradient(x0, y0, r0, x1, y1, r1)
}

// CreateConicGradient creates a conic gradient. See NewConicGradient.
func (c *Context2D) CreateConicGradient(startAngle, x, y float64) (*Gradient, error) {
	return NewConicGradient(startAngle, x, y)
}

// CreatePattern creates a pattern from an image source. See NewPattern.
func (c *Context2D) CreatePattern(src ImageSource, repetition string) (*Pattern, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	return NewPattern(src, repetition)
}

// CreatePatternFromBytes decodes an encoded image with the canvas decoder
// and creates a pattern from it.
func (c *Context2D) CreatePatternFromBytes(data []byte, repetition string) (*Pattern, error) {
	if _, err := ParseRepeat(repetition); err != nil {
		return nil, err
	}
	img, err := c.canvas.DecodeImage(data)
	if err != nil {
		return nil, err
	}
	return NewPattern(img, repetition)
}
