package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/gogpu/canvas/imageio"
	"github.com/gogpu/canvas/internal/paint"
)

// maxDimension bounds each side of a canvas.
const maxDimension = 1 << 15

// Canvas owns a premultiplied RGBA pixel buffer and its drawing context.
type Canvas struct {
	width, height int
	pix           []byte
	ctx           *Context2D
	opts          options
}

// NewCanvas creates a canvas cleared to the background color (opaque
// white unless WithBackground is given).
func NewCanvas(width, height int, opts ...Option) (*Canvas, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{opts: o}
	c.allocate(width, height)
	c.ctx = newContext2D(c)
	Logger().Debug("canvas created", slog.Int("width", width), slog.Int("height", height))
	return c, nil
}

func validSize(w, h int) bool {
	return w > 0 && h > 0 && w <= maxDimension && h <= maxDimension
}

func (c *Canvas) allocate(w, h int) {
	pix := make([]byte, w*h*4)
	r, g, b, a := c.opts.background.RGBA()
	px := [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
	if px != [4]byte{} {
		for i := 0; i < len(pix); i += 4 {
			copy(pix[i:i+4], px[:])
		}
	}
	c.width, c.height, c.pix = w, h, pix
}

// Width returns the width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height in pixels.
func (c *Canvas) Height() int { return c.height }

// Size implements ImageSource.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Resize reallocates the pixel buffer, clears it to the background and
// resets the context to its default state. On error the canvas keeps its
// previous buffer and state.
func (c *Canvas) Resize(width, height int) error {
	if !validSize(width, height) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	c.allocate(width, height)
	c.ctx.resetState()
	Logger().Debug("canvas resized", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// SetWidth resizes the canvas to a new width.
func (c *Canvas) SetWidth(width int) error { return c.Resize(width, c.height) }

// SetHeight resizes the canvas to a new height.
func (c *Canvas) SetHeight(height int) error { return c.Resize(c.width, height) }

// Context2D returns the canvas' drawing context. Every call returns the
// same context.
func (c *Canvas) Context2D() *Context2D { return c.ctx }

// RGBA returns the pixels as an image sharing the canvas buffer. The
// image is invalidated by Resize.
func (c *Canvas) RGBA() *image.RGBA {
	return &image.RGBA{Pix: c.pix, Stride: c.width * 4, Rect: image.Rect(0, 0, c.width, c.height)}
}

// ToBuffer encodes the pixels. mime is "image/png" (also for ""),
// "image/jpeg", "image/webp", "image/bmp" or "image/tiff"; quality in
// [0, 1] applies to JPEG and defaults to 0.92. WebP is lossless.
func (c *Canvas) ToBuffer(mime string, quality ...float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, mime, quality...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the encoded pixels to w. See ToBuffer.
func (c *Canvas) Encode(w io.Writer, mime string, quality ...float64) error {
	q := -1.0
	if len(quality) > 0 {
		q = quality[0]
	}
	return imageio.Encode(w, c.RGBA(), mime, q)
}

// DecodeImage decodes encoded image bytes with the canvas decoder.
func (c *Canvas) DecodeImage(data []byte) (*ImageData, error) {
	img, err := c.opts.decoder.Decode(data)
	if err != nil {
		Logger().Warn("image decode failed", slog.Int("bytes", len(data)), slog.Any("error", err))
		return nil, fmt.Errorf("canvas: decode image: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	d := &ImageData{Width: b.Dx(), Height: b.Dy(), Data: make([]byte, b.Dx()*b.Dy()*4)}
	for y := range d.Height {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(d.Data[y*d.Width*4:], img.Pix[off:off+d.Width*4])
	}
	return d, nil
}

func (c *Canvas) paintImage() *paint.Image {
	img := &paint.Image{Width: c.width, Height: c.height, Pix: make([]paint.Color, c.width*c.height)}
	for i := range img.Pix {
		img.Pix[i] = loadPixel(c.pix[i*4:])
	}
	return img
}

// loadPixel reads a premultiplied RGBA8 pixel.
func loadPixel(p []byte) paint.Color {
	return paint.Color{
		R: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		B: float32(p[2]) / 255,
		A: float32(p[3]) / 255,
	}
}

// storePixel writes a premultiplied color as RGBA8, keeping color
// channels within alpha.
func storePixel(p []byte, c paint.Color) {
	a := toByte(c.A)
	p[0] = min(toByte(c.R), a)
	p[1] = min(toByte(c.G), a)
	p[2] = min(toByte(c.B), a)
	p[3] = a
}

func toByte(v float32) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

// compile-time interface checks
var (
	_ ImageSource = (*Canvas)(nil)
	_ ImageSource = (*ImageData)(nil)
	_ color.Color = Color{}
)
