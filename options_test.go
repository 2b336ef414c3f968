package canvas

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/canvas/imageio"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/text"
)

func TestDefaultOptions(t *testing.T) {
	c, _ := newTestCanvas(t, 1, 1)
	if c.opts.tolerance != path.Tolerance {
		t.Errorf("tolerance = %v, want %v", c.opts.tolerance, path.Tolerance)
	}
	if c.opts.fonts != text.Default() {
		t.Error("default font provider is not the shared builtin provider")
	}
	if _, ok := c.opts.decoder.(imageio.DefaultDecoder); !ok {
		t.Errorf("decoder = %T, want imageio.DefaultDecoder", c.opts.decoder)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	c, _ := newTestCanvas(t, 1, 1,
		WithTolerance(0),
		WithTolerance(-1),
		WithFontProvider(nil),
		WithImageDecoder(nil),
		WithBackground(nil),
	)
	if c.opts.tolerance != path.Tolerance {
		t.Errorf("tolerance = %v, want %v", c.opts.tolerance, path.Tolerance)
	}
	if c.opts.fonts == nil || c.opts.decoder == nil || c.opts.background == nil {
		t.Error("nil option replaced a default")
	}
	assertPixel(t, c, 0, 0, opaqueWhite)
}

func TestWithTolerance(t *testing.T) {
	c, _ := newTestCanvas(t, 1, 1, WithTolerance(2))
	if c.opts.tolerance != 2 {
		t.Errorf("tolerance = %v, want 2", c.opts.tolerance)
	}
}

func TestWithBackground(t *testing.T) {
	bg := color.NRGBA{R: 255, A: 128}
	c, ctx := newTestCanvas(t, 2, 2, WithBackground(bg))
	want := color.RGBA{R: 128, A: 128}
	assertPixel(t, c, 1, 1, want)

	ctx.SetFillColor(Black)
	mustNil(t, ctx.FillRect(0, 0, 2, 2))
	ctx.Reset()
	assertPixel(t, c, 1, 1, want)
}

func TestWithImageDecoder(t *testing.T) {
	calls := 0
	dec := imageio.DecoderFunc(func(data []byte) (*image.NRGBA, error) {
		calls++
		if len(data) == 0 {
			return nil, errors.New("empty")
		}
		img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		img.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
		return img, nil
	})
	c, ctx := newTestCanvas(t, 4, 4, WithImageDecoder(dec))

	img, err := c.DecodeImage([]byte("anything"))
	mustNil(t, err)
	if got := img.At(0, 0); got != (Color{G: 255, A: 255}) {
		t.Errorf("At(0, 0) = %+v, want green", got)
	}

	p, err := ctx.CreatePatternFromBytes([]byte("x"), "repeat")
	mustNil(t, err)
	ctx.SetFillStyle(PatternStyle(p))
	mustNil(t, ctx.FillRect(0, 0, 4, 4))
	assertPixel(t, c, 3, 3, color.RGBA{G: 255, A: 255})

	if _, err := c.DecodeImage(nil); err == nil {
		t.Error("DecodeImage(nil) with failing decoder = nil error")
	}
	if calls != 3 {
		t.Errorf("decoder called %d times, want 3", calls)
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if len(v) < len(versionString) || v[:len(versionString)] != versionString {
		t.Errorf("Version() = %q, want prefix %q", v, versionString)
	}
}
