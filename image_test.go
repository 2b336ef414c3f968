package canvas

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

// solidImage returns a w×h ImageData filled with one straight-alpha color.
func solidImage(t *testing.T, w, h int, c Color) *ImageData {
	t.Helper()
	img, err := NewImageData(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(img.Data); i += 4 {
		img.Data[i], img.Data[i+1], img.Data[i+2], img.Data[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestGetImageDataStraightAlpha(t *testing.T) {
	_, ctx := newTestCanvas(t, 10, 10, WithBackground(color.Transparent))
	ctx.SetFillColor(RGBA(255, 0, 0, 0.5))
	mustNil(t, ctx.FillRect(0, 0, 10, 10))

	img, err := ctx.GetImageData(2, 2, 3, 3)
	mustNil(t, err)
	if img.Width != 3 || img.Height != 3 || len(img.Data) != 36 {
		t.Fatalf("GetImageData size = %dx%d (%d bytes), want 3x3 (36 bytes)", img.Width, img.Height, len(img.Data))
	}
	got := img.At(1, 1)
	if got.R != 255 || got.G != 0 || got.B != 0 || !channelNear(got.A, 128, 1) {
		t.Errorf("At(1, 1) = %+v, want {255 0 0 128}", got)
	}
}

func TestGetImageDataBounds(t *testing.T) {
	_, ctx := newTestCanvas(t, 10, 10)

	if _, err := ctx.GetImageData(0, 0, 0, 5); !errors.Is(err, ErrIndexSize) {
		t.Errorf("GetImageData(zero width) = %v, want ErrIndexSize", err)
	}

	// Pixels outside the canvas are transparent black.
	img, err := ctx.GetImageData(8, 8, 4, 4)
	mustNil(t, err)
	if got := img.At(0, 0); got != White {
		t.Errorf("At(0, 0) = %v, want white", got)
	}
	if got := img.At(3, 3); got != Transparent {
		t.Errorf("At(3, 3) = %v, want transparent", got)
	}

	// Negative sizes extend left and up.
	img, err = ctx.GetImageData(10, 10, -2, -3)
	mustNil(t, err)
	if img.Width != 2 || img.Height != 3 {
		t.Errorf("size = %dx%d, want 2x3", img.Width, img.Height)
	}
	if got := img.At(1, 2); got != White {
		t.Errorf("At(1, 2) = %v, want white", got)
	}
}

func TestPutImageDataRoundTrip(t *testing.T) {
	_, ctx := newTestCanvas(t, 10, 10)
	img, err := ImageDataFromBuffer([]byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 10, 20, 30, 255,
	}, 2)
	mustNil(t, err)

	// The transform, alpha and composite operation do not apply.
	mustNil(t, ctx.Translate(3, 3))
	ctx.SetGlobalAlpha(0.1)
	ctx.SetGlobalCompositeOperation(DestinationOver)
	mustNil(t, ctx.PutImageData(img, 1, 1))

	got, err := ctx.GetImageData(1, 1, 2, 2)
	mustNil(t, err)
	for i := range img.Data {
		if got.Data[i] != img.Data[i] {
			t.Fatalf("byte %d = %d, want %d", i, got.Data[i], img.Data[i])
		}
	}
}

func TestPutImageDataReplacesPixels(t *testing.T) {
	c, ctx := newTestCanvas(t, 4, 4)
	img := solidImage(t, 2, 2, Transparent)
	mustNil(t, ctx.PutImageData(img, 0, 0))
	assertPixel(t, c, 1, 1, color.RGBA{})
	assertPixel(t, c, 2, 2, opaqueWhite)

	// Writes past the canvas edges are clipped.
	mustNil(t, ctx.PutImageData(solidImage(t, 3, 3, Black), 2, 2))
	assertPixel(t, c, 3, 3, opaqueBlack)
}

func TestPutImageDataDirty(t *testing.T) {
	c, ctx := newTestCanvas(t, 10, 10)
	img := solidImage(t, 4, 4, Black)
	mustNil(t, ctx.PutImageDataDirty(img, 2, 2, 1, 1, 2, 2))

	assertPixel(t, c, 2, 2, opaqueWhite)
	assertPixel(t, c, 3, 3, opaqueBlack)
	assertPixel(t, c, 4, 4, opaqueBlack)
	assertPixel(t, c, 5, 5, opaqueWhite)
}

func TestPutImageDataSizeMismatch(t *testing.T) {
	_, ctx := newTestCanvas(t, 4, 4)
	bad := &ImageData{Width: 2, Height: 2, Data: make([]byte, 5)}
	err := ctx.PutImageData(bad, 0, 0)
	var sme *SizeMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("PutImageData(bad) = %v, want *SizeMismatchError", err)
	}
	if !errors.Is(err, ErrSizeMismatch) {
		t.Error("SizeMismatchError does not unwrap to ErrSizeMismatch")
	}
	if err := ctx.PutImageData(nil, 0, 0); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("PutImageData(nil) = %v, want ErrEmptyImage", err)
	}
}

func TestDrawImage(t *testing.T) {
	c, ctx := newTestCanvas(t, 30, 30)
	img := solidImage(t, 10, 10, Color{B: 255, A: 255})
	mustNil(t, ctx.DrawImage(img, 5, 5))

	assertPixel(t, c, 5, 5, opaqueBlue)
	assertPixel(t, c, 14, 14, opaqueBlue)
	assertPixel(t, c, 2, 2, opaqueWhite)
	assertPixel(t, c, 16, 16, opaqueWhite)
}

func TestDrawImageScaled(t *testing.T) {
	c, ctx := newTestCanvas(t, 40, 40)
	img, err := ImageDataFromBuffer([]byte{
		255, 0, 0, 255, 0, 0, 255, 255,
		0, 0, 0, 255, 255, 255, 255, 255,
	}, 2, 2)
	mustNil(t, err)

	ctx.SetImageSmoothingEnabled(false)
	mustNil(t, ctx.DrawImageScaled(img, 0, 0, 20, 20))
	assertPixel(t, c, 5, 5, opaqueRed)
	assertPixel(t, c, 15, 5, opaqueBlue)
	assertPixel(t, c, 5, 15, opaqueBlack)
	assertPixel(t, c, 25, 25, opaqueWhite)

	// Smoothed edges stay opaque.
	c, ctx = newTestCanvas(t, 40, 40, WithBackground(color.Transparent))
	mustNil(t, ctx.DrawImageScaled(solidImage(t, 2, 2, Black), 0, 0, 20, 20))
	assertPixel(t, c, 0, 0, opaqueBlack)
	assertPixel(t, c, 19, 19, opaqueBlack)
}

func TestDrawImageSub(t *testing.T) {
	c, ctx := newTestCanvas(t, 20, 20)
	img, err := ImageDataFromBuffer([]byte{
		255, 0, 0, 255, 0, 0, 255, 255,
	}, 2, 1)
	mustNil(t, err)

	ctx.SetImageSmoothingEnabled(false)
	// Only the blue pixel, stretched to 10×10.
	mustNil(t, ctx.DrawImageSub(img, 1, 0, 1, 1, 0, 0, 10, 10))
	assertPixel(t, c, 1, 1, opaqueBlue)
	assertPixel(t, c, 8, 8, opaqueBlue)
	assertPixel(t, c, 12, 12, opaqueWhite)
}

func TestDrawImageErrors(t *testing.T) {
	_, ctx := newTestCanvas(t, 4, 4)
	if err := ctx.DrawImage(nil, 0, 0); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("DrawImage(nil) = %v, want ErrEmptyImage", err)
	}
	img := solidImage(t, 1, 1, Black)
	if err := ctx.DrawImageScaled(img, 0, 0, math.Inf(1), 1); !errors.Is(err, ErrNonFinite) {
		t.Errorf("DrawImageScaled(Inf) = %v, want ErrNonFinite", err)
	}
}

func TestDrawCanvasOntoCanvas(t *testing.T) {
	src, sctx := newTestCanvas(t, 10, 10)
	sctx.SetFillColor(Color{R: 255, A: 255})
	mustNil(t, sctx.FillRect(0, 0, 10, 10))

	dst, dctx := newTestCanvas(t, 20, 20)
	mustNil(t, dctx.DrawImage(src, 10, 10))
	assertPixel(t, dst, 15, 15, opaqueRed)
	assertPixel(t, dst, 5, 5, opaqueWhite)
}

func TestCreatePattern(t *testing.T) {
	c, ctx := newTestCanvas(t, 8, 8)
	img, err := ImageDataFromBuffer([]byte{
		255, 0, 0, 255, 0, 0, 255, 255,
		0, 0, 255, 255, 255, 0, 0, 255,
	}, 2)
	mustNil(t, err)
	p, err := ctx.CreatePattern(img, "repeat")
	mustNil(t, err)

	ctx.SetImageSmoothingEnabled(false)
	ctx.SetFillStyle(PatternStyle(p))
	mustNil(t, ctx.FillRect(0, 0, 8, 8))

	assertPixel(t, c, 0, 0, opaqueRed)
	assertPixel(t, c, 1, 0, opaqueBlue)
	assertPixel(t, c, 2, 0, opaqueRed)
	assertPixel(t, c, 3, 1, opaqueRed)
	assertPixel(t, c, 6, 7, opaqueBlue)
}

func TestPatternNoRepeat(t *testing.T) {
	c, ctx := newTestCanvas(t, 8, 8)
	p, err := NewPattern(solidImage(t, 2, 2, Black), "no-repeat")
	mustNil(t, err)
	ctx.SetFillStyle(PatternStyle(p))
	mustNil(t, ctx.FillRect(0, 0, 8, 8))
	assertPixel(t, c, 0, 0, opaqueBlack)
	assertPixel(t, c, 5, 5, opaqueWhite)
}

func TestPatternSetTransform(t *testing.T) {
	c, ctx := newTestCanvas(t, 8, 8)
	p, err := NewPattern(solidImage(t, 2, 2, Black), "no-repeat")
	mustNil(t, err)
	p.SetTransform(Translate(4, 4))
	if got := p.Transform(); got != Translate(4, 4) {
		t.Errorf("Transform() = %+v, want translate(4, 4)", got)
	}
	// Singular matrices are ignored.
	p.SetTransform(Scale(0, 1))
	if got := p.Transform(); got != Translate(4, 4) {
		t.Errorf("Transform() after singular matrix = %+v", got)
	}

	ctx.SetFillStyle(PatternStyle(p))
	mustNil(t, ctx.FillRect(0, 0, 8, 8))
	assertPixel(t, c, 0, 0, opaqueWhite)
	assertPixel(t, c, 5, 5, opaqueBlack)
}

func TestCreatePatternFromBytes(t *testing.T) {
	src, sctx := newTestCanvas(t, 4, 4)
	sctx.SetFillColor(Color{B: 255, A: 255})
	mustNil(t, sctx.FillRect(0, 0, 4, 4))
	data, err := src.ToBuffer("image/png")
	mustNil(t, err)

	c, ctx := newTestCanvas(t, 10, 10)
	p, err := ctx.CreatePatternFromBytes(data, "")
	mustNil(t, err)
	if p.Repeat() != RepeatBoth {
		t.Errorf("Repeat() = %v, want repeat", p.Repeat())
	}
	ctx.SetFillStyle(PatternStyle(p))
	mustNil(t, ctx.FillRect(0, 0, 10, 10))
	assertPixel(t, c, 7, 7, opaqueBlue)

	if _, err := ctx.CreatePatternFromBytes(data, "diagonal"); !errors.Is(err, ErrInvalidRepeat) {
		t.Errorf("CreatePatternFromBytes(bad repeat) = %v, want ErrInvalidRepeat", err)
	}
	if _, err := ctx.CreatePattern(nil, "repeat"); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("CreatePattern(nil) = %v, want ErrEmptyImage", err)
	}
}

func TestParseRepeat(t *testing.T) {
	tests := []struct {
		in      string
		want    Repeat
		wantErr bool
	}{
		{"", RepeatBoth, false},
		{"repeat", RepeatBoth, false},
		{"repeat-x", RepeatX, false},
		{"repeat-y", RepeatY, false},
		{"no-repeat", NoRepeat, false},
		{"Repeat", RepeatBoth, true},
		{"space", RepeatBoth, true},
	}
	for _, tt := range tests {
		got, err := ParseRepeat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRepeat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseRepeat(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}
