package filter

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/canvas/internal/raster"
)

func TestSigma(t *testing.T) {
	tests := []struct {
		blur, want float64
	}{
		{0, 0}, {-3, 0}, {math.NaN(), 0}, {math.Inf(1), 0}, {10, 5},
	}
	for _, tt := range tests {
		if got := Sigma(tt.blur); got != tt.want {
			t.Errorf("Sigma(%v) = %v, want %v", tt.blur, got, tt.want)
		}
	}
	if Padding(10) != 15 {
		t.Errorf("Padding(10) = %d, want 15", Padding(10))
	}
}

func TestGaussianKernel(t *testing.T) {
	k := GaussianKernel(2)
	if len(k) != 13 {
		t.Fatalf("Expected 13 taps, got %d", len(k))
	}
	var sum float32
	for _, v := range k {
		sum += v
	}
	if math.Abs(float64(sum-1)) > 1e-5 {
		t.Errorf("Expected normalized kernel, sum = %v", sum)
	}
	for i := range len(k) / 2 {
		if k[i] != k[len(k)-1-i] {
			t.Errorf("Expected symmetric kernel at %d", i)
		}
		if k[i] >= k[i+1] {
			t.Errorf("Expected kernel to increase towards the center at %d", i)
		}
	}
	if id := GaussianKernel(0); len(id) != 1 || id[0] != 1 {
		t.Errorf("Expected identity kernel, got %v", id)
	}
}

func TestCachedKernelShared(t *testing.T) {
	a := CachedGaussianKernel(1.5)
	b := CachedGaussianKernel(1.5)
	if &a[0] != &b[0] {
		t.Error("Expected cached kernels to be shared")
	}
}

func square(w, h int, r image.Rectangle) *raster.Mask {
	m := raster.NewMask(w, h)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Data[y*w+x] = 1
		}
	}
	m.Bounds = r
	return m
}

func total(m *raster.Mask) float64 {
	var s float64
	for _, v := range m.Data {
		s += float64(v)
	}
	return s
}

func TestBlurPreservesMass(t *testing.T) {
	m := square(64, 64, image.Rect(24, 24, 40, 40))
	b := Blur(m, 3)
	if math.Abs(total(b)-total(m)) > 0.01*total(m) {
		t.Errorf("Expected mass preserved, got %v from %v", total(b), total(m))
	}
	want := image.Rect(15, 15, 49, 49)
	if b.Bounds != want {
		t.Errorf("bounds = %v, want %v", b.Bounds, want)
	}
	// Center stays nearly full, the edge is softened, outside gains coverage.
	if b.At(32, 32) < 0.9 {
		t.Errorf("center = %v", b.At(32, 32))
	}
	if e := b.At(24, 32); e < 0.4 || e > 0.7 {
		t.Errorf("edge = %v, want about 0.5", e)
	}
	if b.At(20, 32) <= 0 {
		t.Error("Expected blur to spread outside the square")
	}
	if b.At(5, 5) != 0 {
		t.Error("Expected no coverage beyond the kernel radius")
	}
}

func TestBlurZeroSigmaCopies(t *testing.T) {
	m := square(8, 8, image.Rect(2, 2, 4, 4))
	b := Blur(m, 0)
	if total(b) != total(m) || b.Bounds != m.Bounds {
		t.Error("Expected identity blur for zero sigma")
	}
	b.Data[0] = 1
	if m.Data[0] != 0 {
		t.Error("Expected a copy, not the same buffer")
	}
}

func TestCrop(t *testing.T) {
	m := square(10, 10, image.Rect(0, 0, 10, 10))
	c := Crop(m, 2, 3, 4, 4)
	if c.Width != 4 || c.Height != 4 || total(c) != 16 {
		t.Errorf("Expected full 4x4 crop, got %dx%d mass %v", c.Width, c.Height, total(c))
	}
	if c.Bounds != image.Rect(0, 0, 4, 4) {
		t.Errorf("bounds = %v", c.Bounds)
	}
	outside := Crop(m, 20, 20, 4, 4)
	if total(outside) != 0 {
		t.Error("Expected empty crop outside the plane")
	}
}

func TestShadowBlursAndCrops(t *testing.T) {
	pad := Padding(4)
	w, h := 20, 20
	// A square partly outside the canvas on the left, inside the padding.
	m := square(w+2*pad, h+2*pad, image.Rect(pad-3, pad+5, pad+5, pad+15))
	s := Shadow(m, 4, pad, w, h)
	if s.Width != w || s.Height != h {
		t.Fatalf("Expected %dx%d, got %dx%d", w, h, s.Width, s.Height)
	}
	if s.At(0, 10) <= 0 || s.At(0, 10) >= 1 {
		t.Errorf("Expected soft coverage near the left edge, got %v", s.At(0, 10))
	}
	if s.At(19, 10) > 0.001 {
		t.Errorf("Expected no coverage far right, got %v", s.At(19, 10))
	}
}
