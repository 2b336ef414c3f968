package filter

import (
	"image"

	"github.com/gogpu/canvas/internal/raster"
)

// Blur returns a Gaussian-blurred copy of m. The result's Bounds are m's
// Bounds grown by the kernel radius and clipped to the plane.
func Blur(m *raster.Mask, sigma float64) *raster.Mask {
	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2
	if half == 0 || m.Bounds.Empty() {
		return m.Clone()
	}

	full := image.Rect(0, 0, m.Width, m.Height)
	bounds := m.Bounds.Inset(-half).Intersect(full)

	// Horizontal pass over the source rows only.
	temp := raster.NewMask(m.Width, m.Height)
	for y := m.Bounds.Min.Y; y < m.Bounds.Max.Y; y++ {
		src := m.Data[y*m.Width : (y+1)*m.Width]
		dst := temp.Data[y*m.Width : (y+1)*m.Width]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var sum float32
			for k, w := range kernel {
				sx := x + k - half
				if sx < m.Bounds.Min.X || sx >= m.Bounds.Max.X {
					continue
				}
				sum += src[sx] * w
			}
			dst[x] = sum
		}
	}

	// Vertical pass into the grown bounds.
	out := raster.NewMask(m.Width, m.Height)
	out.Bounds = bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := out.Data[y*m.Width : (y+1)*m.Width]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var sum float32
			for k, w := range kernel {
				sy := y + k - half
				if sy < m.Bounds.Min.Y || sy >= m.Bounds.Max.Y {
					continue
				}
				sum += temp.Data[sy*m.Width+x] * w
			}
			row[x] = min(sum, 1)
		}
	}
	return out
}

// Crop returns the w×h window of m starting at (x0, y0).
func Crop(m *raster.Mask, x0, y0, w, h int) *raster.Mask {
	out := raster.NewMask(w, h)
	win := m.Bounds.Intersect(image.Rect(x0, y0, x0+w, y0+h))
	if win.Empty() {
		return out
	}
	for y := win.Min.Y; y < win.Max.Y; y++ {
		copy(out.Data[(y-y0)*w+win.Min.X-x0:(y-y0)*w+win.Max.X-x0],
			m.Data[y*m.Width+win.Min.X:y*m.Width+win.Max.X])
	}
	out.Bounds = win.Sub(image.Pt(x0, y0))
	return out
}

// Shadow blurs a plane padded by pad pixels on every side for the given
// shadowBlur and crops it back to w×h.
func Shadow(padded *raster.Mask, blur float64, pad, w, h int) *raster.Mask {
	if s := Sigma(blur); s > 0 {
		padded = Blur(padded, s)
	}
	return Crop(padded, pad, pad, w, h)
}
