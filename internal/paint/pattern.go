package paint

import (
	"math"

	"github.com/gogpu/canvas/internal/geom"
)

// Repeat selects on which axes a pattern tiles.
type Repeat uint8

const (
	// RepeatBoth tiles in both directions.
	RepeatBoth Repeat = iota
	// RepeatX tiles horizontally only.
	RepeatX
	// RepeatY tiles vertically only.
	RepeatY
	// NoRepeat draws the image once.
	NoRepeat
	// Pad extends the edge pixels outwards. Used when drawing images,
	// where only the inside of the image is covered.
	Pad
)

func (r Repeat) repeatsX() bool { return r == RepeatBoth || r == RepeatX }
func (r Repeat) repeatsY() bool { return r == RepeatBoth || r == RepeatY }

// Image is a premultiplied pixel source for patterns.
type Image struct {
	Width, Height int
	Pix           []Color
}

// NewImage converts straight RGBA8 bytes (4 per pixel, row-major) to an Image.
func NewImage(width, height int, data []byte) *Image {
	img := &Image{Width: width, Height: height, Pix: make([]Color, width*height)}
	for i := range img.Pix {
		o := i * 4
		img.Pix[i] = FromRGBA8(data[o], data[o+1], data[o+2], data[o+3])
	}
	return img
}

// Pattern samples an image through an inverse transform with per-axis
// repeat handling.
type Pattern struct {
	img    *Image
	repeat Repeat
	inv    geom.Matrix
	smooth bool
}

// NewPattern creates a pattern sampler. inv maps device space to image
// pixel space. With smooth set, samples are bilinearly interpolated.
func NewPattern(img *Image, repeat Repeat, inv geom.Matrix, smooth bool) *Pattern {
	return &Pattern{img: img, repeat: repeat, inv: inv, smooth: smooth}
}

// At implements Sampler.
func (p *Pattern) At(x, y float64) Color {
	if p.img == nil || p.img.Width == 0 || p.img.Height == 0 {
		return Transparent
	}
	pt := p.inv.Apply(geom.Pt(x, y))
	if !pt.IsFinite() {
		return Transparent
	}
	if !p.smooth {
		return p.texel(int(math.Floor(pt.X)), int(math.Floor(pt.Y)))
	}

	fx := pt.X - 0.5
	fy := pt.Y - 0.5
	x0 := math.Floor(fx)
	y0 := math.Floor(fy)
	tx := float32(fx - x0)
	ty := float32(fy - y0)
	ix, iy := int(x0), int(y0)

	top := p.texel(ix, iy).Lerp(p.texel(ix+1, iy), tx)
	bottom := p.texel(ix, iy+1).Lerp(p.texel(ix+1, iy+1), tx)
	return top.Lerp(bottom, ty)
}

// texel fetches a pixel, wrapping on repeating axes and returning
// transparent outside the image on the others.
func (p *Pattern) texel(x, y int) Color {
	w, h := p.img.Width, p.img.Height
	if p.repeat == Pad {
		return p.img.Pix[clampInt(y, 0, h-1)*w+clampInt(x, 0, w-1)]
	}
	if p.repeat.repeatsX() {
		x = wrap(x, w)
	} else if x < 0 || x >= w {
		return Transparent
	}
	if p.repeat.repeatsY() {
		y = wrap(y, h)
	} else if y < 0 || y >= h {
		return Transparent
	}
	return p.img.Pix[y*w+x]
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
