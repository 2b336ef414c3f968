package blend

import "github.com/gogpu/canvas/internal/paint"

// rgb is an unpremultiplied color triplet.
type rgb struct{ r, g, b float32 }

type hslFunc func(s, d rgb) rgb

var hslFuncs = [...]hslFunc{
	OpHue - OpHue:        hue,
	OpSaturation - OpHue: saturation,
	OpColor - OpHue:      color,
	OpLuminosity - OpHue: luminosity,
}

// nonSeparable applies the general blend formula with a blend function
// that needs the whole color triplet.
func nonSeparable(s, d paint.Color, fn hslFunc) paint.Color {
	if s.A <= 0 {
		return d
	}
	if d.A <= 0 {
		return s
	}
	var cs, cb rgb
	cs.r, cs.g, cs.b, _ = s.Straight()
	cb.r, cb.g, cb.b, _ = d.Straight()
	m := fn(cs, cb)
	both := s.A * d.A
	return paint.Color{
		R: (1-s.A)*d.R + (1-d.A)*s.R + both*m.r,
		G: (1-s.A)*d.G + (1-d.A)*s.G + both*m.g,
		B: (1-s.A)*d.B + (1-d.A)*s.B + both*m.b,
		A: s.A + d.A - both,
	}
}

// hue: SetLum(SetSat(Cs, Sat(Cb)), Lum(Cb))
func hue(s, d rgb) rgb { return setLum(setSat(s, sat(d)), lum(d)) }

// saturation: SetLum(SetSat(Cb, Sat(Cs)), Lum(Cb))
func saturation(s, d rgb) rgb { return setLum(setSat(d, sat(s)), lum(d)) }

// color: SetLum(Cs, Lum(Cb))
func color(s, d rgb) rgb { return setLum(s, lum(d)) }

// luminosity: SetLum(Cb, Lum(Cs))
func luminosity(s, d rgb) rgb { return setLum(d, lum(s)) }

// lum uses the BT.601 luma weights from W3C Compositing and Blending.
func lum(c rgb) float32 { return 0.30*c.r + 0.59*c.g + 0.11*c.b }

func sat(c rgb) float32 { return max(c.r, c.g, c.b) - min(c.r, c.g, c.b) }

// clipColor pulls out-of-range components back towards the luminance.
func clipColor(c rgb) rgb {
	l := lum(c)
	n := min(c.r, c.g, c.b)
	x := max(c.r, c.g, c.b)
	if n < 0 {
		k := l / (l - n)
		c = rgb{l + (c.r-l)*k, l + (c.g-l)*k, l + (c.b-l)*k}
	}
	if x > 1 {
		k := (1 - l) / (x - l)
		c = rgb{l + (c.r-l)*k, l + (c.g-l)*k, l + (c.b-l)*k}
	}
	return c
}

func setLum(c rgb, l float32) rgb {
	d := l - lum(c)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

func setSat(c rgb, s float32) rgb {
	lo, mid, hi := sortRGB(&c)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid, *hi = 0, 0
	}
	*lo = 0
	return c
}

// sortRGB returns pointers to the components in ascending order.
func sortRGB(c *rgb) (lo, mid, hi *float32) {
	lo, mid, hi = &c.r, &c.g, &c.b
	if *lo > *mid {
		lo, mid = mid, lo
	}
	if *mid > *hi {
		mid, hi = hi, mid
	}
	if *lo > *mid {
		lo, mid = mid, lo
	}
	return lo, mid, hi
}
