// Package paint resolves fill and stroke styles into per-pixel samplers.
//
// All colors handled here are premultiplied float32 RGBA in [0, 1].
// Samplers are immutable snapshots: they copy whatever they need at
// construction so later changes to the style objects they came from do not
// affect draws already issued.
package paint

// Color is a premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Transparent is the zero color.
var Transparent = Color{}

// Premultiply converts a straight (non-premultiplied) color to Color.
func Premultiply(r, g, b, a float64) Color {
	a = clamp01(a)
	return Color{
		R: float32(clamp01(r) * a),
		G: float32(clamp01(g) * a),
		B: float32(clamp01(b) * a),
		A: float32(a),
	}
}

// FromRGBA8 converts straight 8-bit components to Color.
func FromRGBA8(r, g, b, a uint8) Color {
	return Premultiply(float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255)
}

// Scale multiplies every component by f.
func (c Color) Scale(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

// Lerp interpolates between c and d in premultiplied space.
func (c Color) Lerp(d Color, t float32) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// Straight returns the non-premultiplied components.
func (c Color) Straight() (r, g, b, a float32) {
	if c.A <= 0 {
		return 0, 0, 0, 0
	}
	inv := 1 / c.A
	return min(c.R*inv, 1), min(c.G*inv, 1), min(c.B*inv, 1), c.A
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
