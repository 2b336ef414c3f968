package blend

import "github.com/gogpu/canvas/internal/paint"

// Apply composites src onto dst with op. Both colors are premultiplied.
func Apply(op Op, s, d paint.Color) paint.Color {
	switch op {
	case OpSourceOver:
		return porterDuff(s, d, 1, 1-s.A)
	case OpSourceIn:
		return porterDuff(s, d, d.A, 0)
	case OpSourceOut:
		return porterDuff(s, d, 1-d.A, 0)
	case OpSourceAtop:
		return porterDuff(s, d, d.A, 1-s.A)
	case OpDestinationOver:
		return porterDuff(s, d, 1-d.A, 1)
	case OpDestinationIn:
		return porterDuff(s, d, 0, s.A)
	case OpDestinationOut:
		return porterDuff(s, d, 0, 1-s.A)
	case OpDestinationAtop:
		return porterDuff(s, d, 1-d.A, s.A)
	case OpLighter:
		return paint.Color{
			R: min(s.R+d.R, 1),
			G: min(s.G+d.G, 1),
			B: min(s.B+d.B, 1),
			A: min(s.A+d.A, 1),
		}
	case OpCopy:
		return s
	case OpXor:
		return porterDuff(s, d, 1-d.A, 1-s.A)
	case OpHue, OpSaturation, OpColor, OpLuminosity:
		return nonSeparable(s, d, hslFuncs[op-OpHue])
	}
	if op >= OpMultiply && op <= OpExclusion {
		return separable(s, d, channelFuncs[op-OpMultiply])
	}
	return porterDuff(s, d, 1, 1-s.A)
}

// Composite applies op and weights the result by clip: where clip is 0 the
// destination is untouched.
func Composite(op Op, s, d paint.Color, clip float32) paint.Color {
	if clip <= 0 {
		return d
	}
	r := Apply(op, s, d)
	if clip >= 1 {
		return r
	}
	return d.Lerp(r, clip)
}

// porterDuff computes S*fa + D*fb.
func porterDuff(s, d paint.Color, fa, fb float32) paint.Color {
	return paint.Color{
		R: s.R*fa + d.R*fb,
		G: s.G*fa + d.G*fb,
		B: s.B*fa + d.B*fb,
		A: s.A*fa + d.A*fb,
	}
}
