package blend

import (
	"math"

	"github.com/gogpu/canvas/internal/paint"
)

// channelFunc is a separable blend function B(Cs, Cb) on unpremultiplied
// source and backdrop channels.
type channelFunc func(s, d float32) float32

var channelFuncs = [...]channelFunc{
	OpMultiply - OpMultiply:   multiply,
	OpScreen - OpMultiply:     screen,
	OpOverlay - OpMultiply:    overlay,
	OpDarken - OpMultiply:     darken,
	OpLighten - OpMultiply:    lighten,
	OpColorDodge - OpMultiply: colorDodge,
	OpColorBurn - OpMultiply:  colorBurn,
	OpHardLight - OpMultiply:  hardLight,
	OpSoftLight - OpMultiply:  softLight,
	OpDifference - OpMultiply: difference,
	OpExclusion - OpMultiply:  exclusion,
}

// separable applies the general blend formula
//
//	result = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb)
//	alpha  = Sa + Da - Sa*Da
func separable(s, d paint.Color, fn channelFunc) paint.Color {
	if s.A <= 0 {
		return d
	}
	if d.A <= 0 {
		return s
	}
	sr, sg, sb, _ := s.Straight()
	dr, dg, db, _ := d.Straight()
	both := s.A * d.A
	return paint.Color{
		R: (1-s.A)*d.R + (1-d.A)*s.R + both*fn(sr, dr),
		G: (1-s.A)*d.G + (1-d.A)*s.G + both*fn(sg, dg),
		B: (1-s.A)*d.B + (1-d.A)*s.B + both*fn(sb, db),
		A: s.A + d.A - both,
	}
}

func multiply(s, d float32) float32 { return s * d }

func screen(s, d float32) float32 { return s + d - s*d }

func overlay(s, d float32) float32 { return hardLight(d, s) }

func darken(s, d float32) float32 { return min(s, d) }

func lighten(s, d float32) float32 { return max(s, d) }

func colorDodge(s, d float32) float32 {
	switch {
	case d == 0:
		return 0
	case s >= 1:
		return 1
	}
	return min(1, d/(1-s))
}

func colorBurn(s, d float32) float32 {
	switch {
	case d >= 1:
		return 1
	case s <= 0:
		return 0
	}
	return 1 - min(1, (1-d)/s)
}

func hardLight(s, d float32) float32 {
	if s <= 0.5 {
		return multiply(2*s, d)
	}
	return screen(2*s-1, d)
}

func softLight(s, d float32) float32 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dx float32
	if d <= 0.25 {
		dx = ((16*d-12)*d + 4) * d
	} else {
		dx = float32(math.Sqrt(float64(d)))
	}
	return d + (2*s-1)*(dx-d)
}

func difference(s, d float32) float32 {
	if s > d {
		return s - d
	}
	return d - s
}

func exclusion(s, d float32) float32 { return s + d - 2*s*d }
