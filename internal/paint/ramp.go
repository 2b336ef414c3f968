package paint

import (
	"cmp"
	"math"
	"slices"
)

// Stop is a color stop with a premultiplied color.
type Stop struct {
	Offset float64
	Color  Color
}

// Ramp is an evaluated list of stops, sorted by offset with insertion order
// kept for equal offsets.
type Ramp struct {
	stops []Stop
}

// NewRamp returns a ramp over a sorted copy of stops.
func NewRamp(stops []Stop) Ramp {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b Stop) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return Ramp{stops: sorted}
}

// Len returns the number of stops.
func (r Ramp) Len() int { return len(r.stops) }

// At returns the color at t. t is clamped to [0, 1]; colors before the
// first and after the last stop are constant. With duplicate offsets the
// left side takes the first stop and the offset itself the last one.
func (r Ramp) At(t float64) Color {
	n := len(r.stops)
	switch {
	case n == 0 || math.IsNaN(t):
		return Transparent
	case n == 1:
		return r.stops[0].Color
	}
	t = clamp01(t)

	// First stop strictly after t.
	i, _ := slices.BinarySearchFunc(r.stops, t, func(s Stop, t float64) int {
		if s.Offset <= t {
			return -1
		}
		return 1
	})
	if i == 0 {
		return r.stops[0].Color
	}
	if i == n {
		return r.stops[n-1].Color
	}
	a, b := r.stops[i-1], r.stops[i]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	return a.Color.Lerp(b.Color, float32((t-a.Offset)/span))
}
