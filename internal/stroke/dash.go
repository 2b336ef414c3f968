package stroke

import (
	"math"

	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/path"
)

// maxDashCount bounds the dashes a single Apply may emit. Longer patterns
// are stroked solid, matching Skia.
const maxDashCount = 1_000_000

// Dash defines a dash pattern for stroking.
// Array holds alternating dash and gap lengths; an odd-length array is
// logically repeated to make it even ([5] behaves as [5, 5]).
type Dash struct {
	Array  []float64
	Offset float64
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether the pattern produces gaps.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	total := d.PatternLength()
	return total > 0 && !math.IsInf(total, 0) && !math.IsNaN(total)
}

func (d *Dash) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	out := make([]float64, 0, len(d.Array)*2)
	out = append(out, d.Array...)
	return append(out, d.Array...)
}

// Apply splits subpaths into the "on" intervals of the pattern. Each
// subpath restarts the pattern at Offset. Closed subpaths are walked
// including their closing segment and come back open.
func (d *Dash) Apply(subs []path.Subpath) []path.Subpath {
	if !d.IsDashed() {
		return subs
	}
	arr := d.effectiveArray()
	total := d.PatternLength()
	if dashCount(subs, total, len(arr)) > maxDashCount {
		return subs
	}

	var out []path.Subpath
	for _, sp := range subs {
		pts := sp.Points
		if len(pts) < 2 {
			continue
		}
		if sp.Closed && pts[0] != pts[len(pts)-1] {
			pts = append(append([]geom.Point(nil), pts...), pts[0])
		}

		// Locate the starting phase.
		phase := math.Mod(d.Offset, total)
		if phase < 0 {
			phase += total
		}
		idx := 0
		// A zero-length dash at the current phase still emits a dot.
		for phase > arr[idx] || (phase == arr[idx] && arr[idx] > 0) {
			phase -= arr[idx]
			idx = (idx + 1) % len(arr)
		}
		remain := arr[idx] - phase
		on := idx%2 == 0

		var cur []geom.Point
		if on {
			cur = []geom.Point{pts[0]}
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			segLen := a.Distance(b)
			pos := 0.0
			for segLen-pos > remain {
				pos += remain
				pt := a.Lerp(b, pos/segLen)
				if on {
					cur = append(cur, pt)
					out = append(out, path.Subpath{Points: cur})
					cur = nil
				} else {
					cur = []geom.Point{pt}
				}
				on = !on
				idx = (idx + 1) % len(arr)
				remain = arr[idx]
			}
			remain -= segLen - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) > 1 {
			out = append(out, path.Subpath{Points: cur})
		}
	}
	return out
}

// dashCount estimates how many dashes and gaps Apply walks for subs.
func dashCount(subs []path.Subpath, total float64, n int) float64 {
	var length float64
	for _, sp := range subs {
		pts := sp.Points
		for i := 1; i < len(pts); i++ {
			length += pts[i-1].Distance(pts[i])
		}
		if sp.Closed && len(pts) > 1 {
			length += pts[len(pts)-1].Distance(pts[0])
		}
	}
	return length / total * float64(n)
}
