package text

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the canvas text direction.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

var directionNames = [...]string{"inherit", "ltr", "rtl"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "inherit"
}

// ParseDirection parses "ltr", "rtl" or "inherit".
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return DirectionInherit, false
}

// ResolveDirection returns d unless it is DirectionInherit, in which case
// the direction of the first strong character in s is used. Text without
// strong characters is left-to-right.
func ResolveDirection(s string, d Direction) Direction {
	if d != DirectionInherit {
		return d
	}
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}

// Align is the canvas textAlign value.
type Align uint8

const (
	AlignStart Align = iota
	AlignEnd
	AlignLeft
	AlignRight
	AlignCenter
)

var alignNames = [...]string{"start", "end", "left", "right", "center"}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "start"
}

// ParseAlign parses a textAlign keyword.
func ParseAlign(s string) (Align, bool) {
	for i, name := range alignNames {
		if s == name {
			return Align(i), true
		}
	}
	return AlignStart, false
}

// Baseline is the canvas textBaseline value.
type Baseline uint8

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineHanging
	BaselineMiddle
	BaselineIdeographic
	BaselineBottom
)

var baselineNames = [...]string{"alphabetic", "top", "hanging", "middle", "ideographic", "bottom"}

func (b Baseline) String() string {
	if int(b) < len(baselineNames) {
		return baselineNames[b]
	}
	return "alphabetic"
}

// ParseBaseline parses a textBaseline keyword.
func ParseBaseline(s string) (Baseline, bool) {
	for i, name := range baselineNames {
		if s == name {
			return Baseline(i), true
		}
	}
	return BaselineAlphabetic, false
}

// baselineShift is the distance from the requested baseline down to the
// alphabetic baseline.
func baselineShift(m Metrics, b Baseline) float64 {
	switch b {
	case BaselineTop:
		return m.EmAscent
	case BaselineHanging:
		return m.Hanging
	case BaselineMiddle:
		return (m.EmAscent - m.EmDescent) / 2
	case BaselineIdeographic:
		return -m.Descent
	case BaselineBottom:
		return -m.EmDescent
	}
	return 0
}

// Run is a single shaped line of text, positioned relative to the point
// passed to fillText. Text never wraps.
type Run struct {
	Face      Face
	Glyphs    []Glyph
	Width     float64 // natural advance
	Direction Direction
	Align     Align // resolved to left, right or center

	// OffsetX and OffsetY move the run origin from the anchor point to
	// the left end of the alphabetic baseline.
	OffsetX, OffsetY float64
	// ScaleX compresses the run horizontally to honor a maximum width.
	ScaleX float64

	metrics Metrics
}

// replacer maps the whitespace characters canvas text treats as spaces.
var replacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ", "\f", " ", "\v", " ")

// NewRun shapes s with face and positions it for the given alignment,
// baseline and direction.
func NewRun(face Face, s string, align Align, baseline Baseline, dir Direction) *Run {
	s = replacer.Replace(s)
	dir = ResolveDirection(s, dir)
	r := &Run{
		Face:      face,
		Glyphs:    face.Shape(s, dir),
		Direction: dir,
		Align:     resolveAlign(align, dir),
		ScaleX:    1,
		metrics:   face.Metrics(),
	}
	for _, g := range r.Glyphs {
		r.Width += g.Advance
	}
	r.OffsetY = baselineShift(r.metrics, baseline)
	r.place()
	return r
}

func resolveAlign(a Align, dir Direction) Align {
	switch a {
	case AlignStart:
		if dir == DirectionRTL {
			return AlignRight
		}
		return AlignLeft
	case AlignEnd:
		if dir == DirectionRTL {
			return AlignLeft
		}
		return AlignRight
	}
	return a
}

func (r *Run) place() {
	w := r.Width * r.ScaleX
	switch r.Align {
	case AlignRight:
		r.OffsetX = -w
	case AlignCenter:
		r.OffsetX = -w / 2
	default:
		r.OffsetX = 0
	}
}

// Fit compresses the run to maxWidth when its advance exceeds it. It
// reports false when nothing should be drawn: maxWidth is NaN or not
// positive.
func (r *Run) Fit(maxWidth float64) bool {
	if math.IsNaN(maxWidth) || maxWidth <= 0 {
		return false
	}
	if r.Width > maxWidth {
		r.ScaleX = maxWidth / r.Width
		r.place()
	}
	return true
}

// Outline walks every glyph outline in run space: the anchor point is the
// origin, y points down, and alignment, baseline and compression are
// applied.
func (r *Run) Outline(emit func(op SegmentOp, pts []Point)) {
	var pts [3]Point
	for _, g := range r.Glyphs {
		for _, seg := range r.Face.Outline(g.ID) {
			n := 1
			switch seg.Op {
			case SegmentQuadTo:
				n = 2
			case SegmentCubeTo:
				n = 3
			}
			for i := range n {
				p := seg.Points[i]
				pts[i] = Point{
					X: r.OffsetX + r.ScaleX*(g.X+p.X),
					Y: r.OffsetY + g.Y + p.Y,
				}
			}
			emit(seg.Op, pts[:n])
		}
	}
}

// TextMetrics is the measureText result. Vertical values are distances
// from the textBaseline line, positive upwards; horizontal bounding box
// values are distances from the anchor point, positive outwards.
type TextMetrics struct {
	Width float64

	ActualBoundingBoxLeft    float64
	ActualBoundingBoxRight   float64
	ActualBoundingBoxAscent  float64
	ActualBoundingBoxDescent float64

	FontBoundingBoxAscent  float64
	FontBoundingBoxDescent float64

	EmHeightAscent  float64
	EmHeightDescent float64

	HangingBaseline     float64
	AlphabeticBaseline  float64
	IdeographicBaseline float64
}

// Metrics measures the run at its natural width.
func (r *Run) Metrics() TextMetrics {
	m := r.metrics
	b := r.OffsetY
	ax := r.OffsetX
	if r.ScaleX != 1 {
		switch r.Align {
		case AlignRight:
			ax = -r.Width
		case AlignCenter:
			ax = -r.Width / 2
		default:
			ax = 0
		}
	}

	var minX, maxX, top, bottom float64
	ink := false
	for _, g := range r.Glyphs {
		bb, ok := r.Face.Bounds(g.ID)
		if !ok {
			continue
		}
		x0, x1 := g.X+bb.Min.X, g.X+bb.Max.X
		up, down := -(g.Y + bb.Min.Y), g.Y+bb.Max.Y
		if !ink {
			minX, maxX, top, bottom = x0, x1, up, down
			ink = true
			continue
		}
		minX = min(minX, x0)
		maxX = max(maxX, x1)
		top = max(top, up)
		bottom = max(bottom, down)
	}

	return TextMetrics{
		Width:                    r.Width,
		ActualBoundingBoxLeft:    -ax - minX,
		ActualBoundingBoxRight:   ax + maxX,
		ActualBoundingBoxAscent:  top - b,
		ActualBoundingBoxDescent: bottom + b,
		FontBoundingBoxAscent:    m.Ascent - b,
		FontBoundingBoxDescent:   m.Descent + b,
		EmHeightAscent:           m.EmAscent - b,
		EmHeightDescent:          m.EmDescent + b,
		HangingBaseline:          m.Hanging - b,
		AlphabeticBaseline:       -b,
		IdeographicBaseline:      -m.Descent - b,
	}
}

// Measure lays out s and returns its metrics.
func Measure(face Face, s string, align Align, baseline Baseline, dir Direction) TextMetrics {
	return NewRun(face, s, align, baseline, dir).Metrics()
}
