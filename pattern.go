package canvas

import (
	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/paint"
)

// Repeat is a pattern repetition mode.
type Repeat uint8

const (
	RepeatBoth Repeat = iota // "repeat"
	RepeatX                  // "repeat-x"
	RepeatY                  // "repeat-y"
	NoRepeat                 // "no-repeat"
)

var repeatNames = [...]string{"repeat", "repeat-x", "repeat-y", "no-repeat"}

func (r Repeat) String() string {
	if int(r) < len(repeatNames) {
		return repeatNames[r]
	}
	return "repeat"
}

// ParseRepeat parses a repetition keyword. The empty string means "repeat".
func ParseRepeat(s string) (Repeat, error) {
	if s == "" {
		return RepeatBoth, nil
	}
	for i, name := range repeatNames {
		if s == name {
			return Repeat(i), nil
		}
	}
	return RepeatBoth, ErrInvalidRepeat
}

// Pattern is a CanvasPattern. The source pixels are copied when the
// pattern is created.
type Pattern struct {
	img       *paint.Image
	repeat    Repeat
	transform geom.Matrix
}

// NewPattern creates a pattern from an image source and a repetition
// keyword ("repeat", "repeat-x", "repeat-y", "no-repeat" or "").
func NewPattern(src ImageSource, repetition string) (*Pattern, error) {
	rep, err := ParseRepeat(repetition)
	if err != nil {
		return nil, err
	}
	img := src.paintImage()
	if img.Width == 0 || img.Height == 0 {
		return nil, ErrEmptyImage
	}
	return &Pattern{img: img, repeat: rep, transform: geom.Identity()}, nil
}

// Repeat returns the repetition mode.
func (p *Pattern) Repeat() Repeat { return p.repeat }

// SetTransform sets the matrix from pattern space to the user space of
// the draw. Non-finite and non-invertible matrices are ignored.
func (p *Pattern) SetTransform(m Matrix) {
	g := m.geom()
	if !m.IsFinite() || !g.Invertible() {
		return
	}
	p.transform = g
}

// Transform returns the pattern matrix.
func (p *Pattern) Transform() Matrix { return fromGeom(p.transform) }

func (p *Pattern) sampler(ctm geom.Matrix, smooth bool) paint.Sampler {
	inv, ok := ctm.Multiply(p.transform).Invert()
	if !ok {
		return paint.Solid{}
	}
	return paint.NewPattern(p.img, paint.Repeat(p.repeat), inv, smooth)
}
