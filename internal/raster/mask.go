// Package raster converts flattened paths into anti-aliased coverage masks
// and answers point containment queries under a fill rule.
package raster

import "image"

// FillRule selects how winding numbers map to inside/outside.
type FillRule uint8

const (
	// NonZero treats any non-zero winding number as inside.
	NonZero FillRule = iota
	// EvenOdd treats odd winding numbers as inside.
	EvenOdd
)

// Mask is a per-pixel coverage buffer with values in [0, 1].
// Pixels outside Bounds are zero.
type Mask struct {
	Width, Height int
	Data          []float32
	Bounds        image.Rectangle
}

// NewMask allocates an empty mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height),
	}
}

// NewFullMask allocates a mask covering every pixel completely.
func NewFullMask(width, height int) *Mask {
	m := NewMask(width, height)
	for i := range m.Data {
		m.Data[i] = 1
	}
	m.Bounds = image.Rect(0, 0, width, height)
	return m
}

// At returns the coverage at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Data[y*m.Width+x]
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := *m
	c.Data = append([]float32(nil), m.Data...)
	return &c
}

// Intersect multiplies m by o pixel-wise. Both masks must have the same size.
func (m *Mask) Intersect(o *Mask) {
	nb := m.Bounds.Intersect(o.Bounds)
	for y := m.Bounds.Min.Y; y < m.Bounds.Max.Y; y++ {
		row := y * m.Width
		for x := m.Bounds.Min.X; x < m.Bounds.Max.X; x++ {
			if (image.Point{X: x, Y: y}).In(nb) {
				m.Data[row+x] *= o.Data[row+x]
			} else {
				m.Data[row+x] = 0
			}
		}
	}
	m.Bounds = nb
}

// Scale multiplies every coverage value by s.
func (m *Mask) Scale(s float32) {
	for y := m.Bounds.Min.Y; y < m.Bounds.Max.Y; y++ {
		row := m.Data[y*m.Width+m.Bounds.Min.X : y*m.Width+m.Bounds.Max.X]
		for i := range row {
			row[i] *= s
		}
	}
}
