package text

import "errors"

// Errors returned by the text package.
var (
	// ErrInvalidFont is returned for a malformed font shorthand.
	ErrInvalidFont = errors.New("text: invalid font shorthand")

	// ErrNoFace is returned by providers that cannot supply any face.
	ErrNoFace = errors.New("text: no face available")
)

// GlyphID identifies a glyph within a face.
type GlyphID uint16

// Point is an outline coordinate in pixels, y down, relative to the
// glyph origin on the alphabetic baseline.
type Point struct {
	X, Y float64
}

// Rect is a glyph bounding box in the same space as Point.
type Rect struct {
	Min, Max Point
}

// SegmentOp is the kind of an outline segment.
type SegmentOp uint8

const (
	SegmentMoveTo SegmentOp = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubeTo
)

// Segment is one outline command. MoveTo and LineTo use Points[0];
// QuadTo uses Points[0..1]; CubeTo uses Points[0..2].
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// Glyph is a shaped glyph positioned relative to the run origin.
type Glyph struct {
	ID      GlyphID
	X, Y    float64
	Advance float64
	Cluster int
}

// Metrics describes a face at its size, in pixels. Ascent and Descent
// are positive distances from the alphabetic baseline.
type Metrics struct {
	Ascent    float64
	Descent   float64
	EmAscent  float64
	EmDescent float64
	XHeight   float64
	CapHeight float64
	Hanging   float64
}

// Face is a font at a specific size.
type Face interface {
	Metrics() Metrics
	// Shape converts s into glyphs in visual left-to-right order.
	Shape(s string, dir Direction) []Glyph
	// Outline returns the glyph outline; glyphs without ink return nil.
	Outline(id GlyphID) []Segment
	// Bounds returns the ink bounds; ok is false for glyphs without ink.
	Bounds(id GlyphID) (r Rect, ok bool)
}

// Provider resolves font descriptors to faces. Implementations are used
// from multiple canvases and must be safe for concurrent use.
type Provider interface {
	Face(f Font) (Face, error)
}
