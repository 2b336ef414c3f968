package canvas

import (
	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/internal/stroke"
	"github.com/gogpu/canvas/text"
)

// LineCap is the shape of open stroke ends.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

var lineCapNames = [...]string{"butt", "round", "square"}

func (c LineCap) String() string { return enumName(lineCapNames[:], int(c)) }

// ParseLineCap parses "butt", "round" or "square".
func ParseLineCap(s string) (LineCap, bool) {
	i, ok := enumIndex(lineCapNames[:], s)
	return LineCap(i), ok
}

func (c LineCap) internal() stroke.LineCap {
	switch c {
	case LineCapRound:
		return stroke.CapRound
	case LineCapSquare:
		return stroke.CapSquare
	}
	return stroke.CapButt
}

// LineJoin is the shape of stroke corners.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

var lineJoinNames = [...]string{"miter", "round", "bevel"}

func (j LineJoin) String() string { return enumName(lineJoinNames[:], int(j)) }

// ParseLineJoin parses "miter", "round" or "bevel".
func ParseLineJoin(s string) (LineJoin, bool) {
	i, ok := enumIndex(lineJoinNames[:], s)
	return LineJoin(i), ok
}

func (j LineJoin) internal() stroke.LineJoin {
	switch j {
	case LineJoinRound:
		return stroke.JoinRound
	case LineJoinBevel:
		return stroke.JoinBevel
	}
	return stroke.JoinMiter
}

// FillRule decides which regions of a self-intersecting path are inside.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

var fillRuleNames = [...]string{"nonzero", "evenodd"}

func (r FillRule) String() string { return enumName(fillRuleNames[:], int(r)) }

// ParseFillRule parses "nonzero" or "evenodd".
func ParseFillRule(s string) (FillRule, bool) {
	i, ok := enumIndex(fillRuleNames[:], s)
	return FillRule(i), ok
}

// fillRule picks the optional trailing rule argument.
func fillRule(rule []FillRule) raster.FillRule {
	if len(rule) > 0 && rule[0] == EvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

// CompositeOperation is a globalCompositeOperation value.
type CompositeOperation uint8

const (
	SourceOver CompositeOperation = iota
	SourceIn
	SourceOut
	SourceAtop
	DestinationOver
	DestinationIn
	DestinationOut
	DestinationAtop
	Lighter
	Copy
	Xor
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	ColorBlend
	Luminosity
)

func (op CompositeOperation) String() string { return blend.Op(op).String() }

// ParseCompositeOperation parses a CSS composite or blend mode keyword.
func ParseCompositeOperation(s string) (CompositeOperation, bool) {
	op, ok := blend.Parse(s)
	return CompositeOperation(op), ok
}

// Text layout enums.
type (
	TextAlign    = text.Align
	TextBaseline = text.Baseline
	Direction    = text.Direction
	TextMetrics  = text.TextMetrics
)

const (
	AlignStart  = text.AlignStart
	AlignEnd    = text.AlignEnd
	AlignLeft   = text.AlignLeft
	AlignRight  = text.AlignRight
	AlignCenter = text.AlignCenter

	BaselineAlphabetic  = text.BaselineAlphabetic
	BaselineTop         = text.BaselineTop
	BaselineHanging     = text.BaselineHanging
	BaselineMiddle      = text.BaselineMiddle
	BaselineIdeographic = text.BaselineIdeographic
	BaselineBottom      = text.BaselineBottom

	DirectionInherit = text.DirectionInherit
	DirectionLTR     = text.DirectionLTR
	DirectionRTL     = text.DirectionRTL
)

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return names[0]
}

func enumIndex(names []string, s string) (int, bool) {
	for i, name := range names {
		if name == s {
			return i, true
		}
	}
	return 0, false
}
