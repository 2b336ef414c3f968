package text

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Style is the CSS font-style.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

var styleNames = [...]string{"normal", "italic", "oblique"}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "normal"
}

// Variant is the CSS font-variant subset allowed in the shorthand.
type Variant uint8

const (
	VariantNormal Variant = iota
	VariantSmallCaps
)

func (v Variant) String() string {
	if v == VariantSmallCaps {
		return "small-caps"
	}
	return "normal"
}

// Stretch is the CSS font-stretch keyword.
type Stretch uint8

const (
	StretchNormal Stretch = iota
	StretchUltraCondensed
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

var stretchNames = [...]string{
	"normal", "ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
	"semi-expanded", "expanded", "extra-expanded", "ultra-expanded",
}

func (s Stretch) String() string {
	if int(s) < len(stretchNames) {
		return stretchNames[s]
	}
	return "normal"
}

// Weight values.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// Font is a resolved CSS font descriptor. Size is in CSS pixels.
type Font struct {
	Style      Style
	Variant    Variant
	Weight     int
	Stretch    Stretch
	Size       float64
	LineHeight string // raw value, empty for normal
	Families   []string
}

// DefaultFont returns the initial canvas font, 10px sans-serif.
func DefaultFont() Font {
	return Font{Weight: WeightNormal, Size: 10, Families: []string{"sans-serif"}}
}

// Bold reports whether the weight selects a bold face.
func (f Font) Bold() bool { return f.Weight >= 600 }

// Italic reports whether the style selects an italic face.
func (f Font) Italic() bool { return f.Style != StyleNormal }

// String serializes the font in canonical shorthand form, omitting normal
// values: "italic bold 30px Arial".
func (f Font) String() string {
	var parts []string
	if f.Style != StyleNormal {
		parts = append(parts, f.Style.String())
	}
	if f.Variant != VariantNormal {
		parts = append(parts, f.Variant.String())
	}
	switch f.Weight {
	case WeightNormal, 0:
	case WeightBold:
		parts = append(parts, "bold")
	default:
		parts = append(parts, strconv.Itoa(f.Weight))
	}
	if f.Stretch != StretchNormal {
		parts = append(parts, f.Stretch.String())
	}
	size := formatNumber(f.Size) + "px"
	if f.LineHeight != "" {
		size += "/" + f.LineHeight
	}
	parts = append(parts, size)

	fams := make([]string, len(f.Families))
	for i, fam := range f.Families {
		if strings.ContainsAny(fam, " \t") {
			fam = strconv.Quote(fam)
		}
		fams[i] = fam
	}
	parts = append(parts, strings.Join(fams, ", "))
	return strings.Join(parts, " ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var absoluteSizes = map[string]float64{
	"xx-small":  9,
	"x-small":   10,
	"small":     13,
	"medium":    16,
	"large":     18,
	"x-large":   24,
	"xx-large":  32,
	"xxx-large": 48,
}

// emBase is the size em, rem and % resolve against.
const emBase = 16

// unitScale converts a length to px as v*mul/div.
var unitScale = map[string]struct{ mul, div float64 }{
	"px":  {1, 1},
	"pt":  {96, 72},
	"pc":  {16, 1},
	"in":  {96, 1},
	"cm":  {96, 2.54},
	"mm":  {96, 25.4},
	"q":   {96, 101.6},
	"em":  {emBase, 1},
	"rem": {emBase, 1},
}

type token struct {
	tt   css.TokenType
	data string
}

func tokenize(s string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(s))
	var toks []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			}
			return toks, nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		}
		toks = append(toks, token{tt: tt, data: string(data)})
	}
}

// ParseFont parses a CSS font shorthand:
//
//	[style] [variant] [weight] [stretch] size[/line-height] family[, family]*
func ParseFont(s string) (Font, error) {
	toks, err := tokenize(s)
	if err != nil {
		return Font{}, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	f := Font{Weight: WeightNormal}

	i := 0
	var seenStyle, seenVariant, seenWeight, seenStretch bool
	normals := 0
prefix:
	for ; i < len(toks); i++ {
		t := toks[i]
		switch t.tt {
		case css.IdentToken:
			kw := strings.ToLower(t.data)
			switch {
			case kw == "normal":
				normals++
			case !seenStyle && (kw == "italic" || kw == "oblique"):
				seenStyle = true
				f.Style = StyleItalic
				if kw == "oblique" {
					f.Style = StyleOblique
				}
			case !seenVariant && kw == "small-caps":
				seenVariant = true
				f.Variant = VariantSmallCaps
			case !seenWeight && (kw == "bold" || kw == "bolder"):
				seenWeight = true
				f.Weight = WeightBold
			case !seenWeight && kw == "lighter":
				seenWeight = true
				f.Weight = 100
			case !seenStretch && stretchIndex(kw) > 0:
				seenStretch = true
				f.Stretch = Stretch(stretchIndex(kw))
			default:
				break prefix
			}
		case css.NumberToken:
			w, err := strconv.ParseFloat(t.data, 64)
			if seenWeight || err != nil || w < 1 || w > 1000 || w != math.Trunc(w) {
				break prefix
			}
			seenWeight = true
			f.Weight = int(w)
		default:
			break prefix
		}
	}
	if normals+btoi(seenStyle)+btoi(seenVariant)+btoi(seenWeight)+btoi(seenStretch) > 4 {
		return Font{}, ErrInvalidFont
	}

	if i >= len(toks) {
		return Font{}, ErrInvalidFont
	}
	size, ok := parseSize(toks[i])
	if !ok {
		return Font{}, ErrInvalidFont
	}
	f.Size = size
	i++

	if i < len(toks) && toks[i].tt == css.DelimToken && toks[i].data == "/" {
		i++
		if i >= len(toks) {
			return Font{}, ErrInvalidFont
		}
		switch lh := toks[i]; lh.tt {
		case css.NumberToken, css.DimensionToken, css.PercentageToken:
			f.LineHeight = lh.data
		case css.IdentToken:
			if !strings.EqualFold(lh.data, "normal") {
				return Font{}, ErrInvalidFont
			}
		default:
			return Font{}, ErrInvalidFont
		}
		i++
	}

	fams, ok := parseFamilies(toks[i:])
	if !ok {
		return Font{}, ErrInvalidFont
	}
	f.Families = fams
	return f, nil
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func stretchIndex(kw string) int {
	for i, name := range stretchNames {
		if name == kw {
			return i
		}
	}
	return -1
}

func parseSize(t token) (float64, bool) {
	switch t.tt {
	case css.IdentToken:
		v, ok := absoluteSizes[strings.ToLower(t.data)]
		return v, ok
	case css.PercentageToken:
		v, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil || v < 0 {
			return 0, false
		}
		return v / 100 * emBase, true
	case css.DimensionToken:
		num, unit := splitDimension(t.data)
		scale, ok := unitScale[strings.ToLower(unit)]
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil || v < 0 || math.IsInf(v, 0) {
			return 0, false
		}
		return v * scale.mul / scale.div, true
	}
	return 0, false
}

// splitDimension separates "12.5px" into "12.5" and "px".
func splitDimension(s string) (string, string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			i--
			continue
		}
		break
	}
	return s[:i], s[i:]
}

func parseFamilies(toks []token) ([]string, bool) {
	var fams []string
	var cur []string
	flush := func() bool {
		if len(cur) == 0 {
			return false
		}
		fams = append(fams, strings.Join(cur, " "))
		cur = cur[:0]
		return true
	}
	for _, t := range toks {
		switch t.tt {
		case css.IdentToken:
			cur = append(cur, t.data)
		case css.StringToken:
			if len(cur) > 0 {
				return nil, false
			}
			unq := t.data[1 : len(t.data)-1]
			cur = append(cur, unq)
		case css.CommaToken:
			if !flush() {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	if !flush() {
		return nil, false
	}
	return fams, true
}
