package canvas

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"

	"github.com/gogpu/canvas/internal/paint"
)

// Color is a straight-alpha sRGB color. It implements color.Color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Transparent = Color{}
)

// RGBA returns a color from 8-bit channels and an alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: unitToByte(a)}
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float64 { return float64(c.A) / 255 }

// String serializes the color the way canvas style getters do:
// "#rrggbb" when opaque, "rgba(r, g, b, a)" otherwise.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// formatAlpha prints the shortest of two or three decimals that maps back
// to the same byte.
func formatAlpha(a uint8) string {
	v := float64(a) / 255
	two := math.Round(v*100) / 100
	if unitToByte(two) == a {
		return strconv.FormatFloat(two, 'f', -1, 64)
	}
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func (c Color) premultiplied() paint.Color {
	return paint.FromRGBA8(c.R, c.G, c.B, c.A)
}

func unitToByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// ParseColor parses a CSS color: named colors, "transparent",
// "currentcolor" (black), #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(),
// hsl(), hsla() and hwb(), in comma or space separated syntax.
func ParseColor(s string) (Color, error) {
	low := strings.ToLower(strings.TrimSpace(s))
	if low == "" {
		return Color{}, ErrInvalidColor
	}
	switch low {
	case "transparent":
		return Transparent, nil
	case "currentcolor":
		return Black, nil
	}
	if low[0] == '#' {
		return parseHexColor(low[1:])
	}
	if c, ok := colornames.Map[low]; ok {
		return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if strings.HasSuffix(low, ")") {
		return parseColorFunction(low)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHexColor(h string) (Color, error) {
	for i := range len(h) {
		if _, ok := hexDigit(h[i]); !ok {
			return Color{}, ErrInvalidColor
		}
	}
	nib := func(i int) uint8 { v, _ := hexDigit(h[i]); return v * 17 }
	byt := func(i int) uint8 {
		hi, _ := hexDigit(h[i])
		lo, _ := hexDigit(h[i+1])
		return hi<<4 | lo
	}
	switch len(h) {
	case 3:
		return Color{R: nib(0), G: nib(1), B: nib(2), A: 255}, nil
	case 4:
		return Color{R: nib(0), G: nib(1), B: nib(2), A: nib(3)}, nil
	case 6:
		return Color{R: byt(0), G: byt(2), B: byt(4), A: 255}, nil
	case 8:
		return Color{R: byt(0), G: byt(2), B: byt(4), A: byt(6)}, nil
	}
	return Color{}, ErrInvalidColor
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

type colorArg struct {
	tt   css.TokenType
	data string
}

// lexColorFunction splits "name(a, b, c / d)" into the function name and
// its numeric arguments.
func lexColorFunction(s string) (string, []colorArg, bool) {
	l := css.NewLexer(parse.NewInputString(s))
	var name string
	var args []colorArg
	closed := false
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return name, args, l.Err() == io.EOF && closed && name != ""
		case css.WhitespaceToken, css.CommentToken:
			continue
		}
		if closed {
			return "", nil, false
		}
		switch tt {
		case css.FunctionToken:
			if name != "" {
				return "", nil, false
			}
			name = strings.TrimSuffix(string(data), "(")
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			if name == "" {
				return "", nil, false
			}
			args = append(args, colorArg{tt: tt, data: string(data)})
		case css.CommaToken:
		case css.DelimToken:
			if string(data) != "/" {
				return "", nil, false
			}
		case css.RightParenthesisToken:
			closed = true
		default:
			return "", nil, false
		}
	}
}

func parseColorFunction(s string) (Color, error) {
	name, args, ok := lexColorFunction(s)
	if !ok || len(args) < 3 || len(args) > 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	alpha := 1.0
	if len(args) == 4 {
		a, ok := alphaValue(args[3])
		if !ok {
			return Color{}, ErrInvalidColor
		}
		alpha = a
	}

	var c colorful.Color
	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i := range 3 {
			v, ok := channelValue(args[i])
			if !ok {
				return Color{}, ErrInvalidColor
			}
			ch[i] = v
		}
		c = colorful.Color{R: ch[0], G: ch[1], B: ch[2]}
	case "hsl", "hsla":
		h, ok1 := hueValue(args[0])
		sat, ok2 := percentValue(args[1])
		lig, ok3 := percentValue(args[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, ErrInvalidColor
		}
		c = colorful.Hsl(h, sat, lig)
	case "hwb":
		h, ok1 := hueValue(args[0])
		w, ok2 := percentValue(args[1])
		b, ok3 := percentValue(args[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, ErrInvalidColor
		}
		c = hwb(h, w, b)
	default:
		return Color{}, fmt.Errorf("%w: unknown function %q", ErrInvalidColor, name)
	}
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: unitToByte(alpha)}, nil
}

func hwb(h, w, b float64) colorful.Color {
	if w+b >= 1 {
		gray := w / (w + b)
		return colorful.Color{R: gray, G: gray, B: gray}
	}
	base := colorful.Hsl(h, 1, 0.5)
	k := 1 - w - b
	return colorful.Color{R: base.R*k + w, G: base.G*k + w, B: base.B*k + w}
}

func number(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// channelValue returns an rgb() channel in [0, 1].
func channelValue(a colorArg) (float64, bool) {
	switch a.tt {
	case css.NumberToken:
		v, ok := number(a.data)
		return clamp01(math.Round(v) / 255), ok
	case css.PercentageToken:
		v, ok := number(strings.TrimSuffix(a.data, "%"))
		return clamp01(v / 100), ok
	}
	return 0, false
}

func alphaValue(a colorArg) (float64, bool) {
	switch a.tt {
	case css.NumberToken:
		v, ok := number(a.data)
		return clamp01(v), ok
	case css.PercentageToken:
		v, ok := number(strings.TrimSuffix(a.data, "%"))
		return clamp01(v / 100), ok
	}
	return 0, false
}

// percentValue accepts "50%" and the bare number 50.
func percentValue(a colorArg) (float64, bool) {
	switch a.tt {
	case css.PercentageToken:
		v, ok := number(strings.TrimSuffix(a.data, "%"))
		return clamp01(v / 100), ok
	case css.NumberToken:
		v, ok := number(a.data)
		return clamp01(v / 100), ok
	}
	return 0, false
}

var angleUnits = map[string]float64{
	"deg":  1,
	"rad":  180 / math.Pi,
	"grad": 0.9,
	"turn": 360,
}

// hueValue returns a hue in degrees in [0, 360).
func hueValue(a colorArg) (float64, bool) {
	var deg float64
	switch a.tt {
	case css.NumberToken:
		v, ok := number(a.data)
		if !ok {
			return 0, false
		}
		deg = v
	case css.DimensionToken:
		i := strings.IndexFunc(a.data, func(r rune) bool { return r >= 'a' && r <= 'z' })
		if i <= 0 {
			return 0, false
		}
		scale, ok := angleUnits[a.data[i:]]
		v, ok2 := number(a.data[:i])
		if !ok || !ok2 {
			return 0, false
		}
		deg = v * scale
	default:
		return 0, false
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg, true
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}
