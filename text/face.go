package text

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas/internal/cache"
)

// outlineCacheSize is the soft limit of each source's glyph outline cache.
const outlineCacheSize = 2048

// Source is a parsed font file, shared by all faces made from it.
// It is safe for concurrent use.
type Source struct {
	sfnt     *sfnt.Font
	shaper   *gtfont.Font // nil when go-text cannot parse the file
	bufs     sync.Pool
	outlines *cache.Cache[outlineKey, []Segment]
}

type outlineKey struct {
	id   GlyphID
	ppem fixed.Int26_6
}

// NewSource parses TrueType or OpenType data.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("text: empty font data")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	src := &Source{sfnt: f, outlines: cache.New[outlineKey, []Segment](outlineCacheSize)}
	src.bufs.New = func() any { return new(sfnt.Buffer) }
	if face, err := gtfont.ParseTTF(bytes.NewReader(data)); err == nil {
		src.shaper = face.Font
	}
	return src, nil
}

// Name returns the family name recorded in the font.
func (s *Source) Name() string {
	name, err := s.sfnt.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Face returns a face of the source at size pixels per em.
func (s *Source) Face(size float64) Face {
	return &sfntFace{src: s, size: size, ppem: fixed.Int26_6(size * 64)}
}

func (s *Source) buffer() *sfnt.Buffer { return s.bufs.Get().(*sfnt.Buffer) }

func (s *Source) release(b *sfnt.Buffer) { s.bufs.Put(b) }

// sfntFace implements Face with golang.org/x/image/font/sfnt for outlines
// and metrics and go-text/typesetting for shaping.
type sfntFace struct {
	src  *Source
	size float64
	ppem fixed.Int26_6
}

func (f *sfntFace) Metrics() Metrics {
	buf := f.src.buffer()
	defer f.src.release(buf)

	m, err := f.src.sfnt.Metrics(buf, f.ppem, font.HintingNone)
	if err != nil {
		return Metrics{Ascent: f.size * 0.8, Descent: f.size * 0.2, EmAscent: f.size * 0.8, EmDescent: f.size * 0.2}
	}
	asc := fixedToFloat(m.Ascent)
	desc := fixedToFloat(m.Descent)
	out := Metrics{
		Ascent:    asc,
		Descent:   desc,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
		Hanging:   asc * 0.8,
	}
	if total := asc + desc; total > 0 {
		out.EmAscent = f.size * asc / total
		out.EmDescent = f.size * desc / total
	}
	return out
}

func (f *sfntFace) Shape(s string, dir Direction) []Glyph {
	if s == "" {
		return nil
	}
	if f.src.shaper != nil {
		if glyphs := shapeHarfbuzz(f.src.shaper, s, f.size, dir); len(glyphs) > 0 {
			return glyphs
		}
	}
	return f.shapeSimple(s, dir)
}

// shapeSimple maps runes to glyphs one by one with kerning, for fonts
// go-text cannot shape.
func (f *sfntFace) shapeSimple(s string, dir Direction) []Glyph {
	buf := f.src.buffer()
	defer f.src.release(buf)

	runes := []rune(s)
	if dir == DirectionRTL {
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
	}
	glyphs := make([]Glyph, 0, len(runes))
	var x float64
	prev := sfnt.GlyphIndex(0)
	for i, r := range runes {
		gid, err := f.src.sfnt.GlyphIndex(buf, r)
		if err != nil {
			gid = 0
		}
		if i > 0 {
			if k, err := f.src.sfnt.Kern(buf, prev, gid, f.ppem, font.HintingNone); err == nil {
				x += fixedToFloat(k)
			}
		}
		adv, err := f.src.sfnt.GlyphAdvance(buf, gid, f.ppem, font.HintingNone)
		if err != nil {
			adv = 0
		}
		a := fixedToFloat(adv)
		glyphs = append(glyphs, Glyph{ID: GlyphID(gid), X: x, Advance: a, Cluster: i})
		x += a
		prev = gid
	}
	return glyphs
}

// Outline returns the cached outline; the result is shared and must not
// be modified.
func (f *sfntFace) Outline(id GlyphID) []Segment {
	return f.src.outlines.GetOrCreate(outlineKey{id: id, ppem: f.ppem}, func() []Segment {
		return f.loadOutline(id)
	})
}

func (f *sfntFace) loadOutline(id GlyphID) []Segment {
	buf := f.src.buffer()
	defer f.src.release(buf)

	segs, err := f.src.sfnt.LoadGlyph(buf, sfnt.GlyphIndex(id), f.ppem, nil)
	if err != nil || len(segs) == 0 {
		return nil
	}
	out := make([]Segment, len(segs))
	for i, seg := range segs {
		var o Segment
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			o.Op = SegmentMoveTo
		case sfnt.SegmentOpLineTo:
			o.Op = SegmentLineTo
		case sfnt.SegmentOpQuadTo:
			o.Op, n = SegmentQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			o.Op, n = SegmentCubeTo, 3
		}
		for j := range n {
			o.Points[j] = Point{X: fixedToFloat(seg.Args[j].X), Y: fixedToFloat(seg.Args[j].Y)}
		}
		out[i] = o
	}
	return out
}

func (f *sfntFace) Bounds(id GlyphID) (Rect, bool) {
	buf := f.src.buffer()
	defer f.src.release(buf)

	b, _, err := f.src.sfnt.GlyphBounds(buf, sfnt.GlyphIndex(id), f.ppem, font.HintingNone)
	if err != nil || b.Empty() {
		return Rect{}, false
	}
	return Rect{
		Min: Point{X: fixedToFloat(b.Min.X), Y: fixedToFloat(b.Min.Y)},
		Max: Point{X: fixedToFloat(b.Max.X), Y: fixedToFloat(b.Max.Y)},
	}, true
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
