package raster

import (
	"cmp"
	"image"
	"math"
	"slices"

	"github.com/gogpu/canvas/internal/geom"
	"github.com/gogpu/canvas/internal/path"
)

// horizontalEpsilon is the vertical extent below which an edge contributes
// nothing to coverage.
const horizontalEpsilon = 1e-12

// edge is a line segment in device coordinates with y0 < y1. The winding
// sign records the original direction.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	sign   float32
}

// Coverage accumulation:
//
// Each scanline tracks two values per pixel column. cover is the signed
// vertical extent of edge pieces crossing the column; area is the part
// of that cover lying to the right of the crossing inside the pixel.
// Integrating left to right, the coverage of pixel i is
// sum(cover[:i]) + area[i], which equals the signed area of the shape
// within the pixel. Nonzero clamps its magnitude to 1; even-odd folds it.

// Fill rasterizes closed polylines into a width×height mask. Every subpath
// is implicitly closed.
func Fill(subs []path.Subpath, rule FillRule, width, height int) *Mask {
	m := NewMask(width, height)
	if width <= 0 || height <= 0 {
		return m
	}

	edges, bbox := collectEdges(subs)
	if len(edges) == 0 {
		return m
	}
	x0 := max(0, int(math.Floor(bbox.Min.X)))
	x1 := min(width, int(math.Ceil(bbox.Max.X)))
	y0 := max(0, int(math.Floor(bbox.Min.Y)))
	y1 := min(height, int(math.Ceil(bbox.Max.Y)))
	if x1 <= x0 || y1 <= y0 {
		return m
	}

	slices.SortFunc(edges, func(a, b edge) int { return cmp.Compare(a.y0, b.y0) })

	span := x1 - x0
	cover := make([]float32, span)
	area := make([]float32, span)
	active := make([]edge, 0, 16)
	next := 0

	for y := y0; y < y1; y++ {
		fy := float64(y)
		for next < len(edges) && edges[next].y0 < fy+1 {
			active = append(active, edges[next])
			next++
		}
		kept := active[:0]
		for _, e := range active {
			if e.y1 > fy {
				kept = append(kept, e)
			}
		}
		active = kept
		if len(active) == 0 {
			continue
		}

		clear(cover)
		clear(area)
		for i := range active {
			accumulate(&active[i], y, cover, area, x0, x1)
		}
		integrate(cover, area, rule, m.Data[y*width+x0:y*width+x1])
	}
	m.Bounds = image.Rect(x0, y0, x1, y1)
	return m
}

// collectEdges converts polylines to edges, closing every subpath.
func collectEdges(subs []path.Subpath) ([]edge, geom.Rect) {
	var edges []edge
	var bbox geom.Rect
	first := true
	for _, sp := range subs {
		n := len(sp.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := sp.Points[i]
			p1 := sp.Points[(i+1)%n]
			if !p0.IsFinite() || !p1.IsFinite() {
				continue
			}
			// Grown by points: axis-aligned edges have empty rects.
			if first {
				bbox = geom.Rect{Min: p0, Max: p0}
				first = false
			}
			bbox = extend(extend(bbox, p0), p1)
			if e, ok := newEdge(p0, p1); ok {
				edges = append(edges, e)
			}
		}
	}
	return edges, bbox
}

func extend(r geom.Rect, p geom.Point) geom.Rect {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

func newEdge(p0, p1 geom.Point) (edge, bool) {
	dy := p1.Y - p0.Y
	if math.Abs(dy) < horizontalEpsilon {
		return edge{}, false
	}
	sign := float32(1)
	if dy < 0 {
		p0, p1 = p1, p0
		sign = -1
	}
	return edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		sign: sign,
	}, true
}

// accumulate adds the part of e inside scanline y to cover and area, which
// are indexed from column xMin. Pieces left of xMin count as full cover at
// the first column; pieces right of xMax are dropped.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	top := math.Max(float64(y), e.y0)
	bot := math.Min(float64(y+1), e.y1)
	if bot <= top {
		return
	}
	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	left, right := math.Min(xTop, xBot), math.Max(xTop, xBot)
	pixLeft := int(math.Floor(math.Max(left, float64(xMin-1))))
	pixRight := int(math.Floor(math.Min(right, float64(xMax))))

	if pixLeft == pixRight || right-left < 1e-9 {
		addPiece(e, top, bot, pixLeft, cover, area, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy
	if pixLeft < xMin {
		// Everything left of the span collapses into one piece.
		yAt := e.y0 + dydx*(float64(xMin)-e.x0)
		segTop, segBot := top, bot
		if e.dxdy > 0 {
			segBot = math.Min(bot, yAt)
		} else {
			segTop = math.Max(top, yAt)
		}
		if segBot > segTop {
			addPiece(e, segTop, segBot, xMin-1, cover, area, xMin, xMax)
		}
		pixLeft = xMin
	}
	pixRight = min(pixRight, xMax-1)
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := math.Max(math.Min(ya, yb), top)
		segBot := math.Min(math.Max(ya, yb), bot)
		if segBot <= segTop {
			continue
		}
		addPiece(e, segTop, segBot, pix, cover, area, xMin, xMax)
	}
}

// addPiece records a piece of e spanning [top, bot) that lies in column pix.
func addPiece(e *edge, top, bot float64, pix int, cover, area []float32, xMin, xMax int) {
	c := e.sign * float32(bot-top)
	if pix < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= xMax {
		return
	}
	xMid := e.x0 + e.dxdy*((top+bot)/2-e.y0)
	frac := xMid - float64(pix)
	i := pix - xMin
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// integrate resolves one scanline into dst using the fill rule.
func integrate(cover, area []float32, rule FillRule, dst []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		switch rule {
		case EvenOdd:
			mod := raw - 2*float32(math.Floor(float64(raw/2)))
			raw = 1 - abs32(1-mod)
		default:
			if raw > 1 {
				raw = 1
			}
		}
		dst[i] = raw
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
