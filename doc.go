// Package canvas implements the HTML Canvas 2D drawing model in pure Go.
//
// # Overview
//
// A Canvas owns a premultiplied RGBA pixel buffer and a single Context2D.
// The context keeps a stack of drawing states and a current path, and
// renders fills, strokes, text and images with anti-aliasing, gradients,
// patterns, shadows, clipping and all the composite operations of the
// Canvas API.
//
// # Quick Start
//
//	c, _ := canvas.NewCanvas(600, 400)
//	ctx := c.Context2D()
//
//	ctx.SetFillColor(canvas.RGBA(0, 0, 255, 1))
//	ctx.FillRect(100, 100, 200, 200)
//
//	ctx.BeginPath()
//	ctx.Arc(300, 200, 50, 0, 2*math.Pi, false)
//	ctx.SetStrokeStyleString("rgba(255, 0, 0, 0.5)")
//	ctx.SetLineWidth(5)
//	ctx.Stroke()
//
//	png, _ := c.ToBuffer("image/png")
//
// # Coordinate System
//
// The origin is the top-left corner, x increases right and y increases
// down. Angles are in radians and positive angles turn clockwise on
// screen. Path coordinates are transformed by the current transform when
// they are added, so changing the transform afterwards does not move
// existing geometry.
//
// # Errors
//
// Argument errors (non-finite coordinates, negative radii, bad sizes)
// are returned and leave the state and pixels untouched. Calls that the
// Canvas API treats as silent no-ops, such as filling an empty path,
// stay silent. A draw either completes or leaves the pixels unchanged.
//
// # Concurrency
//
// A Canvas and its context are not safe for concurrent use. Independent
// canvases share only the read-mostly font cache and may be used from
// different goroutines.
package canvas
