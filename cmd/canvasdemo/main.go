// Command canvasdemo renders a small scene with the canvas package and
// writes it as an image.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/canvas"
)

func main() {
	var (
		width   = flag.Int("width", 600, "image width")
		height  = flag.Int("height", 400, "image height")
		output  = flag.String("output", "-", "output file, - for stdout")
		mime    = flag.String("type", "image/png", "output MIME type")
		verbose = flag.Bool("v", false, "log rendering details to stderr")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	c, err := canvas.NewCanvas(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	if err := drawScene(c.Context2D()); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	var w io.Writer = os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *output, err)
		}
		defer f.Close()
		w = f
	}
	if err := c.Encode(w, *mime); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	if *output != "-" {
		log.Printf("Image saved to %s (%dx%d)\n", *output, *width, *height)
	}
}

func drawScene(ctx *canvas.Context2D) error {
	// Background
	ctx.SetFillColor(canvas.White)
	if err := ctx.FillRect(0, 0, 600, 400); err != nil {
		return err
	}

	// Blue square
	ctx.SetFillColor(canvas.Color{B: 255, A: 255})
	if err := ctx.FillRect(100, 100, 200, 200); err != nil {
		return err
	}

	// Centered text
	if err := ctx.SetFont("30px Arial"); err != nil {
		return err
	}
	ctx.SetFillColor(canvas.White)
	ctx.SetTextAlign(canvas.AlignCenter)
	if err := ctx.FillText("Hello Canvas!", 200, 200); err != nil {
		return err
	}

	// Triangle
	ctx.BeginPath()
	if err := drawTriangle(ctx); err != nil {
		return err
	}
	ctx.SetFillColor(canvas.Color{R: 255, A: 255})
	ctx.Fill()
	ctx.SetLineWidth(5)
	ctx.SetStrokeColor(canvas.Black)
	ctx.Stroke()

	// Circle
	ctx.BeginPath()
	if err := ctx.Arc(450, 350, 40, 0, 2*math.Pi, false); err != nil {
		return err
	}
	ctx.SetFillColor(canvas.Color{G: 128, A: 255})
	ctx.Fill()
	return nil
}

func drawTriangle(ctx *canvas.Context2D) error {
	if err := ctx.MoveTo(300, 100); err != nil {
		return err
	}
	if err := ctx.LineTo(500, 100); err != nil {
		return err
	}
	if err := ctx.LineTo(400, 300); err != nil {
		return err
	}
	ctx.ClosePath()
	return nil
}
