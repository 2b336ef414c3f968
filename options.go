package canvas

import (
	"image/color"

	"github.com/gogpu/canvas/imageio"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/text"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := canvas.NewCanvas(800, 600,
//	    canvas.WithBackground(color.Transparent),
//	    canvas.WithFontProvider(myProvider),
//	)
type Option func(*options)

type options struct {
	fonts      text.Provider
	decoder    imageio.Decoder
	background color.Color
	tolerance  float64
}

func defaultOptions() options {
	return options{
		fonts:      text.Default(),
		decoder:    imageio.DefaultDecoder{},
		background: color.White,
		tolerance:  path.Tolerance,
	}
}

// WithFontProvider sets the provider that resolves font descriptors to
// faces. Faces it fails to supply fall back to the builtin fonts.
func WithFontProvider(p text.Provider) Option {
	return func(o *options) {
		if p != nil {
			o.fonts = p
		}
	}
}

// WithImageDecoder sets the decoder used by DecodeImage and
// CreatePatternFromBytes.
func WithImageDecoder(d imageio.Decoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithBackground sets the color new and resized canvases are cleared to.
// The default is opaque white.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithTolerance sets the curve flattening tolerance in device pixels.
// Non-positive values keep the default of 0.25.
func WithTolerance(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.tolerance = px
		}
	}
}
