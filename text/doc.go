// Package text implements canvas text: the CSS font shorthand, font
// providers and faces, shaping, and single-line layout with alignment,
// baselines and measurement.
//
// A Provider turns a Font descriptor into a Face. The DefaultProvider
// ships with the Go fonts and Latin Modern and needs no font discovery:
//
//	f, _ := text.ParseFont("italic bold 30px serif")
//	face, _ := text.Default().Face(f)
//	run := text.NewRun(face, "Hello", text.AlignCenter, text.BaselineMiddle, text.DirectionInherit)
//	m := run.Metrics()
//
// Faces shape with HarfBuzz (github.com/go-text/typesetting) and read
// outlines and metrics with golang.org/x/image/font/sfnt. Outlines are in
// pixels with y pointing down, relative to the glyph origin on the
// alphabetic baseline.
package text
