// Package blend implements the Canvas 2D composite operations.
//
// All operations work on premultiplied float32 colors in [0, 1].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Op is a globalCompositeOperation value.
type Op uint8

const (
	// Porter-Duff operators
	OpSourceOver      Op = iota // S + D*(1-Sa) [default]
	OpSourceIn                  // S*Da
	OpSourceOut                 // S*(1-Da)
	OpSourceAtop                // S*Da + D*(1-Sa)
	OpDestinationOver           // S*(1-Da) + D
	OpDestinationIn             // D*Sa
	OpDestinationOut            // D*(1-Sa)
	OpDestinationAtop           // S*(1-Da) + D*Sa
	OpLighter                   // S + D, clamped
	OpCopy                      // S
	OpXor                       // S*(1-Da) + D*(1-Sa)

	// Separable blend modes
	OpMultiply
	OpScreen
	OpOverlay
	OpDarken
	OpLighten
	OpColorDodge
	OpColorBurn
	OpHardLight
	OpSoftLight
	OpDifference
	OpExclusion

	// Non-separable blend modes
	OpHue
	OpSaturation
	OpColor
	OpLuminosity

	opCount
)

var opNames = [opCount]string{
	OpSourceOver:      "source-over",
	OpSourceIn:        "source-in",
	OpSourceOut:       "source-out",
	OpSourceAtop:      "source-atop",
	OpDestinationOver: "destination-over",
	OpDestinationIn:   "destination-in",
	OpDestinationOut:  "destination-out",
	OpDestinationAtop: "destination-atop",
	OpLighter:         "lighter",
	OpCopy:            "copy",
	OpXor:             "xor",
	OpMultiply:        "multiply",
	OpScreen:          "screen",
	OpOverlay:         "overlay",
	OpDarken:          "darken",
	OpLighten:         "lighten",
	OpColorDodge:      "color-dodge",
	OpColorBurn:       "color-burn",
	OpHardLight:       "hard-light",
	OpSoftLight:       "soft-light",
	OpDifference:      "difference",
	OpExclusion:       "exclusion",
	OpHue:             "hue",
	OpSaturation:      "saturation",
	OpColor:           "color",
	OpLuminosity:      "luminosity",
}

// String returns the CSS keyword of the operation.
func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return "unknown"
}

// Parse returns the operation named by a CSS keyword.
func Parse(s string) (Op, bool) {
	for i, name := range opNames {
		if name == s {
			return Op(i), true
		}
	}
	return OpSourceOver, false
}

// Unbounded reports whether the operation changes destination pixels where
// the source is transparent. Such operations are applied over the whole
// clip area, not only the shape's bounds.
func (op Op) Unbounded() bool {
	switch op {
	case OpSourceIn, OpSourceOut, OpDestinationIn, OpDestinationAtop, OpCopy:
		return true
	}
	return false
}
