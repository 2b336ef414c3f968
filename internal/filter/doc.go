// Package filter implements the Gaussian blur used for canvas shadows.
//
// Blurs operate on single-channel coverage planes (raster.Mask) with a
// separable kernel: one horizontal and one vertical pass, O(w*h*r).
// Pixels outside a plane are treated as zero, so callers pad their planes
// by Padding(blur) when geometry near the edges matters.
//
// The canvas shadowBlur value maps to a standard deviation of blur/2.
package filter
