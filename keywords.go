package canvas

import (
	"fmt"

	"github.com/gogpu/canvas/text"
)

// String-valued property setters. They accept the keywords of the Canvas
// API and leave the property unchanged for anything else.

func invalidKeyword(prop, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidKeyword, prop, value)
}

// SetLineCapString sets lineCap from "butt", "round" or "square".
func (c *Context2D) SetLineCapString(s string) error {
	v, ok := ParseLineCap(s)
	if !ok {
		return invalidKeyword("lineCap", s)
	}
	c.SetLineCap(v)
	return nil
}

// SetLineJoinString sets lineJoin from "miter", "round" or "bevel".
func (c *Context2D) SetLineJoinString(s string) error {
	v, ok := ParseLineJoin(s)
	if !ok {
		return invalidKeyword("lineJoin", s)
	}
	c.SetLineJoin(v)
	return nil
}

// SetTextAlignString sets textAlign from "start", "end", "left", "right"
// or "center".
func (c *Context2D) SetTextAlignString(s string) error {
	v, ok := text.ParseAlign(s)
	if !ok {
		return invalidKeyword("textAlign", s)
	}
	c.SetTextAlign(v)
	return nil
}

// SetTextBaselineString sets textBaseline from "top", "hanging", "middle",
// "alphabetic", "ideographic" or "bottom".
func (c *Context2D) SetTextBaselineString(s string) error {
	v, ok := text.ParseBaseline(s)
	if !ok {
		return invalidKeyword("textBaseline", s)
	}
	c.SetTextBaseline(v)
	return nil
}

// SetDirectionString sets direction from "ltr", "rtl" or "inherit".
func (c *Context2D) SetDirectionString(s string) error {
	v, ok := text.ParseDirection(s)
	if !ok {
		return invalidKeyword("direction", s)
	}
	c.SetDirection(v)
	return nil
}

// SetGlobalCompositeOperationString sets the composite operation from a
// keyword such as "source-over" or "multiply".
func (c *Context2D) SetGlobalCompositeOperationString(s string) error {
	v, ok := ParseCompositeOperation(s)
	if !ok {
		return invalidKeyword("globalCompositeOperation", s)
	}
	c.SetGlobalCompositeOperation(v)
	return nil
}
