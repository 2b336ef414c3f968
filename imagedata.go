package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/canvas/internal/paint"
)

// ImageSource is anything that can be drawn with DrawImage or used as a
// pattern: *ImageData and *Canvas.
type ImageSource interface {
	// Size returns the source dimensions in pixels.
	Size() (width, height int)
	paintImage() *paint.Image
}

// ImageData is a straight-alpha RGBA pixel buffer. Data holds
// Width*Height*4 bytes in row-major order.
type ImageData struct {
	Width  int
	Height int
	Data   []byte
}

// NewImageData allocates transparent black pixels.
func NewImageData(width, height int) (*ImageData, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &ImageData{Width: width, Height: height, Data: make([]byte, width*height*4)}, nil
}

// ImageDataFromBuffer wraps data without copying. When height is omitted
// it is inferred from len(data) and width.
func ImageDataFromBuffer(data []byte, width int, height ...int) (*ImageData, error) {
	if width <= 0 || len(height) > 1 {
		return nil, ErrInvalidDimensions
	}
	if len(height) == 0 {
		if len(data) == 0 || len(data)%(width*4) != 0 {
			return nil, &SizeMismatchError{Len: len(data), Width: width}
		}
		return &ImageData{Width: width, Height: len(data) / (width * 4), Data: data}, nil
	}
	h := height[0]
	if h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != width*h*4 {
		return nil, &SizeMismatchError{Len: len(data), Width: width, Height: h}
	}
	return &ImageData{Width: width, Height: h, Data: data}, nil
}

// ImageDataFromImage converts any image.Image.
func ImageDataFromImage(img image.Image) (*ImageData, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	d := &ImageData{Width: b.Dx(), Height: b.Dy(), Data: make([]byte, b.Dx()*b.Dy()*4)}
	for y := range d.Height {
		for x := range d.Width {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			o := (y*d.Width + x) * 4
			d.Data[o], d.Data[o+1], d.Data[o+2], d.Data[o+3] = c.R, c.G, c.B, c.A
		}
	}
	return d, nil
}

// Size implements ImageSource.
func (d *ImageData) Size() (int, int) { return d.Width, d.Height }

func (d *ImageData) paintImage() *paint.Image {
	return paint.NewImage(d.Width, d.Height, d.Data)
}

// At returns the pixel at (x, y); out of range pixels are transparent.
func (d *ImageData) At(x, y int) Color {
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return Transparent
	}
	o := (y*d.Width + x) * 4
	return Color{R: d.Data[o], G: d.Data[o+1], B: d.Data[o+2], A: d.Data[o+3]}
}

// NRGBA returns an image.NRGBA sharing the pixel data.
func (d *ImageData) NRGBA() *image.NRGBA {
	return &image.NRGBA{Pix: d.Data, Stride: d.Width * 4, Rect: image.Rect(0, 0, d.Width, d.Height)}
}
