// Package imageio decodes pattern source images and encodes canvas
// pixels for ToBuffer.
//
// Decoding sniffs the content type from magic bytes and accepts PNG,
// JPEG, GIF, WebP, BMP and TIFF. Encoding supports PNG, JPEG, BMP and
// TIFF.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// MIME types understood by the package.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEGIF  = "image/gif"
	MIMEWebP = "image/webp"
	MIMEBMP  = "image/bmp"
	MIMETIFF = "image/tiff"
)

// DefaultJPEGQuality is used when no valid quality is given.
const DefaultJPEGQuality = 0.92

var (
	// ErrEmptyData is returned when there is nothing to decode.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrUnsupportedFormat is returned for content that is not a
	// decodable image.
	ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

	// ErrUnsupportedMIME is returned when encoding to a type without an
	// encoder.
	ErrUnsupportedMIME = errors.New("imageio: unsupported MIME type")
)

// Decoder turns encoded bytes into straight-alpha pixels.
type Decoder interface {
	Decode(data []byte) (*image.NRGBA, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(data []byte) (*image.NRGBA, error)

// Decode calls f(data).
func (f DecoderFunc) Decode(data []byte) (*image.NRGBA, error) { return f(data) }

// DefaultDecoder sniffs the format and decodes with the standard and
// x/image codecs.
type DefaultDecoder struct{}

var decoders = map[string]func(io.Reader) (image.Image, error){
	MIMEPNG:  png.Decode,
	MIMEJPEG: jpeg.Decode,
	MIMEGIF:  gif.Decode,
	MIMEWebP: webp.Decode,
	MIMEBMP:  bmp.Decode,
	MIMETIFF: tiff.Decode,
}

// Sniff returns the MIME type detected from the magic bytes of data.
func Sniff(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyData
	}
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "", ErrUnsupportedFormat
	}
	return kind.MIME.Value, nil
}

// Decode implements Decoder.
func (DefaultDecoder) Decode(data []byte) (*image.NRGBA, error) {
	mime, err := Sniff(data)
	if err != nil {
		return nil, err
	}
	dec, ok := decoders[mime]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime)
	}
	img, err := dec(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", mime, err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts img to straight-alpha RGBA with its origin at (0, 0).
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
		return n
	}
	rgba := clone.AsRGBA(img)
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*b.Dx()]
		dst := out.Pix[y*out.Stride : y*out.Stride+4*b.Dx()]
		for i := 0; i < len(src); i += 4 {
			a := src[i+3]
			switch a {
			case 0:
			case 255:
				copy(dst[i:i+4], src[i:i+4])
			default:
				dst[i] = unpremul(src[i], a)
				dst[i+1] = unpremul(src[i+1], a)
				dst[i+2] = unpremul(src[i+2], a)
				dst[i+3] = a
			}
		}
	}
	return out
}

func unpremul(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	return uint8(min(v, 255))
}

// NormalizeMIME lower-cases mime and maps the empty string to PNG.
func NormalizeMIME(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if mime == "" {
		return MIMEPNG
	}
	return mime
}

// Encode writes img as mime. Quality in [0, 1] applies to JPEG only;
// other values select DefaultJPEGQuality. WebP output is lossless.
func Encode(w io.Writer, img image.Image, mime string, quality float64) error {
	var err error
	switch m := NormalizeMIME(mime); m {
	case MIMEPNG:
		err = png.Encode(w, img)
	case MIMEJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality(quality)})
	case MIMEBMP:
		err = bmp.Encode(w, img)
	case MIMETIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case MIMEWebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedMIME, mime)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", NormalizeMIME(mime), err)
	}
	return nil
}

func jpegQuality(q float64) int {
	if math.IsNaN(q) || q < 0 || q > 1 {
		q = DefaultJPEGQuality
	}
	return max(1, min(100, int(math.Round(q*100))))
}
