package scene

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Image is decoded pixel data ready for upload. Pixels holds Channels bytes
// per pixel, rows packed without padding.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pixels   []byte
}

type ImageDecoder interface {
	Decode(path string) (*Image, error)
}

// FileDecoder reads PNG, JPEG, BMP and TIFF files from disk. Channels
// reports what the file stores: 1 for grayscale, 2 for grayscale with alpha,
// 3 for opaque color and 4 for color with an alpha channel. Grayscale images
// are still returned so the caller can decide what to do with them.
type FileDecoder struct {
	// FlipVertically puts the first image row at the bottom, matching
	// OpenGL's texture coordinate origin.
	FlipVertically bool
}

func (d FileDecoder) Decode(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %q", path)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %q", path)
	}

	channels, ok := pngChannels(data)
	if !ok {
		channels = sourceChannels(src)
	}
	var rgba *image.RGBA
	if d.FlipVertically {
		rgba = transform.FlipV(src)
	} else {
		rgba = clone.AsRGBA(src)
	}

	return packPixels(rgba, channels), nil
}

const pngSignature = "\x89PNG\r\n\x1a\n"

// pngChannels reads the color type from a PNG's IHDR chunk. The decoded
// image type cannot tell gray+alpha apart from RGBA. Palette images report
// false and fall back to sourceChannels.
func pngChannels(data []byte) (int, bool) {
	// signature, chunk length, "IHDR", width, height, bit depth, color type
	const colorTypeOffset = 8 + 4 + 4 + 4 + 4 + 1
	if len(data) <= colorTypeOffset || string(data[:8]) != pngSignature || string(data[12:16]) != "IHDR" {
		return 0, false
	}
	switch data[colorTypeOffset] {
	case 0:
		return 1, true
	case 2:
		return 3, true
	case 4:
		return 2, true
	case 6:
		return 4, true
	}
	return 0, false
}

func sourceChannels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return 4
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return 3
		}
		return 4
	}
	return 4
}

// packPixels converts premultiplied RGBA into tightly packed straight-alpha
// bytes with the requested channel count (1 to 4).
func packPixels(rgba *image.RGBA, channels int) *Image {
	bounds := rgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := &Image{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pixels:   make([]byte, 0, w*h*channels),
	}

	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for x := 0; x < w; x++ {
			r, g, b, a := row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]
			if a != 0 && a != 0xff {
				r = unpremultiply(r, a)
				g = unpremultiply(g, a)
				b = unpremultiply(b, a)
			}
			switch channels {
			case 1:
				out.Pixels = append(out.Pixels, r)
			case 2:
				out.Pixels = append(out.Pixels, r, a)
			case 3:
				out.Pixels = append(out.Pixels, r, g, b)
			default:
				out.Pixels = append(out.Pixels, r, g, b, a)
			}
		}
	}
	return out
}

func unpremultiply(c, a uint8) uint8 {
	v := (uint32(c)*0xff + uint32(a)/2) / uint32(a)
	if v > 0xff {
		v = 0xff
	}
	return uint8(v)
}
