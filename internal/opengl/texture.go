package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"still-life/scene"
)

var _ scene.TextureUploader = (*Textures)(nil)

// Textures uploads decoded images and binds them to texture units.
// Call from the goroutine that owns the GL context.
type Textures struct{}

func NewTextures() *Textures {
	return &Textures{}
}

// Upload creates a repeating, linearly filtered, mipmapped 2D texture.
// Three channel images are stored as RGB8, four channel images as RGBA8.
func (t *Textures) Upload(img *scene.Image) (uint32, error) {
	if img == nil || len(img.Pixels) == 0 {
		return 0, errors.New("texture has no pixel data")
	}

	var internalFormat int32
	var format uint32
	switch img.Channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, errors.Wrapf(scene.ErrUnsupportedChannels, "%d channels", img.Channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned for odd widths
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Width),
		int32(img.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

func (t *Textures) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (t *Textures) Release(handle uint32) {
	if handle == 0 {
		return
	}
	gl.DeleteTextures(1, &handle)
}
