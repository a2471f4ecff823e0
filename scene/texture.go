package scene

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MaxTextureUnits is the number of texture units the scene binds. Each
// loaded texture occupies the unit equal to its slot, so loads beyond this
// limit are refused instead of aliasing an existing unit.
const MaxTextureUnits = 16

var (
	ErrUnsupportedChannels   = errors.New("unsupported image channel count")
	ErrTextureUnitsExhausted = errors.New("texture units exhausted")
)

// TextureUploader owns GPU texture objects.
type TextureUploader interface {
	// Upload creates a texture with repeat wrapping, linear filtering and
	// generated mipmaps.
	Upload(img *Image) (uint32, error)
	Bind(unit int, handle uint32)
	Release(handle uint32)
}

type TextureEntry struct {
	Tag    string
	Handle uint32
	Slot   int
}

// TextureRegistry tracks loaded textures by tag. Slots are assigned in load
// order starting at zero. Tags are not required to be unique; lookups return
// the first entry with a matching tag.
type TextureRegistry struct {
	decoder  ImageDecoder
	uploader TextureUploader
	entries  []TextureEntry
}

func NewTextureRegistry(decoder ImageDecoder, uploader TextureUploader) *TextureRegistry {
	return &TextureRegistry{
		decoder:  decoder,
		uploader: uploader,
	}
}

// Load decodes path, uploads it and registers it under tag. On failure the
// registry is left unchanged.
func (r *TextureRegistry) Load(path, tag string) error {
	l := log().With(zap.String("path", path), zap.String("tag", tag))

	if len(r.entries) >= MaxTextureUnits {
		l.Error("texture not registered, all texture units in use", zap.Int("limit", MaxTextureUnits))
		return errors.Wrapf(ErrTextureUnitsExhausted, "load %q", path)
	}

	img, err := r.decoder.Decode(path)
	if err != nil {
		l.Error("could not load image", zap.Error(err))
		return errors.Wrap(err, "load texture")
	}
	l.Info("loaded image", zap.Int("width", img.Width), zap.Int("height", img.Height), zap.Int("channels", img.Channels))

	if img.Channels != 3 && img.Channels != 4 {
		l.Error("image channel count not handled", zap.Int("channels", img.Channels))
		return errors.Wrapf(ErrUnsupportedChannels, "%q has %d channels", path, img.Channels)
	}

	handle, err := r.uploader.Upload(img)
	if err != nil {
		l.Error("texture upload failed", zap.Error(err))
		return errors.Wrapf(err, "upload texture %q", path)
	}

	r.entries = append(r.entries, TextureEntry{
		Tag:    tag,
		Handle: handle,
		Slot:   len(r.entries),
	})
	return nil
}

// BindAll binds every texture to the unit matching its slot.
func (r *TextureRegistry) BindAll() {
	for _, e := range r.entries {
		r.uploader.Bind(e.Slot, e.Handle)
	}
}

func (r *TextureRegistry) FindSlot(tag string) (int, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Slot, true
		}
	}
	return -1, false
}

func (r *TextureRegistry) FindHandle(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Handle, true
		}
	}
	return 0, false
}

func (r *TextureRegistry) Count() int {
	return len(r.entries)
}

// Entries returns a copy of the registered textures in slot order.
func (r *TextureRegistry) Entries() []TextureEntry {
	out := make([]TextureEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ReleaseAll frees every texture. Calling it again does nothing.
func (r *TextureRegistry) ReleaseAll() {
	for _, e := range r.entries {
		r.uploader.Release(e.Handle)
	}
	r.entries = nil
}
