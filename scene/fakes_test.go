package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// uniformWrite is one recorded call on recordingSink.
type uniformWrite struct {
	Name  string
	Value interface{}
}

// recordingSink keeps every uniform write in order and the latest value per
// name.
type recordingSink struct {
	writes []uniformWrite
	last   map[string]interface{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{last: make(map[string]interface{})}
}

func (s *recordingSink) record(name string, v interface{}) {
	s.writes = append(s.writes, uniformWrite{Name: name, Value: v})
	s.last[name] = v
}

func (s *recordingSink) SetMat4(name string, m mgl32.Mat4)    { s.record(name, m) }
func (s *recordingSink) SetVec2(name string, v mgl32.Vec2)    { s.record(name, v) }
func (s *recordingSink) SetVec3(name string, v mgl32.Vec3)    { s.record(name, v) }
func (s *recordingSink) SetVec4(name string, v mgl32.Vec4)    { s.record(name, v) }
func (s *recordingSink) SetFloat(name string, f float32)      { s.record(name, f) }
func (s *recordingSink) SetInt(name string, i int32)          { s.record(name, i) }
func (s *recordingSink) SetBool(name string, b bool)          { s.record(name, b) }
func (s *recordingSink) SetSampler2D(name string, unit int32) { s.record(name, unit) }

func (s *recordingSink) count(name string) int {
	n := 0
	for _, w := range s.writes {
		if w.Name == name {
			n++
		}
	}
	return n
}

// fakeDecoder serves images from memory by path.
type fakeDecoder struct {
	images map[string]*Image
}

func (d *fakeDecoder) Decode(path string) (*Image, error) {
	img, ok := d.images[path]
	if !ok {
		return nil, errors.Errorf("no such file %q", path)
	}
	return img, nil
}

func solidImage(channels int) *Image {
	return &Image{
		Width:    2,
		Height:   2,
		Channels: channels,
		Pixels:   make([]byte, 2*2*channels),
	}
}

// fakeUploader hands out increasing handles and records binds and releases.
type fakeUploader struct {
	next     uint32
	failNext bool
	bound    map[int]uint32
	released []uint32
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{next: 100, bound: make(map[int]uint32)}
}

func (u *fakeUploader) Upload(img *Image) (uint32, error) {
	if u.failNext {
		u.failNext = false
		return 0, errors.New("out of memory")
	}
	u.next++
	return u.next, nil
}

func (u *fakeUploader) Bind(unit int, handle uint32) { u.bound[unit] = handle }
func (u *fakeUploader) Release(handle uint32)        { u.released = append(u.released, handle) }

// fakeMeshes records draw calls.
type fakeMeshes struct {
	loaded map[ShapeKind]bool
	fail   map[ShapeKind]bool
	draws  []ShapeKind
}

func newFakeMeshes() *fakeMeshes {
	return &fakeMeshes{loaded: make(map[ShapeKind]bool), fail: make(map[ShapeKind]bool)}
}

func (m *fakeMeshes) LoadMesh(kind ShapeKind) error {
	if m.fail[kind] {
		return errors.Errorf("cannot load %s", kind)
	}
	m.loaded[kind] = true
	return nil
}

func (m *fakeMeshes) DrawMesh(kind ShapeKind) {
	if m.loaded[kind] {
		m.draws = append(m.draws, kind)
	}
}

// nopSink discards every write.
type nopSink struct{}

func (nopSink) SetMat4(string, mgl32.Mat4) {}
func (nopSink) SetVec2(string, mgl32.Vec2) {}
func (nopSink) SetVec3(string, mgl32.Vec3) {}
func (nopSink) SetVec4(string, mgl32.Vec4) {}
func (nopSink) SetFloat(string, float32)   {}
func (nopSink) SetInt(string, int32)       {}
func (nopSink) SetBool(string, bool)       {}
func (nopSink) SetSampler2D(string, int32) {}
