package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"still-life/core"
)

func newTestBinder(t *testing.T) (*ShaderBinder, *recordingSink) {
	t.Helper()
	textures, _ := newTestRegistry(map[string]*Image{"x.png": solidImage(3)})
	require.NoError(t, textures.Load("x.png", "first"))
	require.NoError(t, textures.Load("x.png", "second"))

	materials := NewMaterialRegistry()
	materials.Define(Material{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.2, 0.1, 0.05},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.4, 0.2, 0.1},
		SpecularColor:   mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess:       16,
	})

	sink := newRecordingSink()
	return NewShaderBinder(sink, textures, materials), sink
}

func TestBinderSetTransform(t *testing.T) {
	b, sink := newTestBinder(t)
	m := mgl32.Translate3D(1, 2, 3)

	b.SetTransform(m)
	assert.Equal(t, m, sink.last[UniformModel])
}

func TestBinderSetColor(t *testing.T) {
	b, sink := newTestBinder(t)

	b.SetColor(core.Color{R: 1, G: 0.5, B: 0.25, A: 1})
	assert.Equal(t, false, sink.last[UniformUseTexture])
	assert.Equal(t, mgl32.Vec4{1, 0.5, 0.25, 1}, sink.last[UniformObjectColor])
}

func TestBinderSetTexture(t *testing.T) {
	b, sink := newTestBinder(t)

	b.SetTexture("second")
	assert.Equal(t, true, sink.last[UniformUseTexture])
	assert.Equal(t, int32(1), sink.last[UniformObjectTexture])
}

func TestBinderSetTextureMiss(t *testing.T) {
	b, sink := newTestBinder(t)

	b.SetTexture("missing")
	assert.Equal(t, true, sink.last[UniformUseTexture])
	assert.Equal(t, int32(-1), sink.last[UniformObjectTexture])
}

func TestBinderSetUVScale(t *testing.T) {
	b, sink := newTestBinder(t)

	b.SetUVScale(2, 3)
	assert.Equal(t, mgl32.Vec2{2, 3}, sink.last[UniformUVScale])
}

func TestBinderSetMaterial(t *testing.T) {
	b, sink := newTestBinder(t)

	b.SetMaterial("wood")
	assert.Equal(t, mgl32.Vec3{0.2, 0.1, 0.05}, sink.last[UniformMaterialAmbientColor])
	assert.Equal(t, float32(0.3), sink.last[UniformMaterialAmbientStrength])
	assert.Equal(t, mgl32.Vec3{0.4, 0.2, 0.1}, sink.last[UniformMaterialDiffuseColor])
	assert.Equal(t, mgl32.Vec3{0.3, 0.3, 0.3}, sink.last[UniformMaterialSpecularColor])
	assert.Equal(t, float32(16), sink.last[UniformMaterialShininess])
}

func TestBinderSetMaterialMissKeepsPrevious(t *testing.T) {
	b, sink := newTestBinder(t)

	b.SetMaterial("wood")
	before := len(sink.writes)

	b.SetMaterial("marble")
	assert.Len(t, sink.writes, before)
	assert.Equal(t, float32(16), sink.last[UniformMaterialShininess])
}

func TestBinderWithoutSink(t *testing.T) {
	textures, _ := newTestRegistry(nil)
	b := NewShaderBinder(nil, textures, NewMaterialRegistry())

	assert.NotPanics(t, func() {
		b.SetTransform(mgl32.Ident4())
		b.SetColor(core.ColorBlack)
		b.SetTexture("wood")
		b.SetUVScale(1, 1)
		b.SetMaterial("wood")
	})
}
