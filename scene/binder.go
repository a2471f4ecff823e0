package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"still-life/core"
)

// ShaderBinder pushes per-draw state to the shader. Every setter does
// nothing when no uniform sink is attached.
type ShaderBinder struct {
	uniforms  UniformSink
	textures  *TextureRegistry
	materials *MaterialRegistry
}

func NewShaderBinder(uniforms UniformSink, textures *TextureRegistry, materials *MaterialRegistry) *ShaderBinder {
	return &ShaderBinder{
		uniforms:  uniforms,
		textures:  textures,
		materials: materials,
	}
}

func (b *ShaderBinder) SetTransform(model mgl32.Mat4) {
	if b.uniforms == nil {
		return
	}
	b.uniforms.SetMat4(UniformModel, model)
}

// SetColor switches the shader to a flat color.
func (b *ShaderBinder) SetColor(c core.Color) {
	if b.uniforms == nil {
		return
	}
	b.uniforms.SetBool(UniformUseTexture, false)
	b.uniforms.SetVec4(UniformObjectColor, c.Vec4())
}

// SetTexture switches the shader to texture sampling from the unit holding
// tag. An unknown tag uploads -1, which the program treats as no texture.
func (b *ShaderBinder) SetTexture(tag string) {
	if b.uniforms == nil {
		return
	}
	b.uniforms.SetBool(UniformUseTexture, true)

	slot := -1
	if b.textures != nil {
		if s, ok := b.textures.FindSlot(tag); ok {
			slot = s
		}
	}
	b.uniforms.SetSampler2D(UniformObjectTexture, int32(slot))
}

func (b *ShaderBinder) SetUVScale(u, v float32) {
	if b.uniforms == nil {
		return
	}
	b.uniforms.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial uploads the material registered under tag. When the tag is
// unknown nothing is uploaded and the previous material stays in effect.
func (b *ShaderBinder) SetMaterial(tag string) {
	if b.uniforms == nil || b.materials == nil {
		return
	}
	m, ok := b.materials.Find(tag)
	if !ok {
		return
	}
	b.uniforms.SetVec3(UniformMaterialAmbientColor, m.AmbientColor)
	b.uniforms.SetFloat(UniformMaterialAmbientStrength, m.AmbientStrength)
	b.uniforms.SetVec3(UniformMaterialDiffuseColor, m.DiffuseColor)
	b.uniforms.SetVec3(UniformMaterialSpecularColor, m.SpecularColor)
	b.uniforms.SetFloat(UniformMaterialShininess, m.Shininess)
}
