package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"still-life/internal/logger"
)

// UniformSink receives named uniform values for the active shader program.
// Writes are applied immediately and the last write to a name wins.
type UniformSink interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
	SetSampler2D(name string, unit int32)
}

// Uniform names shared with shaders/scene.frag and shaders/scene.vert.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"

	UniformObjectColor   = "objectColor"
	UniformObjectTexture = "objectTexture"
	UniformUseTexture    = "bUseTexture"
	UniformUseLighting   = "bUseLighting"
	UniformUVScale       = "UVscale"

	UniformMaterialAmbientColor    = "material.ambientColor"
	UniformMaterialAmbientStrength = "material.ambientStrength"
	UniformMaterialDiffuseColor    = "material.diffuseColor"
	UniformMaterialSpecularColor   = "material.specularColor"
	UniformMaterialShininess       = "material.shininess"
)

func log() *zap.Logger {
	return logger.Named("scene")
}
