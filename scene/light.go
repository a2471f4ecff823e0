package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// MaxLights is the size of the lightSources array in the fragment shader.
const MaxLights = 4

type LightSource struct {
	Position          mgl32.Vec3 `yaml:"position"`
	AmbientColor      mgl32.Vec3 `yaml:"ambient_color"`
	DiffuseColor      mgl32.Vec3 `yaml:"diffuse_color"`
	SpecularColor     mgl32.Vec3 `yaml:"specular_color"`
	FocalStrength     float32    `yaml:"focal_strength"`
	SpecularIntensity float32    `yaml:"specular_intensity"`
}

// ApplyLights enables lighting and uploads lights[i] to lightSources[i].
// The whole set is replaced; entries past MaxLights are dropped.
func ApplyLights(uniforms UniformSink, lights []LightSource) {
	if uniforms == nil {
		return
	}
	if len(lights) > MaxLights {
		log().Warn("too many lights, extra lights ignored", zap.Int("count", len(lights)), zap.Int("max", MaxLights))
		lights = lights[:MaxLights]
	}

	uniforms.SetBool(UniformUseLighting, true)
	for i, l := range lights {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		uniforms.SetVec3(prefix+"position", l.Position)
		uniforms.SetVec3(prefix+"ambientColor", l.AmbientColor)
		uniforms.SetVec3(prefix+"diffuseColor", l.DiffuseColor)
		uniforms.SetVec3(prefix+"specularColor", l.SpecularColor)
		uniforms.SetFloat(prefix+"focalStrength", l.FocalStrength)
		uniforms.SetFloat(prefix+"specularIntensity", l.SpecularIntensity)
	}
}
