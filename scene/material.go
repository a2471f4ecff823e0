package scene

import "github.com/go-gl/mathgl/mgl32"

// Material is a Phong surface description. Shininess is used as the specular
// exponent and is expected to be positive.
type Material struct {
	Tag             string     `yaml:"tag"`
	AmbientColor    mgl32.Vec3 `yaml:"ambient_color"`
	AmbientStrength float32    `yaml:"ambient_strength"`
	DiffuseColor    mgl32.Vec3 `yaml:"diffuse_color"`
	SpecularColor   mgl32.Vec3 `yaml:"specular_color"`
	Shininess       float32    `yaml:"shininess"`
}

// MaterialRegistry stores materials in definition order. Duplicate tags are
// kept; Find returns the earliest one.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

func (r *MaterialRegistry) Define(m Material) {
	r.materials = append(r.materials, m)
}

func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}
