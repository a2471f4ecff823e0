package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"still-life/core"
)

// ShapeKind selects one of the built-in primitive meshes.
type ShapeKind int

const (
	ShapePlane ShapeKind = iota
	ShapeSphere
	ShapeCylinder
	ShapeTaperedCylinder
	ShapeTorus
)

var ErrUnknownShape = errors.New("unknown shape kind")

var shapeNames = [...]string{
	ShapePlane:           "plane",
	ShapeSphere:          "sphere",
	ShapeCylinder:        "cylinder",
	ShapeTaperedCylinder: "tapered_cylinder",
	ShapeTorus:           "torus",
}

func (k ShapeKind) String() string {
	if k < 0 || int(k) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[k]
}

func (k ShapeKind) Valid() bool {
	return k >= 0 && int(k) < len(shapeNames)
}

func ParseShapeKind(s string) (ShapeKind, error) {
	for i, name := range shapeNames {
		if name == s {
			return ShapeKind(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownShape, "%q", s)
}

// AllShapeKinds lists every primitive in declaration order.
func AllShapeKinds() []ShapeKind {
	kinds := make([]ShapeKind, len(shapeNames))
	for i := range kinds {
		kinds[i] = ShapeKind(i)
	}
	return kinds
}

// ObjectPlacement describes a single draw: which mesh, where it goes and how
// it is shaded. An empty TextureTag means the object uses Color (when set).
// With neither set the draw inherits the texture or color state of the
// previous placement. An empty MaterialTag likewise leaves the current
// material uniforms as they are.
type ObjectPlacement struct {
	Name        string          `yaml:"name"`
	Shape       ShapeKind       `yaml:"shape"`
	Transform   TransformParams `yaml:"transform"`
	TextureTag  string          `yaml:"texture,omitempty"`
	MaterialTag string          `yaml:"material,omitempty"`
	Color       *core.Color     `yaml:"color,omitempty"`
	UVScale     mgl32.Vec2      `yaml:"uv_scale"`
}

// Place is shorthand for a textured placement with a 1x1 UV scale.
func Place(name string, shape ShapeKind, scale, rotationDegrees, position mgl32.Vec3, texture string) ObjectPlacement {
	return ObjectPlacement{
		Name:  name,
		Shape: shape,
		Transform: TransformParams{
			Scale:           scale,
			RotationDegrees: rotationDegrees,
			Position:        position,
		},
		TextureTag: texture,
		UVScale:    mgl32.Vec2{1, 1},
	}
}

// WithMaterial returns a copy of p that also selects material tag.
func (p ObjectPlacement) WithMaterial(tag string) ObjectPlacement {
	p.MaterialTag = tag
	return p
}
