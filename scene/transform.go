package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformParams places one object for one draw call.
type TransformParams struct {
	Scale           mgl32.Vec3 `yaml:"scale"`
	RotationDegrees mgl32.Vec3 `yaml:"rotation"`
	Position        mgl32.Vec3 `yaml:"position"`
}

// Resolve builds the model matrix
//
//	Translate(Position) * RotateX * RotateY * RotateZ * Scale
//
// for column vectors, so the object is scaled, then rotated about its own
// Z, Y and X axes, then moved into place. Zero or negative scale components
// are passed through untouched; a negative Y scale is how the bowl shell
// turns a sphere inside out.
func (t TransformParams) Resolve() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotationDegrees.X()))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotationDegrees.Y()))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotationDegrees.Z()))
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scale)
}

// Identity returns parameters that resolve to the identity matrix.
func Identity() TransformParams {
	return TransformParams{Scale: mgl32.Vec3{1, 1, 1}}
}
