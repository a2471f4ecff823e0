package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraMovement is a direction relative to the camera's orientation.
type CameraMovement int

const (
	MoveForward CameraMovement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

const (
	DefaultMovementSpeed    = 2.5
	DefaultMouseSensitivity = 0.1

	minZoom  = 1.0
	maxZoom  = 90.0
	maxPitch = 89.0
)

// Camera is a fly camera driven by yaw and pitch in degrees. Zoom is the
// vertical field of view in degrees.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// NewCamera places a camera at position looking along front. Yaw and pitch
// are derived from front so that later mouse input continues smoothly.
func NewCamera(position, front, worldUp mgl32.Vec3, zoom float32) *Camera {
	front = front.Normalize()
	c := &Camera{
		Position:         position,
		WorldUp:          worldUp,
		Yaw:              mgl32.RadToDeg(math32.Atan2(front.Z(), front.X())),
		Pitch:            mgl32.RadToDeg(math32.Asin(mgl32.Clamp(front.Y(), -1, 1))),
		MovementSpeed:    DefaultMovementSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
		Zoom:             zoom,
	}
	c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)
	c.updateVectors()
	return c
}

// DefaultCamera is above and in front of the table, looking down at 45
// degrees.
func DefaultCamera() *Camera {
	return NewCamera(
		mgl32.Vec3{0, 10, 7},
		mgl32.Vec3{0, -1, -1},
		mgl32.Vec3{0, 1, 0},
		80,
	)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera by MovementSpeed*deltaTime in direction.
func (c *Camera) ProcessKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case MoveForward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case MoveBackward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case MoveLeft:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case MoveRight:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case MoveUp:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case MoveDown:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor offset in pixels.
// Positive yOffset looks up.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)
	c.updateVectors()
}

// ProcessMouseScroll narrows the field of view for positive offsets.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-yOffset, minZoom, maxZoom)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
