package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Color struct {
	R, G, B, A float32
}

var ColorBlack = Color{0, 0, 0, 1}

// Vec4 returns the color as an RGBA vector.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Vertex is the interleaved layout uploaded to the GPU: position, normal, uv.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// CursorEvent is a cursor position report in window coordinates.
type CursorEvent struct {
	X, Y float64
}

// ScrollEvent is a mouse wheel report.
type ScrollEvent struct {
	XOffset, YOffset float64
}
