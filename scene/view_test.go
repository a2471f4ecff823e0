package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"still-life/core"
)

func TestViewingContextTiming(t *testing.T) {
	v := NewViewingContext(nil, DefaultViewConfig())

	v.Update(FrameInput{Time: 1.0})
	v.Update(FrameInput{Time: 1.25})
	assert.InDelta(t, 0.25, v.DeltaTime(), 1e-6)
}

func TestViewingContextMovementUsesDelta(t *testing.T) {
	v := NewViewingContext(nil, DefaultViewConfig())
	v.Update(FrameInput{Time: 1})

	front := v.Camera.Front
	start := v.Camera.Position
	v.Update(FrameInput{Time: 1.5, Moves: []CameraMovement{MoveForward}})

	assertVecNear(t, start.Add(front.Mul(DefaultMovementSpeed*0.5)), v.Camera.Position)
}

func TestViewingContextFirstMouseLatch(t *testing.T) {
	v := NewViewingContext(nil, DefaultViewConfig())
	yaw, pitch := v.Camera.Yaw, v.Camera.Pitch

	v.Update(FrameInput{Cursor: []core.CursorEvent{{X: 900, Y: 100}}})
	assert.Equal(t, yaw, v.Camera.Yaw)
	assert.Equal(t, pitch, v.Camera.Pitch)

	// moving right and up turns right and up
	v.Update(FrameInput{Cursor: []core.CursorEvent{{X: 910, Y: 90}}})
	assert.InDelta(t, yaw+1, v.Camera.Yaw, 1e-4)
	assert.InDelta(t, pitch+1, v.Camera.Pitch, 1e-4)
}

func TestViewingContextScroll(t *testing.T) {
	v := NewViewingContext(nil, DefaultViewConfig())
	v.Update(FrameInput{Scroll: []core.ScrollEvent{{YOffset: 10}}})
	assert.Equal(t, float32(70), v.Camera.Zoom)
}

func TestViewingContextProjectionToggle(t *testing.T) {
	cfg := DefaultViewConfig()
	v := NewViewingContext(nil, cfg)
	assert.Equal(t, Perspective, v.Mode())

	aspect := float32(cfg.Width) / float32(cfg.Height)
	persp := mgl32.Perspective(mgl32.DegToRad(80), aspect, cfg.Near, cfg.Far)
	assert.True(t, persp.ApproxEqualThreshold(v.ProjectionMatrix(), 1e-5))

	ortho := Orthographic
	v.Update(FrameInput{Projection: &ortho})
	assert.Equal(t, Orthographic, v.Mode())

	want := mgl32.Ortho(-10*aspect, 10*aspect, -10, 10, 0.1, 100)
	assert.True(t, want.ApproxEqualThreshold(v.ProjectionMatrix(), 1e-5))

	// no request keeps the mode
	v.Update(FrameInput{})
	assert.Equal(t, Orthographic, v.Mode())
}

func TestViewingContextSetViewport(t *testing.T) {
	v := NewViewingContext(nil, DefaultViewConfig())
	before := v.ProjectionMatrix()

	v.SetViewport(0, 600)
	assert.Equal(t, before, v.ProjectionMatrix())

	v.SetViewport(800, 800)
	want := mgl32.Perspective(mgl32.DegToRad(80), 1, 0.1, 100)
	assert.True(t, want.ApproxEqualThreshold(v.ProjectionMatrix(), 1e-5))
}

func TestViewingContextApply(t *testing.T) {
	v := NewViewingContext(nil, DefaultViewConfig())
	sink := newRecordingSink()

	v.Apply(sink)

	assert.Equal(t, v.ViewMatrix(), sink.last[UniformView])
	assert.Equal(t, v.ProjectionMatrix(), sink.last[UniformProjection])
	assert.Equal(t, mgl32.Vec3{0, 10, 7}, sink.last[UniformViewPosition])
	assert.NotPanics(t, func() { v.Apply(nil) })
}
