package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"still-life/core"
)

type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (m ProjectionMode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// ViewConfig sizes the viewport and the projection volumes.
type ViewConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	OrthoSize float32 `yaml:"ortho_size"`
	Near      float32 `yaml:"near"`
	Far       float32 `yaml:"far"`
}

func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		Width:     1000,
		Height:    800,
		OrthoSize: 10,
		Near:      0.1,
		Far:       100,
	}
}

// FrameInput is everything the window reported since the previous frame.
// A nil Projection keeps the current mode.
type FrameInput struct {
	Time       float64
	Cursor     []core.CursorEvent
	Scroll     []core.ScrollEvent
	Moves      []CameraMovement
	Projection *ProjectionMode
}

// ViewingContext owns the camera and the frame timing. It is updated once
// per frame and then uploads view, projection and eye position.
type ViewingContext struct {
	Camera *Camera

	config     ViewConfig
	mode       ProjectionMode
	lastX      float32
	lastY      float32
	firstMouse bool
	lastFrame  float64
	deltaTime  float32
}

func NewViewingContext(camera *Camera, config ViewConfig) *ViewingContext {
	if camera == nil {
		camera = DefaultCamera()
	}
	return &ViewingContext{
		Camera:     camera,
		config:     config,
		lastX:      float32(config.Width) / 2,
		lastY:      float32(config.Height) / 2,
		firstMouse: true,
	}
}

// Update advances timing and applies the frame's input to the camera.
// Cursor events turn the camera; the first one only latches the position.
func (v *ViewingContext) Update(in FrameInput) {
	v.deltaTime = float32(in.Time - v.lastFrame)
	v.lastFrame = in.Time

	for _, ev := range in.Cursor {
		x, y := float32(ev.X), float32(ev.Y)
		if v.firstMouse {
			v.lastX, v.lastY = x, y
			v.firstMouse = false
		}
		// y grows downward in window coordinates
		v.Camera.ProcessMouseMovement(x-v.lastX, v.lastY-y)
		v.lastX, v.lastY = x, y
	}

	for _, ev := range in.Scroll {
		v.Camera.ProcessMouseScroll(float32(ev.YOffset))
	}

	for _, m := range in.Moves {
		v.Camera.ProcessKeyboard(m, v.deltaTime)
	}

	if in.Projection != nil && *in.Projection != v.mode {
		v.mode = *in.Projection
		log().Info("projection changed", zap.Stringer("mode", v.mode))
	}
}

func (v *ViewingContext) DeltaTime() float32 {
	return v.deltaTime
}

func (v *ViewingContext) Mode() ProjectionMode {
	return v.mode
}

// SetViewport updates the aspect ratio after a framebuffer resize.
// Non-positive sizes are ignored.
func (v *ViewingContext) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.config.Width = width
	v.config.Height = height
}

func (v *ViewingContext) aspect() float32 {
	return float32(v.config.Width) / float32(v.config.Height)
}

func (v *ViewingContext) ProjectionMatrix() mgl32.Mat4 {
	aspect := v.aspect()
	if v.mode == Orthographic {
		size := v.config.OrthoSize
		return mgl32.Ortho(-size*aspect, size*aspect, -size, size, v.config.Near, v.config.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(v.Camera.Zoom), aspect, v.config.Near, v.config.Far)
}

func (v *ViewingContext) ViewMatrix() mgl32.Mat4 {
	return v.Camera.ViewMatrix()
}

// Apply uploads the view, projection and eye position for this frame.
func (v *ViewingContext) Apply(uniforms UniformSink) {
	if uniforms == nil {
		return
	}
	uniforms.SetMat4(UniformView, v.ViewMatrix())
	uniforms.SetMat4(UniformProjection, v.ProjectionMatrix())
	uniforms.SetVec3(UniformViewPosition, v.Camera.Position)
}
