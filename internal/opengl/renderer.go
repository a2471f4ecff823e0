package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"still-life/core"
	"still-life/internal/logger"
)

// Renderer is the OpenGL backend: one scene program plus the mesh and
// texture stores the composer draws through.
type Renderer struct {
	Program  *Program
	Meshes   *Meshes
	Textures *Textures

	clearColor core.Color
	viewportW  int32
	viewportH  int32
}

// NewRenderer initialises OpenGL and compiles the scene program.
// Must be called after the GLFW window context is made current.
func NewRenderer(clearColor core.Color) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}

	logger.Named("opengl").Info("opengl ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	program, err := NewSceneProgram()
	if err != nil {
		return nil, errors.Wrap(err, "scene shader")
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		Program:    program,
		Meshes:     NewMeshes(),
		Textures:   NewTextures(),
		clearColor: clearColor,
	}
	r.Program.Use()
	return r, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
}

// BeginFrame clears color and depth and activates the scene program.
func (r *Renderer) BeginFrame() {
	c := r.clearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.Program.Use()
}

func (r *Renderer) Destroy() {
	r.Meshes.Destroy()
	r.Program.Destroy()
}
