package window

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"still-life/core"
)

func init() {
	runtime.LockOSThread()
}

// Window owns the GLFW window and its OpenGL context. Input callbacks only
// queue events; the frame loop drains them with DrainEvents.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	cursorEvents []core.CursorEvent
	scrollEvents []core.ScrollEvent
}

type WindowConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	Resizable     bool   `yaml:"resizable"`
	VSync         bool   `yaml:"vsync"`
	Fullscreen    bool   `yaml:"fullscreen"`
	CaptureCursor bool   `yaml:"capture_cursor"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:         1000,
		Height:        800,
		Title:         "Still Life",
		Resizable:     false,
		VSync:         true,
		Fullscreen:    false,
		CaptureCursor: true,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize GLFW")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to create window")
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if config.CaptureCursor {
		handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})
	handle.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		window.cursorEvents = append(window.cursorEvents, core.CursorEvent{X: x, Y: y})
	})
	handle.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		window.scrollEvents = append(window.scrollEvents, core.ScrollEvent{XOffset: xoff, YOffset: yoff})
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.Handle.SetShouldClose(close)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// DrainEvents returns the input queued since the previous call and resets
// the queues.
func (w *Window) DrainEvents() ([]core.CursorEvent, []core.ScrollEvent) {
	cursor, scroll := w.cursorEvents, w.scrollEvents
	w.cursorEvents = nil
	w.scrollEvents = nil
	return cursor, scroll
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Time is the number of seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

const (
	KeyA      = int(glfw.KeyA)
	KeyD      = int(glfw.KeyD)
	KeyE      = int(glfw.KeyE)
	KeyO      = int(glfw.KeyO)
	KeyP      = int(glfw.KeyP)
	KeyQ      = int(glfw.KeyQ)
	KeyS      = int(glfw.KeyS)
	KeyW      = int(glfw.KeyW)
	KeyEscape = int(glfw.KeyEscape)
)
