package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"still-life/internal/logger"
	"still-life/internal/opengl"
	"still-life/internal/window"
	"still-life/scene"
)

var (
	configPath = flag.String("config", DefaultConfigPath, "path to the YAML settings file")
	scenePath  = flag.String("scene", "", "YAML scene description (default: built-in still life)")
	exportPath = flag.String("export", "", "write the scene as .gltf or .glb and exit")
	dumpPath   = flag.String("dump-scene", "", "write the active scene description as YAML and exit")
)

// moveBindings maps held keys to camera movement.
var moveBindings = []struct {
	key  int
	move scene.CameraMovement
}{
	{window.KeyW, scene.MoveForward},
	{window.KeyS, scene.MoveBackward},
	{window.KeyA, scene.MoveLeft},
	{window.KeyD, scene.MoveRight},
	{window.KeyQ, scene.MoveUp},
	{window.KeyE, scene.MoveDown},
}

// collectInput reads held keys into a FrameInput. O wins over P when both
// are held.
func collectInput(pressed func(key int) bool) scene.FrameInput {
	var in scene.FrameInput
	for _, b := range moveBindings {
		if pressed(b.key) {
			in.Moves = append(in.Moves, b.move)
		}
	}

	var mode scene.ProjectionMode
	switch {
	case pressed(window.KeyO):
		mode = scene.Orthographic
		in.Projection = &mode
	case pressed(window.KeyP):
		mode = scene.Perspective
		in.Projection = &mode
	}
	return in
}

func main() {
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *scenePath != "" {
		cfg.SceneFile = *scenePath
	}
	if *exportPath != "" {
		cfg.ExportPath = *exportPath
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Named("demo")

	desc := scene.StillLife()
	if cfg.SceneFile != "" {
		desc, err = scene.LoadDescription(cfg.SceneFile)
		if err != nil {
			log.Fatal("failed to load scene", zap.Error(err))
		}
	}

	if *dumpPath != "" {
		if err := scene.SaveDescription(*dumpPath, desc); err != nil {
			log.Fatal("scene dump failed", zap.Error(err))
		}
		log.Info("scene written", zap.String("path", *dumpPath))
		return
	}

	if cfg.ExportPath != "" {
		if err := export(desc, cfg.ExportPath); err != nil {
			log.Fatal("export failed", zap.Error(err))
		}
		return
	}

	if err := run(cfg, desc); err != nil {
		log.Fatal("still life exited", zap.Error(err))
	}
}

func export(desc scene.Description, path string) error {
	doc, err := scene.ExportGLTF(desc)
	if err != nil {
		return err
	}
	if err := scene.SaveGLTF(doc, path); err != nil {
		return err
	}
	logger.Named("demo").Info("scene exported",
		zap.String("path", path), zap.Int("nodes", len(doc.Nodes)), zap.Int("meshes", len(doc.Meshes)))
	return nil
}

func run(cfg Config, desc scene.Description) error {
	win, err := window.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	renderer, err := opengl.NewRenderer(cfg.ClearColor)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	fbW, fbH := win.GetFramebufferSize()
	renderer.SetViewport(fbW, fbH)

	cfg.View.Width, cfg.View.Height = cfg.Window.Width, cfg.Window.Height
	view := scene.NewViewingContext(scene.DefaultCamera(), cfg.View)
	view.SetViewport(fbW, fbH)

	textures := scene.NewTextureRegistry(scene.FileDecoder{FlipVertically: true}, renderer.Textures)
	composer := scene.NewComposer(desc, renderer.Meshes, renderer.Program, textures, cfg.TextureDir)
	composer.Prepare()
	defer composer.Destroy()

	stats := &StatsOverlay{}
	for !win.ShouldClose() {
		win.PollEvents()
		if win.IsKeyPressed(window.KeyEscape) {
			win.SetShouldClose(true)
		}

		if w, h := win.GetFramebufferSize(); w != fbW || h != fbH {
			fbW, fbH = w, h
			renderer.SetViewport(fbW, fbH)
			view.SetViewport(fbW, fbH)
		}

		in := collectInput(win.IsKeyPressed)
		in.Time = win.Time()
		in.Cursor, in.Scroll = win.DrainEvents()
		view.Update(in)

		renderer.BeginFrame()
		view.Apply(renderer.Program)
		draws := composer.Render()
		win.SwapBuffers()

		if stats.Tick(float64(view.DeltaTime())) {
			pos := view.Camera.Position
			stats.Clear()
			stats.AddLine("%s", cfg.Window.Title)
			stats.AddLine("FPS: %d", stats.FPS())
			stats.AddLine("draws: %d", draws)
			stats.AddLine("(%.1f, %.1f, %.1f) %s", pos.X(), pos.Y(), pos.Z(), view.Mode())
			win.SetTitle(stats.Text())
		}
	}
	return nil
}
