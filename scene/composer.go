package scene

import (
	"path/filepath"

	"go.uber.org/zap"
)

// MeshProvider supplies geometry for each ShapeKind. Drawing a kind that
// was never loaded must be a no-op.
type MeshProvider interface {
	LoadMesh(kind ShapeKind) error
	DrawMesh(kind ShapeKind)
}

// Composer prepares a Description once and replays its placements every
// frame. It owns the texture and material registries for the lifetime of
// the scene.
type Composer struct {
	Textures  *TextureRegistry
	Materials *MaterialRegistry

	desc       Description
	textureDir string
	meshes     MeshProvider
	uniforms   UniformSink
	binder     *ShaderBinder
}

// NewComposer wires a scene description to its collaborators. Relative
// texture paths are resolved against textureDir.
func NewComposer(desc Description, meshes MeshProvider, uniforms UniformSink, textures *TextureRegistry, textureDir string) *Composer {
	materials := NewMaterialRegistry()
	return &Composer{
		Textures:   textures,
		Materials:  materials,
		desc:       desc,
		textureDir: textureDir,
		meshes:     meshes,
		uniforms:   uniforms,
		binder:     NewShaderBinder(uniforms, textures, materials),
	}
}

// Prepare loads meshes and textures, defines materials and configures the
// lights. Individual load failures are logged and leave the affected
// objects untextured or undrawn; they never stop preparation.
func (c *Composer) Prepare() {
	l := log()

	for _, kind := range c.desc.ShapeKinds() {
		if err := c.meshes.LoadMesh(kind); err != nil {
			l.Error("mesh not loaded", zap.Stringer("shape", kind), zap.Error(err))
		}
	}

	for _, src := range c.desc.Textures {
		// Load logs its own failures.
		_ = c.Textures.Load(c.texturePath(src.Path), src.Tag)
	}

	for _, m := range c.desc.Materials {
		c.Materials.Define(m)
	}

	ApplyLights(c.uniforms, c.desc.Lights)
	c.Textures.BindAll()

	l.Info("scene prepared",
		zap.Int("textures", c.Textures.Count()),
		zap.Int("materials", c.Materials.Len()),
		zap.Int("lights", len(c.desc.Lights)),
		zap.Int("placements", len(c.desc.Placements)))
}

// Render draws every placement in order and returns the number of draw
// calls issued.
func (c *Composer) Render() int {
	draws := 0
	for _, p := range c.desc.Placements {
		c.binder.SetTransform(p.Transform.Resolve())

		switch {
		case p.TextureTag != "":
			c.binder.SetTexture(p.TextureTag)
		case p.Color != nil:
			c.binder.SetColor(*p.Color)
		}
		c.binder.SetUVScale(p.UVScale.X(), p.UVScale.Y())
		if p.MaterialTag != "" {
			c.binder.SetMaterial(p.MaterialTag)
		}

		c.meshes.DrawMesh(p.Shape)
		draws++
	}
	return draws
}

// Destroy releases the scene's textures.
func (c *Composer) Destroy() {
	c.Textures.ReleaseAll()
}

func (c *Composer) Description() Description {
	return c.desc
}

func (c *Composer) texturePath(path string) string {
	if c.textureDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.textureDir, path)
}
