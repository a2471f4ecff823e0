package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"still-life/core"
	"still-life/internal/window"
	"still-life/scene"
)

// DefaultConfigPath is read when -config is not given. A missing file is
// not an error.
const DefaultConfigPath = "stilllife.yaml"

// Config holds the demo's runtime settings.
type Config struct {
	Window     window.WindowConfig `yaml:"window"`
	View       scene.ViewConfig    `yaml:"view"`
	ClearColor core.Color          `yaml:"clear_color"`
	TextureDir string              `yaml:"texture_dir"`
	SceneFile  string              `yaml:"scene_file,omitempty"`
	ExportPath string              `yaml:"export_path,omitempty"`
	LogLevel   string              `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Window:     window.DefaultWindowConfig(),
		View:       scene.DefaultViewConfig(),
		ClearColor: core.ColorBlack,
		TextureDir: "textures",
		LogLevel:   "info",
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. When the
// file does not exist the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}
