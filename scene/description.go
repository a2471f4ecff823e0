package scene

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TextureSource names an image file and the tag placements use to refer to it.
type TextureSource struct {
	Path string `yaml:"path"`
	Tag  string `yaml:"tag"`
}

// Description is everything needed to compose a scene: the resources to
// load and the ordered list of draws.
type Description struct {
	Textures   []TextureSource   `yaml:"textures"`
	Materials  []Material        `yaml:"materials"`
	Lights     []LightSource     `yaml:"lights"`
	Placements []ObjectPlacement `yaml:"placements"`
}

// ShapeKinds returns the distinct shapes the placements use, in declaration
// order.
func (d Description) ShapeKinds() []ShapeKind {
	used := make(map[ShapeKind]bool, len(shapeNames))
	for _, p := range d.Placements {
		used[p.Shape] = true
	}
	var kinds []ShapeKind
	for _, k := range AllShapeKinds() {
		if used[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Validate reports the first placement with an unknown shape.
func (d Description) Validate() error {
	for i, p := range d.Placements {
		if !p.Shape.Valid() {
			return errors.Wrapf(ErrUnknownShape, "placement %d (%s)", i, p.Name)
		}
	}
	return nil
}

func (k ShapeKind) MarshalYAML() (interface{}, error) {
	if !k.Valid() {
		return nil, errors.Wrapf(ErrUnknownShape, "%d", int(k))
	}
	return k.String(), nil
}

func (k *ShapeKind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	kind, err := ParseShapeKind(name)
	if err != nil {
		return errors.Wrapf(err, "line %d", node.Line)
	}
	*k = kind
	return nil
}

// UnmarshalYAML fills in unit scale and UV scale before decoding so that
// scene files only need to spell out what differs.
func (p *ObjectPlacement) UnmarshalYAML(node *yaml.Node) error {
	type rawPlacement ObjectPlacement
	raw := rawPlacement{
		Transform: Identity(),
		UVScale:   mgl32.Vec2{1, 1},
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*p = ObjectPlacement(raw)
	return nil
}

func DescriptionFromYAML(data []byte) (Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Description{}, errors.Wrap(err, "parse scene description")
	}
	if err := d.Validate(); err != nil {
		return Description{}, err
	}
	return d, nil
}

func LoadDescription(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Description{}, errors.Wrapf(err, "read scene %q", path)
	}
	d, err := DescriptionFromYAML(data)
	if err != nil {
		return Description{}, errors.Wrapf(err, "scene %q", path)
	}
	return d, nil
}

func SaveDescription(path string, d Description) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "encode scene description")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write scene %q", path)
	}
	return nil
}
