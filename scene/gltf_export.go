package scene

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// PlacementExtras is stored on every exported node so the shading choices
// survive the round trip to other tools.
type PlacementExtras struct {
	Texture  string     `json:"texture,omitempty"`
	Material string     `json:"material,omitempty"`
	Color    []float32  `json:"color,omitempty"`
	UVScale  [2]float32 `json:"uvScale"`
}

// ExportGLTF converts a description into a glTF document with one mesh per
// shape in use and one node per placement. Node matrices are the resolved
// model matrices, so the exported scene matches what Render draws.
func ExportGLTF(desc Description) (*gltf.Document, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	doc := gltf.NewDocument()
	meshIndex := make(map[ShapeKind]int)

	for _, kind := range desc.ShapeKinds() {
		data, err := GenerateMesh(kind)
		if err != nil {
			return nil, errors.Wrapf(err, "export %s", kind)
		}

		positions := make([][3]float32, len(data.Vertices))
		normals := make([][3]float32, len(data.Vertices))
		uvs := make([][2]float32, len(data.Vertices))
		for i, v := range data.Vertices {
			positions[i] = v.Position
			normals[i] = v.Normal
			uvs[i] = v.UV
		}

		attributes := map[string]int{
			"POSITION":   modeler.WritePosition(doc, positions),
			"NORMAL":     modeler.WriteNormal(doc, normals),
			"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
		}
		indices := modeler.WriteIndices(doc, data.Indices)

		meshIndex[kind] = len(doc.Meshes)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: kind.String(),
			Primitives: []*gltf.Primitive{{
				Attributes: attributes,
				Indices:    gltf.Index(indices),
				Mode:       gltf.PrimitiveTriangles,
			}},
		})
	}

	for _, p := range desc.Placements {
		model := p.Transform.Resolve()
		var matrix [16]float64
		for i, f := range model {
			matrix[i] = float64(f)
		}

		extras := PlacementExtras{
			Texture:  p.TextureTag,
			Material: p.MaterialTag,
			UVScale:  p.UVScale,
		}
		if p.Color != nil {
			extras.Color = []float32{p.Color.R, p.Color.G, p.Color.B, p.Color.A}
		}

		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:   p.Name,
			Mesh:   gltf.Index(meshIndex[p.Shape]),
			Matrix: matrix,
			Extras: extras,
		})
	}

	return doc, nil
}

// EncodeGLTF writes doc to w, as GLB when binary is set.
func EncodeGLTF(w io.Writer, doc *gltf.Document, binary bool) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = binary
	return errors.Wrap(encoder.Encode(doc), "encode gltf")
}

// SaveGLTF writes doc to path. A .glb extension selects the binary format.
func SaveGLTF(doc *gltf.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	defer f.Close()

	binary := strings.EqualFold(filepath.Ext(path), ".glb")
	if err := EncodeGLTF(f, doc, binary); err != nil {
		return errors.Wrapf(err, "save %q", path)
	}
	return nil
}
