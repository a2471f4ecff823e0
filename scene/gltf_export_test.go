package scene

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGLTF(t *testing.T) {
	desc := StillLife()

	doc, err := ExportGLTF(desc)
	require.NoError(t, err)

	assert.Len(t, doc.Meshes, len(desc.ShapeKinds()))
	require.Len(t, doc.Nodes, len(desc.Placements))
	assert.Len(t, doc.Scenes[0].Nodes, len(desc.Placements))

	for i, p := range desc.Placements {
		node := doc.Nodes[i]
		assert.Equal(t, p.Name, node.Name)
		require.NotNil(t, node.Mesh)
		assert.Equal(t, p.Shape.String(), doc.Meshes[*node.Mesh].Name)

		model := p.Transform.Resolve()
		for j := range model {
			assert.InDelta(t, model[j], node.Matrix[j], 1e-6)
		}

		extras, ok := node.Extras.(PlacementExtras)
		require.True(t, ok)
		assert.Equal(t, p.TextureTag, extras.Texture)
		assert.Equal(t, p.MaterialTag, extras.Material)
	}
}

func TestExportGLTFRejectsUnknownShape(t *testing.T) {
	desc := Description{Placements: []ObjectPlacement{{Name: "bad", Shape: ShapeKind(7)}}}
	_, err := ExportGLTF(desc)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestEncodeGLTFBinary(t *testing.T) {
	doc, err := ExportGLTF(StillLife())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeGLTF(&buf, doc, true))
	assert.Equal(t, []byte("glTF"), buf.Bytes()[:4])
}

func TestSaveGLTFRoundTrip(t *testing.T) {
	doc, err := ExportGLTF(StillLife())
	require.NoError(t, err)

	for _, name := range []string{"scene.gltf", "scene.glb"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, SaveGLTF(doc, path))

		loaded, err := gltf.Open(path)
		require.NoError(t, err, name)
		assert.Len(t, loaded.Nodes, 12, name)
		assert.Len(t, loaded.Meshes, len(AllShapeKinds()), name)
	}
}
