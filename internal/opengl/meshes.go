package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"still-life/core"
	"still-life/scene"
)

var _ scene.MeshProvider = (*Meshes)(nil)

// GPUMesh holds the GL objects for one uploaded primitive.
type GPUMesh struct {
	VAO, VBO, EBO uint32
	IndexCount    int32
}

// Meshes generates and uploads the built-in primitives on demand.
type Meshes struct {
	gpu map[scene.ShapeKind]*GPUMesh
}

func NewMeshes() *Meshes {
	return &Meshes{gpu: make(map[scene.ShapeKind]*GPUMesh)}
}

// LoadMesh uploads the mesh for kind. Loading the same kind twice is a no-op.
func (m *Meshes) LoadMesh(kind scene.ShapeKind) error {
	if _, ok := m.gpu[kind]; ok {
		return nil
	}
	data, err := scene.GenerateMesh(kind)
	if err != nil {
		return err
	}
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return errors.Errorf("%s mesh is empty", kind)
	}
	m.gpu[kind] = upload(data)
	return nil
}

// DrawMesh draws kind with the current program. Unloaded kinds are skipped.
func (m *Meshes) DrawMesh(kind scene.ShapeKind) {
	gpu, ok := m.gpu[kind]
	if !ok {
		return
	}
	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *Meshes) Destroy() {
	for kind, gpu := range m.gpu {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(m.gpu, kind)
	}
}

func upload(data core.MeshData) *GPUMesh {
	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUMesh{IndexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*int(stride), gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return gpu
}
