package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"still-life/core"
)

// Tessellation used for every generated primitive.
const (
	primitiveSegments = 36
	primitiveRings    = 18

	torusMajorRadius = 1.0
	torusMinorRadius = 0.2

	taperedTopRadius = 0.5
)

var (
	vecUp   = mgl32.Vec3{0, 1, 0}
	vecDown = mgl32.Vec3{0, -1, 0}
)

// GenerateMesh builds the unit mesh for kind. Plane spans -1..1 in X and Z,
// sphere and torus are centered on the origin and cylinders stand on the
// origin with their top cap at y = 1.
func GenerateMesh(kind ShapeKind) (core.MeshData, error) {
	switch kind {
	case ShapePlane:
		return createPlane(), nil
	case ShapeSphere:
		return createSphere(primitiveSegments, primitiveRings), nil
	case ShapeCylinder:
		return createLathe(1, 1, primitiveSegments), nil
	case ShapeTaperedCylinder:
		return createLathe(1, taperedTopRadius, primitiveSegments), nil
	case ShapeTorus:
		return createTorus(torusMajorRadius, torusMinorRadius, primitiveSegments, primitiveRings), nil
	}
	return core.MeshData{}, errors.Wrapf(ErrUnknownShape, "%d", int(kind))
}

func createPlane() core.MeshData {
	return core.MeshData{
		Vertices: []core.Vertex{
			{Position: mgl32.Vec3{-1, 0, -1}, Normal: vecUp, UV: mgl32.Vec2{0, 1}},
			{Position: mgl32.Vec3{1, 0, -1}, Normal: vecUp, UV: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{1, 0, 1}, Normal: vecUp, UV: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{-1, 0, 1}, Normal: vecUp, UV: mgl32.Vec2{0, 0}},
		},
		// counter-clockwise seen from +Y
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}

func createSphere(segments, rings int) core.MeshData {
	var mesh core.MeshData

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			mesh.Vertices = append(mesh.Vertices, core.Vertex{
				Position: normal,
				Normal:   normal,
				UV:       mgl32.Vec2{float32(seg) / float32(segments), 1 - float32(ring)/float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			mesh.Indices = append(mesh.Indices, current, current+1, next)
			mesh.Indices = append(mesh.Indices, current+1, next+1, next)
		}
	}
	return mesh
}

// createLathe builds a capped frustum from y = 0 to y = 1. Equal radii give
// a plain cylinder.
func createLathe(bottomRadius, topRadius float32, segments int) core.MeshData {
	var mesh core.MeshData

	// side normals lean toward the narrow end
	slope := bottomRadius - topRadius
	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		sinT, cosT := math32.Sincos(theta)
		normal := mgl32.Vec3{cosT, slope, sinT}.Normalize()
		u := float32(i) / float32(segments)

		mesh.Vertices = append(mesh.Vertices,
			core.Vertex{Position: mgl32.Vec3{cosT * bottomRadius, 0, sinT * bottomRadius}, Normal: normal, UV: mgl32.Vec2{u, 0}},
			core.Vertex{Position: mgl32.Vec3{cosT * topRadius, 1, sinT * topRadius}, Normal: normal, UV: mgl32.Vec2{u, 1}},
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		mesh.Indices = append(mesh.Indices, base, base+1, base+2)
		mesh.Indices = append(mesh.Indices, base+2, base+1, base+3)
	}

	appendCap(&mesh, 1, topRadius, vecUp, segments)
	appendCap(&mesh, 0, bottomRadius, vecDown, segments)
	return mesh
}

func appendCap(mesh *core.MeshData, y, radius float32, normal mgl32.Vec3, segments int) {
	center := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, core.Vertex{
		Position: mgl32.Vec3{0, y, 0},
		Normal:   normal,
		UV:       mgl32.Vec2{0.5, 0.5},
	})

	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		sinT, cosT := math32.Sincos(theta)
		mesh.Vertices = append(mesh.Vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, y, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5},
		})
	}

	for i := 0; i < segments; i++ {
		a := center + 1 + uint32(i)
		b := a + 1
		if normal.Y() > 0 {
			mesh.Indices = append(mesh.Indices, center, b, a)
		} else {
			mesh.Indices = append(mesh.Indices, center, a, b)
		}
	}
}

// createTorus builds a ring in the XZ plane.
func createTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) core.MeshData {
	var mesh core.MeshData

	for i := 0; i <= majorSegments; i++ {
		u := float32(i) / float32(majorSegments)
		sinU, cosU := math32.Sincos(u * 2 * math32.Pi)

		for j := 0; j <= minorSegments; j++ {
			v := float32(j) / float32(minorSegments)
			sinV, cosV := math32.Sincos(v * 2 * math32.Pi)

			ring := majorRadius + minorRadius*cosV
			mesh.Vertices = append(mesh.Vertices, core.Vertex{
				Position: mgl32.Vec3{ring * cosU, minorRadius * sinV, ring * sinU},
				Normal:   mgl32.Vec3{cosV * cosU, sinV, cosV * sinU},
				UV:       mgl32.Vec2{u, v},
			})
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			a := uint32(i*(minorSegments+1) + j)
			b := a + uint32(minorSegments+1)
			mesh.Indices = append(mesh.Indices, a, a+1, b)
			mesh.Indices = append(mesh.Indices, a+1, b+1, b)
		}
	}
	return mesh
}
