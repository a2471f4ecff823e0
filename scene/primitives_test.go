package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMeshIndicesInRange(t *testing.T) {
	for _, kind := range AllShapeKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			mesh, err := GenerateMesh(kind)
			require.NoError(t, err)
			require.NotEmpty(t, mesh.Vertices)
			require.NotEmpty(t, mesh.Indices)
			assert.Zero(t, len(mesh.Indices)%3)

			for _, idx := range mesh.Indices {
				require.Less(t, int(idx), len(mesh.Vertices))
			}
			for _, v := range mesh.Vertices {
				assert.InDelta(t, 1, v.Normal.Len(), 1e-4)
			}
		})
	}
}

func TestGenerateMeshUnknown(t *testing.T) {
	_, err := GenerateMesh(ShapeKind(99))
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestSphereIsUnitRadius(t *testing.T) {
	mesh, err := GenerateMesh(ShapeSphere)
	require.NoError(t, err)
	for _, v := range mesh.Vertices {
		assert.InDelta(t, 1, v.Position.Len(), 1e-4)
	}
}

func TestCylindersSpanUnitHeight(t *testing.T) {
	for _, kind := range []ShapeKind{ShapeCylinder, ShapeTaperedCylinder} {
		mesh, err := GenerateMesh(kind)
		require.NoError(t, err)

		minY, maxY := float32(1e9), float32(-1e9)
		for _, v := range mesh.Vertices {
			minY = min(minY, v.Position.Y())
			maxY = max(maxY, v.Position.Y())
		}
		assert.Equal(t, float32(0), minY, kind.String())
		assert.Equal(t, float32(1), maxY, kind.String())
	}
}

func TestTaperedCylinderNarrowsUpward(t *testing.T) {
	mesh, err := GenerateMesh(ShapeTaperedCylinder)
	require.NoError(t, err)

	for _, v := range mesh.Vertices {
		if v.Position.Y() != 1 {
			continue
		}
		r2 := v.Position.X()*v.Position.X() + v.Position.Z()*v.Position.Z()
		assert.LessOrEqual(t, r2, float32(taperedTopRadius*taperedTopRadius)+1e-4)
	}
}

func TestPlaneFacesUp(t *testing.T) {
	mesh, err := GenerateMesh(ShapePlane)
	require.NoError(t, err)
	require.Len(t, mesh.Vertices, 4)
	for _, v := range mesh.Vertices {
		assert.Equal(t, float32(0), v.Position.Y())
		assert.Equal(t, vecUp, v.Normal)
	}
}

func TestTorusRadii(t *testing.T) {
	mesh, err := GenerateMesh(ShapeTorus)
	require.NoError(t, err)
	for _, v := range mesh.Vertices {
		ring := v.Position.X()*v.Position.X() + v.Position.Z()*v.Position.Z()
		assert.LessOrEqual(t, ring, float32((torusMajorRadius+torusMinorRadius)*(torusMajorRadius+torusMinorRadius))+1e-3)
		assert.GreaterOrEqual(t, ring, float32((torusMajorRadius-torusMinorRadius)*(torusMajorRadius-torusMinorRadius))-1e-3)
	}
}
