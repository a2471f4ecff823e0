package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStillLifeResources(t *testing.T) {
	d := StillLife()

	assert.Len(t, d.Textures, 6)
	assert.LessOrEqual(t, len(d.Textures), MaxTextureUnits)
	assert.Len(t, d.Materials, 2)
	assert.Len(t, d.Lights, MaxLights)
	assert.Len(t, d.Placements, 12)
	assert.NoError(t, d.Validate())
}

func TestStillLifeReferencesResolve(t *testing.T) {
	d := StillLife()

	textures := make(map[string]bool)
	for _, src := range d.Textures {
		textures[src.Tag] = true
	}
	materials := make(map[string]bool)
	for _, m := range d.Materials {
		assert.Greater(t, m.Shininess, float32(0), m.Tag)
		materials[m.Tag] = true
	}

	for _, p := range d.Placements {
		assert.True(t, textures[p.TextureTag], "%s: texture %q", p.Name, p.TextureTag)
		if p.MaterialTag != "" {
			assert.True(t, materials[p.MaterialTag], "%s: material %q", p.Name, p.MaterialTag)
		}
	}
}

func TestStillLifeBowlIsTilted(t *testing.T) {
	for _, p := range StillLife().Placements[1:5] {
		assert.Equal(t, float32(bowlTilt), p.Transform.RotationDegrees.X(), p.Name)
	}
}
