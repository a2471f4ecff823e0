package scene

import "github.com/go-gl/mathgl/mgl32"

// bowlTilt is the X rotation shared by every bowl part.
const bowlTilt = 10.0

// StillLife returns the reference scene: a bowl, spoon, mug, apple and plate
// on a counter. Texture paths are relative to the texture directory.
func StillLife() Description {
	return Description{
		Textures: []TextureSource{
			{Path: "wood.jpg", Tag: "wood"},
			{Path: "counter.jpg", Tag: "counter"},
			{Path: "apple.jpg", Tag: "apple"},
			{Path: "stainless.jpg", Tag: "stainless"},
			{Path: "plate.jpg", Tag: "plate"},
			{Path: "ceramic.jpg", Tag: "ceramic"},
		},
		Materials: []Material{
			{
				Tag:             "wood",
				AmbientColor:    mgl32.Vec3{0.2, 0.1, 0.05},
				AmbientStrength: 0.3,
				DiffuseColor:    mgl32.Vec3{0.4, 0.2, 0.1},
				SpecularColor:   mgl32.Vec3{0.3, 0.3, 0.3},
				Shininess:       16,
			},
			{
				Tag:             "counter",
				AmbientColor:    mgl32.Vec3{0.4, 0.4, 0.4},
				AmbientStrength: 0.2,
				DiffuseColor:    mgl32.Vec3{0.7, 0.7, 0.7},
				SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.9},
				Shininess:       8,
			},
		},
		Lights: []LightSource{
			// warm key light above
			{
				Position:          mgl32.Vec3{-2, 8, 5.5},
				AmbientColor:      mgl32.Vec3{0.12, 0.08, 0.05},
				DiffuseColor:      mgl32.Vec3{0.4, 0.3, 0.15},
				SpecularColor:     mgl32.Vec3{0.4, 0.3, 0.2},
				FocalStrength:     30,
				SpecularIntensity: 0.07,
			},
			// warm fill, front right
			{
				Position:          mgl32.Vec3{4, 1.5, 3.5},
				AmbientColor:      mgl32.Vec3{0.1, 0.07, 0.05},
				DiffuseColor:      mgl32.Vec3{0.4, 0.25, 0.2},
				SpecularColor:     mgl32.Vec3{0.1, 0.1, 0.1},
				FocalStrength:     25,
				SpecularIntensity: 0.1,
			},
			// overhead fill
			{
				Position:          mgl32.Vec3{0, 9, 0},
				AmbientColor:      mgl32.Vec3{0.25, 0.25, 0.25},
				DiffuseColor:      mgl32.Vec3{0.3, 0.3, 0.3},
				SpecularColor:     mgl32.Vec3{0.1, 0.1, 0.1},
				FocalStrength:     80,
				SpecularIntensity: 0.02,
			},
			// bowl highlight from the front
			{
				Position:          mgl32.Vec3{2, 2.5, 3},
				AmbientColor:      mgl32.Vec3{0.15, 0.1, 0.05},
				DiffuseColor:      mgl32.Vec3{0.4, 0.3, 0.15},
				SpecularColor:     mgl32.Vec3{0.2, 0.2, 0.2},
				FocalStrength:     35,
				SpecularIntensity: 0.05,
			},
		},
		Placements: stillLifePlacements(),
	}
}

func stillLifePlacements() []ObjectPlacement {
	return []ObjectPlacement{
		Place("floor", ShapePlane,
			mgl32.Vec3{20, 1, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 0, 0}, "counter").WithMaterial("wood"),

		Place("bowl base", ShapeTaperedCylinder,
			mgl32.Vec3{1.85, 0.15, 1.85}, mgl32.Vec3{bowlTilt, 0, 0}, mgl32.Vec3{0, 0.25, 0}, "wood").WithMaterial("wood"),
		Place("bowl shell", ShapeSphere,
			mgl32.Vec3{2, -1, 2}, mgl32.Vec3{bowlTilt, 0, 0}, mgl32.Vec3{0, 0.9, 0}, "wood"),
		Place("bowl scoop", ShapeSphere,
			mgl32.Vec3{1.65, -0.95, 1.65}, mgl32.Vec3{bowlTilt, 0, 0}, mgl32.Vec3{0, 0.95, 0}, "wood"),
		Place("bowl rim", ShapeCylinder,
			mgl32.Vec3{2.05, 0.05, 2.05}, mgl32.Vec3{bowlTilt, 0, 0}, mgl32.Vec3{0, 1.38, 0}, "wood"),

		Place("spoon handle", ShapeCylinder,
			mgl32.Vec3{0.12, 1.2, 0.12}, mgl32.Vec3{90, 0, -30}, mgl32.Vec3{2.4, 0.1, 0.1}, "wood"),
		Place("spoon scoop", ShapeSphere,
			mgl32.Vec3{0.35, 0.06, 0.25}, mgl32.Vec3{180, 0, 0}, mgl32.Vec3{2.45, 0.07, 0.05}, "wood"),

		Place("mug body", ShapeCylinder,
			mgl32.Vec3{0.5, 0.8, 0.5}, mgl32.Vec3{}, mgl32.Vec3{4, 0.5, -2.5}, "ceramic"),
		Place("mug handle", ShapeTorus,
			mgl32.Vec3{0.25, 0.25, 0.25}, mgl32.Vec3{0, 0, 90}, mgl32.Vec3{4.55, 0.9, -2.5}, "ceramic"),

		Place("apple body", ShapeSphere,
			mgl32.Vec3{0.6, 0.6, 0.6}, mgl32.Vec3{}, mgl32.Vec3{-4, 0.35, -2}, "apple"),
		Place("apple stem", ShapeCylinder,
			mgl32.Vec3{0.07, 0.2, 0.07}, mgl32.Vec3{}, mgl32.Vec3{-4, 0.9, -2}, "wood"),

		Place("plate", ShapeCylinder,
			mgl32.Vec3{1.2, 0.05, 1.2}, mgl32.Vec3{}, mgl32.Vec3{0, 0.2, 4}, "plate"),
	}
}
