package hud

import (
	"mini-hud/internal/config"
	"mini-hud/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// Style holds the presentation constants of the HUD. The flat and lit
// variants only differ in these numbers.
type Style struct {
	Name string

	// BackgroundNormals emits backgrounds with a +Y normal (LayoutLit)
	BackgroundNormals bool

	// Cube half-extent and vertical placement inside the cell, grid units
	CubeSize    float32
	CubeOffsetY float32
	// Cube rotation in degrees, 0/0 for axis aligned
	CubePitch float32
	CubeYaw   float32

	// Digit spacing and glyph half-size, grid units
	GlyphAdvance float32
	GlyphWidth   float32
	GlyphHeight  float32

	// Written to uv.z / uv.w of every cube vertex
	AO    float32
	Light float32
}

// FlatStyle draws axis-aligned cubes over flat backgrounds
func FlatStyle() Style {
	return Style{
		Name:         config.StyleFlat,
		CubeSize:     0.35,
		CubeOffsetY:  0.5,
		GlyphAdvance: 0.3,
		GlyphWidth:   0.15,
		GlyphHeight:  0.2,
		Light:        0.5,
	}
}

// LitStyle tilts the cubes so three faces catch the light
func LitStyle() Style {
	return Style{
		Name:              config.StyleLit,
		BackgroundNormals: true,
		CubeSize:          0.3,
		CubeOffsetY:       0.45,
		CubePitch:         -20,
		CubeYaw:           30,
		GlyphAdvance:      0.2,
		GlyphWidth:        0.1,
		GlyphHeight:       0.15,
		Light:             0.5,
	}
}

// StyleByName returns the built-in style; unknown names get LitStyle
func StyleByName(name string) Style {
	if name == config.StyleFlat {
		return FlatStyle()
	}
	return LitStyle()
}

// StyleFromConfig resolves cfg.Style and applies its overrides
func StyleFromConfig(cfg config.HUDConfig) Style {
	return StyleByName(cfg.Style).With(cfg.Overrides)
}

// With returns s with every non-nil override applied
func (s Style) With(o config.StyleOverrides) Style {
	set := func(dst *float32, v *float32) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.CubeSize, o.CubeSize)
	set(&s.CubeOffsetY, o.CubeOffsetY)
	set(&s.CubePitch, o.CubePitch)
	set(&s.CubeYaw, o.CubeYaw)
	set(&s.GlyphAdvance, o.GlyphAdvance)
	set(&s.GlyphWidth, o.GlyphWidth)
	set(&s.GlyphHeight, o.GlyphHeight)
	return s
}

// BackgroundLayout is the vertex layout of the background buffer
func (s Style) BackgroundLayout() meshing.Layout {
	if s.BackgroundNormals {
		return meshing.LayoutLit
	}
	return meshing.LayoutTextured
}

// Rotation is the cube rotation matrix
func (s Style) Rotation() mgl32.Mat4 {
	if s.CubePitch == 0 && s.CubeYaw == 0 {
		return mgl32.Ident4()
	}
	return meshing.Rotation(s.CubePitch, s.CubeYaw)
}
