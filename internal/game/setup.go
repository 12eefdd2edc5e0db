package game

import (
	"fmt"

	"mini-hud/internal/config"
	"mini-hud/internal/graphics"
	"mini-hud/internal/graphics/gpu"
	"mini-hud/internal/graphics/renderables/hud"
	"mini-hud/internal/logging"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow opens the window and makes a GL 4.1 core context current
func SetupWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	logging.Info("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// Disable V-Sync; we'll use our own FPS limiter
	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	return window, nil
}

// HUDLoader loads the HUD shader and its three textures from assets
func HUDLoader(assets config.AssetsConfig) hud.Loader {
	return func() (hud.Resources, error) {
		program, err := graphics.NewGLProgram(assets.ShadersDir, "hud")
		if err != nil {
			return hud.Resources{}, fmt.Errorf("hud shader: %w", err)
		}

		background, err := graphics.GetTexture(assets.BackgroundTexture)
		if err != nil {
			program.Dispose()
			return hud.Resources{}, fmt.Errorf("hud background texture: %w", err)
		}
		items, err := graphics.GetTexture(assets.ItemTexture)
		if err != nil {
			program.Dispose()
			return hud.Resources{}, fmt.Errorf("item atlas: %w", err)
		}

		font, fallback, err := graphics.BuildGlyphTexture(assets.Font, assets.FontCellPixels)
		if err != nil {
			program.Dispose()
			return hud.Resources{}, fmt.Errorf("glyph atlas: %w", err)
		}
		if fallback {
			logging.Warn("font %q not found, using the bundled Go Mono face", assets.Font)
		}

		return hud.Resources{
			Program:  program,
			Textures: hud.Textures{Background: background, Items: items, Font: font},
			Release: func() {
				graphics.DeleteTexture(font)
				graphics.ReleaseTextures()
			},
		}, nil
	}
}

// HighlightLoader loads the flat colour shader of the hover highlight
func HighlightLoader(assets config.AssetsConfig) func() (gpu.Program, error) {
	return func() (gpu.Program, error) {
		program, err := graphics.NewGLProgram(assets.ShadersDir, "highlight")
		if err != nil {
			return nil, fmt.Errorf("highlight shader: %w", err)
		}
		return program, nil
	}
}
