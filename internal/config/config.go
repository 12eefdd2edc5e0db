package config

import "sync"

// Presentation style names accepted in config files
const (
	StyleFlat = "flat"
	StyleLit  = "lit"
)

// RenderSettings holds runtime-adjustable HUD render configuration
type RenderSettings struct {
	mu         sync.RWMutex
	style      string
	screenArea float64
	fpsLimit   int
}

var globalRenderSettings = &RenderSettings{
	style:      StyleLit,
	screenArea: 0.6,
	fpsLimit:   120,
}

// Apply seeds the runtime settings from a loaded config
func Apply(cfg *Config) {
	SetStyle(cfg.HUD.Style)
	SetScreenArea(cfg.HUD.ScreenArea)
	SetFPSLimit(cfg.Window.FPSLimit)
}

// GetStyle returns the active presentation style name
func GetStyle() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.style
}

// SetStyle sets the presentation style. Unknown names fall back to lit.
func SetStyle(name string) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if name != StyleFlat {
		name = StyleLit
	}
	globalRenderSettings.style = name
}

// ToggleStyle switches between flat and lit and returns the new style
func ToggleStyle() string {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if globalRenderSettings.style == StyleFlat {
		globalRenderSettings.style = StyleLit
	} else {
		globalRenderSettings.style = StyleFlat
	}
	return globalRenderSettings.style
}

// GetScreenArea returns the fraction of viewport height the grid spans
func GetScreenArea() float64 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.screenArea
}

// SetScreenArea sets the screen-area fraction
func SetScreenArea(area float64) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if area < 0.1 {
		area = 0.1
	}
	if area > 1.0 {
		area = 1.0
	}

	globalRenderSettings.screenArea = area
}

// GetFPSLimit returns the frame cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalRenderSettings.fpsLimit = limit
}
