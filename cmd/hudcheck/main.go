// Command hudcheck builds one HUD frame without a window and reports the
// geometry it would upload, the hit test under a cursor and a dump of the
// grid.
package main

import (
	"flag"
	"fmt"
	"os"

	"mini-hud/internal/config"
	"mini-hud/internal/graphics/renderables/hud"
	"mini-hud/internal/inventory"
	"mini-hud/internal/logging"
)

func main() {
	configPath := flag.String("config", "configs/mini-hud.yaml", "path to the YAML config")
	layoutPath := flag.String("layout", "", "layout fixture replacing the config's layout")
	width := flag.Int("width", 0, "viewport width, defaults to the window width")
	height := flag.Int("height", 0, "viewport height, defaults to the window height")
	cursorX := flag.Float64("x", -1, "cursor x in pixels")
	cursorY := flag.Float64("y", -1, "cursor y in pixels")
	style := flag.String("style", "", "override the configured style (flat or lit)")
	plain := flag.Bool("plain", false, "disable colours")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Warn("%v, using defaults", err)
		cfg = config.Default()
	}
	if *layoutPath != "" {
		layout, err := config.LoadLayout(*layoutPath)
		if err != nil {
			logging.Error("%v", err)
			os.Exit(1)
		}
		cfg.Layout = *layout
	}
	if *style != "" {
		cfg.HUD.Style = *style
	}
	if *width <= 0 {
		*width = cfg.Window.Width
	}
	if *height <= 0 {
		*height = cfg.Window.Height
	}

	grid := inventory.NewGrid(cfg.HUD.Columns, cfg.HUD.Rows)
	grid.Load(cfg.Layout)
	h := hud.New(grid, inventory.AtlasFromLayout(cfg.Layout), hud.StyleFromConfig(cfg.HUD), cfg.HUD.ScreenArea, nil)

	r := Check(h, *width, *height, *cursorX, *cursorY)
	fmt.Print(r.Format(!*plain))
}
