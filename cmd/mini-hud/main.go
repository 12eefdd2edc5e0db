package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"runtime"

	"mini-hud/internal/config"
	"mini-hud/internal/game"
	"mini-hud/internal/inventory"
	"mini-hud/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "configs/mini-hud.yaml", "path to the YAML config")
	layoutPath := flag.String("layout", "", "layout fixture replacing the config's layout")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *layoutPath)
	if err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}

	grid := inventory.NewGrid(cfg.HUD.Columns, cfg.HUD.Rows)
	grid.Load(cfg.Layout)
	atlas := inventory.AtlasFromLayout(cfg.Layout)

	if err := glfw.Init(); err != nil {
		logging.Error("init glfw: %v", err)
		os.Exit(1)
	}

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		glfw.Terminate()
		logging.Error("%v", err)
		os.Exit(1)
	}

	app, err := game.NewApp(window, cfg, grid, atlas)
	closer.Bind(func() {
		if app != nil {
			app.Dispose()
		}
		window.Destroy()
		glfw.Terminate()
	})
	if err != nil {
		closer.Fatalln(err)
	}

	logging.Info("%dx%d inventory, %d stacks, style %s", cfg.HUD.Columns, cfg.HUD.Rows, len(cfg.Layout.Stacks), config.GetStyle())
	app.Run()
	closer.Close()
}

func loadConfig(path, layoutPath string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Warn("config %s not found, using defaults", path)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		logging.Warn("%v, using info", err)
	}
	logging.SetLevel(level)

	if layoutPath != "" {
		layout, err := config.LoadLayout(layoutPath)
		if err != nil {
			return nil, err
		}
		cfg.Layout = *layout
	}

	config.Apply(cfg)
	return cfg, nil
}
