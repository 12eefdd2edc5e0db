package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all client configuration
type Config struct {
	Window WindowConfig `yaml:"window"`
	HUD    HUDConfig    `yaml:"hud"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
	Layout Layout       `yaml:"layout"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	FPSLimit int    `yaml:"fps_limit"`
}

// HUDConfig holds inventory grid settings
type HUDConfig struct {
	Columns    int            `yaml:"columns"`
	Rows       int            `yaml:"rows"`
	ScreenArea float64        `yaml:"screen_area"` // fraction of viewport height
	Style      string         `yaml:"style"`       // "flat" or "lit"
	Overrides  StyleOverrides `yaml:"style_overrides"`
}

// StyleOverrides replaces individual constants of the chosen style.
// Nil fields keep the style's value.
type StyleOverrides struct {
	CubeSize     *float32 `yaml:"cube_size"`
	CubeOffsetY  *float32 `yaml:"cube_offset_y"`
	CubePitch    *float32 `yaml:"cube_pitch"` // degrees
	CubeYaw      *float32 `yaml:"cube_yaw"`   // degrees
	GlyphAdvance *float32 `yaml:"glyph_advance"`
	GlyphWidth   *float32 `yaml:"glyph_width"`
	GlyphHeight  *float32 `yaml:"glyph_height"`
}

// AssetsConfig holds asset locations
type AssetsConfig struct {
	ShadersDir        string `yaml:"shaders_dir"`
	BackgroundTexture string `yaml:"background_texture"`
	ItemTexture       string `yaml:"item_texture"`
	Font              string `yaml:"font"`
	FontCellPixels    int    `yaml:"font_cell_pixels"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Layout is a HUD state fixture: what the grid shows at startup
type Layout struct {
	Backgrounds []BackgroundEntry `yaml:"backgrounds"`
	Stacks      []StackEntry      `yaml:"stacks"`
	Held        *HeldEntry        `yaml:"held"`
	Atlas       []AtlasEntry      `yaml:"atlas"`
}

// BackgroundEntry sets one background tile
type BackgroundEntry struct {
	Column int `yaml:"column"`
	Row    int `yaml:"row"`
	Tile   int `yaml:"tile"`
}

// StackEntry places one item stack
type StackEntry struct {
	Column int `yaml:"column"`
	Row    int `yaml:"row"`
	Type   int `yaml:"type"`
	Amount int `yaml:"amount"`
}

// HeldEntry is the stack attached to the cursor
type HeldEntry struct {
	Type   int `yaml:"type"`
	Amount int `yaml:"amount"`
}

// AtlasEntry gives the item atlas tiles of one item type. Faces holds
// either one tile for all faces or six tiles: left, right, top, bottom,
// front, back.
type AtlasEntry struct {
	Type  int   `yaml:"type"`
	Faces []int `yaml:"faces"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills in defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLayout reads a standalone layout fixture
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Config) setDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 1024
	}
	if c.Window.Height == 0 {
		c.Window.Height = 768
	}
	if c.Window.Title == "" {
		c.Window.Title = "mini-hud"
	}
	if c.Window.FPSLimit == 0 {
		c.Window.FPSLimit = 120
	}
	if c.HUD.Columns == 0 {
		c.HUD.Columns = 17
	}
	if c.HUD.Rows == 0 {
		c.HUD.Rows = 14
	}
	if c.HUD.ScreenArea == 0 {
		c.HUD.ScreenArea = 0.6
	}
	if c.HUD.Style == "" {
		c.HUD.Style = StyleLit
	}
	if c.Assets.ShadersDir == "" {
		c.Assets.ShadersDir = "assets/shaders/hud"
	}
	if c.Assets.BackgroundTexture == "" {
		c.Assets.BackgroundTexture = "assets/textures/hud.png"
	}
	if c.Assets.ItemTexture == "" {
		c.Assets.ItemTexture = "assets/textures/items.png"
	}
	if c.Assets.Font == "" {
		c.Assets.Font = "assets/fonts/font.ttf"
	}
	if c.Assets.FontCellPixels == 0 {
		c.Assets.FontCellPixels = 32
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate reports configuration values the HUD cannot work with
func (c *Config) Validate() error {
	if c.HUD.Columns < 0 || c.HUD.Rows < 0 {
		return fmt.Errorf("hud grid must not be negative, got %dx%d", c.HUD.Columns, c.HUD.Rows)
	}
	if c.HUD.ScreenArea < 0 || c.HUD.ScreenArea > 1 {
		return fmt.Errorf("hud screen_area must be within [0,1], got %v", c.HUD.ScreenArea)
	}
	if c.HUD.Style != StyleFlat && c.HUD.Style != StyleLit {
		return fmt.Errorf("unknown hud style %q", c.HUD.Style)
	}
	return c.Layout.Validate()
}

// Validate checks the atlas entries of a layout
func (l *Layout) Validate() error {
	for _, e := range l.Atlas {
		if n := len(e.Faces); n != 1 && n != 6 {
			return fmt.Errorf("atlas entry for type %d: want 1 or 6 faces, got %d", e.Type, n)
		}
	}
	return nil
}
