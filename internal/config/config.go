// Package config loads demo settings from a TOML file and command-line
// flags. Flags override the file, the file overrides defaults.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"blit/pixel"

	"github.com/pelletier/go-toml/v2"
)

// Mode selects the presentation surface.
type Mode string

const (
	ModeWindow   Mode = "window"
	ModeTerminal Mode = "term"
	ModeHeadless Mode = "headless"
)

type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
	Mode   Mode   `toml:"mode"`

	// Headless pacing.
	Hz    int    `toml:"hz"`
	Ticks uint64 `toml:"ticks"`

	Background string `toml:"background"`

	// Optional sprite sheet.
	Image        string `toml:"image"`
	SpriteWidth  int    `toml:"sprite_width"`
	SpriteHeight int    `toml:"sprite_height"`
}

func Default() Config {
	return Config{
		Width:      160,
		Height:     120,
		Scale:      4,
		Title:      "blit",
		TPS:        60,
		Mode:       ModeWindow,
		Hz:         60,
		Background: "#000000",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("line %d col %d: %w", row, col, err)
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: invalid scale %d", c.Scale)
	}
	if c.TPS < 0 || c.Hz < 0 {
		return errors.New("config: tps and hz must not be negative")
	}
	switch c.Mode {
	case ModeWindow, ModeTerminal, ModeHeadless:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if _, err := pixel.ParseHex(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if c.Image != "" && (c.SpriteWidth < 0 || c.SpriteHeight < 0) {
		return errors.New("config: sprite size must not be negative")
	}
	return nil
}

// BackgroundColor returns the parsed background. Validate has checked it.
func (c Config) BackgroundColor() pixel.Color {
	col, _ := pixel.ParseHex(c.Background)
	return col
}

// Flags holds command-line overrides.
type Flags struct {
	fs   *flag.FlagSet
	Path string
	cfg  Config
}

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	d := Default()
	fs.StringVar(&f.Path, "config", "", "TOML config file.")
	fs.IntVar(&f.cfg.Width, "width", d.Width, "Buffer width in pixels.")
	fs.IntVar(&f.cfg.Height, "height", d.Height, "Buffer height in pixels.")
	fs.IntVar(&f.cfg.Scale, "scale", d.Scale, "Window upscaling factor.")
	fs.StringVar(&f.cfg.Title, "title", d.Title, "Window title.")
	fs.IntVar(&f.cfg.TPS, "tps", d.TPS, "Frames per second cap.")
	fs.StringVar((*string)(&f.cfg.Mode), "mode", string(d.Mode), "Surface: window, term or headless.")
	fs.IntVar(&f.cfg.Hz, "hz", d.Hz, "Tick rate in headless mode.")
	fs.Uint64Var(&f.cfg.Ticks, "ticks", d.Ticks, "Stop after N frames in headless mode (0 = run forever).")
	fs.StringVar(&f.cfg.Background, "bg", d.Background, "Background color (#rrggbb).")
	fs.StringVar(&f.cfg.Image, "image", "", "Sprite sheet image.")
	fs.IntVar(&f.cfg.SpriteWidth, "sprite-w", 0, "Sprite frame width (0 = whole image).")
	fs.IntVar(&f.cfg.SpriteHeight, "sprite-h", 0, "Sprite frame height (0 = whole image).")
	return f
}

// Resolve loads the config file named by -config and applies every flag
// that was set explicitly. Call after fs.Parse.
func (f *Flags) Resolve() (Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return Config{}, err
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Width = f.cfg.Width
		case "height":
			cfg.Height = f.cfg.Height
		case "scale":
			cfg.Scale = f.cfg.Scale
		case "title":
			cfg.Title = f.cfg.Title
		case "tps":
			cfg.TPS = f.cfg.TPS
		case "mode":
			cfg.Mode = f.cfg.Mode
		case "hz":
			cfg.Hz = f.cfg.Hz
		case "ticks":
			cfg.Ticks = f.cfg.Ticks
		case "bg":
			cfg.Background = f.cfg.Background
		case "image":
			cfg.Image = f.cfg.Image
		case "sprite-w":
			cfg.SpriteWidth = f.cfg.SpriteWidth
		case "sprite-h":
			cfg.SpriteHeight = f.cfg.SpriteHeight
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
