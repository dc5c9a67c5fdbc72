// Package config holds document settings that may come from a file.
//
// Files are TOML or YAML, chosen by extension. Every field is optional; missing
// values keep their defaults. Theme colors are hex strings ("#rrggbb"), with
// "default" meaning the terminal's own color.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal"
	"github.com/lixenwraith/ccui/terminal/tui"
)

// Frame rate bounds accepted by Validate
const (
	MinFrameRate     = 1
	MaxFrameRate     = 240
	DefaultFrameRate = 60
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the file-backed part of a document's settings
type Config struct {
	FrameRate int    `toml:"frame_rate" yaml:"frame_rate"`
	Mouse     bool   `toml:"mouse" yaml:"mouse"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
	Theme     Theme  `toml:"theme" yaml:"theme"`
}

// Theme holds color overrides as hex strings, empty keeps the built-in value
type Theme struct {
	Fg     string `toml:"fg" yaml:"fg"`
	Bg     string `toml:"bg" yaml:"bg"`
	Border string `toml:"border" yaml:"border"`
	Title  string `toml:"title" yaml:"title"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{FrameRate: DefaultFrameRate}
}

// Validate checks ranges and color syntax
func (c Config) Validate() error {
	if c.FrameRate < MinFrameRate || c.FrameRate > MaxFrameRate {
		return fmt.Errorf("frame_rate %d out of range [%d, %d]", c.FrameRate, MinFrameRate, MaxFrameRate)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	return nil
}

// FrameInterval converts the frame rate to a tick period
func (c Config) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// Resolve converts the overrides into a drawing theme on top of tui.DefaultTheme
func (t Theme) Resolve() (tui.Theme, error) {
	out := tui.DefaultTheme
	fields := []struct {
		name string
		src  string
		dst  *terminal.Color
	}{
		{"fg", t.Fg, &out.Fg},
		{"bg", t.Bg, &out.Bg},
		{"border", t.Border, &out.Border},
		{"title", t.Title, &out.Title},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		c, err := style.ParseColor(f.src)
		if err != nil {
			return out, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}

// Load reads path over Default and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("decode %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and leaves the defaults
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
