package ccui

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/ccui/config"
	"github.com/lixenwraith/ccui/engine"
	"github.com/lixenwraith/ccui/status"
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal"
)

// Option configures Run; options apply in order so later ones win
type Option func(*settings) error

type settings struct {
	cfg       config.Config
	logger    *log.Logger
	term      terminal.Terminal
	painter   engine.Painter
	headless  bool
	status    *status.Registry
	rootStyle style.Style
}

func defaultSettings() settings {
	return settings{
		cfg:       config.Default(),
		rootStyle: style.Column(),
	}
}

// WithConfig replaces all file-backed settings
func WithConfig(cfg config.Config) Option {
	return func(s *settings) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.cfg = cfg
		return nil
	}
}

// WithConfigFile loads settings from a TOML or YAML file
func WithConfigFile(path string) Option {
	return func(s *settings) error {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		s.cfg = cfg
		return nil
	}
}

// WithFrameRate sets the paint rate in frames per second
func WithFrameRate(fps int) Option {
	return func(s *settings) error {
		if fps < config.MinFrameRate {
			return fmt.Errorf("frame rate must be at least %d fps", config.MinFrameRate)
		}
		if fps > config.MaxFrameRate {
			return fmt.Errorf("frame rate cannot exceed %d fps", config.MaxFrameRate)
		}
		s.cfg.FrameRate = fps
		return nil
	}
}

// WithMouse enables or disables mouse reporting
func WithMouse(enabled bool) Option {
	return func(s *settings) error {
		s.cfg.Mouse = enabled
		return nil
	}
}

// WithLogger sends loop diagnostics to l instead of the configured log file
func WithLogger(l *log.Logger) Option {
	return func(s *settings) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		s.logger = l
		return nil
	}
}

// WithTerminal draws on t instead of the process terminal
// Run calls t.Init; the document owns t afterwards and finalizes it on stop
func WithTerminal(t terminal.Terminal) Option {
	return func(s *settings) error {
		if t == nil {
			return errors.New("terminal is nil")
		}
		s.term = t
		return nil
	}
}

// WithPainter replaces the built-in painter
func WithPainter(p engine.Painter) Option {
	return func(s *settings) error {
		if p == nil {
			return errors.New("painter is nil")
		}
		s.painter = p
		return nil
	}
}

// WithRootStyle sets the style of the root container
func WithRootStyle(st style.Style) Option {
	return func(s *settings) error {
		s.rootStyle = st
		return nil
	}
}

// WithStatus records loop metrics in r instead of a private registry
func WithStatus(r *status.Registry) Option {
	return func(s *settings) error {
		if r == nil {
			return errors.New("status registry is nil")
		}
		s.status = r
		return nil
	}
}

// Headless runs without a terminal: no input, and Tick events instead of paints
// unless a painter is supplied
func Headless() Option {
	return func(s *settings) error {
		s.headless = true
		return nil
	}
}

func (s *settings) validate() error {
	if s.headless && s.term != nil {
		return errors.New("headless mode cannot use a terminal")
	}
	return s.cfg.Validate()
}
