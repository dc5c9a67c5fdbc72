package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/ccui/terminal"
	"github.com/lixenwraith/ccui/terminal/tui"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("Expected 60 Hz interval, got %v", cfg.FrameInterval())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"min rate", func(c *Config) { c.FrameRate = MinFrameRate }, false},
		{"max rate", func(c *Config) { c.FrameRate = MaxFrameRate }, false},
		{"zero rate", func(c *Config) { c.FrameRate = 0 }, true},
		{"rate too high", func(c *Config) { c.FrameRate = 241 }, true},
		{"bad color", func(c *Config) { c.Theme.Border = "#zz0000" }, true},
		{"default keyword", func(c *Config) { c.Theme.Bg = "default" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestThemeResolve(t *testing.T) {
	th, err := Theme{Bg: "#102030", Border: "default"}.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := tui.DefaultTheme
	want.Bg = terminal.RGB{R: 0x10, G: 0x20, B: 0x30}.Color()
	want.Border = terminal.ColorDefault
	if diff := cmp.Diff(want, th); diff != "" {
		t.Errorf("Theme mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "ccui.toml", `
frame_rate = 30
mouse = true
log_file = "ccui.log"

[theme]
title = "#ffcc00"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{FrameRate: 30, Mouse: true, LogFile: "ccui.log", Theme: Theme{Title: "#ffcc00"}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "ccui.yaml", "mouse: true\ntheme:\n  fg: \"#eeeeee\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{FrameRate: DefaultFrameRate, Mouse: true, Theme: Theme{Fg: "#eeeeee"}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"unknown toml key", "a.toml", "fps = 30\n", "unknown key"},
		{"unknown yaml key", "a.yaml", "fps: 30\n", "fps"},
		{"invalid rate", "a.toml", "frame_rate = 500\n", "out of range"},
		{"malformed toml", "a.toml", "frame_rate = \n", "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(writeFile(t, "a.json", "{}")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestSetupLoggerDisabled(t *testing.T) {
	logger, closer, err := SetupLogger("")
	if err != nil {
		t.Fatalf("SetupLogger failed: %v", err)
	}
	defer closer.Close()
	if logger.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", logger.Writer())
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ccui.log")
	logger, closer, err := SetupLogger(path)
	if err != nil {
		t.Fatalf("SetupLogger failed: %v", err)
	}
	logger.Println("hello")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.HasPrefix(string(data), LogPrefix) || !strings.Contains(string(data), "hello") {
		t.Errorf("Unexpected log content %q", data)
	}
}

func TestSetupLoggerRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ccui.log")
	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0o644); err != nil {
		t.Fatalf("Failed to create large log: %v", err)
	}

	_, closer, err := SetupLogger(path)
	if err != nil {
		t.Fatalf("SetupLogger failed: %v", err)
	}
	defer closer.Close()

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("Expected rotated file: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected new log file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected fresh log, got %d bytes", info.Size())
	}
}
