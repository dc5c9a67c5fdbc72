package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// MaxLogSize is the size above which an existing log file is rotated on open
const MaxLogSize = 10 * 1024 * 1024

// LogPrefix starts every line written by the document logger
const LogPrefix = "ccui: "

// SetupLogger opens path for appending and returns a logger writing to it
// An empty path returns a logger that discards everything: the terminal belongs to the UI
// The returned closer is never nil
func SetupLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, LogPrefix, 0), nopCloser{}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, LogPrefix, log.LstdFlags|log.Lmicroseconds), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
