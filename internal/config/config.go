package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the presentation timing and input settings flipdeck
// reads from its config file.
type Config struct {
	TickInterval   time.Duration // autoplay period
	FlipRevert     time.Duration // flip auto-revert delay
	SwipeThreshold int           // horizontal cells before a drag counts as a swipe
	AutoPlay       bool
	LogDir         string
}

const (
	defaultConfigPath     = "~/.config/flipdeck/config.toml"
	defaultLogDir         = "~/.local/state/flipdeck"
	defaultTickSeconds    = 5
	defaultRevertSeconds  = 5
	defaultSwipeThreshold = 50

	// minSeconds guards against zero or negative timer periods reaching
	// the engine.
	minSeconds = 1
)

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		TickInterval:   defaultTickSeconds * time.Second,
		FlipRevert:     defaultRevertSeconds * time.Second,
		SwipeThreshold: defaultSwipeThreshold,
		AutoPlay:       true,
		LogDir:         mustExpand(defaultLogDir),
	}
}

// Load locates and parses the flipdeck config, falling back to defaults
// when the file is missing. Degenerate timing values are clamped here
// so downstream code never sees a non-positive period.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		TickIntervalSeconds int    `toml:"tick_interval_seconds"`
		FlipRevertSeconds   int    `toml:"flip_revert_seconds"`
		SwipeThreshold      int    `toml:"swipe_threshold"`
		AutoPlay            *bool  `toml:"autoplay"`
		LogDir              string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.TickIntervalSeconds != 0 {
		cfg.TickInterval = time.Duration(clampSeconds(raw.TickIntervalSeconds)) * time.Second
	}
	if raw.FlipRevertSeconds != 0 {
		cfg.FlipRevert = time.Duration(clampSeconds(raw.FlipRevertSeconds)) * time.Second
	}
	if raw.SwipeThreshold > 0 {
		cfg.SwipeThreshold = raw.SwipeThreshold
	}
	if raw.AutoPlay != nil {
		cfg.AutoPlay = *raw.AutoPlay
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}

	return cfg, nil
}

// LogPath returns the path of the session log file.
func (c Config) LogPath() string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "flipdeck.log")
}

func clampSeconds(s int) int {
	if s < minSeconds {
		return minSeconds
	}
	return s
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
