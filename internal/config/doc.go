// Package config handles loading and parsing flipdeck configuration files.
//
// # Overview
//
// This package reads flipdeck's TOML configuration to discover the
// presentation timing (autoplay period, flip-revert delay), the swipe
// threshold, and the log directory.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flipdeck/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/zero, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/flipdeck/config.toml
//   - Autoplay period: 5 seconds
//   - Flip-revert delay: 5 seconds
//   - Swipe threshold: 50 cells
//   - Autoplay on start: enabled
//   - Log directory: ~/.local/state/flipdeck
//
// # Validation
//
// Timing values are clamped at load time: a zero or negative period in
// the file is raised to one second, so the presentation engine can
// never be handed a zero or negative-duration timer.
package config
