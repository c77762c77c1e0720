// Package app provides the orchestration layer for flipdeck.
//
// # Overview
//
// This package wires together configuration, preferences, the deck
// loader, the presentation engine, and the UI. It is the composition
// root where all dependencies are initialized and connected.
//
// # Initialization Order
//
//  1. Load timing configuration from ~/.config/flipdeck/config.toml
//     (CLI flags override the file)
//  2. Load user preferences (theme)
//  3. Open the session log file
//  4. Load and validate the deck file
//  5. Create the presentation engine sized to the deck
//  6. Start the TUI and block until the user exits or the context is
//     cancelled
//
// Configuration errors and an unreadable deck abort startup; a broken
// log path degrades to a no-op logger instead of blocking the show.
package app
