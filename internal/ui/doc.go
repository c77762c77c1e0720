// Package ui provides the terminal user interface for flipdeck.
//
// # Overview
//
// The UI is a Bubble Tea program wrapping the presentation engine. It
// renders the active card face, a header with position and play state,
// an autoplay progress bar, and a command bar; input (keys and mouse
// drags) is translated into engine operations.
//
// # Event Flow
//
//  1. Run() builds the Model and starts the Bubble Tea program
//  2. Key and mouse events become engine operations (navigate, flip,
//     play/pause, jump)
//  3. After every operation, syncTimers arms tea.Tick commands for any
//     newly current engine generation
//  4. Timer messages carry their generation back into the engine, which
//     drops stale ones
//  5. View renders the engine snapshot; quitting closes the engine so
//     late timer messages are no-ops
//
// # Timer Discipline
//
// Bubble Tea timers cannot be cancelled once issued, so correctness
// rests on generation tags: every engine state transition invalidates
// the previous generation, and a tick that arrives tagged with an old
// generation is ignored. The Model only tracks which generations it has
// already armed, to avoid arming duplicates.
//
// # Key Bindings
//
//   - ←/h, →/l: previous/next card
//   - g/G: first/last card
//   - Space or Enter: flip card (auto-reverts after the flip delay)
//   - p: play/pause autoplay
//   - /: jump to a card by number or front text
//   - r: reload the deck file
//   - T: cycle theme (persisted to prefs)
//   - ?: help overlay
//   - q or Ctrl+C: quit
//
// Mouse: a horizontal left-button drag past the swipe threshold
// navigates in the drag direction.
package ui
