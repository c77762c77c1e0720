// Package engine implements the presentation state machine for flipdeck.
//
// # Overview
//
// The Engine coordinates everything that can move the card view: the
// autoplay timer that advances to the next card, the progress ticker
// that animates the per-card bar, the one-shot timer that reverts a
// flipped card, and the user actions (navigate, flip, play/pause) that
// interact with all three. It owns a single mutable state record and
// exposes it to the UI only as immutable snapshots.
//
// # State Machine
//
// The compound state (playing × flipped) reduces to four behaviors:
//
//	PLAYING              autoplay + progress armed
//	PAUSED               no timers armed
//	FLIPPED from PLAYING flip-revert armed; autoplay resumes on revert
//	FLIPPED from PAUSED  flip-revert armed; stays paused on revert
//
// Flipping always suspends autoplay; the intent captured at flip time
// (resumeAfterFlip) is what distinguishes the two flipped states, and
// it is consumed by resolveFlip — the single path through which every
// flip ends, whether by timer, by a second toggle, or by navigating
// away.
//
// # Timer Ownership
//
// The engine derives timer directives but never schedules anything
// itself. Each snapshot carries an (armed, generation) pair per timer;
// the adapter (internal/ui) arms real timers tagged with the
// generation and reports expiry back through AdvanceElapsed,
// ProgressTick, and FlipElapsed. Every state transition bumps the
// relevant generation, so a firing scheduled before the transition
// arrives with a stale tag and is dropped at the door. This is what
// makes cancellation idempotent and "fire after cancel" structurally
// impossible, including after Close.
//
// # Degenerate Sequences
//
// An empty sequence disables everything: no current card, every
// operation a no-op, no timer ever armed. A single-card sequence
// navigates to itself but still resets progress, so the bar visibly
// restarts.
//
// The package also provides Gesture, a swipe recognizer that converts
// horizontal press/move/release coordinates into Navigate directions.
package engine
