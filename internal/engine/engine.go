package engine

import "time"

// Direction selects which neighbor Navigate moves to.
type Direction int

const (
	Next Direction = iota
	Previous
)

const (
	// DefaultTickInterval is the autoplay period used when none is configured.
	DefaultTickInterval = 5 * time.Second

	// DefaultFlipRevert is the delay before a flipped card reverts on its own.
	DefaultFlipRevert = 5 * time.Second

	// minInterval is the floor applied to configured periods so a bad
	// config can never produce a zero or negative duration timer.
	minInterval = 100 * time.Millisecond

	// progressSteps is the number of progress ticks per autoplay period.
	progressSteps = 100
)

// Config carries the timing knobs for a presentation session.
type Config struct {
	TickInterval time.Duration // autoplay period; clamped to a positive value
	FlipRevert   time.Duration // flip auto-revert delay; clamped likewise
	AutoPlay     bool          // start in the playing state
}

func (c Config) normalized() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	} else if c.TickInterval < minInterval {
		c.TickInterval = minInterval
	}
	if c.FlipRevert <= 0 {
		c.FlipRevert = DefaultFlipRevert
	} else if c.FlipRevert < minInterval {
		c.FlipRevert = minInterval
	}
	return c
}

// Snapshot is the engine state published to the presentation layer.
// Fields are copied out as one value so a render never observes a
// partially-updated engine.
type Snapshot struct {
	Index      int
	Count      int
	HasCurrent bool
	Playing    bool
	Flipped    bool
	Progress   int // 0..100, meaningful only while AdvanceArmed

	// Timer directives for the adapter driving the engine. A timer is
	// live only while its generation here matches the generation it was
	// armed with; every rebuild invalidates the previous generation.
	AdvanceArmed bool
	AdvanceGen   uint64
	FlipArmed    bool
	FlipGen      uint64
}

// Engine coordinates card navigation, flipping, and autoplay for one
// presentation session. It owns its state exclusively: all mutation goes
// through the operations below, and each operation leaves the timer
// directives consistent with the new state before returning.
//
// The engine does not schedule timers itself. The caller arms them from
// the snapshot's generations and reports expiry through AdvanceElapsed,
// ProgressTick, and FlipElapsed, passing back the generation the timer
// was armed with. A callback whose generation no longer matches is a
// no-op, so cancelled timers can never mutate state after cancellation.
type Engine struct {
	cfg   Config
	count int

	index           int
	playing         bool
	flipped         bool
	progress        int
	resumeAfterFlip bool

	advanceArmed bool
	advanceGen   uint64
	flipArmed    bool
	flipGen      uint64

	closed bool
}

// New creates an engine for a sequence of count items. The config is
// normalized so degenerate intervals are clamped before any timer can
// be derived from them.
func New(cfg Config, count int) *Engine {
	if count < 0 {
		count = 0
	}
	e := &Engine{
		cfg:     cfg.normalized(),
		count:   count,
		playing: cfg.AutoPlay,
	}
	e.rebuildAdvance()
	return e
}

// Config returns the normalized session configuration.
func (e *Engine) Config() Config { return e.cfg }

// Snapshot returns the current render state as one immutable value.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Index:        e.index,
		Count:        e.count,
		HasCurrent:   e.count > 0,
		Playing:      e.playing,
		Flipped:      e.flipped,
		Progress:     e.progress,
		AdvanceArmed: e.advanceArmed,
		AdvanceGen:   e.advanceGen,
		FlipArmed:    e.flipArmed,
		FlipGen:      e.flipGen,
	}
}

// Navigate moves to the adjacent card with wrap-around in both
// directions. Navigating away from a flipped card resolves the flip
// immediately, exactly as if the revert timer had fired. Progress is
// reset even when the index does not change (single-card sequences
// still visibly restart the bar).
func (e *Engine) Navigate(dir Direction) {
	if e.closed || e.count == 0 {
		return
	}
	e.resolveFlip()

	delta := 1
	if dir == Previous {
		delta = -1
	}
	e.index = (e.index + delta + e.count) % e.count
	e.progress = 0
	e.rebuildAdvance()
}

// JumpTo moves directly to the given index (wrapped into range) with
// the same flip-resolution and progress-reset semantics as Navigate.
func (e *Engine) JumpTo(index int) {
	if e.closed || e.count == 0 {
		return
	}
	e.resolveFlip()

	e.index = ((index % e.count) + e.count) % e.count
	e.progress = 0
	e.rebuildAdvance()
}

// ToggleFlip flips the current card over, or back. Flipping suspends
// autoplay and remembers whether it was playing; unflipping (here, via
// the revert timer, or via navigation) restores that intent through
// resolveFlip, the single code path for "flip ends".
func (e *Engine) ToggleFlip() {
	if e.closed || e.count == 0 {
		return
	}
	if e.flipped {
		e.resolveFlip()
		e.rebuildAdvance()
		return
	}
	e.resumeAfterFlip = e.playing
	e.playing = false
	e.flipped = true
	e.rebuildAdvance()
	e.armFlip()
}

// TogglePlay toggles the autoplay intent. While a card is flipped the
// toggle applies to the intent that will be restored when the flip
// resolves, so the user's choice survives the flip window.
func (e *Engine) TogglePlay() {
	if e.closed || e.count == 0 {
		return
	}
	if e.flipped {
		e.resumeAfterFlip = !e.resumeAfterFlip
		return
	}
	e.playing = !e.playing
	e.rebuildAdvance()
}

// Replace installs a new item count after the collaborator swapped the
// sequence. Any flip in progress is resolved, the index is clamped into
// the new bounds, and progress restarts.
func (e *Engine) Replace(count int) {
	if e.closed {
		return
	}
	if count < 0 {
		count = 0
	}
	e.resolveFlip()
	e.count = count
	if e.index >= count {
		e.index = count - 1
	}
	if e.index < 0 {
		e.index = 0
	}
	e.progress = 0
	e.rebuildAdvance()
}

// Close ends the session. Every operation and timer callback after
// Close is a guaranteed no-op.
func (e *Engine) Close() {
	e.closed = true
	e.advanceArmed = false
	e.advanceGen++
	e.cancelFlip()
}

// Closed reports whether the session has ended.
func (e *Engine) Closed() bool { return e.closed }

// AdvanceElapsed reports that the autoplay timer armed with gen has
// fired. Stale generations are dropped.
func (e *Engine) AdvanceElapsed(gen uint64) {
	if e.closed || !e.advanceArmed || gen != e.advanceGen {
		return
	}
	e.Navigate(Next)
}

// ProgressTick reports one firing of the progress ticker armed with
// gen. The ticker is a rendering aid only: it moves the bar and never
// navigates. Past 100 the value wraps to 0.
func (e *Engine) ProgressTick(gen uint64) {
	if e.closed || !e.advanceArmed || gen != e.advanceGen {
		return
	}
	if e.progress >= progressSteps {
		e.progress = 0
	} else {
		e.progress++
	}
}

// FlipElapsed reports that the flip-revert timer armed with gen has
// fired. It performs the same resolution as a manual unflip.
func (e *Engine) FlipElapsed(gen uint64) {
	if e.closed || !e.flipArmed || gen != e.flipGen {
		return
	}
	e.resolveFlip()
	e.rebuildAdvance()
}

// ProgressInterval returns the period between progress ticks.
func (e *Engine) ProgressInterval() time.Duration {
	return e.cfg.TickInterval / progressSteps
}

// resolveFlip ends a flip if one is active: the revert timer is
// cancelled, the card turns back over, and the play intent captured
// when the flip began is restored. The pending intent is cleared and
// never read again once the card is face up.
func (e *Engine) resolveFlip() {
	if !e.flipped {
		return
	}
	e.cancelFlip()
	e.flipped = false
	if e.resumeAfterFlip {
		e.playing = true
	}
	e.resumeAfterFlip = false
}

// rebuildAdvance tears down and re-arms the autoplay pair. Bumping the
// generation unconditionally invalidates any in-flight firing; the pair
// is re-armed only when the post-transition state allows autoplay. A
// fresh arm starts the bar from zero.
func (e *Engine) rebuildAdvance() {
	wasArmed := e.advanceArmed
	e.advanceGen++
	e.advanceArmed = e.playing && !e.flipped && e.count > 0 && !e.closed
	if e.advanceArmed && !wasArmed {
		e.progress = 0
	}
}

func (e *Engine) armFlip() {
	e.flipGen++
	e.flipArmed = true
}

func (e *Engine) cancelFlip() {
	e.flipGen++
	e.flipArmed = false
}
