package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/keelow/flipdeck/internal/config"
	"github.com/keelow/flipdeck/internal/deck"
	"github.com/keelow/flipdeck/internal/engine"
	"github.com/keelow/flipdeck/internal/logging"
	"github.com/keelow/flipdeck/internal/prefs"
	"github.com/keelow/flipdeck/internal/ui"
)

// Options configure the flipdeck application.
type Options struct {
	DeckPath   string
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/flipdeck/prefs.toml
	TickEvery  int    // seconds; zero uses the configured value
	NoAutoPlay bool   // start paused regardless of config
}

// Run boots the flipdeck TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.TickEvery > 0 {
		cfg.TickInterval = time.Duration(opts.TickEvery) * time.Second
	}
	if opts.NoAutoPlay {
		cfg.AutoPlay = false
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	log, closeLog, err := logging.Open(cfg.LogPath(), zerolog.InfoLevel)
	if err != nil {
		// A broken log path should not block the show.
		log = zerolog.Nop()
		closeLog = func() {}
	}
	defer closeLog()

	d, err := deck.Load(opts.DeckPath)
	if err != nil {
		log.Error().Err(err).Str("path", opts.DeckPath).Msg("deck load failed")
		return fmt.Errorf("load deck: %w", err)
	}

	eng := engine.New(engine.Config{
		TickInterval: cfg.TickInterval,
		FlipRevert:   cfg.FlipRevert,
		AutoPlay:     cfg.AutoPlay,
	}, d.Len())

	log.Info().
		Str("deck", d.Name).
		Int("cards", d.Len()).
		Dur("tick_interval", cfg.TickInterval).
		Dur("flip_revert", cfg.FlipRevert).
		Bool("autoplay", cfg.AutoPlay).
		Msg("session start")

	uiOpts := ui.Options{
		Context:   ctx,
		Deck:      d,
		DeckPath:  opts.DeckPath,
		Engine:    eng,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Threshold: cfg.SwipeThreshold,
		Log:       log,
	}
	return ui.Run(uiOpts)
}
