package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/keelow/flipdeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	deckPath := flag.String("deck", "", "path to the deck JSON file (required)")
	configPath := flag.String("config", "", "override flipdeck config path (optional)")
	tickSeconds := flag.Int("interval", 0, "autoplay interval in seconds (optional, defaults to 5s)")
	noAutoPlay := flag.Bool("no-autoplay", false, "start paused")
	flag.Parse()

	if *deckPath == "" {
		fmt.Fprintln(os.Stderr, "flipdeck: -deck is required")
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		DeckPath:   *deckPath,
		ConfigPath: *configPath,
		NoAutoPlay: *noAutoPlay,
	}
	if tick := *tickSeconds; tick > 0 {
		opts.TickEvery = tick
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "flipdeck: %v\n", err)
		return 1
	}
	return 0
}
