package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deuces/internal/movegen"
)

// MovesCmd writes the canonical move lists used as rule fixtures.
type MovesCmd struct {
	Dir        string   `short:"d" help:"Output directory (overrides config)"`
	Categories []string `arg:"" optional:"" help:"Categories to write: 1s 2s 3s 4s 5s st fl fh fk sf (default all)"`
}

func (c *MovesCmd) Run(g *Globals) error {
	cfg, logger, _, err := g.setup()
	if err != nil {
		return err
	}

	dir := cfg.Moves.Directory
	if c.Dir != "" {
		dir = c.Dir
	}
	names := cfg.Moves.Categories
	if len(c.Categories) > 0 {
		names = c.Categories
	}
	categories := make([]movegen.Category, 0, len(names))
	for _, name := range names {
		cat, err := movegen.ParseCategory(name)
		if err != nil {
			return err
		}
		categories = append(categories, cat)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := movegen.WriteAll(ctx, dir, categories, logger.WithPrefix("moves")); err != nil {
		return err
	}
	logger.Info("Move lists written", "dir", dir, "duration", time.Since(start))
	return nil
}
