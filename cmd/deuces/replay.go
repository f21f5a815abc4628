package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"deuces/internal/app"
	"deuces/internal/domain"
)

// ReplayCmd feeds a file of plays through a single table and reports each decision.
//
// File format, one entry per line:
//
//	alice: 3D 3C
//	bob: 4D 4C
//	clear
//
// "clear" or "pass" ends the trick. Blank lines and lines starting with # are ignored.
type ReplayCmd struct {
	File string `arg:"" help:"Plays file, or - for stdin"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	_, logger, svc, err := g.setup()
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	stats, err := replay(in, os.Stdout, svc)
	if err != nil {
		return err
	}
	logger.Info("Replay finished", "accepted", stats.accepted, "rejected", stats.rejected, "tricks", stats.tricks)
	return nil
}

type replayStats struct {
	accepted int
	rejected int
	tricks   int
}

func replay(in io.Reader, out io.Writer, svc *app.Service) (replayStats, error) {
	var stats replayStats
	var table app.Table

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if line == "clear" || line == "pass" {
			for _, ev := range svc.Clear(&table) {
				printEvent(out, ev)
			}
			stats.tricks++
			continue
		}

		player, cardsText, ok := strings.Cut(line, ":")
		if !ok {
			return stats, fmt.Errorf("line %d: expected \"player: cards\"", lineNo)
		}
		cards, err := domain.ParseCards(cardsText)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", lineNo, err)
		}

		evs, err := svc.Play(&table, strings.TrimSpace(player), cards)
		if err != nil {
			stats.rejected++
		} else {
			stats.accepted++
		}
		for _, ev := range evs {
			printEvent(out, ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	if !table.Empty() {
		stats.tricks++
	}
	return stats, nil
}

func printEvent(out io.Writer, ev app.Event) {
	switch p := ev.Payload.(type) {
	case app.CardsPlayedPayload:
		verb := "beats table with"
		if p.Leading {
			verb = "leads"
		}
		fmt.Fprintf(out, "%s %s %s\n", p.PlayerID, verb, p.Combo)
	case app.MoveRejectedPayload:
		fmt.Fprintf(out, "%s rejected %s: %v\n", p.PlayerID, domain.FormatCards(p.Cards, " "), p.Reason)
	case app.TrickClearedPayload:
		fmt.Fprintf(out, "trick cleared (last: %s)\n", p.LastPlayerID)
	}
}
