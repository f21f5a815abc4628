package main

import (
	"fmt"
	"strings"

	"deuces/internal/domain"
)

// ClassifyCmd prints the combination formed by a card group.
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Cards, e.g. 3D 4D 5C AC 2H"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	_, _, svc, err := g.setup()
	if err != nil {
		return err
	}
	cards, err := domain.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	fmt.Println(svc.Classify(cards))
	return nil
}

// ValidateCmd checks a move against the group on the table and exits non-zero on rejection.
type ValidateCmd struct {
	Move    string `arg:"" help:"Move to play, e.g. '4D 4C'"`
	Against string `short:"a" help:"Group currently on the table; empty when leading"`
}

func (c *ValidateCmd) Run(g *Globals) error {
	_, logger, svc, err := g.setup()
	if err != nil {
		return err
	}
	move, err := domain.ParseCards(c.Move)
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}
	against, err := domain.ParseCards(c.Against)
	if err != nil {
		return fmt.Errorf("against: %w", err)
	}

	if err := svc.CheckMove(move, against); err != nil {
		fmt.Printf("invalid: %v\n", err)
		return fmt.Errorf("move rejected: %w", err)
	}
	logger.Debug("Move accepted", "move", c.Move, "against", c.Against)
	fmt.Printf("valid: %v\n", svc.Classify(move))
	return nil
}
