// Package movegen enumerates every canonical play of each category, for fixtures and
// exhaustive rule checks.
package movegen

import (
	"errors"
	"fmt"

	"deuces/internal/domain"
)

// Category names one enumerated move list. Values double as output file names.
type Category string

const (
	Singles         Category = "1s"
	Pairs           Category = "2s"
	Triples         Category = "3s"
	Quads           Category = "4s"
	FiveCard        Category = "5s"
	Straights       Category = "st"
	Flushes         Category = "fl"
	FullHouses      Category = "fh"
	FourOfAKinds    Category = "fk"
	StraightFlushes Category = "sf"
)

// ErrUnknownCategory is returned for a category name with no generator.
var ErrUnknownCategory = errors.New("unknown move category")

// Categories lists every category in output order.
var Categories = []Category{
	Singles, Pairs, Triples, Quads, FiveCard,
	Straights, Flushes, FullHouses, FourOfAKinds, StraightFlushes,
}

var generators = map[Category]func() [][]domain.Card{
	Singles:         func() [][]domain.Card { return sameRank(1) },
	Pairs:           func() [][]domain.Card { return sameRank(2) },
	Triples:         func() [][]domain.Card { return sameRank(3) },
	Quads:           func() [][]domain.Card { return sameRank(4) },
	FiveCard:        allFiveCard,
	Straights:       func() [][]domain.Card { return straights(false) },
	Flushes:         flushes,
	FullHouses:      fullHouses,
	FourOfAKinds:    fourOfAKinds,
	StraightFlushes: func() [][]domain.Card { return straights(true) },
}

// ParseCategory validates a category name.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if _, ok := generators[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// Generate returns every group in the category, each sorted by power.
func Generate(c Category) ([][]domain.Card, error) {
	gen, ok := generators[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return gen(), nil
}

// suitSubsets returns every k-subset of suits in game order.
func suitSubsets(k int) [][]domain.Suit {
	var out [][]domain.Suit
	var walk func(start int, acc []domain.Suit)
	walk = func(start int, acc []domain.Suit) {
		if len(acc) == k {
			out = append(out, append([]domain.Suit(nil), acc...))
			return
		}
		for o := start; o < domain.NumSuits; o++ {
			walk(o+1, append(acc, domain.SuitAt(o)))
		}
	}
	walk(0, nil)
	return out
}

func sameRank(k int) [][]domain.Card {
	var moves [][]domain.Card
	for r := 0; r < domain.NumRanks; r++ {
		for _, suits := range suitSubsets(k) {
			group := make([]domain.Card, 0, k)
			for _, s := range suits {
				group = append(group, domain.Card{Rank: domain.RankAt(r), Suit: s})
			}
			moves = append(moves, group)
		}
	}
	return moves
}

// straights emits each legal run in every suit assignment, keeping either only the
// single-suit runs or only the mixed ones.
func straights(flush bool) [][]domain.Card {
	var moves [][]domain.Card
	for _, window := range domain.StraightWindows() {
		if flush {
			for s := 0; s < domain.NumSuits; s++ {
				group := make([]domain.Card, 0, 5)
				for _, order := range window {
					group = append(group, domain.Card{Rank: domain.RankAt(order), Suit: domain.SuitAt(s)})
				}
				moves = append(moves, group)
			}
			continue
		}

		// 4^5 suit assignments, one base-4 digit per card.
		for code := 0; code < 1<<10; code++ {
			group := make([]domain.Card, 0, 5)
			first := code & 3
			mixed := false
			for i, order := range window {
				s := (code >> (2 * i)) & 3
				if s != first {
					mixed = true
				}
				group = append(group, domain.Card{Rank: domain.RankAt(order), Suit: domain.SuitAt(s)})
			}
			if mixed {
				moves = append(moves, group)
			}
		}
	}
	return moves
}

func flushes() [][]domain.Card {
	var moves [][]domain.Card
	for s := 0; s < domain.NumSuits; s++ {
		var walk func(start int, acc []domain.Card)
		walk = func(start int, acc []domain.Card) {
			if len(acc) == 5 {
				group := append([]domain.Card(nil), acc...)
				if domain.Classify(group).Kind == domain.Flush {
					moves = append(moves, group)
				}
				return
			}
			for r := start; r < domain.NumRanks; r++ {
				walk(r+1, append(acc, domain.Card{Rank: domain.RankAt(r), Suit: domain.SuitAt(s)}))
			}
		}
		walk(0, nil)
	}
	return moves
}

func fullHouses() [][]domain.Card {
	var moves [][]domain.Card
	triples := sameRank(3)
	pairs := sameRank(2)
	for _, triple := range triples {
		for _, pair := range pairs {
			if pair[0].Rank == triple[0].Rank {
				continue
			}
			group := append(append([]domain.Card(nil), triple...), pair...)
			domain.SortHand(group)
			moves = append(moves, group)
		}
	}
	return moves
}

func fourOfAKinds() [][]domain.Card {
	var moves [][]domain.Card
	deck := domain.NewDeck()
	for _, quad := range sameRank(4) {
		for _, kicker := range deck {
			if kicker.Rank == quad[0].Rank {
				continue
			}
			group := append(append([]domain.Card(nil), quad...), kicker)
			domain.SortHand(group)
			moves = append(moves, group)
		}
	}
	return moves
}

func allFiveCard() [][]domain.Card {
	var moves [][]domain.Card
	moves = append(moves, straights(false)...)
	moves = append(moves, flushes()...)
	moves = append(moves, fullHouses()...)
	moves = append(moves, fourOfAKinds()...)
	moves = append(moves, straights(true)...)
	return moves
}
