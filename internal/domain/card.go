package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValueConstruction is wrapped by every error returned when a card symbol cannot be parsed.
var ErrValueConstruction = errors.New("invalid card value")

// Rank is a card rank, declared in natural card order. Game order lives in RankOrder.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suit is a card suit. Game order lives in SuitOrder.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var rankSymbols = [...]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K",
}

var suitSymbols = [...]string{Spades: "S", Hearts: "H", Diamonds: "D", Clubs: "C"}

func (r Rank) String() string {
	if int(r) < len(rankSymbols) {
		return rankSymbols[r]
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

func (s Suit) String() string {
	if int(s) < len(suitSymbols) {
		return suitSymbols[s]
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Card is a single playing card. Two cards are equal iff rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// String renders the card as rank followed by suit letter, e.g. "10H".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Power is the dense scalar used for single-card comparison and sorting.
func (c Card) Power() int {
	return RankOrder(c.Rank)*len(suitOrder) + SuitOrder(c.Suit)
}

// ParseRank converts a rank symbol ("3".."10", "T", "J", "Q", "K", "A", "2").
func ParseRank(s string) (Rank, error) {
	sym := strings.ToUpper(strings.TrimSpace(s))
	if sym == "T" {
		return Ten, nil
	}
	for r, want := range rankSymbols {
		if sym == want {
			return Rank(r), nil
		}
	}
	return 0, fmt.Errorf("%w: rank %q", ErrValueConstruction, s)
}

// ParseSuit converts a suit letter (S, H, D, C) or its symbol.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", "♠":
		return Spades, nil
	case "H", "♡", "♥":
		return Hearts, nil
	case "D", "♢", "♦":
		return Diamonds, nil
	case "C", "♣":
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: suit %q", ErrValueConstruction, s)
}

// ParseCard parses a card such as "3D", "10h" or "TS".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: card %q", ErrValueConstruction, s)
	}
	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(string(runes[len(runes)-1:]))
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a space or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards renders cards joined by sep.
func FormatCards(cards []Card, sep string) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}
