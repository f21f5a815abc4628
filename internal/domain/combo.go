package domain

import "fmt"

// ComboKind is the category of a classified card group.
type ComboKind int

const (
	Invalid ComboKind = iota
	Single
	Pair
	Triple
	Quad
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var comboKindNames = [...]string{
	Invalid:       "invalid",
	Single:        "single",
	Pair:          "pair",
	Triple:        "triple",
	Quad:          "quad",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full_house",
	FourOfAKind:   "four_of_a_kind",
	StraightFlush: "straight_flush",
}

func (k ComboKind) String() string {
	if k >= 0 && int(k) < len(comboKindNames) {
		return comboKindNames[k]
	}
	return fmt.Sprintf("ComboKind(%d)", int(k))
}

// precedence ranks kinds within one group size. Invalid is lowest for every size.
var precedence = [...]int{
	Invalid:       0,
	Single:        1,
	Pair:          1,
	Triple:        1,
	Quad:          1,
	Straight:      1,
	Flush:         2,
	FullHouse:     3,
	FourOfAKind:   4,
	StraightFlush: 5,
}

// Combo is the classification of a card group together with the key used to compare it
// against other groups of the same size.
//
// Key fields by kind:
//   - Single: Rank and Suit of the card.
//   - Pair, Triple, Quad: Rank shared by the group.
//   - Straight, StraightFlush: Rank and Suit of the card ending the run.
//   - Flush: Rank and Suit of the highest card.
//   - FullHouse: Rank of the triple. FourOfAKind: Rank of the quad.
type Combo struct {
	Kind ComboKind
	Size int
	Rank Rank
	Suit Suit
}

// Valid reports whether the group classified as anything other than Invalid.
func (c Combo) Valid() bool {
	return c.Kind != Invalid
}

func (c Combo) String() string {
	switch c.Kind {
	case Invalid:
		return fmt.Sprintf("invalid(%d)", c.Size)
	case Single, Straight, Flush, StraightFlush:
		return fmt.Sprintf("%s(%s%s)", c.Kind, c.Rank, c.Suit)
	default:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Rank)
	}
}

func invalidCombo(size int) Combo {
	return Combo{Kind: Invalid, Size: size}
}
