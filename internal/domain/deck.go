package domain

import "sort"

// NewDeck returns the 52-card deck sorted by ascending power.
func NewDeck() []Card {
	deck := make([]Card, 0, NumRanks*NumSuits)
	for p := 0; p < NumRanks*NumSuits; p++ {
		deck = append(deck, FromPower(p))
	}
	return deck
}

// SortHand orders cards by ascending power.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Power() < cards[j].Power()
	})
}

// sortedCopy returns the cards sorted by power without touching the input.
func sortedCopy(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	SortHand(out)
	return out
}

// GroupKey is an order-independent set key for a card group: bit n is set when the card
// with power n is present.
type GroupKey uint64

// KeyOf builds the group key and reports whether every card in the group is distinct.
func KeyOf(cards []Card) (GroupKey, bool) {
	var key GroupKey
	for _, c := range cards {
		bit := GroupKey(1) << uint(c.Power())
		if key&bit != 0 {
			return key, false
		}
		key |= bit
	}
	return key, true
}

// Cards expands the key back into cards, sorted by power.
func (k GroupKey) Cards() []Card {
	var cards []Card
	for p := 0; p < NumRanks*NumSuits; p++ {
		if k&(GroupKey(1)<<uint(p)) != 0 {
			cards = append(cards, FromPower(p))
		}
	}
	return cards
}
