package domain

import (
	"math/rand"
	"testing"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cards
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  Combo
	}{
		{name: "Single", cards: "7H", want: Combo{Kind: Single, Size: 1, Rank: Seven, Suit: Hearts}},
		{name: "Pair", cards: "3D 3C", want: Combo{Kind: Pair, Size: 2, Rank: Three}},
		{name: "Invalid: Pair of mixed ranks", cards: "3D 4D", want: Combo{Kind: Invalid, Size: 2}},
		{name: "Invalid: Pair repeats card", cards: "3D 3D", want: Combo{Kind: Invalid, Size: 2}},
		{name: "Triple", cards: "KS KD KH", want: Combo{Kind: Triple, Size: 3, Rank: King}},
		{name: "Invalid: Triple of mixed ranks", cards: "KS KD QH", want: Combo{Kind: Invalid, Size: 3}},
		{name: "Quad", cards: "2S 2H 2D 2C", want: Combo{Kind: Quad, Size: 4, Rank: Two}},
		{name: "Invalid: Quad of mixed ranks", cards: "2S 2H 2D AC", want: Combo{Kind: Invalid, Size: 4}},
		{name: "Straight wraps to FIVE", cards: "3D 4D 5C AC 2H", want: Combo{Kind: Straight, Size: 5, Rank: Five, Suit: Clubs}},
		{name: "Straight wraps to SIX", cards: "3D 4D 5C 6C 2H", want: Combo{Kind: Straight, Size: 5, Rank: Six, Suit: Clubs}},
		{name: "Straight ends at SEVEN", cards: "3D 4D 5C 6C 7H", want: Combo{Kind: Straight, Size: 5, Rank: Seven, Suit: Hearts}},
		{name: "Straight ends at ACE", cards: "10D JC QC KH AS", want: Combo{Kind: Straight, Size: 5, Rank: Ace, Suit: Spades}},
		{name: "Invalid: TWO extends ordinary run", cards: "9D 10C JC QH 2S", want: Combo{Kind: Invalid, Size: 5}},
		{name: "Invalid: run ends at TWO", cards: "JD QC KC AH 2S", want: Combo{Kind: Invalid, Size: 5}},
		{name: "Invalid: run wraps to FOUR", cards: "KD AC 2C 3H 4S", want: Combo{Kind: Invalid, Size: 5}},
		{name: "Invalid: run wraps to THREE", cards: "QD KC AC 2H 3S", want: Combo{Kind: Invalid, Size: 5}},
		{name: "Flush keyed by highest card", cards: "4D 6D 8D 10D QD", want: Combo{Kind: Flush, Size: 5, Rank: Queen, Suit: Diamonds}},
		{name: "Flush holding TWO", cards: "2H 4H 6H 8H 10H", want: Combo{Kind: Flush, Size: 5, Rank: Two, Suit: Hearts}},
		{name: "Flush on run ending at TWO", cards: "JS QS KS AS 2S", want: Combo{Kind: Flush, Size: 5, Rank: Two, Suit: Spades}},
		{name: "Full House", cards: "3D 3C 3H KS KD", want: Combo{Kind: FullHouse, Size: 5, Rank: Three}},
		{name: "Full House keyed by triple", cards: "AD AC 9H 9S 9D", want: Combo{Kind: FullHouse, Size: 5, Rank: Nine}},
		{name: "Invalid: triple with two kickers", cards: "3D 3C 3H KS QD", want: Combo{Kind: Invalid, Size: 5}},
		{name: "Invalid: two pairs", cards: "3D 3C 4H 4S QD", want: Combo{Kind: Invalid, Size: 5}},
		{name: "Four of a Kind", cards: "7D 7C 7H 7S KD", want: Combo{Kind: FourOfAKind, Size: 5, Rank: Seven}},
		{name: "Straight Flush", cards: "3C 4C 5C 6C 7C", want: Combo{Kind: StraightFlush, Size: 5, Rank: Seven, Suit: Clubs}},
		{name: "Straight Flush wraps to FIVE", cards: "3S 4S 5S AS 2S", want: Combo{Kind: StraightFlush, Size: 5, Rank: Five, Suit: Spades}},
		{name: "Invalid: repeated card in five", cards: "3C 4C 5C 6C 6C", want: Combo{Kind: Invalid, Size: 5}},
		{name: "Invalid: empty group", cards: "", want: Combo{Kind: Invalid, Size: 0}},
		{name: "Invalid: six cards", cards: "3C 4C 5C 6C 7C 8C", want: Combo{Kind: Invalid, Size: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(mustCards(t, tt.cards))
			if got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestClassifyIgnoresOrder(t *testing.T) {
	groups := []string{
		"3D 4D 5C AC 2H",
		"4D 6D 8D 10D QD",
		"AD AC 9H 9S 9D",
		"7D 7C 7H 7S KD",
		"KS KD KH",
		"9D 10C JC QH 2S",
	}
	rng := rand.New(rand.NewSource(7))

	for _, g := range groups {
		cards := mustCards(t, g)
		want := Classify(cards)
		for i := 0; i < 20; i++ {
			shuffled := append([]Card(nil), cards...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			if got := Classify(shuffled); got != want {
				t.Fatalf("Classify(%v) = %v, want %v", shuffled, got, want)
			}
		}
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	cards := mustCards(t, "2H AC 5C 4D 3D")
	before := append([]Card(nil), cards...)
	Classify(cards)
	for i := range cards {
		if cards[i] != before[i] {
			t.Fatalf("input reordered: got %v, want %v", cards, before)
		}
	}
}

func TestSameRankGroupsRequireUniformRank(t *testing.T) {
	deck := NewDeck()
	for _, a := range deck {
		for _, b := range deck {
			if a == b {
				continue
			}
			got := Classify([]Card{a, b}).Valid()
			if want := a.Rank == b.Rank; got != want {
				t.Fatalf("Classify(%v %v).Valid() = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestStraightWindowsAreAllStraights(t *testing.T) {
	suits := []Suit{Diamonds, Clubs, Hearts, Spades, Diamonds}
	for _, w := range StraightWindows() {
		cards := make([]Card, 0, 5)
		for i, order := range w {
			cards = append(cards, Card{Rank: RankAt(order), Suit: suits[i]})
		}
		if got := Classify(cards).Kind; got != Straight {
			t.Errorf("window %v classified as %v, want straight", w, got)
		}
	}
}
