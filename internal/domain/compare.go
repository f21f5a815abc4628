package domain

// Compare orders two combos of the same group size, returning -1, 0 or +1.
//
// Kinds compare by precedence first (Invalid < Straight < Flush < FullHouse <
// FourOfAKind < StraightFlush for five cards), then by their key: rank order, then suit
// order where the kind carries a suit. Combos of different sizes are not comparable in
// play; they are ordered by size so the function stays total.
func Compare(a, b Combo) int {
	if a.Size != b.Size {
		return cmpInt(a.Size, b.Size)
	}
	if c := cmpInt(precedence[a.Kind], precedence[b.Kind]); c != 0 {
		return c
	}
	if a.Kind == Invalid {
		return 0
	}
	if c := cmpInt(RankOrder(a.Rank), RankOrder(b.Rank)); c != 0 {
		return c
	}
	if kindHasSuit(a.Kind) {
		return cmpInt(SuitOrder(a.Suit), SuitOrder(b.Suit))
	}
	return 0
}

// Less reports whether a is strictly weaker than b.
func Less(a, b Combo) bool {
	return Compare(a, b) < 0
}

func kindHasSuit(k ComboKind) bool {
	switch k {
	case Single, Straight, Flush, StraightFlush:
		return true
	}
	return false
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
