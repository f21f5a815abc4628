package domain

// MaxGroupSize is the largest card group that can be played at once.
const MaxGroupSize = 5

// straightWindow is a legal five-card run expressed as sorted rank orders. End is the
// index, within the sorted run, of the card that ends the straight.
type straightWindow struct {
	Orders [5]int
	End    int
}

// The two wraparound runs sort with TWO (and ACE) last, but end on FIVE and SIX.
var straightWindows = [...]straightWindow{
	{Orders: [5]int{0, 1, 2, 11, 12}, End: 2},
	{Orders: [5]int{0, 1, 2, 3, 12}, End: 3},
	{Orders: [5]int{0, 1, 2, 3, 4}, End: 4},
	{Orders: [5]int{1, 2, 3, 4, 5}, End: 4},
	{Orders: [5]int{2, 3, 4, 5, 6}, End: 4},
	{Orders: [5]int{3, 4, 5, 6, 7}, End: 4},
	{Orders: [5]int{4, 5, 6, 7, 8}, End: 4},
	{Orders: [5]int{5, 6, 7, 8, 9}, End: 4},
	{Orders: [5]int{6, 7, 8, 9, 10}, End: 4},
	{Orders: [5]int{7, 8, 9, 10, 11}, End: 4},
}

var straightEnds = func() map[[5]int]int {
	m := make(map[[5]int]int, len(straightWindows))
	for _, w := range straightWindows {
		m[w.Orders] = w.End
	}
	return m
}()

// StraightWindows returns the legal straights as sorted rank orders, lowest first.
func StraightWindows() [][5]int {
	out := make([][5]int, len(straightWindows))
	for i, w := range straightWindows {
		out[i] = w.Orders
	}
	return out
}

// Classify determines the combination formed by a group of 1 to 5 cards. Input order does
// not matter. Groups of any other size, or holding the same card twice, are Invalid.
func Classify(cards []Card) Combo {
	n := len(cards)
	if n < 1 || n > MaxGroupSize {
		return invalidCombo(n)
	}
	if _, distinct := KeyOf(cards); !distinct {
		return invalidCombo(n)
	}

	sorted := sortedCopy(cards)
	if n == 1 {
		return Combo{Kind: Single, Size: 1, Rank: sorted[0].Rank, Suit: sorted[0].Suit}
	}
	if n < MaxGroupSize {
		if !allSameRank(sorted) {
			return invalidCombo(n)
		}
		kind := [...]ComboKind{2: Pair, 3: Triple, 4: Quad}[n]
		return Combo{Kind: kind, Size: n, Rank: sorted[0].Rank}
	}
	return classifyFive(sorted)
}

// classifyFive expects five distinct cards sorted by power.
func classifyFive(sorted []Card) Combo {
	var rankCounts [NumRanks]int
	var suitCounts [NumSuits]int
	for _, c := range sorted {
		rankCounts[RankOrder(c.Rank)]++
		suitCounts[SuitOrder(c.Suit)]++
	}

	distinct := 0
	tripleAt, pairAt := -1, -1
	for order, count := range rankCounts {
		switch count {
		case 0:
			continue
		case 4:
			return Combo{Kind: FourOfAKind, Size: 5, Rank: RankAt(order)}
		case 3:
			tripleAt = order
		case 2:
			pairAt = order
		}
		distinct++
	}

	if tripleAt >= 0 {
		if pairAt >= 0 {
			return Combo{Kind: FullHouse, Size: 5, Rank: RankAt(tripleAt)}
		}
		return invalidCombo(5)
	}
	if distinct != 5 {
		return invalidCombo(5)
	}

	isFlush := false
	for _, count := range suitCounts {
		if count == 5 {
			isFlush = true
		}
	}

	var orders [5]int
	for i, c := range sorted {
		orders[i] = RankOrder(c.Rank)
	}
	end, isStraight := straightEnds[orders]

	switch {
	case isStraight && isFlush:
		return Combo{Kind: StraightFlush, Size: 5, Rank: sorted[end].Rank, Suit: sorted[end].Suit}
	case isFlush:
		high := sorted[len(sorted)-1]
		return Combo{Kind: Flush, Size: 5, Rank: high.Rank, Suit: high.Suit}
	case isStraight:
		return Combo{Kind: Straight, Size: 5, Rank: sorted[end].Rank, Suit: sorted[end].Suit}
	}
	return invalidCombo(5)
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}
