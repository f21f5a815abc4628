package domain

// Game order: 3 4 5 6 7 8 9 10 J Q K A 2, and Diamonds < Clubs < Hearts < Spades.
var rankOrder = [...]int{
	Three: 0, Four: 1, Five: 2, Six: 3, Seven: 4, Eight: 5, Nine: 6,
	Ten: 7, Jack: 8, Queen: 9, King: 10, Ace: 11, Two: 12,
}

var suitOrder = [...]int{Diamonds: 0, Clubs: 1, Hearts: 2, Spades: 3}

// Inverse tables, indexed by order.
var (
	ranksByOrder = [...]Rank{Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace, Two}
	suitsByOrder = [...]Suit{Diamonds, Clubs, Hearts, Spades}
)

const (
	// NumRanks is the number of ranks in the deck.
	NumRanks = len(rankOrder)
	// NumSuits is the number of suits in the deck.
	NumSuits = len(suitOrder)
)

// RankOrder returns the rank's position in game order, 0 (THREE) to 12 (TWO).
func RankOrder(r Rank) int {
	return rankOrder[r]
}

// SuitOrder returns the suit's position in game order, 0 (DIAMONDS) to 3 (SPADES).
func SuitOrder(s Suit) int {
	return suitOrder[s]
}

// RankAt is the inverse of RankOrder.
func RankAt(order int) Rank {
	return ranksByOrder[order]
}

// SuitAt is the inverse of SuitOrder.
func SuitAt(order int) Suit {
	return suitsByOrder[order]
}

// FromPower is the inverse of Card.Power.
func FromPower(p int) Card {
	return Card{Rank: RankAt(p / NumSuits), Suit: SuitAt(p % NumSuits)}
}
