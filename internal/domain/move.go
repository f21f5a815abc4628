package domain

import "errors"

// Rejection reasons reported by CheckMove. They describe why a play is illegal and are
// never raised by the rules themselves.
var (
	ErrGroupSize     = errors.New("group must hold 1 to 5 cards")
	ErrSizeMismatch  = errors.New("group size differs from the table")
	ErrDuplicateCard = errors.New("group repeats a card")
	ErrInvalidCombo  = errors.New("cards do not form a combination")
	ErrNotStronger   = errors.New("combination does not beat the table")
	ErrInvalidTable  = errors.New("table cards do not form a combination")
)

// Classifier maps a card group to its combination. Classify is the canonical one;
// callers may substitute a memoized equivalent.
type Classifier func(cards []Card) Combo

// CheckMove decides whether move may be played against the group currently on the table
// and explains a rejection. An empty against means the player leads the trick.
func CheckMove(move, against []Card) error {
	return Classifier(Classify).CheckMove(move, against)
}

// IsValidMove reports whether move is a legal play against the table. It never mutates
// its inputs.
func IsValidMove(move, against []Card) bool {
	return CheckMove(move, against) == nil
}

// CheckMove is the move decision using classify for both groups.
func (classify Classifier) CheckMove(move, against []Card) error {
	n := len(move)
	if n < 1 || n > MaxGroupSize {
		return ErrGroupSize
	}
	if len(against) > 0 && len(against) != n {
		return ErrSizeMismatch
	}
	if _, distinct := KeyOf(move); !distinct {
		return ErrDuplicateCard
	}

	combo := classify(move)
	if !combo.Valid() {
		return ErrInvalidCombo
	}
	if len(against) == 0 {
		return nil
	}

	table := classify(against)
	if !table.Valid() {
		return ErrInvalidTable
	}
	if !Less(table, combo) {
		return ErrNotStronger
	}
	return nil
}
