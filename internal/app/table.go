package app

import "deuces/internal/domain"

// Table holds the group currently on the table for one trick. The zero value is an
// empty table on which any valid combination may lead.
type Table struct {
	against  []domain.Card
	combo    domain.Combo
	playerID string
}

// Against returns a copy of the last accepted group, or nil when the trick is open.
func (t *Table) Against() []domain.Card {
	if len(t.against) == 0 {
		return nil
	}
	return append([]domain.Card(nil), t.against...)
}

// Combo returns the classification of the last accepted group.
func (t *Table) Combo() domain.Combo {
	return t.combo
}

// LastPlayerID returns who played the group on the table.
func (t *Table) LastPlayerID() string {
	return t.playerID
}

// Empty reports whether the trick is open for a lead.
func (t *Table) Empty() bool {
	return len(t.against) == 0
}

// Play validates cards against the table and, when legal, replaces the table group.
// A rejected play leaves the table untouched and is reported both as an event and as
// the returned domain reason.
func (s *Service) Play(table *Table, playerID string, cards []domain.Card) ([]Event, error) {
	if err := s.CheckMove(cards, table.against); err != nil {
		return []Event{{
			Kind:    EventMoveRejected,
			Payload: MoveRejectedPayload{PlayerID: playerID, Cards: cards, Reason: err},
		}}, err
	}

	leading := table.Empty()
	table.against = append([]domain.Card(nil), cards...)
	domain.SortHand(table.against)
	table.combo = s.Classify(cards)
	table.playerID = playerID

	s.logger.Debug("Cards played", "player", playerID, "combo", table.combo, "leading", leading)
	return []Event{{
		Kind: EventCardsPlayed,
		Payload: CardsPlayedPayload{
			PlayerID: playerID,
			Cards:    table.Against(),
			Combo:    table.combo,
			Leading:  leading,
		},
	}}, nil
}

// Clear ends the trick so the next play leads.
func (s *Service) Clear(table *Table) []Event {
	last := table.playerID
	*table = Table{}
	return []Event{{
		Kind:    EventTrickCleared,
		Payload: TrickClearedPayload{LastPlayerID: last},
	}}
}
