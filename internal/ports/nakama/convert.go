package nakama

import (
	"fmt"

	"deuces/internal/domain"
)

// ComboPayload is the JSON form of a domain.Combo.
type ComboPayload struct {
	Kind  string `json:"kind"`
	Size  int    `json:"size"`
	Valid bool   `json:"valid"`
	Rank  string `json:"rank,omitempty"`
	Suit  string `json:"suit,omitempty"`
}

func comboToPayload(c domain.Combo) ComboPayload {
	out := ComboPayload{Kind: c.Kind.String(), Size: c.Size, Valid: c.Valid()}
	if !c.Valid() {
		return out
	}
	out.Rank = c.Rank.String()
	switch c.Kind {
	case domain.Single, domain.Straight, domain.Flush, domain.StraightFlush:
		out.Suit = c.Suit.String()
	}
	return out
}

func cardsFromPayload(symbols []string) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(symbols))
	for i, s := range symbols {
		c, err := domain.ParseCard(s)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func cardsToPayload(cards []domain.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}
