package app

import "deuces/internal/domain"

// EventKind identifies events emitted while a trick is played.
type EventKind string

const (
	EventCardsPlayed  EventKind = "cards_played"
	EventMoveRejected EventKind = "move_rejected"
	EventTrickCleared EventKind = "trick_cleared"
)

// Event is an app event with a kind-specific payload.
type Event struct {
	Kind    EventKind
	Payload any
}

type CardsPlayedPayload struct {
	PlayerID string
	Cards    []domain.Card
	Combo    domain.Combo
	Leading  bool
}

type MoveRejectedPayload struct {
	PlayerID string
	Cards    []domain.Card
	Reason   error
}

type TrickClearedPayload struct {
	LastPlayerID string
}
