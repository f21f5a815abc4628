package app

import (
	"testing"

	"deuces/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayLeadsAndBeats(t *testing.T) {
	svc, err := NewService(16, nil)
	require.NoError(t, err)
	var table Table

	evs, err := svc.Play(&table, "u1", mustCards(t, "3S 3H"))
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, EventCardsPlayed, evs[0].Kind)
	payload := evs[0].Payload.(CardsPlayedPayload)
	assert.True(t, payload.Leading)
	assert.Equal(t, domain.Pair, payload.Combo.Kind)

	_, err = svc.Play(&table, "u2", mustCards(t, "3D 3C"))
	assert.ErrorIs(t, err, domain.ErrNotStronger)
	assert.Equal(t, "u1", table.LastPlayerID())

	evs, err = svc.Play(&table, "u2", mustCards(t, "4C 4D"))
	require.NoError(t, err)
	payload = evs[0].Payload.(CardsPlayedPayload)
	assert.False(t, payload.Leading)
	assert.Equal(t, "4D 4C", domain.FormatCards(table.Against(), " "))
	assert.Equal(t, "u2", table.LastPlayerID())
}

func TestPlayRejectionLeavesTable(t *testing.T) {
	svc, err := NewService(16, nil)
	require.NoError(t, err)
	var table Table

	_, err = svc.Play(&table, "u1", mustCards(t, "4D 6D 8D 10D QD"))
	require.NoError(t, err)

	evs, err := svc.Play(&table, "u2", mustCards(t, "2S"))
	assert.ErrorIs(t, err, domain.ErrSizeMismatch)
	require.Len(t, evs, 1)
	assert.Equal(t, EventMoveRejected, evs[0].Kind)
	assert.Equal(t, domain.Flush, table.Combo().Kind)

	_, err = svc.Play(&table, "u2", mustCards(t, "3C 4C 5C 6C 7C"))
	require.NoError(t, err)
	assert.Equal(t, domain.StraightFlush, table.Combo().Kind)
}

func TestClearOpensTrick(t *testing.T) {
	svc, err := NewService(0, nil)
	require.NoError(t, err)
	var table Table

	_, err = svc.Play(&table, "u1", mustCards(t, "2S"))
	require.NoError(t, err)

	evs := svc.Clear(&table)
	require.Len(t, evs, 1)
	assert.Equal(t, EventTrickCleared, evs[0].Kind)
	assert.Equal(t, "u1", evs[0].Payload.(TrickClearedPayload).LastPlayerID)
	assert.True(t, table.Empty())
	assert.Nil(t, table.Against())

	_, err = svc.Play(&table, "u2", mustCards(t, "3D"))
	assert.NoError(t, err)
}

func TestTableAgainstIsACopy(t *testing.T) {
	svc, err := NewService(0, nil)
	require.NoError(t, err)
	var table Table

	cards := mustCards(t, "5S 5H")
	_, err = svc.Play(&table, "u1", cards)
	require.NoError(t, err)

	cards[0] = domain.Card{Rank: domain.Two, Suit: domain.Spades}
	got := table.Against()
	got[1] = domain.Card{Rank: domain.Two, Suit: domain.Hearts}
	assert.Equal(t, "5H 5S", domain.FormatCards(table.Against(), " "))
}
