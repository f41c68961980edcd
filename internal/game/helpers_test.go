package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return cards
}

// stackDeck replaces the round's deck so the next draws come out in order.
func stackDeck(t *testing.T, r *Round, cards string) {
	t.Helper()
	r.deck.cards = mustCards(t, cards)
	r.deck.cursor = 0
}

// sessionWithHands returns a session whose round is waiting to be decided.
func sessionWithHands(t *testing.T, player, dealer string) *Session {
	t.Helper()
	s := NewSession(WithSeed(1))
	s.round.player = mustCards(t, player)
	s.round.dealer = mustCards(t, dealer)
	s.round.revealed = true
	s.round.phase = PhaseDealerTurn
	return s
}
