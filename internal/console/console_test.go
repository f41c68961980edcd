package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game21/internal/game"
)

func newTestConsole(input string, seed int64) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	s := game.NewSession(game.WithSeed(seed))
	return New(strings.NewReader(input), &out, s, nil), &out
}

func TestParseCommand(t *testing.T) {
	assert.Equal(t, CommandHit, parseCommand(" H "))
	assert.Equal(t, CommandStand, parseCommand("s"))
	assert.Equal(t, CommandDeal, parseCommand("new"))
	assert.Equal(t, CommandQuit, parseCommand("exit"))
	assert.Equal(t, "dance", parseCommand("Dance"))
}

func TestDealHidesHoleCard(t *testing.T) {
	c, out := newTestConsole("", 1)
	c.Handle(CommandDeal)

	assert.Contains(t, out.String(), faceDown)
	assert.Contains(t, out.String(), "Total: ?")

	dealer := c.session.Round().DealerCards()
	assert.NotContains(t, out.String(), dealer[0].String()+" "+dealer[1].String())
}

func TestRunStandRound(t *testing.T) {
	c, out := newTestConsole("stand\nstats\nquit\n", 2)

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, game.PhaseResolved, c.session.Round().Phase())
	assert.Contains(t, out.String(), c.session.Round().Outcome().String())
	assert.Contains(t, out.String(), "Games: 1 |")
	assert.Contains(t, out.String(), "Bye!")
}

func TestHitUntilBust(t *testing.T) {
	c, out := newTestConsole("", 3)
	c.Handle(CommandDeal)

	for c.session.Round().Phase() == game.PhasePlayerTurn {
		c.Handle(CommandHit)
	}

	assert.Greater(t, c.session.PlayerTotal(), game.BlackjackTotal)
	assert.True(t, c.session.Round().Revealed())
	assert.Contains(t, out.String(), "Player busts. Dealer wins!")
	assert.Equal(t, 1, c.session.Statistics().DealerWins)

	out.Reset()
	c.Handle(CommandHit)
	assert.Contains(t, out.String(), "isn't available")
	assert.Equal(t, 1, c.session.Statistics().TotalGames)
}

func TestNewRoundAfterResolve(t *testing.T) {
	c, _ := newTestConsole("", 4)
	c.Handle(CommandDeal)
	c.Handle(CommandStand)
	require.Equal(t, game.PhaseResolved, c.session.Round().Phase())

	c.Handle("new")
	assert.Equal(t, game.PhasePlayerTurn, c.session.Round().Phase())
	assert.Len(t, c.session.Round().PlayerCards(), 2)
	assert.Equal(t, 1, c.session.Statistics().TotalGames)
}

func TestResetAndUnknown(t *testing.T) {
	c, out := newTestConsole("", 5)
	c.Handle(CommandDeal)
	c.Handle(CommandStand)

	c.Handle(CommandReset)
	assert.Contains(t, out.String(), "Statistics reset.")
	assert.Equal(t, game.Statistics{}, c.session.Statistics())

	c.Handle("dance")
	assert.Contains(t, out.String(), `Unknown command "dance"`)

	assert.True(t, c.Handle("q"))
}

func TestRunStopsOnCancel(t *testing.T) {
	c, _ := newTestConsole("stats\n", 6)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestRunStopsAtEOF(t *testing.T) {
	c, out := newTestConsole("hit\n", 7)
	assert.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "Welcome to Game of 21!")
}
