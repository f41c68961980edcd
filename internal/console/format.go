package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"game21/internal/game"
)

const faceDown = "🂠"

type styles struct {
	red     lipgloss.Style
	black   lipgloss.Style
	hidden  lipgloss.Style
	label   lipgloss.Style
	outcome lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		red:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		black:   r.NewStyle().Bold(true),
		hidden:  r.NewStyle().Foreground(lipgloss.Color("8")),
		label:   r.NewStyle().Width(8),
		outcome: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s styles) card(c game.Card) string {
	if c.Suit == game.Hearts || c.Suit == game.Diamonds {
		return s.red.Render(c.String())
	}
	return s.black.Render(c.String())
}

func (s styles) hand(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = s.card(c)
	}
	return strings.Join(parts, " ")
}

func (s styles) dealer(v game.DealerView) string {
	parts := make([]string, len(v.Cards))
	for i, c := range v.Cards {
		if i == 0 && v.Hidden {
			parts[i] = s.hidden.Render(faceDown)
			continue
		}
		parts[i] = s.card(c)
	}

	total := "?"
	if !v.Hidden {
		total = fmt.Sprint(v.Total)
	}
	return fmt.Sprintf("%s  Total: %s", strings.Join(parts, " "), total)
}

func (s styles) table(sess *game.Session) string {
	round := sess.Round()
	return fmt.Sprintf("%s%s\n%s%s  Total: %d\n",
		s.label.Render("Dealer:"), s.dealer(sess.DealerView()),
		s.label.Render("You:"), s.hand(round.PlayerCards()), sess.PlayerTotal())
}

func (s styles) stats(st game.Statistics) string {
	return s.muted.Render(fmt.Sprintf(
		"Games: %d | Player Wins: %d | Dealer Wins: %d | Ties: %d | Win rate: %.1f%%",
		st.TotalGames, st.PlayerWins, st.DealerWins, st.Pushes, st.WinRate()))
}

const rules = `Game of 21

Get a hand value as close to 21 as possible without going over.

  2-10     face value
  J, Q, K  10
  A        11, or 1 when 11 would bust

  hit    take another card
  stand  keep your hand; the dealer reveals the hole card and
         draws until reaching 17 or more

Going over 21 is a bust and loses immediately. Highest hand wins; equal hands push.
`
