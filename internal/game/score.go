package game

const (
	BlackjackTotal = 21
	DealerStand    = 17
)

// CardValue counts an Ace as 11; callers demote it through HandTotal.
func CardValue(c Card) int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

func HandTotal(hand []Card) int {
	total, _ := handTotal(hand)
	return total
}

// handTotal also reports how many aces still count as 11.
func handTotal(hand []Card) (int, int) {
	score := 0
	aces := 0

	for _, card := range hand {
		score += CardValue(card)
		if card.IsAce() {
			aces++
		}
	}

	for score > BlackjackTotal && aces > 0 {
		score -= 10
		aces--
	}

	return score, aces
}

// IsSoft reports whether an ace is still counted as 11.
func IsSoft(hand []Card) bool {
	_, soft := handTotal(hand)
	return soft > 0
}

func IsBlackjack(hand []Card) bool {
	return len(hand) == 2 && HandTotal(hand) == BlackjackTotal
}

func IsBust(hand []Card) bool {
	return HandTotal(hand) > BlackjackTotal
}
