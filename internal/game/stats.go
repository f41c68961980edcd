package game

// Statistics are session-scoped counters. They are never persisted.
type Statistics struct {
	PlayerWins int `json:"player_wins"`
	DealerWins int `json:"dealer_wins"`
	Pushes     int `json:"pushes"`
	TotalGames int `json:"total_games"`
}

type tally struct {
	playerWins int
	dealerWins int
	pushes     int
}

// record increments exactly one counter for a decided outcome.
func (t *tally) record(o Outcome) {
	switch o.Result() {
	case ResultPlayerWin:
		t.playerWins++
	case ResultDealerWin:
		t.dealerWins++
	case ResultPush:
		t.pushes++
	}
}

func (t *tally) reset() {
	*t = tally{}
}

func (t tally) snapshot() Statistics {
	return Statistics{
		PlayerWins: t.playerWins,
		DealerWins: t.dealerWins,
		Pushes:     t.pushes,
		TotalGames: t.playerWins + t.dealerWins + t.pushes,
	}
}

// WinRate is the percentage of games won by the player.
func (s Statistics) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.TotalGames) * 100
}
