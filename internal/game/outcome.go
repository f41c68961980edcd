package game

type Result int

const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultDealerWin
	ResultPush
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWin:
		return "player"
	case ResultDealerWin:
		return "dealer"
	case ResultPush:
		return "push"
	}
	return "none"
}

// Outcome is how a round ended. String returns the text shown to the player.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerBust
	OutcomeDealerBust
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerBust:
		return "Player busts. Dealer wins!"
	case OutcomeDealerBust:
		return "Dealer busts. Player wins!"
	case OutcomePlayerWin:
		return "Player wins!"
	case OutcomeDealerWin:
		return "Dealer wins!"
	case OutcomePush:
		return "Push (tie)."
	}
	return ""
}

func (o Outcome) Result() Result {
	switch o {
	case OutcomeDealerBust, OutcomePlayerWin:
		return ResultPlayerWin
	case OutcomePlayerBust, OutcomeDealerWin:
		return ResultDealerWin
	case OutcomePush:
		return ResultPush
	}
	return ResultNone
}

// Decide compares final totals; the first matching rule wins.
func Decide(playerScore, dealerScore int) Outcome {
	switch {
	case playerScore > BlackjackTotal:
		return OutcomePlayerBust
	case dealerScore > BlackjackTotal:
		return OutcomeDealerBust
	case playerScore > dealerScore:
		return OutcomePlayerWin
	case dealerScore > playerScore:
		return OutcomeDealerWin
	default:
		return OutcomePush
	}
}
