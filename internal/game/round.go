package game

import (
	"fmt"
	"math/rand"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhasePlayerTurn:
		return "player turn"
	case PhaseDealerTurn:
		return "dealer turn"
	case PhaseResolved:
		return "resolved"
	}
	return "unknown"
}

// Round holds one game: its deck, both hands and the hole card reveal flag.
// It is not safe for concurrent use.
type Round struct {
	deck     *Deck
	player   []Card
	dealer   []Card
	revealed bool
	phase    Phase
	outcome  Outcome
}

// NewRound shuffles a fresh deck. Hands are empty until Deal.
func NewRound(rng *rand.Rand) *Round {
	return &Round{
		deck:   NewDeck(rng),
		player: make([]Card, 0, 10),
		dealer: make([]Card, 0, 10),
	}
}

func sequenceError(op string, p Phase) error {
	return fmt.Errorf("%s during %s: %w", op, p, ErrOutOfSequence)
}

func (r *Round) draw() (Card, error) {
	return r.deck.Draw()
}

// Deal gives two cards to the player, then two to the dealer.
func (r *Round) Deal() error {
	if r.phase != PhaseNotStarted {
		return sequenceError("deal", r.phase)
	}

	cards := make([]Card, 4)
	for i := range cards {
		c, err := r.draw()
		if err != nil {
			return fmt.Errorf("initial deal: %w", err)
		}
		cards[i] = c
	}

	r.player = append(r.player[:0], cards[0], cards[1])
	r.dealer = append(r.dealer[:0], cards[2], cards[3])
	r.phase = PhasePlayerTurn
	return nil
}

// Hit draws one card for the player and returns it.
func (r *Round) Hit() (Card, error) {
	if r.phase != PhasePlayerTurn || r.PlayerBusted() {
		return Card{}, sequenceError("hit", r.phase)
	}

	card, err := r.draw()
	if err != nil {
		return Card{}, fmt.Errorf("player hit: %w", err)
	}
	r.player = append(r.player, card)
	return card, nil
}

// Reveal lets callers render the dealer's hole card. It changes nothing else.
func (r *Round) Reveal() error {
	if r.phase == PhaseNotStarted {
		return sequenceError("reveal", r.phase)
	}
	r.revealed = true
	return nil
}

// PlayDealer ends the player's turn if needed, then draws for the dealer
// while its total is under 17.
func (r *Round) PlayDealer() error {
	switch {
	case r.phase == PhasePlayerTurn && !r.PlayerBusted():
		r.phase = PhaseDealerTurn
	case r.phase == PhaseDealerTurn:
	default:
		return sequenceError("dealer turn", r.phase)
	}

	for HandTotal(r.dealer) < DealerStand {
		card, err := r.draw()
		if err != nil {
			return fmt.Errorf("dealer hit: %w", err)
		}
		r.dealer = append(r.dealer, card)
	}
	return nil
}

// Stand reveals the hole card and plays out the dealer's hand.
func (r *Round) Stand() error {
	if r.phase != PhasePlayerTurn || r.PlayerBusted() {
		return sequenceError("stand", r.phase)
	}
	if err := r.Reveal(); err != nil {
		return err
	}
	return r.PlayDealer()
}

// Resolve decides the round. It succeeds once per round: after the dealer
// has played, or straight after a player bust.
func (r *Round) Resolve() (Outcome, error) {
	switch {
	case r.phase == PhaseDealerTurn:
	case r.phase == PhasePlayerTurn && r.PlayerBusted():
	default:
		return OutcomeNone, sequenceError("decide winner", r.phase)
	}

	r.outcome = Decide(r.PlayerTotal(), r.DealerTotal())
	r.phase = PhaseResolved
	return r.outcome, nil
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome is OutcomeNone until the round is resolved.
func (r *Round) Outcome() Outcome {
	return r.outcome
}

func (r *Round) Revealed() bool {
	return r.revealed
}

func (r *Round) PlayerCards() []Card {
	return append([]Card(nil), r.player...)
}

// DealerCards returns every dealer card regardless of the reveal flag.
func (r *Round) DealerCards() []Card {
	return append([]Card(nil), r.dealer...)
}

func (r *Round) PlayerTotal() int {
	return HandTotal(r.player)
}

func (r *Round) DealerTotal() int {
	return HandTotal(r.dealer)
}

func (r *Round) PlayerBusted() bool {
	return IsBust(r.player)
}

func (r *Round) CardsRemaining() int {
	return r.deck.Remaining()
}
