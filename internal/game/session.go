package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Session owns the current round and the statistics that outlive it.
// One session serves one player; it is not safe for concurrent use
// (see Manager for locked access).
type Session struct {
	rng    *rand.Rand
	round  *Round
	stats  tally
	logger *log.Logger
}

type Option func(*Session)

// WithRand sets the shuffle source. The session takes ownership of rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession starts with a fresh round ready to be dealt.
func NewSession(opts ...Option) *Session {
	s := &Session{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.NewRound()
	return s
}

// NewRound discards the current round and shuffles a new deck.
func (s *Session) NewRound() {
	s.round = NewRound(s.rng)
	s.logger.Debug("new round")
}

func (s *Session) Round() *Round {
	return s.round
}

func (s *Session) DealInitialCards() error {
	if err := s.round.Deal(); err != nil {
		return err
	}
	s.logger.Debug("dealt",
		"player", s.round.PlayerCards(),
		"player_total", s.round.PlayerTotal())
	return nil
}

func (s *Session) PlayerHit() (Card, error) {
	card, err := s.round.Hit()
	if err != nil {
		return Card{}, err
	}
	s.logger.Debug("player hit", "card", card, "total", s.round.PlayerTotal())
	return card, nil
}

func (s *Session) PlayerTotal() int {
	return s.round.PlayerTotal()
}

func (s *Session) RevealDealerCard() error {
	return s.round.Reveal()
}

func (s *Session) DealerTotal() int {
	return s.round.DealerTotal()
}

func (s *Session) PlayDealerTurn() error {
	if err := s.round.PlayDealer(); err != nil {
		return err
	}
	s.logger.Debug("dealer played",
		"dealer", s.round.DealerCards(),
		"total", s.round.DealerTotal())
	return nil
}

// Stand reveals the hole card and plays out the dealer, as the Stand button does.
func (s *Session) Stand() error {
	if err := s.round.Stand(); err != nil {
		return err
	}
	s.logger.Debug("player stands",
		"dealer", s.round.DealerCards(),
		"dealer_total", s.round.DealerTotal())
	return nil
}

// DecideWinner resolves the round and records it. A second call for the same
// round fails with ErrOutOfSequence and counts nothing.
func (s *Session) DecideWinner() (Outcome, error) {
	outcome, err := s.round.Resolve()
	if err != nil {
		return OutcomeNone, err
	}
	s.stats.record(outcome)

	s.logger.Info("round resolved",
		"outcome", outcome.String(),
		"player_total", s.round.PlayerTotal(),
		"dealer_total", s.round.DealerTotal())
	return outcome, nil
}

func (s *Session) Statistics() Statistics {
	return s.stats.snapshot()
}

// ResetStatistics zeroes the counters. The current round is left alone.
func (s *Session) ResetStatistics() {
	s.stats.reset()
	s.logger.Debug("statistics reset")
}

type DealerView struct {
	Cards []Card
	// Hidden is true while the first card must be shown face down.
	Hidden bool
	// Total is only meaningful when Hidden is false.
	Total int
}

func (s *Session) DealerView() DealerView {
	v := DealerView{
		Cards:  s.round.DealerCards(),
		Hidden: !s.round.Revealed(),
	}
	if !v.Hidden {
		v.Total = s.round.DealerTotal()
	}
	return v
}
