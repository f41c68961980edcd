// Package simulator plays many automated sessions side by side. Each
// simulated player hits until reaching a fixed threshold, then stands.
package simulator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"game21/internal/game"
)

type Config struct {
	Sessions int
	Rounds   int
	// StandOn is the lowest total the simulated player stands on.
	StandOn int
}

type Report struct {
	Sessions int
	Rounds   int
	Totals   game.Statistics
}

// PlayRound plays one complete round on s and returns its outcome.
func PlayRound(s *game.Session, standOn int) (game.Outcome, error) {
	s.NewRound()
	if err := s.DealInitialCards(); err != nil {
		return game.OutcomeNone, err
	}

	for s.PlayerTotal() < standOn {
		if _, err := s.PlayerHit(); err != nil {
			return game.OutcomeNone, err
		}
	}

	if s.PlayerTotal() > game.BlackjackTotal {
		if err := s.RevealDealerCard(); err != nil {
			return game.OutcomeNone, err
		}
	} else if err := s.Stand(); err != nil {
		return game.OutcomeNone, err
	}
	return s.DecideWinner()
}

// Run creates cfg.Sessions sessions on m, plays them concurrently and
// removes them again once their totals are collected.
func Run(ctx context.Context, m *game.Manager, cfg Config) (Report, error) {
	if cfg.Sessions <= 0 || cfg.Rounds <= 0 {
		return Report{}, fmt.Errorf("sessions and rounds must be positive, got %d and %d", cfg.Sessions, cfg.Rounds)
	}
	if cfg.StandOn < 1 || cfg.StandOn > game.BlackjackTotal {
		return Report{}, fmt.Errorf("stand threshold must be between 1 and %d, got %d", game.BlackjackTotal, cfg.StandOn)
	}

	ids := make([]string, cfg.Sessions)
	for i := range ids {
		ids[i] = m.Create()
	}
	defer func() {
		for _, id := range ids {
			m.Delete(id)
		}
	}()

	// Each goroutine keeps its own session's totals so nothing has to look a
	// session up again after its last round.
	totals := make([]game.Statistics, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			for round := range cfg.Rounds {
				if err := ctx.Err(); err != nil {
					return err
				}
				last := round == cfg.Rounds-1
				err := m.With(id, func(s *game.Session) error {
					if _, err := PlayRound(s, cfg.StandOn); err != nil {
						return err
					}
					if last {
						totals[i] = s.Statistics()
					}
					return nil
				})
				if err != nil {
					return fmt.Errorf("session %s: %w", id, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Sessions: cfg.Sessions, Rounds: cfg.Rounds}
	for _, st := range totals {
		report.Totals.PlayerWins += st.PlayerWins
		report.Totals.DealerWins += st.DealerWins
		report.Totals.Pushes += st.Pushes
		report.Totals.TotalGames += st.TotalGames
	}
	return report, nil
}
