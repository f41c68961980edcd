package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"game21/internal/config"
	"game21/internal/console"
	"game21/internal/game"
	"game21/internal/simulator"
)

type PlayCmd struct{}

type SimulateCmd struct {
	Sessions int `default:"8" help:"Concurrent sessions"`
	Rounds   int `default:"1000" help:"Rounds per session"`
	StandOn  int `default:"17" help:"Simulated player stands at or above this total"`
}

type CLI struct {
	Seed     int64  `help:"Shuffle seed (0 uses GAME21_SEED or the clock)"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides GAME21_LOG_LEVEL)"`

	Play     PlayCmd     `cmd:"" default:"1" help:"Play rounds against the dealer in the terminal"`
	Simulate SimulateCmd `cmd:"" help:"Play automated sessions concurrently and print totals"`
}

type runContext struct {
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger
}

func (p *PlayCmd) Run(rc *runContext) error {
	session := game.NewSession(
		game.WithSeed(rc.cfg.ShuffleSeed()),
		game.WithLogger(rc.logger),
	)
	return console.New(os.Stdin, os.Stdout, session, rc.logger).Run(rc.ctx)
}

func (s *SimulateCmd) Run(rc *runContext) error {
	m := game.NewManager(quartz.NewReal(), rc.cfg.ShuffleSeed(), rc.logger)
	m.StartSweeper(rc.ctx, rc.cfg.SessionIdle)

	report, err := simulator.Run(rc.ctx, m, simulator.Config{
		Sessions: s.Sessions,
		Rounds:   s.Rounds,
		StandOn:  s.StandOn,
	})
	if err != nil {
		return err
	}

	t := report.Totals
	fmt.Printf("sessions=%d rounds=%d games=%d player_wins=%d dealer_wins=%d pushes=%d win_rate=%.2f%%\n",
		report.Sessions, report.Rounds, t.TotalGames, t.PlayerWins, t.DealerWins, t.Pushes, t.WinRate())
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("game21"),
		kong.Description("Single-deck game of 21 against an automated dealer."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}
	if cli.LogLevel != "" {
		level, err := log.ParseLevel(cli.LogLevel)
		if err != nil {
			log.Fatal("invalid log level", "level", cli.LogLevel, "err", err)
		}
		cfg.LogLevel = level
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel,
		ReportTimestamp: true,
		Prefix:          "game21",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = kctx.Run(&runContext{ctx: ctx, cfg: cfg, logger: logger})
	kctx.FatalIfErrorf(err)
}
