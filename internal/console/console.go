package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"game21/internal/game"
)

// Console drives a Session from line-oriented input.
type Console struct {
	in      io.Reader
	out     io.Writer
	session *game.Session
	logger  *log.Logger
	styles  styles
}

func New(in io.Reader, out io.Writer, session *game.Session, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Console{
		in:      in,
		out:     out,
		session: session,
		logger:  logger,
		styles:  newStyles(lipgloss.NewRenderer(out)),
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Run deals a first round and processes commands until quit, EOF or ctx ends.
func (c *Console) Run(ctx context.Context) error {
	c.printf("Welcome to Game of 21! Type 'help' for the rules.\n\n")
	c.Handle(CommandDeal)

	scanner := bufio.NewScanner(c.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("%s", prompt(c.inRound()))
		if !scanner.Scan() {
			c.printf("\n")
			return scanner.Err()
		}
		if quit := c.Handle(scanner.Text()); quit {
			return nil
		}
	}
}

func (c *Console) inRound() bool {
	return c.session.Round().Phase() == game.PhasePlayerTurn
}

// Handle runs one command and reports whether the user asked to quit.
func (c *Console) Handle(line string) bool {
	cmd := parseCommand(line)
	c.logger.Debug("command", "cmd", cmd, "phase", c.session.Round().Phase())

	switch cmd {
	case "":
	case CommandDeal:
		c.handleDeal()
	case CommandHit:
		c.handleHit()
	case CommandStand:
		c.handleStand()
	case CommandStats:
		c.printf("%s\n", c.styles.stats(c.session.Statistics()))
	case CommandReset:
		c.session.ResetStatistics()
		c.printf("Statistics reset.\n%s\n", c.styles.stats(c.session.Statistics()))
	case CommandHelp:
		c.printf("%s\n", rules)
	case CommandQuit:
		c.printf("%s\nBye!\n", c.styles.stats(c.session.Statistics()))
		return true
	default:
		c.printf("Unknown command %q. Type 'help' for the rules.\n", cmd)
	}
	return false
}

func (c *Console) handleDeal() {
	if c.session.Round().Phase() != game.PhaseNotStarted {
		c.session.NewRound()
	}
	if err := c.session.DealInitialCards(); err != nil {
		c.fail(err)
		return
	}
	c.printf("%s", c.styles.table(c.session))
}

func (c *Console) handleHit() {
	card, err := c.session.PlayerHit()
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("You draw %s.\n", c.styles.card(card))

	if c.session.PlayerTotal() > game.BlackjackTotal {
		if err := c.session.RevealDealerCard(); err != nil {
			c.fail(err)
			return
		}
		c.finish()
		return
	}
	c.printf("%s", c.styles.table(c.session))
}

func (c *Console) handleStand() {
	if err := c.session.Stand(); err != nil {
		c.fail(err)
		return
	}
	c.finish()
}

func (c *Console) finish() {
	outcome, err := c.session.DecideWinner()
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("%s\n%s\n%s\n",
		c.styles.table(c.session),
		c.styles.outcome.Render(outcome.String()),
		c.styles.stats(c.session.Statistics()))
}

func (c *Console) fail(err error) {
	c.logger.Warn("command failed", "err", err)
	if errors.Is(err, game.ErrOutOfSequence) {
		c.printf("That move isn't available right now. Type 'new' to start a new round.\n")
		return
	}
	c.printf("Something went wrong: %v. Type 'new' to start a new round.\n", err)
}
