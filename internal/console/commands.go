package console

import "strings"

const (
	CommandDeal  = "deal"
	CommandHit   = "hit"
	CommandStand = "stand"
	CommandStats = "stats"
	CommandReset = "reset"
	CommandHelp  = "help"
	CommandQuit  = "quit"
)

var aliases = map[string]string{
	"new":  CommandDeal,
	"n":    CommandDeal,
	"h":    CommandHit,
	"s":    CommandStand,
	"q":    CommandQuit,
	"exit": CommandQuit,
	"?":    CommandHelp,
}

func parseCommand(line string) string {
	cmd := strings.ToLower(strings.TrimSpace(line))
	if full, ok := aliases[cmd]; ok {
		return full
	}
	return cmd
}

// prompt lists the moves that make sense in the current state.
func prompt(inRound bool) string {
	if inRound {
		return "[h]it / [s]tand > "
	}
	return "[n]ew round / stats / reset / [q]uit > "
}
