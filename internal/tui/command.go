package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/gem"
)

// CommandKind classifies a line typed by the human player
type CommandKind int

const (
	CommandAction CommandKind = iota
	CommandHelp
	CommandQuit
	CommandBoard
)

// Command is a parsed input line. Action is set for CommandAction.
type Command struct {
	Kind   CommandKind
	Action game.Action
}

// HelpText lists the accepted commands
const HelpText = `Commands:
  take <color> <color> <color>   take three different colors
  take <color> <color>           take two of one color (needs 4 in the bank)
  buy <id>                       buy a card from the board
  reserve <id>                   reserve a card from the board
  board                          redraw the board
  help                           show this help
  quit                           leave the match
Colors: black blue green red white (or k u g r w)`

var shortColors = map[string]gem.Color{
	"k": gem.Black,
	"u": gem.Blue,
	"g": gem.Green,
	"r": gem.Red,
	"w": gem.White,
}

// ParseCommand parses one input line
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command, type 'help' for available commands")
	}
	verb, args := fields[0], fields[1:]

	switch verb {
	case "help", "h", "?":
		return Command{Kind: CommandHelp}, nil
	case "quit", "q", "exit":
		return Command{Kind: CommandQuit}, nil
	case "board", "show":
		return Command{Kind: CommandBoard}, nil
	case "take", "t":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("take needs colors, e.g. 'take red blue green'")
		}
		colors := make([]gem.Color, 0, len(args))
		for _, arg := range args {
			c, err := parseColor(arg)
			if err != nil {
				return Command{}, err
			}
			colors = append(colors, c)
		}
		return Command{Kind: CommandAction, Action: game.Take(colors...)}, nil
	case "buy", "b":
		id, err := parseCardID(verb, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandAction, Action: game.Buy(id)}, nil
	case "reserve", "res":
		id, err := parseCardID(verb, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandAction, Action: game.Reserve(id)}, nil
	default:
		return Command{}, fmt.Errorf("unknown command %q, type 'help' for available commands", verb)
	}
}

func parseColor(s string) (gem.Color, error) {
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	return gem.ParseColor(s)
}

func parseCardID(verb string, args []string) (card.ID, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s needs exactly one card id", verb)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid card id %q", args[0])
	}
	return card.ID(id), nil
}
