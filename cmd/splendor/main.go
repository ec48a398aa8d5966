package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a match against bots in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-only matches in parallel and report statistics"`
	Cards    CardsCmd         `cmd:"" help:"Print the loaded card definitions as CSV"`
	Features FeaturesCmd      `cmd:"" help:"Play a bot match and dump the encoded state of every turn"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("splendor"),
		kong.Description("Splendor engine for pitting humans and bots against each other"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
