package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Classify one or more five-card hands"`
	Compare  CompareCmd       `cmd:"" help:"Compare two five-card hands"`
	Play     PlayCmd          `cmd:"" help:"Play rounds of draw poker against the paytable"`
	Simulate SimulateCmd      `cmd:"" help:"Estimate hand frequencies and paytable return"`
	Paytable PaytableCmd      `cmd:"" help:"Print the active paytable"`
}

func main() {
	cli := CLI{Globals: Globals{stdin: os.Stdin, stdout: os.Stdout}}
	ctx := kong.Parse(&cli,
		kong.Name("videopoker"),
		kong.Description("Five-card draw poker hand evaluator and video poker machine"),
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
