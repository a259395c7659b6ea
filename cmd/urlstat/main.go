package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/akarpov/urlstat/internal/cli"
)

func main() {
	var c cli.CLI

	ctx := kong.Parse(&c,
		kong.Name("urlstat"),
		kong.Description("Generate a ranked HTML report of the slowest URLs from the latest nginx access log"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	// Record whether --config was given explicitly so a missing default
	// file can fall back to the built-in settings.
	explicit := false
	for _, p := range ctx.Path {
		if p.Flag != nil && p.Flag.Name == "config" {
			explicit = true
		}
	}

	if err := ctx.Run(cli.NewGlobals(&c, explicit)); err != nil {
		os.Exit(1)
	}
}
