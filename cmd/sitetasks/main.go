package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitetasks/cmd/sitetasks/commands"
	"git.home.luguber.info/inful/sitetasks/internal/version"
)

func main() {
	var cli commands.CLI
	kctx := kong.Parse(&cli,
		kong.Name("sitetasks"),
		kong.Description("Build and serve a Hugo site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	os.Exit(commands.Execute(kctx, &cli))
}
