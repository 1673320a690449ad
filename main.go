package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"timekeeper/internal/cmd"
	"timekeeper/internal/config"
	"timekeeper/version"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	// Parse CLI arguments with Kong. AfterApply opens the store.
	ctx := kong.Parse(&cli,
		kong.Name("timekeeper"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)
	defer cli.Close()

	if err := ctx.Run(cli.Container); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.Close()
		os.Exit(1)
	}
}
