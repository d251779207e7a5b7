// Command marketctl runs the matcher over offers and requests stored in JSON
// files and applies database migrations.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	flagDemand = "demand"
	flagSupply = "supply"
	flagLimit  = "limit"
)

func main() {
	app := &cli.App{
		Name:                 "marketctl",
		Usage:                "Inspect compute market matching offline and manage the database schema",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			matchCmd,
			selectCmd,
			migrateCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
