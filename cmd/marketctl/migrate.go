package main

import (
	"fmt"

	"compute-market/internal/pkg/config"
	"compute-market/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/urfave/cli/v2"
)

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Apply pending migrations with the atlas CLI",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Usage:   "target database URL, built from the DB_* variables when empty",
			EnvVars: []string{"DATABASE_URL"},
		},
		&cli.StringFlag{
			Name:  "dir",
			Usage: "migration directory URL",
			Value: "file://migrations",
		},
		&cli.StringFlag{
			Name:  "atlas",
			Usage: "path to the atlas binary",
			Value: "atlas",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "print the pending statements without executing them",
		},
	},
	Action: func(cctx *cli.Context) error {
		url := cctx.String("url")
		if url == "" {
			cfg, err := config.LoadConfig()
			if err != nil {
				return errs.Wrap(err, "no --url given and DB_* variables are incomplete")
			}
			url = cfg.DB.BuildDSN()
		}

		client, err := atlasexec.NewClient(".", cctx.String("atlas"))
		if err != nil {
			return errs.Wrap(err, "failed to initialize atlas client")
		}

		res, err := client.MigrateApply(cctx.Context, &atlasexec.MigrateApplyParams{
			URL:    url,
			DirURL: cctx.String("dir"),
			DryRun: cctx.Bool("dry-run"),
		})
		if err != nil {
			return errs.Wrap(err, "failed to apply migrations")
		}

		out := cctx.App.Writer
		if len(res.Applied) == 0 {
			fmt.Fprintf(out, "schema is up to date at version %s\n", res.Current)
			return nil
		}
		t := newVisualTable("VERSION", "NAME", "STATEMENTS")
		for _, f := range res.Applied {
			t.addRow([]string{f.Version, f.Name, fmt.Sprint(len(f.Applied))}, nil)
		}
		t.render(out)
		fmt.Fprintf(out, "migrated from %q to %q\n", res.Current, res.Target)
		return nil
	},
}
