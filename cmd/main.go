package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/relcat/relcat/catalog"
	"github.com/relcat/relcat/config"
	"github.com/relcat/relcat/fsdir"
	"github.com/relcat/relcat/log"
	"github.com/relcat/relcat/naming"
	"github.com/relcat/relcat/printer"
	"github.com/relcat/relcat/resolver"
)

func main() {
	var verbose bool
	var filesDir string
	var latestByVersion bool

	app := cli.NewApp()
	app.Name = "relcat-inspect"
	app.Usage = "Query a release directory without running the server"
	app.Version = "0.0.1"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "files, f",
			Usage:       "Release directory (default from RELCAT_FILES_DIR or \"files\")",
			Destination: &filesDir,
		}, cli.BoolFlag{
			Name:        "latest-by-version",
			Usage:       "Pick the highest version as latest",
			Destination: &latestByVersion,
		}, cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Full debug log",
			Destination: &verbose,
		},
	}

	newResolver := func() (*resolver.Resolver, error) {
		cfg, err := config.Load("")
		if err != nil {
			return nil, err
		}
		if filesDir != "" {
			cfg.FilesDir = filesDir
		}
		log.G(context.Background()).Debugf("Reading releases from %s", cfg.FilesDir)

		b := catalog.NewBuilder(fsdir.NewDirLister(os.DirFS(cfg.FilesDir)))
		b.LatestByVersion = latestByVersion || cfg.LatestByVersion
		return resolver.New(b), nil
	}

	app.Before = func(c *cli.Context) error {
		if verbose {
			log.L.Logger.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	appFlags := []cli.Flag{
		cli.StringFlag{Name: "app, a", Usage: "Application name", Required: true},
		cli.StringFlag{Name: "platform, p", Usage: "Platform"},
	}

	app.Commands = []cli.Command{
		{
			Name:  "apps",
			Usage: "List applications and their platforms",
			Action: func(c *cli.Context) error {
				r, err := newResolver()
				if err != nil {
					return err
				}
				refs, err := r.ListApps()
				if err != nil {
					return err
				}
				printer.Apps(refs)
				return nil
			},
		},
		{
			Name:  "versions",
			Usage: "List the versions of an application",
			Flags: append(appFlags,
				cli.StringFlag{Name: "after", Usage: "Only versions greater than this one"},
				cli.BoolFlag{Name: "latest", Usage: "Only the latest version"},
			),
			Action: func(c *cli.Context) error {
				r, err := newResolver()
				if err != nil {
					return err
				}
				cat, err := r.QueryVersions(c.String("app"), c.String("platform"), c.String("after"), c.Bool("latest"))
				if err != nil {
					return err
				}
				printer.Versions(cat)
				return nil
			},
		},
		{
			Name:  "resolve",
			Usage: "Print the file behind a version and kind",
			Flags: append(appFlags,
				cli.StringFlag{Name: "version", Usage: "Version or \"latest\"", Value: resolver.Latest},
				cli.StringFlag{Name: "kind, k", Usage: "exe, txt or html", Value: string(naming.Binary)},
			),
			Action: func(c *cli.Context) error {
				r, err := newResolver()
				if err != nil {
					return err
				}
				ref, err := r.ResolveArtifact(c.String("app"), c.String("platform"), c.String("version"), naming.Kind(c.String("kind")))
				if err != nil {
					return err
				}
				if ref.Render {
					fmt.Println(catalog.AccessURL(naming.Page, ref.App, ref.Version))
					return nil
				}
				fmt.Println(ref.Location)
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.L.Fatal(err)
	}
}
