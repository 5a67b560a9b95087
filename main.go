package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/relcat/relcat/config"
	"github.com/relcat/relcat/log"
	"github.com/relcat/relcat/revision"
	"github.com/relcat/relcat/server"
)

func main() {

	var configPath string
	var listen string
	var filesDir string
	var title string
	var latestByVersion bool
	var verbose bool

	app := cli.NewApp()
	app.Name = "relcat"
	app.Usage = "Serve a directory of releases as a versioned catalog"
	app.Version = revision.Short()

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config, c",
			Usage:       "YAML configuration file",
			Destination: &configPath,
		}, cli.StringFlag{
			Name:        "listen, l",
			Usage:       "Address to listen on",
			Destination: &listen,
		}, cli.StringFlag{
			Name:        "files, f",
			Usage:       "Release directory",
			Destination: &filesDir,
		}, cli.StringFlag{
			Name:        "title",
			Usage:       "Title prefix of release pages",
			Destination: &title,
		}, cli.BoolFlag{
			Name:        "latest-by-version",
			Usage:       "Pick the highest version as latest instead of the last one listed",
			Destination: &latestByVersion,
		}, cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Full debug log",
			Destination: &verbose,
		},
	}

	app.Action = func(c *cli.Context) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if c.IsSet("listen") {
			cfg.Listen = listen
		}
		if c.IsSet("files") {
			cfg.FilesDir = filesDir
		}
		if c.IsSet("title") {
			cfg.Title = title
		}
		if latestByVersion {
			cfg.LatestByVersion = true
		}
		if verbose {
			cfg.LogLevel = logrus.DebugLevel.String()
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := log.Configure(cfg.LogLevel, nil); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = log.WithFields(ctx, logrus.Fields{"files": cfg.FilesDir})

		h := server.NewHandler(server.HandlerConfig{
			Files:           os.DirFS(cfg.FilesDir),
			Title:           cfg.Title,
			LatestByVersion: cfg.LatestByVersion,
		})
		return server.ListenAndServe(ctx, cfg.Listen, h.Routes())
	}

	err := app.Run(os.Args)
	if err != nil {
		log.L.Fatal(err)
	}
}
