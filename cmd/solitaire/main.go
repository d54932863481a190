package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/solitaire/internal/config"
	"github.com/jason-s-yu/solitaire/internal/game"
	"github.com/jason-s-yu/solitaire/internal/shell"
	"github.com/sirupsen/logrus"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [klondike|spider]\n", os.Args[0])
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}
	if flag.NArg() > 0 {
		if cfg, err = cfg.WithVariant(flag.Arg(0)); err != nil {
			logrus.WithError(err).Fatal("Invalid variant argument")
		}
	}

	logger := cfg.NewLogger(os.Stderr)
	seed := cfg.SeedAt(time.Now())
	logger.WithFields(logrus.Fields{
		"variant": cfg.Variant,
		"seed":    seed,
		"assets":  cfg.AssetsDir,
	}).Info("Starting solitaire")

	assets, err := shell.LoadAssets(cfg.AssetsDir)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load assets")
	}

	session, err := game.NewSession(game.Options{
		Variant:      cfg.Variant,
		SpiderColors: cfg.SpiderColors,
		RNG:          rand.New(rand.NewSource(seed)),
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to start session")
	}
	session.OnGameEnd = func(_ uuid.UUID, v game.Variant, played time.Duration, cheated bool) {
		logger.WithFields(logrus.Fields{
			"variant": v,
			"played":  played.Round(time.Second).String(),
			"cheated": cheated,
			"stats":   fmt.Sprintf("%+v", session.Stats()),
		}).Info("Congratulations")
	}

	app := shell.NewApp(session, assets, logger)
	app.Debug = cfg.Debug
	if err := app.Run(fmt.Sprintf("Solitaire - %s", cfg.Variant), cfg.Scale); err != nil {
		logger.WithError(err).Fatal("Window closed with an error")
	}
	logger.WithField("stats", fmt.Sprintf("%+v", session.Stats())).Info("Goodbye")
}
