package main

import (
	"math/rand"
	"os"
	"time"

	"hanabi-toolbox/internal/cli"
	"hanabi-toolbox/internal/config"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

var args struct {
	LogLevel string `name:"loglevel" help:"Set logging level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	Config   string `help:"Path to the game configuration" type:"path" default:"default_config.json"`
	Seed     int64  `help:"Random seed; 0 uses time seed" default:"0"`

	Play  PlayCmd  `cmd:"" help:"Play a hot-seat game with hidden hands and hint tracking"`
	Track TrackCmd `cmd:"" help:"Track your own hand in a real-life game"`
}

type PlayCmd struct {
	Players []string `arg:"" optional:"" help:"Player names; defaults to the configured number of players"`
}

type TrackCmd struct{}

func main() {
	ctx := kong.Parse(&args,
		kong.Name("hanabi"),
		kong.Description("Hanabi hand and hint-knowledge toolbox"),
		kong.UsageOnError(),
	)

	// 1. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(args.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 2. Load game configuration
	gameConfig, err := config.Load(args.Config)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 3. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("Seeded random source.")

	switch ctx.Command() {
	case "play", "play <players>":
		err = ui.RunPlay(gameConfig, args.Play.Players, rand.New(rand.NewSource(seed)))
	case "track":
		err = ui.RunTrack(gameConfig)
	default:
		log.Fatalf("unknown command: %s", ctx.Command())
	}
	if err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
