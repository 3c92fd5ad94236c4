package main

import (
	"flag"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/transforms/assets"
	"github.com/oliverbestmann/transforms/config"
	"github.com/oliverbestmann/transforms/storyboard"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"os"
	"time"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	storyboardPath := flag.String("storyboard", "", "storyboard to play, overrides the config")
	profileCPU := flag.Bool("profile", false, "write a cpu profile, same as profile: true in the config")
	initConfig := flag.String("init-config", "", "write the default config to this path and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *initConfig != "" {
		if err := os.WriteFile(*initConfig, assets.DefaultConfig(), 0644); err != nil {
			log.Fatal().Err(err).Msg("Failed to write config")
		}

		log.Info().Str("path", *initConfig).Msg("Default config written")
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		if c, err := config.Load(*configPath); err != nil {
			log.Warn().Err(err).Str("path", *configPath).Msg("Config load failed, using defaults")
		} else {
			cfg = c
		}
	}

	zerolog.SetGlobalLevel(cfg.Level())

	if *storyboardPath != "" {
		cfg.Storyboard = *storyboardPath
	}

	if cfg.Profile || *profileCPU {
		defer ProfileStart()()
	}

	sb, err := loadStoryboard(cfg.Storyboard)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load storyboard")
	}

	if cfg.RetainCompleted {
		sb.Retain = true
	}

	game, err := NewGame(cfg, sb)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	width := int(float64(cfg.Window.Width) * cfg.Window.Scale)
	height := int(float64(cfg.Window.Height) * cfg.Window.Scale)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("Game loop failed")
	}
}

func loadStoryboard(path string) (*storyboard.Storyboard, error) {
	if path == "" {
		return storyboard.Parse(assets.Demo())
	}

	return storyboard.Load(path)
}
