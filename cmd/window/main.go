package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/loop"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/sound"
	"github.com/tomz197/shmup/internal/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shmup",
	})

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	logger.SetLevel(cfg.Level())

	var audio sound.Sink = sound.Mute{}
	if cfg.Audio.Enabled {
		audio = window.NewAudio(cfg.Audio.Volume)
	}

	state := loop.NewState(loop.Options{
		Rand:   loop.NewRand(cfg.Seed),
		Audio:  audio,
		Logger: logger,
	})

	ebiten.SetWindowSize(object.ArenaWidth*cfg.Window.Scale, object.ArenaHeight*cfg.Window.Scale)
	ebiten.SetWindowTitle("Gradius Clone")
	ebiten.SetTPS(loop.TargetFPS)

	if err := ebiten.RunGame(window.New(state)); err != nil {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("bye", "high_score", state.HighScore)
}
