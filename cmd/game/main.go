package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/loop"
	"github.com/tomz197/shmup/internal/loop/client"
	"github.com/tomz197/shmup/internal/sound"
	"github.com/tomz197/shmup/internal/sound/speaker"
	"golang.org/x/term"
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

	if err := run(cfg, logger); err != nil {
		logger.Fatal("game error", "err", err)
	}
}

// run plays one local game. Every resource it acquires is released before it
// returns, so the caller may exit on error.
func run(cfg *config.Config, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	var audio sound.Sink = sound.Mute{}
	if cfg.Audio.Enabled {
		spk, err := speaker.New(cfg.Audio.Volume)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer spk.Close()
			audio = spk
		}
	}

	// Session logs would draw over the game unless stderr is redirected
	sessionLogger := log.New(io.Discard)
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		sessionLogger = logger
	}

	state := loop.NewState(loop.Options{
		Rand:   loop.NewRand(cfg.Seed),
		Audio:  audio,
		Logger: sessionLogger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	c := client.New(state, bufio.NewReader(os.Stdin), os.Stdout, client.Options{
		Logger: sessionLogger,
	})
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Debug("bye", "high_score", state.HighScore)
	return nil
}
