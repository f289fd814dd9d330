package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/among-the-stars/internal/config"
	"github.com/tomz197/among-the-stars/internal/logging"
	"github.com/tomz197/among-the-stars/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := logging.OpenFile(settings.LogFile, settings.LogLevel, "game")
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting local game", "seed", settings.Seed, "stars", settings.StarCount)
	err = loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Renderer:    lipgloss.NewRenderer(os.Stdout),
		Logger:      logger,
		Seed:        settings.Seed,
		StarCount:   settings.StarCount,
		StarWorkers: settings.StarWorkers,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		logger.Error("game stopped", "err", err)
	}
	return err
}
