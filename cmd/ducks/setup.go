package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/core"
	"github.com/vovakirdan/dutiful-ducks/internal/storage"
)

// env is what every command needs: the loaded game config, the chosen
// difficulty and a logger.
type env struct {
	config     config.DucksConfig
	difficulty config.DifficultyPreset
	logger     *log.Logger
	closeLog   func()
}

// newLogger builds the logger from --log-level and --log-file. Without a log
// file, interactive commands discard logs so they do not tear the TUI.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// setup loads the configuration and the difficulty preset.
func setup(interactive bool) (*env, error) {
	logger, closeLog, err := newLogger(interactive)
	if err != nil {
		return nil, err
	}

	difficulty, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		closeLog()
		return nil, err
	}

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("config loaded", "source", source, "difficulty", difficulty)

	return &env{
		config:     cfg,
		difficulty: difficulty,
		logger:     logger,
		closeLog:   closeLog,
	}, nil
}

// presetConfig returns the configuration with the difficulty applied.
func (e *env) presetConfig() config.DucksConfig {
	cfg := e.config
	config.ApplyPreset(&cfg, e.difficulty)
	return cfg
}

// openStore opens the run history. Failure is logged and play continues.
func (e *env) openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		e.logger.Warn("could not open run history", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fatal prints err and exits with status 1.
func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", what, err)
	os.Exit(1)
}
