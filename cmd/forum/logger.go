package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func parseLevel(level string) (slog.Level, error) {
	parsed, ok := levels[level]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidLogLevel, level)
	}
	return parsed, nil
}

// newLogger writes text to a terminal and JSON to anything else.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	parsed, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: parsed}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

func initLogger(level string) error {
	logger, err := newLogger(os.Stdout, level)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
