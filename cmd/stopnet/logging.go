package main

import (
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// setupLogging builds the process logger: colourised output on stderr, plus a
// plain text copy appended to logFilePath when one is given.
func setupLogging() (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:     level,
			AddSource: false,
		}),
	}

	if logFilePath != "" {
		if err := os.MkdirAll(path.Dir(logFilePath), 0700); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFilePath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}
