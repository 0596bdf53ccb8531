package main

import (
	"io"
	"log/slog"
	"os"
)

// log is the CLI's structured logger. Discards everything unless -v is
// passed, at which point initLogger upgrades it to a text handler on
// stderr — grounded on the teacher's cmd/hiveexplorer/logger package
// (global *slog.Logger, discard-by-default, upgraded by an explicit Init
// call from main before any other logging happens).
var log = slog.New(slog.NewTextHandler(io.Discard, nil))

func initLogger() {
	if !verbose {
		return
	}
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
