// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logutil provides logging utilities for minigrep.
// Diagnostics go to stderr so stdout only carries search output.
package logutil

import (
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const DefaultLevel = logrus.WarnLevel

var (
	logger   = logrus.New()
	runEntry = logrus.NewEntry(logger)

	// loggedKeys tracks which keys have already been logged
	loggedKeys = make(map[string]struct{})
	// mutex protects access to the loggedKeys map
	mutex sync.Mutex
)

// Init configures the shared logger. levelName (usually from MINIGREP_LOGLEVEL) wins
// over verbose; an empty levelName means debug when verbose and warn otherwise.
// Every entry carries a "runid" field unique to this invocation.
func Init(out io.Writer, levelName string, verbose bool) error {
	level := DefaultLevel
	if verbose {
		level = logrus.DebugLevel
	}
	if levelName != "" {
		parsed, err := logrus.ParseLevel(levelName)
		if err != nil {
			return err
		}
		level = parsed
	}

	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isTerminal(out),
		FullTimestamp: true,
	})
	runEntry = logger.WithField("runid", uuid.New().String())
	return nil
}

// Logger returns the entry to log through for the current invocation
func Logger() *logrus.Entry {
	return runEntry
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// shouldLog checks if a message with the given key should be logged
// and marks the key as logged if it hasn't been seen before.
func shouldLog(key string) bool {
	mutex.Lock()
	defer mutex.Unlock()
	if _, exists := loggedKeys[key]; exists {
		return false
	}
	loggedKeys[key] = struct{}{}
	return true
}

// LogfOnce logs a warning with the given key only once.
// If a message with the same key has already been logged, this function does nothing.
func LogfOnce(key string, format string, args ...interface{}) {
	if !shouldLog(key) {
		return
	}
	runEntry.Warnf(format, args...)
}
