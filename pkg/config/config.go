// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/outrigdev/minigrep/pkg/base"
	"github.com/outrigdev/minigrep/pkg/search"
)

var (
	ErrNotEnoughArgs = errors.New("not enough arguments")
	ErrUnknownMode   = errors.New("unknown search mode")
)

// LookupEnvFunc has the same contract as os.LookupEnv
type LookupEnvFunc func(key string) (string, bool)

// Config is built once per invocation and never modified afterwards
type Config struct {
	Query    string
	FileName string

	// CaseSensitive is false when CASE_INSENSITIVE is present in the environment
	CaseSensitive bool

	// Mode is the base search type, "exact" or "fzf"
	Mode        string
	LineNumbers bool
	Color       bool
	Quiet       bool
}

type Option func(*Config) error

// WithIgnoreCase forces case-insensitive matching regardless of the environment
func WithIgnoreCase() Option {
	return func(cfg *Config) error {
		cfg.CaseSensitive = false
		return nil
	}
}

// WithMode selects the base search type; an empty mode keeps the default
func WithMode(mode string) Option {
	return func(cfg *Config) error {
		if mode == "" {
			return nil
		}
		if mode != search.SearchTypeExact && mode != search.SearchTypeFzf {
			return fmt.Errorf("%w %q (expected %q or %q)", ErrUnknownMode, mode, search.SearchTypeExact, search.SearchTypeFzf)
		}
		cfg.Mode = mode
		return nil
	}
}

func WithLineNumbers() Option {
	return func(cfg *Config) error {
		cfg.LineNumbers = true
		return nil
	}
}

func WithColor() Option {
	return func(cfg *Config) error {
		cfg.Color = true
		return nil
	}
}

func WithQuiet() Option {
	return func(cfg *Config) error {
		cfg.Quiet = true
		return nil
	}
}

// Build creates a Config from the raw process arguments (args[0] is the program path,
// followed by the query and the file name). lookupEnv is consulted exactly once for
// CASE_INSENSITIVE; only its presence matters, not its value.
func Build(args []string, lookupEnv LookupEnvFunc, opts ...Option) (*Config, error) {
	if len(args) < 3 {
		return nil, ErrNotEnoughArgs
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	_, caseInsensitive := lookupEnv(base.CaseInsensitiveEnvName)
	cfg := &Config{
		Query:         args[1],
		FileName:      args[2],
		CaseSensitive: !caseInsensitive,
		Mode:          search.SearchTypeExact,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// BuildFromEnv is Build over the process environment
func BuildFromEnv(args []string, opts ...Option) (*Config, error) {
	return Build(args, os.LookupEnv, opts...)
}

// SearchType returns the searcher type for the configured mode and case sensitivity
func (cfg *Config) SearchType() string {
	switch cfg.Mode {
	case search.SearchTypeFzf:
		if cfg.CaseSensitive {
			return search.SearchTypeFzfCase
		}
		return search.SearchTypeFzf
	default:
		if cfg.CaseSensitive {
			return search.SearchTypeExactCase
		}
		return search.SearchTypeExact
	}
}
