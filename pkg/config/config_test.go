// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/outrigdev/minigrep/pkg/search"
)

func envMap(vars map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		val, ok := vars[key]
		return val, ok
	}
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if old, ok := os.LookupEnv(key); ok {
		os.Unsetenv(key)
		t.Cleanup(func() { os.Setenv(key, old) })
	}
}

func TestBuildTooFewArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "nil", args: nil},
		{name: "program only", args: []string{"one_arg_only"}},
		{name: "no file name", args: []string{"minigrep", "query"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Build(tt.args, envMap(nil))
			if !errors.Is(err, ErrNotEnoughArgs) {
				t.Fatalf("Build(%q) error = %v, want %v", tt.args, err, ErrNotEnoughArgs)
			}
			if cfg != nil {
				t.Errorf("Build(%q) returned config %+v on error", tt.args, cfg)
			}
		})
	}
}

func TestBuildParsesArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantQuery string
		wantFile  string
	}{
		{
			name:      "exactly three",
			args:      []string{"target/debug/minigrep", "to_parse", "file.txt"},
			wantQuery: "to_parse",
			wantFile:  "file.txt",
		},
		{
			name:      "extra args ignored",
			args:      []string{"minigrep", "needle", "haystack.txt", "extra"},
			wantQuery: "needle",
			wantFile:  "haystack.txt",
		},
		{
			name:      "empty query and spaces in file name",
			args:      []string{"minigrep", "", "my poem.txt"},
			wantQuery: "",
			wantFile:  "my poem.txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Build(tt.args, envMap(nil))
			if err != nil {
				t.Fatalf("Build(%q) unexpected error: %v", tt.args, err)
			}
			if cfg.Query != tt.wantQuery {
				t.Errorf("Query = %q, want %q", cfg.Query, tt.wantQuery)
			}
			if cfg.FileName != tt.wantFile {
				t.Errorf("FileName = %q, want %q", cfg.FileName, tt.wantFile)
			}
			if cfg.Mode != search.SearchTypeExact {
				t.Errorf("Mode = %q, want %q", cfg.Mode, search.SearchTypeExact)
			}
		})
	}
}

func TestBuildCaseSensitivityFromEnv(t *testing.T) {
	args := []string{"minigrep", "rUsT", "poem.txt"}
	tests := []struct {
		name              string
		env               map[string]string
		wantCaseSensitive bool
	}{
		{name: "absent", env: nil, wantCaseSensitive: true},
		{name: "present with value", env: map[string]string{"CASE_INSENSITIVE": "1"}, wantCaseSensitive: false},
		{name: "present but empty", env: map[string]string{"CASE_INSENSITIVE": ""}, wantCaseSensitive: false},
		{name: "present as false", env: map[string]string{"CASE_INSENSITIVE": "false"}, wantCaseSensitive: false},
		{name: "other variable", env: map[string]string{"CASE_SENSITIVE": "1"}, wantCaseSensitive: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Build(args, envMap(tt.env))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.CaseSensitive != tt.wantCaseSensitive {
				t.Errorf("CaseSensitive = %v, want %v", cfg.CaseSensitive, tt.wantCaseSensitive)
			}
		})
	}
}

func TestBuildFromEnv(t *testing.T) {
	args := []string{"minigrep", "duct", "poem.txt"}

	unsetEnv(t, "CASE_INSENSITIVE")
	cfg, err := BuildFromEnv(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.CaseSensitive {
		t.Error("expected case-sensitive mode without CASE_INSENSITIVE")
	}

	t.Setenv("CASE_INSENSITIVE", "")
	cfg, err = BuildFromEnv(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CaseSensitive {
		t.Error("expected case-insensitive mode with CASE_INSENSITIVE set to empty")
	}
}

func TestBuildOptions(t *testing.T) {
	args := []string{"minigrep", "duct", "poem.txt"}

	cfg, err := Build(args, envMap(nil), WithIgnoreCase(), WithMode("fzf"), WithLineNumbers(), WithColor(), WithQuiet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CaseSensitive {
		t.Error("WithIgnoreCase should force case-insensitive mode")
	}
	if cfg.Mode != search.SearchTypeFzf {
		t.Errorf("Mode = %q, want %q", cfg.Mode, search.SearchTypeFzf)
	}
	if !cfg.LineNumbers || !cfg.Color || !cfg.Quiet {
		t.Errorf("expected LineNumbers, Color and Quiet to be set, got %+v", cfg)
	}

	cfg, err = Build(args, envMap(nil), WithMode(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != search.SearchTypeExact {
		t.Errorf("empty mode should keep %q, got %q", search.SearchTypeExact, cfg.Mode)
	}

	_, err = Build(args, envMap(nil), WithMode("regexp"))
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSearchType(t *testing.T) {
	tests := []struct {
		mode          string
		caseSensitive bool
		want          string
	}{
		{mode: search.SearchTypeExact, caseSensitive: true, want: search.SearchTypeExactCase},
		{mode: search.SearchTypeExact, caseSensitive: false, want: search.SearchTypeExact},
		{mode: search.SearchTypeFzf, caseSensitive: true, want: search.SearchTypeFzfCase},
		{mode: search.SearchTypeFzf, caseSensitive: false, want: search.SearchTypeFzf},
	}
	for _, tt := range tests {
		cfg := &Config{Mode: tt.mode, CaseSensitive: tt.caseSensitive}
		if got := cfg.SearchType(); got != tt.want {
			t.Errorf("SearchType(mode=%q, caseSensitive=%v) = %q, want %q", tt.mode, tt.caseSensitive, got, tt.want)
		}
	}
}

func TestEnvFileLookup(t *testing.T) {
	unsetEnv(t, "CASE_INSENSITIVE")
	t.Setenv("MINIGREP_TEST_SHADOWED", "from-process")

	path := filepath.Join(t.TempDir(), "test.env")
	contents := "CASE_INSENSITIVE=yes\nMINIGREP_TEST_SHADOWED=from-file\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	lookup, err := EnvFileLookup(path)
	if err != nil {
		t.Fatalf("EnvFileLookup() error = %v", err)
	}
	if val, ok := lookup("CASE_INSENSITIVE"); !ok || val != "yes" {
		t.Errorf("lookup(CASE_INSENSITIVE) = %q, %v, want %q, true", val, ok, "yes")
	}
	if val, _ := lookup("MINIGREP_TEST_SHADOWED"); val != "from-process" {
		t.Errorf("process environment should win, got %q", val)
	}
	if _, ok := os.LookupEnv("CASE_INSENSITIVE"); ok {
		t.Error("EnvFileLookup must not modify the process environment")
	}

	cfg, err := Build([]string{"minigrep", "rust", "poem.txt"}, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CaseSensitive {
		t.Error("CASE_INSENSITIVE from the env file should select case-insensitive mode")
	}
}

func TestEnvFileLookupMissingFile(t *testing.T) {
	_, err := EnvFileLookup(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit env file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestEnvFileLookupDiscovery(t *testing.T) {
	unsetEnv(t, "CASE_INSENSITIVE")

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example\n"), 0644); err != nil {
		t.Fatalf("writing go.mod: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("CASE_INSENSITIVE=1\n"), 0644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	sub := filepath.Join(root, "docs", "poems")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("creating subdir: %v", err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(sub); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })

	lookup, err := EnvFileLookup("")
	if err != nil {
		t.Fatalf("EnvFileLookup(\"\") error = %v", err)
	}
	if _, ok := lookup("CASE_INSENSITIVE"); ok {
		t.Error("without an env file only the process environment may be consulted")
	}

	lookup, err = EnvFileLookup("auto")
	if err != nil {
		t.Fatalf("EnvFileLookup(auto) error = %v", err)
	}
	if _, ok := lookup("CASE_INSENSITIVE"); !ok {
		t.Error("expected CASE_INSENSITIVE from the discovered .env file")
	}
}

func TestEnvFileLookupIgnoresMalformedDefaultFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("this is not dotenv\n"), 0644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })

	if _, err := EnvFileLookup(""); err != nil {
		t.Errorf("EnvFileLookup(\"\") must not read .env, got %v", err)
	}
}
