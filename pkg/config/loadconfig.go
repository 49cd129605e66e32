// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/outrigdev/minigrep/pkg/base"
	"github.com/outrigdev/minigrep/pkg/utilfn"
)

// EnvFileLookup returns a LookupEnvFunc that consults the process environment first
// and then the variables of a dotenv file. The process environment is not modified.
// With an empty path no file is read and the process environment alone is used.
// AutoEnvFile searches for the default file from the working directory upwards; not
// finding one is not an error. Any other path must exist.
func EnvFileLookup(path string) (LookupEnvFunc, error) {
	if path == "" {
		return os.LookupEnv, nil
	}
	if path == base.AutoEnvFile {
		found, err := findEnvFileInParents()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return os.LookupEnv, nil
		}
		path = found
	} else {
		path = utilfn.ExpandHomeDir(path)
	}

	fileVars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return chainLookup(os.LookupEnv, fileVars), nil
}

func chainLookup(primary LookupEnvFunc, fallback map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		if val, ok := primary(key); ok {
			return val, true
		}
		val, ok := fallback[key]
		return val, ok
	}
}

func findEnvFileInParents() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	homeDir, _ := os.UserHomeDir()

	for {
		path := filepath.Join(dir, base.DefaultEnvFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}

		// Stop at project root markers
		if hasProjectRoot(dir) {
			break
		}

		// Stop at home directory
		if homeDir != "" && dir == homeDir {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir || parent == "/" {
			break
		}

		dir = parent
	}

	return "", nil
}

func hasProjectRoot(dir string) bool {
	markers := []string{".git", "go.mod"}
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
