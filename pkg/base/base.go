// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package base

const MinigrepVersion = "v0.1.0"

// Environment variables
const CaseInsensitiveEnvName = "CASE_INSENSITIVE"
const LogLevelEnvName = "MINIGREP_LOGLEVEL"

// Default dotenv file, looked up from the working directory towards the project root
const DefaultEnvFileName = ".env"

// Value of --env-file that enables the lookup of DefaultEnvFileName
const AutoEnvFile = "auto"

// Output headers
const ContentsHeader = "With text:"
const MatchesHeader = "Matching lines:"
