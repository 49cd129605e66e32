// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"fmt"

	"github.com/outrigdev/minigrep/pkg/utilfn"
)

const (
	SearchTypeExact     = "exact"
	SearchTypeExactCase = "exactcase"
	SearchTypeFzf       = "fzf"
	SearchTypeFzfCase   = "fzfcase"
)

// Searcher defines the interface for different line matching strategies
type Searcher interface {
	// Match checks if a line matches the search criteria
	Match(line string) bool

	// GetType returns the search type identifier
	GetType() string
}

// Match is a matching line and its 1-based line number.
// Line is a substring of the searched contents, not a copy.
type Match struct {
	LineNum int
	Line    string
}

// GetSearcher returns the appropriate searcher based on the search type
func GetSearcher(searchType string, searchTerm string) (Searcher, error) {
	switch searchType {
	case SearchTypeExact:
		return MakeExactSearcher(searchTerm, false), nil
	case SearchTypeExactCase:
		return MakeExactSearcher(searchTerm, true), nil
	case SearchTypeFzf:
		return MakeFzfSearcher(searchTerm, false), nil
	case SearchTypeFzfCase:
		return MakeFzfSearcher(searchTerm, true), nil
	default:
		return nil, fmt.Errorf("unknown search type %q", searchType)
	}
}

// Filter returns, in order, every line of contents accepted by the searcher
func Filter(s Searcher, contents string) []Match {
	var matches []Match
	for idx, line := range utilfn.SplitLines(contents) {
		if s.Match(line) {
			matches = append(matches, Match{LineNum: idx + 1, Line: line})
		}
	}
	return matches
}

// Lines drops the line numbers from a match sequence
func Lines(matches []Match) []string {
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, m.Line)
	}
	return lines
}

// Search returns the lines of contents that contain query, comparing bytes as-is
func Search(query string, contents string) []string {
	return Lines(Filter(MakeExactSearcher(query, true), contents))
}

// SearchCaseInsensitive returns the lines of contents that contain query when both
// are lowercased. Lines are returned with their original casing.
func SearchCaseInsensitive(query string, contents string) []string {
	return Lines(Filter(MakeExactSearcher(query, false), contents))
}
