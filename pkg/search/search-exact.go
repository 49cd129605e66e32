// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExactSearcher implements exact substring matching with case sensitivity option
type ExactSearcher struct {
	searchTerm    string
	caseSensitive bool
	lower         cases.Caser
}

// MakeExactSearcher creates a new exact match searcher
func MakeExactSearcher(searchTerm string, caseSensitive bool) *ExactSearcher {
	s := &ExactSearcher{
		searchTerm:    searchTerm,
		caseSensitive: caseSensitive,
	}
	if !caseSensitive {
		// language.Und keeps the mapping locale independent (no Turkish dotless i etc.)
		s.lower = cases.Lower(language.Und)
		s.searchTerm = s.lower.String(searchTerm)
	}
	return s
}

// Match checks if the line contains the search term
func (s *ExactSearcher) Match(line string) bool {
	if !s.caseSensitive {
		line = s.lower.String(line)
	}
	return strings.Contains(line, s.searchTerm)
}

// GetType returns the search type identifier
func (s *ExactSearcher) GetType() string {
	if s.caseSensitive {
		return SearchTypeExactCase
	}
	return SearchTypeExact
}
