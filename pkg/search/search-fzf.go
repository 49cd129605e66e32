// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FzfSearcher implements fuzzy matching using the fzf algorithm
type FzfSearcher struct {
	searchTerm    string
	caseSensitive bool
	pattern       []rune
	slab          *util.Slab
}

// MakeFzfSearcher creates a new FZF searcher
func MakeFzfSearcher(searchTerm string, caseSensitive bool) *FzfSearcher {
	// fzf folds the text itself but expects an already lowercased pattern
	if !caseSensitive {
		searchTerm = cases.Lower(language.Und).String(searchTerm)
	}
	return &FzfSearcher{
		searchTerm:    searchTerm,
		caseSensitive: caseSensitive,
		pattern:       []rune(searchTerm),
		slab:          util.MakeSlab(64, 4096),
	}
}

// Match checks if the line matches the fuzzy search pattern
func (s *FzfSearcher) Match(line string) bool {
	if len(s.pattern) == 0 {
		return true
	}
	chars := util.ToChars([]byte(line))
	result, _ := algo.FuzzyMatchV2(s.caseSensitive, false, true, &chars, s.pattern, false, s.slab)
	return result.Start >= 0
}

// GetType returns the search type identifier
func (s *FzfSearcher) GetType() string {
	if s.caseSensitive {
		return SearchTypeFzfCase
	}
	return SearchTypeFzf
}
