// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package grep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/outrigdev/minigrep/pkg/base"
	"github.com/outrigdev/minigrep/pkg/config"
	"github.com/outrigdev/minigrep/pkg/logutil"
	"github.com/outrigdev/minigrep/pkg/search"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrReadFile = errors.New("cannot read file")
	ErrNotText  = errors.New("file is not valid text")
)

// ReadContents loads the whole file into memory
func ReadContents(fileName string) (string, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrNotText, fileName)
	}
	return string(data), nil
}

// FindMatches runs the searcher selected by cfg over contents
func FindMatches(cfg *config.Config, contents string) ([]search.Match, error) {
	searcher, err := search.GetSearcher(cfg.SearchType(), cfg.Query)
	if err != nil {
		return nil, err
	}
	return search.Filter(searcher, contents), nil
}

// Run reads cfg.FileName, searches it and writes the report to out.
// Nothing is written unless the file was read successfully.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	log := logutil.Logger().WithField("file", cfg.FileName)
	if err := ctx.Err(); err != nil {
		return err
	}
	contents, err := ReadContents(cfg.FileName)
	if err != nil {
		return err
	}
	log.Debugf("read %d bytes", len(contents))

	matches, err := FindMatches(cfg, contents)
	if err != nil {
		return err
	}
	log.WithField("searchtype", cfg.SearchType()).Debugf("%d matching lines", len(matches))

	if err := ctx.Err(); err != nil {
		return err
	}
	return PrintReport(out, cfg, contents, matches)
}

// PrintReport writes the file contents followed by the matching lines
func PrintReport(out io.Writer, cfg *config.Config, contents string, matches []search.Match) error {
	var sb strings.Builder
	if !cfg.Quiet {
		sb.WriteString(base.ContentsHeader)
		sb.WriteString("\n")
		sb.WriteString(contents)
		sb.WriteString("\n\n")
	}
	sb.WriteString(base.MatchesHeader)
	sb.WriteString("\n")

	paint := makePainter(cfg)
	for _, m := range matches {
		if cfg.LineNumbers {
			fmt.Fprintf(&sb, "%d:", m.LineNum)
		}
		sb.WriteString(paint(m.Line))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

func makePainter(cfg *config.Config) func(string) string {
	if !cfg.Color || cfg.Query == "" || cfg.Mode == search.SearchTypeFzf {
		return func(line string) string { return line }
	}
	c := color.New(color.FgRed, color.Bold)
	// --color is an explicit request, honour it even when stdout is not a terminal
	c.EnableColor()
	return func(line string) string {
		return highlight(line, cfg.Query, cfg.CaseSensitive, c.Sprint)
	}
}

// highlight wraps every non-overlapping occurrence of query in line with paint.
// Without case sensitivity a span is an occurrence when its lowercase form equals the
// lowercased query, the same folding the exact searcher matches with.
func highlight(line string, query string, caseSensitive bool, paint func(a ...interface{}) string) string {
	if query == "" {
		return line
	}
	if caseSensitive {
		return strings.ReplaceAll(line, query, paint(query))
	}
	lower := cases.Lower(language.Und)
	lowerQuery := lower.String(query)
	var sb strings.Builder
	for pos := 0; pos < len(line); {
		if end := foldedSpanEnd(lower, line, pos, lowerQuery); end != -1 {
			sb.WriteString(paint(line[pos:end]))
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[pos:])
		sb.WriteString(line[pos : pos+size])
		pos += size
	}
	return sb.String()
}

// foldedSpanEnd returns the end of the shortest span starting at pos whose lowercase
// form is lowerQuery, or -1 if there is none
func foldedSpanEnd(lower cases.Caser, line string, pos int, lowerQuery string) int {
	for end := pos; end < len(line); {
		_, size := utf8.DecodeRuneInString(line[end:])
		end += size
		folded := lower.String(line[pos:end])
		if folded == lowerQuery {
			return end
		}
		if !strings.HasPrefix(lowerQuery, folded) {
			return -1
		}
	}
	return -1
}
