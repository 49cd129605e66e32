// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package utilfn

import (
	"strings"
)

// SplitLines splits contents on '\n'. A final newline does not produce a trailing
// empty line and a trailing '\r' is dropped from each line. The returned lines are
// substrings of contents (no copies are made).
func SplitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	var pos int
	for pos < len(contents) {
		nlIdx := strings.IndexByte(contents[pos:], '\n')
		if nlIdx == -1 {
			lines = append(lines, trimCR(contents[pos:]))
			break
		}
		lines = append(lines, trimCR(contents[pos:pos+nlIdx]))
		pos = pos + nlIdx + 1
	}
	return lines
}

func trimCR(line string) string {
	if len(line) > 0 && line[len(line)-1] == '\r' {
		return line[:len(line)-1]
	}
	return line
}
