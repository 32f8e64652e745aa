// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern loads the ordered list of regular expressions used to
// locate the recipient name on a certificate page. Patterns come from a
// plain-text file, one expression per line; blank lines and #-comments are
// ignored. When the file is absent a built-in set covering common Spanish
// certificate phrasings is used instead.
package pattern

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// DefaultFile is the pattern file looked up when no path is configured.
const DefaultFile = "patrones.txt"

// defaultSources is the built-in pattern set. Each expression captures the
// recipient name in group 1. Order matters: the first match wins.
var defaultSources = []string{
	`Se otorga el presente reconocimiento a:\s*\n?\s*(.+?)(?:\n|Por su)`,
	`[Oo]torga(?:do)? a:\s*(.+?)(?:\n|$)`,
	`[Cc]ertifica(?:do)? a:\s*(.+?)(?:\n|$)`,
}

// Pattern pairs a search expression with its compiled form. Source keeps the
// expression as written so it can be displayed and reported.
type Pattern struct {
	Source string
	Regexp *regexp.Regexp
}

// Compile builds a Pattern from src. Matching is case-insensitive and `.`
// matches newlines, so a single expression can span line breaks in the
// extracted page text.
func Compile(src string) (Pattern, error) {
	re, err := regexp.Compile("(?is)" + src)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{Source: src, Regexp: re}, nil
}

// Defaults returns the built-in pattern set.
func Defaults() []Pattern {
	pats := make([]Pattern, 0, len(defaultSources))
	for _, src := range defaultSources {
		p, err := Compile(src)
		if err != nil {
			// The built-in sources are fixed; a compile failure here is a bug.
			panic(fmt.Sprintf("invalid built-in pattern %q: %v", src, err))
		}
		pats = append(pats, p)
	}
	return pats
}

// Load reads patterns from path. A missing file produces a warning on w and
// the built-in defaults. An expression that fails to compile is reported on
// w and skipped; it never aborts the load.
func Load(path string, w io.Writer) []Pattern {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: pattern file not found: %s (using built-in patterns)\n", path)
			return Defaults()
		}
		fmt.Fprintf(w, "warning: could not read pattern file %s: %v\n", path, err)
		return []Pattern{}
	}

	pats := []Pattern{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := Compile(line)
		if err != nil {
			fmt.Fprintf(w, "warning: skipping invalid pattern %q: %v\n", line, err)
			continue
		}
		pats = append(pats, p)
	}
	return pats
}
