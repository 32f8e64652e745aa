// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract resolves recipient names: it matches the configured
// patterns against a page's text and turns the chosen name into a
// filesystem-safe filename.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PhycomEspol/SSC/internal/pattern"
)

const (
	// Placeholder is substituted when sanitizing leaves nothing usable.
	Placeholder = "certificado_sin_nombre"

	// maxNameLen caps sanitized filenames, in runes.
	maxNameLen = 100

	// minNameLen is the shortest capture accepted as a real name, in runes.
	minNameLen = 3
)

var (
	// illegalChars matches characters that are not allowed in filenames.
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)

	// wsRun matches any run of whitespace, including line breaks.
	wsRun = regexp.MustCompile(`\s+`)
)

// Name tries each pattern in order against the page text and returns the
// first acceptable capture. The capture is truncated at its first embedded
// line break, then internal whitespace is collapsed to single spaces. A
// capture of 2 runes or fewer is treated as noise and the remaining patterns
// are tried. The second return is false when no pattern yields a name.
func Name(text string, pats []pattern.Pattern) (string, bool) {
	for _, p := range pats {
		m := p.Regexp.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		name := strings.TrimSpace(m[1])
		if i := strings.IndexByte(name, '\n'); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimSpace(wsRun.ReplaceAllString(name, " "))
		if utf8.RuneCountInString(name) >= minNameLen {
			return name, true
		}
	}
	return "", false
}

// Sanitize turns name into a string safe to use as a filename: reserved
// characters are stripped, whitespace runs collapse to single spaces, the
// result is trimmed and capped at 100 runes. An empty result becomes the
// fixed placeholder.
func Sanitize(name string) string {
	clean := illegalChars.ReplaceAllString(name, "")
	clean = wsRun.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)
	if runes := []rune(clean); len(runes) > maxNameLen {
		clean = string(runes[:maxNameLen])
	}
	if clean == "" {
		return Placeholder
	}
	return clean
}
