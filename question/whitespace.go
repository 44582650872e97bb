package question

import (
	"strings"
	"unicode"
)

// WhitespaceMode controls how a raw answer is normalized before default
// substitution, validation, and conversion.
type WhitespaceMode int

const (
	// Strip removes leading and trailing whitespace. This is the default.
	Strip WhitespaceMode = iota

	// None leaves the answer untouched.
	None

	// Chomp removes a single trailing line terminator, if present.
	Chomp

	// Collapse replaces every run of whitespace with a single space.
	Collapse

	// StripAndCollapse strips, then collapses.
	StripAndCollapse

	// ChompAndCollapse chomps, then collapses.
	ChompAndCollapse

	// Remove deletes every whitespace character.
	Remove
)

// whitespaceModeNames maps definition-file spellings to modes.
var whitespaceModeNames = map[string]WhitespaceMode{
	"strip":              Strip,
	"none":               None,
	"chomp":              Chomp,
	"collapse":           Collapse,
	"strip_and_collapse": StripAndCollapse,
	"chomp_and_collapse": ChompAndCollapse,
	"remove":             Remove,
}

// ParseWhitespaceMode resolves a mode by name ("strip", "chomp",
// "collapse", "strip_and_collapse", "chomp_and_collapse", "remove",
// "none"). The second result is false for unknown names.
func ParseWhitespaceMode(name string) (WhitespaceMode, bool) {
	mode, ok := whitespaceModeNames[strings.ToLower(strings.TrimSpace(name))]
	return mode, ok
}

// String returns the mode's definition-file spelling.
func (m WhitespaceMode) String() string {
	for name, mode := range whitespaceModeNames {
		if mode == m {
			return name
		}
	}
	return "none"
}

// RemoveWhitespace normalizes s according to mode. It is pure and total:
// unrecognized modes return s unchanged.
func RemoveWhitespace(s string, mode WhitespaceMode) string {
	switch mode {
	case Strip:
		return strings.TrimSpace(s)
	case Chomp:
		return chomp(s)
	case Collapse:
		return collapse(s)
	case StripAndCollapse:
		return collapse(strings.TrimSpace(s))
	case ChompAndCollapse:
		return collapse(chomp(s))
	case Remove:
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}
	return s
}

// chomp removes one trailing line terminator ("\r\n", "\n", or "\r").
// Other trailing whitespace is preserved.
func chomp(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s[:len(s)-1]
	}
	return s
}

// collapse replaces each maximal run of whitespace, wherever it appears,
// with a single space.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inRun = true
			continue
		}
		if inRun {
			b.WriteByte(' ')
			inRun = false
		}
		b.WriteRune(r)
	}
	if inRun {
		b.WriteByte(' ')
	}
	return b.String()
}
