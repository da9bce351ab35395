// Package sanitize normalizes untrusted text before validation and storage.
//
// Clean reduces a string to plain text: markup is stripped (not escaped), so
// applying Clean to already-clean text is a no-op.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// rune limits for the bounded entry fields
const (
	MaxNameLen     = 50
	MaxCommentsLen = 1000
)

var policy = bluemonday.StrictPolicy()

// Clean sanitizes a single string. Steps, in order: trim surrounding
// whitespace, strip HTML/script markup, drop NUL bytes, normalize to NFC,
// drop the remaining C0/C1 control characters (0x00–0x1F, 0x7F–0x9F).
func Clean(s string) string {
	s = strings.TrimSpace(s)

	// StrictPolicy removes every tag, including script/style contents. It
	// entity-escapes the remainder, so unescape back to plain text. Because
	// unescaping can reveal tags that arrived entity-encoded, repeat until
	// the string stops changing. Each pass peels one encoding layer, so the
	// loop terminates for any input.
	for prev := ""; s != prev; {
		prev = s
		s = html.UnescapeString(policy.Sanitize(s))
	}

	s = strings.ReplaceAll(s, "\x00", "")
	s = norm.NFC.String(s)

	s = strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)

	return s
}

// Truncate caps s at max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
