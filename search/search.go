// Package search selects the lines of a text that contain a query.
//
// Both policies keep the original line order and return whole lines exactly as
// they appear in the input, minus their line terminator. An empty query
// matches every line.
//
// Case-insensitive matching lowercases rune by rune with strings.ToLower. It
// has no context-sensitive rules, so a word-final capital sigma becomes σ
// rather than ς, and İ (U+0130) becomes a plain i rather than i followed by a
// combining dot. Text relying on those special cases may match differently
// from a full Unicode lowercasing.
package search

import (
	"strings"

	"github.com/samber/lo"
)

// Func is the signature shared by CaseSensitive and CaseInsensitive.
type Func func(query, contents string) []string

// Lines splits contents on "\n", dropping a "\r" that directly precedes it.
// A trailing newline does not produce an empty final line.
func Lines(contents string) []string {
	var lines []string
	for line := range strings.Lines(contents) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}

// CaseSensitive returns the lines of contents containing query.
func CaseSensitive(query, contents string) []string {
	return lo.Filter(Lines(contents), func(line string, _ int) bool {
		return strings.Contains(line, query)
	})
}

// CaseInsensitive returns the lines of contents containing query, comparing
// the lowercase forms of each. Lowercasing uses the simple Unicode mapping and
// is applied to the query and to every line separately.
func CaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	return lo.Filter(Lines(contents), func(line string, _ int) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

// For picks the policy for the ignoreCase setting.
func For(ignoreCase bool) Func {
	if ignoreCase {
		return CaseInsensitive
	}
	return CaseSensitive
}
