package domain

import (
	"strings"
)

// NormalizeQuery prepares a search query for comparison and storage:
//   - trims leading/trailing whitespace
//   - compresses internal runs of spaces into one
//
// Case is preserved: history deduplication is case-sensitive by contract.
func NormalizeQuery(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitBulkLines splits a multi-line bulk request into normalized, non-empty
// query lines, preserving input order.
func SplitBulkLines(input string) []string {
	var lines []string
	for _, raw := range strings.Split(input, "\n") {
		if q := NormalizeQuery(raw); q != "" {
			lines = append(lines, q)
		}
	}
	return lines
}
