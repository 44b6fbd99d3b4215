// Package strings holds small helpers for parsing list-valued settings.
package strings

import (
	"strings"
)

// SplitUnique splits raw on commas and returns the trimmed, non-empty parts
// with duplicates removed. Order of first appearance is kept. A blank input
// yields nil.
//
//	SplitUnique(" https://a, https://b,https://a ,")
//	// []string{"https://a", "https://b"}
func SplitUnique(raw string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
