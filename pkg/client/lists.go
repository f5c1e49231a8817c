package client

import "strings"

// SplitList turns form text like "chess, reading" into ["chess" "reading"].
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList is the inverse of SplitList for items without commas.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
