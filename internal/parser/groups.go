// Package parser transforms flat token sequences into an ancestor-closed,
// deterministically ordered set of filesystem paths.
package parser

// Tokens with reserved meaning inside a token sequence.
const (
	// GroupSeparatorToken ends the current group and starts a new one.
	GroupSeparatorToken = ":"
	// AscendToken moves the directory cursor up one level.
	AscendToken = ".."
)

// SplitGroups splits a flat token sequence into groups on the separator
// token. The separator itself is discarded. Empty accumulators are dropped,
// so leading, trailing, and adjacent separators never produce an empty group.
func SplitGroups(tokens []string) [][]string {
	var groups [][]string
	var currentGroup []string
	for _, token := range tokens {
		if token == GroupSeparatorToken {
			if len(currentGroup) > 0 {
				groups = append(groups, currentGroup)
				currentGroup = nil
			}
			continue
		}
		currentGroup = append(currentGroup, token)
	}
	if len(currentGroup) > 0 {
		groups = append(groups, currentGroup)
	}
	return groups
}
