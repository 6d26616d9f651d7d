package decoder

import "strings"

// NormalizeMessage flattens multi-line output into a single status line:
// line breaks become spaces, whitespace runs collapse to one space, and
// leading/trailing whitespace is trimmed. Idempotent.
func NormalizeMessage(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.Join(strings.Fields(s), " ")
}
