package markup

import "strings"

// escapable is the set of characters a backslash may escape. It matches the
// reserved punctuation of the markup grammar.
const escapable = "[]\\`*_{}<>()#+-.!|"

// Unescape replaces every backslash-escaped reserved character with the bare
// character. Backslashes before unreserved characters pass through
// unchanged.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && strings.IndexByte(escapable, s[i+1]) >= 0 {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
