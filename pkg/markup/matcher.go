package markup

import "strings"

// matcherID identifies one of the fixed lexical matchers. Declaration order
// is the priority order used to break ties between matches at the same
// offset.
type matcherID int

const (
	matchEmphasisStart matcherID = iota
	matchHeaderStart
	matchBulletItem
	matchNumericItem
	matchImage
	matchLink
	matchEmphasisEnd
	matchLineEnd
	matcherCount
)

// match is one found occurrence: the matched span [start, end) plus the
// captures the matcher produced. The text between the previously consumed
// position and start is the pre-match gap.
type match struct {
	start, end int

	// n is the emphasis run length, header level, or leading-space count,
	// depending on the matcher.
	n int

	// text and url are the captures of the image and link matchers.
	text, url string
}

// finder locates the first occurrence of a matcher's pattern at or after
// from. Finders are monotonic: the returned match always starts at or after
// from, and a match found from an earlier position stays the first
// occurrence as long as its start has not been consumed.
type finder func(src string, from int) (match, bool)

var finders = [matcherCount]finder{
	matchEmphasisStart: findEmphasisStart,
	matchHeaderStart:   findHeaderStart,
	matchBulletItem:    findBulletItem,
	matchNumericItem:   findNumericItem,
	matchImage:         findImage,
	matchLink:          findLink,
	matchEmphasisEnd:   findEmphasisEnd,
	matchLineEnd:       findLineEnd,
}

func escapedAt(src string, i int) bool {
	return i > 0 && src[i-1] == '\\'
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// starRun counts consecutive '*' bytes starting at i.
func starRun(src string, i int) int {
	n := 0
	for i+n < len(src) && src[i+n] == '*' {
		n++
	}
	return n
}

// findEmphasisStart matches 1-3 '*' not preceded by a backslash and not
// followed by another '*' or whitespace. Shorter runs are tried when a
// longer one is rejected by the lookahead, mirroring regex backtracking.
func findEmphasisStart(src string, from int) (match, bool) {
	for i := from; i < len(src); i++ {
		if src[i] != '*' || escapedAt(src, i) {
			continue
		}
		run := starRun(src, i)
		if run > 3 {
			run = 3
		}
		for n := run; n >= 1; n-- {
			after := i + n
			if after < len(src) && (src[after] == '*' || isSpaceByte(src[after])) {
				continue
			}
			return match{start: i, end: i + n, n: n}, true
		}
	}
	return match{}, false
}

// findEmphasisEnd matches 1-3 '*' not preceded by a backslash or whitespace.
func findEmphasisEnd(src string, from int) (match, bool) {
	for i := from; i < len(src); i++ {
		if src[i] != '*' {
			continue
		}
		if i > 0 && (src[i-1] == '\\' || isSpaceByte(src[i-1])) {
			continue
		}
		run := starRun(src, i)
		if run > 3 {
			run = 3
		}
		return match{start: i, end: i + run, n: run}, true
	}
	return match{}, false
}

// nextLineStart returns the first line-start position at or after from, or
// -1 when none remains.
func nextLineStart(src string, from int) int {
	if from == 0 {
		return 0
	}
	if src[from-1] == '\n' {
		return from
	}
	idx := strings.IndexByte(src[from:], '\n')
	if idx < 0 {
		return -1
	}
	return from + idx + 1
}

// advanceLine returns the start of the line after ls, or -1.
func advanceLine(src string, ls int) int {
	idx := strings.IndexByte(src[ls:], '\n')
	if idx < 0 {
		return -1
	}
	return ls + idx + 1
}

// findHeaderStart matches a line start, 0-3 spaces, 1-6 '#', then a space.
// The matched span covers the whole prefix including the trailing space.
func findHeaderStart(src string, from int) (match, bool) {
	for ls := nextLineStart(src, from); ls >= 0; ls = advanceLine(src, ls) {
		p := ls
		for p < len(src) && src[p] == ' ' && p-ls < 3 {
			p++
		}
		h := 0
		for p < len(src) && src[p] == '#' && h < HeaderMax {
			p++
			h++
		}
		if h >= 1 && p < len(src) && src[p] == ' ' {
			return match{start: ls, end: p + 1, n: h}, true
		}
	}
	return match{}, false
}

// findBulletItem matches a line start, any number of spaces, then "* ".
// The space count is captured for list-level detection.
func findBulletItem(src string, from int) (match, bool) {
	for ls := nextLineStart(src, from); ls >= 0; ls = advanceLine(src, ls) {
		p := ls
		for p < len(src) && src[p] == ' ' {
			p++
		}
		if p+1 < len(src) && src[p] == '*' && src[p+1] == ' ' {
			return match{start: ls, end: p + 2, n: p - ls}, true
		}
	}
	return match{}, false
}

// findNumericItem matches a line start, any number of spaces, one or more
// digits, then ". ".
func findNumericItem(src string, from int) (match, bool) {
	for ls := nextLineStart(src, from); ls >= 0; ls = advanceLine(src, ls) {
		p := ls
		for p < len(src) && src[p] == ' ' {
			p++
		}
		d := p
		for d < len(src) && src[d] >= '0' && src[d] <= '9' {
			d++
		}
		if d > p && d+1 < len(src) && src[d] == '.' && src[d+1] == ' ' {
			return match{start: ls, end: d + 2, n: p - ls}, true
		}
	}
	return match{}, false
}

// findLineEnd matches the next line break. It is only consulted while a
// header or list item is open.
func findLineEnd(src string, from int) (match, bool) {
	idx := strings.IndexByte(src[from:], '\n')
	if idx < 0 {
		return match{}, false
	}
	return match{start: from + idx, end: from + idx + 1}, true
}

// findImage matches "![alt](url)" not preceded by a backslash. Alt and url
// may be empty; unterminated constructs never match.
func findImage(src string, from int) (match, bool) {
	for i := from; i+1 < len(src); i++ {
		if src[i] != '!' || src[i+1] != '[' || escapedAt(src, i) {
			continue
		}
		rb := strings.IndexByte(src[i+2:], ']')
		if rb < 0 {
			continue
		}
		altEnd := i + 2 + rb
		if altEnd+1 >= len(src) || src[altEnd+1] != '(' {
			continue
		}
		ce := strings.IndexByte(src[altEnd+2:], ')')
		if ce < 0 {
			continue
		}
		urlEnd := altEnd + 2 + ce
		return match{
			start: i,
			end:   urlEnd + 1,
			text:  src[i+2 : altEnd],
			url:   src[altEnd+2 : urlEnd],
		}, true
	}
	return match{}, false
}

// findLink matches "[text](url)" not preceded by '!' or a backslash.
func findLink(src string, from int) (match, bool) {
	for i := from; i < len(src); i++ {
		if src[i] != '[' {
			continue
		}
		if i > 0 && (src[i-1] == '!' || src[i-1] == '\\') {
			continue
		}
		rb := strings.IndexByte(src[i+1:], ']')
		if rb < 0 {
			continue
		}
		textEnd := i + 1 + rb
		if textEnd+1 >= len(src) || src[textEnd+1] != '(' {
			continue
		}
		ce := strings.IndexByte(src[textEnd+2:], ')')
		if ce < 0 {
			continue
		}
		urlEnd := textEnd + 2 + ce
		return match{
			start: i,
			end:   urlEnd + 1,
			text:  src[i+1 : textEnd],
			url:   src[textEnd+2 : urlEnd],
		}, true
	}
	return match{}, false
}
