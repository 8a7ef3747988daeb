package markup

// scanner is the incremental multi-matcher scanning engine. It memoizes the
// next occurrence per matcher and re-runs a finder only when its previous
// match has been consumed or overrun, so each step re-scans only what the
// consumed token invalidated.
type scanner struct {
	src string

	// pos is the first unconsumed content position.
	pos int

	next  [matcherCount]match
	found [matcherCount]bool
	valid [matcherCount]bool
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// selectNext returns the matcher whose next occurrence starts at the lowest
// offset, breaking ties by matcher declaration order. The emphasis-end and
// line-end matchers are only consulted while the corresponding state is
// active, which avoids wasted scans outside emphasis, headers, and lists.
func (sc *scanner) selectNext(emphasisActive, lineActive bool) (matcherID, match, bool) {
	best := matcherID(-1)
	var bm match
	for id := matcherID(0); id < matcherCount; id++ {
		if id == matchEmphasisEnd && !emphasisActive {
			continue
		}
		if id == matchLineEnd && !lineActive {
			continue
		}
		if !sc.valid[id] {
			sc.next[id], sc.found[id] = finders[id](sc.src, sc.pos)
			sc.valid[id] = true
		}
		if !sc.found[id] {
			continue
		}
		if best < 0 || sc.next[id].start < bm.start {
			best, bm = id, sc.next[id]
		}
	}
	if best < 0 {
		return 0, match{}, false
	}
	return best, bm, true
}

// advance consumes input up to position to. Memoized matches that start
// before the new position are invalidated; a matcher that already reported
// no remaining match stays exhausted.
func (sc *scanner) advance(to int) {
	sc.pos = to
	for id := range sc.valid {
		if sc.valid[id] && sc.found[id] && sc.next[id].start < to {
			sc.valid[id] = false
		}
	}
}
