package browse

// DefaultHistoryMax bounds the visit log when no limit is configured.
const DefaultHistoryMax = 10

// Visit is one history entry: the topic the user left and the scroll offset
// they left it at.
type Visit struct {
	Topic  int
	Scroll float64
}

// History is the bounded, append/truncate visit log. The position cursor
// ranges over [0, Len()]; at Len() the browser is "at the head", viewing
// content not yet committed as a navigable-back point.
type History struct {
	visits []Visit
	pos    int
	max    int
}

// NewHistory creates an empty history bounded to max entries. A non-positive
// max falls back to DefaultHistoryMax.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistoryMax
	}
	return &History{max: max}
}

// Len returns the number of committed visits.
func (h *History) Len() int { return len(h.visits) }

// Position returns the current cursor position in [0, Len()].
func (h *History) Position() int { return h.pos }

// AtHead reports whether the cursor is past the last committed visit.
func (h *History) AtHead() bool { return h.pos == len(h.visits) }

// CanGoBack reports whether a backwards step stays in range.
func (h *History) CanGoBack() bool { return h.pos > 0 }

// CanGoForward reports whether a forwards step stays in range.
func (h *History) CanGoForward() bool { return h.pos+1 < len(h.visits) }

// At returns the visit at index i.
func (h *History) At(i int) Visit { return h.visits[i] }

// Reset discards all visits and rewinds the cursor.
func (h *History) Reset() {
	h.visits = h.visits[:0]
	h.pos = 0
}

// commit stores v at the cursor. At the head the visit is appended; in the
// middle the slot is overwritten, first discarding the forward branch when
// the commit comes from a fresh jump rather than a history replay.
func (h *History) commit(v Visit, branching bool) {
	if h.pos < len(h.visits) {
		if branching {
			h.visits = h.visits[:h.pos+1]
		}
		h.visits[h.pos] = v
	} else {
		h.visits = append(h.visits, v)
	}
}

// trim drops the oldest entries beyond the bound and returns how many were
// dropped. The caller rebases its cursor by the returned count.
func (h *History) trim() int {
	drop := len(h.visits) - h.max
	if drop <= 0 {
		return 0
	}
	h.visits = append(h.visits[:0], h.visits[drop:]...)
	return drop
}
