package markup

// listLevel records the indentation a list level was opened or last
// confirmed at, plus the running counter for numeric items on that level.
type listLevel struct {
	indent  int
	counter int
}

// styleState is the mutable parse state threaded through one render pass.
// It lives only for the duration of a single Render call.
type styleState struct {
	bold   bool
	italic bool

	// headerSize is 0 outside headers, otherwise the '#' count.
	headerSize int

	// inItem is true between a list-item start and the following line
	// break. The list-level tag applies to runs only while it is set;
	// the level stack itself persists across items so multi-line lists
	// render contiguously.
	inItem bool

	levels []listLevel
}

func (st *styleState) style() Style {
	s := Style{Bold: st.bold, Italic: st.italic, Header: st.headerSize}
	if st.inItem {
		s.List = len(st.levels)
	}
	return s
}

func (st *styleState) emphasisActive() bool {
	return st.bold || st.italic
}

func (st *styleState) lineActive() bool {
	return st.headerSize > 0 || st.inItem
}

// enterItem resolves the nesting level for a list item with the given
// leading-space count and marks the item open. It returns the 1-based level,
// or false when the item is rejected (no list active and the indentation
// exceeds the first-level maximum) and must be treated as literal text.
//
// Level detection walks the active levels from the outermost inward and
// snaps to the first level whose recorded indentation is closer to the new
// indentation than the next deeper level's. A new level opens only off the
// innermost level, when the indentation grows by at least the minimum
// spacing and the depth limit is not reached; otherwise deeper levels are
// closed by truncation.
func (st *styleState) enterItem(indent int) (int, bool) {
	if len(st.levels) == 0 {
		if indent > maxFirstIndent {
			return 0, false
		}
		st.levels = append(st.levels, listLevel{indent: indent})
		st.inItem = true
		return 1, true
	}

	matched := len(st.levels) - 1
	for i := 0; i+1 < len(st.levels); i++ {
		if absInt(st.levels[i].indent-indent) < absInt(st.levels[i+1].indent-indent) {
			matched = i
			break
		}
	}

	if matched == len(st.levels)-1 &&
		indent >= st.levels[matched].indent+minNestSpacing &&
		len(st.levels) < maxListDepth {
		st.levels = append(st.levels, listLevel{indent: indent})
	} else {
		st.levels = st.levels[:matched+1]
		st.levels[matched].indent = indent
	}

	st.inItem = true
	return len(st.levels), true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
