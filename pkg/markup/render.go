package markup

import (
	"strconv"
	"strings"
)

// Render tokenizes content in a single forward pass and replays the token
// stream through the sink. Each call starts a fresh scan with fresh state,
// so rendering the same content twice yields identical output sequences.
//
// The returned Result holds the handle tables built during this pass; it is
// complete once Render returns and is not updated afterwards.
func Render(content string, sink Sink, opts Options) Result {
	res := Result{
		Alts:  make(map[Handle]string),
		Links: make(map[Handle]string),
	}

	sc := newScanner(content)
	st := &styleState{}
	var lastHandle Handle

	alloc := func() Handle {
		lastHandle++
		return lastHandle
	}

	for {
		id, m, ok := sc.selectNext(st.emphasisActive(), st.lineActive())
		if !ok {
			break
		}

		emitText(sink, content[sc.pos:m.start], st.style())

		// Any structural token other than an item start ends the list
		// once the current item has closed.
		if len(st.levels) > 0 && !st.inItem &&
			id != matchBulletItem && id != matchNumericItem {
			st.levels = st.levels[:0]
		}

		switch id {
		case matchEmphasisStart:
			if m.n&1 != 0 {
				st.italic = true
			}
			if m.n&2 != 0 {
				st.bold = true
			}

		case matchEmphasisEnd:
			if m.n&1 != 0 {
				st.italic = false
			}
			if m.n&2 != 0 {
				st.bold = false
			}

		case matchHeaderStart:
			st.headerSize = m.n

		case matchBulletItem:
			if lvl, open := st.enterItem(m.n); open {
				glyph := bulletGlyphs[(lvl-1)%len(bulletGlyphs)]
				sink.Text(string(glyph)+" ", Style{})
			} else {
				emitText(sink, content[m.start:m.end], st.style())
			}

		case matchNumericItem:
			if _, open := st.enterItem(m.n); open {
				top := &st.levels[len(st.levels)-1]
				top.counter++
				sink.Text(strconv.Itoa(top.counter)+". ", Style{})
			} else {
				emitText(sink, content[m.start:m.end], st.style())
			}

		case matchLineEnd:
			// The newline is part of the consumed span; re-emit it so
			// line structure survives, styled with the closing state.
			sink.Text("\n", st.style())
			st.headerSize = 0
			st.inItem = false

		case matchImage:
			if data, found := resolveImage(opts.Images, m.url, opts.IconSize); found {
				h := alloc()
				sink.Image(h, ResolvedImage{Data: data, Alt: m.text, Source: m.url})
				if m.text != "" {
					res.Alts[h] = m.text
				}
			}

		case matchLink:
			h := alloc()
			linkStyle := st.style()
			linkStyle.Link = true
			sink.Anchor(h, Unescape(m.text), linkStyle)
			res.Links[h] = m.url
		}

		sc.advance(m.end)
	}

	emitText(sink, content[sc.pos:], st.style())
	return res
}

func emitText(sink Sink, text string, style Style) {
	if text == "" {
		return
	}
	sink.Text(Unescape(text), style)
}

// resolveImage routes an image destination to the resolver. Destinations of
// the form "icon:name" or "icon:size:name" resolve as themed icons; a
// malformed size falls back to the pass default rather than failing the
// render. Everything else resolves as a file path.
func resolveImage(r ImageResolver, url string, defaultSize int) (any, bool) {
	if r == nil {
		return nil, false
	}
	name, isIcon := strings.CutPrefix(url, "icon:")
	if !isIcon {
		return r.ResolveFile(url)
	}
	if defaultSize <= 0 {
		defaultSize = DefaultIconSize
	}
	size := defaultSize
	if head, rest, hasSize := strings.Cut(name, ":"); hasSize {
		name = rest
		if n, err := strconv.Atoi(head); err == nil && n > 0 {
			size = n
		}
	}
	return r.ResolveIcon(name, size)
}
