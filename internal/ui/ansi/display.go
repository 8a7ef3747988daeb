package ansi

import (
	"fmt"
	"io"
	"sort"

	"github.com/yaklabco/mdview/pkg/browse"
	"github.com/yaklabco/mdview/pkg/markup"
)

// Display renders topics to a terminal stream. It implements browse.Display.
//
// A stream cannot scroll programmatically, so the scroll offset is kept as
// plain state: the store captures it when leaving a topic and restores it on
// replay, and the value is surfaced in the status line instead of moving a
// viewport.
type Display struct {
	w      io.Writer
	styles *Styles
	opts   markup.Options

	scroll float64
	links  map[markup.Handle]string
	alts   map[markup.Handle]string
}

// NewDisplay creates a display writing rendered topics to w. The render
// options carry the image resolver and icon sizing for every topic shown.
func NewDisplay(w io.Writer, styles *Styles, opts markup.Options) *Display {
	return &Display{
		w:      w,
		styles: styles,
		opts:   opts,
	}
}

// ShowTopic renders the topic's content to the stream.
func (d *Display) ShowTopic(t browse.Topic) {
	sink := NewSink(d.styles)
	result := markup.Render(t.Content, sink, d.opts)

	d.links = result.Links
	d.alts = result.Alts
	d.scroll = 0

	fmt.Fprint(d.w, sink.String())
}

// Clear empties the display state.
func (d *Display) Clear() {
	d.links = nil
	d.alts = nil
	d.scroll = 0
}

// ScrollOffset returns the current scroll fraction.
func (d *Display) ScrollOffset() float64 { return d.scroll }

// SetScrollOffset restores a captured scroll fraction.
func (d *Display) SetScrollOffset(offset float64) { d.scroll = offset }

// SelectTopic is part of browse.Display. A stream has no topic list to
// highlight, so there is nothing to do.
func (d *Display) SelectTopic(int) {}

// LinkURL returns the URL behind the anchor tag rendered with handle h.
func (d *Display) LinkURL(h markup.Handle) (string, bool) {
	url, ok := d.links[h]
	return url, ok
}

// LinkHandles returns the rendered anchor handles in ascending order.
func (d *Display) LinkHandles() []markup.Handle {
	handles := make([]markup.Handle, 0, len(d.links))
	for h := range d.links {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}
