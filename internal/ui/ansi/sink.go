package ansi

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdview/pkg/markup"
)

// Sink collects styled markup runs into a terminal-ready string. It
// implements markup.Sink.
//
// Anchors are rendered as link text followed by a dim numeric tag matching
// the run's handle, so a link can be activated by number afterwards.
type Sink struct {
	styles *Styles
	out    strings.Builder
}

// NewSink creates a sink rendering with the given styles.
func NewSink(styles *Styles) *Sink {
	return &Sink{styles: styles}
}

// Text renders a styled run.
func (s *Sink) Text(text string, st markup.Style) {
	s.out.WriteString(s.styleFor(st).Render(text))
}

// Anchor renders link text with its activation tag.
func (s *Sink) Anchor(h markup.Handle, text string, _ markup.Style) {
	s.out.WriteString(s.styles.Link.Render(text))
	s.out.WriteString(s.styles.Dim.Render(fmt.Sprintf("[%d]", h)))
}

// Image renders the resolved image placeholder. Icon resolutions carry their
// glyph in Data; file resolutions fall back to the alt text.
func (s *Sink) Image(_ markup.Handle, img markup.ResolvedImage) {
	if glyph, ok := img.Data.(string); ok && glyph != "" {
		s.out.WriteString(s.styles.ImageAlt.Render(glyph))
		return
	}
	if img.Alt != "" {
		s.out.WriteString(s.styles.ImageAlt.Render("[" + img.Alt + "]"))
	}
}

// String returns everything rendered so far.
func (s *Sink) String() string {
	return s.out.String()
}

// Reset discards the rendered output.
func (s *Sink) Reset() {
	s.out.Reset()
}

// styleFor maps markup style flags onto a lipgloss style. Headers win over
// emphasis, links over both.
func (s *Sink) styleFor(st markup.Style) lipgloss.Style {
	switch {
	case st.Link:
		return s.styles.Link
	case st.Header > 0:
		return s.styles.Header(st.Header)
	case st.Bold && st.Italic:
		return s.styles.BoldItalic
	case st.Bold:
		return s.styles.Bold
	case st.Italic:
		return s.styles.Italic
	default:
		return lipgloss.NewStyle()
	}
}
