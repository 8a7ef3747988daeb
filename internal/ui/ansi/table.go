package ansi

import (
	"strings"

	"github.com/yaklabco/mdview/pkg/browse"
)

// Table formatting constants.
const (
	currentMarker    = ">"
	tablePadding     = 2
	markerWidth      = 2
	minNameWidth     = 8
	minTitleWidth    = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableFormatter formats the topic table for terminal output.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new topic table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTopics formats the store's topics as a styled table. The current
// topic row is marked and highlighted.
func (t *TableFormatter) FormatTopics(store *browse.Store) string {
	if store.Len() == 0 {
		return ""
	}

	nameWidth, titleWidth := t.columnWidths(store)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(nameWidth, titleWidth))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(nameWidth, titleWidth))
	builder.WriteString("\n")

	for i := 0; i < store.Len(); i++ {
		builder.WriteString(t.formatRow(store.Topic(i), i == store.Current(), nameWidth, titleWidth))
		builder.WriteString("\n")
	}

	return builder.String()
}

// columnWidths sizes the name and title columns to their content, clamped to
// the terminal width with the title column absorbing the squeeze.
func (t *TableFormatter) columnWidths(store *browse.Store) (nameWidth, titleWidth int) {
	nameWidth = minNameWidth
	titleWidth = minTitleWidth
	for i := 0; i < store.Len(); i++ {
		topic := store.Topic(i)
		if len(topic.Name) > nameWidth {
			nameWidth = len(topic.Name)
		}
		if len(topic.Title) > titleWidth {
			titleWidth = len(topic.Title)
		}
	}

	maxTitle := t.termWidth - markerWidth - nameWidth - tablePadding
	if maxTitle < minTitleWidth {
		maxTitle = minTitleWidth
	}
	if titleWidth > maxTitle {
		titleWidth = maxTitle
	}
	return nameWidth, titleWidth
}

func (t *TableFormatter) formatHeader(nameWidth, titleWidth int) string {
	line := pad("", markerWidth) + pad("NAME", nameWidth+tablePadding) + pad("TITLE", titleWidth)
	return t.styles.TableHeader.Render(line)
}

func (t *TableFormatter) formatSeparator(nameWidth, titleWidth int) string {
	width := markerWidth + nameWidth + tablePadding + titleWidth
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, width))
}

func (t *TableFormatter) formatRow(topic browse.Topic, current bool, nameWidth, titleWidth int) string {
	marker := ""
	style := t.styles.TableRow
	if current {
		marker = currentMarker
		style = t.styles.TableCurrent
	}

	line := pad(marker, markerWidth) +
		pad(topic.Name, nameWidth+tablePadding) +
		pad(truncate(topic.Title, titleWidth), titleWidth)
	return style.Render(line)
}

// pad right-pads s with spaces to the given width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// truncate cuts s to width, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
