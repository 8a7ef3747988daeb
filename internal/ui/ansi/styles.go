// Package ansi renders markup runs and topic tables as styled terminal output.
package ansi

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for terminal output.
type Styles struct {
	// Run styles composed from the markup style flags.
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	BoldItalic lipgloss.Style
	Link       lipgloss.Style

	// Header styles indexed by level 1..6 via Header().
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Header3 lipgloss.Style
	Header4 lipgloss.Style
	Header5 lipgloss.Style
	Header6 lipgloss.Style

	// Image placeholders.
	ImageAlt lipgloss.Style

	// Topic table styles.
	TableHeader    lipgloss.Style
	TableBorder    lipgloss.Style
	TableRow       lipgloss.Style
	TableCurrent   lipgloss.Style
	TableSeparator lipgloss.Style

	// Status line styles for the browse prompt.
	Prompt  lipgloss.Style
	Status  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim lipgloss.Style
}

// Header returns the style for the given header level. Out-of-range levels
// fall back to the deepest header style.
func (s *Styles) Header(level int) lipgloss.Style {
	switch level {
	case 1:
		return s.Header1
	case 2:
		return s.Header2
	case 3:
		return s.Header3
	case 4:
		return s.Header4
	case 5:
		return s.Header5
	default:
		return s.Header6
	}
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true),
		BoldItalic: lipgloss.NewStyle().Bold(true).Italic(true),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),

		Header1: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Header2: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Header3: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Header4: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Header5: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Header6: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		ImageAlt: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableRow:       lipgloss.NewStyle(),
		TableCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Bold:           plain,
		Italic:         plain,
		BoldItalic:     plain,
		Link:           plain,
		Header1:        plain,
		Header2:        plain,
		Header3:        plain,
		Header4:        plain,
		Header5:        plain,
		Header6:        plain,
		ImageAlt:       plain,
		TableHeader:    plain,
		TableBorder:    plain,
		TableRow:       plain,
		TableCurrent:   plain,
		TableSeparator: plain,
		Prompt:         plain,
		Status:         plain,
		Success:        plain,
		Failure:        plain,
		Dim:            plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
