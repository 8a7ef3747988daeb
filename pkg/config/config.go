// Package config defines core configuration types for mdview.
// These types are pure data structures with no dependency on config loaders.
package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Default pattern strings used when the config file leaves them unset.
const (
	// DefaultFilePattern selects which files become topics; the first
	// capture group names the topic.
	DefaultFilePattern = `^(.+)\.(?:md|markdown)$`

	// DefaultTitlePattern extracts the topic title from content.
	DefaultTitlePattern = `(?m)^ {0,3}# (.+)$`

	// DefaultHomeTopic is the topic shown when a topic set loads.
	DefaultHomeTopic = "README"

	// DefaultHistoryMax bounds the navigation history.
	DefaultHistoryMax = 10

	// DefaultIconSize is the pixel size for icon references without an
	// explicit size.
	DefaultIconSize = 24
)

// ColorMode controls when ANSI color is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Validation sentinel errors.
var (
	// ErrBadPattern indicates a pattern field does not compile or lacks
	// its required capture group.
	ErrBadPattern = errors.New("invalid pattern")

	// ErrBadValue indicates a numeric or enum field is out of range.
	ErrBadValue = errors.New("invalid config value")
)

// Config is the root configuration structure for mdview.
type Config struct {
	// HomeTopic names the topic shown first and reachable via Home.
	HomeTopic string `mapstructure:"home_topic" yaml:"home_topic"`

	// FilePattern selects topic files; its first capture group yields
	// the topic name.
	FilePattern string `mapstructure:"file_pattern" yaml:"file_pattern"`

	// TitlePattern extracts topic titles; its first capture group
	// yields the title.
	TitlePattern string `mapstructure:"title_pattern" yaml:"title_pattern"`

	// HistoryMax bounds the navigation history (0 = default).
	HistoryMax int `mapstructure:"history_max" yaml:"history_max"`

	// ImagesDir is the directory image paths resolve against. Empty
	// resolves them against the topic directory.
	ImagesDir string `mapstructure:"images_dir" yaml:"images_dir"`

	// IconSize is the size used for icon references without one.
	IconSize int `mapstructure:"icon_size" yaml:"icon_size"`

	// CLI-level options (not persisted to config files).

	// Color controls when ANSI color is emitted.
	Color ColorMode `mapstructure:"-" yaml:"-"`

	// Width overrides the detected terminal width (0 = detect).
	Width int `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		HomeTopic:    DefaultHomeTopic,
		FilePattern:  DefaultFilePattern,
		TitlePattern: DefaultTitlePattern,
		HistoryMax:   DefaultHistoryMax,
		IconSize:     DefaultIconSize,
		Color:        ColorAuto,
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if _, _, err := c.CompilePatterns(); err != nil {
		return err
	}
	if c.HistoryMax < 0 {
		return fmt.Errorf("history_max %d: %w", c.HistoryMax, ErrBadValue)
	}
	if c.IconSize <= 0 {
		return fmt.Errorf("icon_size %d: %w", c.IconSize, ErrBadValue)
	}
	if c.Color != "" && !c.Color.IsValid() {
		return fmt.Errorf("color %q: %w", c.Color, ErrBadValue)
	}
	return nil
}

// CompilePatterns compiles the file and title patterns, substituting the
// defaults for empty fields.
func (c *Config) CompilePatterns() (file, title *regexp.Regexp, err error) {
	file, err = compileCapture("file_pattern", c.FilePattern, DefaultFilePattern)
	if err != nil {
		return nil, nil, err
	}
	title, err = compileCapture("title_pattern", c.TitlePattern, DefaultTitlePattern)
	if err != nil {
		return nil, nil, err
	}
	return file, title, nil
}

func compileCapture(field, pattern, fallback string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = fallback
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w: %w", field, pattern, ErrBadPattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%s %q: %w: needs a capture group", field, pattern, ErrBadPattern)
	}
	return re, nil
}
