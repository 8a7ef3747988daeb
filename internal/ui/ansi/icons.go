package ansi

import (
	"os"
	"path/filepath"
)

// iconGlyphs maps icon names to terminal glyphs. Unknown names resolve to
// nothing, which makes the renderer skip the image.
//
//nolint:gochecknoglobals // Read-only lookup table.
var iconGlyphs = map[string]string{
	"home":     "⌂",
	"info":     "ℹ",
	"note":     "✎",
	"warning":  "⚠",
	"error":    "✗",
	"ok":       "✓",
	"link":     "↗",
	"back":     "←",
	"forward":  "→",
	"up":       "↑",
	"down":     "↓",
	"bullet":   "•",
	"star":     "★",
	"document": "🗎",
	"folder":   "🗀",
}

// IconResolver resolves image references to terminal glyphs and file
// placeholders. It implements markup.ImageResolver.
type IconResolver struct {
	// BaseDir is the directory relative image paths resolve against.
	// Empty means paths resolve against the working directory.
	BaseDir string
}

// ResolveIcon looks up a named icon glyph. The requested size has no
// meaning in a character cell, so it is ignored.
func (r IconResolver) ResolveIcon(name string, _ int) (any, bool) {
	glyph, ok := iconGlyphs[name]
	if !ok {
		return nil, false
	}
	return glyph, true
}

// ResolveFile resolves an image file path. The terminal cannot show the
// pixels, so an existing file resolves to a placeholder naming it and a
// missing file resolves to nothing.
func (r IconResolver) ResolveFile(path string) (any, bool) {
	full := path
	if r.BaseDir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(r.BaseDir, path)
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, false
	}
	return "[image: " + filepath.Base(path) + "]", true
}
