// Package markup implements the single-pass renderer that turns lightweight
// document markup into an ordered stream of styled text runs, inline images,
// and link anchors.
//
// The renderer is permissive, not validating: every construct either matches
// one of the fixed patterns or is emitted as literal text. A render pass is
// forward-only and never revisits already-emitted output.
package markup

// Structural limits of the renderer.
const (
	// HeaderMax is the deepest header level recognized ('#' count).
	HeaderMax = 6

	// DefaultIconSize is the pixel size used for icon references that do
	// not carry an explicit size.
	DefaultIconSize = 24

	maxListDepth   = 10
	maxFirstIndent = 3
	minNestSpacing = 2
)

// bulletGlyphs is the cyclic glyph set for bullet list items, indexed by
// (level-1) modulo its length.
var bulletGlyphs = []rune{'•', '◦', '▪'}

// Style is the set of style tags attached to an emitted text run.
// The zero value is an unstyled plain run.
type Style struct {
	// Bold and Italic are independent flags, not a stack: overlapping
	// regions are expressed by both flags being set on a run.
	Bold   bool
	Italic bool

	// Link is set on the display text of a link anchor only.
	Link bool

	// Header is 0 outside headers, otherwise 1..HeaderMax.
	Header int

	// List is 0 outside list items, otherwise the 1-based nesting level
	// of the item the run belongs to.
	List int
}

// IsZero reports whether no style tag is active.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Handle addresses an inline image or link anchor emitted during one render
// pass. Handles are allocated sequentially starting at 1 and are only
// meaningful together with the Result of the pass that produced them.
type Handle int

// ResolvedImage is an inline image ready for display.
type ResolvedImage struct {
	// Data is the resolver-specific image value (an icon glyph, a file
	// handle, a texture id). The renderer treats it as opaque.
	Data any

	// Alt is the image's alt text, possibly empty.
	Alt string

	// Source is the original destination string from the markup.
	Source string
}

// Sink consumes the ordered output of a render pass. Runs arrive in content
// order with no overlap or duplication; a run's style is the set of tags
// active at the moment the run's trailing boundary is reached. Images are
// atomic units, never split by later styling.
//
// Sink implementations have no knowledge of list or header semantics beyond
// applying the tags they are given; bullets, numbering, and indentation are
// computed by the renderer.
type Sink interface {
	// Text appends a plain text run with the given style tags.
	Text(text string, style Style)

	// Image inserts an atomic inline image addressed by handle.
	Image(handle Handle, image ResolvedImage)

	// Anchor inserts a link's display text, addressed by handle so the
	// caller can later map a screen position back to its URL.
	Anchor(handle Handle, text string, style Style)
}

// ImageResolver resolves image destinations on behalf of a render pass.
// A false return means "no image": the reference is silently skipped.
type ImageResolver interface {
	// ResolveIcon resolves a named themed icon at the given pixel size.
	// Implementations should prefer symbolic variants when available.
	ResolveIcon(name string, size int) (any, bool)

	// ResolveFile resolves a file-backed image from a path relative to
	// the configured images directory.
	ResolveFile(path string) (any, bool)
}

// Options configures a render pass.
type Options struct {
	// Images resolves inline image references. A nil resolver skips all
	// images.
	Images ImageResolver

	// IconSize is the pixel size requested for icon references without an
	// explicit size. Zero or negative means DefaultIconSize.
	IconSize int
}

// Result is the per-pass handle table: alt texts for emitted images and URLs
// for emitted anchors. It is rebuilt from scratch on every render.
type Result struct {
	// Alts maps image handles to their non-empty alt text.
	Alts map[Handle]string

	// Links maps anchor handles to their URL.
	Links map[Handle]string
}
