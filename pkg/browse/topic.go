// Package browse implements the topic collection and navigation model of the
// documentation browser: a title-sorted set of immutable topics, a bounded
// back/forward history of visits, and the bridge that re-renders on
// navigation through a display collaborator.
package browse

// TopicNone is the sentinel index meaning "no topic".
const TopicNone = -1

// Topic is one ingested document. Topics are immutable after creation and
// are destroyed only when the whole topic set is reloaded.
type Topic struct {
	// Name uniquely identifies the topic and is the target of
	// topic-relative links.
	Name string

	// Title is the display title the collection is sorted by.
	Title string

	// Content is the raw markup source.
	Content string
}
