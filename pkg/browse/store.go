package browse

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/yaklabco/mdview/pkg/fsutil"
)

// Sentinel errors returned by store operations.
var (
	// ErrDuplicateTopic is returned by AddTopic when a topic with the
	// same name is already registered.
	ErrDuplicateTopic = errors.New("duplicate topic name")

	// ErrUnknownTopic is returned when a navigation names a topic index
	// or name the store does not hold.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrInvalidOffset is returned when a history move would leave the
	// valid position range.
	ErrInvalidOffset = errors.New("history offset out of range")
)

// Options configures a Store.
type Options struct {
	// HomeTopic is the name of the topic the store navigates to when the
	// first batch of topics arrives and on Home. Empty disables the home
	// behavior.
	HomeTopic string

	// HistoryMax bounds the visit log. Non-positive selects
	// DefaultHistoryMax.
	HistoryMax int

	// FilePattern selects which files AddFiles ingests. Its first capture
	// group yields the topic name. Nil selects DefaultFilePattern.
	FilePattern *regexp.Regexp

	// TitlePattern extracts the topic title from content; its first
	// capture group yields the title. Nil selects DefaultTitlePattern.
	TitlePattern *regexp.Regexp
}

// Store holds the topic table, the navigation history and the link between
// them. Topics stay sorted by title; indexes handed out by the store refer
// into that ordering and are rebased as insertions shift it.
//
// Store is not safe for concurrent use.
type Store struct {
	display  Display
	listener Listener
	opts     Options

	topics  []Topic
	history *History
	current int
	sources []*fsutil.FileInfo
}

// NewStore creates a store driving display and notifying listener. Either
// may be nil, in which case a no-op implementation is substituted.
func NewStore(display Display, listener Listener, opts Options) *Store {
	if display == nil {
		display = noopDisplay{}
	}
	if listener == nil {
		listener = noopListener{}
	}
	if opts.FilePattern == nil {
		opts.FilePattern = DefaultFilePattern
	}
	if opts.TitlePattern == nil {
		opts.TitlePattern = DefaultTitlePattern
	}
	return &Store{
		display:  display,
		listener: listener,
		opts:     opts,
		history:  NewHistory(opts.HistoryMax),
		current:  TopicNone,
	}
}

// Len returns the number of registered topics.
func (s *Store) Len() int { return len(s.topics) }

// Topic returns the topic at index i in title order.
func (s *Store) Topic(i int) Topic { return s.topics[i] }

// Current returns the index of the topic on display, or TopicNone.
func (s *Store) Current() int { return s.current }

// TopicIndexByName returns the index of the topic with the given name, or
// TopicNone when no such topic exists.
func (s *Store) TopicIndexByName(name string) int {
	for i, t := range s.topics {
		if t.Name == name {
			return i
		}
	}
	return TopicNone
}

// AddTopic registers t, keeping the table sorted by title. Indexes already
// held by the history and the current pointer are rebased past the insertion
// point. The first topic added that matches the configured home topic is
// navigated to immediately.
func (s *Store) AddTopic(t Topic) error {
	if s.TopicIndexByName(t.Name) != TopicNone {
		return fmt.Errorf("add topic %q: %w", t.Name, ErrDuplicateTopic)
	}

	at := sort.Search(len(s.topics), func(i int) bool {
		return s.topics[i].Title >= t.Title
	})
	s.topics = append(s.topics, Topic{})
	copy(s.topics[at+1:], s.topics[at:])
	s.topics[at] = t

	// Indexes at or past the insertion point shifted up by one.
	if s.current != TopicNone && s.current >= at {
		s.current++
	}
	for i := range s.history.visits {
		if s.history.visits[i].Topic >= at {
			s.history.visits[i].Topic++
		}
	}

	s.listener.OnTopicsChanged()

	if s.current == TopicNone && s.opts.HomeTopic != "" && t.Name == s.opts.HomeTopic {
		if err := s.Navigate(0, at); err != nil {
			return fmt.Errorf("navigate to home topic %q: %w", t.Name, err)
		}
	}
	s.notifyNavState()
	return nil
}

// Navigate is the single entry point for every history move. A historyOfs of
// zero records a fresh jump to topicIndex, discarding any forward branch; a
// non-zero offset replays the visit at the resulting history position and
// ignores topicIndex. TopicNone as a fresh target clears the display.
func (s *Store) Navigate(historyOfs, topicIndex int) error {
	newPos := s.history.pos + historyOfs
	if newPos < 0 || newPos > s.history.Len() {
		return fmt.Errorf("navigate by %d from %d: %w", historyOfs, s.history.pos, ErrInvalidOffset)
	}
	if historyOfs != 0 && newPos == s.history.Len() {
		return fmt.Errorf("navigate by %d from %d: %w", historyOfs, s.history.pos, ErrInvalidOffset)
	}
	if historyOfs == 0 && topicIndex != TopicNone && (topicIndex < 0 || topicIndex >= len(s.topics)) {
		return fmt.Errorf("navigate to index %d: %w", topicIndex, ErrUnknownTopic)
	}

	// Leaving a shown topic commits it, with its scroll state, at the
	// current position.
	if s.current != TopicNone {
		v := Visit{Topic: s.current, Scroll: s.display.ScrollOffset()}
		s.history.commit(v, historyOfs == 0)
		if dropped := s.history.trim(); dropped > 0 {
			newPos -= dropped
			if newPos < 0 {
				newPos = 0
			}
		}
	}

	replay := historyOfs != 0
	var scroll float64
	if replay {
		v := s.history.At(newPos)
		topicIndex = v.Topic
		scroll = v.Scroll
		s.history.pos = newPos
	} else {
		s.history.pos = s.history.Len()
	}

	s.current = topicIndex
	if topicIndex == TopicNone {
		s.display.Clear()
	} else {
		s.display.ShowTopic(s.topics[topicIndex])
		if replay {
			s.display.SetScrollOffset(scroll)
		}
	}
	s.display.SelectTopic(topicIndex)
	s.notifyNavState()
	return nil
}

// NavigateToTopic jumps to the topic with the given name. An empty name
// clears the view.
func (s *Store) NavigateToTopic(name string) error {
	if name == "" {
		return s.Navigate(0, TopicNone)
	}
	i := s.TopicIndexByName(name)
	if i == TopicNone {
		return fmt.Errorf("navigate to topic %q: %w", name, ErrUnknownTopic)
	}
	return s.Navigate(0, i)
}

// Back replays the previous visit.
func (s *Store) Back() error { return s.Navigate(-1, TopicNone) }

// Forward replays the next visit.
func (s *Store) Forward() error { return s.Navigate(+1, TopicNone) }

// Home jumps to the configured home topic.
func (s *Store) Home() error {
	if s.opts.HomeTopic == "" {
		return fmt.Errorf("home: %w", ErrUnknownTopic)
	}
	return s.NavigateToTopic(s.opts.HomeTopic)
}

// ActivateLink routes an activated link: a URL naming a registered topic
// becomes a navigation, anything else is handed to the listener.
func (s *Store) ActivateLink(url string) error {
	if i := s.TopicIndexByName(url); i != TopicNone {
		return s.Navigate(0, i)
	}
	s.listener.OnLinkActivated(url)
	return nil
}

// Reset discards all topics and history and clears the display.
func (s *Store) Reset() {
	s.topics = s.topics[:0]
	s.history.Reset()
	s.current = TopicNone
	s.sources = nil
	s.display.Clear()
	s.display.SelectTopic(TopicNone)
	s.listener.OnTopicsChanged()
	s.notifyNavState()
}

// NavState reports which navigation actions are currently available.
func (s *Store) NavState() NavState {
	return NavState{
		CanGoBack:    s.history.CanGoBack(),
		CanGoForward: s.history.CanGoForward(),
		HomeVisible:  s.opts.HomeTopic != "" && s.TopicIndexByName(s.opts.HomeTopic) != TopicNone,
	}
}

func (s *Store) notifyNavState() {
	s.listener.OnNavigationStateChanged(s.NavState())
}
