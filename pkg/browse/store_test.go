package browse_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdview/pkg/browse"
)

// fakeDisplay records everything the store asks the surface to do.
type fakeDisplay struct {
	shown    []string
	cleared  int
	selected []int
	scroll   float64
	restored []float64
}

func (d *fakeDisplay) ShowTopic(t browse.Topic) { d.shown = append(d.shown, t.Name) }

func (d *fakeDisplay) Clear() { d.cleared++ }

func (d *fakeDisplay) ScrollOffset() float64 { return d.scroll }

func (d *fakeDisplay) SetScrollOffset(off float64) { d.restored = append(d.restored, off) }

func (d *fakeDisplay) SelectTopic(i int) { d.selected = append(d.selected, i) }

type fakeListener struct {
	nav     browse.NavState
	changes int
	links   []string
}

func (l *fakeListener) OnNavigationStateChanged(s browse.NavState) { l.nav = s }

func (l *fakeListener) OnTopicsChanged() { l.changes++ }

func (l *fakeListener) OnLinkActivated(url string) { l.links = append(l.links, url) }

func addTopics(t *testing.T, s *browse.Store, topics ...browse.Topic) {
	t.Helper()
	for _, tp := range topics {
		require.NoError(t, s.AddTopic(tp))
	}
}

func currentName(t *testing.T, s *browse.Store) string {
	t.Helper()
	require.NotEqual(t, browse.TopicNone, s.Current())
	return s.Topic(s.Current()).Name
}

func TestStoreAddTopicSortsByTitle(t *testing.T) {
	t.Parallel()

	s := browse.NewStore(nil, nil, browse.Options{})
	addTopics(t, s,
		browse.Topic{Name: "zoo", Title: "Zoology"},
		browse.Topic{Name: "api", Title: "API Reference"},
		browse.Topic{Name: "mid", Title: "Middleware"},
	)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, "api", s.Topic(0).Name)
	assert.Equal(t, "mid", s.Topic(1).Name)
	assert.Equal(t, "zoo", s.Topic(2).Name)

	assert.Equal(t, 1, s.TopicIndexByName("mid"))
	assert.Equal(t, browse.TopicNone, s.TopicIndexByName("nope"))
}

func TestStoreAddTopicRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	s := browse.NewStore(nil, nil, browse.Options{})
	addTopics(t, s, browse.Topic{Name: "guide", Title: "Guide"})

	err := s.AddTopic(browse.Topic{Name: "guide", Title: "Another Guide"})
	require.ErrorIs(t, err, browse.ErrDuplicateTopic)
	assert.Equal(t, 1, s.Len())
}

func TestStoreHomeTopicShownOnArrival(t *testing.T) {
	t.Parallel()

	d := &fakeDisplay{}
	l := &fakeListener{}
	s := browse.NewStore(d, l, browse.Options{HomeTopic: "index"})

	addTopics(t, s, browse.Topic{Name: "other", Title: "Other"})
	assert.Empty(t, d.shown)
	assert.False(t, l.nav.HomeVisible)

	addTopics(t, s, browse.Topic{Name: "index", Title: "Welcome"})
	require.Equal(t, []string{"index"}, d.shown)
	assert.Equal(t, "index", currentName(t, s))
	assert.True(t, l.nav.HomeVisible)
}

func TestStoreAddTopicRebasesIndexes(t *testing.T) {
	t.Parallel()

	d := &fakeDisplay{}
	s := browse.NewStore(d, nil, browse.Options{})
	addTopics(t, s,
		browse.Topic{Name: "beta", Title: "Beta"},
		browse.Topic{Name: "gamma", Title: "Gamma"},
	)
	require.NoError(t, s.NavigateToTopic("beta"))
	require.NoError(t, s.NavigateToTopic("gamma"))

	// Sorts before both shown topics, shifting their indexes up.
	addTopics(t, s, browse.Topic{Name: "alpha", Title: "Alpha"})

	assert.Equal(t, "gamma", currentName(t, s))
	require.NoError(t, s.Back())
	assert.Equal(t, "beta", currentName(t, s))
}

func TestStoreBackForwardReplay(t *testing.T) {
	t.Parallel()

	d := &fakeDisplay{}
	l := &fakeListener{}
	s := browse.NewStore(d, l, browse.Options{})
	addTopics(t, s,
		browse.Topic{Name: "a", Title: "A"},
		browse.Topic{Name: "b", Title: "B"},
		browse.Topic{Name: "c", Title: "C"},
	)

	require.NoError(t, s.NavigateToTopic("a"))
	assert.False(t, l.nav.CanGoBack)
	require.NoError(t, s.NavigateToTopic("b"))
	require.NoError(t, s.NavigateToTopic("c"))
	assert.True(t, l.nav.CanGoBack)
	assert.False(t, l.nav.CanGoForward)

	require.NoError(t, s.Back())
	assert.Equal(t, "b", currentName(t, s))
	assert.True(t, l.nav.CanGoForward)

	require.NoError(t, s.Back())
	assert.Equal(t, "a", currentName(t, s))
	assert.False(t, l.nav.CanGoBack)

	require.NoError(t, s.Forward())
	assert.Equal(t, "b", currentName(t, s))

	assert.Equal(t, []string{"a", "b", "c", "b", "a", "b"}, d.shown)
}

func TestStoreFreshJumpDiscardsForwardBranch(t *testing.T) {
	t.Parallel()

	s := browse.NewStore(nil, nil, browse.Options{})
	addTopics(t, s,
		browse.Topic{Name: "a", Title: "A"},
		browse.Topic{Name: "b", Title: "B"},
		browse.Topic{Name: "c", Title: "C"},
	)

	require.NoError(t, s.NavigateToTopic("a"))
	require.NoError(t, s.NavigateToTopic("b"))
	require.NoError(t, s.NavigateToTopic("c"))
	require.NoError(t, s.Back())
	require.NoError(t, s.Back())

	// A fresh jump from the middle abandons the b/c branch.
	require.NoError(t, s.NavigateToTopic("c"))
	assert.False(t, s.NavState().CanGoForward)
	require.ErrorIs(t, s.Forward(), browse.ErrInvalidOffset)

	require.NoError(t, s.Back())
	assert.Equal(t, "a", currentName(t, s))
	require.NoError(t, s.Forward())
	assert.Equal(t, "c", currentName(t, s))
}

func TestStoreHistoryBound(t *testing.T) {
	t.Parallel()

	s := browse.NewStore(nil, nil, browse.Options{HistoryMax: 3})
	names := []string{"a", "b", "c", "d", "e"}
	for _, n := range names {
		addTopics(t, s, browse.Topic{Name: n, Title: n})
	}
	for _, n := range names {
		require.NoError(t, s.NavigateToTopic(n))
	}

	// Only the bounded tail of the walk is reachable.
	require.NoError(t, s.Back())
	assert.Equal(t, "d", currentName(t, s))
	require.NoError(t, s.Back())
	assert.Equal(t, "c", currentName(t, s))
	assert.False(t, s.NavState().CanGoBack)
	require.ErrorIs(t, s.Back(), browse.ErrInvalidOffset)
}

func TestStoreBackSucceedsWhenTrimmedPastTarget(t *testing.T) {
	t.Parallel()

	s := browse.NewStore(nil, nil, browse.Options{HistoryMax: 1})
	addTopics(t, s,
		browse.Topic{Name: "a", Title: "A"},
		browse.Topic{Name: "b", Title: "B"},
	)
	require.NoError(t, s.NavigateToTopic("a"))
	require.NoError(t, s.NavigateToTopic("b"))

	// Committing the departure evicts the only older entry, so the move
	// lands on the oldest surviving visit instead of failing.
	require.NoError(t, s.Back())
	assert.Equal(t, "b", currentName(t, s))
}

func TestStoreScrollRestoredOnReplay(t *testing.T) {
	t.Parallel()

	d := &fakeDisplay{}
	s := browse.NewStore(d, nil, browse.Options{})
	addTopics(t, s,
		browse.Topic{Name: "a", Title: "A"},
		browse.Topic{Name: "b", Title: "B"},
	)

	require.NoError(t, s.NavigateToTopic("a"))
	d.scroll = 0.7
	require.NoError(t, s.NavigateToTopic("b"))
	assert.Empty(t, d.restored, "fresh jumps start at the top")

	d.scroll = 0
	require.NoError(t, s.Back())
	assert.Equal(t, []float64{0.7}, d.restored)
}

func TestStoreActivateLink(t *testing.T) {
	t.Parallel()

	d := &fakeDisplay{}
	l := &fakeListener{}
	s := browse.NewStore(d, l, browse.Options{})
	addTopics(t, s, browse.Topic{Name: "install", Title: "Install"})

	require.NoError(t, s.ActivateLink("install"))
	assert.Equal(t, "install", currentName(t, s))
	assert.Empty(t, l.links)

	require.NoError(t, s.ActivateLink("https://example.com/docs"))
	assert.Equal(t, []string{"https://example.com/docs"}, l.links)
	assert.Equal(t, "install", currentName(t, s), "external links do not navigate")
}

func TestStoreNavigateErrors(t *testing.T) {
	t.Parallel()

	s := browse.NewStore(nil, nil, browse.Options{})
	addTopics(t, s, browse.Topic{Name: "a", Title: "A"})

	require.ErrorIs(t, s.Navigate(0, 5), browse.ErrUnknownTopic)
	require.ErrorIs(t, s.Navigate(-1, browse.TopicNone), browse.ErrInvalidOffset)
	require.ErrorIs(t, s.Navigate(+1, browse.TopicNone), browse.ErrInvalidOffset)
	require.ErrorIs(t, s.NavigateToTopic("missing"), browse.ErrUnknownTopic)
	require.ErrorIs(t, s.Home(), browse.ErrUnknownTopic)
}

func TestStoreNavigateToNoneClearsDisplay(t *testing.T) {
	t.Parallel()

	d := &fakeDisplay{}
	s := browse.NewStore(d, nil, browse.Options{})
	addTopics(t, s, browse.Topic{Name: "a", Title: "A"})
	require.NoError(t, s.NavigateToTopic("a"))

	require.NoError(t, s.Navigate(0, browse.TopicNone))
	assert.Equal(t, browse.TopicNone, s.Current())
	assert.Equal(t, 1, d.cleared)
	assert.Equal(t, browse.TopicNone, d.selected[len(d.selected)-1])

	// The cleared view still counts as a place to come back from.
	require.NoError(t, s.Back())
	assert.Equal(t, "a", currentName(t, s))
}

func TestStoreNavigateToEmptyNameClearsDisplay(t *testing.T) {
	t.Parallel()

	d := &fakeDisplay{}
	s := browse.NewStore(d, nil, browse.Options{})
	addTopics(t, s, browse.Topic{Name: "a", Title: "A"})
	require.NoError(t, s.NavigateToTopic("a"))

	require.NoError(t, s.NavigateToTopic(""))
	assert.Equal(t, browse.TopicNone, s.Current())
	assert.Equal(t, 1, d.cleared)
}

func TestStoreReset(t *testing.T) {
	t.Parallel()

	d := &fakeDisplay{}
	l := &fakeListener{}
	s := browse.NewStore(d, l, browse.Options{HomeTopic: "a"})
	addTopics(t, s,
		browse.Topic{Name: "a", Title: "A"},
		browse.Topic{Name: "b", Title: "B"},
	)
	require.NoError(t, s.NavigateToTopic("b"))

	s.Reset()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, browse.TopicNone, s.Current())
	assert.Equal(t, browse.NavState{}, s.NavState())
	assert.Positive(t, d.cleared)
}

func writeTopicDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestStoreAddFiles(t *testing.T) {
	t.Parallel()

	dir := writeTopicDir(t, map[string]string{
		"guide.md":     "# User Guide\n\nbody\n",
		"api.markdown": "no heading here\n",
		"notes.txt":    "ignored\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	s := browse.NewStore(nil, nil, browse.Options{})
	n, err := s.AddFiles(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "api", s.Topic(0).Name, "untitled files sort first on their empty title")
	assert.Equal(t, "", s.Topic(0).Title)
	assert.Equal(t, "guide", s.Topic(1).Name)
	assert.Equal(t, "User Guide", s.Topic(1).Title)
}

func TestStoreAddFilesNavigatesHome(t *testing.T) {
	t.Parallel()

	dir := writeTopicDir(t, map[string]string{
		"index.md": "# Welcome\n",
		"other.md": "# Other\n",
	})

	d := &fakeDisplay{}
	s := browse.NewStore(d, nil, browse.Options{HomeTopic: "index"})
	_, err := s.AddFiles(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "index", currentName(t, s))
}

func TestStoreAddFilesReplacesExistingTopics(t *testing.T) {
	t.Parallel()

	dir := writeTopicDir(t, map[string]string{"fresh.md": "# Fresh\n"})

	s := browse.NewStore(nil, nil, browse.Options{})
	addTopics(t, s, browse.Topic{Name: "stale", Title: "Stale"})
	require.NoError(t, s.NavigateToTopic("stale"))

	n, err := s.AddFiles(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, browse.TopicNone, s.TopicIndexByName("stale"))
	assert.Equal(t, browse.NavState{}, s.NavState())
}

func TestStoreAddFilesMissingDir(t *testing.T) {
	t.Parallel()

	s := browse.NewStore(nil, nil, browse.Options{})
	_, err := s.AddFiles(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
