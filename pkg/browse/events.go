package browse

// Display is the rendering surface the store drives. Implementations own the
// widget that shows topic content; the store only tells it what to show and
// queries scroll state around navigation.
//
// SelectTopic reports a selection change in the topic list. Implementations
// must not call back into the store from SelectTopic; the store invokes it
// while its own state transition is still in flight.
type Display interface {
	// ShowTopic renders the given topic's content.
	ShowTopic(t Topic)

	// Clear empties the surface, shown when no topic is current.
	Clear()

	// ScrollOffset returns the current vertical scroll fraction in [0, 1].
	ScrollOffset() float64

	// SetScrollOffset restores a previously captured scroll fraction.
	SetScrollOffset(offset float64)

	// SelectTopic highlights the topic at index in the topic list, or
	// clears the selection when index is TopicNone.
	SelectTopic(index int)
}

// Listener receives store change notifications.
type Listener interface {
	// OnNavigationStateChanged fires after any navigation, with the
	// freshly recomputed state.
	OnNavigationStateChanged(s NavState)

	// OnTopicsChanged fires after the topic set changes.
	OnTopicsChanged()

	// OnLinkActivated fires for activated links that do not name a known
	// topic, typically external URLs.
	OnLinkActivated(url string)
}

// NavState describes which navigation actions are currently meaningful. It
// is recomputed after every navigation and topic-set change.
type NavState struct {
	CanGoBack    bool
	CanGoForward bool
	HomeVisible  bool
}

type noopDisplay struct{}

func (noopDisplay) ShowTopic(Topic) {}

func (noopDisplay) Clear() {}

func (noopDisplay) ScrollOffset() float64 { return 0 }

func (noopDisplay) SetScrollOffset(float64) {}

func (noopDisplay) SelectTopic(int) {}

type noopListener struct{}

func (noopListener) OnNavigationStateChanged(NavState) {}

func (noopListener) OnTopicsChanged() {}

func (noopListener) OnLinkActivated(string) {}
