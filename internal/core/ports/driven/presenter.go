package driven

// Presenter is the presentation layer as seen from a search session.
// Calls are made synchronously from the goroutine driving the session.
type Presenter interface {
	// Focus asks the presentation layer to move input focus to the query field.
	Focus()

	// Navigate asks the presentation layer to show the page at path.
	// It is called at most once per committed selection.
	Navigate(path string)
}
